// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package interview

import (
	"github.com/ecodeclub/coach/internal/interview/internal/domain"
	"github.com/ecodeclub/coach/internal/interview/internal/job"
	"github.com/ecodeclub/coach/internal/interview/internal/service"
	"github.com/ecodeclub/coach/internal/interview/internal/web"
)

type Handler = web.Handler
type Service = service.Service
type AbandonStaleInterviewsJob = job.AbandonStaleInterviewsJob

type Interview = domain.Interview
type Status = domain.Status
type AnswerRecord = domain.AnswerRecord
type Summary = domain.Summary

var ErrInterviewNotFound = service.ErrInterviewNotFound

const (
	StatusInProgress = domain.StatusInProgress
	StatusCompleted  = domain.StatusCompleted
	StatusAbandoned  = domain.StatusAbandoned
)

type Module struct {
	Hdl        *Handler
	Svc        Service
	AbandonJob *AbandonStaleInterviewsJob
}
