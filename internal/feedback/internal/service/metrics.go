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

package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	answerScore = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "interview_coach_answer_score",
			Help:    "Score given to submitted answers",
			Buckets: prometheus.LinearBuckets(0, 1, 11),
		},
		[]string{"variant", "category"},
	)
	answerScoringDuration = promauto.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "interview_coach_answer_scoring_duration_seconds",
			Help: "Time spent scoring an answer",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.99: 0.001,
			},
		},
		[]string{"variant"},
	)
)
