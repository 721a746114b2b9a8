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

package web

import (
	"github.com/ecodeclub/coach/internal/interview/internal/domain"
)

type StartReq struct {
	Field          string `json:"field"`
	Level          string `json:"level"`
	Type           string `json:"type"`
	Company        string `json:"company"`
	Mode           string `json:"mode"`
	QuestionsTotal int    `json:"questionsTotal"`
}

type CompleteReq struct {
	// Duration 秒
	Duration          int64   `json:"duration"`
	Score             float64 `json:"score"`
	QuestionsAnswered int     `json:"questionsAnswered"`
}

type Interview struct {
	Id                string  `json:"id"`
	Field             string  `json:"field"`
	Level             string  `json:"level"`
	Type              string  `json:"type"`
	Company           string  `json:"company"`
	Mode              string  `json:"mode"`
	Status            string  `json:"status"`
	StartedAt         int64   `json:"startedAt"`
	CompletedAt       int64   `json:"completedAt,omitempty"`
	Duration          int64   `json:"duration"`
	Score             float64 `json:"score"`
	TechnicalScore    float64 `json:"technicalScore,omitempty"`
	AverageAnswerTime float64 `json:"averageAnswerTime,omitempty"`
	QualityRating     string  `json:"qualityRating,omitempty"`
	QuestionsAnswered int     `json:"questionsAnswered"`
	QuestionsTotal    int     `json:"questionsTotal"`
}

type Page struct {
	List        []Interview `json:"list"`
	Total       int64       `json:"total"`
	Pages       int64       `json:"pages"`
	CurrentPage int         `json:"currentPage"`
}

func newInterview(itv domain.Interview) Interview {
	res := Interview{
		Id:                itv.UUID,
		Field:             itv.Field,
		Level:             itv.Level,
		Type:              itv.Type,
		Company:           itv.Company,
		Mode:              itv.Mode,
		Status:            itv.Status.String(),
		StartedAt:         itv.StartedAt.UnixMilli(),
		Duration:          itv.Duration,
		Score:             itv.OverallScore,
		TechnicalScore:    itv.TechnicalScore,
		AverageAnswerTime: itv.AverageAnswerTime,
		QualityRating:     itv.QualityRating,
		QuestionsAnswered: itv.QuestionsAnswered,
		QuestionsTotal:    itv.QuestionsTotal,
	}
	if !itv.CompletedAt.IsZero() {
		res.CompletedAt = itv.CompletedAt.UnixMilli()
	}
	return res
}
