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
	"math"

	"github.com/ecodeclub/coach/internal/question/internal/domain"
)

type Question struct {
	Id                 string   `json:"id"`
	Text               string   `json:"text"`
	Category           string   `json:"category"`
	Subcategory        string   `json:"subcategory,omitempty"`
	Field              string   `json:"field"`
	Level              string   `json:"level"`
	Difficulty         string   `json:"difficulty"`
	Company            string   `json:"company,omitempty"`
	Tags               []string `json:"tags"`
	Hint               string   `json:"hint,omitempty"`
	FollowUpQuestions  []string `json:"followUpQuestions,omitempty"`
	TimeLimit          int      `json:"timeLimit,omitempty"`
	IdealLength        int      `json:"idealLength,omitempty"`
	UsageCount         int64    `json:"usageCount"`
	AvgScore           *float64 `json:"avgScore,omitempty"`
	DifficultyRating   *float64 `json:"difficultyRating,omitempty"`
	SampleAnswer       string   `json:"sampleAnswer,omitempty"`
	EvaluationCriteria []string `json:"evaluationCriteria,omitempty"`
}

// newQuestion withAnswer 为 true 的时候带上参考答案和评分标准
func newQuestion(q domain.Question, withAnswer bool) Question {
	res := Question{
		Id:                q.UUID,
		Text:              q.Text,
		Category:          q.Category,
		Subcategory:       q.Subcategory,
		Field:             q.Field,
		Level:             q.Level,
		Difficulty:        q.Difficulty,
		Company:           q.Company,
		Tags:              q.Tags,
		Hint:              q.Hint,
		FollowUpQuestions: q.FollowUpQuestions,
		TimeLimit:         q.TimeLimit,
		IdealLength:       q.IdealAnswerLength,
		UsageCount:        q.UsageCount,
	}
	if res.Tags == nil {
		res.Tags = []string{}
	}
	if q.Metrics.Samples > 0 {
		avg := math.Round(q.Metrics.AvgScore*100) / 100
		rating := math.Round(q.Metrics.DifficultyRating*10) / 10
		res.AvgScore = &avg
		res.DifficultyRating = &rating
	}
	if withAnswer {
		res.SampleAnswer = q.SampleAnswer
		res.EvaluationCriteria = q.EvaluationCriteria
	}
	return res
}

type Page struct {
	List        []Question `json:"list"`
	Total       int64      `json:"total"`
	Pages       int64      `json:"pages"`
	CurrentPage int        `json:"currentPage"`
}

type RandomReq struct {
	Field string `json:"field"`
	Level string `json:"level"`
	// Type 也就是题目的分类
	Type string `json:"type"`
}

type CreateReq struct {
	Text               string   `json:"text" validate:"required,max=5000"`
	Category           string   `json:"category" validate:"required,oneof=technical behavioral system-design hr product"`
	Subcategory        string   `json:"subcategory" validate:"max=50"`
	Field              string   `json:"field" validate:"required,max=100"`
	Level              string   `json:"level" validate:"required,max=50"`
	Difficulty         string   `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Company            string   `json:"company" validate:"max=100"`
	Tags               []string `json:"tags" validate:"max=20"`
	Keywords           []string `json:"keywords" validate:"max=20"`
	Hint               string   `json:"hint"`
	SampleAnswer       string   `json:"sampleAnswer"`
	EvaluationCriteria []string `json:"evaluationCriteria"`
	FollowUpQuestions  []string `json:"followUpQuestions"`
	TimeLimit          int      `json:"timeLimit" validate:"gte=0"`
	IdealLength        int      `json:"idealLength" validate:"gte=0"`
}

func (r CreateReq) toDomain() domain.Question {
	return domain.Question{
		Text:               r.Text,
		Category:           r.Category,
		Subcategory:        r.Subcategory,
		Field:              r.Field,
		Level:              r.Level,
		Difficulty:         r.Difficulty,
		Company:            r.Company,
		Tags:               r.Tags,
		Keywords:           r.Keywords,
		Hint:               r.Hint,
		SampleAnswer:       r.SampleAnswer,
		EvaluationCriteria: r.EvaluationCriteria,
		FollowUpQuestions:  r.FollowUpQuestions,
		TimeLimit:          r.TimeLimit,
		IdealAnswerLength:  r.IdealLength,
	}
}

type LegacyReq struct {
	Field string `json:"field"`
	Level string `json:"level"`
}

type LegacyQuestion struct {
	Field      string `json:"field"`
	Level      string `json:"level"`
	Question   string `json:"question"`
	Category   string `json:"category,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

type LegacyInfo struct {
	Message string `json:"message"`
	Info    string `json:"info"`
}
