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

package domain

import (
	"time"
)

type Feedback struct {
	Id       int64
	UUID     string
	Uid      int64
	AnswerId int64

	Score            float64
	Strengths        []string
	Improvements     []string
	DetailedFeedback string
	// Variant 评分版本
	Variant string
	Model   string
	// Details 只有 enhanced 版本才有
	Details *Details

	Rating Rating
	Ctime  time.Time
}

type Details struct {
	Content             float64    `json:"content"`
	Structure           float64    `json:"structure"`
	Communication       float64    `json:"communication"`
	TechnicalAccuracy   float64    `json:"technicalAccuracy"`
	ActionItems         []string   `json:"actionItems"`
	LearningResources   []Resource `json:"learningResources"`
	PracticeSuggestions []string   `json:"practiceSuggestions"`
	ModelVersion        string     `json:"modelVersion"`
	// ProcessingTime 毫秒
	ProcessingTime float64 `json:"processingTime"`
	Confidence     float64 `json:"confidence"`
	Tokens         int     `json:"tokens"`
}

type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"`
}

// Rating 用户对反馈的评价，Score 为 0 代表还没有评价
type Rating struct {
	Score   int
	Helpful bool
}

func (r Rating) Valid() bool {
	return r.Score >= 1 && r.Score <= 5
}
