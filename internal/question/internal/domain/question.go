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

import "time"

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type Question struct {
	Id int64
	// UUID 对外暴露的 ID
	UUID               string
	Text               string
	Category           string
	Subcategory        string
	Field              string
	Level              string
	Difficulty         string
	Company            string
	Tags               []string
	Keywords           []string
	Hint               string
	SampleAnswer       string
	EvaluationCriteria []string
	FollowUpQuestions  []string
	// IdealAnswerLength 单词数
	IdealAnswerLength int
	// TimeLimit 秒
	TimeLimit  int
	UsageCount int64
	Metrics    Metrics
	IsActive   bool
	Ctime      time.Time
}

// Metrics 根据用户的作答情况统计出来的指标
type Metrics struct {
	// Samples 参与统计的答案数量
	Samples           int64
	AvgScore          float64
	AvgCompletionTime float64
	DifficultyRating  float64
}

// metricsWeight 新样本的权重，越新的答案影响越大
const metricsWeight = 0.3

// Record 加入一个新的答案，第一个样本直接作为平均值
func (m Metrics) Record(score float64, completionTime float64) Metrics {
	if m.Samples == 0 {
		m.AvgScore = score
		m.AvgCompletionTime = completionTime
	} else {
		m.AvgScore = (1-metricsWeight)*m.AvgScore + metricsWeight*score
		m.AvgCompletionTime = (1-metricsWeight)*m.AvgCompletionTime + metricsWeight*completionTime
	}
	m.Samples++
	m.DifficultyRating = DifficultyRating(m.AvgScore)
	return m
}

// DifficultyRating 平均分越低，说明题目越难
func DifficultyRating(avgScore float64) float64 {
	switch {
	case avgScore < 5:
		return 8
	case avgScore < 7:
		return 6
	case avgScore < 8.5:
		return 4
	default:
		return 2
	}
}

// Filter 空字符串代表不过滤
type Filter struct {
	Field      string
	Level      string
	Category   string
	Difficulty string
}

func (f Filter) IsEmpty() bool {
	return f == Filter{}
}
