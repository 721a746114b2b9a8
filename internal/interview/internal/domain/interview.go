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
	"math"
	"time"
)

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusAbandoned  Status = "abandoned"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) Valid() bool {
	switch s {
	case StatusInProgress, StatusCompleted, StatusAbandoned:
		return true
	}
	return false
}

const (
	QualityExcellent = "excellent"
	QualityGood      = "good"
	QualityAverage   = "average"
	QualityPoor      = "poor"
)

type Interview struct {
	Id   int64
	Uid  int64
	UUID string

	Field   string
	Level   string
	Type    string
	Company string
	Mode    string

	Status            Status
	QuestionsTotal    int
	QuestionsAnswered int

	OverallScore   float64
	TechnicalScore float64
	// AverageAnswerTime 秒
	AverageAnswerTime float64
	// Duration 秒
	Duration      int64
	QualityRating string

	Answers AnswerStats

	StartedAt   time.Time
	CompletedAt time.Time
}

// AnswerStats 每提交一个答案就累加一次
type AnswerStats struct {
	Count             int
	ScoreSum          float64
	TechnicalCount    int
	TechnicalScoreSum float64
	TimedCount        int
	TimeSpentSum      int64
}

// AnswerRecord 一个已经打分的答案
type AnswerRecord struct {
	Score     float64
	Technical bool
	// TimeSpent 秒，0 代表没有记录
	TimeSpent int64
}

// Completion 客户端在结束面试的时候上报的数据
type Completion struct {
	Duration          int64
	Score             float64
	QuestionsAnswered int
}

func (i Interview) Closed() bool {
	return i.Status == StatusCompleted || i.Status == StatusAbandoned
}

// Complete 结束面试。有答案记录的时候以答案为准，否则采用客户端上报的分数
func (i Interview) Complete(c Completion, at time.Time) Interview {
	i.Status = StatusCompleted
	i.CompletedAt = at
	i.Duration = max(c.Duration, 0)
	a := i.Answers
	if a.Count > 0 {
		i.QuestionsAnswered = a.Count
		i.OverallScore = a.ScoreSum / float64(a.Count)
		if a.TechnicalCount > 0 {
			i.TechnicalScore = a.TechnicalScoreSum / float64(a.TechnicalCount)
		}
		if a.TimedCount > 0 {
			i.AverageAnswerTime = float64(a.TimeSpentSum) / float64(a.TimedCount)
		}
	} else {
		i.QuestionsAnswered = max(c.QuestionsAnswered, 0)
		i.OverallScore = math.Min(10, math.Max(0, c.Score))
	}
	i.QualityRating = QualityRating(i.OverallScore)
	return i
}

func QualityRating(score float64) string {
	switch {
	case score >= 8.5:
		return QualityExcellent
	case score >= 7:
		return QualityGood
	case score >= 5:
		return QualityAverage
	default:
		return QualityPoor
	}
}

// Summary 某个用户已完成面试的汇总
type Summary struct {
	Completed     int64
	AverageScore  float64
	TotalDuration int64
}
