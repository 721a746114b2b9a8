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
	"strings"
	"time"
)

type Answer struct {
	Id int64
	// UUID 对外暴露的 ID
	UUID        string
	Uid         int64
	InterviewId int64
	// QuestionId 为 0 说明没有关联题目
	QuestionId int64
	Text       string
	AudioURL   string
	VideoURL   string
	// TimeSpent 秒
	TimeSpent      int64
	Score          float64
	WordCount      int
	CharacterCount int
	Quality        Quality
	// Tid 打分的请求 ID，用来串联日志
	Tid   string
	Ctime time.Time
}

// Submission 用户提交的答案
type Submission struct {
	InterviewUUID string
	QuestionUUID  string
	Text          string
	TimeSpent     int64
	AudioURL      string
	VideoURL      string
}

// Quality 答案本身的质量指标，和打分无关
type Quality struct {
	Clarity   float64
	Depth     float64
	Structure float64
}

// NewQuality 空答案所有指标都是 0
func NewQuality(text string) Quality {
	if text == "" {
		return Quality{}
	}
	words := float64(len(strings.Fields(text)))
	sentences := float64(len(strings.Split(text, ".")))
	paragraphs := float64(len(strings.Split(text, "\n\n")))
	avg := words / sentences
	return Quality{
		Clarity:   math.Min(10, math.Max(0, 10-math.Abs(avg-15)/5)),
		Depth:     math.Min(10, words/10),
		Structure: math.Min(10, paragraphs*2),
	}
}
