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

package event

const AnswerScoredTopic = "answer_scored_events"

// AnswerScoredEvent 答案打分完成之后发出，用户模块和题目模块会消费
type AnswerScoredEvent struct {
	Uid         int64 `json:"uid"`
	InterviewId int64 `json:"interviewId"`
	AnswerId    int64 `json:"answerId"`
	// QuestionId 为 0 说明答案没有关联题目
	QuestionId int64   `json:"questionId"`
	Category   string  `json:"category"`
	Score      float64 `json:"score"`
	// TimeSpent 秒
	TimeSpent int64  `json:"timeSpent"`
	Variant   string `json:"variant"`
	Tid       string `json:"tid"`
}
