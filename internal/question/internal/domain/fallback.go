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

// fallbackQuestions 题库里面没有匹配的题目时使用
var fallbackQuestions = map[string]map[string]string{
	"software": {
		"entry":  "What is a programming language?",
		"mid":    "Explain Object-Oriented Programming concepts.",
		"senior": "Explain system design principles.",
	},
	"data-science": {
		"entry":  "What is data science?",
		"mid":    "What is overfitting in machine learning?",
		"senior": "Explain the bias-variance tradeoff.",
	},
}

const noQuestionFound = "No question found"

func FallbackQuestion(field, level string) string {
	if q, ok := fallbackQuestions[field][level]; ok {
		return q
	}
	return noQuestionFound
}
