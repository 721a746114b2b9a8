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

package scoring

import (
	"fmt"
	"strings"
	"time"
)

// Category 题目分类，决定哪些关键字规则会生效
type Category string

const (
	CategoryUnspecified  Category = "unspecified"
	CategoryTechnical    Category = "technical"
	CategoryBehavioral   Category = "behavioral"
	CategorySystemDesign Category = "system-design"
	CategoryHR           Category = "hr"
	CategoryProduct      Category = "product"
)

// ParseCategory 不认识的分类一律归到 CategoryUnspecified
func ParseCategory(s string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case CategoryTechnical, CategoryBehavioral, CategorySystemDesign,
		CategoryHR, CategoryProduct:
		return c
	default:
		return CategoryUnspecified
	}
}

func (c Category) String() string {
	return string(c)
}

// label 拼接到文案里的名字
func (c Category) label() string {
	if c == CategoryUnspecified || c == "" {
		return "general"
	}
	return string(c)
}

type Variant string

const (
	VariantBasic    Variant = "basic"
	VariantEnhanced Variant = "enhanced"
)

func ParseVariant(s string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(s))); v {
	case VariantBasic, VariantEnhanced:
		return v, nil
	case "":
		return VariantEnhanced, nil
	default:
		return "", fmt.Errorf("未知的评分版本 %q", s)
	}
}

// Rand 随机源，*rand.Rand 就满足这个接口
// 调用方自己持有随机源，测试里固定种子就可以得到稳定的结果
type Rand interface {
	Float64() float64
}

type Input struct {
	AnswerText string
	Category   Category
	// QuestionText 目前不参与评分
	QuestionText string
}

type Result struct {
	Score            float64
	Strengths        []string
	Improvements     []string
	DetailedFeedback string
	Model            string
	// Details 只有 enhanced 版本才有
	Details *Details
}

type Details struct {
	SubScores           SubScores
	ActionItems         []string
	LearningResources   []Resource
	PracticeSuggestions []string
	Metadata            Metadata
}

type SubScores struct {
	Content           float64
	Structure         float64
	Communication     float64
	TechnicalAccuracy float64
}

// weakest 在 content, structure, communication 里面找最低的那个，
// 分数相同的时候按照这个顺序取前面的
func (s SubScores) weakest() string {
	candidates := []struct {
		name  string
		score float64
	}{
		{name: "content", score: s.Content},
		{name: "structure", score: s.Structure},
		{name: "communication", score: s.Communication},
	}
	res := candidates[0]
	for _, c := range candidates[1:] {
		if c.score < res.score {
			res = c
		}
	}
	return res.name
}

type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"`
}

type Metadata struct {
	Model          string
	Version        string
	ProcessingTime time.Duration
	Confidence     float64
	Tokens         int
}
