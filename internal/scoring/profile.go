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
	"math"
	"strings"
)

// profile 一个评分版本的全部参数，两个版本共用同一套流程
type profile struct {
	variant   Variant
	model     string
	version   string
	tiers     []tier
	bonuses   []bonus
	jitter    span
	precision int

	strengths            []finding
	maxStrengths         int
	fallbackStrengths    []string
	improvements         []finding
	maxImprovements      int
	fallbackImprovements []string

	tones  []tone
	splice string

	// 下面只有 enhanced 用得上
	details      bool
	subScores    [4]span
	confidence   span
	maxActions   int
	maxResources int
}

func basicProfile() profile {
	return profile{
		variant: VariantBasic,
		model:   "gpt-4-simulation",
		version: "1.0",
		tiers: []tier{
			{below: 20, score: 4.0},
			{below: 50, score: 6.0},
			{below: 100, score: 7.5},
			{below: math.MaxInt, score: 8.5},
		},
		bonuses:   keywordBonuses(),
		jitter:    span{lo: -0.5, hi: 1.5},
		precision: 1,
		strengths: []finding{
			{when: wordsAbove(50), text: say("Comprehensive and detailed response")},
			{when: containsAny("example", "for instance", "such as"),
				text: say("Good use of examples to illustrate points")},
			{when: containsAny("because", "therefore", "thus", "as a result"),
				text: say("Clear logical reasoning and structure")},
		},
		maxStrengths: 3,
		fallbackStrengths: []string{
			"Shows understanding of the core concepts",
			"Addresses the question directly",
			"Uses appropriate terminology",
		},
		improvements: []finding{
			{when: wordsBelow(50), text: say("Consider providing more detailed explanations")},
			{when: containsNone("example"), text: say("Include specific examples to strengthen your answer")},
			{when: all(isCategory(CategoryBehavioral), not(starAtLeast(1))),
				text: say("Use the STAR method to structure your behavioral answers")},
		},
		maxImprovements: 3,
		fallbackImprovements: []string{
			"Could elaborate on edge cases or limitations",
			"Consider discussing alternative approaches",
			"Add more specific metrics or quantifiable results",
		},
		tones: []tone{
			{atLeast: 8.5, text: "Excellent answer!"},
			{atLeast: 7.0, text: "Good answer with room for improvement."},
			{atLeast: 5.0, text: "Decent attempt, but needs more depth."},
			{atLeast: math.Inf(-1), text: "Your answer could use significant improvement."},
		},
		splice: "To make your answer even stronger,",
	}
}

func enhancedProfile() profile {
	return profile{
		variant: VariantEnhanced,
		model:   "gpt-4-enhanced-simulation",
		version: "2.0",
		tiers: []tier{
			{below: 20, score: 3.5},
			{below: 50, score: 5.5},
			{below: 100, score: 7.0},
			{below: 200, score: 8.5},
			{below: math.MaxInt, score: 9.0},
		},
		bonuses:   keywordBonuses(),
		jitter:    span{lo: -0.3, hi: 0.5},
		precision: 2,
		strengths: []finding{
			{when: wordsAbove(100),
				text: say("Comprehensive and thorough response demonstrating deep understanding")},
			{when: all(wordsAbove(50), not(wordsAbove(100))),
				text: say("Well-developed answer with good coverage of key points")},
			{when: containsAny("example", "for instance", "such as"),
				text: say("Excellent use of concrete examples to illustrate concepts")},
			{when: containsAny("because", "therefore", "thus"),
				text: say("Clear logical reasoning and well-structured argumentation")},
			{when: all(isCategory(CategoryTechnical), containsAny("performance", "scalability", "optimize")),
				text: say("Strong consideration of practical performance implications")},
			{when: all(isCategory(CategoryBehavioral), starAtLeast(3)),
				text: say("Effectively structured using the STAR method")},
			{when: sentencesAbove(5), text: say("Well-organized with clear progression of ideas")},
		},
		maxStrengths: 5,
		fallbackStrengths: []string{
			"Addresses the core question directly",
			"Demonstrates basic understanding of the topic",
			"Uses appropriate professional terminology",
		},
		improvements: []finding{
			{when: wordsBelow(80),
				text: say("Expand your answer with more detailed explanations and context")},
			{when: containsNone("example", "for instance"),
				text: say("Include specific real-world examples to strengthen your points")},
			{when: all(isCategory(CategoryBehavioral), starMissing),
				text: func(a analysis) string {
					return "Strengthen your answer using STAR method - add " + strings.Join(a.missing, ", ")
				}},
			{when: all(isCategory(CategoryTechnical), containsNone("trade-off", "advantage")),
				text: say("Discuss trade-offs and compare alternative approaches")},
			{when: all(isCategory(CategoryTechnical), containsNone("performance", "scalability")),
				text: say("Consider performance and scalability implications")},
			{when: sentencesBelow(4),
				text: say("Break down your answer into more structured sections for clarity")},
		},
		maxImprovements: 4,
		fallbackImprovements: []string{
			"Consider elaborating on edge cases or limitations",
			"Add quantifiable metrics or specific data points where possible",
			"Include discussion of alternative approaches or perspectives",
		},
		tones: []tone{
			{atLeast: 9.0, text: "Outstanding answer!"},
			{atLeast: 8.0, text: "Excellent response with strong fundamentals."},
			{atLeast: 7.0, text: "Good answer with room for enhancement."},
			{atLeast: 5.0, text: "Solid attempt that needs more depth."},
			{atLeast: math.Inf(-1), text: "Your answer needs significant development."},
		},
		splice:  "To elevate your response further,",
		details: true,
		// content, structure, communication, technical accuracy
		subScores: [4]span{
			{lo: -0.5, hi: 0.5},
			{lo: -0.5, hi: 0.5},
			{lo: -1.0, hi: 1.0},
			{lo: -0.8, hi: 0.3},
		},
		confidence:   span{lo: -0.1, hi: 0.1},
		maxActions:   3,
		maxResources: 3,
	}
}

// keywordBonuses 两个版本共用的加分规则
func keywordBonuses() []bonus {
	return []bonus{
		{when: containsAny("example", "for instance", "such as", "like"), amount: flat(0.5)},
		{when: containsAny("because", "therefore", "thus", "as a result", "consequently"), amount: flat(0.3)},
		{when: all(isCategory(CategoryTechnical),
			containsAny("algorithm", "optimize", "complexity", "performance", "scalability", "architecture")),
			amount: flat(0.4)},
		{when: isCategory(CategoryBehavioral), amount: func(a analysis) float64 {
			return float64(len(a.star)) * 0.3
		}},
	}
}

var learningResources = map[Category][]Resource{
	CategoryTechnical: {
		{Title: "System Design Primer", URL: "https://github.com/donnemartin/system-design-primer", Type: "github"},
		{Title: "Technical Interview Handbook", URL: "https://techinterviewhandbook.org/", Type: "website"},
	},
	CategoryBehavioral: {
		{Title: "STAR Method Guide", URL: "https://example.com/star", Type: "article"},
		{Title: "Behavioral Interview Preparation", URL: "https://example.com/behavioral", Type: "course"},
	},
}

func (p profile) baseScore(words int) float64 {
	for _, t := range p.tiers {
		if words < t.below {
			return t.score
		}
	}
	return p.tiers[len(p.tiers)-1].score
}

func (p profile) qualityBonus(a analysis) float64 {
	var res float64
	for _, b := range p.bonuses {
		if b.when(a) {
			res += b.amount(a)
		}
	}
	return res
}

func (p profile) tone(score float64) string {
	for _, t := range p.tones {
		if score >= t.atLeast {
			return t.text
		}
	}
	return p.tones[len(p.tones)-1].text
}
