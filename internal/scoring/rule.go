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
	"strings"
)

var starKeywords = []string{"situation", "task", "action", "result"}

// analysis 一次评分里所有规则共享的预处理结果
type analysis struct {
	// text 已经转成小写
	text      string
	words     int
	sentences int
	category  Category
	// star 出现了的 STAR 关键字，missing 是缺失的，都按 starKeywords 的顺序
	star    []string
	missing []string
}

func analyze(in Input) analysis {
	text := strings.ToLower(in.AnswerText)
	a := analysis{
		text:  text,
		words: len(strings.Fields(in.AnswerText)),
		// 空字符串也算一段
		sentences: len(strings.Split(in.AnswerText, ".")),
		category:  in.Category,
	}
	if a.category == "" {
		a.category = CategoryUnspecified
	}
	for _, k := range starKeywords {
		if strings.Contains(text, k) {
			a.star = append(a.star, k)
		} else {
			a.missing = append(a.missing, k)
		}
	}
	return a
}

type predicate func(a analysis) bool

func containsAny(keywords ...string) predicate {
	return func(a analysis) bool {
		for _, k := range keywords {
			if strings.Contains(a.text, k) {
				return true
			}
		}
		return false
	}
}

func containsNone(keywords ...string) predicate {
	return not(containsAny(keywords...))
}

func not(p predicate) predicate {
	return func(a analysis) bool {
		return !p(a)
	}
}

func all(ps ...predicate) predicate {
	return func(a analysis) bool {
		for _, p := range ps {
			if !p(a) {
				return false
			}
		}
		return true
	}
}

func isCategory(c Category) predicate {
	return func(a analysis) bool {
		return a.category == c
	}
}

func wordsAbove(n int) predicate {
	return func(a analysis) bool {
		return a.words > n
	}
}

func wordsBelow(n int) predicate {
	return func(a analysis) bool {
		return a.words < n
	}
}

func sentencesAbove(n int) predicate {
	return func(a analysis) bool {
		return a.sentences > n
	}
}

func sentencesBelow(n int) predicate {
	return func(a analysis) bool {
		return a.sentences < n
	}
}

func starAtLeast(n int) predicate {
	return func(a analysis) bool {
		return len(a.star) >= n
	}
}

func starMissing(a analysis) bool {
	return len(a.missing) > 0
}

// finding 命中 when 就输出一条文案
type finding struct {
	when predicate
	text func(a analysis) string
}

func say(s string) func(a analysis) string {
	return func(analysis) string {
		return s
	}
}

// collect 按顺序执行规则，最多保留 limit 条，一条都没有命中就用 fallback
func collect(rules []finding, a analysis, limit int, fallback []string) []string {
	res := make([]string, 0, limit)
	for _, r := range rules {
		if len(res) == limit {
			break
		}
		if r.when(a) {
			res = append(res, r.text(a))
		}
	}
	if len(res) == 0 {
		res = append(res, fallback...)
	}
	return res
}

type bonus struct {
	when   predicate
	amount func(a analysis) float64
}

func flat(v float64) func(a analysis) float64 {
	return func(analysis) float64 {
		return v
	}
}

type tier struct {
	// below 字数严格小于 below 的时候命中，最后一档不设上限
	below int
	score float64
}

type tone struct {
	atLeast float64
	text    string
}

// span 均匀分布的区间 [lo, hi]
type span struct {
	lo float64
	hi float64
}

func (s span) draw(rnd Rand) float64 {
	return s.lo + (s.hi-s.lo)*rnd.Float64()
}
