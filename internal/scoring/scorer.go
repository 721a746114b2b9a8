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

// Package scoring 基于字数和关键字的回答评分。
// 评分是纯计算，不做任何 IO，Scorer 创建之后不再修改，可以并发使用。
package scoring

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const maxScore = 10.0

type Option func(s *Scorer)

// WithClock 替换计时用的时钟，只影响 Metadata.ProcessingTime
func WithClock(now func() time.Time) Option {
	return func(s *Scorer) {
		s.now = now
	}
}

type Scorer struct {
	p   profile
	now func() time.Time
}

func New(v Variant, opts ...Option) (*Scorer, error) {
	switch v {
	case VariantBasic:
		return newScorer(basicProfile(), opts), nil
	case VariantEnhanced:
		return newScorer(enhancedProfile(), opts), nil
	default:
		return nil, fmt.Errorf("未知的评分版本 %q", v)
	}
}

func NewBasic(opts ...Option) *Scorer {
	return newScorer(basicProfile(), opts)
}

func NewEnhanced(opts ...Option) *Scorer {
	return newScorer(enhancedProfile(), opts)
}

func newScorer(p profile, opts []Option) *Scorer {
	s := &Scorer{p: p, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Scorer) Variant() Variant {
	return s.p.variant
}

// BaseScore 只看字数的基础分
func (s *Scorer) BaseScore(words int) float64 {
	return s.p.baseScore(words)
}

// QualityBonus 关键字带来的加分，不含随机部分
func (s *Scorer) QualityBonus(in Input) float64 {
	return s.p.qualityBonus(analyze(in))
}

// Score 对任何输入都能给出结果。
// 随机数的抽取顺序固定：总分、四个子分数、置信度
func (s *Scorer) Score(in Input, rnd Rand) Result {
	start := s.now()
	p := s.p
	a := analyze(in)

	raw := p.baseScore(a.words) + p.qualityBonus(a) + p.jitter.draw(rnd)
	score := round(clamp(raw, 0, maxScore), p.precision)

	res := Result{
		Score:        score,
		Model:        p.model,
		Strengths:    collect(p.strengths, a, p.maxStrengths, p.fallbackStrengths),
		Improvements: collect(p.improvements, a, p.maxImprovements, p.fallbackImprovements),
	}
	if !p.details {
		res.DetailedFeedback = p.compose(score, res.Strengths, res.Improvements, "")
		return res
	}

	sub := SubScores{
		Content:           p.subScore(score, 0, rnd),
		Structure:         p.subScore(score, 1, rnd),
		Communication:     p.subScore(score, 2, rnd),
		TechnicalAccuracy: p.subScore(score, 3, rnd),
	}
	label := a.category.label()
	actions := []string{
		fmt.Sprintf("Practice answering similar %s questions", label),
		"Review example answers from top performers",
		"Focus on improving " + sub.weakest(),
	}
	if len(actions) > p.maxActions {
		actions = actions[:p.maxActions]
	}
	resources := learningResources[a.category]
	if len(resources) > p.maxResources {
		resources = resources[:p.maxResources]
	}
	confidence := round(clamp(score/maxScore+p.confidence.draw(rnd), 0, 1), 2)

	res.DetailedFeedback = p.compose(score, res.Strengths, res.Improvements, actions[0])
	res.Details = &Details{
		SubScores:         sub,
		ActionItems:       actions,
		LearningResources: append([]Resource(nil), resources...),
		PracticeSuggestions: []string{
			fmt.Sprintf("Complete 3 more %s questions at this difficulty level", label),
			"Review your answer after 24 hours and self-evaluate",
			"Compare your answer with high-scoring responses",
		},
		Metadata: Metadata{
			Model:          p.model,
			Version:        p.version,
			ProcessingTime: s.now().Sub(start),
			Confidence:     confidence,
			Tokens:         a.words * 2,
		},
	}
	return res
}

func (p profile) subScore(score float64, idx int, rnd Rand) float64 {
	return round(clamp(score+p.subScores[idx].draw(rnd), 0, maxScore), 2)
}

// compose 语气 + 前两条优点 + 第一条改进建议（转小写），closing 非空就再追加一句
func (p profile) compose(score float64, strengths, improvements []string, closing string) string {
	head := strengths
	if len(head) > 2 {
		head = head[:2]
	}
	res := fmt.Sprintf("%s %s. %s %s.", p.tone(score), strings.Join(head, " "),
		p.splice, strings.ToLower(improvements[0]))
	if closing != "" {
		res += " " + closing
	}
	return res
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round(v float64, precision int) float64 {
	pow := math.Pow(10, float64(precision))
	return math.Round(v*pow) / pow
}
