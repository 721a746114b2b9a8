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
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 不包含任何关键字的填充词
var filler = []string{"we", "built", "the", "service", "with", "small", "modules", "and", "clear", "owners"}

func passage(words int, phrases ...string) string {
	parts := make([]string, 0, words)
	for _, p := range phrases {
		parts = append(parts, strings.Fields(p)...)
	}
	for i := 0; len(parts) < words; i++ {
		parts = append(parts, filler[i%len(filler)])
	}
	return strings.Join(parts, " ")
}

type fixedRand float64

func (f fixedRand) Float64() float64 {
	return float64(f)
}

func fixedClock() func() time.Time {
	now := time.UnixMilli(1700000000000)
	return func() time.Time {
		return now
	}
}

func TestParseCategory(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  Category
	}{
		{name: "技术", input: "technical", want: CategoryTechnical},
		{name: "大小写和空格", input: "  Behavioral ", want: CategoryBehavioral},
		{name: "系统设计", input: "system-design", want: CategorySystemDesign},
		{name: "HR", input: "HR", want: CategoryHR},
		{name: "产品", input: "product", want: CategoryProduct},
		{name: "空", input: "", want: CategoryUnspecified},
		{name: "不认识的分类", input: "astrology", want: CategoryUnspecified},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseCategory(tc.input))
		})
	}
}

func TestParseVariant(t *testing.T) {
	v, err := ParseVariant("Basic")
	require.NoError(t, err)
	assert.Equal(t, VariantBasic, v)
	v, err = ParseVariant("")
	require.NoError(t, err)
	assert.Equal(t, VariantEnhanced, v)
	_, err = ParseVariant("gpt")
	assert.Error(t, err)
	_, err = New(Variant("gpt"))
	assert.Error(t, err)
}

func TestScorer_BaseScore(t *testing.T) {
	testCases := []struct {
		name   string
		scorer *Scorer
		words  int
		want   float64
	}{
		{name: "basic 0", scorer: NewBasic(), words: 0, want: 4.0},
		{name: "basic 19", scorer: NewBasic(), words: 19, want: 4.0},
		{name: "basic 20", scorer: NewBasic(), words: 20, want: 6.0},
		{name: "basic 50", scorer: NewBasic(), words: 50, want: 7.5},
		{name: "basic 100", scorer: NewBasic(), words: 100, want: 8.5},
		{name: "basic 500", scorer: NewBasic(), words: 500, want: 8.5},
		{name: "enhanced 0", scorer: NewEnhanced(), words: 0, want: 3.5},
		{name: "enhanced 49", scorer: NewEnhanced(), words: 49, want: 5.5},
		{name: "enhanced 99", scorer: NewEnhanced(), words: 99, want: 7.0},
		{name: "enhanced 199", scorer: NewEnhanced(), words: 199, want: 8.5},
		{name: "enhanced 200", scorer: NewEnhanced(), words: 200, want: 9.0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.scorer.BaseScore(tc.words))
		})
	}
}

func TestScorer_BaseScoreMonotonic(t *testing.T) {
	for _, s := range []*Scorer{NewBasic(), NewEnhanced()} {
		prev := s.BaseScore(0)
		for words := 1; words <= 1000; words++ {
			cur := s.BaseScore(words)
			assert.GreaterOrEqual(t, cur, prev, "variant %s words %d", s.Variant(), words)
			prev = cur
		}
	}
}

func TestScorer_Bounds(t *testing.T) {
	pool := []string{
		"example", "for instance", "such as", "like", "because", "therefore",
		"situation", "task", "action", "result", "performance", "scalability",
		"trade-off", "algorithm.", "done.", "\n\n", "",
	}
	categories := []Category{
		CategoryTechnical, CategoryBehavioral, CategorySystemDesign,
		CategoryHR, CategoryProduct, CategoryUnspecified, Category("astrology"),
	}
	gen := rand.New(rand.NewSource(1))
	for _, s := range []*Scorer{NewBasic(), NewEnhanced()} {
		rnd := rand.New(rand.NewSource(2))
		for i := 0; i < 500; i++ {
			var phrases []string
			for j := gen.Intn(8); j > 0; j-- {
				phrases = append(phrases, pool[gen.Intn(len(pool))])
			}
			text := passage(gen.Intn(260), phrases...)
			res := s.Score(Input{AnswerText: text, Category: categories[i%len(categories)]}, rnd)

			assert.True(t, res.Score >= 0 && res.Score <= 10, "score %f", res.Score)
			assert.True(t, len(res.Strengths) >= 1 && len(res.Strengths) <= 5)
			assert.True(t, len(res.Improvements) >= 1 && len(res.Improvements) <= 4)
			assert.NotEmpty(t, res.DetailedFeedback)
			if s.Variant() == VariantBasic {
				assert.Nil(t, res.Details)
				continue
			}
			require.NotNil(t, res.Details)
			sub := res.Details.SubScores
			for _, v := range []float64{sub.Content, sub.Structure, sub.Communication, sub.TechnicalAccuracy} {
				assert.True(t, v >= 0 && v <= 10, "sub score %f", v)
			}
			assert.True(t, res.Details.Metadata.Confidence >= 0 && res.Details.Metadata.Confidence <= 1)
			assert.Len(t, res.Details.ActionItems, 3)
			assert.LessOrEqual(t, len(res.Details.LearningResources), 3)
		}
	}
}

func TestScorer_QualityBonus(t *testing.T) {
	star := "In that situation my task was clear, the action I took led to a good result"
	for _, s := range []*Scorer{NewBasic(), NewEnhanced()} {
		behavioral := s.QualityBonus(Input{AnswerText: star, Category: CategoryBehavioral})
		technical := s.QualityBonus(Input{AnswerText: star, Category: CategoryTechnical})
		assert.Greater(t, behavioral, technical)
		assert.InDelta(t, 1.2, behavioral-technical, 1e-9)
	}

	s := NewEnhanced()
	testCases := []struct {
		name string
		in   Input
		want float64
	}{
		{name: "没有关键字", in: Input{AnswerText: passage(30), Category: CategoryTechnical}, want: 0},
		{name: "举例", in: Input{AnswerText: "For Instance we cache it", Category: CategoryHR}, want: 0.5},
		{name: "逻辑连接词", in: Input{AnswerText: "it failed because of load", Category: CategoryHR}, want: 0.3},
		{name: "技术词只对技术题生效", in: Input{AnswerText: "the algorithm", Category: CategoryProduct}, want: 0},
		{name: "技术词", in: Input{AnswerText: "the algorithm", Category: CategoryTechnical}, want: 0.4},
		{name: "不认识的分类只算通用规则",
			in:   Input{AnswerText: "such as the algorithm, thus", Category: ParseCategory("astrology")},
			want: 0.8},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, s.QualityBonus(tc.in), 1e-9)
		})
	}
}

func TestScorer_EmptyTechnical(t *testing.T) {
	t.Run("enhanced", func(t *testing.T) {
		s := NewEnhanced(WithClock(fixedClock()))
		res := s.Score(Input{AnswerText: "", Category: CategoryTechnical}, rand.New(rand.NewSource(42)))
		assert.True(t, res.Score >= 3.2 && res.Score <= 4.0, "score %f", res.Score)
		assert.Equal(t, []string{
			"Addresses the core question directly",
			"Demonstrates basic understanding of the topic",
			"Uses appropriate professional terminology",
		}, res.Strengths)
		assert.Equal(t, []string{
			"Expand your answer with more detailed explanations and context",
			"Include specific real-world examples to strengthen your points",
			"Discuss trade-offs and compare alternative approaches",
			"Consider performance and scalability implications",
		}, res.Improvements)
		assert.Equal(t, 0, res.Details.Metadata.Tokens)
		assert.Equal(t, time.Duration(0), res.Details.Metadata.ProcessingTime)
	})
	t.Run("basic", func(t *testing.T) {
		res := NewBasic().Score(Input{Category: CategoryTechnical}, rand.New(rand.NewSource(42)))
		assert.True(t, res.Score >= 3.5 && res.Score <= 5.5, "score %f", res.Score)
		assert.Equal(t, []string{
			"Shows understanding of the core concepts",
			"Addresses the question directly",
			"Uses appropriate terminology",
		}, res.Strengths)
		assert.Equal(t, []string{
			"Consider providing more detailed explanations",
			"Include specific examples to strengthen your answer",
		}, res.Improvements)
	})
}

func TestScorer_TechnicalWithoutTradeOffs(t *testing.T) {
	text := passage(120, "for example", "therefore")
	require.Len(t, strings.Fields(text), 120)
	res := NewEnhanced().Score(Input{AnswerText: text, Category: CategoryTechnical}, rand.New(rand.NewSource(3)))
	assert.Contains(t, res.Improvements, "Discuss trade-offs and compare alternative approaches")
	assert.Contains(t, res.Improvements, "Consider performance and scalability implications")
	assert.NotContains(t, res.Improvements, "Include specific real-world examples to strengthen your points")
	assert.Contains(t, res.Strengths, "Comprehensive and thorough response demonstrating deep understanding")
	assert.Contains(t, res.Strengths, "Excellent use of concrete examples to illustrate concepts")
}

func TestScorer_BehavioralStar(t *testing.T) {
	text := "The situation was a failing release. My task was to stabilise it. " +
		"The action I took was to freeze features. The result was a clean launch."
	for _, s := range []*Scorer{NewEnhanced(), NewBasic()} {
		res := s.Score(Input{AnswerText: text, Category: CategoryBehavioral}, rand.New(rand.NewSource(5)))
		for _, imp := range res.Improvements {
			assert.NotContains(t, imp, "STAR")
		}
		if s.Variant() == VariantEnhanced {
			assert.Contains(t, res.Strengths, "Effectively structured using the STAR method")
			assert.Equal(t, []Resource{
				{Title: "STAR Method Guide", URL: "https://example.com/star", Type: "article"},
				{Title: "Behavioral Interview Preparation", URL: "https://example.com/behavioral", Type: "course"},
			}, res.Details.LearningResources)
		}
	}

	res := NewEnhanced().Score(Input{AnswerText: "the situation and the result", Category: CategoryBehavioral},
		rand.New(rand.NewSource(5)))
	assert.Contains(t, res.Improvements, "Strengthen your answer using STAR method - add task, action")
}

func TestScorer_Deterministic(t *testing.T) {
	in := Input{
		AnswerText: passage(140, "for instance", "because", "optimize", "trade-off. ok. fine. good. done."),
		Category:   CategoryTechnical,
	}
	for _, v := range []Variant{VariantBasic, VariantEnhanced} {
		s, err := New(v, WithClock(fixedClock()))
		require.NoError(t, err)
		first := s.Score(in, rand.New(rand.NewSource(2024)))
		second := s.Score(in, rand.New(rand.NewSource(2024)))
		assert.Equal(t, first, second)
	}
}

func TestScorer_DetailedFeedback(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		// 0.25 让抖动恰好为 0
		res := NewBasic().Score(Input{AnswerText: passage(30), Category: CategoryTechnical}, fixedRand(0.25))
		assert.Equal(t, 6.0, res.Score)
		assert.Equal(t, "gpt-4-simulation", res.Model)
		assert.Equal(t, "Decent attempt, but needs more depth. "+
			"Shows understanding of the core concepts Addresses the question directly. "+
			"To make your answer even stronger, consider providing more detailed explanations.",
			res.DetailedFeedback)
	})
	t.Run("enhanced", func(t *testing.T) {
		// 0.375 让总分的抖动恰好为 0
		res := NewEnhanced(WithClock(fixedClock())).
			Score(Input{AnswerText: passage(60, "because"), Category: CategoryHR}, fixedRand(0.375))
		assert.Equal(t, 7.3, res.Score)
		assert.Equal(t, []string{
			"Well-developed answer with good coverage of key points",
			"Clear logical reasoning and well-structured argumentation",
		}, res.Strengths)
		require.NotNil(t, res.Details)
		assert.Equal(t, "Good answer with room for enhancement. "+
			"Well-developed answer with good coverage of key points Clear logical reasoning and well-structured argumentation. "+
			"To elevate your response further, expand your answer with more detailed explanations and context. "+
			"Practice answering similar hr questions", res.DetailedFeedback)
		assert.Equal(t, []string{
			"Complete 3 more hr questions at this difficulty level",
			"Review your answer after 24 hours and self-evaluate",
			"Compare your answer with high-scoring responses",
		}, res.Details.PracticeSuggestions)
		assert.Empty(t, res.Details.LearningResources)
		meta := res.Details.Metadata
		assert.Equal(t, "gpt-4-enhanced-simulation", meta.Model)
		assert.Equal(t, "2.0", meta.Version)
		assert.Equal(t, 120, meta.Tokens)
		assert.Equal(t, time.Duration(0), meta.ProcessingTime)
		assert.InDelta(t, 0.705, meta.Confidence, 0.006)
		assert.Equal(t, "Focus on improving communication", res.Details.ActionItems[2])
	})
}

func TestScorer_UnspecifiedCategory(t *testing.T) {
	res := NewEnhanced().Score(Input{AnswerText: "the algorithm", Category: ParseCategory("astrology")},
		rand.New(rand.NewSource(9)))
	assert.Equal(t, "Practice answering similar general questions", res.Details.ActionItems[0])
	assert.Empty(t, res.Details.LearningResources)
	for _, imp := range res.Improvements {
		assert.NotContains(t, imp, "trade-offs")
	}
}

func TestSubScores_Weakest(t *testing.T) {
	testCases := []struct {
		name string
		sub  SubScores
		want string
	}{
		{name: "全部相同取 content", sub: SubScores{Content: 5, Structure: 5, Communication: 5}, want: "content"},
		{name: "structure 和 communication 相同", sub: SubScores{Content: 6, Structure: 4, Communication: 4}, want: "structure"},
		{name: "communication 最低", sub: SubScores{Content: 6, Structure: 7, Communication: 3}, want: "communication"},
		{name: "technical 不参与", sub: SubScores{Content: 6, Structure: 7, Communication: 8, TechnicalAccuracy: 1}, want: "content"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.sub.weakest())
		})
	}
}

func TestScorer_Concurrent(t *testing.T) {
	s := NewEnhanced()
	in := Input{AnswerText: passage(90, "such as"), Category: CategorySystemDesign}
	want := s.Score(in, rand.New(rand.NewSource(11)))
	want.Details.Metadata.ProcessingTime = 0
	results := make(chan Result, 16)
	for i := 0; i < 16; i++ {
		go func() {
			results <- s.Score(in, rand.New(rand.NewSource(11)))
		}()
	}
	for i := 0; i < 16; i++ {
		got := <-results
		got.Details.Metadata.ProcessingTime = 0
		assert.Equal(t, want, got)
	}
}
