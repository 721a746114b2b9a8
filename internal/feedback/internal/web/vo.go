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

package web

import (
	"math"

	"github.com/ecodeclub/coach/internal/feedback/internal/domain"
	"github.com/ecodeclub/ekit/slice"
)

type SubmitReq struct {
	InterviewId string `json:"interviewId" validate:"required"`
	QuestionId  string `json:"questionId"`
	Answer      string `json:"answer" validate:"max=20000"`
	// TimeSpent 秒
	TimeSpent int64  `json:"timeSpent" validate:"gte=0"`
	AudioUrl  string `json:"audioUrl" validate:"omitempty,url,max=256"`
	VideoUrl  string `json:"videoUrl" validate:"omitempty,url,max=256"`
}

type RateReq struct {
	Rating  int  `json:"rating"`
	Helpful bool `json:"helpful"`
}

type Answer struct {
	Id             string  `json:"id"`
	Text           string  `json:"text"`
	AudioUrl       string  `json:"audioUrl,omitempty"`
	VideoUrl       string  `json:"videoUrl,omitempty"`
	Score          float64 `json:"score"`
	TimeSpent      int64   `json:"timeSpent"`
	WordCount      int     `json:"wordCount"`
	SubmittedAt    int64   `json:"submittedAt"`
	ClarityScore   float64 `json:"clarityScore"`
	DepthScore     float64 `json:"depthScore"`
	StructureScore float64 `json:"structureScore"`
}

type Feedback struct {
	Id                     string     `json:"id"`
	Score                  float64    `json:"score"`
	Strengths              []string   `json:"strengths"`
	Improvements           []string   `json:"improvements"`
	DetailedFeedback       string     `json:"detailedFeedback"`
	GeneratedAt            int64      `json:"generatedAt"`
	AiModel                string     `json:"aiModel"`
	ContentScore           float64    `json:"contentScore,omitempty"`
	StructureScore         float64    `json:"structureScore,omitempty"`
	CommunicationScore     float64    `json:"communicationScore,omitempty"`
	TechnicalAccuracyScore float64    `json:"technicalAccuracyScore,omitempty"`
	ActionItems            []string   `json:"actionItems,omitempty"`
	LearningResources      []Resource `json:"learningResources,omitempty"`
	PracticeSuggestions    []string   `json:"practiceSuggestions,omitempty"`
	AiConfidence           float64    `json:"aiConfidence,omitempty"`
	UserRating             int        `json:"userRating,omitempty"`
	WasHelpful             bool       `json:"wasHelpful,omitempty"`
}

type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"`
}

type AnswerFeedback struct {
	Answer   Answer   `json:"answer"`
	Feedback Feedback `json:"feedback"`
}

func newAnswerFeedback(a domain.Answer, f domain.Feedback) AnswerFeedback {
	return AnswerFeedback{
		Answer:   newAnswer(a),
		Feedback: newFeedback(f),
	}
}

func newAnswer(a domain.Answer) Answer {
	return Answer{
		Id:             a.UUID,
		Text:           a.Text,
		AudioUrl:       a.AudioURL,
		VideoUrl:       a.VideoURL,
		Score:          a.Score,
		TimeSpent:      a.TimeSpent,
		WordCount:      a.WordCount,
		SubmittedAt:    a.Ctime.UnixMilli(),
		ClarityScore:   round2(a.Quality.Clarity),
		DepthScore:     round2(a.Quality.Depth),
		StructureScore: round2(a.Quality.Structure),
	}
}

func newFeedback(f domain.Feedback) Feedback {
	res := Feedback{
		Id:               f.UUID,
		Score:            f.Score,
		Strengths:        f.Strengths,
		Improvements:     f.Improvements,
		DetailedFeedback: f.DetailedFeedback,
		GeneratedAt:      f.Ctime.UnixMilli(),
		AiModel:          f.Model,
		UserRating:       f.Rating.Score,
		WasHelpful:       f.Rating.Helpful,
	}
	if d := f.Details; d != nil {
		res.ContentScore = d.Content
		res.StructureScore = d.Structure
		res.CommunicationScore = d.Communication
		res.TechnicalAccuracyScore = d.TechnicalAccuracy
		res.ActionItems = d.ActionItems
		res.LearningResources = slice.Map(d.LearningResources, func(idx int, src domain.Resource) Resource {
			return Resource(src)
		})
		res.PracticeSuggestions = d.PracticeSuggestions
		res.AiConfidence = d.Confidence
	}
	return res
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
