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

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/coach/internal/feedback/internal/domain"
	"github.com/ecodeclub/coach/internal/feedback/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
)

var ErrAnswerNotFound = dao.ErrRecordNotFound

type AnswerRepository interface {
	Save(ctx context.Context, a domain.Answer, f domain.Feedback) (domain.Answer, domain.Feedback, error)
	FindByUUID(ctx context.Context, uuid string) (domain.Answer, error)
	FindFeedback(ctx context.Context, answerId int64) (domain.Feedback, error)
	Rate(ctx context.Context, answerId int64, r domain.Rating) error
	CountByUid(ctx context.Context, uid int64) (int64, error)
}

type answerRepository struct {
	dao dao.AnswerDAO
}

func NewAnswerRepository(d dao.AnswerDAO) AnswerRepository {
	return &answerRepository{dao: d}
}

func (repo *answerRepository) Save(ctx context.Context, a domain.Answer, f domain.Feedback) (domain.Answer, domain.Feedback, error) {
	aid, fid, err := repo.dao.Save(ctx, repo.answerToEntity(a), repo.feedbackToEntity(f))
	if err != nil {
		return domain.Answer{}, domain.Feedback{}, err
	}
	now := time.Now()
	a.Id, a.Ctime = aid, now
	f.Id, f.AnswerId, f.Ctime = fid, aid, now
	return a, f, nil
}

func (repo *answerRepository) FindByUUID(ctx context.Context, uuid string) (domain.Answer, error) {
	a, err := repo.dao.FindByUUID(ctx, uuid)
	return repo.answerToDomain(a), err
}

func (repo *answerRepository) FindFeedback(ctx context.Context, answerId int64) (domain.Feedback, error) {
	f, err := repo.dao.FindFeedback(ctx, answerId)
	return repo.feedbackToDomain(f), err
}

func (repo *answerRepository) Rate(ctx context.Context, answerId int64, r domain.Rating) error {
	return repo.dao.Rate(ctx, answerId, r.Score, r.Helpful)
}

func (repo *answerRepository) CountByUid(ctx context.Context, uid int64) (int64, error) {
	return repo.dao.CountByUid(ctx, uid)
}

func (repo *answerRepository) answerToEntity(a domain.Answer) dao.Answer {
	return dao.Answer{
		Uuid:           a.UUID,
		Uid:            a.Uid,
		InterviewId:    a.InterviewId,
		QuestionId:     a.QuestionId,
		Text:           a.Text,
		AudioUrl:       a.AudioURL,
		VideoUrl:       a.VideoURL,
		TimeSpent:      a.TimeSpent,
		Score:          a.Score,
		WordCount:      a.WordCount,
		CharacterCount: a.CharacterCount,
		ClarityScore:   a.Quality.Clarity,
		DepthScore:     a.Quality.Depth,
		StructureScore: a.Quality.Structure,
		Tid:            a.Tid,
	}
}

func (repo *answerRepository) answerToDomain(a dao.Answer) domain.Answer {
	return domain.Answer{
		Id:             a.Id,
		UUID:           a.Uuid,
		Uid:            a.Uid,
		InterviewId:    a.InterviewId,
		QuestionId:     a.QuestionId,
		Text:           a.Text,
		AudioURL:       a.AudioUrl,
		VideoURL:       a.VideoUrl,
		TimeSpent:      a.TimeSpent,
		Score:          a.Score,
		WordCount:      a.WordCount,
		CharacterCount: a.CharacterCount,
		Quality: domain.Quality{
			Clarity:   a.ClarityScore,
			Depth:     a.DepthScore,
			Structure: a.StructureScore,
		},
		Tid:   a.Tid,
		Ctime: time.UnixMilli(a.Ctime),
	}
}

func (repo *answerRepository) feedbackToEntity(f domain.Feedback) dao.Feedback {
	res := dao.Feedback{
		Uuid:             f.UUID,
		Uid:              f.Uid,
		AnswerId:         f.AnswerId,
		Score:            f.Score,
		Strengths:        sqlx.JsonColumn[[]string]{Val: f.Strengths, Valid: true},
		Improvements:     sqlx.JsonColumn[[]string]{Val: f.Improvements, Valid: true},
		DetailedFeedback: f.DetailedFeedback,
		Variant:          f.Variant,
		AiModel:          f.Model,
		UserRating:       f.Rating.Score,
		WasHelpful:       f.Rating.Helpful,
	}
	if f.Details != nil {
		d := f.Details
		res.Details = sqlx.JsonColumn[dao.Details]{
			Valid: true,
			Val: dao.Details{
				Content:           d.Content,
				Structure:         d.Structure,
				Communication:     d.Communication,
				TechnicalAccuracy: d.TechnicalAccuracy,
				ActionItems:       d.ActionItems,
				LearningResources: slice.Map(d.LearningResources, func(idx int, src domain.Resource) dao.Resource {
					return dao.Resource(src)
				}),
				PracticeSuggestions: d.PracticeSuggestions,
				ModelVersion:        d.ModelVersion,
				ProcessingTime:      d.ProcessingTime,
				Confidence:          d.Confidence,
				Tokens:              d.Tokens,
			},
		}
	}
	return res
}

func (repo *answerRepository) feedbackToDomain(f dao.Feedback) domain.Feedback {
	res := domain.Feedback{
		Id:               f.Id,
		UUID:             f.Uuid,
		Uid:              f.Uid,
		AnswerId:         f.AnswerId,
		Score:            f.Score,
		Strengths:        f.Strengths.Val,
		Improvements:     f.Improvements.Val,
		DetailedFeedback: f.DetailedFeedback,
		Variant:          f.Variant,
		Model:            f.AiModel,
		Rating: domain.Rating{
			Score:   f.UserRating,
			Helpful: f.WasHelpful,
		},
		Ctime: time.UnixMilli(f.Ctime),
	}
	if f.Details.Valid {
		d := f.Details.Val
		res.Details = &domain.Details{
			Content:           d.Content,
			Structure:         d.Structure,
			Communication:     d.Communication,
			TechnicalAccuracy: d.TechnicalAccuracy,
			ActionItems:       d.ActionItems,
			LearningResources: slice.Map(d.LearningResources, func(idx int, src dao.Resource) domain.Resource {
				return domain.Resource(src)
			}),
			PracticeSuggestions: d.PracticeSuggestions,
			ModelVersion:        d.ModelVersion,
			ProcessingTime:      d.ProcessingTime,
			Confidence:          d.Confidence,
			Tokens:              d.Tokens,
		}
	}
	return res
}
