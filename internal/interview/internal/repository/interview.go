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

	"github.com/ecodeclub/coach/internal/interview/internal/domain"
	"github.com/ecodeclub/coach/internal/interview/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

var (
	ErrInterviewNotFound = dao.ErrRecordNotFound
	ErrStatusConflict    = dao.ErrStatusConflict
)

//go:generate mockgen -source=./interview.go -package=repomocks -destination=mocks/interview.mock.go InterviewRepository
type InterviewRepository interface {
	Create(ctx context.Context, itv domain.Interview) (int64, error)
	FindByUUID(ctx context.Context, uid int64, uuid string) (domain.Interview, error)
	Complete(ctx context.Context, itv domain.Interview) error
	List(ctx context.Context, uid int64, status domain.Status, offset, limit int) ([]domain.Interview, error)
	CountByUid(ctx context.Context, uid int64, status domain.Status) (int64, error)
	RecordAnswer(ctx context.Context, id int64, record domain.AnswerRecord) error
	Summary(ctx context.Context, uid int64) (domain.Summary, error)
	CompletedSince(ctx context.Context, uid int64, since time.Time) ([]domain.Interview, error)
	RecentCompleted(ctx context.Context, uid int64, limit int) ([]domain.Interview, error)
	Count(ctx context.Context) (int64, error)
	Recent(ctx context.Context, limit int) ([]domain.Interview, error)
	FindStaleIds(ctx context.Context, startedBefore time.Time, limit int) ([]int64, error)
	Abandon(ctx context.Context, ids []int64) (int64, error)
}

type interviewRepository struct {
	dao dao.InterviewDAO
}

func NewInterviewRepository(d dao.InterviewDAO) InterviewRepository {
	return &interviewRepository{dao: d}
}

func (r *interviewRepository) Create(ctx context.Context, itv domain.Interview) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(itv))
}

func (r *interviewRepository) FindByUUID(ctx context.Context, uid int64, uuid string) (domain.Interview, error) {
	res, err := r.dao.FindByUUID(ctx, uid, uuid)
	return r.toDomain(res), err
}

func (r *interviewRepository) Complete(ctx context.Context, itv domain.Interview) error {
	return r.dao.Complete(ctx, r.toEntity(itv))
}

func (r *interviewRepository) List(ctx context.Context, uid int64, status domain.Status, offset, limit int) ([]domain.Interview, error) {
	res, err := r.dao.List(ctx, uid, status.String(), offset, limit)
	return r.toDomains(res), err
}

func (r *interviewRepository) CountByUid(ctx context.Context, uid int64, status domain.Status) (int64, error) {
	return r.dao.CountByUid(ctx, uid, status.String())
}

func (r *interviewRepository) RecordAnswer(ctx context.Context, id int64, record domain.AnswerRecord) error {
	return r.dao.IncrAnswer(ctx, id, record.Score, record.Technical, record.TimeSpent)
}

func (r *interviewRepository) Summary(ctx context.Context, uid int64) (domain.Summary, error) {
	res, err := r.dao.Summary(ctx, uid)
	return domain.Summary{
		Completed:     res.Completed,
		AverageScore:  res.AverageScore,
		TotalDuration: res.TotalDuration,
	}, err
}

func (r *interviewRepository) CompletedSince(ctx context.Context, uid int64, since time.Time) ([]domain.Interview, error) {
	res, err := r.dao.CompletedSince(ctx, uid, since.UnixMilli())
	return r.toDomains(res), err
}

func (r *interviewRepository) RecentCompleted(ctx context.Context, uid int64, limit int) ([]domain.Interview, error) {
	res, err := r.dao.RecentCompleted(ctx, uid, limit)
	return r.toDomains(res), err
}

func (r *interviewRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *interviewRepository) Recent(ctx context.Context, limit int) ([]domain.Interview, error) {
	res, err := r.dao.Recent(ctx, limit)
	return r.toDomains(res), err
}

func (r *interviewRepository) FindStaleIds(ctx context.Context, startedBefore time.Time, limit int) ([]int64, error) {
	return r.dao.FindStaleIds(ctx, startedBefore.UnixMilli(), limit)
}

func (r *interviewRepository) Abandon(ctx context.Context, ids []int64) (int64, error) {
	return r.dao.Abandon(ctx, ids)
}

func (r *interviewRepository) toDomains(src []dao.Interview) []domain.Interview {
	return slice.Map(src, func(idx int, src dao.Interview) domain.Interview {
		return r.toDomain(src)
	})
}

func (r *interviewRepository) toEntity(itv domain.Interview) dao.Interview {
	res := dao.Interview{
		Id:                itv.Id,
		Uid:               itv.Uid,
		Uuid:              itv.UUID,
		Field:             itv.Field,
		Level:             itv.Level,
		Type:              itv.Type,
		Company:           itv.Company,
		Mode:              itv.Mode,
		Status:            itv.Status.String(),
		QuestionsTotal:    itv.QuestionsTotal,
		QuestionsAnswered: itv.QuestionsAnswered,
		OverallScore:      itv.OverallScore,
		TechnicalScore:    itv.TechnicalScore,
		AverageAnswerTime: itv.AverageAnswerTime,
		Duration:          itv.Duration,
		QualityRating:     itv.QualityRating,
	}
	if !itv.StartedAt.IsZero() {
		res.StartedAt = itv.StartedAt.UnixMilli()
	}
	if !itv.CompletedAt.IsZero() {
		res.CompletedAt = itv.CompletedAt.UnixMilli()
	}
	return res
}

func (r *interviewRepository) toDomain(itv dao.Interview) domain.Interview {
	res := domain.Interview{
		Id:                itv.Id,
		Uid:               itv.Uid,
		UUID:              itv.Uuid,
		Field:             itv.Field,
		Level:             itv.Level,
		Type:              itv.Type,
		Company:           itv.Company,
		Mode:              itv.Mode,
		Status:            domain.Status(itv.Status),
		QuestionsTotal:    itv.QuestionsTotal,
		QuestionsAnswered: itv.QuestionsAnswered,
		OverallScore:      itv.OverallScore,
		TechnicalScore:    itv.TechnicalScore,
		AverageAnswerTime: itv.AverageAnswerTime,
		Duration:          itv.Duration,
		QualityRating:     itv.QualityRating,
		Answers: domain.AnswerStats{
			Count:             itv.AnswerCount,
			ScoreSum:          itv.ScoreSum,
			TechnicalCount:    itv.TechnicalCount,
			TechnicalScoreSum: itv.TechnicalScoreSum,
			TimedCount:        itv.TimedCount,
			TimeSpentSum:      itv.TimeSpentSum,
		},
		StartedAt: time.UnixMilli(itv.StartedAt),
	}
	if itv.CompletedAt > 0 {
		res.CompletedAt = time.UnixMilli(itv.CompletedAt)
	}
	return res
}
