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

	"github.com/ecodeclub/coach/internal/question/internal/domain"
	"github.com/ecodeclub/coach/internal/question/internal/repository/cache"
	"github.com/ecodeclub/coach/internal/question/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/gotomicro/ego/core/elog"
)

var ErrQuestionNotFound = dao.ErrRecordNotFound

type QuestionRepository interface {
	Create(ctx context.Context, q domain.Question) (domain.Question, error)
	FindByUUID(ctx context.Context, uuid string) (domain.Question, error)
	List(ctx context.Context, filter domain.Filter, offset, limit int) ([]domain.Question, int64, error)
	Count(ctx context.Context, filter domain.Filter) (int64, error)
	// FindAt 按照列表的顺序取第 offset 个
	FindAt(ctx context.Context, filter domain.Filter, offset int) (domain.Question, error)
	IncrUsage(ctx context.Context, id int64) error
	UpdateMetrics(ctx context.Context, id int64, fn func(m domain.Metrics) domain.Metrics) error
}

type CachedQuestionRepository struct {
	dao    dao.QuestionDAO
	cache  cache.QuestionCache
	logger *elog.Component
}

func NewCachedQuestionRepository(d dao.QuestionDAO, c cache.QuestionCache) QuestionRepository {
	return &CachedQuestionRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (repo *CachedQuestionRepository) Create(ctx context.Context, q domain.Question) (domain.Question, error) {
	entity := repo.toEntity(q)
	id, err := repo.dao.Insert(ctx, entity)
	if err != nil {
		return domain.Question{}, err
	}
	q.Id = id
	err = repo.cache.InvalidateList(ctx)
	if err != nil {
		repo.logger.Error("列表缓存失效失败", elog.FieldErr(err))
	}
	return q, nil
}

func (repo *CachedQuestionRepository) FindByUUID(ctx context.Context, uuid string) (domain.Question, error) {
	res, err := repo.cache.GetQuestion(ctx, uuid)
	if err == nil {
		return res, nil
	}
	q, err := repo.dao.FindByUUID(ctx, uuid)
	if err != nil {
		return domain.Question{}, err
	}
	res = repo.toDomain(q)
	err = repo.cache.SetQuestion(ctx, res)
	if err != nil {
		repo.logger.Error("缓存题目失败", elog.FieldErr(err), elog.String("uuid", uuid))
	}
	return res, nil
}

func (repo *CachedQuestionRepository) List(ctx context.Context, filter domain.Filter, offset, limit int) ([]domain.Question, int64, error) {
	page, err := repo.cache.GetList(ctx, filter, offset, limit)
	if err == nil {
		return page.Questions, page.Total, nil
	}
	df := repo.toFilter(filter)
	list, err := repo.dao.List(ctx, df, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := repo.dao.Count(ctx, df)
	if err != nil {
		return nil, 0, err
	}
	page = cache.ListPage{
		Questions: slice.Map(list, func(idx int, src dao.Question) domain.Question {
			return repo.toDomain(src)
		}),
		Total: total,
	}
	err = repo.cache.SetList(ctx, filter, offset, limit, page)
	if err != nil {
		repo.logger.Error("缓存题目列表失败", elog.FieldErr(err))
	}
	return page.Questions, page.Total, nil
}

func (repo *CachedQuestionRepository) Count(ctx context.Context, filter domain.Filter) (int64, error) {
	return repo.dao.Count(ctx, repo.toFilter(filter))
}

func (repo *CachedQuestionRepository) FindAt(ctx context.Context, filter domain.Filter, offset int) (domain.Question, error) {
	list, err := repo.dao.List(ctx, repo.toFilter(filter), offset, 1)
	if err != nil {
		return domain.Question{}, err
	}
	if len(list) == 0 {
		return domain.Question{}, ErrQuestionNotFound
	}
	return repo.toDomain(list[0]), nil
}

func (repo *CachedQuestionRepository) IncrUsage(ctx context.Context, id int64) error {
	return repo.dao.IncrUsage(ctx, id)
}

func (repo *CachedQuestionRepository) UpdateMetrics(ctx context.Context, id int64,
	fn func(m domain.Metrics) domain.Metrics) error {
	return repo.dao.UpdateMetrics(ctx, id, func(q *dao.Question) {
		m := fn(repo.toDomain(*q).Metrics)
		q.Samples = m.Samples
		q.AvgScore = m.AvgScore
		q.AvgCompletionTime = m.AvgCompletionTime
		q.DifficultyRating = m.DifficultyRating
	})
}

func (repo *CachedQuestionRepository) toFilter(f domain.Filter) dao.Filter {
	return dao.Filter{
		Field:      f.Field,
		Level:      f.Level,
		Category:   f.Category,
		Difficulty: f.Difficulty,
	}
}

func (repo *CachedQuestionRepository) toEntity(q domain.Question) dao.Question {
	return dao.Question{
		Uuid:               q.UUID,
		Text:               q.Text,
		Category:           q.Category,
		Subcategory:        q.Subcategory,
		Field:              q.Field,
		Level:              q.Level,
		Difficulty:         q.Difficulty,
		Company:            q.Company,
		Tags:               jsonColumn(q.Tags),
		Keywords:           jsonColumn(q.Keywords),
		Hint:               q.Hint,
		SampleAnswer:       q.SampleAnswer,
		EvaluationCriteria: jsonColumn(q.EvaluationCriteria),
		FollowUpQuestions:  jsonColumn(q.FollowUpQuestions),
		IdealAnswerLength:  q.IdealAnswerLength,
		TimeLimit:          q.TimeLimit,
		IsActive:           q.IsActive,
	}
}

func (repo *CachedQuestionRepository) toDomain(q dao.Question) domain.Question {
	return domain.Question{
		Id:                 q.Id,
		UUID:               q.Uuid,
		Text:               q.Text,
		Category:           q.Category,
		Subcategory:        q.Subcategory,
		Field:              q.Field,
		Level:              q.Level,
		Difficulty:         q.Difficulty,
		Company:            q.Company,
		Tags:               q.Tags.Val,
		Keywords:           q.Keywords.Val,
		Hint:               q.Hint,
		SampleAnswer:       q.SampleAnswer,
		EvaluationCriteria: q.EvaluationCriteria.Val,
		FollowUpQuestions:  q.FollowUpQuestions.Val,
		IdealAnswerLength:  q.IdealAnswerLength,
		TimeLimit:          q.TimeLimit,
		UsageCount:         q.UsageCount,
		Metrics: domain.Metrics{
			Samples:           q.Samples,
			AvgScore:          q.AvgScore,
			AvgCompletionTime: q.AvgCompletionTime,
			DifficultyRating:  q.DifficultyRating,
		},
		IsActive: q.IsActive,
		Ctime:    time.UnixMilli(q.Ctime),
	}
}

func jsonColumn(vals []string) sqlx.JsonColumn[[]string] {
	return sqlx.JsonColumn[[]string]{Val: vals, Valid: len(vals) > 0}
}
