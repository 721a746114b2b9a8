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

package service

import (
	"context"
	"math/rand/v2"

	"github.com/ecodeclub/coach/internal/question/internal/domain"
	"github.com/ecodeclub/coach/internal/question/internal/repository"
	"github.com/google/uuid"
	"github.com/gotomicro/ego/core/elog"
	"github.com/pkg/errors"
)

var ErrQuestionNotFound = repository.ErrQuestionNotFound

const defaultDifficulty = domain.DifficultyMedium

//go:generate mockgen -source=./question.go -package=svcmocks -destination=mocks/question.mock.go Service
type Service interface {
	List(ctx context.Context, filter domain.Filter, offset, limit int) ([]domain.Question, int64, error)
	FindByUUID(ctx context.Context, uuid string) (domain.Question, error)
	// Random 随机挑一道符合条件的题目，没有的话从整个题库里面挑，并且累加使用次数
	Random(ctx context.Context, filter domain.Filter) (domain.Question, error)
	// Pick 随机挑一道符合条件的题目，不会放宽条件，也不会累加使用次数
	Pick(ctx context.Context, filter domain.Filter) (domain.Question, error)
	Create(ctx context.Context, q domain.Question) (domain.Question, error)
	Count(ctx context.Context) (int64, error)
	// RecordScore 用新的答案更新题目的统计指标
	RecordScore(ctx context.Context, qid int64, score float64, timeSpent int64) error
}

type service struct {
	repo repository.QuestionRepository
	// intn 返回 [0, n) 之间的随机数
	intn   func(n int64) int64
	logger *elog.Component
}

func NewService(repo repository.QuestionRepository) Service {
	return &service{
		repo:   repo,
		intn:   rand.Int64N,
		logger: elog.DefaultLogger,
	}
}

func (s *service) List(ctx context.Context, filter domain.Filter, offset, limit int) ([]domain.Question, int64, error) {
	return s.repo.List(ctx, filter, offset, limit)
}

func (s *service) FindByUUID(ctx context.Context, uuid string) (domain.Question, error) {
	return s.repo.FindByUUID(ctx, uuid)
}

func (s *service) Random(ctx context.Context, filter domain.Filter) (domain.Question, error) {
	q, err := s.Pick(ctx, filter)
	if errors.Is(err, ErrQuestionNotFound) && !filter.IsEmpty() {
		q, err = s.Pick(ctx, domain.Filter{})
	}
	if err != nil {
		return domain.Question{}, err
	}
	err = s.repo.IncrUsage(ctx, q.Id)
	if err != nil {
		return domain.Question{}, errors.Wrapf(err, "累加使用次数失败 qid %d", q.Id)
	}
	q.UsageCount++
	return q, nil
}

func (s *service) Pick(ctx context.Context, filter domain.Filter) (domain.Question, error) {
	cnt, err := s.repo.Count(ctx, filter)
	if err != nil {
		return domain.Question{}, err
	}
	if cnt == 0 {
		return domain.Question{}, ErrQuestionNotFound
	}
	return s.repo.FindAt(ctx, filter, int(s.intn(cnt)))
}

func (s *service) Create(ctx context.Context, q domain.Question) (domain.Question, error) {
	q.UUID = uuid.NewString()
	q.IsActive = true
	if q.Difficulty == "" {
		q.Difficulty = defaultDifficulty
	}
	res, err := s.repo.Create(ctx, q)
	if err != nil {
		return domain.Question{}, err
	}
	s.logger.Info("新增题目", elog.Int64("qid", res.Id), elog.String("category", res.Category))
	return res, nil
}

func (s *service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx, domain.Filter{})
}

func (s *service) RecordScore(ctx context.Context, qid int64, score float64, timeSpent int64) error {
	if qid <= 0 {
		return nil
	}
	return s.repo.UpdateMetrics(ctx, qid, func(m domain.Metrics) domain.Metrics {
		return m.Record(score, float64(timeSpent))
	})
}
