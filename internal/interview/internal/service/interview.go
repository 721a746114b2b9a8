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
	"time"

	"github.com/ecodeclub/coach/internal/interview/internal/domain"
	"github.com/ecodeclub/coach/internal/interview/internal/repository"
	"github.com/ecodeclub/coach/internal/user"
	"github.com/google/uuid"
	"github.com/gotomicro/ego/core/elog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInterviewNotFound = repository.ErrInterviewNotFound
	ErrInterviewClosed   = errors.New("面试已经结束")
)

const (
	defaultType           = "technical"
	defaultMode           = "text"
	defaultQuestionsTotal = 5
)

//go:generate mockgen -source=./interview.go -package=svcmocks -destination=mocks/interview.mock.go Service
type Service interface {
	Start(ctx context.Context, itv domain.Interview) (domain.Interview, error)
	// Complete 结束面试并且更新用户的练习统计
	Complete(ctx context.Context, uid int64, uuid string, c domain.Completion) (domain.Interview, error)
	List(ctx context.Context, uid int64, status domain.Status, offset, limit int) ([]domain.Interview, int64, error)
	FindByUUID(ctx context.Context, uid int64, uuid string) (domain.Interview, error)
	RecordAnswer(ctx context.Context, id int64, record domain.AnswerRecord) error
	Summary(ctx context.Context, uid int64) (domain.Summary, error)
	CompletedSince(ctx context.Context, uid int64, since time.Time) ([]domain.Interview, error)
	RecentCompleted(ctx context.Context, uid int64, limit int) ([]domain.Interview, error)
	Count(ctx context.Context) (int64, error)
	Recent(ctx context.Context, limit int) ([]domain.Interview, error)
	// AbandonStale 把太久没有结束的面试标记为放弃，返回处理的数量
	AbandonStale(ctx context.Context, startedBefore time.Time, batch int) (int64, error)
}

type service struct {
	repo    repository.InterviewRepository
	userSvc user.Service
	logger  *elog.Component
}

func NewService(repo repository.InterviewRepository, userSvc user.Service) Service {
	return &service{
		repo:    repo,
		userSvc: userSvc,
		logger:  elog.DefaultLogger,
	}
}

func (s *service) Start(ctx context.Context, itv domain.Interview) (domain.Interview, error) {
	itv.UUID = uuid.NewString()
	itv.Status = domain.StatusInProgress
	itv.StartedAt = time.Now()
	if itv.Type == "" {
		itv.Type = defaultType
	}
	if itv.Mode == "" {
		itv.Mode = defaultMode
	}
	if itv.QuestionsTotal <= 0 {
		itv.QuestionsTotal = defaultQuestionsTotal
	}
	id, err := s.repo.Create(ctx, itv)
	if err != nil {
		return domain.Interview{}, err
	}
	itv.Id = id
	s.logger.Info("面试开始", elog.Int64("uid", itv.Uid), elog.String("interview", itv.UUID))
	return itv, nil
}

func (s *service) Complete(ctx context.Context, uid int64, uuid string, c domain.Completion) (domain.Interview, error) {
	itv, err := s.repo.FindByUUID(ctx, uid, uuid)
	if err != nil {
		return domain.Interview{}, err
	}
	if itv.Closed() {
		return domain.Interview{}, ErrInterviewClosed
	}
	itv = itv.Complete(c, time.Now())
	err = s.repo.Complete(ctx, itv)
	if errors.Is(err, repository.ErrStatusConflict) {
		return domain.Interview{}, ErrInterviewClosed
	}
	if err != nil {
		return domain.Interview{}, err
	}
	err = s.userSvc.RecordPractice(ctx, uid, itv.Duration, itv.OverallScore, itv.CompletedAt)
	if err != nil {
		// 统计数据更新失败不影响面试本身
		s.logger.Error("更新用户练习统计失败",
			elog.FieldErr(err),
			elog.Int64("uid", uid),
			elog.String("interview", itv.UUID))
	}
	s.logger.Info("面试结束",
		elog.Int64("uid", uid),
		elog.String("interview", itv.UUID),
		elog.Any("score", itv.OverallScore))
	return itv, nil
}

func (s *service) List(ctx context.Context, uid int64, status domain.Status, offset, limit int) ([]domain.Interview, int64, error) {
	var (
		eg    errgroup.Group
		list  []domain.Interview
		total int64
	)
	eg.Go(func() error {
		var err error
		list, err = s.repo.List(ctx, uid, status, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByUid(ctx, uid, status)
		return err
	})
	return list, total, eg.Wait()
}

func (s *service) FindByUUID(ctx context.Context, uid int64, uuid string) (domain.Interview, error) {
	return s.repo.FindByUUID(ctx, uid, uuid)
}

func (s *service) RecordAnswer(ctx context.Context, id int64, record domain.AnswerRecord) error {
	return s.repo.RecordAnswer(ctx, id, record)
}

func (s *service) Summary(ctx context.Context, uid int64) (domain.Summary, error) {
	return s.repo.Summary(ctx, uid)
}

func (s *service) CompletedSince(ctx context.Context, uid int64, since time.Time) ([]domain.Interview, error) {
	return s.repo.CompletedSince(ctx, uid, since)
}

func (s *service) RecentCompleted(ctx context.Context, uid int64, limit int) ([]domain.Interview, error) {
	return s.repo.RecentCompleted(ctx, uid, limit)
}

func (s *service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *service) Recent(ctx context.Context, limit int) ([]domain.Interview, error) {
	return s.repo.Recent(ctx, limit)
}

func (s *service) AbandonStale(ctx context.Context, startedBefore time.Time, batch int) (int64, error) {
	var total int64
	for {
		ids, err := s.repo.FindStaleIds(ctx, startedBefore, batch)
		if err != nil {
			return total, errors.Wrap(err, "查找超时面试失败")
		}
		cnt, err := s.repo.Abandon(ctx, ids)
		if err != nil {
			return total, errors.Wrap(err, "放弃超时面试失败")
		}
		total += cnt
		if len(ids) < batch {
			return total, nil
		}
	}
}
