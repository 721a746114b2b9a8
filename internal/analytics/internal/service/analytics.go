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
	"math"
	"time"

	"github.com/ecodeclub/coach/internal/analytics/internal/domain"
	"github.com/ecodeclub/coach/internal/analytics/internal/repository/cache"
	"github.com/ecodeclub/coach/internal/feedback"
	"github.com/ecodeclub/coach/internal/interview"
	"github.com/ecodeclub/coach/internal/question"
	"github.com/ecodeclub/coach/internal/user"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var ErrUserNotFound = user.ErrUserNotFound

const (
	recentCompletedLimit  = 5
	recentUsersLimit      = 5
	recentInterviewsLimit = 10
	performanceWindow     = 30 * 24 * time.Hour
	performanceDateLayout = "2006-01-02"
)

type Service interface {
	Overview(ctx context.Context, uid int64) (domain.Overview, error)
	// Performance 最近 30 天完成的面试，按照完成时间升序
	Performance(ctx context.Context, uid int64) ([]domain.PerformancePoint, error)
	AdminStats(ctx context.Context) (domain.AdminStats, error)
	// Status 数据库或者 redis 不可用也会返回结果
	Status(ctx context.Context) domain.Status
}

// Pinger 检查某个依赖是否可用
type Pinger func(ctx context.Context) error

type Pingers struct {
	DB    Pinger
	Redis Pinger
}

type service struct {
	userSvc      user.Service
	interviewSvc interview.Service
	questionSvc  question.Service
	feedbackSvc  feedback.Service
	cache        cache.AnalyticsCache
	pingers      Pingers
	startAt      time.Time
	now          func() time.Time
	logger       *elog.Component
}

func NewService(userSvc user.Service,
	interviewSvc interview.Service,
	questionSvc question.Service,
	feedbackSvc feedback.Service,
	c cache.AnalyticsCache,
	pingers Pingers) Service {
	return &service{
		userSvc:      userSvc,
		interviewSvc: interviewSvc,
		questionSvc:  questionSvc,
		feedbackSvc:  feedbackSvc,
		cache:        c,
		pingers:      pingers,
		startAt:      time.Now(),
		now:          time.Now,
		logger:       elog.DefaultLogger,
	}
}

func (s *service) Overview(ctx context.Context, uid int64) (domain.Overview, error) {
	res, err := s.cache.GetOverview(ctx, uid)
	if err == nil {
		return res, nil
	}
	s.logCacheErr(err, "overview", uid)

	var (
		eg      errgroup.Group
		summary interview.Summary
		profile user.User
		answers int64
		recent  []interview.Interview
	)
	eg.Go(func() error {
		var err error
		summary, err = s.interviewSvc.Summary(ctx, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		profile, err = s.userSvc.Profile(ctx, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		answers, err = s.feedbackSvc.CountByUser(ctx, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		recent, err = s.interviewSvc.RecentCompleted(ctx, uid, recentCompletedLimit)
		return err
	})
	if err = eg.Wait(); err != nil {
		return domain.Overview{}, err
	}
	res = domain.Overview{
		TotalInterviews:   summary.Completed,
		AverageScore:      math.Round(summary.AverageScore*10) / 10,
		TotalPracticeTime: summary.TotalDuration,
		CurrentStreak:     profile.Stats.CurrentStreak,
		TotalAnswers:      answers,
		RecentInterviews:  slice.Map(recent, s.toInterview),
	}
	if err = s.cache.SetOverview(ctx, uid, res); err != nil {
		s.logger.Error("缓存用户概况失败", elog.FieldErr(err), elog.Int64("uid", uid))
	}
	return res, nil
}

func (s *service) Performance(ctx context.Context, uid int64) ([]domain.PerformancePoint, error) {
	res, err := s.cache.GetPerformance(ctx, uid)
	if err == nil {
		return res, nil
	}
	s.logCacheErr(err, "performance", uid)

	itvs, err := s.interviewSvc.CompletedSince(ctx, uid, s.now().Add(-performanceWindow))
	if err != nil {
		return nil, errors.Wrap(err, "查询最近完成的面试失败")
	}
	res = slice.Map(itvs, func(idx int, src interview.Interview) domain.PerformancePoint {
		return domain.PerformancePoint{
			Date:  src.CompletedAt.UTC().Format(performanceDateLayout),
			Score: src.OverallScore,
			Type:  src.Type,
		}
	})
	if err = s.cache.SetPerformance(ctx, uid, res); err != nil {
		s.logger.Error("缓存用户表现数据失败", elog.FieldErr(err), elog.Int64("uid", uid))
	}
	return res, nil
}

func (s *service) AdminStats(ctx context.Context) (domain.AdminStats, error) {
	res, err := s.cache.GetAdminStats(ctx)
	if err == nil {
		return res, nil
	}
	s.logCacheErr(err, "admin", 0)

	var (
		eg               errgroup.Group
		recentUsers      []user.User
		recentInterviews []interview.Interview
	)
	eg.Go(func() error {
		var err error
		res.TotalUsers, err = s.userSvc.Count(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		res.ActiveUsers, err = s.userSvc.CountActive(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		res.TotalInterviews, err = s.interviewSvc.Count(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		res.TotalQuestions, err = s.questionSvc.Count(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		recentUsers, err = s.userSvc.Recent(ctx, recentUsersLimit)
		return err
	})
	eg.Go(func() error {
		var err error
		recentInterviews, err = s.interviewSvc.Recent(ctx, recentInterviewsLimit)
		return err
	})
	if err = eg.Wait(); err != nil {
		return domain.AdminStats{}, err
	}
	res.RecentUsers = slice.Map(recentUsers, func(idx int, src user.User) domain.User {
		return domain.User{
			UUID:             src.UUID,
			Email:            src.Email,
			FirstName:        src.FirstName,
			LastName:         src.LastName,
			SubscriptionTier: src.SubscriptionTier,
			Ctime:            src.Ctime,
			LastLogin:        src.LastLogin,
		}
	})
	res.RecentInterviews = slice.Map(recentInterviews, s.toInterview)
	if err = s.cache.SetAdminStats(ctx, res); err != nil {
		s.logger.Error("缓存平台统计失败", elog.FieldErr(err))
	}
	return res, nil
}

func (s *service) Status(ctx context.Context) domain.Status {
	res := domain.Status{
		Database: s.ping(ctx, "database", s.pingers.DB),
		Redis:    s.ping(ctx, "redis", s.pingers.Redis),
		Version:  domain.Version,
		Uptime:   s.now().Sub(s.startAt),
	}
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		res.TotalUsers, err = s.userSvc.Count(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		res.TotalInterviews, err = s.interviewSvc.Count(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		res.TotalQuestions, err = s.questionSvc.Count(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		s.logger.Error("统计总数失败", elog.FieldErr(err))
	}
	return res
}

func (s *service) ping(ctx context.Context, name string, p Pinger) string {
	if p == nil {
		return domain.ConnStatusError
	}
	if err := p(ctx); err != nil {
		s.logger.Error("依赖不可用", elog.FieldErr(err), elog.String("name", name))
		return domain.ConnStatusError
	}
	return domain.ConnStatusConnected
}

func (s *service) logCacheErr(err error, kind string, uid int64) {
	if errors.Is(err, cache.ErrKeyNotFound) {
		return
	}
	s.logger.Warn("查询统计缓存失败",
		elog.FieldErr(err),
		elog.String("kind", kind),
		elog.Int64("uid", uid))
}

func (s *service) toInterview(idx int, src interview.Interview) domain.Interview {
	return domain.Interview{
		UUID:              src.UUID,
		Field:             src.Field,
		Level:             src.Level,
		Type:              src.Type,
		Company:           src.Company,
		Mode:              src.Mode,
		Status:            src.Status.String(),
		Score:             src.OverallScore,
		Duration:          src.Duration,
		QuestionsAnswered: src.QuestionsAnswered,
		QuestionsTotal:    src.QuestionsTotal,
		StartedAt:         src.StartedAt,
		CompletedAt:       src.CompletedAt,
	}
}
