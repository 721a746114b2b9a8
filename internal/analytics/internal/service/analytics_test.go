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
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/coach/internal/analytics/internal/domain"
	"github.com/ecodeclub/coach/internal/analytics/internal/repository/cache"
	cachemocks "github.com/ecodeclub/coach/internal/analytics/internal/repository/cache/mocks"
	feedbackmocks "github.com/ecodeclub/coach/internal/feedback/mocks"
	"github.com/ecodeclub/coach/internal/interview"
	interviewmocks "github.com/ecodeclub/coach/internal/interview/mocks"
	quemocks "github.com/ecodeclub/coach/internal/question/mocks"
	"github.com/ecodeclub/coach/internal/user"
	usermocks "github.com/ecodeclub/coach/internal/user/mocks"
	"github.com/gotomicro/ego/core/elog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mocks struct {
	user      *usermocks.MockUserService
	interview *interviewmocks.MockService
	question  *quemocks.MockService
	feedback  *feedbackmocks.MockService
	cache     *cachemocks.MockAnalyticsCache
}

func newMocks(ctrl *gomock.Controller) mocks {
	return mocks{
		user:      usermocks.NewMockUserService(ctrl),
		interview: interviewmocks.NewMockService(ctrl),
		question:  quemocks.NewMockService(ctrl),
		feedback:  feedbackmocks.NewMockService(ctrl),
		cache:     cachemocks.NewMockAnalyticsCache(ctrl),
	}
}

func (m mocks) service(now time.Time, pingers Pingers) *service {
	return &service{
		userSvc:      m.user,
		interviewSvc: m.interview,
		questionSvc:  m.question,
		feedbackSvc:  m.feedback,
		cache:        m.cache,
		pingers:      pingers,
		startAt:      now.Add(-time.Hour),
		now:          func() time.Time { return now },
		logger:       elog.DefaultLogger,
	}
}

func TestService_Overview(t *testing.T) {
	const uid = 12
	completedAt := time.UnixMilli(1700000000000)
	recent := domain.Interview{
		UUID: "itv-1", Type: "technical", Status: "completed",
		Score: 7.5, Duration: 600, QuestionsAnswered: 3, QuestionsTotal: 5,
		StartedAt: completedAt.Add(-10 * time.Minute), CompletedAt: completedAt,
	}
	testCases := []struct {
		name    string
		mock    func(m mocks)
		want    domain.Overview
		wantErr error
	}{
		{
			name: "命中缓存",
			mock: func(m mocks) {
				m.cache.EXPECT().GetOverview(gomock.Any(), int64(uid)).
					Return(domain.Overview{TotalInterviews: 3, AverageScore: 6.2}, nil)
			},
			want: domain.Overview{TotalInterviews: 3, AverageScore: 6.2},
		},
		{
			name: "并发查询并且写缓存",
			mock: func(m mocks) {
				m.cache.EXPECT().GetOverview(gomock.Any(), int64(uid)).
					Return(domain.Overview{}, cache.ErrKeyNotFound)
				m.interview.EXPECT().Summary(gomock.Any(), int64(uid)).
					Return(interview.Summary{Completed: 4, AverageScore: 7.26, TotalDuration: 2400}, nil)
				m.user.EXPECT().Profile(gomock.Any(), int64(uid)).
					Return(user.User{Id: uid, Stats: user.Stats{CurrentStreak: 3}}, nil)
				m.feedback.EXPECT().CountByUser(gomock.Any(), int64(uid)).Return(int64(17), nil)
				m.interview.EXPECT().RecentCompleted(gomock.Any(), int64(uid), 5).
					Return([]interview.Interview{{
						UUID: "itv-1", Type: "technical", Status: interview.StatusCompleted,
						OverallScore: 7.5, Duration: 600, QuestionsAnswered: 3, QuestionsTotal: 5,
						StartedAt: completedAt.Add(-10 * time.Minute), CompletedAt: completedAt,
					}}, nil)
				m.cache.EXPECT().SetOverview(gomock.Any(), int64(uid), gomock.Any()).Return(nil)
			},
			want: domain.Overview{
				TotalInterviews:   4,
				AverageScore:      7.3,
				TotalPracticeTime: 2400,
				CurrentStreak:     3,
				TotalAnswers:      17,
				RecentInterviews:  []domain.Interview{recent},
			},
		},
		{
			name: "写缓存失败不影响结果",
			mock: func(m mocks) {
				m.cache.EXPECT().GetOverview(gomock.Any(), int64(uid)).
					Return(domain.Overview{}, errors.New("redis 超时"))
				m.interview.EXPECT().Summary(gomock.Any(), int64(uid)).Return(interview.Summary{}, nil)
				m.user.EXPECT().Profile(gomock.Any(), int64(uid)).Return(user.User{Id: uid}, nil)
				m.feedback.EXPECT().CountByUser(gomock.Any(), int64(uid)).Return(int64(0), nil)
				m.interview.EXPECT().RecentCompleted(gomock.Any(), int64(uid), 5).Return(nil, nil)
				m.cache.EXPECT().SetOverview(gomock.Any(), int64(uid), gomock.Any()).
					Return(errors.New("redis 超时"))
			},
			want: domain.Overview{RecentInterviews: []domain.Interview{}},
		},
		{
			name: "用户不存在",
			mock: func(m mocks) {
				m.cache.EXPECT().GetOverview(gomock.Any(), int64(uid)).
					Return(domain.Overview{}, cache.ErrKeyNotFound)
				m.interview.EXPECT().Summary(gomock.Any(), int64(uid)).Return(interview.Summary{}, nil)
				m.user.EXPECT().Profile(gomock.Any(), int64(uid)).Return(user.User{}, user.ErrUserNotFound)
				m.feedback.EXPECT().CountByUser(gomock.Any(), int64(uid)).Return(int64(0), nil)
				m.interview.EXPECT().RecentCompleted(gomock.Any(), int64(uid), 5).Return(nil, nil)
			},
			wantErr: ErrUserNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)
			res, err := m.service(time.Now(), Pingers{}).Overview(context.Background(), uid)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want, res)
		})
	}
}

func TestService_Performance(t *testing.T) {
	const uid = 12
	now := time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newMocks(ctrl)
	m.cache.EXPECT().GetPerformance(gomock.Any(), int64(uid)).Return(nil, cache.ErrKeyNotFound)
	m.interview.EXPECT().CompletedSince(gomock.Any(), int64(uid), now.Add(-30*24*time.Hour)).
		Return([]interview.Interview{
			{Type: "technical", OverallScore: 6.5, CompletedAt: time.Date(2024, 3, 2, 23, 30, 0, 0, time.UTC)},
			{Type: "behavioral", OverallScore: 8, CompletedAt: time.Date(2024, 3, 30, 8, 0, 0, 0, time.UTC)},
		}, nil)
	want := []domain.PerformancePoint{
		{Date: "2024-03-02", Score: 6.5, Type: "technical"},
		{Date: "2024-03-30", Score: 8, Type: "behavioral"},
	}
	m.cache.EXPECT().SetPerformance(gomock.Any(), int64(uid), want).Return(nil)

	res, err := m.service(now, Pingers{}).Performance(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, want, res)
}

func TestService_AdminStats(t *testing.T) {
	ctime := time.UnixMilli(1700000000000)
	testCases := []struct {
		name    string
		mock    func(m mocks)
		want    domain.AdminStats
		wantErr bool
	}{
		{
			name: "汇总平台数据",
			mock: func(m mocks) {
				m.cache.EXPECT().GetAdminStats(gomock.Any()).Return(domain.AdminStats{}, cache.ErrKeyNotFound)
				m.user.EXPECT().Count(gomock.Any()).Return(int64(10), nil)
				m.user.EXPECT().CountActive(gomock.Any()).Return(int64(8), nil)
				m.interview.EXPECT().Count(gomock.Any()).Return(int64(30), nil)
				m.question.EXPECT().Count(gomock.Any()).Return(int64(21), nil)
				m.user.EXPECT().Recent(gomock.Any(), 5).Return([]user.User{
					{UUID: "u-1", Email: "a@example.com", PasswordHash: "secret", SubscriptionTier: "free", Ctime: ctime},
				}, nil)
				m.interview.EXPECT().Recent(gomock.Any(), 10).Return([]interview.Interview{
					{UUID: "itv-1", Status: interview.StatusInProgress, StartedAt: ctime},
				}, nil)
				m.cache.EXPECT().SetAdminStats(gomock.Any(), gomock.Any()).Return(nil)
			},
			want: domain.AdminStats{
				TotalUsers:      10,
				ActiveUsers:     8,
				TotalInterviews: 30,
				TotalQuestions:  21,
				RecentUsers: []domain.User{
					{UUID: "u-1", Email: "a@example.com", SubscriptionTier: "free", Ctime: ctime},
				},
				RecentInterviews: []domain.Interview{
					{UUID: "itv-1", Status: "in_progress", StartedAt: ctime},
				},
			},
		},
		{
			name: "查询失败",
			mock: func(m mocks) {
				m.cache.EXPECT().GetAdminStats(gomock.Any()).Return(domain.AdminStats{}, cache.ErrKeyNotFound)
				m.user.EXPECT().Count(gomock.Any()).Return(int64(0), errors.New("db 错误"))
				m.user.EXPECT().CountActive(gomock.Any()).Return(int64(8), nil)
				m.interview.EXPECT().Count(gomock.Any()).Return(int64(30), nil)
				m.question.EXPECT().Count(gomock.Any()).Return(int64(21), nil)
				m.user.EXPECT().Recent(gomock.Any(), 5).Return(nil, nil)
				m.interview.EXPECT().Recent(gomock.Any(), 10).Return(nil, nil)
			},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)
			res, err := m.service(time.Now(), Pingers{}).AdminStats(context.Background())
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, res)
		})
	}
}

func TestService_Status(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newMocks(ctrl)
	m.user.EXPECT().Count(gomock.Any()).Return(int64(10), nil)
	m.interview.EXPECT().Count(gomock.Any()).Return(int64(30), nil)
	m.question.EXPECT().Count(gomock.Any()).Return(int64(21), nil)
	svc := m.service(time.Now(), Pingers{
		DB: func(ctx context.Context) error { return nil },
		Redis: func(ctx context.Context) error {
			return errors.New("connection refused")
		},
	})
	res := svc.Status(context.Background())
	assert.Equal(t, domain.Status{
		Database:        domain.ConnStatusConnected,
		Redis:           domain.ConnStatusError,
		Version:         "2.0.0",
		Uptime:          time.Hour,
		TotalUsers:      10,
		TotalInterviews: 30,
		TotalQuestions:  21,
	}, res)
}
