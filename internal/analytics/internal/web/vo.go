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
	"github.com/ecodeclub/coach/internal/analytics/internal/domain"
	"github.com/ecodeclub/ekit/slice"
)

type Overview struct {
	TotalInterviews   int64   `json:"totalInterviews"`
	AverageScore      float64 `json:"averageScore"`
	TotalPracticeTime int64   `json:"totalPracticeTime"`
	CurrentStreak     int     `json:"currentStreak"`
	// TotalQuestions 回答过的题目数量
	TotalQuestions   int64       `json:"totalQuestions"`
	RecentInterviews []Interview `json:"recentInterviews"`
}

type Interview struct {
	Id                string  `json:"id"`
	Field             string  `json:"field"`
	Level             string  `json:"level"`
	Type              string  `json:"type"`
	Company           string  `json:"company"`
	Mode              string  `json:"mode"`
	Status            string  `json:"status"`
	StartedAt         int64   `json:"startedAt"`
	CompletedAt       int64   `json:"completedAt,omitempty"`
	Duration          int64   `json:"duration"`
	Score             float64 `json:"score"`
	QuestionsAnswered int     `json:"questionsAnswered"`
	QuestionsTotal    int     `json:"questionsTotal"`
}

type PerformancePoint struct {
	Date  string  `json:"date"`
	Score float64 `json:"score"`
	Type  string  `json:"type"`
}

type Performance struct {
	PerformanceData []PerformancePoint `json:"performanceData"`
}

type User struct {
	Id               string `json:"id"`
	Email            string `json:"email"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	SubscriptionTier string `json:"subscriptionTier"`
	CreatedAt        int64  `json:"createdAt"`
	LastLogin        int64  `json:"lastLogin,omitempty"`
}

type AdminStats struct {
	TotalUsers       int64       `json:"totalUsers"`
	ActiveUsers      int64       `json:"activeUsers"`
	TotalInterviews  int64       `json:"totalInterviews"`
	TotalQuestions   int64       `json:"totalQuestions"`
	RecentUsers      []User      `json:"recentUsers"`
	RecentInterviews []Interview `json:"recentInterviews"`
}

type Status struct {
	Api      string `json:"api"`
	Database string `json:"database"`
	Redis    string `json:"redis"`
	Version  string `json:"version"`
	// Uptime 秒
	Uptime          int64 `json:"uptime"`
	TotalUsers      int64 `json:"totalUsers"`
	TotalInterviews int64 `json:"totalInterviews"`
	TotalQuestions  int64 `json:"totalQuestions"`
}

func newOverview(o domain.Overview) Overview {
	return Overview{
		TotalInterviews:   o.TotalInterviews,
		AverageScore:      o.AverageScore,
		TotalPracticeTime: o.TotalPracticeTime,
		CurrentStreak:     o.CurrentStreak,
		TotalQuestions:    o.TotalAnswers,
		RecentInterviews:  slice.Map(o.RecentInterviews, newInterview),
	}
}

func newInterview(idx int, itv domain.Interview) Interview {
	res := Interview{
		Id:                itv.UUID,
		Field:             itv.Field,
		Level:             itv.Level,
		Type:              itv.Type,
		Company:           itv.Company,
		Mode:              itv.Mode,
		Status:            itv.Status,
		StartedAt:         itv.StartedAt.UnixMilli(),
		Duration:          itv.Duration,
		Score:             itv.Score,
		QuestionsAnswered: itv.QuestionsAnswered,
		QuestionsTotal:    itv.QuestionsTotal,
	}
	if !itv.CompletedAt.IsZero() {
		res.CompletedAt = itv.CompletedAt.UnixMilli()
	}
	return res
}

func newPerformance(points []domain.PerformancePoint) Performance {
	return Performance{
		PerformanceData: slice.Map(points, func(idx int, src domain.PerformancePoint) PerformancePoint {
			return PerformancePoint(src)
		}),
	}
}

func newAdminStats(s domain.AdminStats) AdminStats {
	return AdminStats{
		TotalUsers:      s.TotalUsers,
		ActiveUsers:     s.ActiveUsers,
		TotalInterviews: s.TotalInterviews,
		TotalQuestions:  s.TotalQuestions,
		RecentUsers: slice.Map(s.RecentUsers, func(idx int, src domain.User) User {
			u := User{
				Id:               src.UUID,
				Email:            src.Email,
				FirstName:        src.FirstName,
				LastName:         src.LastName,
				SubscriptionTier: src.SubscriptionTier,
				CreatedAt:        src.Ctime.UnixMilli(),
			}
			if !src.LastLogin.IsZero() {
				u.LastLogin = src.LastLogin.UnixMilli()
			}
			return u
		}),
		RecentInterviews: slice.Map(s.RecentInterviews, newInterview),
	}
}

func newStatus(s domain.Status) Status {
	return Status{
		Api:             "operational",
		Database:        s.Database,
		Redis:           s.Redis,
		Version:         s.Version,
		Uptime:          int64(s.Uptime.Seconds()),
		TotalUsers:      s.TotalUsers,
		TotalInterviews: s.TotalInterviews,
		TotalQuestions:  s.TotalQuestions,
	}
}
