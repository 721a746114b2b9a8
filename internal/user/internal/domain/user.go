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

package domain

import (
	"strings"
	"time"
)

const (
	TierFree       = "free"
	TierPro        = "pro"
	TierEnterprise = "enterprise"
)

type User struct {
	Id int64
	// UUID 对外暴露的 ID
	UUID             string
	Email            string
	PasswordHash     string
	FirstName        string
	LastName         string
	ProfilePicture   string
	SubscriptionTier string
	IsActive         bool
	// FailedLogins 连续登录失败的次数，登录成功之后清零
	FailedLogins int
	LastLogin    time.Time
	Stats        Stats
	Ctime        time.Time
}

func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Stats 练习相关的冗余统计
type Stats struct {
	TotalInterviews int64
	TotalAnswers    int64
	// TotalPracticeTime 秒
	TotalPracticeTime int64
	AverageScore      float64
	CurrentStreak     int
	LongestStreak     int
	// LastPracticeDate 只精确到天（UTC）
	LastPracticeDate time.Time
}

// Practice 完成一次面试之后更新统计。
// 连续天数：和上次练习正好隔一天就加一，同一天不变，隔了更久就从 1 重新开始
func (s Stats) Practice(durationSeconds int64, score float64, at time.Time) Stats {
	total := s.AverageScore*float64(s.TotalInterviews) + score
	s.TotalInterviews++
	s.AverageScore = total / float64(s.TotalInterviews)
	s.TotalPracticeTime += durationSeconds

	today := day(at)
	if s.LastPracticeDate.IsZero() {
		s.CurrentStreak = 1
	} else {
		diff := int(today.Sub(day(s.LastPracticeDate)).Hours() / 24)
		switch {
		case diff == 1:
			s.CurrentStreak++
		case diff > 1:
			s.CurrentStreak = 1
		}
	}
	if s.CurrentStreak == 0 {
		s.CurrentStreak = 1
	}
	s.LongestStreak = max(s.LongestStreak, s.CurrentStreak)
	s.LastPracticeDate = today
	return s
}

func day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
