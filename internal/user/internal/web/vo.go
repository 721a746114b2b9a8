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
	"github.com/ecodeclub/coach/internal/user/internal/domain"
)

type RegisterReq struct {
	Email     string `json:"email" validate:"required,email,max=120"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	FirstName string `json:"firstName" validate:"max=50"`
	LastName  string `json:"lastName" validate:"max=50"`
}

type LoginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type Profile struct {
	Id               string `json:"id"`
	Email            string `json:"email"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	FullName         string `json:"fullName"`
	ProfilePicture   string `json:"profilePicture,omitempty"`
	SubscriptionTier string `json:"subscriptionTier"`
	IsAdmin          bool   `json:"isAdmin"`
	// 毫秒
	LastLogin int64 `json:"lastLogin,omitempty"`
	Ctime     int64 `json:"createdAt"`
	Stats     Stats `json:"stats"`
}

type Stats struct {
	TotalInterviews   int64   `json:"totalInterviews"`
	TotalAnswers      int64   `json:"totalAnswers"`
	TotalPracticeTime int64   `json:"totalPracticeTime"`
	AverageScore      float64 `json:"averageScore"`
	CurrentStreak     int     `json:"currentStreak"`
	LongestStreak     int     `json:"longestStreak"`
}

func newProfile(u domain.User, admin bool) Profile {
	res := Profile{
		Id:               u.UUID,
		Email:            u.Email,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		FullName:         u.FullName(),
		ProfilePicture:   u.ProfilePicture,
		SubscriptionTier: u.SubscriptionTier,
		IsAdmin:          admin,
		Ctime:            u.Ctime.UnixMilli(),
		Stats: Stats{
			TotalInterviews:   u.Stats.TotalInterviews,
			TotalAnswers:      u.Stats.TotalAnswers,
			TotalPracticeTime: u.Stats.TotalPracticeTime,
			AverageScore:      u.Stats.AverageScore,
			CurrentStreak:     u.Stats.CurrentStreak,
			LongestStreak:     u.Stats.LongestStreak,
		},
	}
	if !u.LastLogin.IsZero() {
		res.LastLogin = u.LastLogin.UnixMilli()
	}
	return res
}
