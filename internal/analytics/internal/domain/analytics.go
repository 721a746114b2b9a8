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

import "time"

const Version = "2.0.0"

const (
	ConnStatusConnected = "connected"
	ConnStatusError     = "error"
)

// Overview 用户练习概况
type Overview struct {
	TotalInterviews   int64
	AverageScore      float64
	TotalPracticeTime int64
	CurrentStreak     int
	TotalAnswers      int64
	RecentInterviews  []Interview
}

type Interview struct {
	UUID              string
	Field             string
	Level             string
	Type              string
	Company           string
	Mode              string
	Status            string
	Score             float64
	Duration          int64
	QuestionsAnswered int
	QuestionsTotal    int
	StartedAt         time.Time
	CompletedAt       time.Time
}

// PerformancePoint 图表上的一个点，一次已完成的面试
type PerformancePoint struct {
	// Date YYYY-MM-DD，UTC
	Date  string
	Score float64
	Type  string
}

type User struct {
	UUID             string
	Email            string
	FirstName        string
	LastName         string
	SubscriptionTier string
	Ctime            time.Time
	LastLogin        time.Time
}

type AdminStats struct {
	TotalUsers       int64
	ActiveUsers      int64
	TotalInterviews  int64
	TotalQuestions   int64
	RecentUsers      []User
	RecentInterviews []Interview
}

type Status struct {
	Database        string
	Redis           string
	Version         string
	Uptime          time.Duration
	TotalUsers      int64
	TotalInterviews int64
	TotalQuestions  int64
}
