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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStats_Practice(t *testing.T) {
	day1 := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	testCases := []struct {
		name  string
		stats Stats
		at    time.Time

		wantCurrent int
		wantLongest int
		wantAverage float64
	}{
		{
			name:        "第一次练习",
			at:          day1.Add(15 * time.Hour),
			wantCurrent: 1,
			wantLongest: 1,
			wantAverage: 8,
		},
		{
			name:        "同一天再练",
			stats:       Stats{TotalInterviews: 1, AverageScore: 6, CurrentStreak: 1, LongestStreak: 4, LastPracticeDate: day1},
			at:          day1.Add(23 * time.Hour),
			wantCurrent: 1,
			wantLongest: 4,
			wantAverage: 7,
		},
		{
			name:        "连续第二天",
			stats:       Stats{TotalInterviews: 1, AverageScore: 6, CurrentStreak: 4, LongestStreak: 4, LastPracticeDate: day1},
			at:          day1.Add(25 * time.Hour),
			wantCurrent: 5,
			wantLongest: 5,
			wantAverage: 7,
		},
		{
			name:        "中断之后重新开始",
			stats:       Stats{TotalInterviews: 3, AverageScore: 8, CurrentStreak: 3, LongestStreak: 3, LastPracticeDate: day1},
			at:          day1.AddDate(0, 0, 3),
			wantCurrent: 1,
			wantLongest: 3,
			wantAverage: 8,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			res := tc.stats.Practice(300, 8, tc.at)
			assert.Equal(t, tc.wantCurrent, res.CurrentStreak)
			assert.Equal(t, tc.wantLongest, res.LongestStreak)
			assert.InDelta(t, tc.wantAverage, res.AverageScore, 1e-9)
			assert.Equal(t, tc.stats.TotalInterviews+1, res.TotalInterviews)
			assert.Equal(t, tc.stats.TotalPracticeTime+300, res.TotalPracticeTime)
			assert.Equal(t, day1.AddDate(0, 0, int(tc.at.Sub(day1).Hours()/24)), res.LastPracticeDate)
		})
	}
}

func TestUser_FullName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", User{FirstName: "Ada", LastName: "Lovelace"}.FullName())
	assert.Equal(t, "Ada", User{FirstName: "Ada"}.FullName())
}
