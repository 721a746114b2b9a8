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

	"github.com/ecodeclub/coach/internal/question/internal/domain"
	"github.com/ecodeclub/coach/internal/question/internal/repository"
	repomocks "github.com/ecodeclub/coach/internal/question/internal/repository/mocks"
	"github.com/gotomicro/ego/core/elog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Random(t *testing.T) {
	filter := domain.Filter{Field: "software", Level: "senior", Category: "technical"}
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) repository.QuestionRepository
		filter  domain.Filter
		wantQ   domain.Question
		wantErr error
	}{
		{
			name: "命中过滤条件",
			mock: func(ctrl *gomock.Controller) repository.QuestionRepository {
				repo := repomocks.NewMockQuestionRepository(ctrl)
				repo.EXPECT().Count(gomock.Any(), filter).Return(int64(3), nil)
				repo.EXPECT().FindAt(gomock.Any(), filter, 2).
					Return(domain.Question{Id: 7, UUID: "q-7", UsageCount: 4}, nil)
				repo.EXPECT().IncrUsage(gomock.Any(), int64(7)).Return(nil)
				return repo
			},
			filter: filter,
			wantQ:  domain.Question{Id: 7, UUID: "q-7", UsageCount: 5},
		},
		{
			name: "没有匹配的题目，从整个题库挑",
			mock: func(ctrl *gomock.Controller) repository.QuestionRepository {
				repo := repomocks.NewMockQuestionRepository(ctrl)
				repo.EXPECT().Count(gomock.Any(), filter).Return(int64(0), nil)
				repo.EXPECT().Count(gomock.Any(), domain.Filter{}).Return(int64(20), nil)
				repo.EXPECT().FindAt(gomock.Any(), domain.Filter{}, 19).
					Return(domain.Question{Id: 1, UUID: "q-1"}, nil)
				repo.EXPECT().IncrUsage(gomock.Any(), int64(1)).Return(nil)
				return repo
			},
			filter: filter,
			wantQ:  domain.Question{Id: 1, UUID: "q-1", UsageCount: 1},
		},
		{
			name: "题库为空",
			mock: func(ctrl *gomock.Controller) repository.QuestionRepository {
				repo := repomocks.NewMockQuestionRepository(ctrl)
				repo.EXPECT().Count(gomock.Any(), filter).Return(int64(0), nil)
				repo.EXPECT().Count(gomock.Any(), domain.Filter{}).Return(int64(0), nil)
				return repo
			},
			filter:  filter,
			wantErr: ErrQuestionNotFound,
		},
		{
			name: "没有过滤条件并且题库为空",
			mock: func(ctrl *gomock.Controller) repository.QuestionRepository {
				repo := repomocks.NewMockQuestionRepository(ctrl)
				repo.EXPECT().Count(gomock.Any(), domain.Filter{}).Return(int64(0), nil)
				return repo
			},
			wantErr: ErrQuestionNotFound,
		},
		{
			name: "查询数量失败",
			mock: func(ctrl *gomock.Controller) repository.QuestionRepository {
				repo := repomocks.NewMockQuestionRepository(ctrl)
				repo.EXPECT().Count(gomock.Any(), filter).Return(int64(0), errors.New("mock db error"))
				return repo
			},
			filter:  filter,
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := &service{
				repo: tc.mock(ctrl),
				// 总是取最后一个
				intn:   func(n int64) int64 { return n - 1 },
				logger: elog.DefaultLogger,
			}
			q, err := svc.Random(context.Background(), tc.filter)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantQ, q)
		})
	}
}

func TestService_RecordScore(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) repository.QuestionRepository
		qid     int64
		wantErr error
	}{
		{
			name: "更新指标",
			mock: func(ctrl *gomock.Controller) repository.QuestionRepository {
				repo := repomocks.NewMockQuestionRepository(ctrl)
				repo.EXPECT().UpdateMetrics(gomock.Any(), int64(3), gomock.Any()).
					DoAndReturn(func(ctx context.Context, id int64, fn func(domain.Metrics) domain.Metrics) error {
						got := fn(domain.Metrics{Samples: 1, AvgScore: 9, AvgCompletionTime: 100, DifficultyRating: 2})
						assert.Equal(t, int64(2), got.Samples)
						assert.InDelta(t, 7.5, got.AvgScore, 1e-9)
						assert.InDelta(t, 100.0, got.AvgCompletionTime, 1e-9)
						assert.Equal(t, 4.0, got.DifficultyRating)
						return nil
					})
				return repo
			},
			qid: 3,
		},
		{
			name: "没有关联题目",
			mock: func(ctrl *gomock.Controller) repository.QuestionRepository {
				return repomocks.NewMockQuestionRepository(ctrl)
			},
			qid: 0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl))
			err := svc.RecordScore(context.Background(), tc.qid, 4, 100)
			assert.Equal(t, tc.wantErr, err)
		})
	}
}

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockQuestionRepository(ctrl)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, q domain.Question) (domain.Question, error) {
			assert.NotEmpty(t, q.UUID)
			assert.True(t, q.IsActive)
			assert.Equal(t, domain.DifficultyMedium, q.Difficulty)
			q.Id = 21
			return q, nil
		})
	svc := NewService(repo)
	q, err := svc.Create(context.Background(), domain.Question{Text: "What is Go?", Category: "technical"})
	require.NoError(t, err)
	assert.Equal(t, int64(21), q.Id)
}
