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

	"github.com/ecodeclub/coach/internal/interview/internal/domain"
	"github.com/ecodeclub/coach/internal/interview/internal/repository"
	repomocks "github.com/ecodeclub/coach/internal/interview/internal/repository/mocks"
	"github.com/ecodeclub/coach/internal/user"
	usermocks "github.com/ecodeclub/coach/internal/user/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockInterviewRepository(ctrl)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, itv domain.Interview) (int64, error) {
			assert.Equal(t, domain.StatusInProgress, itv.Status)
			assert.Equal(t, "technical", itv.Type)
			assert.Equal(t, "text", itv.Mode)
			assert.Equal(t, 5, itv.QuestionsTotal)
			assert.NotEmpty(t, itv.UUID)
			assert.False(t, itv.StartedAt.IsZero())
			return 10, nil
		})
	svc := NewService(repo, usermocks.NewMockUserService(ctrl))
	itv, err := svc.Start(context.Background(), domain.Interview{Uid: 1, Field: "software"})
	require.NoError(t, err)
	assert.Equal(t, int64(10), itv.Id)
	assert.Equal(t, "software", itv.Field)
}

func TestService_Complete(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (repository.InterviewRepository, user.Service)
		wantErr error
		check   func(t *testing.T, itv domain.Interview)
	}{
		{
			name: "结束成功",
			mock: func(ctrl *gomock.Controller) (repository.InterviewRepository, user.Service) {
				repo := repomocks.NewMockInterviewRepository(ctrl)
				userSvc := usermocks.NewMockUserService(ctrl)
				repo.EXPECT().FindByUUID(gomock.Any(), int64(1), "abc").Return(domain.Interview{
					Id: 2, Uid: 1, UUID: "abc", Status: domain.StatusInProgress,
					Answers: domain.AnswerStats{Count: 2, ScoreSum: 17},
				}, nil)
				repo.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(nil)
				userSvc.EXPECT().RecordPractice(gomock.Any(), int64(1), int64(600), 8.5, gomock.Any()).Return(nil)
				return repo, userSvc
			},
			check: func(t *testing.T, itv domain.Interview) {
				assert.Equal(t, domain.StatusCompleted, itv.Status)
				assert.Equal(t, 8.5, itv.OverallScore)
				assert.Equal(t, domain.QualityExcellent, itv.QualityRating)
			},
		},
		{
			name: "统计更新失败不影响结束",
			mock: func(ctrl *gomock.Controller) (repository.InterviewRepository, user.Service) {
				repo := repomocks.NewMockInterviewRepository(ctrl)
				userSvc := usermocks.NewMockUserService(ctrl)
				repo.EXPECT().FindByUUID(gomock.Any(), int64(1), "abc").Return(domain.Interview{
					Id: 2, Uid: 1, UUID: "abc", Status: domain.StatusInProgress,
				}, nil)
				repo.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(nil)
				userSvc.EXPECT().RecordPractice(gomock.Any(), int64(1), int64(600), 6.0, gomock.Any()).
					Return(errors.New("mock error"))
				return repo, userSvc
			},
			check: func(t *testing.T, itv domain.Interview) {
				assert.Equal(t, 6.0, itv.OverallScore)
				assert.Equal(t, 3, itv.QuestionsAnswered)
			},
		},
		{
			name: "面试不存在",
			mock: func(ctrl *gomock.Controller) (repository.InterviewRepository, user.Service) {
				repo := repomocks.NewMockInterviewRepository(ctrl)
				repo.EXPECT().FindByUUID(gomock.Any(), int64(1), "abc").
					Return(domain.Interview{}, repository.ErrInterviewNotFound)
				return repo, usermocks.NewMockUserService(ctrl)
			},
			wantErr: ErrInterviewNotFound,
		},
		{
			name: "已经结束",
			mock: func(ctrl *gomock.Controller) (repository.InterviewRepository, user.Service) {
				repo := repomocks.NewMockInterviewRepository(ctrl)
				repo.EXPECT().FindByUUID(gomock.Any(), int64(1), "abc").
					Return(domain.Interview{Id: 2, Status: domain.StatusCompleted}, nil)
				return repo, usermocks.NewMockUserService(ctrl)
			},
			wantErr: ErrInterviewClosed,
		},
		{
			name: "并发结束",
			mock: func(ctrl *gomock.Controller) (repository.InterviewRepository, user.Service) {
				repo := repomocks.NewMockInterviewRepository(ctrl)
				repo.EXPECT().FindByUUID(gomock.Any(), int64(1), "abc").
					Return(domain.Interview{Id: 2, Status: domain.StatusInProgress}, nil)
				repo.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(repository.ErrStatusConflict)
				return repo, usermocks.NewMockUserService(ctrl)
			},
			wantErr: ErrInterviewClosed,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, userSvc := tc.mock(ctrl)
			svc := NewService(repo, userSvc)
			itv, err := svc.Complete(context.Background(), 1, "abc", domain.Completion{
				Duration: 600, Score: 6, QuestionsAnswered: 3,
			})
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			tc.check(t, itv)
		})
	}
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockInterviewRepository(ctrl)
	repo.EXPECT().List(gomock.Any(), int64(1), domain.StatusCompleted, 10, 10).
		Return([]domain.Interview{{Id: 1}, {Id: 2}}, nil)
	repo.EXPECT().CountByUid(gomock.Any(), int64(1), domain.StatusCompleted).Return(int64(12), nil)
	svc := NewService(repo, usermocks.NewMockUserService(ctrl))
	list, total, err := svc.List(context.Background(), 1, domain.StatusCompleted, 10, 10)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, int64(12), total)
}

func TestService_AbandonStale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	before := time.UnixMilli(1700000000000)
	repo := repomocks.NewMockInterviewRepository(ctrl)
	gomock.InOrder(
		repo.EXPECT().FindStaleIds(gomock.Any(), before, 2).Return([]int64{1, 2}, nil),
		repo.EXPECT().Abandon(gomock.Any(), []int64{1, 2}).Return(int64(2), nil),
		repo.EXPECT().FindStaleIds(gomock.Any(), before, 2).Return([]int64{3}, nil),
		repo.EXPECT().Abandon(gomock.Any(), []int64{3}).Return(int64(1), nil),
	)
	svc := NewService(repo, usermocks.NewMockUserService(ctrl))
	cnt, err := svc.AbandonStale(context.Background(), before, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), cnt)
}
