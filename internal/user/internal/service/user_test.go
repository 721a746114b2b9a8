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

	"github.com/ecodeclub/coach/internal/user/internal/domain"
	"github.com/ecodeclub/coach/internal/user/internal/repository"
	repomocks "github.com/ecodeclub/coach/internal/user/internal/repository/mocks"
	"github.com/gotomicro/ego/core/elog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Register(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) repository.UserRepository
		email   string
		wantErr error
	}{
		{
			name:  "注册成功",
			email: "  Alice@Example.COM ",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, u domain.User) (int64, error) {
						assert.Equal(t, "alice@example.com", u.Email)
						assert.NotEmpty(t, u.UUID)
						assert.True(t, u.IsActive)
						assert.Equal(t, domain.TierFree, u.SubscriptionTier)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password123")))
						return 12, nil
					})
				return repo
			},
		},
		{
			name:  "邮箱冲突",
			email: "alice@example.com",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), repository.ErrUserDuplicate)
				return repo
			},
			wantErr: ErrUserDuplicate,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := &userService{repo: tc.mock(ctrl), cost: bcrypt.MinCost, logger: elog.DefaultLogger}
			u, err := svc.Register(context.Background(), domain.User{Email: tc.email}, "password123")
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, int64(12), u.Id)
			assert.Empty(t, u.FailedLogins)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	active := domain.User{Id: 3, Email: "bob@example.com", PasswordHash: string(hash), IsActive: true, FailedLogins: 2}

	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) repository.UserRepository
		password string
		wantErr  error
	}{
		{
			name:     "登录成功",
			password: "password123",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "bob@example.com").Return(active, nil)
				repo.EXPECT().LoginSucceeded(gomock.Any(), int64(3), gomock.Any()).Return(nil)
				return repo
			},
		},
		{
			name:     "用户不存在",
			password: "password123",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "bob@example.com").Return(domain.User{}, repository.ErrUserNotFound)
				return repo
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "密码错误",
			password: "wrong-password",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "bob@example.com").Return(active, nil)
				repo.EXPECT().IncrFailedLogins(gomock.Any(), int64(3)).Return(nil)
				return repo
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "账号停用",
			password: "password123",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				u := active
				u.IsActive = false
				repo.EXPECT().FindByEmail(gomock.Any(), "bob@example.com").Return(u, nil)
				return repo
			},
			wantErr: ErrUserDeactivated,
		},
		{
			name:     "查询失败",
			password: "password123",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "bob@example.com").Return(domain.User{}, errors.New("mock db error"))
				return repo
			},
			wantErr: errors.New("mock db error"),
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewUserService(tc.mock(ctrl))
			u, err := svc.Login(context.Background(), "BOB@example.com", tc.password)
			if tc.wantErr != nil {
				assert.EqualError(t, err, tc.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(3), u.Id)
			assert.Equal(t, 0, u.FailedLogins)
			assert.False(t, u.LastLogin.IsZero())
		})
	}
}

func TestUserService_RecordPractice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	at := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	repo := repomocks.NewMockUserRepository(ctrl)
	repo.EXPECT().UpdateStats(gomock.Any(), int64(5), gomock.Any()).
		DoAndReturn(func(ctx context.Context, id int64, fn func(domain.Stats) domain.Stats) error {
			s := fn(domain.Stats{
				TotalInterviews:  1,
				AverageScore:     6,
				CurrentStreak:    2,
				LongestStreak:    2,
				LastPracticeDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			})
			assert.Equal(t, int64(2), s.TotalInterviews)
			assert.Equal(t, 7.0, s.AverageScore)
			assert.Equal(t, int64(600), s.TotalPracticeTime)
			assert.Equal(t, 3, s.CurrentStreak)
			assert.Equal(t, 3, s.LongestStreak)
			return nil
		})
	svc := NewUserService(repo)
	err := svc.RecordPractice(context.Background(), 5, 600, 8, at)
	require.NoError(t, err)
}
