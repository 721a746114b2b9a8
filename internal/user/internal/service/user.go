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
	"strings"
	"time"

	"github.com/ecodeclub/coach/internal/user/internal/domain"
	"github.com/ecodeclub/coach/internal/user/internal/repository"
	"github.com/google/uuid"
	"github.com/gotomicro/ego/core/elog"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserDuplicate      = repository.ErrUserDuplicate
	ErrUserNotFound       = repository.ErrUserNotFound
	ErrInvalidCredentials = errors.New("邮箱或者密码错误")
	ErrUserDeactivated    = errors.New("账号已停用")
)

//go:generate mockgen -source=./user.go -package=svcmocks -destination=mocks/user.mock.go UserService
type UserService interface {
	Register(ctx context.Context, u domain.User, password string) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.User, error)
	Profile(ctx context.Context, id int64) (domain.User, error)
	// RecordPractice 完成一次面试之后调用
	RecordPractice(ctx context.Context, uid int64, durationSeconds int64, score float64, at time.Time) error
	RecordAnswer(ctx context.Context, uid int64) error
	Count(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
	Recent(ctx context.Context, limit int) ([]domain.User, error)
}

type userService struct {
	repo   repository.UserRepository
	cost   int
	logger *elog.Component
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{
		repo:   repo,
		cost:   bcrypt.DefaultCost,
		logger: elog.DefaultLogger,
	}
}

func (svc *userService) Register(ctx context.Context, u domain.User, password string) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), svc.cost)
	if err != nil {
		return domain.User{}, errors.Wrap(err, "生成密码摘要失败")
	}
	u.Email = NormalizeEmail(u.Email)
	u.PasswordHash = string(hash)
	u.UUID = uuid.NewString()
	u.IsActive = true
	if u.SubscriptionTier == "" {
		u.SubscriptionTier = domain.TierFree
	}
	id, err := svc.repo.Create(ctx, u)
	if err != nil {
		return domain.User{}, err
	}
	u.Id = id
	svc.logger.Info("用户注册成功", elog.Int64("uid", id), elog.String("email", u.Email))
	return u, nil
}

func (svc *userService) Login(ctx context.Context, email, password string) (domain.User, error) {
	u, err := svc.repo.FindByEmail(ctx, NormalizeEmail(email))
	if errors.Is(err, repository.ErrUserNotFound) {
		return domain.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, err
	}
	err = bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	if err != nil {
		if er := svc.repo.IncrFailedLogins(ctx, u.Id); er != nil {
			svc.logger.Error("记录登录失败次数失败", elog.FieldErr(er), elog.Int64("uid", u.Id))
		}
		return domain.User{}, ErrInvalidCredentials
	}
	if !u.IsActive {
		return domain.User{}, ErrUserDeactivated
	}
	now := time.Now()
	if err = svc.repo.LoginSucceeded(ctx, u.Id, now); err != nil {
		return domain.User{}, err
	}
	u.LastLogin = now
	u.FailedLogins = 0
	return u, nil
}

func (svc *userService) Profile(ctx context.Context, id int64) (domain.User, error) {
	return svc.repo.FindById(ctx, id)
}

func (svc *userService) RecordPractice(ctx context.Context, uid int64,
	durationSeconds int64, score float64, at time.Time) error {
	err := svc.repo.UpdateStats(ctx, uid, func(s domain.Stats) domain.Stats {
		return s.Practice(durationSeconds, score, at)
	})
	return errors.Wrapf(err, "更新练习统计失败 uid %d", uid)
}

func (svc *userService) RecordAnswer(ctx context.Context, uid int64) error {
	return svc.repo.IncrTotalAnswers(ctx, uid)
}

func (svc *userService) Count(ctx context.Context) (int64, error) {
	return svc.repo.Count(ctx, false)
}

func (svc *userService) CountActive(ctx context.Context) (int64, error) {
	return svc.repo.Count(ctx, true)
}

func (svc *userService) Recent(ctx context.Context, limit int) ([]domain.User, error) {
	return svc.repo.Recent(ctx, limit)
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
