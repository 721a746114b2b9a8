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

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/coach/internal/user/internal/domain"
	"github.com/ecodeclub/coach/internal/user/internal/repository/cache"
	"github.com/ecodeclub/coach/internal/user/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

var (
	ErrUserNotFound  = dao.ErrDataNotFound
	ErrUserDuplicate = dao.ErrUserDuplicate
)

//go:generate mockgen -source=./user.go -package=repomocks -destination=mocks/user.mock.go UserRepository
type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	FindById(ctx context.Context, id int64) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	LoginSucceeded(ctx context.Context, id int64, at time.Time) error
	IncrFailedLogins(ctx context.Context, id int64) error
	IncrTotalAnswers(ctx context.Context, id int64) error
	// UpdateStats 在行锁保护下用 fn 计算新的统计数据
	UpdateStats(ctx context.Context, id int64, fn func(s domain.Stats) domain.Stats) error
	Count(ctx context.Context, onlyActive bool) (int64, error)
	Recent(ctx context.Context, limit int) ([]domain.User, error)
}

// CachedUserRepository 使用了缓存的 repository 实现
type CachedUserRepository struct {
	dao   dao.UserDAO
	cache cache.UserCache
}

func NewCachedUserRepository(d dao.UserDAO,
	c cache.UserCache) UserRepository {
	return &CachedUserRepository{
		dao:   d,
		cache: c,
	}
}

func (ur *CachedUserRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return ur.dao.Insert(ctx, ur.domainToEntity(u))
}

func (ur *CachedUserRepository) FindById(ctx context.Context,
	id int64) (domain.User, error) {
	u, err := ur.cache.Get(ctx, id)
	if err == nil {
		return u, err
	}
	ue, err := ur.dao.FindById(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	u = ur.entityToDomain(ue)
	// 忽略掉这里的错误
	_ = ur.cache.Set(ctx, u)
	return u, nil
}

func (ur *CachedUserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := ur.dao.FindByEmail(ctx, email)
	return ur.entityToDomain(u), err
}

func (ur *CachedUserRepository) LoginSucceeded(ctx context.Context, id int64, at time.Time) error {
	err := ur.dao.LoginSucceeded(ctx, id, at.UnixMilli())
	if err != nil {
		return err
	}
	return ur.cache.Delete(ctx, id)
}

func (ur *CachedUserRepository) IncrFailedLogins(ctx context.Context, id int64) error {
	return ur.dao.IncrFailedLogins(ctx, id)
}

func (ur *CachedUserRepository) IncrTotalAnswers(ctx context.Context, id int64) error {
	err := ur.dao.IncrTotalAnswers(ctx, id)
	if err != nil {
		return err
	}
	return ur.cache.Delete(ctx, id)
}

func (ur *CachedUserRepository) UpdateStats(ctx context.Context, id int64,
	fn func(s domain.Stats) domain.Stats) error {
	err := ur.dao.UpdateStats(ctx, id, func(u *dao.User) {
		s := fn(ur.entityToDomain(*u).Stats)
		u.TotalInterviews = s.TotalInterviews
		u.TotalPracticeTime = s.TotalPracticeTime
		u.AverageScore = s.AverageScore
		u.CurrentStreak = s.CurrentStreak
		u.LongestStreak = s.LongestStreak
		u.LastPracticeDate = s.LastPracticeDate.UnixMilli()
	})
	if err != nil {
		return err
	}
	return ur.cache.Delete(ctx, id)
}

func (ur *CachedUserRepository) Count(ctx context.Context, onlyActive bool) (int64, error) {
	return ur.dao.Count(ctx, onlyActive)
}

func (ur *CachedUserRepository) Recent(ctx context.Context, limit int) ([]domain.User, error) {
	res, err := ur.dao.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.User) domain.User {
		return ur.entityToDomain(src)
	}), nil
}

func (ur *CachedUserRepository) domainToEntity(u domain.User) dao.User {
	return dao.User{
		Id:               u.Id,
		Uuid:             u.UUID,
		Email:            u.Email,
		PasswordHash:     u.PasswordHash,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		ProfilePicture:   u.ProfilePicture,
		SubscriptionTier: u.SubscriptionTier,
		IsActive:         u.IsActive,
	}
}

func (ur *CachedUserRepository) entityToDomain(ue dao.User) domain.User {
	res := domain.User{
		Id:               ue.Id,
		UUID:             ue.Uuid,
		Email:            ue.Email,
		PasswordHash:     ue.PasswordHash,
		FirstName:        ue.FirstName,
		LastName:         ue.LastName,
		ProfilePicture:   ue.ProfilePicture,
		SubscriptionTier: ue.SubscriptionTier,
		IsActive:         ue.IsActive,
		FailedLogins:     ue.FailedLogins,
		Stats: domain.Stats{
			TotalInterviews:   ue.TotalInterviews,
			TotalAnswers:      ue.TotalAnswers,
			TotalPracticeTime: ue.TotalPracticeTime,
			AverageScore:      ue.AverageScore,
			CurrentStreak:     ue.CurrentStreak,
			LongestStreak:     ue.LongestStreak,
		},
		Ctime: time.UnixMilli(ue.Ctime),
	}
	if ue.LastLogin > 0 {
		res.LastLogin = time.UnixMilli(ue.LastLogin)
	}
	if ue.LastPracticeDate > 0 {
		res.Stats.LastPracticeDate = time.UnixMilli(ue.LastPracticeDate).UTC()
	}
	return res
}
