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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrDataNotFound = gorm.ErrRecordNotFound

var ErrUserDuplicate = errors.New("邮箱已经注册")

type UserDAO interface {
	Insert(ctx context.Context, u User) (int64, error)
	FindById(ctx context.Context, id int64) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	// LoginSucceeded 记录登录时间，并且清空失败次数
	LoginSucceeded(ctx context.Context, id int64, at int64) error
	IncrFailedLogins(ctx context.Context, id int64) error
	IncrTotalAnswers(ctx context.Context, id int64) error
	// UpdateStats 锁住这一行，在事务里面用 fn 修改统计字段
	UpdateStats(ctx context.Context, id int64, fn func(u *User)) error
	Count(ctx context.Context, onlyActive bool) (int64, error)
	Recent(ctx context.Context, limit int) ([]User, error)
}

type GORMUserDAO struct {
	db *egorm.Component
}

func NewGORMUserDAO(db *egorm.Component) UserDAO {
	return &GORMUserDAO{
		db: db,
	}
}

func (ud *GORMUserDAO) Insert(ctx context.Context, u User) (int64, error) {
	now := time.Now().UnixMilli()
	u.Ctime = now
	u.Utime = now
	err := ud.db.WithContext(ctx).Create(&u).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrUserDuplicate
		}
	}
	return u.Id, err
}

func (ud *GORMUserDAO) FindById(ctx context.Context, id int64) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return u, err
}

func (ud *GORMUserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "email = ?", email).Error
	return u, err
}

func (ud *GORMUserDAO) LoginSucceeded(ctx context.Context, id int64, at int64) error {
	return ud.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"last_login":    at,
			"failed_logins": 0,
			"utime":         time.Now().UnixMilli(),
		}).Error
}

func (ud *GORMUserDAO) IncrFailedLogins(ctx context.Context, id int64) error {
	return ud.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"failed_logins": gorm.Expr("failed_logins + 1"),
			"utime":         time.Now().UnixMilli(),
		}).Error
}

func (ud *GORMUserDAO) IncrTotalAnswers(ctx context.Context, id int64) error {
	return ud.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"total_answers": gorm.Expr("total_answers + 1"),
			"utime":         time.Now().UnixMilli(),
		}).Error
}

func (ud *GORMUserDAO) UpdateStats(ctx context.Context, id int64, fn func(u *User)) error {
	return ud.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u User
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&u, "id = ?", id).Error
		if err != nil {
			return err
		}
		fn(&u)
		return tx.Model(&User{}).Where("id = ?", id).
			Updates(map[string]any{
				"total_interviews":    u.TotalInterviews,
				"total_practice_time": u.TotalPracticeTime,
				"average_score":       u.AverageScore,
				"current_streak":      u.CurrentStreak,
				"longest_streak":      u.LongestStreak,
				"last_practice_date":  u.LastPracticeDate,
				"utime":               time.Now().UnixMilli(),
			}).Error
	})
}

func (ud *GORMUserDAO) Count(ctx context.Context, onlyActive bool) (int64, error) {
	var res int64
	query := ud.db.WithContext(ctx).Model(&User{})
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	err := query.Count(&res).Error
	return res, err
}

func (ud *GORMUserDAO) Recent(ctx context.Context, limit int) ([]User, error) {
	var res []User
	err := ud.db.WithContext(ctx).
		Order("ctime DESC, id DESC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

type User struct {
	Id               int64  `gorm:"primaryKey,autoIncrement"`
	Uuid             string `gorm:"type:varchar(36);uniqueIndex"`
	Email            string `gorm:"type:varchar(120);uniqueIndex"`
	PasswordHash     string `gorm:"type:varchar(256)"`
	FirstName        string `gorm:"type:varchar(50)"`
	LastName         string `gorm:"type:varchar(50)"`
	ProfilePicture   string `gorm:"type:varchar(256)"`
	SubscriptionTier string `gorm:"type:varchar(20);default:'free'"`
	IsActive         bool   `gorm:"default:true;index"`
	FailedLogins     int
	LastLogin        int64

	// 冗余的统计字段
	TotalInterviews   int64
	TotalAnswers      int64
	TotalPracticeTime int64
	AverageScore      float64
	CurrentStreak     int
	LongestStreak     int
	// 练习的日期，零点的毫秒数
	LastPracticeDate int64

	// 创建时间
	Ctime int64 `gorm:"index"`
	// 更新时间
	Utime int64
}
