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
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type QuestionDAO interface {
	Insert(ctx context.Context, q Question) (int64, error)
	BatchInsert(ctx context.Context, qs []Question) error
	FindByUUID(ctx context.Context, uuid string) (Question, error)
	List(ctx context.Context, filter Filter, offset, limit int) ([]Question, error)
	Count(ctx context.Context, filter Filter) (int64, error)
	IncrUsage(ctx context.Context, id int64) error
	// UpdateMetrics 锁住这一行，在事务里面用 fn 修改统计指标
	UpdateMetrics(ctx context.Context, id int64, fn func(q *Question)) error
}

type GORMQuestionDAO struct {
	db *egorm.Component
}

func NewGORMQuestionDAO(db *egorm.Component) QuestionDAO {
	return &GORMQuestionDAO{db: db}
}

func (g *GORMQuestionDAO) Insert(ctx context.Context, q Question) (int64, error) {
	now := time.Now().UnixMilli()
	q.Ctime = now
	q.Utime = now
	err := g.db.WithContext(ctx).Create(&q).Error
	return q.Id, err
}

func (g *GORMQuestionDAO) BatchInsert(ctx context.Context, qs []Question) error {
	now := time.Now().UnixMilli()
	for i := range qs {
		qs[i].Ctime = now
		qs[i].Utime = now
	}
	return g.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&qs).Error
}

func (g *GORMQuestionDAO) FindByUUID(ctx context.Context, uuid string) (Question, error) {
	var q Question
	err := g.db.WithContext(ctx).Where("uuid = ?", uuid).First(&q).Error
	return q, err
}

func (g *GORMQuestionDAO) List(ctx context.Context, filter Filter, offset, limit int) ([]Question, error) {
	var res []Question
	err := g.where(ctx, filter).
		Order("usage_count DESC, id ASC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMQuestionDAO) Count(ctx context.Context, filter Filter) (int64, error) {
	var res int64
	err := g.where(ctx, filter).Model(&Question{}).Count(&res).Error
	return res, err
}

func (g *GORMQuestionDAO) where(ctx context.Context, filter Filter) *gorm.DB {
	query := g.db.WithContext(ctx).Where("is_active = ?", true)
	if filter.Field != "" {
		query = query.Where("field = ?", filter.Field)
	}
	if filter.Level != "" {
		query = query.Where("level = ?", filter.Level)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	return query
}

func (g *GORMQuestionDAO) IncrUsage(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Model(&Question{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"usage_count": gorm.Expr("usage_count + 1"),
			"utime":       time.Now().UnixMilli(),
		}).Error
}

func (g *GORMQuestionDAO) UpdateMetrics(ctx context.Context, id int64, fn func(q *Question)) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var q Question
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&q, "id = ?", id).Error
		if err != nil {
			return err
		}
		fn(&q)
		return tx.Model(&Question{}).Where("id = ?", id).
			Updates(map[string]any{
				"samples":             q.Samples,
				"avg_score":           q.AvgScore,
				"avg_completion_time": q.AvgCompletionTime,
				"difficulty_rating":   q.DifficultyRating,
				"utime":               time.Now().UnixMilli(),
			}).Error
	})
}

type Filter struct {
	Field      string
	Level      string
	Category   string
	Difficulty string
}

type Question struct {
	Id   int64  `gorm:"primaryKey,autoIncrement"`
	Uuid string `gorm:"type:varchar(36);uniqueIndex"`
	// 作者，种子数据是 0
	Uid int64

	Text        string `gorm:"type:text;NOT NULL"`
	Category    string `gorm:"type:varchar(50);index"`
	Subcategory string `gorm:"type:varchar(50)"`
	Field       string `gorm:"type:varchar(100);index"`
	Level       string `gorm:"type:varchar(50);index"`
	Difficulty  string `gorm:"type:varchar(20);index"`
	Company     string `gorm:"type:varchar(100)"`

	Tags               sqlx.JsonColumn[[]string] `gorm:"type:varchar(512)"`
	Keywords           sqlx.JsonColumn[[]string] `gorm:"type:varchar(512)"`
	Hint               string                    `gorm:"type:text"`
	SampleAnswer       string                    `gorm:"type:text"`
	EvaluationCriteria sqlx.JsonColumn[[]string] `gorm:"type:text"`
	FollowUpQuestions  sqlx.JsonColumn[[]string] `gorm:"type:text"`
	IdealAnswerLength  int
	TimeLimit          int

	UsageCount int64 `gorm:"index"`
	// 根据答案统计出来的指标
	Samples           int64
	AvgScore          float64
	AvgCompletionTime float64
	DifficultyRating  float64

	IsActive bool `gorm:"default:true"`

	Ctime int64
	Utime int64
}
