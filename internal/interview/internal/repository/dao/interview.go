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
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrStatusConflict 状态已经不是进行中了
	ErrStatusConflict = errors.New("面试状态冲突")
)

const (
	statusInProgress = "in_progress"
	statusCompleted  = "completed"
	statusAbandoned  = "abandoned"
)

type InterviewDAO interface {
	Create(ctx context.Context, itv Interview) (int64, error)
	FindByUUID(ctx context.Context, uid int64, uuid string) (Interview, error)
	// Complete 只有进行中的面试才能结束
	Complete(ctx context.Context, itv Interview) error
	List(ctx context.Context, uid int64, status string, offset, limit int) ([]Interview, error)
	CountByUid(ctx context.Context, uid int64, status string) (int64, error)
	// IncrAnswer 原子地累加答案统计
	IncrAnswer(ctx context.Context, id int64, score float64, technical bool, timeSpent int64) error
	Summary(ctx context.Context, uid int64) (Summary, error)
	CompletedSince(ctx context.Context, uid int64, since int64) ([]Interview, error)
	RecentCompleted(ctx context.Context, uid int64, limit int) ([]Interview, error)
	Count(ctx context.Context) (int64, error)
	Recent(ctx context.Context, limit int) ([]Interview, error)
	FindStaleIds(ctx context.Context, startedBefore int64, limit int) ([]int64, error)
	Abandon(ctx context.Context, ids []int64) (int64, error)
}

type GORMInterviewDAO struct {
	db *egorm.Component
}

func NewGORMInterviewDAO(db *egorm.Component) InterviewDAO {
	return &GORMInterviewDAO{db: db}
}

func (g *GORMInterviewDAO) Create(ctx context.Context, itv Interview) (int64, error) {
	now := time.Now().UnixMilli()
	itv.Ctime = now
	itv.Utime = now
	if itv.StartedAt == 0 {
		itv.StartedAt = now
	}
	err := g.db.WithContext(ctx).Create(&itv).Error
	return itv.Id, err
}

func (g *GORMInterviewDAO) FindByUUID(ctx context.Context, uid int64, uuid string) (Interview, error) {
	var res Interview
	err := g.db.WithContext(ctx).
		Where("uuid = ? AND uid = ?", uuid, uid).
		First(&res).Error
	return res, err
}

func (g *GORMInterviewDAO) Complete(ctx context.Context, itv Interview) error {
	res := g.db.WithContext(ctx).Model(&Interview{}).
		Where("id = ? AND status = ?", itv.Id, statusInProgress).
		Updates(map[string]any{
			"status":              statusCompleted,
			"completed_at":        itv.CompletedAt,
			"duration":            itv.Duration,
			"overall_score":       itv.OverallScore,
			"technical_score":     itv.TechnicalScore,
			"average_answer_time": itv.AverageAnswerTime,
			"questions_answered":  itv.QuestionsAnswered,
			"quality_rating":      itv.QualityRating,
			"utime":               time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}

func (g *GORMInterviewDAO) List(ctx context.Context, uid int64, status string, offset, limit int) ([]Interview, error) {
	var res []Interview
	err := g.byUidAndStatus(ctx, uid, status).
		Order("started_at DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMInterviewDAO) CountByUid(ctx context.Context, uid int64, status string) (int64, error) {
	var res int64
	err := g.byUidAndStatus(ctx, uid, status).Count(&res).Error
	return res, err
}

func (g *GORMInterviewDAO) byUidAndStatus(ctx context.Context, uid int64, status string) *gorm.DB {
	query := g.db.WithContext(ctx).Model(&Interview{}).Where("uid = ?", uid)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	return query
}

func (g *GORMInterviewDAO) IncrAnswer(ctx context.Context, id int64, score float64, technical bool, timeSpent int64) error {
	updates := map[string]any{
		"answer_count": gorm.Expr("answer_count + 1"),
		"score_sum":    gorm.Expr("score_sum + ?", score),
		"utime":        time.Now().UnixMilli(),
	}
	if technical {
		updates["technical_count"] = gorm.Expr("technical_count + 1")
		updates["technical_score_sum"] = gorm.Expr("technical_score_sum + ?", score)
	}
	if timeSpent > 0 {
		updates["timed_count"] = gorm.Expr("timed_count + 1")
		updates["time_spent_sum"] = gorm.Expr("time_spent_sum + ?", timeSpent)
	}
	return g.db.WithContext(ctx).Model(&Interview{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (g *GORMInterviewDAO) Summary(ctx context.Context, uid int64) (Summary, error) {
	var res Summary
	err := g.db.WithContext(ctx).Model(&Interview{}).
		Select("COUNT(*) AS completed, COALESCE(AVG(overall_score), 0) AS average_score, COALESCE(SUM(duration), 0) AS total_duration").
		Where("uid = ? AND status = ?", uid, statusCompleted).
		Scan(&res).Error
	return res, err
}

func (g *GORMInterviewDAO) CompletedSince(ctx context.Context, uid int64, since int64) ([]Interview, error) {
	var res []Interview
	err := g.db.WithContext(ctx).
		Where("uid = ? AND status = ? AND completed_at >= ?", uid, statusCompleted, since).
		Order("completed_at ASC").
		Find(&res).Error
	return res, err
}

func (g *GORMInterviewDAO) RecentCompleted(ctx context.Context, uid int64, limit int) ([]Interview, error) {
	var res []Interview
	err := g.db.WithContext(ctx).
		Where("uid = ? AND status = ?", uid, statusCompleted).
		Order("completed_at DESC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMInterviewDAO) Count(ctx context.Context) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).Model(&Interview{}).Count(&res).Error
	return res, err
}

func (g *GORMInterviewDAO) Recent(ctx context.Context, limit int) ([]Interview, error) {
	var res []Interview
	err := g.db.WithContext(ctx).
		Order("started_at DESC, id DESC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMInterviewDAO) FindStaleIds(ctx context.Context, startedBefore int64, limit int) ([]int64, error) {
	var res []int64
	err := g.db.WithContext(ctx).Model(&Interview{}).
		Where("status = ? AND started_at < ?", statusInProgress, startedBefore).
		Order("id ASC").
		Limit(limit).
		Pluck("id", &res).Error
	return res, err
}

func (g *GORMInterviewDAO) Abandon(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := g.db.WithContext(ctx).Model(&Interview{}).
		Where("id IN ? AND status = ?", ids, statusInProgress).
		Updates(map[string]any{
			"status": statusAbandoned,
			"utime":  time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

type Interview struct {
	Id   int64  `gorm:"primaryKey,autoIncrement"`
	Uid  int64  `gorm:"index:idx_uid_status_started,priority:1;NOT NULL"`
	Uuid string `gorm:"type:varchar(36);uniqueIndex"`

	Field   string `gorm:"type:varchar(100);index"`
	Level   string `gorm:"type:varchar(50)"`
	Type    string `gorm:"type:varchar(50)"`
	Company string `gorm:"type:varchar(100)"`
	Mode    string `gorm:"type:varchar(20)"`

	Status            string `gorm:"type:varchar(20);index:idx_uid_status_started,priority:2;default:'in_progress'"`
	QuestionsTotal    int
	QuestionsAnswered int

	OverallScore      float64
	TechnicalScore    float64
	AverageAnswerTime float64
	// 秒
	Duration      int64
	QualityRating string `gorm:"type:varchar(20)"`

	// 答案的累加值，结束面试的时候用来计算分数
	AnswerCount       int
	ScoreSum          float64
	TechnicalCount    int
	TechnicalScoreSum float64
	TimedCount        int
	TimeSpentSum      int64

	StartedAt   int64 `gorm:"index:idx_uid_status_started,priority:3"`
	CompletedAt int64

	Ctime int64
	Utime int64
}

type Summary struct {
	Completed     int64
	AverageScore  float64
	TotalDuration int64
}
