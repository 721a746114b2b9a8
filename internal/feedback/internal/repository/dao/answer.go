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
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type AnswerDAO interface {
	// Save 在一个事务里面保存答案和反馈，返回两者的 ID
	Save(ctx context.Context, a Answer, f Feedback) (int64, int64, error)
	FindByUUID(ctx context.Context, uuid string) (Answer, error)
	FindFeedback(ctx context.Context, answerId int64) (Feedback, error)
	Rate(ctx context.Context, answerId int64, rating int, helpful bool) error
	CountByUid(ctx context.Context, uid int64) (int64, error)
}

var _ AnswerDAO = &GORMAnswerDAO{}

type GORMAnswerDAO struct {
	db *egorm.Component
}

func NewGORMAnswerDAO(db *egorm.Component) AnswerDAO {
	return &GORMAnswerDAO{db: db}
}

func (dao *GORMAnswerDAO) Save(ctx context.Context, a Answer, f Feedback) (int64, int64, error) {
	now := time.Now().UnixMilli()
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		a.Ctime = now
		a.Utime = now
		err := tx.Create(&a).Error
		if err != nil {
			return err
		}
		f.AnswerId = a.Id
		f.Ctime = now
		f.Utime = now
		return tx.Create(&f).Error
	})
	return a.Id, f.Id, err
}

func (dao *GORMAnswerDAO) FindByUUID(ctx context.Context, uuid string) (Answer, error) {
	var res Answer
	err := dao.db.WithContext(ctx).Where("uuid = ?", uuid).First(&res).Error
	return res, err
}

func (dao *GORMAnswerDAO) FindFeedback(ctx context.Context, answerId int64) (Feedback, error) {
	var res Feedback
	err := dao.db.WithContext(ctx).Where("answer_id = ?", answerId).First(&res).Error
	return res, err
}

func (dao *GORMAnswerDAO) Rate(ctx context.Context, answerId int64, rating int, helpful bool) error {
	return dao.db.WithContext(ctx).Model(&Feedback{}).
		Where("answer_id = ?", answerId).
		Updates(map[string]any{
			"user_rating": rating,
			"was_helpful": helpful,
			"utime":       time.Now().UnixMilli(),
		}).Error
}

func (dao *GORMAnswerDAO) CountByUid(ctx context.Context, uid int64) (int64, error) {
	var res int64
	err := dao.db.WithContext(ctx).Model(&Answer{}).
		Where("uid = ?", uid).Count(&res).Error
	return res, err
}

type Answer struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	Uuid        string `gorm:"type:varchar(36);uniqueIndex"`
	Uid         int64  `gorm:"index"`
	InterviewId int64  `gorm:"index"`
	// 0 代表没有关联题目
	QuestionId int64 `gorm:"index"`

	Text     string `gorm:"type:text"`
	AudioUrl string `gorm:"type:varchar(256)"`
	VideoUrl string `gorm:"type:varchar(256)"`
	// 秒
	TimeSpent      int64
	Score          float64
	WordCount      int
	CharacterCount int
	ClarityScore   float64
	DepthScore     float64
	StructureScore float64
	Tid            string `gorm:"type:varchar(64)"`

	Ctime int64
	Utime int64
}

type Feedback struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	Uuid     string `gorm:"type:varchar(36);uniqueIndex"`
	Uid      int64  `gorm:"index"`
	AnswerId int64  `gorm:"uniqueIndex"`

	Score            float64
	Strengths        sqlx.JsonColumn[[]string] `gorm:"type:text"`
	Improvements     sqlx.JsonColumn[[]string] `gorm:"type:text"`
	DetailedFeedback string                    `gorm:"type:text"`
	Variant          string                    `gorm:"type:varchar(20)"`
	AiModel          string                    `gorm:"type:varchar(50)"`
	// 只有 enhanced 版本才有，整体存成 JSON
	Details sqlx.JsonColumn[Details] `gorm:"type:text"`

	// 0 代表用户还没有评价
	UserRating int
	WasHelpful bool

	Ctime int64 `gorm:"index"`
	Utime int64
}

func (Feedback) TableName() string {
	return "feedback"
}

type Details struct {
	Content             float64    `json:"content"`
	Structure           float64    `json:"structure"`
	Communication       float64    `json:"communication"`
	TechnicalAccuracy   float64    `json:"technicalAccuracy"`
	ActionItems         []string   `json:"actionItems"`
	LearningResources   []Resource `json:"learningResources"`
	PracticeSuggestions []string   `json:"practiceSuggestions"`
	ModelVersion        string     `json:"modelVersion"`
	ProcessingTime      float64    `json:"processingTime"`
	Confidence          float64    `json:"confidence"`
	Tokens              int        `json:"tokens"`
}

type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"`
}
