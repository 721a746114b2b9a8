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
	"math/rand/v2"
	"strings"
	"time"

	"github.com/ecodeclub/coach/internal/feedback/internal/domain"
	"github.com/ecodeclub/coach/internal/feedback/internal/event"
	"github.com/ecodeclub/coach/internal/feedback/internal/repository"
	"github.com/ecodeclub/coach/internal/interview"
	"github.com/ecodeclub/coach/internal/pkg/mqx"
	"github.com/ecodeclub/coach/internal/question"
	"github.com/ecodeclub/coach/internal/scoring"
	"github.com/ecodeclub/ekit/slice"
	"github.com/google/uuid"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"github.com/pkg/errors"
)

var (
	ErrInterviewNotFound = interview.ErrInterviewNotFound
	ErrInterviewClosed   = errors.New("面试已经结束")
	ErrAnswerNotFound    = repository.ErrAnswerNotFound
)

//go:generate mockgen -source=./feedback.go -package=svcmocks -destination=mocks/feedback.mock.go Service
type Service interface {
	// Submit 保存答案并且打分，返回答案和反馈
	Submit(ctx context.Context, uid int64, sub domain.Submission) (domain.Answer, domain.Feedback, error)
	// Find 只能查看自己的答案
	Find(ctx context.Context, uid int64, answerUUID string) (domain.Answer, domain.Feedback, error)
	Rate(ctx context.Context, uid int64, answerUUID string, r domain.Rating) error
	CountByUser(ctx context.Context, uid int64) (int64, error)
}

type service struct {
	repo         repository.AnswerRepository
	scorer       *scoring.Scorer
	interviewSvc interview.Service
	questionSvc  question.Service
	producer     mqx.Producer[event.AnswerScoredEvent]
	// newRand 每次打分都使用新的随机源
	newRand func() scoring.Rand
	logger  *elog.Component
}

func NewService(repo repository.AnswerRepository,
	scorer *scoring.Scorer,
	interviewSvc interview.Service,
	questionSvc question.Service,
	producer mqx.Producer[event.AnswerScoredEvent]) Service {
	return &service{
		repo:         repo,
		scorer:       scorer,
		interviewSvc: interviewSvc,
		questionSvc:  questionSvc,
		producer:     producer,
		newRand: func() scoring.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
		logger: elog.DefaultLogger,
	}
}

func (s *service) Submit(ctx context.Context, uid int64, sub domain.Submission) (domain.Answer, domain.Feedback, error) {
	itv, err := s.interviewSvc.FindByUUID(ctx, uid, sub.InterviewUUID)
	if err != nil {
		return domain.Answer{}, domain.Feedback{}, err
	}
	if itv.Closed() {
		return domain.Answer{}, domain.Feedback{}, ErrInterviewClosed
	}

	// 题目是可选的，找不到就按照没有题目处理
	var que question.Question
	if sub.QuestionUUID != "" {
		que, err = s.questionSvc.FindByUUID(ctx, sub.QuestionUUID)
		if err != nil && !errors.Is(err, question.ErrQuestionNotFound) {
			return domain.Answer{}, domain.Feedback{}, errors.Wrapf(err, "查询题目失败 %s", sub.QuestionUUID)
		}
	}
	category := scoring.ParseCategory(que.Category)

	tid := shortuuid.New()
	start := time.Now()
	res := s.scorer.Score(scoring.Input{
		AnswerText:   sub.Text,
		Category:     category,
		QuestionText: que.Text,
	}, s.newRand())
	variant := string(s.scorer.Variant())
	answerScoringDuration.WithLabelValues(variant).Observe(time.Since(start).Seconds())
	answerScore.WithLabelValues(variant, category.String()).Observe(res.Score)

	answer := domain.Answer{
		UUID:           uuid.NewString(),
		Uid:            uid,
		InterviewId:    itv.Id,
		QuestionId:     que.Id,
		Text:           sub.Text,
		AudioURL:       sub.AudioURL,
		VideoURL:       sub.VideoURL,
		TimeSpent:      sub.TimeSpent,
		Score:          res.Score,
		WordCount:      len(strings.Fields(sub.Text)),
		CharacterCount: len([]rune(sub.Text)),
		Quality:        domain.NewQuality(sub.Text),
		Tid:            tid,
	}
	fb := s.toFeedback(uid, res, variant)
	answer, fb, err = s.repo.Save(ctx, answer, fb)
	if err != nil {
		return domain.Answer{}, domain.Feedback{}, err
	}

	err = s.interviewSvc.RecordAnswer(ctx, itv.Id, interview.AnswerRecord{
		Score:     answer.Score,
		Technical: category == scoring.CategoryTechnical,
		TimeSpent: answer.TimeSpent,
	})
	if err != nil {
		s.logger.Error("更新面试的答题统计失败",
			elog.FieldErr(err),
			elog.Int64("interviewId", itv.Id),
			elog.String("tid", tid))
	}

	err = s.producer.Produce(ctx, event.AnswerScoredEvent{
		Uid:         uid,
		InterviewId: itv.Id,
		AnswerId:    answer.Id,
		QuestionId:  que.Id,
		Category:    category.String(),
		Score:       answer.Score,
		TimeSpent:   answer.TimeSpent,
		Variant:     variant,
		Tid:         tid,
	})
	if err != nil {
		s.logger.Error("发送答案打分事件失败",
			elog.FieldErr(err),
			elog.Int64("answerId", answer.Id),
			elog.String("tid", tid))
	}
	s.logger.Info("答案打分完成",
		elog.Int64("uid", uid),
		elog.Int64("answerId", answer.Id),
		elog.Any("score", answer.Score),
		elog.String("variant", variant),
		elog.String("tid", tid))
	return answer, fb, nil
}

func (s *service) toFeedback(uid int64, res scoring.Result, variant string) domain.Feedback {
	fb := domain.Feedback{
		UUID:             uuid.NewString(),
		Uid:              uid,
		Score:            res.Score,
		Strengths:        res.Strengths,
		Improvements:     res.Improvements,
		DetailedFeedback: res.DetailedFeedback,
		Variant:          variant,
		Model:            res.Model,
	}
	if res.Details != nil {
		d := res.Details
		fb.Details = &domain.Details{
			Content:           d.SubScores.Content,
			Structure:         d.SubScores.Structure,
			Communication:     d.SubScores.Communication,
			TechnicalAccuracy: d.SubScores.TechnicalAccuracy,
			ActionItems:       d.ActionItems,
			LearningResources: slice.Map(d.LearningResources, func(idx int, src scoring.Resource) domain.Resource {
				return domain.Resource(src)
			}),
			PracticeSuggestions: d.PracticeSuggestions,
			ModelVersion:        d.Metadata.Version,
			ProcessingTime:      float64(d.Metadata.ProcessingTime.Microseconds()) / 1000,
			Confidence:          d.Metadata.Confidence,
			Tokens:              d.Metadata.Tokens,
		}
	}
	return fb
}

func (s *service) Find(ctx context.Context, uid int64, answerUUID string) (domain.Answer, domain.Feedback, error) {
	a, err := s.findOwned(ctx, uid, answerUUID)
	if err != nil {
		return domain.Answer{}, domain.Feedback{}, err
	}
	fb, err := s.repo.FindFeedback(ctx, a.Id)
	return a, fb, err
}

func (s *service) Rate(ctx context.Context, uid int64, answerUUID string, r domain.Rating) error {
	a, err := s.findOwned(ctx, uid, answerUUID)
	if err != nil {
		return err
	}
	return s.repo.Rate(ctx, a.Id, r)
}

// findOwned 别人的答案也当作不存在
func (s *service) findOwned(ctx context.Context, uid int64, answerUUID string) (domain.Answer, error) {
	a, err := s.repo.FindByUUID(ctx, answerUUID)
	if err != nil {
		return domain.Answer{}, err
	}
	if a.Uid != uid {
		return domain.Answer{}, ErrAnswerNotFound
	}
	return a, nil
}

func (s *service) CountByUser(ctx context.Context, uid int64) (int64, error) {
	return s.repo.CountByUid(ctx, uid)
}
