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

	"github.com/ecodeclub/coach/internal/feedback/internal/domain"
	"github.com/ecodeclub/coach/internal/feedback/internal/event"
	"github.com/ecodeclub/coach/internal/feedback/internal/repository"
	repomocks "github.com/ecodeclub/coach/internal/feedback/internal/repository/mocks"
	"github.com/ecodeclub/coach/internal/interview"
	interviewmocks "github.com/ecodeclub/coach/internal/interview/mocks"
	"github.com/ecodeclub/coach/internal/question"
	quemocks "github.com/ecodeclub/coach/internal/question/mocks"
	"github.com/ecodeclub/coach/internal/scoring"
	"github.com/gotomicro/ego/core/elog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixedRand float64

func (f fixedRand) Float64() float64 {
	return float64(f)
}

// fakeProducer 记录发出去的事件
type fakeProducer struct {
	events []event.AnswerScoredEvent
	err    error
}

func (p *fakeProducer) Produce(ctx context.Context, evt event.AnswerScoredEvent) error {
	p.events = append(p.events, evt)
	return p.err
}

func TestService_Submit(t *testing.T) {
	const uid = int64(11)
	// basic 版本：6 个单词基础分 4.0，随机数 0.5 对应 +0.5
	const answerText = "I would use a hash map"
	const wantScore = 4.5

	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) (repository.AnswerRepository, interview.Service, question.Service)
		sub  domain.Submission
		// producerErr 发送失败也不影响结果
		producerErr error

		wantErr   error
		wantEvent event.AnswerScoredEvent
	}{
		{
			name: "技术题",
			mock: func(ctrl *gomock.Controller) (repository.AnswerRepository, interview.Service, question.Service) {
				itvSvc := interviewmocks.NewMockService(ctrl)
				itvSvc.EXPECT().FindByUUID(gomock.Any(), uid, "itv-1").
					Return(interview.Interview{Id: 10, Uid: uid, Status: interview.StatusInProgress}, nil)
				itvSvc.EXPECT().RecordAnswer(gomock.Any(), int64(10), interview.AnswerRecord{
					Score: wantScore, Technical: true, TimeSpent: 90,
				}).Return(nil)
				queSvc := quemocks.NewMockService(ctrl)
				queSvc.EXPECT().FindByUUID(gomock.Any(), "q-1").
					Return(question.Question{Id: 5, Category: "technical", Text: "How to dedupe?"}, nil)
				repo := repomocks.NewMockAnswerRepository(ctrl)
				repo.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, a domain.Answer, f domain.Feedback) (domain.Answer, domain.Feedback, error) {
						assert.Equal(t, int64(5), a.QuestionId)
						assert.Equal(t, 6, a.WordCount)
						assert.NotEmpty(t, a.Tid)
						assert.Equal(t, "basic", f.Variant)
						assert.Equal(t, "gpt-4-simulation", f.Model)
						assert.Nil(t, f.Details)
						a.Id, f.Id, f.AnswerId = 100, 200, 100
						return a, f, nil
					})
				return repo, itvSvc, queSvc
			},
			sub: domain.Submission{
				InterviewUUID: "itv-1", QuestionUUID: "q-1", Text: answerText, TimeSpent: 90,
			},
			wantEvent: event.AnswerScoredEvent{
				Uid: uid, InterviewId: 10, AnswerId: 100, QuestionId: 5,
				Category: "technical", Score: wantScore, TimeSpent: 90, Variant: "basic",
			},
		},
		{
			name: "题目不存在，按照没有题目处理",
			mock: func(ctrl *gomock.Controller) (repository.AnswerRepository, interview.Service, question.Service) {
				itvSvc := interviewmocks.NewMockService(ctrl)
				itvSvc.EXPECT().FindByUUID(gomock.Any(), uid, "itv-1").
					Return(interview.Interview{Id: 10, Uid: uid, Status: interview.StatusInProgress}, nil)
				itvSvc.EXPECT().RecordAnswer(gomock.Any(), int64(10), interview.AnswerRecord{
					Score: wantScore, Technical: false, TimeSpent: 30,
				}).Return(nil)
				queSvc := quemocks.NewMockService(ctrl)
				queSvc.EXPECT().FindByUUID(gomock.Any(), "missing").
					Return(question.Question{}, question.ErrQuestionNotFound)
				repo := repomocks.NewMockAnswerRepository(ctrl)
				repo.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, a domain.Answer, f domain.Feedback) (domain.Answer, domain.Feedback, error) {
						assert.Equal(t, int64(0), a.QuestionId)
						a.Id = 101
						return a, f, nil
					})
				return repo, itvSvc, queSvc
			},
			sub: domain.Submission{
				InterviewUUID: "itv-1", QuestionUUID: "missing", Text: answerText, TimeSpent: 30,
			},
			producerErr: errors.New("mock mq error"),
			wantEvent: event.AnswerScoredEvent{
				Uid: uid, InterviewId: 10, AnswerId: 101,
				Category: "unspecified", Score: wantScore, TimeSpent: 30, Variant: "basic",
			},
		},
		{
			name: "面试已经结束",
			mock: func(ctrl *gomock.Controller) (repository.AnswerRepository, interview.Service, question.Service) {
				itvSvc := interviewmocks.NewMockService(ctrl)
				itvSvc.EXPECT().FindByUUID(gomock.Any(), uid, "itv-2").
					Return(interview.Interview{Id: 12, Uid: uid, Status: interview.StatusCompleted}, nil)
				return repomocks.NewMockAnswerRepository(ctrl), itvSvc, quemocks.NewMockService(ctrl)
			},
			sub:     domain.Submission{InterviewUUID: "itv-2", Text: answerText},
			wantErr: ErrInterviewClosed,
		},
		{
			name: "面试不存在",
			mock: func(ctrl *gomock.Controller) (repository.AnswerRepository, interview.Service, question.Service) {
				itvSvc := interviewmocks.NewMockService(ctrl)
				itvSvc.EXPECT().FindByUUID(gomock.Any(), uid, "itv-3").
					Return(interview.Interview{}, interview.ErrInterviewNotFound)
				return repomocks.NewMockAnswerRepository(ctrl), itvSvc, quemocks.NewMockService(ctrl)
			},
			sub:     domain.Submission{InterviewUUID: "itv-3", Text: answerText},
			wantErr: ErrInterviewNotFound,
		},
		{
			name: "保存失败",
			mock: func(ctrl *gomock.Controller) (repository.AnswerRepository, interview.Service, question.Service) {
				itvSvc := interviewmocks.NewMockService(ctrl)
				itvSvc.EXPECT().FindByUUID(gomock.Any(), uid, "itv-1").
					Return(interview.Interview{Id: 10, Uid: uid, Status: interview.StatusInProgress}, nil)
				repo := repomocks.NewMockAnswerRepository(ctrl)
				repo.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.Answer{}, domain.Feedback{}, errors.New("mock db error"))
				return repo, itvSvc, quemocks.NewMockService(ctrl)
			},
			sub:     domain.Submission{InterviewUUID: "itv-1", Text: answerText},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, itvSvc, queSvc := tc.mock(ctrl)
			producer := &fakeProducer{err: tc.producerErr}
			svc := &service{
				repo:         repo,
				scorer:       scoring.NewBasic(),
				interviewSvc: itvSvc,
				questionSvc:  queSvc,
				producer:     producer,
				newRand: func() scoring.Rand {
					return fixedRand(0.5)
				},
				logger: elog.DefaultLogger,
			}
			a, fb, err := svc.Submit(context.Background(), uid, tc.sub)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.Equal(t, tc.wantErr.Error(), err.Error())
				assert.Empty(t, producer.events)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, wantScore, a.Score)
			assert.Equal(t, wantScore, fb.Score)
			assert.NotEmpty(t, fb.Strengths)
			assert.NotEmpty(t, fb.Improvements)
			require.Len(t, producer.events, 1)
			evt := producer.events[0]
			assert.Equal(t, a.Tid, evt.Tid)
			evt.Tid = ""
			assert.Equal(t, tc.wantEvent, evt)
		})
	}
}

func TestService_Rate(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) repository.AnswerRepository
		uid     int64
		wantErr error
	}{
		{
			name: "评价成功",
			mock: func(ctrl *gomock.Controller) repository.AnswerRepository {
				repo := repomocks.NewMockAnswerRepository(ctrl)
				repo.EXPECT().FindByUUID(gomock.Any(), "a-1").Return(domain.Answer{Id: 3, Uid: 7}, nil)
				repo.EXPECT().Rate(gomock.Any(), int64(3), domain.Rating{Score: 4, Helpful: true}).Return(nil)
				return repo
			},
			uid: 7,
		},
		{
			name: "别人的答案",
			mock: func(ctrl *gomock.Controller) repository.AnswerRepository {
				repo := repomocks.NewMockAnswerRepository(ctrl)
				repo.EXPECT().FindByUUID(gomock.Any(), "a-1").Return(domain.Answer{Id: 3, Uid: 8}, nil)
				return repo
			},
			uid:     7,
			wantErr: ErrAnswerNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl), scoring.NewBasic(), nil, nil, &fakeProducer{})
			err := svc.Rate(context.Background(), tc.uid, "a-1", domain.Rating{Score: 4, Helpful: true})
			assert.Equal(t, tc.wantErr, err)
		})
	}
}
