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

//go:build e2e

package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/coach/internal/interview"
	"github.com/ecodeclub/coach/internal/interview/internal/errs"
	"github.com/ecodeclub/coach/internal/interview/internal/repository/dao"
	"github.com/ecodeclub/coach/internal/interview/internal/web"
	"github.com/ecodeclub/coach/internal/test"
	testioc "github.com/ecodeclub/coach/internal/test/ioc"
	"github.com/ecodeclub/coach/internal/user"
	usermocks "github.com/ecodeclub/coach/internal/user/mocks"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const uid = 2051

type HandlerTestSuite struct {
	suite.Suite
	db      *egorm.Component
	server  *egin.Component
	module  *interview.Module
	userSvc *usermocks.MockUserService
}

func TestInterviewHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	ctrl := gomock.NewController(s.T())
	s.userSvc = usermocks.NewMockUserService(ctrl)
	s.module = interview.InitModule(s.db, &user.Module{Svc: s.userSvc})

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	s.module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `interviews`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TestStart() {
	req, err := http.NewRequest(http.MethodPost, "/api/interviews/start",
		iox.NewJSONReader(web.StartReq{Field: "software", Level: "mid", Company: "ACME"}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.Interview]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	res := recorder.MustScan().Data
	assert.NotEmpty(s.T(), res.Id)
	assert.Equal(s.T(), "in_progress", res.Status)
	assert.Equal(s.T(), "technical", res.Type)
	assert.Equal(s.T(), "text", res.Mode)
	assert.Equal(s.T(), 5, res.QuestionsTotal)

	var itv dao.Interview
	err = s.db.Where("uuid = ?", res.Id).First(&itv).Error
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(uid), itv.Uid)
	assert.Equal(s.T(), "ACME", itv.Company)
	assert.True(s.T(), itv.StartedAt > 0)
}

func (s *HandlerTestSuite) TestComplete() {
	now := time.Now().UnixMilli()
	testCases := []struct {
		name     string
		before   func(t *testing.T)
		after    func(t *testing.T)
		id       string
		req      web.CompleteReq
		wantCode int
		wantResp test.Result[web.Interview]
	}{
		{
			name: "使用答案统计结束",
			before: func(t *testing.T) {
				err := s.db.Create(&dao.Interview{
					Uid: uid, Uuid: "itv-1", Type: "technical", Mode: "text",
					Status: "in_progress", QuestionsTotal: 5, StartedAt: now,
					AnswerCount: 2, ScoreSum: 15, TechnicalCount: 1, TechnicalScoreSum: 8,
					TimedCount: 2, TimeSpentSum: 200,
				}).Error
				require.NoError(t, err)
				s.userSvc.EXPECT().RecordPractice(gomock.Any(), int64(uid), int64(900), 7.5, gomock.Any()).Return(nil)
			},
			after: func(t *testing.T) {
				var itv dao.Interview
				err := s.db.Where("uuid = ?", "itv-1").First(&itv).Error
				require.NoError(t, err)
				assert.Equal(t, "completed", itv.Status)
				assert.Equal(t, "good", itv.QualityRating)
				assert.Equal(t, 8.0, itv.TechnicalScore)
				assert.Equal(t, 100.0, itv.AverageAnswerTime)
				assert.True(t, itv.CompletedAt > 0)
			},
			id:       "itv-1",
			req:      web.CompleteReq{Duration: 900, Score: 3, QuestionsAnswered: 1},
			wantCode: 200,
			wantResp: test.Result[web.Interview]{
				Msg: "OK",
				Data: web.Interview{
					Id: "itv-1", Type: "technical", Mode: "text", Status: "completed",
					StartedAt: now, Duration: 900, Score: 7.5, TechnicalScore: 8,
					AverageAnswerTime: 100, QualityRating: "good",
					QuestionsAnswered: 2, QuestionsTotal: 5,
				},
			},
		},
		{
			name: "已经结束",
			before: func(t *testing.T) {
				err := s.db.Create(&dao.Interview{
					Uid: uid, Uuid: "itv-2", Status: "completed", StartedAt: now,
				}).Error
				require.NoError(t, err)
			},
			after:    func(t *testing.T) {},
			id:       "itv-2",
			req:      web.CompleteReq{Duration: 10},
			wantCode: 200,
			wantResp: test.Result[web.Interview]{
				Code: errs.InterviewClosed.Code,
				Msg:  errs.InterviewClosed.Msg,
			},
		},
		{
			name: "别人的面试",
			before: func(t *testing.T) {
				err := s.db.Create(&dao.Interview{
					Uid: uid + 1, Uuid: "itv-3", Status: "in_progress", StartedAt: now,
				}).Error
				require.NoError(t, err)
			},
			after: func(t *testing.T) {
				var itv dao.Interview
				err := s.db.Where("uuid = ?", "itv-3").First(&itv).Error
				require.NoError(t, err)
				assert.Equal(t, "in_progress", itv.Status)
			},
			id:       "itv-3",
			req:      web.CompleteReq{Duration: 10},
			wantCode: 200,
			wantResp: test.Result[web.Interview]{
				Code: errs.InterviewNotFound.Code,
				Msg:  errs.InterviewNotFound.Msg,
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		s.T().Run(tc.name, func(t *testing.T) {
			tc.before(t)
			req, err := http.NewRequest(http.MethodPost,
				"/api/interviews/"+tc.id+"/complete", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.Interview]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			resp := recorder.MustScan()
			resp.Data.CompletedAt = 0
			assert.Equal(t, tc.wantResp, resp)
			tc.after(t)
		})
	}
}

func (s *HandlerTestSuite) TestList() {
	base := time.Now().Add(-time.Hour).UnixMilli()
	for i := 0; i < 5; i++ {
		status := "completed"
		if i%2 == 0 {
			status = "in_progress"
		}
		err := s.db.Create(&dao.Interview{
			Uid: uid, Uuid: "list-" + string(rune('a'+i)), Status: status, StartedAt: base + int64(i),
		}).Error
		require.NoError(s.T(), err)
	}
	err := s.db.Create(&dao.Interview{Uid: uid + 1, Uuid: "other", Status: "completed", StartedAt: base}).Error
	require.NoError(s.T(), err)

	testCases := []struct {
		name      string
		query     string
		wantIds   []string
		wantTotal int64
		wantPages int64
		wantPage  int
	}{
		{
			name:      "第一页",
			query:     "?page=1&perPage=2",
			wantIds:   []string{"list-e", "list-d"},
			wantTotal: 5,
			wantPages: 3,
			wantPage:  1,
		},
		{
			name:      "最后一页",
			query:     "?page=3&perPage=2",
			wantIds:   []string{"list-a"},
			wantTotal: 5,
			wantPages: 3,
			wantPage:  3,
		},
		{
			name:      "按照状态过滤",
			query:     "?status=completed",
			wantIds:   []string{"list-d", "list-b"},
			wantTotal: 2,
			wantPages: 1,
			wantPage:  1,
		},
	}
	for _, tc := range testCases {
		tc := tc
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, "/api/interviews"+tc.query, nil)
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.Page]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, 200, recorder.Code)
			page := recorder.MustScan().Data
			ids := make([]string, 0, len(page.List))
			for _, itv := range page.List {
				ids = append(ids, itv.Id)
			}
			assert.Equal(t, tc.wantIds, ids)
			assert.Equal(t, tc.wantTotal, page.Total)
			assert.Equal(t, tc.wantPages, page.Pages)
			assert.Equal(t, tc.wantPage, page.CurrentPage)
		})
	}
}

func (s *HandlerTestSuite) TestDetail() {
	err := s.db.Create(&dao.Interview{Uid: uid, Uuid: "detail-1", Field: "data-science", Status: "in_progress", StartedAt: 1000}).Error
	require.NoError(s.T(), err)

	req, err := http.NewRequest(http.MethodGet, "/api/interviews/detail-1", nil)
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.Interview]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	assert.Equal(s.T(), web.Interview{
		Id: "detail-1", Field: "data-science", Status: "in_progress", StartedAt: 1000,
	}, recorder.MustScan().Data)

	req, err = http.NewRequest(http.MethodGet, "/api/interviews/missing", nil)
	require.NoError(s.T(), err)
	recorder = test.NewJSONResponseRecorder[web.Interview]()
	s.server.ServeHTTP(recorder, req)
	assert.Equal(s.T(), errs.InterviewNotFound.Code, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestAbandonJob() {
	stale := time.Now().Add(-3 * time.Hour).UnixMilli()
	fresh := time.Now().UnixMilli()
	for _, itv := range []dao.Interview{
		{Uid: uid, Uuid: "stale-1", Status: "in_progress", StartedAt: stale},
		{Uid: uid, Uuid: "stale-2", Status: "in_progress", StartedAt: stale},
		{Uid: uid, Uuid: "fresh", Status: "in_progress", StartedAt: fresh},
		{Uid: uid, Uuid: "done", Status: "completed", StartedAt: stale},
	} {
		require.NoError(s.T(), s.db.Create(&itv).Error)
	}

	err := s.module.AbandonJob.Run(context.Background())
	require.NoError(s.T(), err)

	var res []dao.Interview
	err = s.db.Order("id ASC").Find(&res).Error
	require.NoError(s.T(), err)
	statuses := make(map[string]string, len(res))
	for _, itv := range res {
		statuses[itv.Uuid] = itv.Status
	}
	assert.Equal(s.T(), map[string]string{
		"stale-1": "abandoned",
		"stale-2": "abandoned",
		"fresh":   "in_progress",
		"done":    "completed",
	}, statuses)
}
