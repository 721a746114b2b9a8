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
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/coach/internal/question"
	"github.com/ecodeclub/coach/internal/question/internal/errs"
	"github.com/ecodeclub/coach/internal/question/internal/event"
	"github.com/ecodeclub/coach/internal/question/internal/repository/dao"
	"github.com/ecodeclub/coach/internal/question/internal/web"
	"github.com/ecodeclub/coach/internal/test"
	testioc "github.com/ecodeclub/coach/internal/test/ioc"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = 3001

type HandlerTestSuite struct {
	suite.Suite
	db     *egorm.Component
	ec     ecache.Cache
	mq     mq.MQ
	server *egin.Component
}

func TestQuestionHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	s.ec = testioc.InitCache()
	s.mq = testioc.InitMQ()
	module := question.InitModule(s.db, s.ec, s.mq)
	module.C.Start(context.Background())

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	module.Hdl.PublicRoutes(server.Engine)
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  uid,
			Data: map[string]string{"admin": "true"},
		}))
	})
	module.Hdl.PrivateRoutes(server.Engine)
	module.AdminHdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) SetupTest() {
	err := s.db.Exec("TRUNCATE TABLE `questions`").Error
	require.NoError(s.T(), err)
	// 换一个版本号，让之前的列表缓存失效
	err = s.ec.Set(context.Background(), "question:list:version",
		fmt.Sprintf("%d", time.Now().UnixNano()), time.Hour)
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) insert(qs ...dao.Question) {
	for _, q := range qs {
		q.IsActive = true
		require.NoError(s.T(), s.db.Create(&q).Error)
	}
}

func (s *HandlerTestSuite) TestSeed() {
	d := dao.NewGORMQuestionDAO(s.db)
	err := dao.Seed(context.Background(), d)
	require.NoError(s.T(), err)
	cnt, err := d.Count(context.Background(), dao.Filter{})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(len(dao.SeedQuestions())), cnt)

	// 已经有数据就不会再写入
	err = dao.Seed(context.Background(), d)
	require.NoError(s.T(), err)
	cnt2, err := d.Count(context.Background(), dao.Filter{})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), cnt, cnt2)
}

func (s *HandlerTestSuite) TestList() {
	s.insert(
		dao.Question{Uuid: "q-1", Text: "Q1", Category: "technical", Field: "software", Level: "mid", Difficulty: "easy", UsageCount: 1},
		dao.Question{Uuid: "q-2", Text: "Q2", Category: "technical", Field: "software", Level: "mid", Difficulty: "hard", UsageCount: 9},
		dao.Question{Uuid: "q-3", Text: "Q3", Category: "behavioral", Field: "general", Level: "mid", Difficulty: "easy", UsageCount: 5},
		dao.Question{Uuid: "q-4", Text: "Q4", Category: "technical", Field: "software", Level: "senior", Difficulty: "hard", UsageCount: 3,
			Tags: sqlx.JsonColumn[[]string]{Val: []string{"go"}, Valid: true}},
	)
	testCases := []struct {
		name      string
		query     string
		wantIds   []string
		wantTotal int64
		wantPages int64
	}{
		{
			name:      "按照使用次数排序",
			query:     "",
			wantIds:   []string{"q-2", "q-3", "q-4", "q-1"},
			wantTotal: 4,
			wantPages: 1,
		},
		{
			name:      "过滤",
			query:     "?field=software&difficulty=hard",
			wantIds:   []string{"q-2", "q-4"},
			wantTotal: 2,
			wantPages: 1,
		},
		{
			name:      "分页",
			query:     "?page=2&perPage=3",
			wantIds:   []string{"q-1"},
			wantTotal: 4,
			wantPages: 2,
		},
	}
	for _, tc := range testCases {
		tc := tc
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, "/api/questions"+tc.query, nil)
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.Page]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, 200, recorder.Code)
			page := recorder.MustScan().Data
			ids := make([]string, 0, len(page.List))
			for _, q := range page.List {
				ids = append(ids, q.Id)
			}
			assert.Equal(t, tc.wantIds, ids)
			assert.Equal(t, tc.wantTotal, page.Total)
			assert.Equal(t, tc.wantPages, page.Pages)
		})
	}
}

func (s *HandlerTestSuite) TestDetail() {
	s.insert(dao.Question{
		Uuid: "detail-1", Text: "What is a goroutine?", Category: "technical",
		Field: "software", Level: "mid", Difficulty: "medium",
		SampleAnswer: "A lightweight thread",
		Samples:      2, AvgScore: 6.456, DifficultyRating: 6,
	})

	req, err := http.NewRequest(http.MethodGet, "/api/questions/detail-1", nil)
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.Question]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	q := recorder.MustScan().Data
	assert.Equal(s.T(), "What is a goroutine?", q.Text)
	assert.Equal(s.T(), "A lightweight thread", q.SampleAnswer)
	assert.Equal(s.T(), []string{}, q.Tags)
	require.NotNil(s.T(), q.AvgScore)
	assert.Equal(s.T(), 6.46, *q.AvgScore)
	assert.Equal(s.T(), 6.0, *q.DifficultyRating)

	// 详情被缓存了
	val := s.ec.Get(context.Background(), "question:detail:detail-1")
	assert.NoError(s.T(), val.Err)

	req, err = http.NewRequest(http.MethodGet, "/api/questions/not-exist", nil)
	require.NoError(s.T(), err)
	recorder = test.NewJSONResponseRecorder[web.Question]()
	s.server.ServeHTTP(recorder, req)
	assert.Equal(s.T(), errs.QuestionNotFound.Code, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestRandom() {
	// 题库为空
	req, err := http.NewRequest(http.MethodPost, "/api/questions/random",
		iox.NewJSONReader(web.RandomReq{Field: "software"}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.Question]()
	s.server.ServeHTTP(recorder, req)
	assert.Equal(s.T(), errs.QuestionNotFound.Code, recorder.MustScan().Code)

	s.insert(dao.Question{Uuid: "r-1", Text: "Tell me about yourself", Category: "hr", Field: "general", Level: "entry"})

	// 没有技术题，放宽条件
	req, err = http.NewRequest(http.MethodPost, "/api/questions/random",
		iox.NewJSONReader(web.RandomReq{Field: "software", Level: "senior"}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder = test.NewJSONResponseRecorder[web.Question]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	res := recorder.MustScan()
	assert.Equal(s.T(), 0, res.Code)
	assert.Equal(s.T(), "r-1", res.Data.Id)
	assert.Equal(s.T(), int64(1), res.Data.UsageCount)

	var q dao.Question
	err = s.db.Where("uuid = ?", "r-1").First(&q).Error
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), q.UsageCount)
}

func (s *HandlerTestSuite) TestLegacy() {
	req, err := http.NewRequest(http.MethodGet, "/question", nil)
	require.NoError(s.T(), err)
	infoRecorder := test.NewJSONResponseRecorder[web.LegacyInfo]()
	s.server.ServeHTTP(infoRecorder, req)
	require.Equal(s.T(), 200, infoRecorder.Code)
	assert.Contains(s.T(), infoRecorder.MustScan().Data.Message, "Use POST")

	s.insert(dao.Question{Uuid: "l-1", Text: "What is a channel?", Category: "technical", Field: "software", Level: "mid", Difficulty: "medium"})

	testCases := []struct {
		name string
		req  web.LegacyReq
		want web.LegacyQuestion
	}{
		{
			name: "题库里面有",
			req:  web.LegacyReq{Field: "software", Level: "mid"},
			want: web.LegacyQuestion{
				Field: "software", Level: "mid", Question: "What is a channel?",
				Category: "technical", Difficulty: "medium",
			},
		},
		{
			name: "使用内置题目",
			req:  web.LegacyReq{Field: "data-science", Level: "senior"},
			want: web.LegacyQuestion{
				Field: "data-science", Level: "senior", Question: "Explain the bias-variance tradeoff.",
			},
		},
		{
			name: "内置题目也没有",
			req:  web.LegacyReq{Field: "art", Level: "mid"},
			want: web.LegacyQuestion{
				Field: "art", Level: "mid", Question: "No question found",
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, "/question", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.LegacyQuestion]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, 200, recorder.Code)
			assert.Equal(t, tc.want, recorder.MustScan().Data)
		})
	}
}

func (s *HandlerTestSuite) TestAdminCreate() {
	s.insert(dao.Question{Uuid: "a-1", Text: "Old question", Category: "technical", Field: "software", Level: "mid"})
	// 先把列表缓存起来
	listReq, err := http.NewRequest(http.MethodGet, "/api/questions", nil)
	require.NoError(s.T(), err)
	listRecorder := test.NewJSONResponseRecorder[web.Page]()
	s.server.ServeHTTP(listRecorder, listReq)
	require.Equal(s.T(), int64(1), listRecorder.MustScan().Data.Total)

	testCases := []struct {
		name     string
		req      web.CreateReq
		wantCode int
	}{
		{
			name:     "分类不合法",
			req:      web.CreateReq{Text: "Q", Category: "unknown", Field: "software", Level: "mid"},
			wantCode: 403003,
		},
		{
			name:     "缺少题目",
			req:      web.CreateReq{Category: "technical", Field: "software", Level: "mid"},
			wantCode: 403003,
		},
		{
			name: "新建成功",
			req: web.CreateReq{
				Text: "What is a mutex?", Category: "technical", Field: "software", Level: "mid",
				Tags: []string{"go", "concurrency"},
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, "/api/admin/questions", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.Question]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, 200, recorder.Code)
			assert.Equal(t, tc.wantCode, recorder.MustScan().Code)
		})
	}

	var q dao.Question
	err = s.db.Where("text = ?", "What is a mutex?").First(&q).Error
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "medium", q.Difficulty)
	assert.Equal(s.T(), []string{"go", "concurrency"}, q.Tags.Val)

	// 列表缓存已经失效
	listRecorder = test.NewJSONResponseRecorder[web.Page]()
	s.server.ServeHTTP(listRecorder, listReq)
	assert.Equal(s.T(), int64(2), listRecorder.MustScan().Data.Total)
}

func (s *HandlerTestSuite) TestAnswerScoredConsumer() {
	s.insert(dao.Question{Id: 88, Uuid: "c-1", Text: "Q", Category: "technical"})

	producer, err := s.mq.Producer("answer_scored_events")
	require.NoError(s.T(), err)
	for _, evt := range []event.AnswerScoredEvent{
		{AnswerId: 1, QuestionId: 88, Score: 9, TimeSpent: 100},
		{AnswerId: 2, QuestionId: 88, Score: 4, TimeSpent: 200},
	} {
		data, err := json.Marshal(evt)
		require.NoError(s.T(), err)
		_, err = producer.Produce(context.Background(), &mq.Message{Value: data})
		require.NoError(s.T(), err)
	}

	require.Eventually(s.T(), func() bool {
		var q dao.Question
		er := s.db.Where("id = ?", 88).First(&q).Error
		return er == nil && q.Samples == 2
	}, 5*time.Second, 100*time.Millisecond)

	var q dao.Question
	err = s.db.Where("id = ?", 88).First(&q).Error
	require.NoError(s.T(), err)
	// 0.7 * 9 + 0.3 * 4
	assert.InDelta(s.T(), 7.5, q.AvgScore, 1e-9)
	assert.InDelta(s.T(), 130.0, q.AvgCompletionTime, 1e-9)
	assert.Equal(s.T(), 4.0, q.DifficultyRating)
}
