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

//go:build wireinject

package feedback

import (
	"sync"

	"github.com/ecodeclub/coach/internal/feedback/internal/event"
	"github.com/ecodeclub/coach/internal/feedback/internal/repository"
	"github.com/ecodeclub/coach/internal/feedback/internal/repository/dao"
	"github.com/ecodeclub/coach/internal/feedback/internal/service"
	"github.com/ecodeclub/coach/internal/feedback/internal/web"
	"github.com/ecodeclub/coach/internal/interview"
	"github.com/ecodeclub/coach/internal/pkg/mqx"
	"github.com/ecodeclub/coach/internal/question"
	"github.com/ecodeclub/coach/internal/scoring"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component,
	q mq.MQ,
	interviewModule *interview.Module,
	questionModule *question.Module) *Module {
	wire.Build(
		initDAO,
		repository.NewAnswerRepository,
		initScorer,
		initProducer,
		interviewService,
		questionService,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

var daoOnce = sync.Once{}

func initDAO(db *egorm.Component) dao.AnswerDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMAnswerDAO(db)
}

// initScorer 评分版本来自配置 scoring.variant，默认 enhanced
func initScorer() *scoring.Scorer {
	variant, err := scoring.ParseVariant(econf.GetString("scoring.variant"))
	if err != nil {
		panic(err)
	}
	s, err := scoring.New(variant)
	if err != nil {
		panic(err)
	}
	return s
}

func initProducer(q mq.MQ) mqx.Producer[event.AnswerScoredEvent] {
	p, err := mqx.NewGeneralProducer[event.AnswerScoredEvent](q, event.AnswerScoredTopic)
	if err != nil {
		panic(err)
	}
	return p
}

func interviewService(m *interview.Module) interview.Service {
	return m.Svc
}

func questionService(m *question.Module) question.Service {
	return m.Svc
}
