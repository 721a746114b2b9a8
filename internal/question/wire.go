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

package question

import (
	"context"
	"sync"

	"github.com/ecodeclub/coach/internal/question/internal/event"
	"github.com/ecodeclub/coach/internal/question/internal/repository"
	"github.com/ecodeclub/coach/internal/question/internal/repository/cache"
	"github.com/ecodeclub/coach/internal/question/internal/repository/dao"
	"github.com/ecodeclub/coach/internal/question/internal/service"
	"github.com/ecodeclub/coach/internal/question/internal/web"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ) *Module {
	wire.Build(
		initDAO,
		cache.NewQuestionECache,
		repository.NewCachedQuestionRepository,
		service.NewService,
		web.NewHandler,
		web.NewAdminHandler,
		initConsumer,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

var daoOnce = sync.Once{}

// initDAO 建表之后，题库为空就写入内置题目
func initDAO(db *egorm.Component) dao.QuestionDAO {
	d := dao.NewGORMQuestionDAO(db)
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
		err = dao.Seed(context.Background(), d)
		if err != nil {
			panic(err)
		}
	})
	return d
}

func initConsumer(svc service.Service, q mq.MQ) *event.AnswerScoredConsumer {
	c, err := event.NewAnswerScoredConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	return c
}
