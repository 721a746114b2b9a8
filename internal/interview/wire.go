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

package interview

import (
	"sync"
	"time"

	"github.com/ecodeclub/coach/internal/interview/internal/job"
	"github.com/ecodeclub/coach/internal/interview/internal/repository"
	"github.com/ecodeclub/coach/internal/interview/internal/repository/dao"
	"github.com/ecodeclub/coach/internal/interview/internal/service"
	"github.com/ecodeclub/coach/internal/interview/internal/web"
	"github.com/ecodeclub/coach/internal/user"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component, userModule *user.Module) *Module {
	wire.Build(
		initDAO,
		repository.NewInterviewRepository,
		userService,
		service.NewService,
		web.NewHandler,
		initAbandonJob,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

var daoOnce = sync.Once{}

func initDAO(db *egorm.Component) dao.InterviewDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMInterviewDAO(db)
}

func userService(m *user.Module) user.Service {
	return m.Svc
}

func initAbandonJob(svc service.Service) *job.AbandonStaleInterviewsJob {
	type Config struct {
		After   time.Duration `yaml:"after"`
		Batch   int           `yaml:"batch"`
		Timeout time.Duration `yaml:"timeout"`
	}
	cfg := Config{
		After:   2 * time.Hour,
		Batch:   100,
		Timeout: time.Minute,
	}
	err := econf.UnmarshalKey("interview.abandon", &cfg)
	if err != nil {
		panic(err)
	}
	return job.NewAbandonStaleInterviewsJob(svc, cfg.After, cfg.Batch, cfg.Timeout)
}
