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

package analytics

import (
	"context"

	"github.com/ecodeclub/coach/internal/analytics/internal/repository/cache"
	"github.com/ecodeclub/coach/internal/analytics/internal/service"
	"github.com/ecodeclub/coach/internal/analytics/internal/web"
	"github.com/ecodeclub/coach/internal/feedback"
	"github.com/ecodeclub/coach/internal/interview"
	"github.com/ecodeclub/coach/internal/question"
	"github.com/ecodeclub/coach/internal/user"
	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
)

func InitModule(db *egorm.Component,
	ec ecache.Cache,
	rc redis.Cmdable,
	userModule *user.Module,
	interviewModule *interview.Module,
	questionModule *question.Module,
	feedbackModule *feedback.Module) *Module {
	wire.Build(
		cache.NewAnalyticsECache,
		initPingers,
		userService,
		interviewService,
		questionService,
		feedbackService,
		service.NewService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

func initPingers(db *egorm.Component, rc redis.Cmdable) service.Pingers {
	return service.Pingers{
		DB: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		Redis: func(ctx context.Context) error {
			return rc.Ping(ctx).Err()
		},
	}
}

func userService(m *user.Module) user.Service {
	return m.Svc
}

func interviewService(m *interview.Module) interview.Service {
	return m.Svc
}

func questionService(m *question.Module) question.Service {
	return m.Svc
}

func feedbackService(m *feedback.Module) feedback.Service {
	return m.Svc
}
