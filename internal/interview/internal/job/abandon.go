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

package job

import (
	"context"
	"time"

	"github.com/ecodeclub/coach/internal/interview/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

// AbandonStaleInterviewsJob 把超时未结束的面试标记为放弃
type AbandonStaleInterviewsJob struct {
	svc service.Service
	// 面试开始之后多久还没结束就算放弃
	after time.Duration
	batch int
	// 单次运行的超时时间
	timeout time.Duration
	logger  *elog.Component
}

func NewAbandonStaleInterviewsJob(svc service.Service, after time.Duration, batch int, timeout time.Duration) *AbandonStaleInterviewsJob {
	return &AbandonStaleInterviewsJob{
		svc:     svc,
		after:   after,
		batch:   max(batch, 1),
		timeout: timeout,
		logger:  elog.DefaultLogger,
	}
}

func (j *AbandonStaleInterviewsJob) Name() string {
	return "AbandonStaleInterviewsJob"
}

func (j *AbandonStaleInterviewsJob) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()
	cnt, err := j.svc.AbandonStale(ctx, time.Now().Add(-j.after), j.batch)
	if cnt > 0 {
		j.logger.Info("放弃超时面试", elog.Int64("count", cnt))
	}
	return err
}
