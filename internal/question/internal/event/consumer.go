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

package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/coach/internal/question/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// AnswerScoredConsumer 根据答案的分数更新题目的难度
type AnswerScoredConsumer struct {
	consumer mq.Consumer
	svc      service.Service
	logger   *elog.Component
}

func NewAnswerScoredConsumer(svc service.Service, q mq.MQ) (*AnswerScoredConsumer, error) {
	const groupID = "question"
	consumer, err := q.Consumer(answerScoredTopic, groupID)
	if err != nil {
		return nil, err
	}
	return &AnswerScoredConsumer{
		consumer: consumer,
		svc:      svc,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *AnswerScoredConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt AnswerScoredEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	err = c.svc.RecordScore(ctx, evt.QuestionId, evt.Score, evt.TimeSpent)
	if err != nil {
		c.logger.Error("更新题目指标失败", elog.Any("event", evt))
	}
	return err
}

func (c *AnswerScoredConsumer) Start(ctx context.Context) {
	go func() {
		for ctx.Err() == nil {
			er := c.Consume(ctx)
			if er != nil {
				c.logger.Error("消费答案打分事件失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *AnswerScoredConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
