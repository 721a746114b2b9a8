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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/ecodeclub/coach/internal/question/internal/domain"
	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

var ErrKeyNotFound = errors.New("缓存不存在")

const (
	expiration = 5 * time.Minute
	// 版本号比列表缓存活得久就可以
	versionExpiration = time.Hour
)

type QuestionECache struct {
	ec ecache.Cache
}

func NewQuestionECache(ec ecache.Cache) QuestionCache {
	return &QuestionECache{
		ec: &ecache.NamespaceCache{
			Namespace: "question:",
			C:         ec,
		},
	}
}

func (q *QuestionECache) GetQuestion(ctx context.Context, uuid string) (domain.Question, error) {
	var res domain.Question
	err := q.get(ctx, q.questionKey(uuid), &res)
	return res, err
}

func (q *QuestionECache) SetQuestion(ctx context.Context, question domain.Question) error {
	return q.set(ctx, q.questionKey(question.UUID), question)
}

func (q *QuestionECache) GetList(ctx context.Context, filter domain.Filter, offset, limit int) (ListPage, error) {
	var res ListPage
	key, err := q.listKey(ctx, filter, offset, limit)
	if err != nil {
		return res, err
	}
	err = q.get(ctx, key, &res)
	return res, err
}

func (q *QuestionECache) SetList(ctx context.Context, filter domain.Filter, offset, limit int, page ListPage) error {
	key, err := q.listKey(ctx, filter, offset, limit)
	if err != nil {
		return err
	}
	return q.set(ctx, key, page)
}

// InvalidateList 换一个版本号，旧的列表缓存自然就访问不到了
func (q *QuestionECache) InvalidateList(ctx context.Context) error {
	version := strconv.FormatInt(time.Now().UnixNano(), 10)
	return q.ec.Set(ctx, q.versionKey(), version, versionExpiration)
}

func (q *QuestionECache) get(ctx context.Context, key string, val any) error {
	res := q.ec.Get(ctx, key)
	if res.KeyNotFound() {
		return ErrKeyNotFound
	}
	if res.Err != nil {
		return errors.Wrap(res.Err, "查询缓存出错")
	}
	str, err := res.String()
	if err != nil {
		return errors.Wrap(err, "缓存数据类型错误")
	}
	return errors.Wrap(json.Unmarshal([]byte(str), val), "反序列化失败")
}

func (q *QuestionECache) set(ctx context.Context, key string, val any) error {
	data, err := json.Marshal(val)
	if err != nil {
		return errors.Wrap(err, "序列化失败")
	}
	return q.ec.Set(ctx, key, string(data), expiration)
}

func (q *QuestionECache) version(ctx context.Context) (string, error) {
	res := q.ec.Get(ctx, q.versionKey())
	if res.KeyNotFound() {
		return "0", nil
	}
	if res.Err != nil {
		return "", res.Err
	}
	return res.String()
}

func (q *QuestionECache) listKey(ctx context.Context, filter domain.Filter, offset, limit int) (string, error) {
	version, err := q.version(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("list:%s:%s:%s:%s:%s:%d:%d", version,
		filter.Field, filter.Level, filter.Category, filter.Difficulty, offset, limit), nil
}

// 注意 Namespace 设置
func (q *QuestionECache) versionKey() string {
	return "list:version"
}

func (q *QuestionECache) questionKey(uuid string) string {
	return fmt.Sprintf("detail:%s", uuid)
}
