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

	"github.com/ecodeclub/coach/internal/question/internal/domain"
)

type QuestionCache interface {
	GetQuestion(ctx context.Context, uuid string) (domain.Question, error)
	SetQuestion(ctx context.Context, q domain.Question) error
	GetList(ctx context.Context, filter domain.Filter, offset, limit int) (ListPage, error)
	SetList(ctx context.Context, filter domain.Filter, offset, limit int, page ListPage) error
	// InvalidateList 让所有列表缓存失效
	InvalidateList(ctx context.Context) error
}

type ListPage struct {
	Questions []domain.Question
	Total     int64
}
