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

package web

import (
	"errors"
	"strconv"

	"github.com/ecodeclub/coach/internal/question/internal/domain"
	"github.com/ecodeclub/coach/internal/question/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

type Handler struct {
	svc    service.Service
	logger *elog.Component
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.GET("/question", ginx.W(h.LegacyInfo))
	server.POST("/question", ginx.B[LegacyReq](h.Legacy))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/api/questions")
	g.GET("", ginx.W(h.List))
	g.POST("/random", ginx.B[RandomReq](h.Random))
	g.GET("/:id", ginx.W(h.Detail))
}

func (h *Handler) List(ctx *ginx.Context) (ginx.Result, error) {
	page := queryInt(ctx, "page", 1)
	perPage := min(queryInt(ctx, "perPage", defaultPerPage), maxPerPage)
	filter := domain.Filter{
		Field:      ctx.Context.Query("field"),
		Level:      ctx.Context.Query("level"),
		Category:   ctx.Context.Query("category"),
		Difficulty: ctx.Context.Query("difficulty"),
	}
	list, total, err := h.svc.List(ctx.Request.Context(), filter, (page-1)*perPage, perPage)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Page{
			List: slice.Map(list, func(idx int, src domain.Question) Question {
				return newQuestion(src, false)
			}),
			Total:       total,
			Pages:       (total + int64(perPage) - 1) / int64(perPage),
			CurrentPage: page,
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context) (ginx.Result, error) {
	q, err := h.svc.FindByUUID(ctx.Request.Context(), ctx.Context.Param("id"))
	switch {
	case errors.Is(err, service.ErrQuestionNotFound):
		return notFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newQuestion(q, true),
	}, nil
}

func (h *Handler) Random(ctx *ginx.Context, req RandomReq) (ginx.Result, error) {
	category := req.Type
	if category == "" {
		category = "technical"
	}
	q, err := h.svc.Random(ctx.Request.Context(), domain.Filter{
		Field:    req.Field,
		Level:    req.Level,
		Category: category,
	})
	switch {
	case errors.Is(err, service.ErrQuestionNotFound):
		return notFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newQuestion(q, false),
	}, nil
}

func (h *Handler) LegacyInfo(ctx *ginx.Context) (ginx.Result, error) {
	return ginx.Result{
		Data: LegacyInfo{
			Message: "Question endpoint is working. Use POST to send data.",
			Info:    "This is a legacy endpoint. Please use /api/questions/random instead.",
		},
	}, nil
}

// Legacy 老版本前端使用的接口，题库里面没有就用内置的题目
func (h *Handler) Legacy(ctx *ginx.Context, req LegacyReq) (ginx.Result, error) {
	q, err := h.svc.Pick(ctx.Request.Context(), domain.Filter{
		Field: req.Field,
		Level: req.Level,
	})
	switch {
	case errors.Is(err, service.ErrQuestionNotFound):
		return ginx.Result{
			Data: LegacyQuestion{
				Field:    req.Field,
				Level:    req.Level,
				Question: domain.FallbackQuestion(req.Field, req.Level),
			},
		}, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: LegacyQuestion{
			Field:      req.Field,
			Level:      req.Level,
			Question:   q.Text,
			Category:   q.Category,
			Difficulty: q.Difficulty,
		},
	}, nil
}

func queryInt(ctx *ginx.Context, key string, def int) int {
	val, err := strconv.Atoi(ctx.Context.Query(key))
	if err != nil || val <= 0 {
		return def
	}
	return val
}
