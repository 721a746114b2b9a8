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

	"github.com/ecodeclub/coach/internal/interview/internal/domain"
	"github.com/ecodeclub/coach/internal/interview/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/api/interviews")
	g.POST("/start", ginx.BS[StartReq](h.Start))
	g.POST("/:id/complete", ginx.BS[CompleteReq](h.Complete))
	g.GET("", ginx.S(h.List))
	g.GET("/:id", ginx.S(h.Detail))
}

func (h *Handler) Start(ctx *ginx.Context, req StartReq, sess session.Session) (ginx.Result, error) {
	itv, err := h.svc.Start(ctx.Request.Context(), domain.Interview{
		Uid:            sess.Claims().Uid,
		Field:          req.Field,
		Level:          req.Level,
		Type:           req.Type,
		Company:        req.Company,
		Mode:           req.Mode,
		QuestionsTotal: req.QuestionsTotal,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg:  "OK",
		Data: newInterview(itv),
	}, nil
}

func (h *Handler) Complete(ctx *ginx.Context, req CompleteReq, sess session.Session) (ginx.Result, error) {
	itv, err := h.svc.Complete(ctx.Request.Context(), sess.Claims().Uid, ctx.Context.Param("id"), domain.Completion{
		Duration:          req.Duration,
		Score:             req.Score,
		QuestionsAnswered: req.QuestionsAnswered,
	})
	switch {
	case errors.Is(err, service.ErrInterviewNotFound):
		return notFoundResult, nil
	case errors.Is(err, service.ErrInterviewClosed):
		return closedResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg:  "OK",
		Data: newInterview(itv),
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	page := queryInt(ctx, "page", 1)
	perPage := min(queryInt(ctx, "perPage", defaultPerPage), maxPerPage)
	status := domain.Status(ctx.Context.Query("status"))
	if status != "" && !status.Valid() {
		return invalidStatusResult, nil
	}
	list, total, err := h.svc.List(ctx.Request.Context(), sess.Claims().Uid, status, (page-1)*perPage, perPage)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Page{
			List: slice.Map(list, func(idx int, src domain.Interview) Interview {
				return newInterview(src)
			}),
			Total:       total,
			Pages:       (total + int64(perPage) - 1) / int64(perPage),
			CurrentPage: page,
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	itv, err := h.svc.FindByUUID(ctx.Request.Context(), sess.Claims().Uid, ctx.Context.Param("id"))
	switch {
	case errors.Is(err, service.ErrInterviewNotFound):
		return notFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newInterview(itv),
	}, nil
}

// queryInt 非法或者非正数都使用默认值
func queryInt(ctx *ginx.Context, key string, def int) int {
	val, err := strconv.Atoi(ctx.Context.Query(key))
	if err != nil || val <= 0 {
		return def
	}
	return val
}
