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

	"github.com/ecodeclub/coach/internal/analytics/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.GET("/api/status", ginx.W(h.Status))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/api/analytics")
	g.GET("/overview", ginx.S(h.Overview))
	g.GET("/performance", ginx.S(h.Performance))
}

func (h *Handler) Overview(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.Overview(ctx.Request.Context(), sess.Claims().Uid)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return userNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newOverview(res),
	}, nil
}

func (h *Handler) Performance(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.Performance(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newPerformance(res),
	}, nil
}

// Status 不需要登录，依赖不可用的时候也正常返回
func (h *Handler) Status(ctx *ginx.Context) (ginx.Result, error) {
	return ginx.Result{
		Data: newStatus(h.svc.Status(ctx.Request.Context())),
	}, nil
}
