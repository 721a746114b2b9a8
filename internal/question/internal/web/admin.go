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
	"fmt"

	"github.com/ecodeclub/coach/internal/question/internal/errs"
	"github.com/ecodeclub/coach/internal/question/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/gotomicro/ego/core/elog"
)

// AdminHandler 管理后台，路由由外面挂在管理员权限校验之后
type AdminHandler struct {
	svc       service.Service
	validator *validator.Validate
	logger    *elog.Component
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{
		svc:       svc,
		validator: validator.New(),
		logger:    elog.DefaultLogger,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	server.POST("/api/admin/questions", ginx.BS[CreateReq](h.Create))
}

func (h *AdminHandler) Create(ctx *ginx.Context, req CreateReq, sess session.Session) (ginx.Result, error) {
	if err := h.validator.Struct(req); err != nil {
		return invalidResult(err), nil
	}
	q, err := h.svc.Create(ctx.Request.Context(), req.toDomain())
	if err != nil {
		return systemErrorResult, err
	}
	h.logger.Info("管理员新增题目",
		elog.Int64("uid", sess.Claims().Uid),
		elog.String("uuid", q.UUID))
	return ginx.Result{
		Data: newQuestion(q, true),
	}, nil
}

func invalidResult(err error) ginx.Result {
	msg := err.Error()
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		msg = fmt.Sprintf("%s 字段校验失败: %s", ves[0].Field(), ves[0].Tag())
	}
	code := errs.NewInvalidQuestionErr(msg)
	return ginx.Result{
		Code: code.Code,
		Msg:  code.Msg,
	}
}
