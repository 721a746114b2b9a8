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
	"strconv"

	"github.com/ecodeclub/coach/internal/user/internal/domain"
	"github.com/ecodeclub/coach/internal/user/internal/errs"
	"github.com/ecodeclub/coach/internal/user/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	userSvc   service.UserService
	validator *validator.Validate
	// 管理员邮箱白名单
	admins []string
	logger *elog.Component
}

func NewHandler(userSvc service.UserService, admins []string) *Handler {
	return &Handler{
		userSvc:   userSvc,
		validator: validator.New(),
		admins: slice.Map(admins, func(idx int, src string) string {
			return service.NormalizeEmail(src)
		}),
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/api/auth")
	g.POST("/register", ginx.B[RegisterReq](h.Register))
	g.POST("/login", ginx.B[LoginReq](h.Login))
	g.POST("/refresh", ginx.W(h.RefreshAccessToken))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/api/auth")
	g.GET("/me", ginx.S(h.Me))
}

func (h *Handler) Register(ctx *ginx.Context, req RegisterReq) (ginx.Result, error) {
	if err := h.validator.Struct(req); err != nil {
		return invalidResult(err), nil
	}
	u, err := h.userSvc.Register(ctx.Request.Context(), domain.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}, req.Password)
	switch {
	case errors.Is(err, service.ErrUserDuplicate):
		return duplicateResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return h.issueSession(ctx, u)
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	if err := h.validator.Struct(req); err != nil {
		return invalidResult(err), nil
	}
	u, err := h.userSvc.Login(ctx.Request.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return invalidCredentialsResult, nil
	case errors.Is(err, service.ErrUserDeactivated):
		return deactivatedResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	h.logger.Info("用户登录", elog.Int64("uid", u.Id))
	return h.issueSession(ctx, u)
}

func (h *Handler) RefreshAccessToken(ctx *ginx.Context) (ginx.Result, error) {
	err := session.RenewAccessToken(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Me(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.userSvc.Profile(ctx.Request.Context(), sess.Claims().Uid)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return notFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	admin := sess.Claims().Get("admin").StringOrDefault("") == "true"
	return ginx.Result{
		Data: newProfile(u, admin),
	}, nil
}

func (h *Handler) issueSession(ctx *ginx.Context, u domain.User) (ginx.Result, error) {
	admin := slice.Contains(h.admins, u.Email)
	_, err := session.NewSessionBuilder(ctx, u.Id).
		SetJwtData(map[string]string{
			"admin": strconv.FormatBool(admin),
		}).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(u, admin),
	}, nil
}

func invalidResult(err error) ginx.Result {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		err = fmt.Errorf("%s 字段校验失败: %s", ves[0].Field(), ves[0].Tag())
	}
	code := errs.NewInvalidUserInfoErr(err)
	return ginx.Result{
		Code: code.Code,
		Msg:  code.Msg,
	}
}
