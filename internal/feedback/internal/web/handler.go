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

	"github.com/ecodeclub/coach/internal/feedback/internal/domain"
	"github.com/ecodeclub/coach/internal/feedback/internal/errs"
	"github.com/ecodeclub/coach/internal/feedback/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	svc       service.Service
	validator *validator.Validate
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc:       svc,
		validator: validator.New(),
	}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/api/answers/submit", ginx.BS[SubmitReq](h.Submit))
	g := server.Group("/api/feedback")
	g.GET("/:answerId", ginx.S(h.Feedback))
	g.POST("/:answerId/rate", ginx.BS[RateReq](h.Rate))
}

func (h *Handler) Submit(ctx *ginx.Context, req SubmitReq, sess session.Session) (ginx.Result, error) {
	if err := h.validator.Struct(req); err != nil {
		return invalidResult(err), nil
	}
	a, f, err := h.svc.Submit(ctx.Request.Context(), sess.Claims().Uid, domain.Submission{
		InterviewUUID: req.InterviewId,
		QuestionUUID:  req.QuestionId,
		Text:          req.Answer,
		TimeSpent:     req.TimeSpent,
		AudioURL:      req.AudioUrl,
		VideoURL:      req.VideoUrl,
	})
	switch {
	case errors.Is(err, service.ErrInterviewNotFound):
		return interviewNotFoundResult, nil
	case errors.Is(err, service.ErrInterviewClosed):
		return interviewClosedResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg:  "OK",
		Data: newAnswerFeedback(a, f),
	}, nil
}

func (h *Handler) Feedback(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	a, f, err := h.svc.Find(ctx.Request.Context(), sess.Claims().Uid, ctx.Context.Param("answerId"))
	switch {
	case errors.Is(err, service.ErrAnswerNotFound):
		return answerNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newAnswerFeedback(a, f),
	}, nil
}

func (h *Handler) Rate(ctx *ginx.Context, req RateReq, sess session.Session) (ginx.Result, error) {
	r := domain.Rating{Score: req.Rating, Helpful: req.Helpful}
	if !r.Valid() {
		return invalidRatingResult, nil
	}
	err := h.svc.Rate(ctx.Request.Context(), sess.Claims().Uid, ctx.Context.Param("answerId"), r)
	switch {
	case errors.Is(err, service.ErrAnswerNotFound):
		return answerNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func invalidResult(err error) ginx.Result {
	msg := err.Error()
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		msg = fmt.Sprintf("%s 字段校验失败: %s", ves[0].Field(), ves[0].Tag())
	}
	code := errs.NewInvalidAnswerErr(msg)
	return ginx.Result{
		Code: code.Code,
		Msg:  code.Msg,
	}
}
