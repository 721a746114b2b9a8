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

package ioc

import (
	"net/http"
	"strings"
	"time"

	"github.com/ecodeclub/coach/internal/analytics"
	"github.com/ecodeclub/coach/internal/feedback"
	"github.com/ecodeclub/coach/internal/interview"
	"github.com/ecodeclub/coach/internal/pkg/middleware"
	"github.com/ecodeclub/coach/internal/question"
	"github.com/ecodeclub/coach/internal/user"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	userHdl *user.Handler,
	itvHdl *interview.Handler,
	queHdl *question.Handler,
	queAdminHdl *question.AdminHandler,
	fbHdl *feedback.Handler,
	anaHdl *analytics.Handler,
	anaAdminHdl *analytics.AdminHandler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("server.web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Access-Token"},
		AllowOriginFunc:  allowOrigin(econf.GetStringSlice("server.web.allowOrigins")),
	}))
	res.Use(middleware.NewMetricsBuilder("interview_coach").Build())
	res.GET("/", health)
	res.GET("/health", health)

	userHdl.PublicRoutes(res.Engine)
	queHdl.PublicRoutes(res.Engine)
	anaHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	userHdl.PrivateRoutes(res.Engine)
	itvHdl.PrivateRoutes(res.Engine)
	queHdl.PrivateRoutes(res.Engine)
	fbHdl.PrivateRoutes(res.Engine)
	anaHdl.PrivateRoutes(res.Engine)
	// 管理员
	res.Use(middleware.NewCheckAdminMiddlewareBuilder().Build())
	queAdminHdl.PrivateRoutes(res.Engine)
	anaAdminHdl.PrivateRoutes(res.Engine)
	return res
}

// allowOrigin 本地开发的 localhost 总是允许
func allowOrigin(domains []string) func(origin string) bool {
	return func(origin string) bool {
		if strings.HasPrefix(origin, "http://localhost") ||
			strings.HasPrefix(origin, "http://127.0.0.1") {
			return true
		}
		for _, d := range domains {
			if strings.Contains(origin, d) {
				return true
			}
		}
		return false
	}
}

func health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"message":   "AI Interview Coach Backend is running!",
		"version":   analytics.Version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"endpoints": gin.H{
			"auth":       "/api/auth/*",
			"interviews": "/api/interviews/*",
			"questions":  "/api/questions/*",
			"answers":    "/api/answers/*",
			"feedback":   "/api/feedback/*",
			"analytics":  "/api/analytics/*",
			"admin":      "/api/admin/*",
		},
	})
}
