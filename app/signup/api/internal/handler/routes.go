// ============================================================================
// 路由注册
// ============================================================================
//
// 功能说明：
//   集中管理报名服务的 HTTP 路由：
//   - 活动目录查询（公开）
//   - 报名 / 取消报名（公开，按邮箱识别学生）
//   - 根路径跳转到静态报名页面
//
// 中间件执行顺序：
//   CORS -> RequestID -> RateLimit -> Handler
//
// ============================================================================

package handler

import (
	"net/http"

	activityHandler "mergington-hub/app/signup/api/internal/handler/activity"
	"mergington-hub/app/signup/api/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

// RegisterHandlers 注册所有路由
func RegisterHandlers(server *rest.Server, ctx *svc.ServiceContext) {
	// ==================== 全局中间件 ====================
	server.Use(func(next http.HandlerFunc) http.HandlerFunc {
		return ctx.CorsMiddleware.Handle(next)
	})
	server.Use(func(next http.HandlerFunc) http.HandlerFunc {
		return ctx.RequestIDMiddleware.Handle(next)
	})
	server.Use(func(next http.HandlerFunc) http.HandlerFunc {
		return ctx.RateLimitMiddleware.Handle(next)
	})

	// ==================== 活动模块路由 ====================
	server.AddRoutes(
		[]rest.Route{
			// 首页跳转
			{
				Method:  http.MethodGet,
				Path:    "/",
				Handler: IndexHandler(ctx),
			},
			// 活动目录
			{
				Method:  http.MethodGet,
				Path:    "/activities",
				Handler: activityHandler.ListActivityHandler(ctx),
			},
			// 报名
			{
				Method:  http.MethodPost,
				Path:    "/activities/:name/signup",
				Handler: activityHandler.SignupActivityHandler(ctx),
			},
			// 取消报名
			{
				Method:  http.MethodDelete,
				Path:    "/activities/:name/unregister",
				Handler: activityHandler.UnregisterActivityHandler(ctx),
			},
		},
	)
}
