// ============================================================================
// 服务上下文（Service Context）
// ============================================================================
//
// 功能说明：
//   ServiceContext 负责初始化和持有服务的全部依赖：
//   - 配置信息
//   - 活动注册表（内存态，进程生命周期）
//   - 事件总线（进程内 Watermill GoChannel）
//   - 中间件实例
//
// 设计原则：
//   - 所有依赖在启动时初始化，避免运行时创建
//   - 注册表显式注入 logic 层，不做包级单例，方便测试隔离
//
// ============================================================================

package svc

import (
	"mergington-hub/app/signup/api/internal/config"
	"mergington-hub/app/signup/api/internal/middleware"
	"mergington-hub/app/signup/model"
	"mergington-hub/common/events"
)

// ServiceContext 报名服务上下文
type ServiceContext struct {
	Config config.Config

	// Registry 活动注册表，本服务唯一的状态持有者
	Registry *model.ActivityRegistry

	// EventBus 报名事件总线
	EventBus *events.Bus

	// ==================== 中间件 ====================
	CorsMiddleware      *middleware.CorsMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// NewServiceContext 创建服务上下文
func NewServiceContext(c config.Config) *ServiceContext {
	return &ServiceContext{
		Config:   c,
		Registry: model.NewActivityRegistry(model.DefaultCatalog()),
		EventBus: events.NewBus(),

		CorsMiddleware: middleware.NewCorsMiddleware(
			c.Cors.AllowOrigins,
			c.Cors.AllowMethods,
			c.Cors.AllowHeaders,
		),
		RequestIDMiddleware: middleware.NewRequestIDMiddleware(),
		RateLimitMiddleware: middleware.NewRateLimitMiddleware(
			float64(c.RateLimit.Rate),
			c.RateLimit.Burst,
		),
	}
}
