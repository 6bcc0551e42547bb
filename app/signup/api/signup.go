package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"

	"mergington-hub/app/signup/api/internal/config"
	"mergington-hub/app/signup/api/internal/handler"
	"mergington-hub/app/signup/api/internal/svc"
	"mergington-hub/common/events"
	"mergington-hub/common/response"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
)

var configFile = flag.String("f", "etc/signup-api.yaml", "配置文件路径")

func main() {
	flag.Parse()

	// 设置全局错误处理器（必须在 server.Start() 之前）
	response.SetupGlobalErrorHandler()

	// 1. 加载配置文件
	var c config.Config
	conf.MustLoad(*configFile, &c)

	// 2. 创建 REST 服务器，静态报名页面挂载到 /static
	server := rest.MustNewServer(c.RestConf,
		rest.WithFileServer("/static", http.Dir(c.Static.Dir)),
	)
	defer server.Stop()

	// 3. 初始化服务上下文（活动注册表在这里载入初始目录）
	ctx := svc.NewServiceContext(c)
	defer ctx.EventBus.Close()

	// 4. 启动报名事件审计订阅者
	if err := events.StartAuditSubscriber(context.Background(), ctx.EventBus); err != nil {
		logx.Errorf("启动审计订阅者失败: %v", err)
	}

	// 5. 注册路由处理器
	handler.RegisterHandlers(server, ctx)

	// 6. 启动服务
	fmt.Printf("Starting signup-api server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}

// 活动报名服务 API 入口
// 说明：
//   signup-api 是 Mergington 高中课外活动报名系统的 HTTP 接口层，负责：
//   - 活动目录查询
//   - 报名、取消报名
//   - 静态报名页面
//
// 启动命令：
//   go run signup.go -f etc/signup-api.yaml
//
// 代码生成：
//   cd app/signup/api
//   goctl api go -api desc/signup.api -dir . -style go_zero
