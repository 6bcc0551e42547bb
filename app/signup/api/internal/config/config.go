// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package config

import "github.com/zeromicro/go-zero/rest"

type Config struct {
	rest.RestConf

	// 静态资源配置
	Static StaticConfig

	// CORS 跨域配置
	Cors CorsConfig

	// 限流配置
	RateLimit RateLimitConfig
}

// StaticConfig 静态资源配置
type StaticConfig struct {
	// Dir 静态文件目录，挂载到 /static
	Dir string `json:",default=static"`
}

// CorsConfig CORS 跨域配置
type CorsConfig struct {
	AllowOrigins []string
	AllowMethods []string
	AllowHeaders []string
}

// RateLimitConfig 限流配置
type RateLimitConfig struct {
	Rate  int `json:",default=100"`
	Burst int `json:",default=200"`
}
