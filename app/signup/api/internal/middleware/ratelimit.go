package middleware

import (
	"net/http"
	"sync"
	"time"

	"mergington-hub/common/errorx"
	"mergington-hub/common/response"
)

// tokenBucket 令牌桶
type tokenBucket struct {
	rate       float64
	burst      int
	tokens     float64
	lastUpdate time.Time
	mu         sync.Mutex
}

func newTokenBucket(rate float64, burst int) *tokenBucket {
	return &tokenBucket{
		rate:       rate,
		burst:      burst,
		tokens:     float64(burst),
		lastUpdate: time.Now(),
	}
}

// allow 判断是否放行
func (b *tokenBucket) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens += now.Sub(b.lastUpdate).Seconds() * b.rate
	b.lastUpdate = now
	if b.tokens > float64(b.burst) {
		b.tokens = float64(b.burst)
	}

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// RateLimitMiddleware 限流中间件（服务级令牌桶）
// 报名接口面向全校学生，开放报名第一分钟会有突发流量，
// 令牌桶允许突发、长期匀速，比漏桶更适合这个场景
type RateLimitMiddleware struct {
	bucket *tokenBucket
}

// NewRateLimitMiddleware 创建限流中间件
// rate: 每秒允许的请求数  burst: 突发容量
func NewRateLimitMiddleware(rate float64, burst int) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		bucket: newTokenBucket(rate, burst),
	}
}

// Handle 中间件处理函数
func (m *RateLimitMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !m.bucket.allow() {
			response.Fail(w, errorx.ErrTooManyRequests())
			return
		}
		next(w, r)
	}
}
