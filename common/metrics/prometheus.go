package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 报名服务 Prometheus 指标
// 通过 go-zero RestConf 的 Prometheus 配置对外暴露

const namespace = "signup"

// 结果标签取值
const (
	ResultSuccess           = "success"
	ResultActivityNotFound  = "activity_not_found"
	ResultAlreadyRegistered = "already_registered"
	ResultNotRegistered     = "not_registered"
)

var (
	// signupTotal 报名请求计数
	signupTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signup_requests_total",
			Help:      "Total number of signup requests",
		},
		[]string{"activity", "result"},
	)

	// unregisterTotal 取消报名请求计数
	unregisterTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unregister_requests_total",
			Help:      "Total number of unregister requests",
		},
		[]string{"activity", "result"},
	)

	// participants 各活动当前报名人数
	participants = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "participants",
			Help:      "Current number of participants per activity",
		},
		[]string{"activity"},
	)
)

// RecordSignup 记录一次报名请求
func RecordSignup(activity, result string) {
	signupTotal.WithLabelValues(activity, result).Inc()
}

// RecordUnregister 记录一次取消报名请求
func RecordUnregister(activity, result string) {
	unregisterTotal.WithLabelValues(activity, result).Inc()
}

// SetParticipants 更新活动当前报名人数
func SetParticipants(activity string, count int) {
	participants.WithLabelValues(activity).Set(float64(count))
}
