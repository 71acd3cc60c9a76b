package utils

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ReqCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coach_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ReqDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "coach_request_duration_seconds",
			Help: "Request duration in seconds",
		},
		[]string{"method", "path"},
	)

	LoginCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coach_logins_total",
			Help: "Successful logins by role",
		},
		[]string{"role"},
	)
)

func InitMetrics() {
	prometheus.MustRegister(ReqCount, ReqDuration, LoginCount)
}
