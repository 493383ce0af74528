package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultOK       = "ok"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymweb_http_requests_total",
			Help: "Total number of http requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gymweb_http_requests_in_flight",
			Help: "Number of http requests currently being processed",
		},
	)

	HTTPRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gymweb_http_request_duration_seconds",
			Help:    "Duration of http requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	UserOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymweb_user_ops_total",
			Help: "Total number of user service operations by result",
		},
		[]string{"op", "result"},
	)
)
