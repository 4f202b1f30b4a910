// Package metrics expõe os contadores Prometheus da API
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	AIRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ai_requests_total",
			Help: "Total number of AI questions by outcome",
		},
		[]string{"outcome"},
	)

	SalesDataLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sales_data_loads_total",
			Help: "Total number of sales data file loads by result",
		},
		[]string{"result"},
	)
)

// Resultados usados como label
const (
	ResultSuccess  = "success"
	ResultNotFound = "not_found"
	ResultInvalid  = "invalid"
	ResultError    = "error"

	OutcomeAnswered     = "answered"
	OutcomeRejected     = "rejected"
	OutcomeUnconfigured = "unconfigured"
	OutcomeFailed       = "failed"
)

// Handler expõe as métricas no formato de exposição do Prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}
