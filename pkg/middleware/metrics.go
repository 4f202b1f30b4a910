package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/sales-dashboard-api/pkg/metrics"
)

// Metrics registra contagem e duração por rota; route é o padrão registrado (ex: /api/data/:id)
func Metrics(method, route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			next.ServeHTTP(lrw, r)

			metrics.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(startTime).Seconds())
			metrics.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(lrw.statusCode)).Inc()
		})
	}
}
