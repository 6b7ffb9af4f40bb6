package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "strafenkasse",
	Subsystem: "http",
	Name:      "requests_total",
	Help:      "Total HTTP requests by method, path and status.",
}, []string{"method", "path", "status"})

var httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "strafenkasse",
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency by method and path.",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "path"})

// Metrics creates middleware that records request counts and latency.
// Paths are recorded as registered route templates, keeping the label
// cardinality bounded.
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			wrapped := &ResponseWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			path := routeTemplate(r)
			httpRequests.WithLabelValues(r.Method, path, strconv.Itoa(wrapped.status)).Inc()
			httpDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
		})
	}
}
