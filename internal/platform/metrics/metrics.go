// Package metrics holds service-wide HTTP metrics. Domain counters live next
// to their services; this package only covers the request surface.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP tracks request counts and latencies across all routes.
type HTTP struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// NewHTTP creates and registers the HTTP metrics on the given registerer.
func NewHTTP(reg prometheus.Registerer) *HTTP {
	factory := promauto.With(reg)
	return &HTTP{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "phonebook_http_requests_total",
			Help: "Total number of HTTP requests by route, method, and status",
		}, []string{"route", "method", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "phonebook_http_request_duration_seconds",
			Help:    "HTTP request latency by route and method",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
}

// Middleware records every request. It must run inside the chi router so the
// matched route pattern is available; unmatched requests are labeled with the
// raw path placeholder "unmatched".
func (m *HTTP) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		m.RequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(recorder.status)).Inc()
		m.RequestDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
