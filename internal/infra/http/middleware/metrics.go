package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	leadsScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leads_scored_total",
			Help: "Total number of leads scored, by priority tier",
		},
		[]string{"priority"},
	)

	messagesComposed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_composed_total",
			Help: "Total number of outreach messages composed",
		},
		[]string{"mode", "level"},
	)

	accountsBlocked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sending_accounts_blocked_total",
			Help: "Total number of sending accounts put in cooldown",
		},
	)

	quotaExhausted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quota_exhausted_selections_total",
			Help: "Account selections that found no available account",
		},
		[]string{"tenant"},
	)

	rateLimitRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rate_limit_rejections_total",
			Help: "Requests rejected by the sliding window limiter",
		},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordLeadScored(priority string) {
	leadsScored.WithLabelValues(priority).Inc()
}

func RecordMessageComposed(mode, level string) {
	messagesComposed.WithLabelValues(mode, level).Inc()
}

func RecordAccountBlocked() {
	accountsBlocked.Inc()
}

func RecordQuotaExhausted(tenant string) {
	quotaExhausted.WithLabelValues(tenant).Inc()
}

func RecordRateLimitRejection() {
	rateLimitRejections.Inc()
}
