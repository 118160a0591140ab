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

	stageTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stage_transitions_total",
			Help: "Total number of contact stage transitions",
		},
		[]string{"stage"},
	)

	followUpsScheduled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "follow_ups_scheduled_total",
			Help: "Total number of follow-ups created or rescheduled",
		},
	)

	contactsCaptured = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contacts_captured_total",
			Help: "Total number of contacts ingested from the browser extension",
		},
		[]string{"source"},
	)

	reconciliationMismatches = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pipeline_reconciliation_mismatches_total",
			Help: "Contacts found in Call Completed with no follow-up record",
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

func RecordStageTransition(stage string) {
	stageTransitions.WithLabelValues(stage).Inc()
}

func RecordFollowUpScheduled() {
	followUpsScheduled.Inc()
}

func RecordContactCaptured(source string) {
	contactsCaptured.WithLabelValues(source).Inc()
}

func RecordReconciliationMismatch() {
	reconciliationMismatches.Inc()
}
