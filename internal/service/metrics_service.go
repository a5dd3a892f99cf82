package service

import (
	"fmt"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/daehyun-dev/lineup-api/internal/models"
)

// MetricsService encapsulates Prometheus instrumentation and provides
// lightweight snapshots for API consumption.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	conflictChecks  *prometheus.CounterVec
	searchDuration  *prometheus.HistogramVec
	cascadeDepth    prometheus.Histogram

	requestCount         uint64
	requestDurationTotal uint64
	conflictCheckCount   uint64
	conflictRejectCount  uint64
	searchCount          uint64
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	conflictChecks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "conflict_checks_total",
		Help: "Conflict checker decisions by outcome and rejecting rule",
	}, []string{"outcome", "rule"})

	searchDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "replacement_search_duration_seconds",
		Help:    "Duration of replacement searches by mode",
		Buckets: prometheus.DefBuckets,
	}, []string{"mode"})

	cascadeDepth := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "cascade_search_depth",
		Help:    "Recursion depth reached by cascaded replacement searches",
		Buckets: []float64{0, 1, 2, 3, 4, 6, 8, 12},
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, conflictChecks, searchDuration, cascadeDepth, goroutines)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &MetricsService{
		registry:        registry,
		handler:         handler,
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		conflictChecks:  conflictChecks,
		searchDuration:  searchDuration,
		cascadeDepth:    cascadeDepth,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics and aggregates simple stats for snapshots.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
	atomic.AddUint64(&m.requestCount, 1)
	atomic.AddUint64(&m.requestDurationTotal, uint64(duration.Nanoseconds()))
}

// ObserveConflictCheck counts a checker decision and the rule that rejected it.
func (m *MetricsService) ObserveConflictCheck(allowed bool, rule string) {
	if m == nil {
		return
	}
	outcome := "allowed"
	if !allowed {
		outcome = "rejected"
		atomic.AddUint64(&m.conflictRejectCount, 1)
	}
	m.conflictChecks.WithLabelValues(outcome, rule).Inc()
	atomic.AddUint64(&m.conflictCheckCount, 1)
}

// ObserveReplacementSearch records the duration of one replacement search.
func (m *MetricsService) ObserveReplacementSearch(mode string, duration time.Duration) {
	if m == nil {
		return
	}
	m.searchDuration.WithLabelValues(mode).Observe(duration.Seconds())
	atomic.AddUint64(&m.searchCount, 1)
}

// ObserveCascadeDepth tracks how deep a cascade branch descended.
func (m *MetricsService) ObserveCascadeDepth(depth int) {
	if m == nil {
		return
	}
	m.cascadeDepth.Observe(float64(depth))
}

// Snapshot returns aggregated metrics suitable for dashboard endpoints.
func (m *MetricsService) Snapshot() models.EngineSnapshot {
	if m == nil {
		return models.EngineSnapshot{}
	}
	requests := atomic.LoadUint64(&m.requestCount)
	reqDuration := atomic.LoadUint64(&m.requestDurationTotal)

	var avgRequestMs float64
	if requests > 0 {
		avgRequestMs = float64(reqDuration) / float64(requests) / float64(time.Millisecond)
	}

	return models.EngineSnapshot{
		RequestsTotal:            requests,
		AverageRequestDurationMs: avgRequestMs,
		ConflictChecksTotal:      atomic.LoadUint64(&m.conflictCheckCount),
		ConflictRejections:       atomic.LoadUint64(&m.conflictRejectCount),
		ReplacementSearches:      atomic.LoadUint64(&m.searchCount),
		Goroutines:               runtime.NumGoroutine(),
		GeneratedAt:              time.Now().UTC(),
	}
}
