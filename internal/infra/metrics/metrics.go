// Package metrics holds the Prometheus collectors for HTTP traffic and imports.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"saleslens/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so tests and multiple binaries don't collide
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpInFlight        prometheus.Gauge

	importRunsTotal *prometheus.CounterVec
	importRowsTotal *prometheus.CounterVec
	importDuration  prometheus.Histogram
}

// New registers all collectors, including Go runtime and process metrics
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		// Total HTTP requests partitioned by method, route, and status code
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests processed",
			},
			[]string{"method", "route", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latencies in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		httpInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_inflight_requests",
				Help: "Number of HTTP requests currently being served",
			},
		),

		importRunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_import_runs_total",
				Help: "Import runs by final status",
			},
			[]string{"status"},
		),
		importRowsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_import_rows_total",
				Help: "Source rows seen by imports, by outcome",
			},
			[]string{"outcome"},
		),
		importDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sales_import_duration_seconds",
				Help:    "Wall time of import runs",
				Buckets: []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120, 300, 600},
			},
		),
	}
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RequestStarted marks a request in flight; call the returned func when it ends
func (m *Metrics) RequestStarted() func() {
	m.httpInFlight.Inc()

	return m.httpInFlight.Dec
}

// ObserveRequest records a finished request. route must be the route template.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	labels := prometheus.Labels{
		"method": method,
		"route":  route,
		"status": strconv.Itoa(status),
	}
	m.httpRequestsTotal.With(labels).Inc()
	m.httpRequestDuration.With(labels).Observe(elapsed.Seconds())
}

// ObserveImport records the outcome of one import run. summary may be nil for aborted runs.
func (m *Metrics) ObserveImport(summary *entity.ImportSummary, failed bool) {
	status := "succeeded"
	if failed {
		status = "failed"
	}
	m.importRunsTotal.WithLabelValues(status).Inc()

	if summary == nil {
		return
	}

	m.importRowsTotal.WithLabelValues("read").Add(float64(summary.TotalRows))
	m.importRowsTotal.WithLabelValues("normalized").Add(float64(summary.SuccessRows))
	m.importRowsTotal.WithLabelValues("error").Add(float64(summary.ErrorRows))
	m.importRowsTotal.WithLabelValues("warning").Add(float64(summary.WarningRows))
	m.importRowsTotal.WithLabelValues("inserted").Add(float64(summary.InsertedCount))
	m.importRowsTotal.WithLabelValues("duplicate").Add(float64(summary.DuplicateRows))
	m.importDuration.Observe(summary.Duration.Seconds())
}
