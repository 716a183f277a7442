package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"saleslens/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveRequest(t *testing.T) {
	m := New()

	done := m.RequestStarted()
	assert.InDelta(t, 1, testutil.ToFloat64(m.httpInFlight), 0)
	done()
	assert.InDelta(t, 0, testutil.ToFloat64(m.httpInFlight), 0)

	m.ObserveRequest(http.MethodGet, "/api/sales", http.StatusOK, 20*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/api/sales", http.StatusOK, 30*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/api/sales", http.StatusBadRequest, time.Millisecond)

	assert.InDelta(t, 2, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/api/sales", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/api/sales", "400")), 0)
}

func TestMetrics_ObserveImport(t *testing.T) {
	m := New()

	m.ObserveImport(&entity.ImportSummary{
		TotalRows:     10,
		SuccessRows:   9,
		ErrorRows:     1,
		InsertedCount: 8,
		DuplicateRows: 1,
		Duration:      2 * time.Second,
	}, false)
	m.ObserveImport(nil, true)

	assert.InDelta(t, 1, testutil.ToFloat64(m.importRunsTotal.WithLabelValues("succeeded")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.importRunsTotal.WithLabelValues("failed")), 0)
	assert.InDelta(t, 10, testutil.ToFloat64(m.importRowsTotal.WithLabelValues("read")), 0)
	assert.InDelta(t, 8, testutil.ToFloat64(m.importRowsTotal.WithLabelValues("inserted")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.importRowsTotal.WithLabelValues("duplicate")), 0)
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveRequest(http.MethodPost, "/api/sales", http.StatusCreated, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `http_requests_total{method="POST",route="/api/sales",status="201"} 1`))
	assert.True(t, strings.Contains(body, "go_goroutines"))
}
