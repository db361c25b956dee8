package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics_Registers(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.RecordArray(20)
	m.RecordGrid(15, 15)
	m.RecordFailure(KindArray)
	m.RecordHTTPRequest(http.MethodPost, "/api/generate-array", "200", 0.01)

	families, err := reg.Gather()
	require.NoError(t, err)

	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{
		"algoviz_http_requests_total",
		"algoviz_http_request_duration_seconds",
		"algoviz_generations_total",
		"algoviz_generation_failures_total",
		"algoviz_array_size",
		"algoviz_grid_cells",
	}, names)
}

func TestNewMetrics_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg)

	assert.Panics(t, func() { NewMetrics(reg) })
}

func TestMetrics_Record(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordArray(5)
	m.RecordArray(50)
	m.RecordGrid(2, 2)
	m.RecordFailure(KindGrid)
	m.RecordFailure(KindGrid)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.GenerationsTotal.WithLabelValues(KindArray)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GenerationsTotal.WithLabelValues(KindGrid)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.GenerationFailuresTotal.WithLabelValues(KindGrid)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.ArraySize))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordArray(1)
		m.RecordGrid(1, 1)
		m.RecordFailure(KindArray)
		m.RecordHTTPRequest(http.MethodGet, "/", "200", 0)
	})
	assert.NotNil(t, m.Handler())
}

func TestMetrics_Handler(t *testing.T) {
	reg := NewRegistry()
	m := NewMetrics(reg)
	m.RecordArray(20)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), `algoviz_generations_total{kind="array"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestMetrics_HistogramObservations(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.RecordArray(20)
	m.RecordArray(20000)
	m.RecordGrid(15, 15)

	families, err := reg.Gather()
	require.NoError(t, err)

	histograms := make(map[string]*dto.Histogram)
	for _, f := range families {
		if f.GetType() == dto.MetricType_HISTOGRAM && len(f.GetMetric()) == 1 {
			histograms[f.GetName()] = f.GetMetric()[0].GetHistogram()
		}
	}

	require.Contains(t, histograms, "algoviz_array_size")
	assert.Equal(t, uint64(2), histograms["algoviz_array_size"].GetSampleCount())
	assert.Equal(t, 20020.0, histograms["algoviz_array_size"].GetSampleSum())

	require.Contains(t, histograms, "algoviz_grid_cells")
	assert.Equal(t, uint64(1), histograms["algoviz_grid_cells"].GetSampleCount())
	assert.Equal(t, 225.0, histograms["algoviz_grid_cells"].GetSampleSum())
}
