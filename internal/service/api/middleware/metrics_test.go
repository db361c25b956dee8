package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/algoviz-server/internal/metrics"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := metrics.NewMetrics(prometheus.NewRegistry())

	e := echo.New()
	e.Use(Metrics(m))
	e.POST("/api/generate-array", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{"success": true})
	})

	t.Run("등록된 라우트는 패턴으로 기록", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/generate-array", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodPost, "/api/generate-array", "200")))
	})

	t.Run("미등록 경로는 unmatched로 기록", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/no/such/path", nil))
		require.Equal(t, http.StatusNotFound, rec.Code)

		assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, unmatchedRoute, "404")))
	})
}

func TestMetrics_NilMetrics(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	called := false
	h := Metrics(nil)(func(c echo.Context) error {
		called = true
		return nil
	})

	assert.NoError(t, h(c))
	assert.True(t, called)
}
