package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/darkkaiser/algoviz-server/internal/metrics"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Test Helpers
// =============================================================================

func serve(e *echo.Echo, method, target string, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// =============================================================================
// Configuration Tests
// =============================================================================

func TestNewHTTPServer_Configuration(t *testing.T) {
	tests := []struct {
		name        string
		config      HTTPServerConfig
		expectDebug bool
	}{
		{"Debug 모드 활성화", HTTPServerConfig{Debug: true, AllowOrigins: []string{"*"}}, true},
		{"Debug 모드 비활성화", HTTPServerConfig{Debug: false, AllowOrigins: []string{"*"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewHTTPServer(tt.config)

			assert.Equal(t, tt.expectDebug, e.Debug)
			assert.True(t, e.HideBanner)
			assert.NotNil(t, e.HTTPErrorHandler)
			assert.Equal(t, 15*time.Second, e.Server.ReadTimeout)
			assert.Equal(t, 10*time.Second, e.Server.ReadHeaderTimeout)
			assert.Equal(t, 30*time.Second, e.Server.WriteTimeout)
			assert.Equal(t, 60*time.Second, e.Server.IdleTimeout)
		})
	}
}

// =============================================================================
// Middleware Chain Tests
// =============================================================================

func TestNewHTTPServer_Headers(t *testing.T) {
	e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}, EnableHSTS: true})
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})

	rec := serve(e, http.MethodGet, "/ping", "", map[string]string{
		echo.HeaderOrigin:          "http://localhost:3000",
		echo.HeaderXForwardedProto: "https",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	t.Run("Request ID는 UUID", func(t *testing.T) {
		assert.Len(t, rec.Header().Get(echo.HeaderXRequestID), 36)
	})
	t.Run("Server 헤더 제거", func(t *testing.T) {
		assert.Empty(t, rec.Header().Get(echo.HeaderServer))
	})
	t.Run("보안 헤더", func(t *testing.T) {
		assert.Equal(t, "nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions))
		assert.Equal(t, "SAMEORIGIN", rec.Header().Get(echo.HeaderXFrameOptions))
		assert.Contains(t, rec.Header().Get(echo.HeaderStrictTransportSecurity), "max-age=31536000")
	})
	t.Run("CORS 헤더", func(t *testing.T) {
		assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	})
}

func TestNewHTTPServer_CORS(t *testing.T) {
	e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"https://algoviz.example.com"}})
	e.POST("/api/generate-array", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	t.Run("허용된 Origin", func(t *testing.T) {
		rec := serve(e, http.MethodPost, "/api/generate-array", "", map[string]string{
			echo.HeaderOrigin: "https://algoviz.example.com",
		})
		assert.Equal(t, "https://algoviz.example.com", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	})

	t.Run("허용되지 않은 Origin", func(t *testing.T) {
		rec := serve(e, http.MethodPost, "/api/generate-array", "", map[string]string{
			echo.HeaderOrigin: "https://evil.example.com",
		})
		assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	})

	t.Run("Preflight 요청", func(t *testing.T) {
		rec := serve(e, http.MethodOptions, "/api/generate-array", "", map[string]string{
			echo.HeaderOrigin:                     "https://algoviz.example.com",
			echo.HeaderAccessControlRequestMethod: http.MethodPost,
		})
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "https://algoviz.example.com", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
		assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowMethods), http.MethodPost)
	})
}

func TestNewHTTPServer_RateLimiting(t *testing.T) {
	newServer := func(enabled bool) *echo.Echo {
		e := NewHTTPServer(HTTPServerConfig{
			AllowOrigins:       []string{"*"},
			RateLimitEnabled:   enabled,
			RateLimitPerSecond: 0.001,
			RateLimitBurst:     2,
		})
		e.GET("/api/health", func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		return e
	}

	t.Run("활성화되면 버스트 초과 시 429", func(t *testing.T) {
		e := newServer(true)

		for i := 0; i < 2; i++ {
			rec := serve(e, http.MethodGet, "/api/health", "", nil)
			require.Equal(t, http.StatusOK, rec.Code)
		}

		rec := serve(e, http.MethodGet, "/api/health", "", nil)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "1", rec.Header().Get(echo.HeaderRetryAfter))
		assert.JSONEq(t, `{"success":false,"error":"요청이 너무 많습니다. 잠시 후 다시 시도해주세요"}`, rec.Body.String())
	})

	t.Run("비활성화되면 제한 없음", func(t *testing.T) {
		e := newServer(false)

		for i := 0; i < 50; i++ {
			rec := serve(e, http.MethodGet, "/api/health", "", nil)
			require.Equal(t, http.StatusOK, rec.Code, "요청 %d", i)
		}
	})
}

func TestNewHTTPServer_BodyLimit(t *testing.T) {
	e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}})
	e.POST("/api/generate-array", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	body := `{"size":` + strings.Repeat(" ", 129*1024) + `1}`
	rec := serve(e, http.MethodPost, "/api/generate-array", body, nil)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"요청 본문이 너무 큽니다"}`, rec.Body.String())
}

func TestNewHTTPServer_Timeout(t *testing.T) {
	e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}, RequestTimeout: 50 * time.Millisecond})
	e.GET("/slow", func(c echo.Context) error {
		select {
		case <-time.After(2 * time.Second):
		case <-c.Request().Context().Done():
		}
		return nil
	})

	rec := serve(e, http.MethodGet, "/slow", "", nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"요청 처리 시간이 초과되었습니다. 잠시 후 다시 시도해주세요"}`, rec.Body.String())
}

func TestNewHTTPServer_PanicRecovery(t *testing.T) {
	e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}})
	e.GET("/panic", func(c echo.Context) error {
		panic("boom")
	})

	rec := serve(e, http.MethodGet, "/panic", "", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"내부 서버 오류가 발생했습니다"}`, rec.Body.String())
}

func TestNewHTTPServer_Metrics(t *testing.T) {
	m := metrics.NewMetrics(prometheus.NewRegistry())
	e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}, Metrics: m})
	e.GET("/api/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	serve(e, http.MethodGet, "/api/health", "", nil)
	serve(e, http.MethodGet, "/api/health", "", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/health", "200")))
}

func TestTimeoutErrorMessage(t *testing.T) {
	assert.JSONEq(t, `{"success":false,"error":"요청 처리 시간이 초과되었습니다. 잠시 후 다시 시도해주세요"}`, timeoutErrorMessage())
}
