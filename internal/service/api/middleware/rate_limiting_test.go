package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiting_InvalidArguments(t *testing.T) {
	tests := []struct {
		name              string
		requestsPerSecond float64
		burst             int
		wantPanic         string
	}{
		{"초당 요청 수 0", 0, 10, "RateLimiting: requestsPerSecond는 양수여야 합니다 (현재값: 0)"},
		{"초당 요청 수 음수", -1, 10, "RateLimiting: requestsPerSecond는 양수여야 합니다 (현재값: -1)"},
		{"버스트 0", 10, 0, "RateLimiting: burst는 양수여야 합니다 (현재값: 0)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.PanicsWithValue(t, tt.wantPanic, func() {
				RateLimiting(tt.requestsPerSecond, tt.burst)
			})
		})
	}
}

func TestRateLimiting_BurstExceeded(t *testing.T) {
	captureLog(t)

	e := echo.New()
	// 초당 토큰이 거의 채워지지 않도록 매우 낮은 비율을 사용합니다.
	h := RateLimiting(0.001, 3)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	call := func(ip string) (*httptest.ResponseRecorder, error) {
		req := httptest.NewRequest(http.MethodPost, "/api/generate-array", nil)
		req.RemoteAddr = ip + ":12345"
		rec := httptest.NewRecorder()
		return rec, h(e.NewContext(req, rec))
	}

	for i := 0; i < 3; i++ {
		_, err := call("10.0.0.1")
		require.NoError(t, err, "버스트 이내 요청은 허용되어야 합니다")
	}

	rec, err := call("10.0.0.1")
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusTooManyRequests, httpErr.Code)
	assert.Equal(t, "1", rec.Header().Get(echo.HeaderRetryAfter))

	t.Run("다른 IP는 독립적으로 제한", func(t *testing.T) {
		_, err := call("10.0.0.2")
		assert.NoError(t, err)
	})
}

func TestIPRateLimiter_ConcurrentAccess(t *testing.T) {
	limiter := newIPRateLimiter(10, 10)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			limiter.getLimiter("192.168.0.1")
		}()
	}
	wg.Wait()

	assert.Len(t, limiter.limiters, 1)
	assert.Same(t, limiter.getLimiter("192.168.0.1"), limiter.getLimiter("192.168.0.1"))
}
