package middleware

import (
	"strconv"
	"time"

	"github.com/darkkaiser/algoviz-server/internal/metrics"
	"github.com/labstack/echo/v4"
)

// unmatchedRoute 등록된 라우트와 일치하지 않는 요청의 route 레이블 값.
// 임의의 URL 경로가 레이블로 쓰여 시계열이 무한히 늘어나는 것을 막습니다.
const unmatchedRoute = "unmatched"

// Metrics 요청 수와 처리 시간을 라우트 패턴 단위로 기록하는 미들웨어를 반환합니다.
// m이 nil이면 아무 것도 기록하지 않습니다.
func Metrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if m == nil {
			return next
		}

		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = unmatchedRoute
			}

			m.RecordHTTPRequest(c.Request().Method, route, strconv.Itoa(c.Response().Status), time.Since(start).Seconds())

			return nil
		}
	}
}
