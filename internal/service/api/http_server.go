package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/darkkaiser/algoviz-server/internal/metrics"
	"github.com/darkkaiser/algoviz-server/internal/service/api/constants"
	"github.com/darkkaiser/algoviz-server/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/algoviz-server/internal/service/api/middleware"
	"github.com/darkkaiser/algoviz-server/internal/service/api/model/response"
	applog "github.com/darkkaiser/algoviz-server/pkg/log"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// hstsMaxAge HTTPS 사용 시 Strict-Transport-Security 헤더의 max-age (1년)
const hstsMaxAge = 31536000

// HTTPServerConfig HTTP 서버 생성에 필요한 설정을 정의합니다.
type HTTPServerConfig struct {
	// Debug Echo 프레임워크의 디버그 모드 활성화 여부
	Debug bool

	// AllowOrigins CORS에서 허용할 Origin 목록
	// 개발 환경: ["*"], 프로덕션 환경: 프론트엔드 도메인만 명시 (예: ["https://algoviz.example.com"])
	AllowOrigins []string

	// RequestTimeout 각 HTTP 요청의 최대 처리 시간 (0이면 60초)
	RequestTimeout time.Duration

	// RateLimitEnabled false이면 속도 제한 미들웨어를 적용하지 않습니다.
	RateLimitEnabled bool

	// RateLimitPerSecond, RateLimitBurst IP별 요청 속도 제한 (0이면 기본값 20/40)
	RateLimitPerSecond float64
	RateLimitBurst     int

	// EnableHSTS HTTPS 서버인 경우 Strict-Transport-Security 헤더를 추가합니다.
	EnableHSTS bool

	// Metrics 라우트별 요청 메트릭 기록 대상 (nil이면 기록하지 않음)
	Metrics *metrics.Metrics
}

// NewHTTPServer 설정된 미들웨어를 포함한 Echo 인스턴스를 생성합니다.
//
// 미들웨어는 다음 순서로 적용됩니다:
//
//  1. PanicRecovery - 다른 미들웨어에서 발생한 panic도 복구하도록 가장 먼저 적용
//  2. RequestID - 로그에 request_id가 포함되도록 로깅보다 먼저 적용
//  3. ServerHeader - 응답의 Server 헤더 제거
//  4. HTTPLogger - 429/503 응답도 기록되도록 RateLimit/Timeout보다 먼저 적용
//  5. Metrics - 라우트 패턴별 요청 수와 처리 시간 기록
//  6. RateLimiting - IP별 요청 속도 제한 (초과 시 429, RateLimitEnabled인 경우에만)
//  7. BodyLimit - 요청 본문 크기 제한 (128KB, 초과 시 413)
//  8. Timeout - 요청 처리 시간 제한 (초과 시 503)
//  9. CORS - 허용된 Origin의 교차 출처 요청 및 Preflight 처리
//  10. Secure - X-XSS-Protection, X-Content-Type-Options 등 보안 헤더 추가
//
// 라우트 설정은 포함되지 않으며, 반환된 Echo 인스턴스에 별도로 설정해야 합니다.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	// 보안 및 리소스 관리를 위한 HTTP 서버 타임아웃 설정
	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.WriteTimeout = constants.DefaultWriteTimeout
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	// Echo 프레임워크의 내부 로그를 애플리케이션 로거로 통합합니다.
	e.Logger = appmiddleware.Logger{Logger: applog.StandardLogger()}

	// 전역 HTTP 에러 핸들러 설정
	e.HTTPErrorHandler = httputil.ErrorHandler

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = constants.DefaultRequestTimeout
	}
	rateLimitPerSecond := cfg.RateLimitPerSecond
	if rateLimitPerSecond <= 0 {
		rateLimitPerSecond = constants.DefaultRateLimitPerSecond
	}
	rateLimitBurst := cfg.RateLimitBurst
	if rateLimitBurst <= 0 {
		rateLimitBurst = constants.DefaultRateLimitBurst
	}

	// 1. Panic 복구
	e.Use(appmiddleware.PanicRecovery())
	// 2. Request ID
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	// 3. Server 헤더 제거
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderServer, "")
			return next(c)
		}
	})
	// 4. HTTP 로깅
	e.Use(appmiddleware.HTTPLogger())
	// 5. 메트릭
	e.Use(appmiddleware.Metrics(cfg.Metrics))
	// 6. Rate Limiting
	if cfg.RateLimitEnabled {
		e.Use(appmiddleware.RateLimiting(rateLimitPerSecond, rateLimitBurst))
	}
	// 7. Body Limit
	e.Use(middleware.BodyLimit(constants.DefaultMaxBodySize))
	// 8. Timeout
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout:      timeout,
		ErrorMessage: timeoutErrorMessage(),
	}))
	// 9. CORS
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodOptions},
	}))
	// 10. 보안 헤더
	secureConfig := middleware.DefaultSecureConfig
	if cfg.EnableHSTS {
		secureConfig.HSTSMaxAge = hstsMaxAge
	}
	e.Use(middleware.SecureWithConfig(secureConfig))

	return e
}

// timeoutErrorMessage 요청 처리 시간 초과 시 반환할 응답 본문을 다른 에러와 같은 형식으로 생성합니다.
func timeoutErrorMessage() string {
	b, err := json.Marshal(response.NewErrorResponse(constants.ErrMsgServiceUnavailable))
	if err != nil {
		return constants.ErrMsgServiceUnavailable
	}
	return string(b)
}
