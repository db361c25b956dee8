package api

import (
	"github.com/darkkaiser/algoviz-server/internal/metrics"
	"github.com/darkkaiser/algoviz-server/internal/service/api/handler/system"
	"github.com/darkkaiser/algoviz-server/internal/service/api/handler/visualization"
	"github.com/darkkaiser/algoviz-server/internal/web"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouteOptions 선택적으로 노출되는 엔드포인트 설정
type RouteOptions struct {
	// SwaggerEnabled /swagger/* 에서 Swagger UI를 제공합니다.
	SwaggerEnabled bool

	// Metrics nil이 아니면 /metrics 에서 Prometheus 메트릭을 노출합니다.
	Metrics *metrics.Metrics
}

// RegisterRoutes API 서비스의 라우트를 등록합니다.
//
//   - 시스템 엔드포인트: 랜딩 페이지(/), 정적 자원(/static/*), 헬스체크(/api/health), 버전 정보(/api/version)
//   - 데이터 생성: /api/generate-array, /api/generate-grid
//   - 선택: Prometheus 메트릭(/metrics), Swagger UI(/swagger/*)
func RegisterRoutes(e *echo.Echo, sh *system.Handler, vh *visualization.Handler, opts RouteOptions) {
	registerSystemRoutes(e, sh)
	registerVisualizationRoutes(e, vh)

	if opts.Metrics != nil {
		registerMetricsRoutes(e, opts.Metrics)
	}
	if opts.SwaggerEnabled {
		registerSwaggerRoutes(e)
	}
}

func registerSystemRoutes(e *echo.Echo, h *system.Handler) {
	e.GET("/", h.IndexHandler)
	e.StaticFS("/static", web.StaticFS())

	e.GET("/api/health", h.HealthCheckHandler)
	e.GET("/api/version", h.VersionHandler)
}

func registerVisualizationRoutes(e *echo.Echo, h *visualization.Handler) {
	e.POST("/api/generate-array", h.GenerateArrayHandler)
	e.POST("/api/generate-grid", h.GenerateGridHandler)
}

func registerMetricsRoutes(e *echo.Echo, m *metrics.Metrics) {
	e.GET("/metrics", echo.WrapHandler(m.Handler()))
}

func registerSwaggerRoutes(e *echo.Echo) {
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(
		// Swagger 문서 JSON 파일 위치 지정
		echoSwagger.URL("/swagger/doc.json"),
		// 딥 링크 활성화 (특정 API로 바로 이동 가능한 URL 지원)
		echoSwagger.DeepLinking(true),
		// 문서 로드 시 태그(Tag) 목록만 펼침 상태로 표시 ("list", "full", "none")
		echoSwagger.DocExpansion("list"),
	))
}
