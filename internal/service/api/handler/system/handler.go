// Package system 시스템 엔드포인트 핸들러를 제공합니다.
//
// 랜딩 페이지, 헬스체크, 버전 정보 등 데이터 생성과 무관한 시스템 수준의 요청을 처리합니다.
package system

import (
	"bytes"
	"io"
	"net/http"
	"runtime"
	"time"

	"github.com/darkkaiser/algoviz-server/internal/pkg/version"
	"github.com/darkkaiser/algoviz-server/internal/service/api/constants"
	"github.com/darkkaiser/algoviz-server/internal/service/api/httputil"
	"github.com/darkkaiser/algoviz-server/internal/service/api/model/system"
	applog "github.com/darkkaiser/algoviz-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// indexTemplate 랜딩 페이지 템플릿 이름
const indexTemplate = "index.html"

// Renderer 이름으로 지정된 템플릿을 렌더링합니다.
type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

// Handler 시스템 엔드포인트 핸들러 (랜딩 페이지, 헬스체크, 버전 정보)
type Handler struct {
	renderer  Renderer
	indexData any

	buildInfo version.Info

	// 헬스체크 timestamp 계산 기준. startTime은 단조 시계 값을 포함하므로
	// 벽시계가 뒤로 조정되어도 timestamp는 감소하지 않습니다.
	serverStartTime time.Time
	serverStartWall float64
}

// NewHandler Handler 인스턴스를 생성합니다.
//
// indexData는 랜딩 페이지 템플릿에 그대로 전달됩니다.
func NewHandler(renderer Renderer, indexData any, buildInfo version.Info) *Handler {
	if renderer == nil {
		panic(constants.PanicMsgRendererRequired)
	}

	now := time.Now()

	return &Handler{
		renderer:  renderer,
		indexData: indexData,

		buildInfo: buildInfo,

		serverStartTime: now,
		serverStartWall: float64(now.UnixNano()) / float64(time.Second),
	}
}

// IndexHandler godoc
// @Summary 랜딩 페이지
// @Description 배열/격자 생성 API를 직접 호출해 볼 수 있는 HTML 페이지를 반환합니다.
// @Tags System
// @Produce html
// @Success 200 {string} string "HTML 문서"
// @Failure 500 {object} response.ErrorResponse "렌더링 실패"
// @Router / [get]
func (h *Handler) IndexHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/",
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgIndexRequest)

	// 렌더링 도중 실패하면 일부만 기록된 응답이 나가지 않도록 버퍼에 먼저 렌더링합니다.
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, indexTemplate, h.indexData); err != nil {
		applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
			"template": indexTemplate,
			"error":    err,
		}).Error(constants.LogMsgIndexRenderFailed)

		return httputil.NewInternalServerError(constants.ErrMsgInternalServer)
	}

	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 서버가 요청을 처리할 수 있는지 확인합니다. 항상 200과 "healthy"를 반환합니다.
// @Description
// @Description 응답 필드:
// @Description - status: 항상 healthy
// @Description - timestamp: 응답 시각 (Unix epoch 기준 초, 호출 간 감소하지 않음)
// @Description - service: 서비스 이름
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "헬스체크 결과"
// @Router /api/health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/api/health",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	return httputil.Success(c, system.HealthResponse{
		Status:    constants.HealthStatusHealthy,
		Timestamp: h.timestamp(),
		Service:   constants.ServiceName,
	})
}

// timestamp 서버 시작 시각에 단조 시계 기준 경과 시간을 더한 현재 시각(초)을 반환합니다.
func (h *Handler) timestamp() float64 {
	return h.serverStartWall + time.Since(h.serverStartTime).Seconds()
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 서버의 버전, Git 커밋 해시, 빌드 날짜, 빌드 번호, Go 버전을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /api/version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/api/version",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgVersionInfo)

	goVersion := h.buildInfo.GoVersion
	if goVersion == "" {
		goVersion = runtime.Version()
	}

	return httputil.Success(c, system.VersionResponse{
		Version:     h.buildInfo.Version,
		Commit:      h.buildInfo.Commit,
		BuildDate:   h.buildInfo.BuildDate,
		BuildNumber: h.buildInfo.BuildNumber,
		GoVersion:   goVersion,
	})
}
