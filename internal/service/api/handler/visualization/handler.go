// Package visualization 시각화 데모에 사용되는 무작위 데이터 생성 핸들러를 제공합니다.
//
// 정렬 시각화용 정수 배열과 경로 탐색 시각화용 장애물 격자를 생성합니다.
// 정렬/경로 탐색 알고리즘 자체는 클라이언트에서 수행됩니다.
package visualization

import (
	"github.com/darkkaiser/algoviz-server/internal/generator"
	"github.com/darkkaiser/algoviz-server/internal/metrics"
	"github.com/darkkaiser/algoviz-server/internal/service/api/constants"
	applog "github.com/darkkaiser/algoviz-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// Generator 요청 파라미터로 무작위 데이터를 생성합니다.
type Generator interface {
	Array(p generator.ArrayParams) ([]int, error)
	Grid(p generator.GridParams) (generator.Grid, error)
}

// Handler 배열/격자 생성 요청을 처리하는 핸들러입니다.
type Handler struct {
	generator Generator

	// metrics 생성 결과 기록 (nil이면 기록하지 않음)
	metrics *metrics.Metrics
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(gen Generator, m *metrics.Metrics) *Handler {
	if gen == nil {
		panic(constants.PanicMsgGeneratorRequired)
	}

	return &Handler{
		generator: gen,
		metrics:   m,
	}
}

// log는 공통 로깅 필드가 설정된 로거 엔트리를 반환합니다.
func (h *Handler) log(c echo.Context) *applog.Entry {
	return applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  c.Path(),
		"remote_ip": c.RealIP(),
	})
}
