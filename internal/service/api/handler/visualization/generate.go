package visualization

import (
	"github.com/darkkaiser/algoviz-server/internal/metrics"
	apperrors "github.com/darkkaiser/algoviz-server/internal/pkg/errors"
	"github.com/darkkaiser/algoviz-server/internal/service/api/constants"
	"github.com/darkkaiser/algoviz-server/internal/service/api/httputil"
	"github.com/darkkaiser/algoviz-server/internal/service/api/model/request"
	"github.com/darkkaiser/algoviz-server/internal/service/api/model/response"
	applog "github.com/darkkaiser/algoviz-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// GenerateArrayHandler godoc
// @Summary 무작위 정수 배열 생성
// @Description 정렬 시각화에 사용할 정수 배열을 생성합니다.
// @Description 각 원소는 [min_val, max_val] 구간에서 독립적으로 균등하게 선택됩니다.
// @Description
// @Description 본문의 모든 필드는 선택 사항이며, 생략하거나 null이면 기본값이 사용됩니다.
// @Description 모든 필드에 기본값(size=20, min_val=1, max_val=100)을 사용하려면 빈 객체 {}를 전송합니다.
// @Description 빈 본문, null, 하나의 JSON 값 뒤에 이어지는 데이터는 400으로 거부됩니다.
// @Description
// @Description ## 사용 예시
// @Description ```bash
// @Description curl -X POST "http://localhost:5001/api/generate-array" \
// @Description   -H "Content-Type: application/json" \
// @Description   -d '{"size":5,"min_val":1,"max_val":10}'
// @Description ```
// @Tags Visualization
// @Accept json
// @Produce json
// @Param request body request.ArrayGenerationRequest false "배열 생성 파라미터"
// @Success 200 {object} response.ArrayGenerationResponse "생성 결과"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청 (JSON 형식 오류, 범위를 벗어난 파라미터 등)"
// @Failure 413 {object} response.ErrorResponse "요청 본문이 너무 큼"
// @Failure 429 {object} response.ErrorResponse "요청 속도 제한 초과"
// @Router /api/generate-array [post]
func (h *Handler) GenerateArrayHandler(c echo.Context) error {
	// 1. 요청 바인딩
	req := new(request.ArrayGenerationRequest)
	if err := bindJSON(c, req); err != nil {
		h.rejected(c, metrics.KindArray, err)
		return err
	}

	// 2. 배열 생성 (파라미터 검증 포함)
	params := req.ToParams()
	arr, err := h.generator.Array(params)
	if err != nil {
		return h.generationFailed(c, metrics.KindArray, err)
	}

	h.metrics.RecordArray(len(arr))

	h.log(c).WithFields(applog.Fields{
		"size":    params.Size,
		"min_val": params.MinVal,
		"max_val": params.MaxVal,
	}).Debug(constants.LogMsgArrayGenerated)

	// 3. 성공 응답
	return httputil.Success(c, response.ArrayGenerationResponse{
		Success: true,
		Array:   arr,
		Size:    len(arr),
	})
}

// GenerateGridHandler godoc
// @Summary 무작위 장애물 격자 생성
// @Description 경로 탐색 시각화에 사용할 rows×cols 격자를 생성합니다. (0: 빈 칸, 1: 장애물)
// @Description 시작 칸 [0,0]과 도착 칸 [rows-1, cols-1]은 항상 빈 칸이며,
// @Description 나머지 칸은 각각 obstacle_percentage 확률로 장애물이 됩니다.
// @Description 시작 칸에서 도착 칸까지의 경로 존재는 보장하지 않습니다.
// @Description
// @Description 본문의 모든 필드는 선택 사항이며, 생략하거나 null이면 기본값(rows=15, cols=15, obstacle_percentage=0.3)이 사용됩니다.
// @Description 본문은 하나의 JSON 객체여야 하며, 빈 본문이나 null은 400으로 거부됩니다.
// @Tags Visualization
// @Accept json
// @Produce json
// @Param request body request.GridGenerationRequest false "격자 생성 파라미터"
// @Success 200 {object} response.GridGenerationResponse "생성 결과"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청 (JSON 형식 오류, 범위를 벗어난 파라미터 등)"
// @Failure 413 {object} response.ErrorResponse "요청 본문이 너무 큼"
// @Failure 429 {object} response.ErrorResponse "요청 속도 제한 초과"
// @Router /api/generate-grid [post]
func (h *Handler) GenerateGridHandler(c echo.Context) error {
	// 1. 요청 바인딩
	req := new(request.GridGenerationRequest)
	if err := bindJSON(c, req); err != nil {
		h.rejected(c, metrics.KindGrid, err)
		return err
	}

	// 2. 격자 생성 (파라미터 검증 포함)
	params := req.ToParams()
	grid, err := h.generator.Grid(params)
	if err != nil {
		return h.generationFailed(c, metrics.KindGrid, err)
	}

	h.metrics.RecordGrid(grid.Rows, grid.Cols)

	h.log(c).WithFields(applog.Fields{
		"rows":                params.Rows,
		"cols":                params.Cols,
		"obstacle_percentage": params.ObstaclePercentage,
	}).Debug(constants.LogMsgGridGenerated)

	// 3. 성공 응답
	return httputil.Success(c, response.GridGenerationResponse{
		Success: true,
		Grid:    grid.Cells,
		Rows:    grid.Rows,
		Cols:    grid.Cols,
		Start:   grid.Start,
		End:     grid.End,
	})
}

// rejected 요청 본문을 해석하지 못한 요청을 기록합니다.
func (h *Handler) rejected(c echo.Context, kind string, err error) {
	h.metrics.RecordFailure(kind)

	h.log(c).WithFields(applog.Fields{
		"kind":  kind,
		"error": err,
	}).Debug(constants.LogMsgRequestBodyRejected)
}

// generationFailed 생성기 에러를 HTTP 에러로 변환합니다.
// 입력값 검증 실패는 400으로, 그 외 에러는 에러 핸들러에서 500으로 처리됩니다.
func (h *Handler) generationFailed(c echo.Context, kind string, err error) error {
	h.metrics.RecordFailure(kind)

	if !apperrors.Is(err, apperrors.InvalidInput) {
		return err
	}

	h.log(c).WithFields(applog.Fields{
		"kind":  kind,
		"error": err,
	}).Debug(constants.LogMsgGenerationRejected)

	return httputil.NewBadRequestError(apperrors.UserMessage(err))
}
