package httputil

import (
	"errors"
	"net/http"

	apperrors "github.com/darkkaiser/algoviz-server/internal/pkg/errors"
	"github.com/darkkaiser/algoviz-server/internal/service/api/constants"
	"github.com/darkkaiser/algoviz-server/internal/service/api/model/response"
	applog "github.com/darkkaiser/algoviz-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// 프레임워크가 생성한 기본 에러(메시지가 http.StatusText와 같은 경우)를 대체할 사용자 메시지
var defaultMessages = map[int]string{
	http.StatusBadRequest:            constants.ErrMsgBadRequest,
	http.StatusNotFound:              constants.ErrMsgNotFound,
	http.StatusMethodNotAllowed:      constants.ErrMsgMethodNotAllowed,
	http.StatusRequestEntityTooLarge: constants.ErrMsgRequestEntityTooLarge,
	http.StatusTooManyRequests:       constants.ErrMsgTooManyRequests,
	http.StatusInternalServerError:   constants.ErrMsgInternalServer,
	http.StatusServiceUnavailable:    constants.ErrMsgServiceUnavailable,
}

// ErrorHandler Echo 프레임워크의 전역 에러 핸들러입니다.
//
// 모든 에러를 {success:false, error} 형식의 JSON으로 변환하여 반환합니다.
//   - *echo.HTTPError: 상태 코드와 메시지를 그대로 사용 (프레임워크 기본 메시지는 한국어로 대체)
//   - AppError: 에러 타입에 따라 상태 코드를 결정
//   - 그 외: 500, 내부 정보는 노출하지 않음
func ErrorHandler(err error, c echo.Context) {
	code, message := resolve(err)

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}

	if code >= http.StatusInternalServerError {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error("HTTP 5xx: 서버 내부 오류 발생")
	} else if code >= http.StatusBadRequest {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn("HTTP 4xx: 클라이언트 요청 오류")
	}

	// 이미 응답이 전송된 경우 추가 응답 시도하지 않음
	if c.Response().Committed {
		return
	}

	// HEAD 요청은 헤더만 반환
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	_ = c.JSON(code, response.NewErrorResponse(message))
}

// resolve 에러로부터 HTTP 상태 코드와 클라이언트에게 보여줄 메시지를 결정합니다.
func resolve(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code := he.Code

		var message string
		switch m := he.Message.(type) {
		case string:
			message = m
		case response.ErrorResponse:
			message = m.Error
		case error:
			message = m.Error()
		}

		if message == "" || message == http.StatusText(code) {
			if msg, ok := defaultMessages[code]; ok {
				message = msg
			} else {
				message = http.StatusText(code)
			}
		}

		return code, message
	}

	switch apperrors.UnderlyingType(err) {
	case apperrors.InvalidInput:
		return http.StatusBadRequest, apperrors.UserMessage(err)
	}

	return http.StatusInternalServerError, constants.ErrMsgInternalServer
}
