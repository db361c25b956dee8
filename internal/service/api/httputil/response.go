package httputil

import (
	"net/http"

	"github.com/darkkaiser/algoviz-server/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
)

// NewBadRequestError 400 Bad Request 에러를 생성합니다
func NewBadRequestError(message string) error {
	return echo.NewHTTPError(http.StatusBadRequest, response.NewErrorResponse(message))
}

// NewTooManyRequestsError 429 Too Many Requests 에러를 생성합니다
func NewTooManyRequestsError(message string) error {
	return echo.NewHTTPError(http.StatusTooManyRequests, response.NewErrorResponse(message))
}

// NewInternalServerError 500 Internal Server Error 에러를 생성합니다
func NewInternalServerError(message string) error {
	return echo.NewHTTPError(http.StatusInternalServerError, response.NewErrorResponse(message))
}

// Success 200 OK와 함께 응답 본문을 JSON으로 반환합니다.
func Success(c echo.Context, body any) error {
	return c.JSON(http.StatusOK, body)
}
