package visualization

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/darkkaiser/algoviz-server/internal/service/api/constants"
	"github.com/darkkaiser/algoviz-server/internal/service/api/httputil"
	"github.com/labstack/echo/v4"
)

var jsonNull = []byte("null")

// bindJSON 요청 본문을 Content-Type과 무관하게 JSON으로 해석하여 v에 채웁니다.
//
// 본문은 정확히 하나의 JSON 값이어야 합니다. 빈 본문, 최상위 null, 값 뒤에 이어지는 데이터는
// 모두 형식 오류로 거부됩니다. 본문 안에서 생략되거나 null인 필드는 기본값을 유지합니다.
// 본문 크기 제한은 BodyLimit 미들웨어가 Request.Body를 감싸서 적용하며, 그 에러(413)는 그대로 반환됩니다.
func bindJSON(c echo.Context, v any) error {
	dec := json.NewDecoder(c.Request().Body)

	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return bindError(err)
	}
	if raw = bytes.TrimSpace(raw); len(raw) == 0 || bytes.Equal(raw, jsonNull) {
		return httputil.NewBadRequestError(constants.ErrMsgBadRequestInvalidJSON)
	}

	// 첫 번째 값 뒤에는 공백 외의 데이터가 없어야 합니다.
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}
		return httputil.NewBadRequestError(constants.ErrMsgBadRequestInvalidJSON)
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return bindError(err)
	}

	return nil
}

// bindError 디코딩 에러를 클라이언트에 반환할 HTTP 에러로 변환합니다.
func bindError(err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return httputil.NewBadRequestError(constants.ErrMsgBadRequestInvalidType)
		}
		return httputil.NewBadRequestError(fmt.Sprintf("%s (%s)", constants.ErrMsgBadRequestInvalidType, typeErr.Field))
	}

	// 빈 본문(io.EOF), 잘린 본문(io.ErrUnexpectedEOF), 문법 오류 등
	return httputil.NewBadRequestError(constants.ErrMsgBadRequestInvalidJSON)
}
