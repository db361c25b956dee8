package response

// ErrorResponse 모든 엔드포인트에서 공통으로 사용하는 실패 응답
type ErrorResponse struct {
	// 항상 false
	Success bool `json:"success" example:"false"`

	// 에러 메시지
	Error string `json:"error" example:"잘못된 JSON 형식입니다"`
}

// NewErrorResponse 주어진 메시지로 실패 응답을 생성합니다.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Success: false, Error: message}
}
