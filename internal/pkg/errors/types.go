package errors

import "strconv"

// ErrorType 에러의 종류를 나타내는 타입입니다.
type ErrorType int

// 에러 타입 상수
const (
	// Unknown 알 수 없는 에러
	Unknown ErrorType = iota

	// Internal 내부 로직 오류 (버그 등)
	Internal

	// System 시스템 또는 인프라 오류 (설정 파일, 포트 바인딩 등)
	System

	// InvalidInput 잘못된 입력값 (요청 파라미터 유효성 검사 실패)
	InvalidInput

	// ParsingFailed 데이터 파싱 실패 (설정 파일의 JSON 형식 오류 등)
	ParsingFailed
)

var errorTypeNames = [...]string{
	Unknown:       "Unknown",
	Internal:      "Internal",
	System:        "System",
	InvalidInput:  "InvalidInput",
	ParsingFailed: "ParsingFailed",
}

// String 에러 타입의 이름을 반환합니다. 정의되지 않은 값은 "ErrorType(N)" 형식으로 표현됩니다.
func (t ErrorType) String() string {
	if t < 0 || int(t) >= len(errorTypeNames) {
		return "ErrorType(" + strconv.Itoa(int(t)) + ")"
	}
	return errorTypeNames[t]
}
