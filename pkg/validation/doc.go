// Package validation 설정 파일과 환경 변수로 전달되는 외부 입력값을 검증하는 함수들을 제공합니다.
//
// 모든 함수는 상태를 갖지 않으며 동시에 호출해도 안전합니다.
// 유효하지 않은 입력에 대해서는 원인을 설명하는 error를 반환합니다.
package validation
