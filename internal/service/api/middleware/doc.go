// Package middleware API 서버에서 공통으로 사용하는 Echo 미들웨어를 제공합니다.
//
// 제공되는 미들웨어:
//
//   - PanicRecovery: 핸들러 패닉 복구 및 에러 로깅
//   - HTTPLogger: HTTP 요청/응답 구조화 로깅
//   - Metrics: 라우트별 요청 수/처리 시간 Prometheus 기록
//   - RateLimiting: 클라이언트 IP 기반 요청 속도 제한
//   - Logger: Echo 내부 로거를 애플리케이션 로거로 연결하는 어댑터
//
// 사용 예시:
//
//	e := echo.New()
//	e.Use(middleware.PanicRecovery())
//	e.Use(middleware.HTTPLogger())
//	e.Use(middleware.RateLimiting(20, 40))
package middleware
