package constants

import "time"

// 서버 설정 기본값 상수입니다.
const (
	// DefaultRequestTimeout HTTP 요청 처리의 기본 타임아웃 시간
	DefaultRequestTimeout = 60 * time.Second

	// DefaultReadHeaderTimeout 헤더 읽기 최대 대기 시간 (Slowloris 방어)
	DefaultReadHeaderTimeout = 10 * time.Second

	// DefaultReadTimeout 요청 전체(헤더+본문) 읽기 최대 대기 시간
	DefaultReadTimeout = 15 * time.Second

	// DefaultWriteTimeout 응답 쓰기 최대 대기 시간
	DefaultWriteTimeout = 30 * time.Second

	// DefaultIdleTimeout Keep-Alive 연결의 최대 유휴 시간
	DefaultIdleTimeout = 60 * time.Second

	// DefaultShutdownTimeout Graceful Shutdown 시 최대 대기 시간
	DefaultShutdownTimeout = 5 * time.Second

	// DefaultMaxBodySize 요청 본문의 최대 크기
	DefaultMaxBodySize = "128K"

	// DefaultRateLimitPerSecond IP당 초당 허용 요청 수
	DefaultRateLimitPerSecond = 20

	// DefaultRateLimitBurst IP당 순간 최대 허용 요청 수
	DefaultRateLimitBurst = 40
)
