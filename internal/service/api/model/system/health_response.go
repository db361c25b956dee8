package system

// HealthResponse 서버 헬스체크 응답
type HealthResponse struct {
	// 항상 "healthy"
	Status string `json:"status" example:"healthy"`

	// 응답 시각 (Unix epoch 기준 초, 소수점 포함)
	Timestamp float64 `json:"timestamp" example:"1760832000.123456"`

	// 서비스 이름
	Service string `json:"service" example:"AlgoViz API"`
}
