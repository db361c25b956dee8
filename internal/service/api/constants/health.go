package constants

const (
	// HealthStatusHealthy 헬스체크 상태: 정상
	HealthStatusHealthy = "healthy"

	// ServiceName 헬스체크 응답과 랜딩 페이지에 표시되는 서비스 이름
	ServiceName = "AlgoViz API"
)
