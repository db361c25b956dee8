package constants

// 내부 로깅을 위한 메시지 상수입니다.
const (
	// ------------------------------------------------------------------------------------------------
	// 서비스 생명주기
	// ------------------------------------------------------------------------------------------------

	LogMsgServiceStarting       = "API 서비스 시작중..."
	LogMsgServiceStarted        = "API 서비스 시작됨"
	LogMsgServiceAlreadyStarted = "API 서비스가 이미 시작됨!!!"
	LogMsgServiceStopping       = "API 서비스 중지중..."
	LogMsgServiceStopped        = "API 서비스 중지됨"
	LogMsgServiceUnexpectedExit = "API 서비스가 예기치 않게 종료되었습니다"

	LogMsgServiceHTTPServerStarting      = "API 서비스 > http 서버 시작"
	LogMsgServiceHTTPServerStopped       = "API 서비스 > http 서버 중지됨"
	LogMsgServiceHTTPServerShutdownError = "API 서비스 > http 서버 종료 중 오류 발생"
	LogMsgServiceHTTPServerFatalError    = "API 서비스 > http 서버를 구성하는 중에 치명적인 오류가 발생하였습니다."

	// ------------------------------------------------------------------------------------------------
	// 시스템 엔드포인트
	// ------------------------------------------------------------------------------------------------

	LogMsgHealthCheck  = "헬스체크 요청"
	LogMsgVersionInfo  = "버전 정보 요청"
	LogMsgIndexRequest = "랜딩 페이지 요청"

	// ------------------------------------------------------------------------------------------------
	// 데이터 생성
	// ------------------------------------------------------------------------------------------------

	LogMsgArrayGenerated      = "배열 생성 완료"
	LogMsgGridGenerated       = "격자 생성 완료"
	LogMsgGenerationRejected  = "데이터 생성 요청이 거부되었습니다"
	LogMsgIndexRenderFailed   = "랜딩 페이지 렌더링 실패"
	LogMsgRequestBodyRejected = "요청 본문을 해석할 수 없습니다"
)
