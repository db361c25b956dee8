package log

// callerPathPrefix 로그의 호출자 경로에서 생략할 모듈 경로
const callerPathPrefix = "github.com/darkkaiser/algoviz-server"

// NewProductionOptions 운영 환경에 맞춘 로그 설정을 반환합니다.
func NewProductionOptions(appName, dir string) Options {
	return Options{
		Name:  appName,
		Dir:   dir,
		Level: InfoLevel,

		MaxAge:     30,
		MaxSizeMB:  100,
		MaxBackups: 20,

		EnableCriticalLog: true,
		EnableVerboseLog:  true,
		EnableConsoleLog:  false,

		ReportCaller:     true,
		CallerPathPrefix: callerPathPrefix,
	}
}

// NewDevelopmentOptions 개발 환경에 맞춘 로그 설정을 반환합니다. 터미널 출력이 활성화됩니다.
func NewDevelopmentOptions(appName, dir string) Options {
	return Options{
		Name:  appName,
		Dir:   dir,
		Level: TraceLevel,

		MaxAge:     1,
		MaxSizeMB:  50,
		MaxBackups: 5,

		EnableCriticalLog: false,
		EnableVerboseLog:  false,
		EnableConsoleLog:  true,

		ReportCaller:     true,
		CallerPathPrefix: callerPathPrefix,
	}
}
