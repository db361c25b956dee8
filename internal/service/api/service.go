package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	_ "github.com/darkkaiser/algoviz-server/docs"
	"github.com/darkkaiser/algoviz-server/internal/config"
	"github.com/darkkaiser/algoviz-server/internal/generator"
	"github.com/darkkaiser/algoviz-server/internal/metrics"
	apperrors "github.com/darkkaiser/algoviz-server/internal/pkg/errors"
	"github.com/darkkaiser/algoviz-server/internal/pkg/version"
	"github.com/darkkaiser/algoviz-server/internal/service/api/constants"
	"github.com/darkkaiser/algoviz-server/internal/service/api/handler/system"
	"github.com/darkkaiser/algoviz-server/internal/service/api/handler/visualization"
	"github.com/darkkaiser/algoviz-server/internal/web"
	applog "github.com/darkkaiser/algoviz-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// Service AlgoViz API 서버의 생명주기를 관리하는 서비스입니다.
//
// 서비스는 고루틴으로 실행되며, context를 통해 종료 신호를 받습니다.
// Start() 메서드로 시작하고, context 취소로 종료됩니다.
type Service struct {
	appConfig *config.AppConfig

	generator *generator.Generator

	// metrics nil이면 메트릭 기록과 /metrics 엔드포인트가 비활성화됩니다.
	metrics *metrics.Metrics

	buildInfo version.Info

	// fatalErrC HTTP 서버가 종료 신호 없이 멈춘 경우 그 원인이 전달됩니다.
	fatalErrC chan error

	running   bool
	runningMu sync.Mutex
}

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, gen *generator.Generator, m *metrics.Metrics, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}
	if gen == nil {
		panic(constants.PanicMsgGeneratorRequired)
	}

	return &Service{
		appConfig: appConfig,

		generator: gen,
		metrics:   m,

		buildInfo: buildInfo,

		fatalErrC: make(chan error, 1),
	}
}

// Err HTTP 서버가 종료 신호 없이 멈췄을 때(포트 바인딩 실패 등) 그 원인을 전달하는 채널을 반환합니다.
// 정상 종료 시에는 아무 값도 전달되지 않습니다.
func (s *Service) Err() <-chan error {
	return s.fatalErrC
}

// Start API 서비스를 시작합니다.
//
// 서버 구성(템플릿 로드, 미들웨어, 라우트)은 호출한 고루틴에서 수행되며, 실패하면 에러를 반환합니다.
// 이후 HTTP 서버는 별도의 고루틴에서 실행되고 이 함수는 즉시 반환됩니다.
// 서비스가 완전히 종료되면 serviceStopWG.Done()이 호출됩니다.
//
// 이미 실행 중인 경우 경고 로그만 남기고 nil을 반환합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	e, err := s.setupServer()
	if err != nil {
		serviceStopWG.Done()
		return err
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG, e)

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarted)

	return nil
}

// runServiceLoop 서비스의 메인 실행 루프입니다.
func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup, e *echo.Echo) {
	defer serviceStopWG.Done()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer Echo 서버 인스턴스를 생성하고 모든 설정을 완료합니다.
//
//  1. 랜딩 페이지 렌더러 생성
//  2. Handler 생성 (System 핸들러, Visualization 핸들러)
//  3. Echo 서버 생성 (미들웨어 체인 포함)
//  4. 라우트 등록
func (s *Service) setupServer() (*echo.Echo, error) {
	// 1. 렌더러 생성
	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "랜딩 페이지 템플릿을 불러올 수 없습니다")
	}

	// 2. Handler 생성
	systemHandler := system.NewHandler(renderer, s.indexData(), s.buildInfo)
	visualizationHandler := visualization.NewHandler(s.generator, s.metrics)

	// 3. Echo 서버 생성
	apiConfig := s.appConfig.API
	e := NewHTTPServer(HTTPServerConfig{
		Debug:              s.appConfig.Debug,
		AllowOrigins:       apiConfig.CORS.AllowOrigins,
		RequestTimeout:     apiConfig.RequestTimeoutDuration(),
		RateLimitEnabled:   apiConfig.RateLimit.Enabled,
		RateLimitPerSecond: apiConfig.RateLimit.RequestsPerSecond,
		RateLimitBurst:     apiConfig.RateLimit.Burst,
		EnableHSTS:         apiConfig.TLSServer,
		Metrics:            s.metrics,
	})

	// 4. 라우트 등록
	RegisterRoutes(e, systemHandler, visualizationHandler, RouteOptions{
		SwaggerEnabled: apiConfig.SwaggerEnabled,
		Metrics:        s.metrics,
	})

	return e, nil
}

// indexData 랜딩 페이지에 표시할 기본값과 상한을 구성합니다.
func (s *Service) indexData() web.IndexData {
	limits := s.generator.Limits()
	arrayDefaults := generator.DefaultArrayParams()
	gridDefaults := generator.DefaultGridParams()

	return web.IndexData{
		ServiceName: constants.ServiceName,
		Version:     s.buildInfo.Version,

		DefaultArraySize:   arrayDefaults.Size,
		DefaultArrayMinVal: arrayDefaults.MinVal,
		DefaultArrayMaxVal: arrayDefaults.MaxVal,
		MaxArraySize:       limits.MaxArraySize,

		DefaultGridRows:           gridDefaults.Rows,
		DefaultGridCols:           gridDefaults.Cols,
		DefaultObstaclePercentage: gridDefaults.ObstaclePercentage,
		MaxGridRows:               limits.MaxGridRows,
		MaxGridCols:               limits.MaxGridCols,
	}
}

// startHTTPServer HTTP/HTTPS 서버를 시작합니다.
// 서버가 종료되면 done 채널을 닫아 대기 중인 고루틴에 신호를 보냅니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	apiConfig := s.appConfig.API
	address := fmt.Sprintf(":%d", apiConfig.ListenPort)

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": apiConfig.ListenPort,
		"tls":  apiConfig.TLSServer,
	}).Info(constants.LogMsgServiceHTTPServerStarting)

	var err error
	if apiConfig.TLSServer {
		err = e.StartTLS(address, apiConfig.TLSCertFile, apiConfig.TLSKeyFile)
	} else {
		err = e.Start(address)
	}

	s.handleServerError(err)
}

// handleServerError HTTP 서버 실행 중 발생한 에러를 처리합니다.
//
//   - nil: 처리하지 않음
//   - http.ErrServerClosed: Graceful Shutdown 완료
//   - 그 외: Error 레벨 로깅 후 Err() 채널로 전달 (포트 바인딩 실패 등)
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceHTTPServerStopped)
		return
	}

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.API.ListenPort,
		"error": err,
	}).Error(constants.LogMsgServiceHTTPServerFatalError)

	fatalErr := apperrors.Wrap(err, apperrors.System, constants.LogMsgServiceUnexpectedExit)
	select {
	case s.fatalErrC <- fatalErr:
	default:
		// 이전 에러를 아직 아무도 수신하지 않았으면 먼저 발생한 에러를 유지합니다.
	}
}

// waitForShutdown 종료 신호를 대기하고 Graceful Shutdown을 수행합니다.
//
//  1. 종료 신호 대기 (정상 종료 또는 서버 조기 종료)
//  2. Echo 서버 Shutdown 호출 (5초 타임아웃)
//  3. HTTP 서버 완전 종료 대기
//  4. 서비스 상태 정리
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)
	case <-httpServerDone:
		// HTTP 서버가 예기치 않게 종료됨 (포트 바인딩 실패 등)
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)

		s.cleanup()

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgServiceHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup()
}

// cleanup 서비스 종료 후 상태를 정리합니다.
func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}

// isRunning 서비스 실행 여부를 반환합니다.
func (s *Service) isRunning() bool {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	return s.running
}
