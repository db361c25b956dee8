package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/algoviz-server/internal/config"
	"github.com/darkkaiser/algoviz-server/internal/generator"
	"github.com/darkkaiser/algoviz-server/internal/metrics"
	"github.com/darkkaiser/algoviz-server/internal/pkg/version"
	"github.com/darkkaiser/algoviz-server/internal/service"
	"github.com/darkkaiser/algoviz-server/internal/service/api"
	applog "github.com/darkkaiser/algoviz-server/pkg/log"
)

// @title AlgoViz API
// @version 1.0.0
// @description 알고리즘 시각화 데모에 사용할 무작위 배열과 장애물 격자를 생성하는 서버의 REST API입니다.
// @description
// @description ## 주요 기능
// @description - 정렬 시각화용 무작위 정수 배열 생성
// @description - 경로 탐색 시각화용 무작위 장애물 격자 생성
// @description
// @description 모든 에러 응답은 {"success": false, "error": "메시지"} 형식입니다.

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser
// @contact.email darkkaiser@gmail.com

// @license.name MIT

// @BasePath /

const (
	banner = `
     _    _           __     ___
    / \  | |  __ _  __\ \   / (_) ____
   / _ \ | | / _' |/ _ \ \ / /| ||_  /
  / ___ \| || (_| | (_) \ V / | | / /
 /_/   \_\_| \__, |\___/ \_/  |_|/___|
             |___/                       %s
                                                        developed by DarkKaiser
--------------------------------------------------------------------------------
`
)

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.Load()
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	var logOpts applog.Options
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName, appConfig.Log.Dir)
	} else {
		logOpts = applog.NewProductionOptions(config.AppName, appConfig.Log.Dir)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	// 3. 로그 레벨 최종 확정
	applog.SetDebugMode(appConfig.Debug)

	buildInfo := version.Get()

	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields("main", applog.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	// 서비스를 생성한다.
	gen := generator.New(generator.WithLimits(generator.Limits{
		MaxArraySize: appConfig.Generator.MaxArraySize,
		MaxGridRows:  appConfig.Generator.MaxGridRows,
		MaxGridCols:  appConfig.Generator.MaxGridCols,
	}))

	var appMetrics *metrics.Metrics
	if appConfig.Metrics.Enabled {
		appMetrics = metrics.NewMetrics(metrics.NewRegistry())
	}

	apiService := api.NewService(appConfig, gen, appMetrics, buildInfo)

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	// 서비스를 시작한다.
	services := []service.Service{apiService}
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields("main", applog.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel()
			serviceStopWG.Wait()

			_ = appLogCloser.Close()
			os.Exit(1)
		}
	}

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponentAndFields("main", applog.Fields{
		"port": appConfig.API.ListenPort,
	}).Info("서버 가동 완료")

	// 종료 신호를 받거나, 어느 서비스라도 예기치 않게 멈추면 모든 서비스를 중지한다.
	fatalErrC := make(chan error, len(services))
	for _, s := range services {
		go func(s service.Service) {
			if err, ok := <-s.Err(); ok {
				fatalErrC <- err
			}
		}(s)
	}

	select {
	case <-termC:
		applog.WithComponent("main").Info("종료 신호 수신, 서비스를 중지합니다")
		cancel()
		serviceStopWG.Wait()

	case err := <-fatalErrC:
		applog.WithComponentAndFields("main", applog.Fields{
			"error": err,
		}).Error("서비스가 예기치 않게 중지되어 프로세스를 종료합니다")

		cancel()
		serviceStopWG.Wait()

		_ = appLogCloser.Close()
		os.Exit(1)
	}
}
