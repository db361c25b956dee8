// Package service 애플리케이션을 구성하는 장기 실행 서비스의 공통 계약을 정의합니다.
package service

import (
	"context"
	"sync"
)

// Service 시작과 종료가 관리되는 백그라운드 서비스입니다.
//
// Start는 서비스를 비동기로 시작하고 즉시 반환합니다. serviceStopCtx가 취소되면 서비스는
// 정리 작업을 마친 뒤 serviceStopWG.Done()을 호출합니다. 호출자는 Start 전에 serviceStopWG.Add(1)을 호출해야 합니다.
//
// Err는 서비스가 종료 신호 없이 멈췄을 때 그 원인을 전달하는 채널을 반환합니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
	Err() <-chan error
}
