// Package metrics 데이터 생성 및 HTTP 요청 처리에 대한 Prometheus 메트릭을 정의합니다.
//
// 모든 메트릭 이름은 algoviz_ 접두사를 사용합니다.
// *Metrics가 nil이어도 Record* 메서드는 안전하게 아무 동작도 하지 않으므로, 메트릭이 비활성화된 경우 nil을 전달하면 됩니다.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "algoviz"

// 생성 종류 레이블 값
const (
	KindArray = "array"
	KindGrid  = "grid"
)

// Metrics 애플리케이션 메트릭 모음
type Metrics struct {
	// HTTPRequestsTotal 요청 수 (method, route, status)
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration 요청 처리 시간 분포 (method, route)
	HTTPRequestDuration *prometheus.HistogramVec

	// GenerationsTotal 데이터 생성 성공 횟수 (kind)
	GenerationsTotal *prometheus.CounterVec

	// GenerationFailuresTotal 데이터 생성 실패 횟수 (kind)
	GenerationFailuresTotal *prometheus.CounterVec

	// ArraySize 생성된 배열 길이 분포
	ArraySize prometheus.Histogram

	// GridCells 생성된 격자의 칸 수 분포
	GridCells prometheus.Histogram

	gatherer prometheus.Gatherer
}

// NewMetrics 메트릭을 생성하여 reg에 등록합니다.
// 등록에 실패하면 panic이 발생합니다. (초기화 시점에만 호출)
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests by method, route and status code",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		GenerationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "generations_total",
				Help:      "Total successful random data generations by kind",
			},
			[]string{"kind"},
		),
		GenerationFailuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "generation_failures_total",
				Help:      "Total rejected random data generation requests by kind",
			},
			[]string{"kind"},
		),
		ArraySize: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "array_size",
				Help:      "Length of generated arrays",
				Buckets:   prometheus.ExponentialBuckets(10, 4, 6), // 10 ~ 10240
			},
		),
		GridCells: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "grid_cells",
				Help:      "Number of cells (rows*cols) of generated grids",
				Buckets:   prometheus.ExponentialBuckets(25, 4, 7), // 25 ~ 102400
			},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.GenerationsTotal,
		m.GenerationFailuresTotal,
		m.ArraySize,
		m.GridCells,
	)

	if g, ok := reg.(prometheus.Gatherer); ok {
		m.gatherer = g
	}

	return m
}

// NewRegistry Go 런타임 및 프로세스 수집기가 등록된 새로운 레지스트리를 반환합니다.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Handler 메트릭을 Prometheus 텍스트 형식으로 노출하는 HTTP 핸들러를 반환합니다.
func (m *Metrics) Handler() http.Handler {
	if m == nil || m.gatherer == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// RecordHTTPRequest 완료된 HTTP 요청 하나를 기록합니다.
func (m *Metrics) RecordHTTPRequest(method, route, status string, durationSeconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(durationSeconds)
}

// RecordArray 배열 생성 성공을 기록합니다.
func (m *Metrics) RecordArray(size int) {
	if m == nil {
		return
	}
	m.GenerationsTotal.WithLabelValues(KindArray).Inc()
	m.ArraySize.Observe(float64(size))
}

// RecordGrid 격자 생성 성공을 기록합니다.
func (m *Metrics) RecordGrid(rows, cols int) {
	if m == nil {
		return
	}
	m.GenerationsTotal.WithLabelValues(KindGrid).Inc()
	m.GridCells.Observe(float64(rows) * float64(cols))
}

// RecordFailure 거부된 생성 요청을 기록합니다.
func (m *Metrics) RecordFailure(kind string) {
	if m == nil {
		return
	}
	m.GenerationFailuresTotal.WithLabelValues(kind).Inc()
}
