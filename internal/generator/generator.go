// Package generator 정렬/경로 탐색 시각화에 사용할 무작위 데이터(정수 배열, 장애물 격자)를 생성합니다.
//
// Generator는 난수 소스 외에는 상태를 갖지 않으며, 여러 고루틴에서 동시에 사용해도 안전합니다.
package generator

import (
	"math"
	"math/rand/v2"
	"sync"
)

const (
	// DefaultMaxArraySize 한 번에 생성할 수 있는 배열 길이의 기본 상한
	DefaultMaxArraySize = 10000

	// DefaultMaxGridRows, DefaultMaxGridCols 한 번에 생성할 수 있는 격자 크기의 기본 상한
	DefaultMaxGridRows = 500
	DefaultMaxGridCols = 500
)

// Limits 요청 하나로 생성할 수 있는 데이터의 상한입니다.
type Limits struct {
	MaxArraySize int
	MaxGridRows  int
	MaxGridCols  int
}

// DefaultLimits 기본 상한을 반환합니다.
func DefaultLimits() Limits {
	return Limits{
		MaxArraySize: DefaultMaxArraySize,
		MaxGridRows:  DefaultMaxGridRows,
		MaxGridCols:  DefaultMaxGridCols,
	}
}

// Option Generator 생성 옵션
type Option func(*Generator)

// WithLimits 생성 상한을 지정합니다. 0 이하의 값은 기본값으로 대체됩니다.
func WithLimits(l Limits) Option {
	return func(g *Generator) {
		d := DefaultLimits()
		if l.MaxArraySize <= 0 {
			l.MaxArraySize = d.MaxArraySize
		}
		if l.MaxGridRows <= 0 {
			l.MaxGridRows = d.MaxGridRows
		}
		if l.MaxGridCols <= 0 {
			l.MaxGridCols = d.MaxGridCols
		}
		g.limits = l
	}
}

// WithSource 난수 소스를 지정합니다. 결정적인 결과가 필요한 테스트에서 사용합니다.
func WithSource(src rand.Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.rng = rand.New(src)
		}
	}
}

// Generator 무작위 배열과 격자를 생성합니다.
type Generator struct {
	limits Limits

	// rng가 nil이면 고루틴 안전한 math/rand/v2 전역 함수를 사용합니다.
	// *rand.Rand는 동시 사용에 안전하지 않으므로 mu로 보호합니다.
	mu  sync.Mutex
	rng *rand.Rand
}

// New 새로운 Generator를 생성합니다.
func New(opts ...Option) *Generator {
	g := &Generator{limits: DefaultLimits()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Limits 적용 중인 생성 상한을 반환합니다.
func (g *Generator) Limits() Limits {
	return g.limits
}

// uint64N [0, n) 범위의 난수를 반환합니다.
func (g *Generator) uint64N(n uint64) uint64 {
	if g.rng == nil {
		return rand.Uint64N(n)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Uint64N(n)
}

func (g *Generator) uint64() uint64 {
	if g.rng == nil {
		return rand.Uint64()
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Uint64()
}

func (g *Generator) float64() float64 {
	if g.rng == nil {
		return rand.Float64()
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Float64()
}

// intInRange [lo, hi] 범위(양 끝 포함)에서 균등 분포의 정수를 반환합니다. lo <= hi 이어야 합니다.
//
// hi-lo는 int 범위를 넘을 수 있으므로 uint64 공간에서 계산합니다.
func (g *Generator) intInRange(lo, hi int) int {
	span := uint64(hi) - uint64(lo)
	if span == math.MaxUint64 {
		return int(g.uint64())
	}
	return int(uint64(lo) + g.uint64N(span+1))
}
