package generator

import (
	"math"
	"testing"

	apperrors "github.com/darkkaiser/algoviz-server/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArray_LengthAndRange(t *testing.T) {
	g := newSeeded()

	tests := []struct {
		name   string
		params ArrayParams
	}{
		{"기본값", DefaultArrayParams()},
		{"크기 1", ArrayParams{Size: 1, MinVal: 1, MaxVal: 100}},
		{"음수 범위", ArrayParams{Size: 100, MinVal: -1000, MaxVal: -1}},
		{"최대 크기", ArrayParams{Size: DefaultMaxArraySize, MinVal: 0, MaxVal: 9}},
		{"int 전체 범위", ArrayParams{Size: 100, MinVal: math.MinInt, MaxVal: math.MaxInt}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arr, err := g.Array(tt.params)
			require.NoError(t, err)

			require.Len(t, arr, tt.params.Size)
			for _, v := range arr {
				assert.GreaterOrEqual(t, v, tt.params.MinVal)
				assert.LessOrEqual(t, v, tt.params.MaxVal)
			}
		})
	}
}

func TestArray_ConstantRange(t *testing.T) {
	arr, err := New().Array(ArrayParams{Size: 5, MinVal: 10, MaxVal: 10})

	require.NoError(t, err)
	assert.Equal(t, []int{10, 10, 10, 10, 10}, arr)
}

func TestArray_Uniformity(t *testing.T) {
	g := newSeeded()

	arr, err := g.Array(ArrayParams{Size: 10000, MinVal: 1, MaxVal: 10})
	require.NoError(t, err)

	counts := make(map[int]int)
	for _, v := range arr {
		counts[v]++
	}

	// 기대값 1000, 표준편차 약 30
	for v := 1; v <= 10; v++ {
		assert.InDelta(t, 1000, counts[v], 200, "값 %d의 빈도가 균등 분포에서 크게 벗어났습니다", v)
	}
}

func TestArray_InvalidParams(t *testing.T) {
	g := New(WithLimits(Limits{MaxArraySize: 100}))

	tests := []struct {
		name        string
		params      ArrayParams
		errContains string
	}{
		{"크기 0", ArrayParams{Size: 0, MinVal: 1, MaxVal: 10}, "size"},
		{"음수 크기", ArrayParams{Size: -5, MinVal: 1, MaxVal: 10}, "size"},
		{"상한 초과", ArrayParams{Size: 101, MinVal: 1, MaxVal: 10}, "100 이하"},
		{"min_val > max_val", ArrayParams{Size: 5, MinVal: 10, MaxVal: 1}, "min_val"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arr, err := g.Array(tt.params)

			require.Error(t, err)
			assert.Nil(t, arr)
			assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
			assert.ErrorContains(t, err, tt.errContains)
		})
	}
}
