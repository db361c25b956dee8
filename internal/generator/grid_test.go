package generator

import (
	"math"
	"testing"

	apperrors "github.com/darkkaiser/algoviz-server/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countObstacles(cells [][]int) int {
	n := 0
	for _, row := range cells {
		for _, c := range row {
			if c == CellObstacle {
				n++
			}
		}
	}
	return n
}

func TestGrid_ShapeAndCorners(t *testing.T) {
	g := newSeeded()

	tests := []struct {
		name   string
		params GridParams
	}{
		{"기본값", DefaultGridParams()},
		{"직사각형", GridParams{Rows: 3, Cols: 40, ObstaclePercentage: 0.9}},
		{"한 줄", GridParams{Rows: 1, Cols: 10, ObstaclePercentage: 1}},
		{"한 칸", GridParams{Rows: 1, Cols: 1, ObstaclePercentage: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := g.Grid(tt.params)
			require.NoError(t, err)

			assert.Equal(t, tt.params.Rows, grid.Rows)
			assert.Equal(t, tt.params.Cols, grid.Cols)
			require.Len(t, grid.Cells, tt.params.Rows)
			for _, row := range grid.Cells {
				require.Len(t, row, tt.params.Cols)
				for _, c := range row {
					assert.Contains(t, []int{CellFree, CellObstacle}, c)
				}
			}

			assert.Equal(t, Point{0, 0}, grid.Start)
			assert.Equal(t, Point{tt.params.Rows - 1, tt.params.Cols - 1}, grid.End)
			assert.Equal(t, CellFree, grid.Cells[0][0])
			assert.Equal(t, CellFree, grid.Cells[tt.params.Rows-1][tt.params.Cols-1])
		})
	}
}

func TestGrid_ObstacleExtremes(t *testing.T) {
	g := newSeeded()

	t.Run("비율 0이면 장애물 없음", func(t *testing.T) {
		grid, err := g.Grid(GridParams{Rows: 20, Cols: 20, ObstaclePercentage: 0})
		require.NoError(t, err)
		assert.Zero(t, countObstacles(grid.Cells))
	})

	t.Run("비율 1이면 시작/도착 외 전부 장애물", func(t *testing.T) {
		grid, err := g.Grid(GridParams{Rows: 20, Cols: 20, ObstaclePercentage: 1})
		require.NoError(t, err)
		assert.Equal(t, 20*20-2, countObstacles(grid.Cells))
	})

	t.Run("2x2 비율 0", func(t *testing.T) {
		grid, err := g.Grid(GridParams{Rows: 2, Cols: 2, ObstaclePercentage: 0})
		require.NoError(t, err)
		assert.Equal(t, [][]int{{0, 0}, {0, 0}}, grid.Cells)
		assert.Equal(t, Point{1, 1}, grid.End)
	})
}

func TestGrid_ObstacleRatio(t *testing.T) {
	grid, err := newSeeded().Grid(GridParams{Rows: 100, Cols: 100, ObstaclePercentage: 0.3})
	require.NoError(t, err)

	ratio := float64(countObstacles(grid.Cells)) / float64(100*100-2)
	assert.InDelta(t, 0.3, ratio, 0.03)
}

func TestGrid_InvalidParams(t *testing.T) {
	g := New(WithLimits(Limits{MaxGridRows: 50, MaxGridCols: 60}))

	tests := []struct {
		name        string
		params      GridParams
		errContains string
	}{
		{"행 0", GridParams{Rows: 0, Cols: 5, ObstaclePercentage: 0.3}, "rows"},
		{"열 음수", GridParams{Rows: 5, Cols: -1, ObstaclePercentage: 0.3}, "cols"},
		{"행 상한 초과", GridParams{Rows: 51, Cols: 5, ObstaclePercentage: 0.3}, "50 이하"},
		{"열 상한 초과", GridParams{Rows: 5, Cols: 61, ObstaclePercentage: 0.3}, "60 이하"},
		{"음수 비율", GridParams{Rows: 5, Cols: 5, ObstaclePercentage: -0.1}, "obstacle_percentage"},
		{"1 초과 비율", GridParams{Rows: 5, Cols: 5, ObstaclePercentage: 1.5}, "obstacle_percentage"},
		{"NaN 비율", GridParams{Rows: 5, Cols: 5, ObstaclePercentage: math.NaN()}, "obstacle_percentage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.Grid(tt.params)

			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
			assert.ErrorContains(t, err, tt.errContains)
		})
	}
}
