package generator

import (
	"fmt"
	"math"

	apperrors "github.com/darkkaiser/algoviz-server/internal/pkg/errors"
)

const (
	DefaultGridRows           = 15
	DefaultGridCols           = 15
	DefaultObstaclePercentage = 0.3
)

const (
	// CellFree 통과 가능한 칸
	CellFree = 0

	// CellObstacle 장애물 칸
	CellObstacle = 1
)

// GridParams 격자 생성 파라미터
type GridParams struct {
	Rows int
	Cols int

	// 시작/도착 칸을 제외한 각 칸이 장애물이 될 확률 [0, 1]
	ObstaclePercentage float64
}

// DefaultGridParams 요청에서 값이 생략되었을 때 사용하는 파라미터를 반환합니다.
func DefaultGridParams() GridParams {
	return GridParams{
		Rows:               DefaultGridRows,
		Cols:               DefaultGridCols,
		ObstaclePercentage: DefaultObstaclePercentage,
	}
}

// Point 격자 좌표 [행, 열]
type Point [2]int

// Grid 생성된 장애물 격자
type Grid struct {
	Cells [][]int
	Rows  int
	Cols  int
	Start Point
	End   Point
}

func (g *Generator) validateGridParams(p GridParams) error {
	if p.Rows < 1 || p.Rows > g.limits.MaxGridRows {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("행 수(rows)는 1 이상 %d 이하이어야 합니다 (입력값: %d)", g.limits.MaxGridRows, p.Rows))
	}
	if p.Cols < 1 || p.Cols > g.limits.MaxGridCols {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("열 수(cols)는 1 이상 %d 이하이어야 합니다 (입력값: %d)", g.limits.MaxGridCols, p.Cols))
	}
	if math.IsNaN(p.ObstaclePercentage) || p.ObstaclePercentage < 0 || p.ObstaclePercentage > 1 {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("장애물 비율(obstacle_percentage)은 0 이상 1 이하이어야 합니다 (입력값: %v)", p.ObstaclePercentage))
	}
	return nil
}

// Grid rows×cols 크기의 장애물 격자를 생성합니다.
//
// 시작 칸 (0,0)과 도착 칸 (rows-1, cols-1)은 항상 비어 있습니다.
// 나머지 칸은 독립적으로 추출한 u에 대해 u < ObstaclePercentage 이면 장애물이 됩니다.
// 시작 칸에서 도착 칸까지의 경로 존재는 보장하지 않습니다.
func (g *Generator) Grid(p GridParams) (Grid, error) {
	if err := g.validateGridParams(p); err != nil {
		return Grid{}, err
	}

	start := Point{0, 0}
	end := Point{p.Rows - 1, p.Cols - 1}

	cells := make([][]int, p.Rows)
	for i := range cells {
		row := make([]int, p.Cols)
		for j := range row {
			if (i == start[0] && j == start[1]) || (i == end[0] && j == end[1]) {
				row[j] = CellFree
				continue
			}
			if g.float64() < p.ObstaclePercentage {
				row[j] = CellObstacle
			} else {
				row[j] = CellFree
			}
		}
		cells[i] = row
	}

	return Grid{
		Cells: cells,
		Rows:  p.Rows,
		Cols:  p.Cols,
		Start: start,
		End:   end,
	}, nil
}
