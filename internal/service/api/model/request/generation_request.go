// Package request 클라이언트 요청 본문 모델을 정의합니다.
//
// 모든 필드는 포인터로 선언되어, 본문에서 생략되었거나 null인 필드는 기본값을 유지합니다.
package request

import (
	"github.com/darkkaiser/algoviz-server/internal/generator"
)

// ArrayGenerationRequest 배열 생성 요청
type ArrayGenerationRequest struct {
	// 배열 길이 (기본값: 20)
	Size *int `json:"size,omitempty" example:"20"`

	// 최솟값, 포함 (기본값: 1)
	MinVal *int `json:"min_val,omitempty" example:"1"`

	// 최댓값, 포함 (기본값: 100)
	MaxVal *int `json:"max_val,omitempty" example:"100"`
}

// ToParams 지정되지 않은 필드를 기본값으로 채워 생성 파라미터로 변환합니다.
func (r *ArrayGenerationRequest) ToParams() generator.ArrayParams {
	p := generator.DefaultArrayParams()
	if r == nil {
		return p
	}

	if r.Size != nil {
		p.Size = *r.Size
	}
	if r.MinVal != nil {
		p.MinVal = *r.MinVal
	}
	if r.MaxVal != nil {
		p.MaxVal = *r.MaxVal
	}

	return p
}

// GridGenerationRequest 격자 생성 요청
type GridGenerationRequest struct {
	// 행 수 (기본값: 15)
	Rows *int `json:"rows,omitempty" example:"15"`

	// 열 수 (기본값: 15)
	Cols *int `json:"cols,omitempty" example:"15"`

	// 각 칸이 장애물이 될 확률, 0~1 (기본값: 0.3)
	ObstaclePercentage *float64 `json:"obstacle_percentage,omitempty" example:"0.3"`
}

// ToParams 지정되지 않은 필드를 기본값으로 채워 생성 파라미터로 변환합니다.
func (r *GridGenerationRequest) ToParams() generator.GridParams {
	p := generator.DefaultGridParams()
	if r == nil {
		return p
	}

	if r.Rows != nil {
		p.Rows = *r.Rows
	}
	if r.Cols != nil {
		p.Cols = *r.Cols
	}
	if r.ObstaclePercentage != nil {
		p.ObstaclePercentage = *r.ObstaclePercentage
	}

	return p
}
