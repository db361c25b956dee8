package request

import (
	"encoding/json"
	"testing"

	"github.com/darkkaiser/algoviz-server/internal/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayGenerationRequest_ToParams(t *testing.T) {
	tests := []struct {
		name string
		body string
		want generator.ArrayParams
	}{
		{"빈 객체는 기본값", `{}`, generator.ArrayParams{Size: 20, MinVal: 1, MaxVal: 100}},
		{"null 필드는 기본값", `{"size": null, "min_val": 5}`, generator.ArrayParams{Size: 20, MinVal: 5, MaxVal: 100}},
		{"모든 필드 지정", `{"size": 5, "min_val": 10, "max_val": 10}`, generator.ArrayParams{Size: 5, MinVal: 10, MaxVal: 10}},
		{"0도 명시적인 값", `{"size": 0}`, generator.ArrayParams{Size: 0, MinVal: 1, MaxVal: 100}},
		{"음수 범위", `{"min_val": -10, "max_val": -1}`, generator.ArrayParams{Size: 20, MinVal: -10, MaxVal: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req ArrayGenerationRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			assert.Equal(t, tt.want, req.ToParams())
		})
	}

	t.Run("nil 요청은 기본값", func(t *testing.T) {
		var req *ArrayGenerationRequest
		assert.Equal(t, generator.DefaultArrayParams(), req.ToParams())
	})
}

func TestGridGenerationRequest_ToParams(t *testing.T) {
	tests := []struct {
		name string
		body string
		want generator.GridParams
	}{
		{"빈 객체는 기본값", `{}`, generator.GridParams{Rows: 15, Cols: 15, ObstaclePercentage: 0.3}},
		{"비율 0 지정", `{"rows": 2, "cols": 2, "obstacle_percentage": 0}`, generator.GridParams{Rows: 2, Cols: 2, ObstaclePercentage: 0}},
		{"정수 비율", `{"obstacle_percentage": 1}`, generator.GridParams{Rows: 15, Cols: 15, ObstaclePercentage: 1}},
		{"null 필드는 기본값", `{"rows": null, "cols": 30}`, generator.GridParams{Rows: 15, Cols: 30, ObstaclePercentage: 0.3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req GridGenerationRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			assert.Equal(t, tt.want, req.ToParams())
		})
	}
}

func TestGenerationRequest_WrongTypes(t *testing.T) {
	var arr ArrayGenerationRequest
	assert.Error(t, json.Unmarshal([]byte(`{"size": "ten"}`), &arr))
	assert.Error(t, json.Unmarshal([]byte(`{"size": 2.5}`), &arr))

	var grid GridGenerationRequest
	assert.Error(t, json.Unmarshal([]byte(`{"obstacle_percentage": "high"}`), &grid))
}
