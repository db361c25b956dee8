package generator

import (
	"fmt"

	apperrors "github.com/darkkaiser/algoviz-server/internal/pkg/errors"
)

const (
	DefaultArraySize   = 20
	DefaultArrayMinVal = 1
	DefaultArrayMaxVal = 100
)

// ArrayParams 배열 생성 파라미터
type ArrayParams struct {
	Size   int
	MinVal int
	MaxVal int
}

// DefaultArrayParams 요청에서 값이 생략되었을 때 사용하는 파라미터를 반환합니다.
func DefaultArrayParams() ArrayParams {
	return ArrayParams{
		Size:   DefaultArraySize,
		MinVal: DefaultArrayMinVal,
		MaxVal: DefaultArrayMaxVal,
	}
}

func (g *Generator) validateArrayParams(p ArrayParams) error {
	if p.Size < 1 || p.Size > g.limits.MaxArraySize {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("배열 크기(size)는 1 이상 %d 이하이어야 합니다 (입력값: %d)", g.limits.MaxArraySize, p.Size))
	}
	if p.MinVal > p.MaxVal {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("최솟값(min_val)은 최댓값(max_val)보다 클 수 없습니다 (min_val: %d, max_val: %d)", p.MinVal, p.MaxVal))
	}
	return nil
}

// Array 길이 p.Size의 정수 배열을 생성합니다.
// 각 원소는 [p.MinVal, p.MaxVal] 범위에서 서로 독립적으로 균등하게 추출됩니다.
func (g *Generator) Array(p ArrayParams) ([]int, error) {
	if err := g.validateArrayParams(p); err != nil {
		return nil, err
	}

	arr := make([]int, p.Size)
	for i := range arr {
		arr[i] = g.intInRange(p.MinVal, p.MaxVal)
	}

	return arr, nil
}
