package log

// silentFormatter 아무런 동작도 하지 않는 포맷터입니다.
// 실제 포맷팅은 hook에서 한 번만 수행하므로, 기본 출력(io.Discard) 경로의 포맷팅 비용을 없애기 위해 사용합니다.
type silentFormatter struct{}

func (f *silentFormatter) Format(_ *Entry) ([]byte, error) {
	return nil, nil
}
