package log

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureOutput 전역 로거의 출력을 버퍼로 돌리고, 테스트 종료 시 원래 상태로 복원합니다.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	std := StandardLogger()
	origOut, origFormatter, origLevel := std.Out, std.Formatter, std.GetLevel()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetFormatter(&JSONFormatter{})
	SetLevel(TraceLevel)

	t.Cleanup(func() {
		SetOutput(origOut)
		SetFormatter(origFormatter)
		SetLevel(origLevel)
	})

	return &buf
}

func TestWithComponent(t *testing.T) {
	buf := captureOutput(t)

	WithComponent("api.handler").Info("요청 처리")

	assert.Contains(t, buf.String(), `"component":"api.handler"`)
	assert.Contains(t, buf.String(), "요청 처리")
}

func TestWithComponentAndFields(t *testing.T) {
	buf := captureOutput(t)

	fields := Fields{"size": 20}
	WithComponentAndFields("generator", fields).Debug("배열 생성")

	assert.Contains(t, buf.String(), `"component":"generator"`)
	assert.Contains(t, buf.String(), `"size":20`)

	_, mutated := fields["component"]
	assert.False(t, mutated, "원본 필드 맵은 변경되지 않아야 합니다")
}

func TestWithFields(t *testing.T) {
	buf := captureOutput(t)

	WithFields(Fields{"rows": 15, "cols": 15}).Warn("격자 생성")

	assert.Contains(t, buf.String(), `"rows":15`)
	assert.Contains(t, buf.String(), `"level":"warning"`)
}

func TestSetDebugMode(t *testing.T) {
	orig := StandardLogger().GetLevel()
	t.Cleanup(func() { SetLevel(orig) })

	SetDebugMode(true)
	require.Equal(t, logrus.TraceLevel, StandardLogger().GetLevel())

	SetDebugMode(false)
	require.Equal(t, logrus.InfoLevel, StandardLogger().GetLevel())
}
