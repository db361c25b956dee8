package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetGlobalLogger setupInternal()이 변경한 전역 로거 상태를 테스트 종료 시 되돌립니다.
func resetGlobalLogger(t *testing.T) {
	t.Helper()

	std := StandardLogger()
	origOut, origFormatter, origLevel, origCaller := std.Out, std.Formatter, std.GetLevel(), std.ReportCaller

	t.Cleanup(func() {
		std.ReplaceHooks(make(logrus.LevelHooks))
		SetOutput(origOut)
		SetFormatter(origFormatter)
		SetLevel(origLevel)
		std.SetReportCaller(origCaller)
	})
}

func TestSetupInternal(t *testing.T) {
	resetGlobalLogger(t)

	dir := filepath.Join(t.TempDir(), "logs")
	opts := Options{
		Name:              "algoviz-test",
		Dir:               dir,
		Level:             DebugLevel,
		EnableCriticalLog: true,
		EnableVerboseLog:  true,
	}

	c, err := setupInternal(opts)
	require.NoError(t, err)

	WithComponent("test").Info("메인 로그")
	WithComponent("test").Error("치명 로그")
	WithComponent("test").Debug("상세 로그")

	require.NoError(t, c.Close())

	mainLog, err := os.ReadFile(filepath.Join(dir, "algoviz-test.log"))
	require.NoError(t, err)
	assert.Contains(t, string(mainLog), "메인 로그")
	assert.Contains(t, string(mainLog), "치명 로그")
	assert.NotContains(t, string(mainLog), "상세 로그")

	criticalLog, err := os.ReadFile(filepath.Join(dir, "algoviz-test.critical.log"))
	require.NoError(t, err)
	assert.Contains(t, string(criticalLog), "치명 로그")
	assert.NotContains(t, string(criticalLog), "메인 로그")

	verboseLog, err := os.ReadFile(filepath.Join(dir, "algoviz-test.verbose.log"))
	require.NoError(t, err)
	assert.Contains(t, string(verboseLog), "상세 로그")

	// Close 이후의 로그는 기록되지 않아야 합니다.
	WithComponent("test").Info("닫힌 뒤 로그")
	mainLog, _ = os.ReadFile(filepath.Join(dir, "algoviz-test.log"))
	assert.NotContains(t, string(mainLog), "닫힌 뒤 로그")
}

func TestSetupInternal_InvalidOptions(t *testing.T) {
	resetGlobalLogger(t)

	c, err := setupInternal(Options{})
	assert.Error(t, err)
	assert.Nil(t, c)
}
