package log

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failWriter struct {
	err error
}

func (w *failWriter) Write(p []byte) (int, error) {
	return 0, w.err
}

type errorFormatter struct{}

func (f *errorFormatter) Format(_ *Entry) ([]byte, error) {
	return nil, errors.New("formatting failed")
}

// safeBuffer Fire()는 RLock만 잡으므로 동시 기록에 안전한 버퍼가 필요합니다.
type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newTestHook() (*hook, *safeBuffer, *safeBuffer, *safeBuffer, *safeBuffer) {
	mainBuf, critBuf, verbBuf, consBuf := &safeBuffer{}, &safeBuffer{}, &safeBuffer{}, &safeBuffer{}

	h := &hook{
		mainWriter:     mainBuf,
		criticalWriter: critBuf,
		verboseWriter:  verbBuf,
		consoleWriter:  consBuf,
		formatter:      &TextFormatter{DisableTimestamp: true},
	}

	return h, mainBuf, critBuf, verbBuf, consBuf
}

func TestHook_Fire_Routing(t *testing.T) {
	tests := []struct {
		name         string
		level        Level
		wantMain     bool
		wantCritical bool
		wantVerbose  bool
	}{
		{"Error: main + critical", ErrorLevel, true, true, false},
		{"Warn: main", WarnLevel, true, false, false},
		{"Info: main", InfoLevel, true, false, false},
		{"Debug: verbose", DebugLevel, false, false, true},
		{"Trace: verbose", TraceLevel, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mainBuf, critBuf, verbBuf, consBuf := newTestHook()

			entry := &Entry{Logger: StandardLogger(), Level: tt.level, Message: "배열 생성"}
			require.NoError(t, h.Fire(entry))

			assert.Equal(t, tt.wantMain, mainBuf.String() != "", "main")
			assert.Equal(t, tt.wantCritical, critBuf.String() != "", "critical")
			assert.Equal(t, tt.wantVerbose, verbBuf.String() != "", "verbose")
			assert.Contains(t, consBuf.String(), "배열 생성", "console은 모든 레벨을 출력해야 합니다")
		})
	}
}

func TestHook_Fire_Errors(t *testing.T) {
	t.Run("포맷팅 실패 시 에러 반환", func(t *testing.T) {
		h, mainBuf, _, _, _ := newTestHook()
		h.formatter = &errorFormatter{}

		err := h.Fire(&Entry{Logger: StandardLogger(), Level: InfoLevel})
		assert.Error(t, err)
		assert.Empty(t, mainBuf.String())
	})

	t.Run("critical 쓰기 실패 시에도 main 기록은 계속", func(t *testing.T) {
		h, mainBuf, _, _, _ := newTestHook()
		writeErr := errors.New("disk full")
		h.criticalWriter = &failWriter{err: writeErr}

		err := h.Fire(&Entry{Logger: StandardLogger(), Level: ErrorLevel, Message: "실패"})
		assert.ErrorIs(t, err, writeErr)
		assert.Contains(t, mainBuf.String(), "실패")
	})

	t.Run("console 쓰기 실패는 무시", func(t *testing.T) {
		h, mainBuf, _, _, _ := newTestHook()
		h.consoleWriter = &failWriter{err: errors.New("broken pipe")}

		assert.NoError(t, h.Fire(&Entry{Logger: StandardLogger(), Level: InfoLevel, Message: "ok"}))
		assert.Contains(t, mainBuf.String(), "ok")
	})
}

func TestHook_Close(t *testing.T) {
	h, mainBuf, _, _, _ := newTestHook()

	require.NoError(t, h.Close())
	require.NoError(t, h.Fire(&Entry{Logger: StandardLogger(), Level: InfoLevel, Message: "closed"}))

	assert.Empty(t, mainBuf.String())
	assert.Equal(t, AllLevels, h.Levels())
}
