package logc

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClock() time.Time {
	return time.Date(2024, 1, 2, 12, 34, 56, 0, time.UTC)
}

func testLogger(opts ...Option) (*Logger, *bytes.Buffer) {
	var b bytes.Buffer
	opts = append([]Option{Colors(false), WithClock(testClock)}, opts...)
	return New("app", &b, opts...), &b
}

func TestFraming(t *testing.T) {
	t.Run("timestamp prefix", func(t *testing.T) {
		l, b := testLogger()
		require.NoError(t, l.Info("hi"))
		assert.Equal(t, "[12:34:56] hi\n", b.String())
	})

	t.Run("name and timestamp merge into one bracket", func(t *testing.T) {
		l, b := testLogger()
		require.NoError(t, l.Info("hi", Name|Timestamp|Newline))
		assert.Equal(t, "[app, 12:34:56] hi\n", b.String())
	})

	t.Run("name alone", func(t *testing.T) {
		l, b := testLogger()
		require.NoError(t, l.Info("hi", Name|Newline))
		assert.Equal(t, "[app] hi\n", b.String())
	})

	t.Run("size annotation", func(t *testing.T) {
		l, b := testLogger()
		require.NoError(t, l.Info(int64(42), TypeSize))
		assert.Equal(t, "[12:34:56] 42 (SIZE ~= 8 bytes)\n", b.String())
	})
}

func TestColorFraming(t *testing.T) {
	l, b := testLogger(Colors(true))
	l.SetOutput(Debug)

	require.NoError(t, l.Info("ok"))
	assert.Equal(t, "\x1b[32m[12:34:56] ok\x1b[0m\n", b.String())
	b.Reset()

	require.NoError(t, l.Warn("meh"))
	assert.Equal(t, "\x1b[33m[12:34:56] meh\x1b[0m\n", b.String())
	b.Reset()

	require.NoError(t, l.Error("bad"))
	assert.Equal(t, "\x1b[31m[12:34:56] bad\x1b[0m\n", b.String())
	b.Reset()

	require.NoError(t, l.Debug("dbg"))
	assert.True(t, strings.HasPrefix(b.String(), "\x1b[39m"))
}

func TestOutputGating(t *testing.T) {
	t.Run("a new logger starts at Default", func(t *testing.T) {
		l, b := testLogger()

		require.NoError(t, l.Debug("invisible"))
		require.NoError(t, l.Debugf("also {s}", "invisible"))
		assert.Zero(t, b.Len(), "debug must not write at Default")

		require.NoError(t, l.Info("visible"))
		assert.Equal(t, 1, bytes.Count(b.Bytes(), []byte{'\n'}))
	})

	t.Run("Debug opens the gate", func(t *testing.T) {
		l, b := testLogger()
		l.SetOutput(Debug)

		require.NoError(t, l.Debug("visible"))
		assert.Equal(t, 1, bytes.Count(b.Bytes(), []byte{'\n'}))
	})

	t.Run("Quiet closes it for everything", func(t *testing.T) {
		l, b := testLogger()
		l.SetOutput(Quiet)

		require.NoError(t, l.Error("nope"))
		require.NoError(t, l.Warnf("{d}", 1))
		require.NoError(t, l.Info("nope"))
		assert.Zero(t, b.Len())
	})
}

func TestTemplateCalls(t *testing.T) {
	l, b := testLogger()

	require.NoError(t, l.Infof("loaded {s} in {d} ms", "config.yml", 12))
	assert.Equal(t, "[12:34:56] loaded config.yml in 12 ms\n", b.String())
	b.Reset()

	require.NoError(t, l.ErrorfWith(Newline, "exit code {d}", 3))
	assert.Equal(t, "[12:34:56] exit code 3\n", b.String())
}

func TestTemplateErrorsDontWrite(t *testing.T) {
	l, b := testLogger()

	var cerr *ArgCountError
	require.ErrorAs(t, l.Errorf("{d} and {d}", 1), &cerr)
	assert.Zero(t, b.Len(), "argument mismatch must not touch the sink")

	var perr *ParseError
	require.ErrorAs(t, l.Infof("{z}", 1), &perr)
	assert.Zero(t, b.Len(), "parse errors must not touch the sink")
}

func TestTemplateOutputIsAlreadyVerbose(t *testing.T) {
	// the framer must not re-window binder output
	l, b := testLogger()
	long := strings.Repeat("x", 100)

	require.NoError(t, l.Infof("{s}", long))
	assert.Contains(t, b.String(), long)
	assert.NotContains(t, b.String(), "String:")
}

func TestDebugIsVerbose(t *testing.T) {
	l, b := testLogger()
	l.SetOutput(Debug)
	long := strings.Repeat("y", 100)

	require.NoError(t, l.Debug(long))
	assert.Contains(t, b.String(), long)
}

type failWriter struct{ n int }

func (w *failWriter) Write(p []byte) (int, error) {
	w.n++
	return 0, errors.New("sink full")
}

func TestSinkErrorPropagates(t *testing.T) {
	w := new(failWriter)
	l := New("app", w, Colors(false), WithClock(testClock))

	err := l.Info("hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sink full")

	// the lock survives the failure; rebinding the sink works
	var b bytes.Buffer
	l.SetWriter(&b)
	require.NoError(t, l.Info("hi"))
	assert.Equal(t, "[12:34:56] hi\n", b.String())
}

func TestSetters(t *testing.T) {
	l, b := testLogger()

	l.SetLevel(Debugging)
	require.NoError(t, l.Info("named"))
	assert.Contains(t, b.String(), "[app, 12:34:56]")
	b.Reset()

	l.SetFormat(Newline)
	require.NoError(t, l.Info("bare"))
	assert.Equal(t, "[12:34:56] bare\n", b.String())
	b.Reset()

	l.SetRenderer(Renderer{MaxElems: 4})
	require.NoError(t, l.Info([]int{0, 1, 2, 3}))
	assert.Contains(t, b.String(), "slice: [0, 1 ... 2, 3]")
}

func TestConcurrentCalls(t *testing.T) {
	const workers = 8
	const lines = 25

	l, b := testLogger()

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < lines; j++ {
				assert.NoError(t, l.Infof("worker {d} line {d}", id, j))
			}
		}(w)
	}
	wg.Wait()

	got := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	require.Len(t, got, workers*lines)

	shape := regexp.MustCompile(`^\[12:34:56\] worker \d+ line \d+$`)
	seen := map[string]int{}
	for _, line := range got {
		require.Regexp(t, shape, line, "interleaved or torn line")
		seen[line]++
	}

	for w := 0; w < workers; w++ {
		for j := 0; j < lines; j++ {
			assert.Equal(t, 1, seen[fmt.Sprintf("[12:34:56] worker %d line %d", w, j)])
		}
	}
}

func TestNilWriterDefaultsToStderr(t *testing.T) {
	l := New("app", nil)
	l.SetOutput(Quiet)
	require.NoError(t, l.Info("never written"))
}
