// Package testlog captures logc output for tests.
//
// A [Buffer] is an in-memory sink safe for concurrent writes. Substrings
// returns a ready-made Logger and a "want" function asserting on captured
// output.
package testlog

import (
	"strings"
	"sync"
	"testing"

	"github.com/fyndor/logc"
)

// Buffer is an in-memory sink. The zero value is ready to use and safe for
// concurrent writers.
type Buffer struct {
	mu sync.Mutex
	b  []byte
}

func (b *Buffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	b.b = append(b.b, p...)
	b.mu.Unlock()
	return len(p), nil
}

// String returns everything captured so far.
func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return string(b.b)
}

// Lines splits the captured output on newlines, dropping a trailing empty
// line.
func (b *Buffer) Lines() []string {
	s := b.String()
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Reset discards captured output.
func (b *Buffer) Reset() {
	b.mu.Lock()
	b.b = b.b[:0]
	b.mu.Unlock()
}

// Substrings returns a Logger writing into a capture buffer, and a "want"
// function. Calling want tests whether the buffer contains the given
// string; if it does not, t.Errorf is called. Calling want clears the
// buffer.
//
// The logger has colors off and a fixed clock, so output is stable.
func Substrings(t *testing.T, opts ...logc.Option) (*logc.Logger, func(string)) {
	b := new(Buffer)

	want := func(wantString string) {
		t.Helper()
		if !strings.Contains(b.String(), wantString) {
			t.Errorf("\n\texpected %s\n\tin %s", wantString, b.String())
		}
		b.Reset()
	}

	opts = append([]logc.Option{logc.Colors(false)}, opts...)
	return logc.New("test", b, opts...), want
}
