package logc

import (
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"
)

// the text type is just a byte buffer
type text []byte

// APPEND

func (t *text) Write(p []byte) (int, error) {
	*t = append(*t, p...)
	return len(p), nil
}

func (t *text) appendByte(c byte) {
	*t = append(*t, c)
}

func (t *text) appendRune(r rune) {
	*t = utf8.AppendRune(*t, r)
}

func (t *text) appendString(s string) {
	*t = append(*t, s...)
}

// repeat a pad character n times
func (t *text) appendPad(n int, c byte) {
	for i := 0; i < n; i++ {
		*t = append(*t, c)
	}
}

func (t *text) appendInt(v int64) {
	*t = strconv.AppendInt(*t, v, 10)
}

func (t *text) appendUint(v uint64) {
	*t = strconv.AppendUint(*t, v, 10)
}

// 'f' so finite values always carry a fractional separator
func (t *text) appendFloat(v float64) {
	*t = strconv.AppendFloat(*t, v, 'f', -1, 64)
}

func (t *text) appendBool(v bool) {
	*t = strconv.AppendBool(*t, v)
}

func (t *text) appendTime(clock time.Time) {
	*t = clock.AppendFormat(*t, "15:04:05")
}

func (t *text) appendAnyf(arg any) {
	fmt.Fprintf(t, "%v", arg)
}

// take the assembled line, once
func (t *text) line() (msg string) {
	msg = string(*t)
	*t = (*t)[:0]
	return
}
