package logc

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// BINDING

// prerendered marks binder output. The framer treats it as already
// verbose, so the renderer's windowing never applies twice.
type prerendered string

// ArgCountError reports a template whose placeholder count does not match
// the number of arguments supplied. Nothing is written to the sink.
type ArgCountError struct {
	Placeholders, Args int
}

func (e *ArgCountError) Error() string {
	return fmt.Sprintf("logc: template has %d placeholders, got %d arguments",
		e.Placeholders, e.Args)
}

// renderTemplate parses tpl, binds placeholder i to args[i], and splices
// the literal spans back verbatim. Pure: every call gets its own spec list
// and buffer.
func (r Renderer) renderTemplate(tpl string, args []any) (prerendered, error) {
	specs, err := parseSpecs(tpl)
	if err != nil {
		return "", err
	}
	if len(specs) != len(args) {
		return "", &ArgCountError{Placeholders: len(specs), Args: len(args)}
	}

	var t text
	pos := 0
	for i, sp := range specs {
		t.appendString(tpl[pos:sp.start])
		r.appendBound(&t, args[i], sp)
		pos = sp.end
	}
	t.appendString(tpl[pos:])

	return prerendered(t.line()), nil
}

func (r Renderer) appendBound(t *text, arg any, sp spec) {
	var s string
	switch sp.kind {
	case kindFloat:
		s = truncDecimals(r.plain(arg), sp)
	case kindHex:
		s = r.hexText(arg)
	case kindBool:
		s = r.boolText(arg)
	case kindChar:
		s = r.charText(arg)
	default:
		// d, s, o: the plain textual form
		s = r.plain(arg)
	}
	appendPadded(t, s, sp)
}

// truncDecimals cuts (not rounds) fractional digits beyond sp.places.
// Text without a fractional separator is left alone, as if zero decimals.
func truncDecimals(s string, sp spec) string {
	if !sp.hasPlaces {
		return s
	}
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return s
	}
	if frac := len(s) - dot - 1; frac > sp.places {
		return s[:dot+1+sp.places]
	}
	return s
}

func (r Renderer) hexText(arg any) string {
	v := slog.AnyValue(arg)
	switch v.Kind() {
	case slog.KindInt64:
		return strconv.FormatInt(v.Int64(), 16)
	case slog.KindUint64:
		return strconv.FormatUint(v.Uint64(), 16)
	default:
		return fmt.Sprintf("%x", arg)
	}
}

// charText treats rune and byte arguments as characters, not code points.
func (r Renderer) charText(arg any) string {
	switch c := arg.(type) {
	case rune:
		return string(c)
	case byte:
		return string(rune(c))
	case string:
		return c
	}
	return r.plain(arg)
}

func (r Renderer) boolText(arg any) string {
	if b, ok := arg.(bool); ok {
		if b {
			return "true"
		}
		return "false"
	}
	if s := r.plain(arg); s == "1" || s == "true" {
		return "true"
	}
	return "false"
}

// PADDING

// Width 0 means no policy. Text longer than the width is cut to it, with
// no padding. Otherwise the leftover splits half right, remainder left
// (left favored on odd budgets); a side without a pad character yields its
// whole share to the other, so single-sided formats pad one side only.
func appendPadded(t *text, s string, sp spec) {
	if sp.width == 0 {
		t.appendString(s)
		return
	}
	if sp.width < len(s) {
		t.appendString(s[:sp.width])
		return
	}

	budget := sp.width - len(s)
	right := budget / 2
	left := budget - right
	if sp.rightPad == 0 {
		left = budget
	}
	if sp.leftPad == 0 {
		right = budget
	}

	if sp.leftPad != 0 {
		t.appendPad(left, sp.leftPad)
	}
	t.appendString(s)
	if sp.rightPad != 0 {
		t.appendPad(right, sp.rightPad)
	}
}

// STANDALONE FORMATTING

// Fmt renders a template with a zero-value Renderer, without a Logger.
func Fmt(tpl string, args ...any) (string, error) {
	p, err := Renderer{}.renderTemplate(tpl, args)
	return string(p), err
}

// WrapErr renders a template and returns an error wrapping err, matching
// [errors.Is]/[errors.As] behavior as with [fmt.Errorf]. With a nil err,
// the rendered text alone becomes the error.
func WrapErr(tpl string, err error, args ...any) error {
	msg, ferr := Fmt(tpl, args...)
	if ferr != nil {
		return ferr
	}
	if err == nil {
		return errors.New(msg)
	}
	if msg == "" {
		return err
	}
	return fmt.Errorf("%s: %w", msg, err)
}
