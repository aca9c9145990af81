package logc

import "strings"

// COLORS / STYLES

// A Pen is an opaque terminal style marker: its text opens a style, and
// dropping it writes the reset sequence. An empty Pen writes nothing.
type Pen string

func (p Pen) use(t *text) {
	if len(p) > 0 {
		t.appendString(string(p))
	}
}

func (p Pen) drop(t *text) {
	if len(p) > 0 {
		t.appendString("\x1b[0m")
	}
}

// NewPen builds a Pen from space-separated tokens: a color name (black,
// red, green, yellow, blue, magenta, cyan, white), optionally preceded by
// "bg", and the effects "bright"/"bold" or "dim".
func NewPen(s string) Pen {
	var fg, bg byte
	var bright, dim bool
	var setBg bool

	for _, token := range strings.Fields(s) {
		var c byte
		switch token {
		case "bg":
			setBg = true
			continue
		case "fg":
			setBg = false
			continue
		case "black":
			c = '0'
		case "red":
			c = '1'
		case "green":
			c = '2'
		case "yellow":
			c = '3'
		case "blue":
			c = '4'
		case "magenta":
			c = '5'
		case "cyan":
			c = '6'
		case "white":
			c = '7'
		case "bright", "bold":
			bright, dim = true, false
			continue
		case "dim", "dark":
			bright, dim = false, true
			continue
		default:
			continue
		}
		if setBg {
			bg = c
		} else {
			fg = c
		}
	}

	var st []byte
	push := func(sub ...byte) {
		if len(st) == 0 {
			st = append(st, "\x1b["...)
		}
		st = append(st, sub...)
		st = append(st, ';')
	}

	if fg != 0 {
		push('3', fg)
	}
	if bg != 0 {
		push('4', bg)
	}
	if bright {
		push('1')
	}
	if dim {
		push('2')
	}

	if len(st) > 0 {
		st[len(st)-1] = 'm'
	}
	return Pen(st)
}

// Styles maps each highlight flag to a Pen. The zero value styles nothing.
type Styles struct {
	Red, Green, Yellow, Default Pen
}

// DefaultStyles returns the classic 8-color terminal mapping.
func DefaultStyles() Styles {
	return Styles{
		Red:     "\x1b[31m",
		Green:   "\x1b[32m",
		Yellow:  "\x1b[33m",
		Default: "\x1b[39m",
	}
}

// pick resolves the highlight for a line. When several highlight flags are
// set, the first match wins: green, yellow, red, default.
func (st Styles) pick(f Format) Pen {
	switch {
	case f.Has(HighlightGreen):
		return st.Green
	case f.Has(HighlightYellow):
		return st.Yellow
	case f.Has(HighlightRed):
		return st.Red
	case f.Has(HighlightDefault):
		return st.Default
	}
	return ""
}
