package logc

import (
	"fmt"
	"log/slog"
	"reflect"
	"sort"
	"time"
)

// RENDER POLICY

// Renderable lets a caller-defined type control its logged text. Types
// without it fall back to [fmt.Stringer], then to %v.
type Renderable interface {
	RenderLog() string
}

// Sized lets a caller-defined type supply its own size estimate for the
// TypeSize annotation, in bytes.
type Sized interface {
	LogSize() int
}

// Renderer converts one value into display text, windowing long strings
// and large collections unless Verbose is set. A Logger owns its Renderer
// by value; replacing it drops the old one.
type Renderer struct {
	// MaxString is the length from which strings are windowed (default 50).
	MaxString int

	// MaxElems is the element count from which collections are windowed
	// (default 10).
	MaxElems int
}

// chars kept on each side of a windowed string
const strBorder = 8

func (r Renderer) maxString() int {
	if r.MaxString > 0 {
		return r.MaxString
	}
	return 50
}

func (r Renderer) maxElems() int {
	if r.MaxElems > 0 {
		return r.MaxElems
	}
	return 10
}

// VALUES

func (r Renderer) appendValue(t *text, arg any, f Format) {
	if arg == nil {
		t.appendString("<nil>")
		return
	}
	if rn, ok := arg.(Renderable); ok {
		t.appendString(rn.RenderLog())
		return
	}

	v := slog.AnyValue(arg)
	switch v.Kind() {
	case slog.KindString:
		r.appendLogString(t, v.String(), f)
	case slog.KindBool:
		t.appendBool(v.Bool())
	case slog.KindInt64:
		t.appendInt(v.Int64())
	case slog.KindUint64:
		t.appendUint(v.Uint64())
	case slog.KindFloat64:
		t.appendFloat(v.Float64())
	case slog.KindDuration:
		t.appendString(v.Duration().String())
	case slog.KindTime:
		t.appendString(v.Time().Format(time.RFC3339))
	case slog.KindLogValuer:
		r.appendValue(t, v.Resolve().Any(), f)
	default:
		r.appendAny(t, arg, f)
	}
}

func (r Renderer) appendAny(t *text, arg any, f Format) {
	rv := reflect.ValueOf(arg)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		r.appendSeq(t, rv, f)
	case reflect.Map:
		r.appendMap(t, rv, f)
	default:
		if s, ok := arg.(fmt.Stringer); ok {
			r.appendLogString(t, s.String(), f)
			return
		}
		if err, ok := arg.(error); ok {
			r.appendLogString(t, err.Error(), f)
			return
		}
		t.appendAnyf(arg)
	}
}

// plain renders arg in full, as the binder and container elements need it.
func (r Renderer) plain(arg any) string {
	var t text
	r.appendValue(&t, arg, Verbose)
	return t.line()
}

// STRINGS

// Short strings render in full. A windowed string keeps strBorder chars on
// each side; strings of 2*strBorder or fewer always take the full path.
func (r Renderer) appendLogString(t *text, s string, f Format) {
	if f.Has(Verbose) || len(s) < r.maxString() || len(s) <= 2*strBorder {
		t.appendString(s)
		return
	}

	t.appendString(`String: "`)
	t.appendString(s[:strBorder])
	t.appendString("... ")
	t.appendString(s[len(s)-strBorder:])
	t.appendByte('"')
}

// COLLECTIONS

func (r Renderer) appendSeq(t *text, v reflect.Value, f Format) {
	label := "slice"
	if v.Kind() == reflect.Array {
		label = "array"
	}

	size := v.Len()
	t.appendString(label)
	t.appendString(": [")

	if f.Has(Verbose) || size < r.maxElems() {
		for i := 0; i < size; i++ {
			if i > 0 {
				t.appendString(", ")
			}
			r.appendValue(t, v.Index(i).Interface(), Verbose)
		}
		t.appendByte(']')
		return
	}

	// head, gap, tail; the tail starts at size-half regardless of how many
	// elements the gap swallows
	half := r.maxElems() / 2
	for i := 0; i < half; i++ {
		if i > 0 {
			t.appendString(", ")
		}
		r.appendValue(t, v.Index(i).Interface(), Verbose)
	}
	t.appendString(" ... ")
	for i := size - half; i < size; i++ {
		if i > size-half {
			t.appendString(", ")
		}
		r.appendValue(t, v.Index(i).Interface(), Verbose)
	}
	t.appendByte(']')
}

// Maps window over key-value pairs like sequences do. Go maps have no
// iteration order, so pairs are sorted by rendered key to keep the output
// stable.
func (r Renderer) appendMap(t *text, v reflect.Value, f Format) {
	type pair struct {
		key, val string
	}

	pairs := make([]pair, 0, v.Len())
	it := v.MapRange()
	for it.Next() {
		pairs = append(pairs, pair{
			key: r.plain(it.Key().Interface()),
			val: r.plain(it.Value().Interface()),
		})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].key < pairs[j].key })

	appendPair := func(p pair) {
		t.appendString(p.key)
		t.appendString(": ")
		t.appendString(p.val)
	}

	size := len(pairs)
	t.appendString("map: {")

	if f.Has(Verbose) || size < r.maxElems() {
		for i, p := range pairs {
			if i > 0 {
				t.appendString(", ")
			}
			appendPair(p)
		}
		t.appendByte('}')
		return
	}

	half := r.maxElems() / 2
	for i := 0; i < half; i++ {
		if i > 0 {
			t.appendString(", ")
		}
		appendPair(pairs[i])
	}
	t.appendString(" ... ")
	for i := size - half; i < size; i++ {
		if i > size-half {
			t.appendString(", ")
		}
		appendPair(pairs[i])
	}
	t.appendByte('}')
}

// SIZE ESTIMATES

// sizeOf estimates the in-memory size of arg in bytes. A Sized value
// answers for itself; collections estimate count times element size;
// everything else reports its intrinsic type size.
func sizeOf(arg any) int {
	switch a := arg.(type) {
	case nil:
		return 0
	case Sized:
		return a.LogSize()
	case string:
		return len(a)
	case prerendered:
		return len(a)
	}

	rv := reflect.ValueOf(arg)
	switch rv.Kind() {
	case reflect.String:
		return rv.Len()
	case reflect.Slice, reflect.Array:
		return rv.Len() * int(rv.Type().Elem().Size())
	case reflect.Map:
		return rv.Len() * int(rv.Type().Key().Size()+rv.Type().Elem().Size())
	default:
		return int(rv.Type().Size())
	}
}

func appendSize(t *text, n int) {
	t.appendString(" (SIZE ~= ")
	t.appendInt(int64(n))
	t.appendString(" bytes)")
}
