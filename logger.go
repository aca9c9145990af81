package logc

import (
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

// per-severity baselines, merged into every call
const (
	errorFormat = HighlightRed | Timestamp | Newline
	warnFormat  = HighlightYellow | Timestamp | Newline
	infoFormat  = HighlightGreen | Timestamp | Newline
	debugFormat = HighlightDefault | Timestamp | Verbose | Newline
)

// Logger is a named logging channel bound to one sink. A Logger may be
// shared between goroutines: rendering is pure, and writes to the sink are
// serialized by a lock held only for the framing-and-write step.
//
// The Logger owns its Renderer by value; the sink is borrowed, its
// lifetime is the caller's business.
type Logger struct {
	mu  sync.Mutex
	cfg config
}

type config struct {
	w      io.Writer
	name   string
	format Format
	out    OutputLevel
	r      Renderer
	styles Styles
	colors bool
	now    func() time.Time
}

// Option configures a Logger at construction.
type Option func(*Logger)

// WithFormat sets the default flags used by calls that pass none.
func WithFormat(f Format) Option {
	return func(l *Logger) { l.cfg.format = f }
}

// WithOutput sets the initial output level.
func WithOutput(o OutputLevel) Option {
	return func(l *Logger) { l.cfg.out = o }
}

// WithRenderer replaces the render policy.
func WithRenderer(r Renderer) Option {
	return func(l *Logger) { l.cfg.r = r }
}

// WithStyles replaces the highlight style table.
func WithStyles(st Styles) Option {
	return func(l *Logger) { l.cfg.styles = st }
}

// WithClock replaces the timestamp source. Useful in tests.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) { l.cfg.now = now }
}

// Colors forces highlight styling on or off, overriding terminal
// detection.
func Colors(on bool) Option {
	return func(l *Logger) { l.cfg.colors = on }
}

// New returns a named Logger writing to w. A nil w means os.Stderr.
// The output level starts at [Default]; highlight styling is enabled only
// when w is a terminal, unless [Colors] says otherwise.
func New(name string, w io.Writer, opts ...Option) *Logger {
	if w == nil {
		w = os.Stderr
	}
	l := &Logger{cfg: config{
		w:      w,
		name:   name,
		format: Standard,
		out:    Default,
		styles: DefaultStyles(),
		colors: isTerminal(w),
		now:    time.Now,
	}}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// SETTERS
//
// Configuration changes are rare-path: they take the same lock as writes,
// so in-flight lines finish against a consistent config.

// SetLevel resets the default flags to a predefined level such as
// [Standard] or [Debugging].
func (l *Logger) SetLevel(lvl Format) {
	l.mu.Lock()
	l.cfg.format = lvl
	l.mu.Unlock()
}

// SetFormat replaces the default flags.
func (l *Logger) SetFormat(f Format) {
	l.mu.Lock()
	l.cfg.format = f
	l.mu.Unlock()
}

// SetOutput moves the gate between Quiet, Default and Debug.
func (l *Logger) SetOutput(o OutputLevel) {
	l.mu.Lock()
	l.cfg.out = o
	l.mu.Unlock()
}

// SetWriter rebinds the sink and re-runs terminal detection for styling.
func (l *Logger) SetWriter(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	l.mu.Lock()
	l.cfg.w = w
	l.cfg.colors = isTerminal(w)
	l.mu.Unlock()
}

// SetRenderer replaces the owned render policy; the old one is dropped.
func (l *Logger) SetRenderer(r Renderer) {
	l.mu.Lock()
	l.cfg.r = r
	l.mu.Unlock()
}

// LEVELED LOGGING
//
// Each severity has a value form and two template forms. Value forms
// render v through the Renderer's windowing policy; template forms parse
// tpl, bind the arguments positionally, and frame the assembled text as a
// single pre-rendered object. Passing flags replaces the logger's default
// flags for that one call; the severity baseline is merged in either way.

// Error logs a single value at error severity.
func (l *Logger) Error(v any, flags ...Format) error {
	return l.log(v, errorFormat, flags, false)
}

// Errorf renders a template at error severity.
func (l *Logger) Errorf(tpl string, args ...any) error {
	return l.logf(tpl, args, nil, errorFormat, false)
}

// ErrorfWith is Errorf with explicit flags for this call.
func (l *Logger) ErrorfWith(f Format, tpl string, args ...any) error {
	return l.logf(tpl, args, []Format{f}, errorFormat, false)
}

// Warn logs a single value at warning severity.
func (l *Logger) Warn(v any, flags ...Format) error {
	return l.log(v, warnFormat, flags, false)
}

// Warnf renders a template at warning severity.
func (l *Logger) Warnf(tpl string, args ...any) error {
	return l.logf(tpl, args, nil, warnFormat, false)
}

// WarnfWith is Warnf with explicit flags for this call.
func (l *Logger) WarnfWith(f Format, tpl string, args ...any) error {
	return l.logf(tpl, args, []Format{f}, warnFormat, false)
}

// Info logs a single value at info severity.
func (l *Logger) Info(v any, flags ...Format) error {
	return l.log(v, infoFormat, flags, false)
}

// Infof renders a template at info severity.
func (l *Logger) Infof(tpl string, args ...any) error {
	return l.logf(tpl, args, nil, infoFormat, false)
}

// InfofWith is Infof with explicit flags for this call.
func (l *Logger) InfofWith(f Format, tpl string, args ...any) error {
	return l.logf(tpl, args, []Format{f}, infoFormat, false)
}

// Debug logs a single value at debug severity. It emits only when the
// output level is [Debug].
func (l *Logger) Debug(v any, flags ...Format) error {
	return l.log(v, debugFormat, flags, true)
}

// Debugf renders a template at debug severity.
func (l *Logger) Debugf(tpl string, args ...any) error {
	return l.logf(tpl, args, nil, debugFormat, true)
}

// DebugfWith is Debugf with explicit flags for this call.
func (l *Logger) DebugfWith(f Format, tpl string, args ...any) error {
	return l.logf(tpl, args, []Format{f}, debugFormat, true)
}

// PIPELINE

func (l *Logger) log(v any, base Format, flags []Format, debugOnly bool) error {
	cfg := l.config()
	if !emits(cfg.out, debugOnly) {
		return nil
	}

	f := mergeFlags(cfg.format, flags).With(base)

	var t text
	frame(&t, v, f, cfg)
	return l.write(t)
}

func (l *Logger) logf(tpl string, args []any, flags []Format, base Format, debugOnly bool) error {
	cfg := l.config()
	if !emits(cfg.out, debugOnly) {
		return nil
	}

	// parse and bind before taking the lock; errors never touch the sink
	pre, err := cfg.r.renderTemplate(tpl, args)
	if err != nil {
		return err
	}

	f := mergeFlags(cfg.format, flags).With(base)

	var t text
	frame(&t, pre, f, cfg)
	return l.write(t)
}

func (l *Logger) config() config {
	l.mu.Lock()
	cfg := l.cfg
	l.mu.Unlock()
	return cfg
}

func (l *Logger) write(t text) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, err := l.cfg.w.Write(t)
	return err
}

func emits(out OutputLevel, debugOnly bool) bool {
	if debugOnly {
		return out == Debug
	}
	return out != Quiet
}

func mergeFlags(def Format, flags []Format) Format {
	if len(flags) == 0 {
		return def
	}
	var f Format
	for _, fl := range flags {
		f = f.With(fl)
	}
	return f
}

// FRAMING

// frame wraps the rendered value with pen, name/timestamp prefix, size
// annotation and newline, per the active flags. Pre-rendered template
// output skips the renderer entirely; it is always treated as verbose.
func frame(t *text, v any, f Format, cfg config) {
	var p Pen
	if cfg.colors {
		p = cfg.styles.pick(f)
	}
	p.use(t)

	logName, logTime := f.Has(Name), f.Has(Timestamp)
	switch {
	case logName && logTime:
		t.appendByte('[')
		t.appendString(cfg.name)
		t.appendString(", ")
		t.appendTime(cfg.now())
		t.appendString("] ")
	case logName:
		t.appendByte('[')
		t.appendString(cfg.name)
		t.appendString("] ")
	case logTime:
		t.appendByte('[')
		t.appendTime(cfg.now())
		t.appendString("] ")
	}

	if pre, ok := v.(prerendered); ok {
		t.appendString(string(pre))
	} else {
		cfg.r.appendValue(t, v, f)
	}

	if f.Has(TypeSize) {
		appendSize(t, sizeOf(v))
	}

	p.drop(t)

	if f.Has(Newline) {
		t.appendByte('\n')
	}
}
