package logc

// FORMAT FLAGS

// Format is a set of independent presentation options for one log line.
// Options combine with [Format.With]; combining is commutative and
// idempotent, so a Format built in any order describes the same line.
type Format uint64

const (
	// Newline appends '\n' after the message.
	Newline Format = 1 << iota

	// Timestamp prefixes the message with the wall clock, hh:mm:ss.
	Timestamp

	// HighlightRed, HighlightGreen, HighlightYellow and HighlightDefault
	// wrap the line in a terminal style. When several are set, one wins:
	// green, then yellow, then red, then default.
	HighlightRed
	HighlightGreen
	HighlightYellow
	HighlightDefault

	// Verbose disables the renderer's size limits: long strings and large
	// collections print in full rather than windowed.
	Verbose

	// TypeSize appends an estimated byte size of the logged value.
	TypeSize

	// Name prefixes the message with the logger's name.
	Name
)

// Levels are predefined Formats used as a logger-wide default.
const (
	// Standard prints a timestamped line.
	Standard Format = Newline | Timestamp

	// Debugging additionally prints the logger name and size estimates,
	// with no size limits.
	Debugging Format = Newline | Timestamp | TypeSize | Name | Verbose
)

// With returns the union of f and g.
func (f Format) With(g Format) Format {
	return f | g
}

// Has reports whether any option of g is set in f.
func (f Format) Has(g Format) bool {
	return f&g != 0
}

// OUTPUT LEVELS

// OutputLevel gates which severities emit at all. It is independent of
// per-message Formats: a suppressed call is a no-op, not an error.
type OutputLevel int8

const (
	// Quiet suppresses every call.
	Quiet OutputLevel = iota - 1

	// Default emits error, warn and info; debug is suppressed.
	// This is the level a new Logger starts at.
	Default

	// Debug emits everything.
	Debug
)

func (o OutputLevel) String() string {
	switch o {
	case Quiet:
		return "quiet"
	case Default:
		return "default"
	case Debug:
		return "debug"
	}
	return "unknown"
}
