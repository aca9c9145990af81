package logc

import "fmt"

// TEMPLATE GRAMMAR
//
// A placeholder is a {...} region describing how to render one positional
// argument, with printf/Python-like syntax:
//
//	{_>10.2f} -> left-padded w/ '_', 10 chars, 2 decimal place float
//	{0>8d< }  -> left-padded w/ '0', 8 chars, decimal, right-padded w/ ' '
//
// Inside the braces, in order:
//   - an optional pad character followed by '>' left-pads the argument
//   - an optional width (up to 3 digits) caps the rendered length
//   - '.' followed by up to 3 digits caps a float's decimal places
//   - exactly one kind character: d f x s c b o
//   - '<' followed by a pad character right-pads the argument
const (
	specOpen     = '{'
	specClose    = '}'
	specPadLeft  = '>'
	specPadRight = '<'
	specPlaces   = '.'
)

// placeholder kinds
const (
	kindInt    = 'd'
	kindFloat  = 'f'
	kindHex    = 'x'
	kindString = 's'
	kindChar   = 'c'
	kindBool   = 'b'
	kindObject = 'o'
)

// one parsed {...} occurrence. Specs live for a single call: parsed once,
// read by the binder, never shared or mutated after parsing.
type spec struct {
	kind              byte
	leftPad, rightPad byte

	// width 0 means no width policy; padding is then a no-op
	width  int
	places int

	// places only applies when the '.' was actually written
	hasPlaces bool

	// offsets of '{' and one past '}' in the template
	start, end int
}

// ParseError reports a malformed placeholder. It identifies the offending
// byte and its offset in the template; the logger and sink are untouched.
type ParseError struct {
	Offset int
	Char   byte
	Reason string
}

func (e *ParseError) Error() string {
	if e.Char == 0 {
		return fmt.Sprintf("logc: %s at offset %d", e.Reason, e.Offset)
	}
	return fmt.Sprintf("logc: %s %q at offset %d", e.Reason, e.Char, e.Offset)
}

// SCAN

// parseSpecs walks the template once, left to right, no backtracking.
// Text outside braces is left in place; the binder splices it back via
// the recorded offsets.
func parseSpecs(tpl string) ([]spec, error) {
	var specs []spec

	for i := 0; i < len(tpl); {
		if tpl[i] != specOpen {
			i++
			continue
		}

		sp := spec{start: i}
		i++

		// pad character before '>' left-pads
		if i+1 < len(tpl) && tpl[i+1] == specPadLeft {
			sp.leftPad = tpl[i]
			i += 2
		}

		sp.width = scanNumber(tpl, &i)

		if i < len(tpl) && tpl[i] == specPlaces {
			i++
			sp.places = scanNumber(tpl, &i)
			sp.hasPlaces = true
		}

		if i >= len(tpl) {
			return nil, &ParseError{Offset: i, Reason: "unterminated placeholder"}
		}

		switch tpl[i] {
		case kindInt, kindFloat, kindHex, kindString, kindChar, kindBool, kindObject:
			sp.kind = tpl[i]
		default:
			return nil, &ParseError{Offset: i, Char: tpl[i], Reason: "unknown format specifier"}
		}
		i++

		// pad character after '<' right-pads
		if i < len(tpl) && tpl[i] == specPadRight {
			i++
			if i >= len(tpl) {
				return nil, &ParseError{Offset: i, Reason: "unterminated placeholder"}
			}
			sp.rightPad = tpl[i]
			i++
		}

		if i >= len(tpl) || tpl[i] != specClose {
			if i >= len(tpl) {
				return nil, &ParseError{Offset: i, Reason: "unterminated placeholder"}
			}
			return nil, &ParseError{Offset: i, Char: tpl[i], Reason: "expected '}', found"}
		}
		i++
		sp.end = i

		specs = append(specs, sp)
	}

	return specs, nil
}

// scanNumber consumes up to 3 digits at *i. Values of 1000 or more are not
// representable; the fourth digit is left in place and trips the kind
// switch above.
func scanNumber(tpl string, i *int) (n int) {
	const maxDigits = 3
	for d := 0; d < maxDigits && *i < len(tpl) && isDigit(tpl[*i]); d++ {
		n = n*10 + int(tpl[*i]-'0')
		*i++
	}
	return n
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
