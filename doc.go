/*
Package logc emits human-readable, optionally colorized, leveled log lines
to an output stream.

Included are:
  - leveled entry points (error/warn/info/debug) with per-severity colors
  - a printf/Python-like template syntax for interpolating values
  - a windowing renderer that elides long strings and large collections
  - quick setup: one constructor, a handful of options and setters

# Hello, world

	package main

	import (
		"os"

		"github.com/fyndor/logc"
	)

	func main() {
		log := logc.New("app", os.Stderr)
		log.Info("ready")
	}

# Templates

Values interpolate into {...} placeholders positionally:

	log.Infof("loaded {s} in {.1f} ms", "config.yml", 12.34)

Placeholders carry a kind (d, f, x, s, c, b, o), an optional width, decimal
places for floats, and pad characters:

	{_>10.2f} -> left-padded w/ '_', 10 chars, 2 decimal place float
	{0>8d< }  -> left-padded w/ '0', 8 chars, decimal, right-padded w/ ' '

A template's placeholder count must equal its argument count; a mismatch or
a malformed placeholder is reported as an error and nothing is written.

# Windowing

Outside of templates, logged values pass through a [Renderer]. Long strings
and large collections print a head, an ellipsis, and a tail:

	log.Info(make([]int, 100))
	// slice: [0, 0, 0, 0, 0 ... 0, 0, 0, 0, 0]

The [Verbose] flag, set per call or via the [Debugging] level, prints
everything in full. Caller-defined types plug in through [Renderable] and
[Sized].

# Output levels

A Logger gates severities through an [OutputLevel]: [Quiet] emits nothing,
[Default] emits error/warn/info, [Debug] emits everything. The gate is
independent of per-line [Format] flags.

# testlog

The subpackage [testlog] captures log output for tests and asserts on
substrings of it.
*/
package logc
