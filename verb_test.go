package logc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpecs(t *testing.T) {
	t.Run("bare kinds", func(t *testing.T) {
		specs, err := parseSpecs("{d} {f} {x} {s} {c} {b} {o}")
		require.NoError(t, err)
		require.Len(t, specs, 7)

		kinds := []byte{kindInt, kindFloat, kindHex, kindString, kindChar, kindBool, kindObject}
		for i, sp := range specs {
			assert.Equal(t, kinds[i], sp.kind)
			assert.Zero(t, sp.width)
			assert.False(t, sp.hasPlaces)
			assert.Less(t, sp.start, sp.end)
		}
	})

	t.Run("full form", func(t *testing.T) {
		specs, err := parseSpecs("{_>10.2f}")
		require.NoError(t, err)
		require.Len(t, specs, 1)

		sp := specs[0]
		assert.Equal(t, byte(kindFloat), sp.kind)
		assert.Equal(t, byte('_'), sp.leftPad)
		assert.Zero(t, sp.rightPad)
		assert.Equal(t, 10, sp.width)
		assert.Equal(t, 2, sp.places)
		assert.True(t, sp.hasPlaces)
		assert.Equal(t, 0, sp.start)
		assert.Equal(t, 9, sp.end)
	})

	t.Run("right pad", func(t *testing.T) {
		specs, err := parseSpecs("{0>8d< }")
		require.NoError(t, err)
		require.Len(t, specs, 1)

		sp := specs[0]
		assert.Equal(t, byte(kindInt), sp.kind)
		assert.Equal(t, byte('0'), sp.leftPad)
		assert.Equal(t, byte(' '), sp.rightPad)
		assert.Equal(t, 8, sp.width)
	})

	t.Run("offsets between literals", func(t *testing.T) {
		specs, err := parseSpecs("x{d}y{s}")
		require.NoError(t, err)
		require.Len(t, specs, 2)

		assert.Equal(t, 1, specs[0].start)
		assert.Equal(t, 4, specs[0].end)
		assert.Equal(t, 5, specs[1].start)
		assert.Equal(t, 8, specs[1].end)
	})

	t.Run("no placeholders", func(t *testing.T) {
		specs, err := parseSpecs("plain text, no braces")
		require.NoError(t, err)
		assert.Empty(t, specs)
	})
}

func TestParseErrors(t *testing.T) {
	t.Run("unknown specifier", func(t *testing.T) {
		_, err := parseSpecs("{q}")
		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, 1, perr.Offset)
		assert.Equal(t, byte('q'), perr.Char)
	})

	t.Run("missing close", func(t *testing.T) {
		_, err := parseSpecs("{5d")
		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, 3, perr.Offset)
	})

	t.Run("width caps at three digits", func(t *testing.T) {
		// the fourth digit is not consumed and is no kind character
		_, err := parseSpecs("{1000d}")
		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, 4, perr.Offset)
		assert.Equal(t, byte('0'), perr.Char)
	})

	t.Run("empty braces", func(t *testing.T) {
		_, err := parseSpecs("{}")
		assert.Error(t, err)
	})

	t.Run("truncated at end", func(t *testing.T) {
		for _, tpl := range []string{"{", "{5", "{5.", "{d<"} {
			_, err := parseSpecs(tpl)
			assert.Error(t, err, "template %q", tpl)
		}
	})

	t.Run("error text names offset and char", func(t *testing.T) {
		_, err := parseSpecs("ok {z}")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"z"`)
		assert.Contains(t, err.Error(), "offset 4")
	})
}
