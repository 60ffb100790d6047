package uri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests exercise the combinator layer directly: it's part of this
// package's public surface in its own right, independent of the
// hand-rolled scanning parse.go uses internally for the hot path.

func schemeRule() Rule {
	return Seq(
		InSet(alphaSet),
		Repeat(0, -1, InSet(schemeTailSet)),
	)
}

func Test_Grammar_SchemeRule(t *testing.T) {
	t.Parallel()

	require.NoError(t, parseWhole("https", schemeRule()))
	require.NoError(t, parseWhole("a1-b.c", schemeRule()))

	err := parseWhole("1http", schemeRule())
	assert.Error(t, err)
}

func Test_Grammar_Alt_Opt_Repeat(t *testing.T) {
	t.Parallel()

	digits := Repeat(1, 3, InSet(digitSet))
	rule := Alt(
		Seq(Byte('-'), digits),
		digits,
	)

	assert.NoError(t, parseWhole("-12", rule))
	assert.NoError(t, parseWhole("123", rule))
	assert.Error(t, parseWhole("1234", rule)) // 4 digits exceeds max 3, leaves unconsumed input

	opt := Seq(Opt(Byte('v')), Repeat(1, -1, InSet(hexDigitSet)))
	assert.NoError(t, parseWhole("vFF", opt))
	assert.NoError(t, parseWhole("FF", opt))
}

func Test_Grammar_Lookahead(t *testing.T) {
	t.Parallel()

	rule := Seq(Lookahead(Byte('a')), Byte('a'), Byte('b'))
	assert.NoError(t, parseWhole("ab", rule))

	neg := Seq(NegLookahead(Byte('x')), Byte('a'))
	assert.NoError(t, parseWhole("a", neg))
	assert.Error(t, parseWhole("x", neg))
}

func Test_Grammar_PctEncodedAndEnd(t *testing.T) {
	t.Parallel()

	rule := Seq(PctEncoded, End)
	assert.NoError(t, parseWhole("%41", rule))
	assert.Error(t, parseWhole("%4", rule))
	assert.Error(t, parseWhole("%41x", rule))
}

func Test_Cursor_Basics(t *testing.T) {
	t.Parallel()

	c := NewCursor("abc")
	assert.False(t, c.Done())
	b, ok := c.Peek()
	require.True(t, ok)
	assert.Equal(t, byte('a'), b)

	c.Advance(3)
	assert.True(t, c.Done())
	_, ok = c.Peek()
	assert.False(t, ok)

	c.SetPos(0)
	assert.Equal(t, "abc", c.Remaining())
}
