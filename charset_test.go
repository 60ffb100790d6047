package uri

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_CharSet_Contains(t *testing.T) {
	t.Parallel()

	assert.True(t, unreservedSet.Contains('a'))
	assert.True(t, unreservedSet.Contains('9'))
	assert.True(t, unreservedSet.Contains('-'))
	assert.False(t, unreservedSet.Contains(' '))
	assert.False(t, unreservedSet.Contains('!'))

	assert.True(t, subDelimsSet.Contains('!'))
	assert.True(t, genDelimsSet.Contains(':'))
}

func Test_CharSet_FindFirst(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, unreservedSet.FindFirstNotIn("abcde f"))
	assert.Equal(t, len("abcde"), unreservedSet.FindFirstNotIn("abcde"))

	assert.Equal(t, 3, genDelimsSet.FindFirstIn("abc:def"))
	assert.Equal(t, -1, genDelimsSet.FindFirstIn("abcdef"))
}

func Test_CharSet_Union_With(t *testing.T) {
	t.Parallel()

	cs := newCharSet('a', 'b').union(newCharSet('c'))
	assert.True(t, cs.Contains('a'))
	assert.True(t, cs.Contains('c'))
	assert.False(t, cs.Contains('d'))

	cs2 := cs.with('d')
	assert.True(t, cs2.Contains('d'))
	assert.False(t, cs.Contains('d')) // original unaffected
}
