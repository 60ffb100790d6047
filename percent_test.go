package uri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_PercentString_Validate(t *testing.T) {
	t.Parallel()

	ps := NewPercentString("hello%20world")
	n, err := ps.Validate(unreservedSet)
	require.NoError(t, err)
	assert.Equal(t, len("hello world"), n)
}

func Test_PercentString_Validate_RejectsBareByte(t *testing.T) {
	t.Parallel()

	ps := NewPercentString("a b")
	_, err := ps.Validate(unreservedSet)
	assert.ErrorIs(t, err, ErrInvalidPercentEncoding)
}

func Test_PercentString_Validate_RejectsBadTriplet(t *testing.T) {
	t.Parallel()

	ps := NewPercentString("100%")
	_, err := ps.Validate(unreservedSet)
	assert.Error(t, err)

	ps = NewPercentString("100%zz")
	_, err = ps.Validate(unreservedSet)
	assert.Error(t, err)
}

func Test_PercentString_DecodeRoundTrip(t *testing.T) {
	t.Parallel()

	ps := NewPercentString("hello%20world%21")
	assert.Equal(t, "hello world!", ps.DecodedString())
	assert.True(t, ps.DecodedEqual("hello world!"))
	assert.False(t, ps.DecodedEqual("hello world"))
}

func Test_EncodeDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	raw := "hello world!"
	encoded := Encode(raw, unreservedSet)
	assert.Equal(t, "hello%20world%21", encoded)

	ps := NewPercentString(encoded)
	assert.True(t, ps.DecodedEqual(raw))
}
