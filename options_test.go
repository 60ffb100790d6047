package uri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NormalizeWith_PlainIsJustNormalize(t *testing.T) {
	t.Parallel()

	u, err := Parse("HTTP://Example.com/a/./b")
	require.NoError(t, err)

	n, err := u.NormalizeWith()
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/a/b", n.String())
}

func Test_NormalizeWith_IDNA(t *testing.T) {
	t.Parallel()

	u, err := Parse("http://xn--caf-dma.example/")
	require.NoError(t, err)

	n, err := u.NormalizeWith(WithIDNA(true))
	require.NoError(t, err)
	// xn--caf-dma decodes to "café"; ToASCII on an already-ASCII-compatible
	// name round-trips to the same Punycode label.
	assert.Equal(t, "xn--caf-dma.example", n.EncodedHost())
}

func Test_NormalizeWith_NFC(t *testing.T) {
	t.Parallel()

	// "e" + combining acute accent (U+0065 U+0301), not yet composed.
	u, err := Parse("http://example.com/caf%65%CC%81")
	require.NoError(t, err)

	n, err := u.NormalizeWith(WithUnicodeNFC(true))
	require.NoError(t, err)

	// after NFC composition, "é" becomes "é" (é)
	assert.Contains(t, n.DecodedPath(), "é")
}
