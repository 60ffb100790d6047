package uri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Normalize_CaseAndPercentEncoding(t *testing.T) {
	t.Parallel()

	u, err := Parse("HTTP://User@EXAMPLE.com/a/./b/../c/%7ehello%41?q#f")
	require.NoError(t, err)

	n, err := u.Normalize()
	require.NoError(t, err)

	assert.Equal(t, "http", n.Scheme())
	assert.Equal(t, "example.com", n.EncodedHost())
	assert.Equal(t, "/a/c/~helloA", n.EncodedPath())
	assert.Equal(t, "q", n.EncodedQuery())
	assert.Equal(t, "f", n.EncodedFragment())
}

func Test_Normalize_DoesNotElideDefaultPort(t *testing.T) {
	t.Parallel()

	u, err := Parse("http://example.com:80/")
	require.NoError(t, err)

	n, err := u.Normalize()
	require.NoError(t, err)

	// Syntax-based normalization never elides a default port: RFC 3986
	// §6.2.2 never mentions scheme-specific port tables.
	assert.True(t, n.HasPort())
	assert.Equal(t, "80", n.Port())
}

func Test_Normalize_IsIdempotent(t *testing.T) {
	t.Parallel()

	u, err := Parse("http://EXAMPLE.com/a/b/")
	require.NoError(t, err)

	n1, err := u.Normalize()
	require.NoError(t, err)
	n2, err := n1.Normalize()
	require.NoError(t, err)

	assert.Equal(t, n1.String(), n2.String())
}
