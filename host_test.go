package uri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseHost_RegName(t *testing.T) {
	t.Parallel()

	h, _, err := parseHost("example.com", "http")
	require.NoError(t, err)
	assert.Equal(t, HostName, h.Type())
	name, ok := h.Name()
	require.True(t, ok)
	assert.Equal(t, "example.com", name)
}

func Test_ParseHost_DNSValidationRejectsBadLabel(t *testing.T) {
	t.Parallel()

	_, _, err := parseHost("-bad-.com", "http")
	assert.Error(t, err)
}

func Test_ParseHost_NonDNSSchemeAllowsArbitraryRegName(t *testing.T) {
	t.Parallel()

	// "file" does not use DNS host validation, so underscores and other
	// reg-name-legal bytes that would fail a strict DNS label are fine.
	h, _, err := parseHost("_weird_host_", "file")
	require.NoError(t, err)
	assert.Equal(t, HostName, h.Type())
}

func Test_ParseHost_IPvFuture(t *testing.T) {
	t.Parallel()

	h, _, err := parseHost("[v1.fe80::1]", "http")
	require.NoError(t, err)
	assert.Equal(t, HostIPvFuture, h.Type())
	future, ok := h.IPvFuture()
	require.True(t, ok)
	assert.Equal(t, "1", future.Version)
	assert.Equal(t, "fe80::1", future.Address)
}

func Test_ParseHost_EmptyHost(t *testing.T) {
	t.Parallel()

	h, _, err := parseHost("", "http")
	require.NoError(t, err)
	assert.Equal(t, HostEmpty, h.Type())
}

func Test_ParseHost_UnterminatedIPLiteral(t *testing.T) {
	t.Parallel()

	_, _, err := parseHost("[::1", "http")
	assert.Error(t, err)
}
