package uri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SplitAuthority_Full(t *testing.T) {
	t.Parallel()

	pa, err := splitAuthority("user:pass@example.com:8080", "http")
	require.NoError(t, err)

	assert.True(t, pa.hasUserinfo)
	assert.Equal(t, "user:pass", pa.userinfo)
	assert.Equal(t, HostName, pa.host.Type())
	assert.True(t, pa.hasPort)
	assert.Equal(t, "8080", pa.port)
}

func Test_SplitAuthority_LastAtSignWins(t *testing.T) {
	t.Parallel()

	// The split happens at the last '@', so the userinfo is "a@b"; a raw
	// '@' is not allowed in userinfo, so that userinfo is then rejected.
	pa, err := splitAuthority("a@b@example.com", "http")
	require.Error(t, err)
	assert.Equal(t, "a@b", pa.userinfo)
}

func Test_SplitAuthority_BracketedIPv6WithPort(t *testing.T) {
	t.Parallel()

	pa, err := splitAuthority("[::1]:8080", "http")
	require.NoError(t, err)
	assert.Equal(t, HostIPv6, pa.host.Type())
	assert.Equal(t, "8080", pa.port)
}

func Test_SplitUserInfo(t *testing.T) {
	t.Parallel()

	user, pass, hasPass := splitUserInfo("user:pa:ss")
	assert.Equal(t, "user", user)
	assert.True(t, hasPass)
	assert.Equal(t, "pa:ss", pass)

	user, _, hasPass = splitUserInfo("justauser")
	assert.Equal(t, "justauser", user)
	assert.False(t, hasPass)
}

func Test_PortNumber(t *testing.T) {
	t.Parallel()

	v, ok := portNumber("8080")
	assert.True(t, ok)
	assert.EqualValues(t, 8080, v)

	_, ok = portNumber("")
	assert.False(t, ok)

	_, ok = portNumber("99999")
	assert.False(t, ok)
}
