package uri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SetScheme_RemoveScheme_RoundTrip(t *testing.T) {
	t.Parallel()

	withScheme, err := Parse("s:x:y")
	require.NoError(t, err)
	assert.Equal(t, "s", withScheme.Scheme())
	assert.Equal(t, "x:y", withScheme.EncodedPath())

	require.NoError(t, withScheme.RemoveScheme())
	assert.False(t, withScheme.HasScheme())
	assert.Equal(t, "./x:y", withScheme.String())

	require.NoError(t, withScheme.SetScheme("s"))
	assert.Equal(t, "s:x:y", withScheme.String())
}

func Test_SetUserInfo_IntroducesAuthority(t *testing.T) {
	t.Parallel()

	u, err := Parse("http:/path")
	require.NoError(t, err)
	require.False(t, u.HasAuthority())

	require.NoError(t, u.SetUserInfo("alice"))
	assert.True(t, u.HasAuthority())
	assert.Equal(t, "alice", u.EncodedUser())
}

func Test_SetHost_SetPort(t *testing.T) {
	t.Parallel()

	u, err := Parse("http:/path")
	require.NoError(t, err)

	require.NoError(t, u.SetHost("example.com"))
	require.NoError(t, u.SetPort("443"))

	assert.Equal(t, "http://example.com:443/path", u.String())
}

func Test_RemoveAuthority_GuardsDoubleSlashPath(t *testing.T) {
	t.Parallel()

	u, err := Parse("http://example.com//weird/path")
	require.NoError(t, err)

	require.NoError(t, u.RemoveAuthority())
	assert.False(t, u.HasAuthority())
	assert.Equal(t, "http:/.//weird/path", u.String())
}

func Test_SetQuery_RemoveQuery(t *testing.T) {
	t.Parallel()

	u, err := Parse("http://example.com/path")
	require.NoError(t, err)

	require.NoError(t, u.SetQuery("a=b"))
	assert.True(t, u.HasQuery())
	assert.Equal(t, "a=b", u.EncodedQuery())

	require.NoError(t, u.RemoveQuery())
	assert.False(t, u.HasQuery())
	assert.Equal(t, "", u.EncodedQuery())
}

func Test_SetFragment_EmptyVsAbsent(t *testing.T) {
	t.Parallel()

	u, err := Parse("http://example.com/path")
	require.NoError(t, err)

	require.NoError(t, u.SetFragment(""))
	assert.True(t, u.HasFragment())
	assert.Equal(t, "http://example.com/path#", u.String())

	require.NoError(t, u.RemoveFragment())
	assert.False(t, u.HasFragment())
	assert.Equal(t, "http://example.com/path", u.String())
}

func Test_RemoveOrigin(t *testing.T) {
	t.Parallel()

	u, err := Parse("http://example.com/path?q=1")
	require.NoError(t, err)

	require.NoError(t, u.RemoveOrigin())
	assert.False(t, u.HasScheme())
	assert.False(t, u.HasAuthority())
	assert.Equal(t, "/path?q=1", u.String())
}
