package uri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Params_AppendInsertReplaceErase(t *testing.T) {
	t.Parallel()

	u, err := Parse("http://example.com/?a=1")
	require.NoError(t, err)

	require.NoError(t, u.AppendParam(Param{Key: "b", Value: "2", HasValue: true}))
	assert.Equal(t, "a=1&b=2", u.EncodedQuery())

	require.NoError(t, u.InsertParam(1, Param{Key: "c", Value: "3", HasValue: true}))
	assert.Equal(t, "a=1&c=3&b=2", u.EncodedQuery())

	require.NoError(t, u.ReplaceParam(0, Param{Key: "a", Value: "9", HasValue: true}))
	assert.Equal(t, "a=9&c=3&b=2", u.EncodedQuery())

	require.NoError(t, u.EraseParam(1))
	assert.Equal(t, "a=9&b=2", u.EncodedQuery())
}

func Test_Params_SetAppendsWhenMissing(t *testing.T) {
	t.Parallel()

	u, err := Parse("http://example.com/?a=1")
	require.NoError(t, err)

	require.NoError(t, u.SetParam("a", "9", false))
	assert.Equal(t, "a=9", u.EncodedQuery())

	require.NoError(t, u.SetParam("B", "2", true))
	params := u.Params()
	require.Len(t, params, 2)
	assert.Equal(t, "B", params[1].Key)
	assert.Equal(t, "2", params[1].Value)
}

func Test_Params_SetErasesFurtherDuplicates(t *testing.T) {
	t.Parallel()

	u, err := Parse("http://example.com/?a=1&a=2&b=3&a=4")
	require.NoError(t, err)

	require.NoError(t, u.SetParam("a", "9", false))
	assert.Equal(t, "a=9&b=3", u.EncodedQuery())
}

func Test_Params_UnsetAndEraseByKey(t *testing.T) {
	t.Parallel()

	u, err := Parse("http://example.com/?a=1&A=2&b=3")
	require.NoError(t, err)

	require.NoError(t, u.UnsetParam(0))
	assert.Equal(t, "a&A=2&b=3", u.EncodedQuery())

	require.NoError(t, u.EraseParamsByKey("a", true))
	assert.Equal(t, "b=3", u.EncodedQuery())
}
