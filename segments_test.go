package uri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Segments_CountAndAccess(t *testing.T) {
	t.Parallel()

	u, err := Parse("http://example.com/a//b")
	require.NoError(t, err)

	assert.Equal(t, 3, u.SegmentCount())
	segs := u.Segments()
	assert.Equal(t, []string{"a", "", "b"}, segs)

	seg, ok := u.Segment(1)
	require.True(t, ok)
	assert.Equal(t, "", seg)

	_, ok = u.Segment(99)
	assert.False(t, ok)
}

func Test_Segments_InsertEraseReplace(t *testing.T) {
	t.Parallel()

	u, err := Parse("http://example.com/a/b/c")
	require.NoError(t, err)

	require.NoError(t, u.InsertSegment(1, "x"))
	assert.Equal(t, "/a/x/b/c", u.EncodedPath())

	require.NoError(t, u.EraseSegment(1))
	assert.Equal(t, "/a/b/c", u.EncodedPath())

	require.NoError(t, u.ReplaceSegment(0, "z"))
	assert.Equal(t, "/z/b/c", u.EncodedPath())

	require.NoError(t, u.ReplaceSegmentRange(0, 2, []string{"q", "r", "s"}))
	assert.Equal(t, "/q/r/s/c", u.EncodedPath())
}

func Test_Segments_PushPopClear(t *testing.T) {
	t.Parallel()

	u, err := Parse("http://example.com/a")
	require.NoError(t, err)

	require.NoError(t, u.PushBackSegment("b"))
	assert.Equal(t, "/a/b", u.EncodedPath())

	require.NoError(t, u.PopBackSegment())
	assert.Equal(t, "/a", u.EncodedPath())

	require.NoError(t, u.ClearSegments())
	assert.Equal(t, "/", u.EncodedPath())
}

func Test_Segments_OutOfRange(t *testing.T) {
	t.Parallel()

	u, err := Parse("http://example.com/a/b")
	require.NoError(t, err)

	err = u.EraseSegment(99)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func Test_NormalizedSegments_RemovesDotDot(t *testing.T) {
	t.Parallel()

	u, err := Parse("http://example.com/a/b/../../c")
	require.NoError(t, err)

	assert.Equal(t, []string{"c"}, u.NormalizedSegments())
}
