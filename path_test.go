package uri

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ValidatePath_RejectsDoubleSlashWithoutAuthority(t *testing.T) {
	t.Parallel()

	err := validatePath("//evil", false, true)
	assert.Error(t, err)

	err = validatePath("//fine", true, true)
	assert.NoError(t, err)
}

func Test_ValidatePath_RejectsColonInFirstSegmentWithoutSchemeOrAuthority(t *testing.T) {
	t.Parallel()

	err := validatePath("a:b/c", false, false)
	assert.Error(t, err)

	// a scheme or an authority removes the ambiguity
	assert.NoError(t, validatePath("a:b/c", false, true))
	assert.NoError(t, validatePath("a:b/c", true, false))
}

func Test_SegmentCount_And_PathSegments(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, segmentCount(""))
	assert.Equal(t, 1, segmentCount("/"))
	assert.Equal(t, 3, segmentCount("/a//b"))

	assert.Equal(t, []string{"a", "", "b"}, pathSegments("/a//b"))
}

func Test_JoinSegments(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/a/b", joinSegments([]string{"a", "b"}, true))
	assert.Equal(t, "a/b", joinSegments([]string{"a", "b"}, false))
}
