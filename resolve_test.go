package uri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Worked examples straight out of RFC 3986 §5.4, the base URI being
// "http://a/b/c/d;p?q" throughout.
func Test_Resolve_RFC3986Examples(t *testing.T) {
	t.Parallel()

	base, err := Parse("http://a/b/c/d;p?q")
	require.NoError(t, err)

	cases := []struct {
		ref, want string
	}{
		{"g:h", "g:h"},
		{"g", "http://a/b/c/g"},
		{"./g", "http://a/b/c/g"},
		{"g/", "http://a/b/c/g/"},
		{"/g", "http://a/g"},
		{"//g", "http://g"},
		{"?y", "http://a/b/c/d;p?y"},
		{"g?y", "http://a/b/c/g?y"},
		{"#s", "http://a/b/c/d;p?q#s"},
		{"g#s", "http://a/b/c/g#s"},
		{"g?y#s", "http://a/b/c/g?y#s"},
		{";x", "http://a/b/c/;x"},
		{"g;x", "http://a/b/c/g;x"},
		{"g;x?y#s", "http://a/b/c/g;x?y#s"},
		{"", "http://a/b/c/d;p?q"},
		{".", "http://a/b/c/"},
		{"./", "http://a/b/c/"},
		{"..", "http://a/b/"},
		{"../", "http://a/b/"},
		{"../g", "http://a/b/g"},
		{"../..", "http://a/"},
		{"../../", "http://a/"},
		{"../../g", "http://a/g"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.ref, func(t *testing.T) {
			t.Parallel()

			ref, err := ParseReference(tc.ref)
			require.NoError(t, err)

			got, err := Resolve(base, ref)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func Test_Resolve_Errata4547_NoAscentAboveRoot(t *testing.T) {
	t.Parallel()

	base, err := Parse("http://a/b/c/d;p?q")
	require.NoError(t, err)
	ref, err := ParseReference("../../../g")
	require.NoError(t, err)

	got, err := Resolve(base, ref)
	require.NoError(t, err)
	// Without errata 4547, naive dot-segment removal would climb past the
	// authority; with it applied, excess ".." segments at the root are
	// simply dropped.
	assert.Equal(t, "http://a/g", got.String())
}

func Test_Resolve_RequiresSchemeOnBase(t *testing.T) {
	t.Parallel()

	base, err := ParseReference("/b/c")
	require.NoError(t, err)
	ref, err := ParseReference("g")
	require.NoError(t, err)

	_, err = Resolve(base, ref)
	assert.ErrorIs(t, err, ErrNotABase)
}
