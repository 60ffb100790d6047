package uri

import "strings"

// Reference resolution (RFC 3986 §5.2.2–§5.2.4), with
// errata 4547 applied: remove_dot_segments never ascends above the root
// of an absolute path, so "http://a/b/../../c" resolves to "http://a/c"
// rather than climbing past the authority.
//
// base must be an absolute URL (it must have a scheme); ref may be any
// URI-reference. The result is always an absolute URL.

// Resolve resolves ref against base per RFC 3986 §5.2.2, returning a new
// absolute URL. Neither base nor ref is mutated.
func Resolve(base, ref *URL) (*URL, error) {
	if !base.HasScheme() {
		return nil, errorsJoin(ErrNotABase, errSyntaxf("resolve requires a base URL with a scheme"))
	}

	var t decomposed

	switch {
	case ref.HasScheme():
		t.scheme, t.hasScheme = ref.Scheme(), true
		t.hasAuthority = ref.HasAuthority()
		t.pa = authorityOf(ref)
		t.path = joinSegments(removeDotSegments(ref.Segments(), ref.IsPathAbsolute()), ref.IsPathAbsolute())
		t.query, t.hasQuery = ref.EncodedQuery(), ref.HasQuery()

	case ref.HasAuthority():
		t.hasAuthority = true
		t.pa = authorityOf(ref)
		t.path = joinSegments(removeDotSegments(ref.Segments(), ref.IsPathAbsolute()), ref.IsPathAbsolute())
		t.query, t.hasQuery = ref.EncodedQuery(), ref.HasQuery()
		t.scheme, t.hasScheme = base.Scheme(), true

	default:
		switch {
		case ref.EncodedPath() == "":
			t.path = base.EncodedPath()
			if ref.HasQuery() {
				t.query, t.hasQuery = ref.EncodedQuery(), true
			} else {
				t.query, t.hasQuery = base.EncodedQuery(), base.HasQuery()
			}
		case ref.IsPathAbsolute():
			t.path = joinSegments(removeDotSegments(ref.Segments(), true), true)
			t.query, t.hasQuery = ref.EncodedQuery(), ref.HasQuery()
		default:
			merged := mergePaths(base, ref.EncodedPath())
			t.path = joinSegments(removeDotSegments(pathSegments(merged), true), true)
			t.query, t.hasQuery = ref.EncodedQuery(), ref.HasQuery()
		}
		t.hasAuthority = base.HasAuthority()
		t.pa = authorityOf(base)
		t.scheme, t.hasScheme = base.Scheme(), true
	}

	t.fragment, t.hasFragment = ref.EncodedFragment(), ref.HasFragment()

	return t.rebuild()
}

// authorityOf extracts u's authority as a parsedAuthority, for reuse by
// the resolution algorithm above.
func authorityOf(u *URL) parsedAuthority {
	return parsedAuthority{
		userinfo:    u.EncodedUserInfo(),
		hasUserinfo: u.HasUserInfo(),
		host:        u.Host(),
		port:        u.Port(),
		hasPort:     u.HasPort(),
		hasColon:    u.HasPort(),
	}
}

// mergePaths implements RFC 3986 §5.2.3's merge routine: if base has an
// authority and an empty path, the result is "/" + ref's path; otherwise
// it is everything in base's path up to and including the last '/',
// followed by ref's path.
func mergePaths(base *URL, refPath string) string {
	if base.HasAuthority() && base.EncodedPath() == "" {
		return "/" + refPath
	}
	basePath := base.EncodedPath()
	if slash := strings.LastIndexByte(basePath, '/'); slash >= 0 {
		return basePath[:slash+1] + refPath
	}
	return refPath
}
