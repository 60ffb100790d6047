package uri

import "strings"

// Syntax-based normalization (RFC 3986 §6.2.2).
//
// Three steps are applied, in order:
//
//  1. case normalization: the scheme and a reg-name host are lowercased;
//     hex digits in percent-encoded triplets are uppercased.
//  2. percent-encoding normalization: a percent-encoded octet that decodes
//     to an unreserved character is replaced by that character literally.
//  3. path segment normalization: "." and ".." segments are removed via
//     remove_dot_segments (errata 4547 applied, as in resolve.go).
//
// Default-port elision (e.g. dropping ":80" on an "http" URL) is
// deliberately NOT performed here: RFC 3986 §6.2.2 doesn't call for it,
// and eliding a port changes the URL's reference identity rather than
// just its spelling (see DESIGN.md).

// Normalize returns a new URL with u's scheme, host, userinfo, path, query
// and fragment syntax-normalized per RFC 3986 §6.2.2. u is not mutated.
func (u *URL) Normalize() (*URL, error) {
	d := decompose(u)

	d.scheme = strings.ToLower(d.scheme)

	if d.pa.host.kind == HostName {
		d.pa.host.name = normalizePercentEncoding(strings.ToLower(d.pa.host.name), regNameSet)
	}
	if d.pa.hasUserinfo {
		d.pa.userinfo = normalizePercentEncoding(d.pa.userinfo, userInfoSet)
	}

	segs := removeDotSegments(pathSegments(d.path), strings.HasPrefix(d.path, "/"))
	for i, s := range segs {
		segs[i] = normalizePercentEncoding(s, pathSegmentSet)
	}
	d.path = joinSegments(segs, strings.HasPrefix(d.path, "/"))

	if d.hasQuery {
		d.query = normalizePercentEncoding(d.query, queryFragmentSet)
	}
	if d.hasFragment {
		d.fragment = normalizePercentEncoding(d.fragment, queryFragmentSet)
	}

	return d.rebuild()
}

// normalizePercentEncoding decodes any percent-encoded triplet whose
// decoded byte is unreserved and emits it literally; every other triplet
// is re-emitted with uppercase hex digits. Literal bytes are copied
// unchanged.
func normalizePercentEncoding(s string, allowed CharSet) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == '%' && i+2 < len(s) {
			decoded, n, err := percentTriplet(s, i)
			if err == nil {
				if unreservedSet.Contains(decoded) {
					b.WriteByte(decoded)
				} else {
					b.WriteByte('%')
					b.WriteByte(upperHex[decoded>>4])
					b.WriteByte(upperHex[decoded&0xF])
				}
				i += n
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}
