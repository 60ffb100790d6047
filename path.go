package uri

import "strings"

// Path productions:
//
//	path-abempty  = *( "/" segment )
//	path-absolute = "/" [ segment-nz *( "/" segment ) ]
//	path-noscheme = segment-nz-nc *( "/" segment )
//	path-rootless = segment-nz *( "/" segment )
//	path-empty    = 0<pchar>
//
// segment-nz-nc forbids ':' in the first segment of a scheme-less,
// authority-less reference, so that segment is never mistaken for a
// scheme.

// validatePath validates path bytes against pchar (plus '/' as the
// segment separator), and additionally forbids a leading "//" when no
// authority is present (that would be misparsed as one), and forbids a
// ':' in the first segment when hasScheme and hasAuthority are both
// false (segment-nz-nc).
func validatePath(path string, hasAuthority, hasScheme bool) error {
	if !hasAuthority && len(path) >= 2 && path[0] == '/' && path[1] == '/' {
		return errorsJoin(ErrInvalidPath, errSyntaxf("a path with no authority must not start with '//': %q", path))
	}

	segStart := 0
	first := true
	for i := 0; i <= len(path); i++ {
		if i == len(path) || path[i] == '/' {
			seg := path[segStart:i]
			if seg != "" {
				if _, err := NewPercentString(seg).Validate(pathSegmentSet); err != nil {
					return errorsJoin(ErrInvalidPath, err)
				}
				if first && !hasScheme && !hasAuthority && strings.ContainsRune(seg, ':') {
					return errorsJoin(ErrInvalidPath, errSyntaxf("first segment of a scheme-less, authority-less path must not contain ':': %q", seg))
				}
			}
			first = false
			segStart = i + 1
		}
	}
	return nil
}

// segmentCount returns the number of path segments: the
// leading '/' (if any) is part of the path, not a separator, and segments
// are split on '/'. An empty path has zero segments unless path-empty is
// considered a single empty segment by the caller's convention; this
// library counts "" as zero segments and "/" as one (empty) segment,
// matching the behavior implied by the worked example "/a//b" -> 3
// segments.
func segmentCount(path string) int {
	if path == "" {
		return 0
	}
	body := path
	if body[0] == '/' {
		body = body[1:]
	}
	return strings.Count(body, "/") + 1
}

// pathSegments splits path into its segments, following the same
// leading-slash convention as segmentCount.
func pathSegments(path string) []string {
	if path == "" {
		return nil
	}
	body := path
	if body[0] == '/' {
		body = body[1:]
	}
	return strings.Split(body, "/")
}

// joinSegments rebuilds a path from segments, honoring absolute.
func joinSegments(segments []string, absolute bool) string {
	joined := strings.Join(segments, "/")
	if absolute {
		return "/" + joined
	}
	return joined
}
