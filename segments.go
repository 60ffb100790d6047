package uri

// Path-segments editor. Every mutating method re-derives
// the path string from the edited segment slice and calls SetPath, so all
// the validation and offset-table bookkeeping stays centralized in
// mutate.go.

// Segments returns the ordered, percent-encoded path segments, following
// the same leading-slash convention as segmentCount/pathSegments.
func (u *URL) Segments() []string { return pathSegments(u.EncodedPath()) }

// Segment returns the segment at pos, or ("", false) if pos is out of
// range.
func (u *URL) Segment(pos int) (string, bool) {
	segs := u.Segments()
	if pos < 0 || pos >= len(segs) {
		return "", false
	}
	return segs[pos], true
}

func (u *URL) setSegments(segs []string) error {
	return u.SetPath(joinSegments(segs, u.IsPathAbsolute()))
}

// InsertSegment inserts segment at pos, shifting later segments right.
func (u *URL) InsertSegment(pos int, segment string) error {
	return u.InsertSegments(pos, []string{segment})
}

// InsertSegments inserts a run of segments at pos, shifting later segments
// right.
func (u *URL) InsertSegments(pos int, segments []string) error {
	segs := u.Segments()
	if pos < 0 || pos > len(segs) {
		return errorsJoin(ErrOutOfRange, errSyntaxf("segment position %d out of range [0,%d]", pos, len(segs)))
	}
	out := make([]string, 0, len(segs)+len(segments))
	out = append(out, segs[:pos]...)
	out = append(out, segments...)
	out = append(out, segs[pos:]...)
	return u.setSegments(out)
}

// EraseSegment removes the segment at pos.
func (u *URL) EraseSegment(pos int) error {
	return u.EraseSegmentRange(pos, pos+1)
}

// EraseSegmentRange removes segments in [from, to).
func (u *URL) EraseSegmentRange(from, to int) error {
	segs := u.Segments()
	if from < 0 || to > len(segs) || from > to {
		return errorsJoin(ErrOutOfRange, errSyntaxf("segment range [%d,%d) out of bounds for length %d", from, to, len(segs)))
	}
	out := make([]string, 0, len(segs)-(to-from))
	out = append(out, segs[:from]...)
	out = append(out, segs[to:]...)
	return u.setSegments(out)
}

// ReplaceSegment overwrites the segment at pos.
func (u *URL) ReplaceSegment(pos int, segment string) error {
	return u.ReplaceSegmentRange(pos, pos+1, []string{segment})
}

// ReplaceSegmentRange overwrites segments in [from, to) with replacements.
func (u *URL) ReplaceSegmentRange(from, to int, replacements []string) error {
	segs := u.Segments()
	if from < 0 || to > len(segs) || from > to {
		return errorsJoin(ErrOutOfRange, errSyntaxf("segment range [%d,%d) out of bounds for length %d", from, to, len(segs)))
	}
	out := make([]string, 0, len(segs)-(to-from)+len(replacements))
	out = append(out, segs[:from]...)
	out = append(out, replacements...)
	out = append(out, segs[to:]...)
	return u.setSegments(out)
}

// PushBackSegment appends a segment to the end of the path.
func (u *URL) PushBackSegment(segment string) error {
	segs := u.Segments()
	return u.setSegments(append(segs, segment))
}

// PopBackSegment removes the last segment. It is a no-op error if the path
// has no segments.
func (u *URL) PopBackSegment() error {
	segs := u.Segments()
	if len(segs) == 0 {
		return errorsJoin(ErrOutOfRange, errSyntaxf("path has no segments to pop"))
	}
	return u.setSegments(segs[:len(segs)-1])
}

// ClearSegments empties the path down to either "" or "/" depending on
// whether the path was absolute.
func (u *URL) ClearSegments() error {
	if u.IsPathAbsolute() {
		return u.SetPath("/")
	}
	return u.SetPath("")
}

// NormalizedSegments returns the segments with "." and ".." elements
// removed per RFC 3986 §5.2.4's remove_dot_segments, without touching any
// other component. It does not mutate u.
func (u *URL) NormalizedSegments() []string {
	return removeDotSegments(u.Segments(), u.IsPathAbsolute())
}

// removeDotSegments implements RFC 3986 §5.2.4 over a pre-split segment
// list, with errata 4547 applied: a ".." with nothing left to pop in an
// absolute path is dropped rather than kept, and one kept in a relative
// path is never popped by a later "..". When the last input segment
// was itself "." or "..", that segment contributed a trailing slash to
// the original path text with no following segment text of its own; since
// a bare segment list can't otherwise distinguish "ends in a dot segment"
// from "ends in a real segment", a trailing empty segment is appended to
// carry that slash forward (unless one is already present).
func removeDotSegments(segs []string, absolute bool) []string {
	out := make([]string, 0, len(segs))
	for _, s := range segs {
		switch s {
		case ".":
			continue
		case "..":
			if len(out) > 0 && out[len(out)-1] != ".." {
				out = out[:len(out)-1]
			} else if !absolute {
				out = append(out, s)
			}
		default:
			out = append(out, s)
		}
	}
	if n := len(segs); n > 0 && isDotSegment(segs[n-1]) {
		if len(out) == 0 || out[len(out)-1] != "" {
			out = append(out, "")
		}
	}
	return out
}

func isDotSegment(s string) bool { return s == "." || s == ".." }
