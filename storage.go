package uri

// URL storage & offset table.
//
// Rather than keep each component in its own string field, a URL holds a
// single contiguous buffer with an offset table of 8 monotonically
// non-decreasing positions that delimit the 8 components in a fixed order:
//
//	scheme | user | pass | host | port | path | query | fragment | end
//
// offsets[i] holds the END of component i (0-indexed in that order); the
// start of component 0 (scheme) is always 0, and the start of component i
// (i>0) is offsets[i-1]. offsets[7] is "end": the total length of the
// serialized URL, not counting the owning URL's trailing NUL.
type offsetTable [8]int

const (
	offScheme = iota
	offUser
	offPass
	offHost
	offPort
	offPath
	offQuery
	offFragment
)

func (o offsetTable) spanStart(i int) int {
	if i == 0 {
		return 0
	}
	return o[i-1]
}

func (o offsetTable) span(i int) (int, int) { return o.spanStart(i), o[i] }

func (o offsetTable) end() int { return o[offFragment] }

// componentFlags disambiguates "present but empty" from "absent", which a
// zero-length span alone cannot express: empty fragment vs no fragment,
// empty query vs no query, empty authority vs no authority, port
// present-but-empty vs no port.
type componentFlags struct {
	hasScheme    bool
	hasAuthority bool
	hasUserinfo  bool
	hasPassword  bool
	hasPort      bool
	hasQuery     bool
	hasFragment  bool
}

// meta is the parsed metadata that accompanies every URL/View: host
// variant and parsed IP bytes, scheme registry id, and presence flags.
// Segment/parameter counts and decoded lengths are derived on demand from
// the component spans in O(component length) rather than maintained as
// running counters through every mutation, trading a little redundant
// work for a much simpler invariant to maintain correctly — see
// DESIGN.md.
type meta struct {
	off    offsetTable
	flags  componentFlags
	host   Host
	scheme SchemeID
}

// components is implemented by both View (borrowed bytes) and URL (owned
// bytes) to share every read-only accessor.
type components interface {
	bytes() string
	metadata() meta
}

func spanText(c components, idx int) string {
	start, end := c.metadata().off.span(idx)
	return c.bytes()[start:end]
}

// checkInvariants re-validates the structural invariants of a URL's
// storage layout against a freshly assembled buffer+meta pair. It is
// called after every parse and after every mutation; a violation
// indicates an internal defect, not a user input problem, so it panics
// rather than returning an error.
func checkInvariants(buf string, m meta) {
	off := m.off
	prev := 0
	for i := 0; i < 8; i++ {
		if off[i] < prev {
			panic("uri: offset table is not monotonically non-decreasing")
		}
		prev = off[i]
	}
	if off.end() != len(buf) {
		panic("uri: end offset does not match buffer length")
	}

	scheme := buf[:off[offScheme]]
	if len(scheme) > 0 {
		if scheme[len(scheme)-1] != ':' {
			panic("uri: non-empty scheme span does not end with ':'")
		}
	} else if !m.flags.hasScheme {
		// fine: no scheme
	}

	userStart, userEnd := off.span(offUser)
	_, passEnd := off.span(offPass)
	if m.flags.hasAuthority {
		user := buf[userStart:userEnd]
		if len(user) < 2 || user[0] != '/' || user[1] != '/' {
			panic("uri: authority present but user span does not start with '//'")
		}
		pass := buf[userEnd:passEnd]
		if m.flags.hasUserinfo {
			if m.flags.hasPassword {
				if len(pass) < 2 || pass[0] != ':' || pass[len(pass)-1] != '@' {
					panic("uri: password span malformed")
				}
			} else if pass != "@" {
				panic("uri: userinfo without password must have a single '@' pass span")
			}
		} else if pass != "" {
			panic("uri: no userinfo but non-empty pass span")
		}
	}

	portStart, portEnd := off.span(offPort)
	if m.flags.hasPort {
		port := buf[portStart:portEnd]
		if len(port) == 0 || port[0] != ':' {
			panic("uri: port present but does not start with ':'")
		}
	}

	queryStart, queryEnd := off.span(offQuery)
	if m.flags.hasQuery {
		q := buf[queryStart:queryEnd]
		if len(q) == 0 || q[0] != '?' {
			panic("uri: query present but does not start with '?'")
		}
	}

	fragStart, fragEnd := off.span(offFragment)
	if m.flags.hasFragment {
		f := buf[fragStart:fragEnd]
		if len(f) == 0 || f[0] != '#' {
			panic("uri: fragment present but does not start with '#'")
		}
	}
}
