package uri

// View is a borrowed, read-only reference over an immutable byte buffer,
// plus the offset table and parsed metadata. Since Go strings are
// immutable, a View stays valid for as long as it is reachable; mutating
// a URL it was taken from replaces that URL's string and leaves the View
// unchanged.
type View struct {
	buf string
	m   meta
}

func (v View) bytes() string  { return v.buf }
func (v View) metadata() meta { return v.m }

// String returns the exact serialized form of the view.
func (v View) String() string { return v.buf }

// ParseURIView parses raw as a URI (scheme required) into a read-only View.
func ParseURIView(raw string) (View, error) {
	buf, m, err := parseURI(raw)
	if err != nil {
		return View{}, err
	}
	return View{buf: buf, m: m}, nil
}

// ParseURIReferenceView parses raw as a URI-reference (scheme optional)
// into a read-only View.
func ParseURIReferenceView(raw string) (View, error) {
	buf, m, err := parseURIReference(raw)
	if err != nil {
		return View{}, err
	}
	return View{buf: buf, m: m}, nil
}

// ParseRelativeRefView parses raw as a relative-ref (scheme forbidden)
// into a read-only View.
func ParseRelativeRefView(raw string) (View, error) {
	buf, m, err := parseRelativeRef(raw)
	if err != nil {
		return View{}, err
	}
	return View{buf: buf, m: m}, nil
}

// ParseAbsoluteURIView parses raw as an absolute-URI (scheme required, no
// fragment) into a read-only View.
func ParseAbsoluteURIView(raw string) (View, error) {
	buf, m, err := parseAbsoluteURI(raw)
	if err != nil {
		return View{}, err
	}
	return View{buf: buf, m: m}, nil
}

// ParseAuthorityView parses raw as a bare authority into a read-only View.
func ParseAuthorityView(raw string) (View, error) {
	buf, m, err := parseAuthorityOnly(raw)
	if err != nil {
		return View{}, err
	}
	return View{buf: buf, m: m}, nil
}

// Shared read-only accessors, implemented once against the components
// interface and exposed as methods on both View and URL via thin
// forwarding wrappers (see url.go).

func hasScheme(c components) bool    { return c.metadata().flags.hasScheme }
func schemeText(c components) string { return spanText(c, offScheme) }
func schemeID(c components) SchemeID { return c.metadata().scheme }

func hasAuthority(c components) bool { return c.metadata().flags.hasAuthority }

func encodedAuthority(c components) string {
	m := c.metadata()
	start := m.off.spanStart(offUser)
	end := m.off[offPort]
	return c.bytes()[start:end]
}

func hasUserinfo(c components) bool { return c.metadata().flags.hasUserinfo }

func encodedUserinfo(c components) string {
	m := c.metadata()
	if !m.flags.hasUserinfo {
		return ""
	}
	start := m.off.spanStart(offUser) + 2 // skip "//"
	end := m.off[offPass]
	text := c.bytes()[start:end]
	if len(text) > 0 && text[len(text)-1] == '@' {
		text = text[:len(text)-1]
	}
	return text
}

func encodedUser(c components) string {
	u, _, _ := splitUserInfo(encodedUserinfo(c))
	return u
}

func hasPassword(c components) bool { return c.metadata().flags.hasPassword }

func encodedPassword(c components) string {
	_, p, has := splitUserInfo(encodedUserinfo(c))
	if !has {
		return ""
	}
	return p
}

func hostType(c components) HostType { return c.metadata().host.kind }
func hostValue(c components) Host    { return c.metadata().host }

func encodedHost(c components) string { return spanText(c, offHost) }

func hasPort(c components) bool { return c.metadata().flags.hasPort }

func encodedPort(c components) string {
	m := c.metadata()
	if !m.flags.hasPort {
		return ""
	}
	start, end := m.off.span(offPort)
	text := c.bytes()[start:end]
	if len(text) > 0 && text[0] == ':' {
		text = text[1:]
	}
	return text
}

func portNumberOf(c components) (uint16, bool) {
	return portNumber(encodedPort(c))
}

func encodedPath(c components) string { return spanText(c, offPath) }

func isPathAbsolute(c components) bool {
	p := encodedPath(c)
	return len(p) > 0 && p[0] == '/'
}

func hasQuery(c components) bool { return c.metadata().flags.hasQuery }

func encodedQuery(c components) string {
	m := c.metadata()
	if !m.flags.hasQuery {
		return ""
	}
	start, end := m.off.span(offQuery)
	return c.bytes()[start+1 : end]
}

func hasFragment(c components) bool { return c.metadata().flags.hasFragment }

func encodedFragment(c components) string {
	m := c.metadata()
	if !m.flags.hasFragment {
		return ""
	}
	start, end := m.off.span(offFragment)
	return c.bytes()[start+1 : end]
}

func nSeg(c components) int   { return segmentCount(encodedPath(c)) }
func nParam(c components) int { return paramCount(encodedQuery(c)) }
