package uri

// URL is an owning, mutable URI value: a single contiguous buffer plus the
// offset table and metadata of storage.go. Unlike View, a
// URL may be mutated through the setters in mutate.go, the path-segment
// editor in segments.go and the query-parameter editor in params.go.
type URL struct {
	buf string
	m   meta
}

func (u *URL) bytes() string  { return u.buf }
func (u *URL) metadata() meta { return u.m }

// String returns the exact serialized form of the URL.
func (u *URL) String() string { return u.buf }

// AsView returns a read-only, borrowed snapshot of the URL's current state.
// Further mutation of u does not retroactively change a View already
// taken; each call captures the buffer as it stands.
func (u *URL) AsView() View { return View{buf: u.buf, m: u.m} }

func newURL(buf string, m meta) *URL { return &URL{buf: buf, m: m} }

// Parse parses raw as a URI (scheme required) into an owning URL.
func Parse(raw string) (*URL, error) {
	buf, m, err := parseURI(raw)
	if err != nil {
		return nil, err
	}
	return newURL(buf, m), nil
}

// ParseReference parses raw as a URI-reference (scheme optional) into an
// owning URL.
func ParseReference(raw string) (*URL, error) {
	buf, m, err := parseURIReference(raw)
	if err != nil {
		return nil, err
	}
	return newURL(buf, m), nil
}

// ParseRelativeReference parses raw as a relative-ref (scheme forbidden)
// into an owning URL.
func ParseRelativeReference(raw string) (*URL, error) {
	buf, m, err := parseRelativeRef(raw)
	if err != nil {
		return nil, err
	}
	return newURL(buf, m), nil
}

// ParseAbsolute parses raw as an absolute-URI (scheme required, no
// fragment) into an owning URL.
func ParseAbsolute(raw string) (*URL, error) {
	buf, m, err := parseAbsoluteURI(raw)
	if err != nil {
		return nil, err
	}
	return newURL(buf, m), nil
}

// ParseAuthority parses raw as a bare authority into an owning URL whose
// scheme and path/query/fragment are all absent.
func ParseAuthority(raw string) (*URL, error) {
	buf, m, err := parseAuthorityOnly(raw)
	if err != nil {
		return nil, err
	}
	return newURL(buf, m), nil
}

// Clone returns an independent copy of u; since buf is an immutable Go
// string, this only needs to copy the small meta struct.
func (u *URL) Clone() *URL {
	return &URL{buf: u.buf, m: u.m}
}

// --- read-only accessors, shared between URL and View ---

func (u *URL) HasScheme() bool       { return hasScheme(u) }
func (u *URL) Scheme() string        { return trimTrailing(schemeText(u), ':') }
func (u *URL) SchemeID() SchemeID    { return schemeID(u) }
func (u *URL) HasAuthority() bool    { return hasAuthority(u) }
func (u *URL) EncodedAuthority() string {
	a := encodedAuthority(u)
	return trimLeadingSlashes(a)
}
func (u *URL) HasUserInfo() bool        { return hasUserinfo(u) }
func (u *URL) EncodedUserInfo() string  { return encodedUserinfo(u) }
func (u *URL) EncodedUser() string      { return encodedUser(u) }
func (u *URL) HasPassword() bool        { return hasPassword(u) }
func (u *URL) EncodedPassword() string  { return encodedPassword(u) }
func (u *URL) HostType() HostType       { return hostType(u) }
func (u *URL) Host() Host               { return hostValue(u) }
func (u *URL) EncodedHost() string      { return encodedHost(u) }
func (u *URL) HasPort() bool            { return hasPort(u) }
func (u *URL) Port() string             { return encodedPort(u) }
func (u *URL) PortNumber() (uint16, bool) { return portNumberOf(u) }
func (u *URL) EncodedPath() string      { return encodedPath(u) }
func (u *URL) IsPathAbsolute() bool     { return isPathAbsolute(u) }
func (u *URL) HasQuery() bool           { return hasQuery(u) }
func (u *URL) EncodedQuery() string     { return encodedQuery(u) }
func (u *URL) HasFragment() bool        { return hasFragment(u) }
func (u *URL) EncodedFragment() string  { return encodedFragment(u) }
func (u *URL) SegmentCount() int        { return nSeg(u) }
func (u *URL) ParamCount() int          { return nParam(u) }

// DecodedUser, DecodedPassword, DecodedHost, DecodedPath, DecodedQuery and
// DecodedFragment lazily percent-decode their component. DecodedHost
// returns the host unchanged when it is an IP literal (no percent-encoding
// is possible there).
func (u *URL) DecodedUser() string     { return NewPercentString(u.EncodedUser()).DecodedString() }
func (u *URL) DecodedPassword() string { return NewPercentString(u.EncodedPassword()).DecodedString() }
func (u *URL) DecodedHost() string {
	if u.HostType() != HostName {
		return u.EncodedHost()
	}
	return NewPercentString(u.EncodedHost()).DecodedString()
}
func (u *URL) DecodedPath() string     { return NewPercentString(u.EncodedPath()).DecodedString() }
func (u *URL) DecodedQuery() string    { return NewPercentString(u.EncodedQuery()).DecodedString() }
func (u *URL) DecodedFragment() string { return NewPercentString(u.EncodedFragment()).DecodedString() }

func trimTrailing(s string, b byte) string {
	if len(s) > 0 && s[len(s)-1] == b {
		return s[:len(s)-1]
	}
	return s
}

func trimLeadingSlashes(s string) string {
	if len(s) >= 2 && s[0] == '/' && s[1] == '/' {
		return s[2:]
	}
	return s
}

// Same read-only accessors on View, so callers can treat View and *URL
// interchangeably for everything that doesn't mutate.

func (v View) HasScheme() bool          { return hasScheme(v) }
func (v View) Scheme() string           { return trimTrailing(schemeText(v), ':') }
func (v View) SchemeID() SchemeID       { return schemeID(v) }
func (v View) HasAuthority() bool       { return hasAuthority(v) }
func (v View) EncodedAuthority() string { return trimLeadingSlashes(encodedAuthority(v)) }
func (v View) HasUserInfo() bool        { return hasUserinfo(v) }
func (v View) EncodedUserInfo() string  { return encodedUserinfo(v) }
func (v View) EncodedUser() string      { return encodedUser(v) }
func (v View) HasPassword() bool        { return hasPassword(v) }
func (v View) EncodedPassword() string  { return encodedPassword(v) }
func (v View) HostType() HostType       { return hostType(v) }
func (v View) Host() Host               { return hostValue(v) }
func (v View) EncodedHost() string      { return encodedHost(v) }
func (v View) HasPort() bool            { return hasPort(v) }
func (v View) Port() string             { return encodedPort(v) }
func (v View) PortNumber() (uint16, bool) { return portNumberOf(v) }
func (v View) EncodedPath() string      { return encodedPath(v) }
func (v View) IsPathAbsolute() bool     { return isPathAbsolute(v) }
func (v View) HasQuery() bool           { return hasQuery(v) }
func (v View) EncodedQuery() string     { return encodedQuery(v) }
func (v View) HasFragment() bool        { return hasFragment(v) }
func (v View) EncodedFragment() string  { return encodedFragment(v) }
func (v View) SegmentCount() int        { return nSeg(v) }
func (v View) ParamCount() int          { return nParam(v) }

// ToURL copies a View into a freshly owned, mutable URL.
func (v View) ToURL() *URL { return &URL{buf: v.buf, m: v.m} }
