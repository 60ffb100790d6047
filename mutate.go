package uri

import "strings"

// Mutators. Every setter rebuilds the URL from its current
// decomposed components plus the one change, then re-runs assemble2 so the
// buffer, offset table and invariants stay in lock-step; this trades a
// little redundant copying for never having to splice offsets by hand.

// decomposed mirrors the inputs to assemble2, used as the working set for
// every mutator below.
type decomposed struct {
	scheme       string
	hasScheme    bool
	hasAuthority bool
	pa           parsedAuthority
	path         string
	query        string
	hasQuery     bool
	fragment     string
	hasFragment  bool
}

func decompose(u *URL) decomposed {
	return decomposed{
		scheme:    u.Scheme(),
		hasScheme: u.HasScheme(),
		hasAuthority: u.HasAuthority(),
		pa: parsedAuthority{
			userinfo:    u.EncodedUserInfo(),
			hasUserinfo: u.HasUserInfo(),
			host:        u.Host(),
			port:        u.Port(),
			hasPort:     u.HasPort(),
			hasColon:    u.HasPort(),
		},
		path:         u.EncodedPath(),
		query:        u.EncodedQuery(),
		hasQuery:     u.HasQuery(),
		fragment:     u.EncodedFragment(),
		hasFragment:  u.HasFragment(),
	}
}

func (d decomposed) rebuild() (*URL, error) {
	buf, m, err := assemble2(d.scheme, d.hasScheme, d.hasAuthority, d.pa, d.path, d.query, d.hasQuery, d.fragment, d.hasFragment)
	if err != nil {
		return nil, err
	}
	return newURL(buf, m), nil
}

// needsDotSlashGuard reports whether path, taken as rootless with no
// scheme and no authority, would have its first segment misparsed as a
// scheme because it contains a ':'.
func needsDotSlashGuard(path string) bool {
	if path == "" || path[0] == '/' {
		return false
	}
	first := path
	if slash := strings.IndexByte(path, '/'); slash >= 0 {
		first = path[:slash]
	}
	return strings.ContainsRune(first, ':')
}

// SetScheme sets the scheme to scheme (without trailing ':'). If the
// resulting URL would have a rootless path whose first segment starts
// with "./" only because the URL previously had no scheme, that leading
// "./" is stripped, since the ambiguity that required it no longer
// exists once a scheme is present.
func (u *URL) SetScheme(scheme string) error {
	if err := validateScheme(scheme); err != nil {
		return err
	}
	d := decompose(u)
	d.scheme = scheme
	d.hasScheme = true
	if strings.HasPrefix(d.path, "./") && needsDotSlashGuard(d.path[2:]) {
		d.path = d.path[2:]
	}
	n, err := d.rebuild()
	if err != nil {
		return err
	}
	*u = *n
	return nil
}

// RemoveScheme clears the scheme. If the remaining rootless path (no
// authority) would have its first segment misparsed as a scheme because
// it contains ':', a "./" prefix is inserted to disambiguate: removing
// "s:" from "s:x:y" yields "./x:y", not "x:y".
func (u *URL) RemoveScheme() error {
	d := decompose(u)
	d.scheme = ""
	d.hasScheme = false
	if needsDotSlashGuard(d.path) {
		d.path = "./" + d.path
	}
	n, err := d.rebuild()
	if err != nil {
		return err
	}
	*u = *n
	return nil
}

// SetUserInfo sets the userinfo (without the trailing '@'). If the URL
// currently has no authority, an empty one is introduced (host becomes
// HostEmpty) so the userinfo has somewhere to live.
func (u *URL) SetUserInfo(userinfo string) error {
	if err := validateUserInfo(userinfo); err != nil {
		return err
	}
	d := decompose(u)
	d.hasAuthority = true
	d.pa.userinfo = userinfo
	d.pa.hasUserinfo = true
	n, err := d.rebuild()
	if err != nil {
		return err
	}
	*u = *n
	return nil
}

// RemoveUserInfo clears the userinfo, leaving the rest of the authority
// (if any) intact.
func (u *URL) RemoveUserInfo() error {
	d := decompose(u)
	d.pa.userinfo = ""
	d.pa.hasUserinfo = false
	n, err := d.rebuild()
	if err != nil {
		return err
	}
	*u = *n
	return nil
}

// SetHost sets the host to the given reg-name, introducing an authority if
// none was present.
func (u *URL) SetHost(host string) error {
	h, _, err := parseHost(host, u.Scheme())
	if err != nil {
		return err
	}
	d := decompose(u)
	d.hasAuthority = true
	d.pa.host = h
	n, err := d.rebuild()
	if err != nil {
		return err
	}
	*u = *n
	return nil
}

// SetPort sets the port (digits only, without leading ':').
func (u *URL) SetPort(port string) error {
	if err := validatePort(port); err != nil {
		return err
	}
	d := decompose(u)
	d.hasAuthority = true
	d.pa.hasPort = true
	d.pa.hasColon = true
	d.pa.port = port
	n, err := d.rebuild()
	if err != nil {
		return err
	}
	*u = *n
	return nil
}

// RemovePort clears the port.
func (u *URL) RemovePort() error {
	d := decompose(u)
	d.pa.hasPort = false
	d.pa.hasColon = false
	d.pa.port = ""
	n, err := d.rebuild()
	if err != nil {
		return err
	}
	*u = *n
	return nil
}

// RemoveAuthority clears the entire authority (userinfo, host and port).
// If the remaining path starts with "//" it would be misread as
// introducing a new authority, so a "/." segment is prepended; if it's
// rootless with ':' in the first segment and there is no scheme, "./" is
// prepended instead.
func (u *URL) RemoveAuthority() error {
	d := decompose(u)
	d.hasAuthority = false
	d.pa = parsedAuthority{}
	switch {
	case strings.HasPrefix(d.path, "//"):
		d.path = "/." + d.path
	case !d.hasScheme && needsDotSlashGuard(d.path):
		d.path = "./" + d.path
	}
	n, err := d.rebuild()
	if err != nil {
		return err
	}
	*u = *n
	return nil
}

// SetPath replaces the path wholesale. The caller supplies already
// percent-encoded path bytes.
func (u *URL) SetPath(path string) error {
	d := decompose(u)
	if err := validatePath(path, d.hasAuthority, d.hasScheme); err != nil {
		return err
	}
	d.path = path
	n, err := d.rebuild()
	if err != nil {
		return err
	}
	*u = *n
	return nil
}

// SetQuery replaces the query (without leading '?').
func (u *URL) SetQuery(query string) error {
	if err := validateQuery(query); err != nil {
		return err
	}
	d := decompose(u)
	d.query = query
	d.hasQuery = true
	n, err := d.rebuild()
	if err != nil {
		return err
	}
	*u = *n
	return nil
}

// RemoveQuery clears the query entirely (distinct from setting it empty).
func (u *URL) RemoveQuery() error {
	d := decompose(u)
	d.query = ""
	d.hasQuery = false
	n, err := d.rebuild()
	if err != nil {
		return err
	}
	*u = *n
	return nil
}

// SetFragment replaces the fragment (without leading '#').
func (u *URL) SetFragment(fragment string) error {
	if err := validateFragment(fragment); err != nil {
		return err
	}
	d := decompose(u)
	d.fragment = fragment
	d.hasFragment = true
	n, err := d.rebuild()
	if err != nil {
		return err
	}
	*u = *n
	return nil
}

// RemoveFragment clears the fragment entirely.
func (u *URL) RemoveFragment() error {
	d := decompose(u)
	d.fragment = ""
	d.hasFragment = false
	n, err := d.rebuild()
	if err != nil {
		return err
	}
	*u = *n
	return nil
}

// RemoveOrigin clears scheme, userinfo, host and port in one step,
// applying the same "//" / ':' fix-ups as RemoveAuthority and
// RemoveScheme together.
func (u *URL) RemoveOrigin() error {
	d := decompose(u)
	d.scheme = ""
	d.hasScheme = false
	d.hasAuthority = false
	d.pa = parsedAuthority{}
	switch {
	case strings.HasPrefix(d.path, "//"):
		d.path = "/." + d.path
	case needsDotSlashGuard(d.path):
		d.path = "./" + d.path
	}
	n, err := d.rebuild()
	if err != nil {
		return err
	}
	*u = *n
	return nil
}
