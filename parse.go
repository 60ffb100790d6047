package uri

import "strings"

// Top-level parsers: parseURI, parseURIReference,
// parseRelativeRef, parseAbsoluteURI, parseAuthorityOnly. Each is a pure
// function over its input: it produces a normalized buffer (the input
// bytes, reassembled into the canonical span layout described in
// storage.go) and the accompanying meta, or an error, and performs no
// mutation.
//
// The decomposition algorithm locates ':', '?', '#' and applies RFC
// 3986's ordering rules, building a meta/offset table rather than loose
// string fields.

// parseOptions configures a single parse.
type parseOptions struct {
	allowReference bool // URI-reference / relative-ref: scheme is optional
	requireScheme  bool // scheme required even when allowReference is set
	forbidFragment bool // absolute-URI: no fragment allowed
}

// parseURI parses the URI production: scheme ":" hier-part [ "?" query ] [ "#" fragment ].
func parseURI(raw string) (string, meta, error) {
	return parseTop(raw, parseOptions{})
}

// parseURIReference parses URI-reference = URI / relative-ref.
func parseURIReference(raw string) (string, meta, error) {
	return parseTop(raw, parseOptions{allowReference: true})
}

// parseRelativeRef parses relative-ref = relative-part [ "?" query ] [ "#" fragment ],
// rejecting a leading scheme outright (a relative-ref must not have one).
func parseRelativeRef(raw string) (string, meta, error) {
	if _, ok := findSchemeColon(raw); ok {
		return "", meta{}, newErrorAt(errorsJoin(ErrSyntax, errSyntaxf("relative reference must not begin with a scheme")), 0)
	}
	return parseTop(raw, parseOptions{allowReference: true})
}

// parseAbsoluteURI parses absolute-URI = scheme ":" hier-part [ "?" query ]
// (no fragment allowed).
func parseAbsoluteURI(raw string) (string, meta, error) {
	return parseTop(raw, parseOptions{forbidFragment: true})
}

// parseAuthorityOnly parses just the authority production (no scheme, no
// path/query/fragment).
func parseAuthorityOnly(raw string) (string, meta, error) {
	if err := checkForbiddenBytes(raw); err != nil {
		return "", meta{}, err
	}
	pa, err := splitAuthority(raw, "")
	if err != nil {
		return "", meta{}, err
	}
	return assemble2("", false, true, pa, "", "", false, "", false)
}

// findSchemeColon locates a leading "ALPHA *(ALPHA/DIGIT/+/-/.) ':'" at the
// very start of raw, used to distinguish "scheme present" from a bare
// relative path that happens to contain ':' later on.
func findSchemeColon(raw string) (int, bool) {
	if raw == "" || !isASCIILetter(raw[0]) {
		return 0, false
	}
	i := 1
	for i < len(raw) && schemeTailSet.Contains(raw[i]) {
		i++
	}
	if i < len(raw) && raw[i] == ':' {
		return i, true
	}
	return 0, false
}

func parseTop(raw string, o parseOptions) (string, meta, error) {
	if err := checkForbiddenBytes(raw); err != nil {
		return "", meta{}, err
	}

	hierPartEnd := strings.IndexByte(raw, '?')
	fragEnd := strings.IndexByte(raw, '#')

	if !o.allowReference && (hierPartEnd == 0 || fragEnd == 0) {
		return "", meta{}, newErrorAt(errorsJoin(ErrSyntax, errSyntaxf("a URI must not start with '?' or '#'")), 0)
	}

	var scheme string
	hasScheme := false
	curr := 0
	if schemeEnd, ok := findSchemeColon(raw); ok && (hierPartEnd < 0 || schemeEnd < hierPartEnd) && (fragEnd < 0 || schemeEnd < fragEnd) {
		scheme = raw[:schemeEnd]
		if err := validateScheme(scheme); err != nil {
			return "", meta{}, err
		}
		hasScheme = true
		curr = schemeEnd + 1
	} else if !o.allowReference {
		return "", meta{}, newErrorAt(errorsJoin(ErrNoSchemeFound, errSyntaxf("a URI requires a scheme")), 0)
	}

	rest := raw[curr:]
	// recompute delimiters relative to rest
	qRel := strings.IndexByte(rest, '?')
	fRel := strings.IndexByte(rest, '#')
	if fRel >= 0 && qRel > fRel {
		// a '?' after '#' is part of the fragment, not a query delimiter
		qRel = -1
	}

	var hierPart, query, fragment string
	hasQuery, hasFragment := false, false

	hierEnd := len(rest)
	if qRel >= 0 {
		hierEnd = qRel
	} else if fRel >= 0 {
		hierEnd = fRel
	}
	hierPart = rest[:hierEnd]

	if qRel >= 0 {
		qEnd := len(rest)
		if fRel >= 0 && fRel > qRel {
			qEnd = fRel
		}
		query = rest[qRel+1 : qEnd]
		hasQuery = true
	}
	if fRel >= 0 {
		fragment = rest[fRel+1:]
		hasFragment = true
	}

	if hasFragment && o.forbidFragment {
		return "", meta{}, newErrorAt(errorsJoin(ErrSyntax, errSyntaxf("a fragment is not allowed here")), 0)
	}
	if o.requireScheme && !hasScheme {
		return "", meta{}, newErrorAt(errorsJoin(ErrNoSchemeFound, errSyntaxf("a scheme is required")), 0)
	}

	return assembleFrom(scheme, hasScheme, hierPart, query, hasQuery, fragment, hasFragment)
}

// checkForbiddenBytes rejects bytes excluded outright: non-ASCII,
// control bytes, unescaped whitespace, and backslashes.
func checkForbiddenBytes(raw string) error {
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c >= 0x80:
			return newErrorAt(errorsJoin(ErrSyntax, errSyntaxf("non-ASCII byte at offset %d", i)), i)
		case c < 0x20 || c == 0x7f:
			return newErrorAt(errorsJoin(ErrSyntax, errSyntaxf("control byte at offset %d", i)), i)
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			return newErrorAt(errorsJoin(ErrSyntax, errSyntaxf("unescaped whitespace at offset %d", i)), i)
		case c == '\\':
			return newErrorAt(errorsJoin(ErrSyntax, errSyntaxf("backslash is not a valid URI byte at offset %d", i)), i)
		}
	}
	return nil
}

// assembleFrom splits hierPart into authority/path (if it starts with
// "//"), validates every component, and builds the canonical buffer.
func assembleFrom(scheme string, hasScheme bool, hierPart, query string, hasQuery bool, fragment string, hasFragment bool) (string, meta, error) {
	var (
		pa           parsedAuthority
		hasAuthority bool
		path         string
	)

	if strings.HasPrefix(hierPart, "//") {
		hasAuthority = true
		body := hierPart[2:]
		slash := strings.IndexByte(body, '/')
		authorityText := body
		if slash >= 0 {
			authorityText = body[:slash]
			path = body[slash:]
		}
		var err error
		pa, err = splitAuthority(authorityText, scheme)
		if err != nil {
			return "", meta{}, err
		}
	} else {
		path = hierPart
	}

	if err := validatePath(path, hasAuthority, hasScheme); err != nil {
		return "", meta{}, err
	}
	if hasQuery {
		if err := validateQuery(query); err != nil {
			return "", meta{}, err
		}
	}
	if hasFragment {
		if err := validateFragment(fragment); err != nil {
			return "", meta{}, err
		}
	}

	return assemble2(scheme, hasScheme, hasAuthority, pa, path, query, hasQuery, fragment, hasFragment)
}

// assemble2 lays the validated components out into the canonical buffer
// and offset table described in storage.go.
func assemble2(scheme string, hasScheme, hasAuthority bool, pa parsedAuthority, path, query string, hasQuery bool, fragment string, hasFragment bool) (string, meta, error) {
	var b strings.Builder
	var off offsetTable
	var flags componentFlags

	if hasScheme {
		b.WriteString(scheme)
		b.WriteByte(':')
		flags.hasScheme = true
	}
	off[offScheme] = b.Len()

	if hasAuthority {
		flags.hasAuthority = true
		b.WriteString("//")
		if pa.hasUserinfo {
			flags.hasUserinfo = true
			user, password, hasPassword := splitUserInfo(pa.userinfo)
			b.WriteString(user)
			off[offUser] = b.Len()
			if hasPassword {
				flags.hasPassword = true
				b.WriteByte(':')
				b.WriteString(password)
				b.WriteByte('@')
			} else {
				b.WriteByte('@')
			}
			off[offPass] = b.Len()
		} else {
			off[offUser] = b.Len()
			off[offPass] = b.Len()
		}

		b.WriteString(formatHost(pa.host))
		off[offHost] = b.Len()

		if pa.hasColon {
			flags.hasPort = true
			b.WriteByte(':')
			b.WriteString(pa.port)
		}
		off[offPort] = b.Len()
	} else {
		off[offUser] = b.Len()
		off[offPass] = b.Len()
		off[offHost] = b.Len()
		off[offPort] = b.Len()
	}

	b.WriteString(path)
	off[offPath] = b.Len()

	if hasQuery {
		flags.hasQuery = true
		b.WriteByte('?')
		b.WriteString(query)
	}
	off[offQuery] = b.Len()

	if hasFragment {
		flags.hasFragment = true
		b.WriteByte('#')
		b.WriteString(fragment)
	}
	off[offFragment] = b.Len()

	buf := b.String()
	m := meta{
		off:    off,
		flags:  flags,
		host:   pa.host,
		scheme: LookupScheme(scheme),
	}

	checkInvariants(buf, m)
	return buf, m, nil
}
