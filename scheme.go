package uri

import "strings"

// SchemeID is a closed enumeration of well-known schemes. Unrecognized
// schemes parse and round-trip but map to SchemeUnknown.
type SchemeID uint8

const (
	SchemeUnknown SchemeID = iota
	SchemeHTTP
	SchemeHTTPS
	SchemeWS
	SchemeWSS
	SchemeFTP
	SchemeFile
	SchemeMailto
	SchemeURN
	SchemeLDAP
	SchemeSSH
)

var schemeByName = map[string]SchemeID{
	"http":   SchemeHTTP,
	"https":  SchemeHTTPS,
	"ws":     SchemeWS,
	"wss":    SchemeWSS,
	"ftp":    SchemeFTP,
	"file":   SchemeFile,
	"mailto": SchemeMailto,
	"urn":    SchemeURN,
	"ldap":   SchemeLDAP,
	"ssh":    SchemeSSH,
}

var schemeNames = func() map[SchemeID]string {
	m := make(map[SchemeID]string, len(schemeByName))
	for name, id := range schemeByName {
		m[id] = name
	}
	return m
}()

// LookupScheme maps a (case-insensitively compared) scheme spelling to its
// registry identifier, or SchemeUnknown if it is not a well-known scheme.
func LookupScheme(name string) SchemeID {
	id, ok := schemeByName[strings.ToLower(name)]
	if !ok {
		return SchemeUnknown
	}
	return id
}

// String returns the canonical lowercase spelling of a well-known scheme,
// or "" for SchemeUnknown (callers should use the URL's stored scheme text
// in that case, since storage preserves original case).
func (s SchemeID) String() string {
	return schemeNames[s]
}

// validateScheme checks scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
func validateScheme(scheme string) error {
	if len(scheme) == 0 {
		return errorsJoin(ErrInvalidScheme, errSyntaxf("scheme must not be empty"))
	}
	if !isASCIILetter(scheme[0]) {
		return errorsJoin(ErrInvalidScheme, errSyntaxf("scheme must start with an ASCII letter, got %q", scheme[:1]))
	}
	for i := 1; i < len(scheme); i++ {
		if !schemeTailSet.Contains(scheme[i]) {
			return errorsJoin(ErrInvalidScheme, errSyntaxf("invalid character %q in scheme", scheme[i]))
		}
	}
	return nil
}

// schemesUsingDNSValidation are schemes whose host is expected to be a DNS
// name (RFC 1035) rather than the fully generic reg-name grammar.
var schemesUsingDNSValidation = map[string]bool{
	"https": true, "http": true,
	"aaa": true, "aaas": true, "acap": true, "acct": true,
	"cap": true, "cid": true,
	"coap": true, "coaps": true, "coap+tcp": true, "coap+ws": true, "coaps+tcp": true, "coaps+ws": true,
	"dav": true, "dict": true,
	"dns":    true,
	"dntp":   true,
	"finger": true,
	"ftp":    true,
	"git":    true,
	"gopher": true,
	"h323":   true,
	"iax":    true,
	"icap":   true,
	"im":     true,
	"imap":   true,
	"ipp":    true, "ipps": true,
	"irc": true, "irc6": true, "ircs": true,
	"jms":  true,
	"ldap": true,
	"mid":  true,
	"msrp": true, "msrps": true,
	"nfs":        true,
	"nntp":       true,
	"ntp":        true,
	"postgresql": true,
	"radius":     true,
	"redis":      true,
	"rmi":        true,
	"rtsp":       true, "rtsps": true, "rtspu": true,
	"rsync":  true,
	"sftp":   true,
	"skype":  true,
	"smtp":   true,
	"snmp":   true,
	"soap":   true,
	"ssh":    true,
	"steam":  true,
	"svn":    true,
	"tcp":    true,
	"telnet": true,
	"udp":    true,
	"vnc":    true,
	"wais":   true,
	"ws":     true,
	"wss":    true,
}

// UsesDNSHostValidation returns true when the given scheme (matched
// case-insensitively) conventionally uses DNS hostnames (RFC 1035) rather
// than the fully generic reg-name grammar of RFC 3986. "file" is a notable
// scheme that does not.
func UsesDNSHostValidation(scheme string) bool {
	return schemesUsingDNSValidation[strings.ToLower(scheme)]
}
