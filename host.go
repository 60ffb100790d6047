package uri

import "strings"

// HostType tags the variant held by a Host value.
type HostType uint8

const (
	HostEmpty HostType = iota
	HostName
	HostIPv4
	HostIPv6
	HostIPvFuture
)

func (t HostType) String() string {
	switch t {
	case HostName:
		return "name"
	case HostIPv4:
		return "ipv4"
	case HostIPv6:
		return "ipv6"
	case HostIPvFuture:
		return "ipvfuture"
	default:
		return "empty"
	}
}

// IPvFutureAddress holds the "vHEXDIG.address" literal for a future IP
// version that this library does not otherwise understand structurally.
type IPvFutureAddress struct {
	Version string // hex digits after 'v', as given
	Address string // bytes after the '.', as given (unreserved/sub-delims/":")
}

// Host is a tagged variant over the four host forms RFC 3986 recognizes.
type Host struct {
	kind      HostType
	name      string // reg-name, percent-encoded as given
	ipv4      IPv4Address
	ipv6      IPv6Address
	ipvfuture IPvFutureAddress
}

func (h Host) Type() HostType { return h.kind }

func (h Host) Name() (string, bool) {
	if h.kind != HostName {
		return "", false
	}
	return h.name, true
}

func (h Host) IPv4() (IPv4Address, bool) {
	if h.kind != HostIPv4 {
		return IPv4Address{}, false
	}
	return h.ipv4, true
}

func (h Host) IPv6() (IPv6Address, bool) {
	if h.kind != HostIPv6 {
		return IPv6Address{}, false
	}
	return h.ipv6, true
}

func (h Host) IPvFuture() (IPvFutureAddress, bool) {
	if h.kind != HostIPvFuture {
		return IPvFutureAddress{}, false
	}
	return h.ipvfuture, true
}

// parseHost classifies and validates the host production:
//
//	host = IP-literal / IPv4address / reg-name
//	IP-literal = "[" ( IPv6address / IPvFuture ) "]"
//
// scheme is used only to decide whether reg-name should additionally be
// checked against the DNS hostname grammar (see UsesDNSHostValidation).
func parseHost(raw string, scheme string) (Host, string, error) {
	if raw == "" {
		return Host{kind: HostEmpty}, "", nil
	}

	if raw[0] == '[' {
		if raw[len(raw)-1] != ']' {
			return Host{}, "", errorsJoin(ErrInvalidIPLiteral, errSyntaxf("missing closing ']' in %q", raw))
		}
		inner := raw[1 : len(raw)-1]
		if inner == "" {
			return Host{}, "", errorsJoin(ErrInvalidIPLiteral, errSyntaxf("empty IP-literal"))
		}
		if inner[0] == 'v' || inner[0] == 'V' {
			future, err := parseIPvFuture(inner)
			if err != nil {
				return Host{}, "", err
			}
			return Host{kind: HostIPvFuture, ipvfuture: future}, "", nil
		}

		addrPart, zone, hasZone, err := splitZoneID(inner)
		if err != nil {
			return Host{}, "", err
		}
		addr, err := parseIPv6(addrPart)
		if err != nil {
			return Host{}, "", err
		}
		addr.zone = zone
		addr.hasZone = hasZone
		return Host{kind: HostIPv6, ipv6: addr}, "", nil
	}

	// Strict IPv4 is tried first; on failure this is not a hard error;
	// the bytes are instead validated as a reg-name (e.g. "999.0.0.1" is
	// a reg-name, not an out-of-range IPv4).
	if addr, err := parseIPv4Strict(raw); err == nil {
		return Host{kind: HostIPv4, ipv4: addr}, "", nil
	}

	ps := NewPercentString(raw)
	if _, err := ps.Validate(regNameSet); err != nil {
		return Host{}, "", errorsJoin(ErrInvalidRegisteredName, err)
	}
	// A host made only of digits and dots that failed strict IPv4 parsing
	// is kept as a reg-name without the DNS label check.
	if UsesDNSHostValidation(scheme) && strings.Trim(raw, "0123456789.") != "" {
		if err := validateDNSHost(raw); err != nil {
			return Host{}, "", err
		}
	}
	return Host{kind: HostName, name: raw}, "", nil
}

// parseIPvFuture parses "v" 1*HEXDIG "." 1*( unreserved / sub-delims / ":" )
// from the bracket contents (including the leading 'v').
func parseIPvFuture(inner string) (IPvFutureAddress, error) {
	if len(inner) < 3 || (inner[0] != 'v' && inner[0] != 'V') {
		return IPvFutureAddress{}, errorsJoin(ErrInvalidIPLiteral, errSyntaxf("malformed IPvFuture literal %q", inner))
	}
	dot := strings.IndexByte(inner, '.')
	if dot < 1 {
		return IPvFutureAddress{}, errorsJoin(ErrInvalidIPLiteral, errSyntaxf("missing '.' in IPvFuture literal %q", inner))
	}
	version := inner[1:dot]
	if version == "" {
		return IPvFutureAddress{}, errorsJoin(ErrInvalidIPLiteral, errSyntaxf("missing version digits in IPvFuture literal %q", inner))
	}
	for i := 0; i < len(version); i++ {
		if hexDigit(version[i]) == invalidHexDigit {
			return IPvFutureAddress{}, errorsJoin(ErrInvalidIPLiteral, errSyntaxf("non-hex version digit in IPvFuture literal %q", inner))
		}
	}
	address := inner[dot+1:]
	if address == "" {
		return IPvFutureAddress{}, errorsJoin(ErrInvalidIPLiteral, errSyntaxf("missing address in IPvFuture literal %q", inner))
	}
	for i := 0; i < len(address); i++ {
		if !ipvFutureSet.Contains(address[i]) {
			return IPvFutureAddress{}, errorsJoin(ErrInvalidIPLiteral, errSyntaxf("invalid character %q in IPvFuture address", address[i]))
		}
	}
	return IPvFutureAddress{Version: version, Address: address}, nil
}

// formatHost renders the host per its variant, including IPv6 brackets
// and IPvFuture's "v...".
func formatHost(h Host) string {
	switch h.kind {
	case HostIPv4:
		return h.ipv4.String()
	case HostIPv6:
		return "[" + h.ipv6.String() + "]"
	case HostIPvFuture:
		return "[v" + h.ipvfuture.Version + "." + h.ipvfuture.Address + "]"
	case HostName:
		return h.name
	default:
		return ""
	}
}
