package uri

// IPv4 value type and strict dec-octet parsing (RFC 3986 §3.2.2).
//
// This library requires the strict dec-octet form
// (no leading zeros, each octet 0..255). Inputs that look numeric but are
// not strict dec-octets (e.g. "999.0.0.1", "012.0.0.1") are NOT rejected
// outright by the host grammar: they simply fail IPv4 parsing and fall
// back to being validated as a reg-name instead, which their byte content
// legally satisfies. That fallback lives in host.go's parseHost; this file only
// implements the strict parse/format.

// IPv4Address holds four octets in network order.
type IPv4Address struct {
	octets [4]byte
}

// Octets returns the four address bytes.
func (a IPv4Address) Octets() [4]byte { return a.octets }

// String renders the address in dotted-quad form.
func (a IPv4Address) String() string {
	buf := make([]byte, 0, 15)
	for i, o := range a.octets {
		if i > 0 {
			buf = append(buf, '.')
		}
		buf = appendUint8(buf, o)
	}
	return string(buf)
}

func appendUint8(buf []byte, v byte) []byte {
	if v >= 100 {
		buf = append(buf, '0'+v/100)
		v %= 100
		buf = append(buf, '0'+v/10)
		v %= 10
		buf = append(buf, '0'+v)
	} else if v >= 10 {
		buf = append(buf, '0'+v/10)
		v %= 10
		buf = append(buf, '0'+v)
	} else {
		buf = append(buf, '0'+v)
	}
	return buf
}

// parseIPv4Strict parses s as IPv4address = dec-octet "." dec-octet "."
// dec-octet "." dec-octet, where dec-octet forbids leading zeros (the
// stricter of the two forms RFC 3986 allows).
func parseIPv4Strict(s string) (IPv4Address, error) {
	var addr IPv4Address
	start := 0
	for i := 0; i < 4; i++ {
		end := start
		for end < len(s) && isDigitByte(s[end]) {
			end++
		}
		if end == start {
			return IPv4Address{}, errorsJoin(ErrInvalidIPv4, errSyntaxf("missing octet in %q", s))
		}
		octetStr := s[start:end]
		if len(octetStr) > 1 && octetStr[0] == '0' {
			return IPv4Address{}, errorsJoin(ErrInvalidIPv4, errSyntaxf("octet %q has a disallowed leading zero", octetStr))
		}
		if len(octetStr) > 3 {
			return IPv4Address{}, errorsJoin(ErrInvalidIPv4, errSyntaxf("octet %q is too long", octetStr))
		}
		var v int
		for i := 0; i < len(octetStr); i++ {
			v = v*10 + int(octetStr[i]-'0')
		}
		if v > 255 {
			return IPv4Address{}, errorsJoin(ErrInvalidIPv4, errSyntaxf("octet %q exceeds 255", octetStr))
		}
		addr.octets[i] = byte(v)

		if i < 3 {
			if end >= len(s) || s[end] != '.' {
				return IPv4Address{}, errorsJoin(ErrInvalidIPv4, errSyntaxf("expected '.' after octet in %q", s))
			}
			start = end + 1
		} else {
			start = end
		}
	}
	if start != len(s) {
		return IPv4Address{}, errorsJoin(ErrInvalidIPv4, errSyntaxf("trailing data after IPv4 address in %q", s))
	}
	return addr, nil
}
