package uri

import "strings"

// Percent-encoding codec: "validate while scanning a charset" as a set of
// standalone, charset-parametric operations.

// PercentString is a view over a possibly percent-encoded byte string: it
// knows the encoded length (its own length) and can compute the decoded
// length without allocating.
type PercentString struct {
	encoded string
}

// NewPercentString wraps an already percent-encoded string. It does not
// validate; call Validate for that.
func NewPercentString(encoded string) PercentString { return PercentString{encoded: encoded} }

// Encoded returns the encoded form as given.
func (p PercentString) Encoded() string { return p.encoded }

// Validate walks p and succeeds iff every byte is either a member of
// allowed or the first byte of a well-formed "%" HEXDIG HEXDIG triplet. It
// returns the number of bytes the decoded form would occupy.
func (p PercentString) Validate(allowed CharSet) (decodedLen int, err error) {
	s := p.encoded
	for i := 0; i < len(s); {
		if s[i] == '%' {
			_, n, e := percentTriplet(s, i)
			if e != nil {
				return 0, e
			}
			i += n
			decodedLen++
			continue
		}
		if !allowed.Contains(s[i]) {
			return 0, errorsJoin(ErrInvalidPercentEncoding, errSyntaxf("byte %q at offset %d is not in the allowed set and not percent-encoded", s[i], i))
		}
		i++
		decodedLen++
	}
	return decodedLen, nil
}

// DecodedLen returns the length the decoded form would occupy, assuming p
// is valid. Callers that have not validated p should use Validate instead.
func (p PercentString) DecodedLen() int {
	s := p.encoded
	n := 0
	for i := 0; i < len(s); {
		if s[i] == '%' && i+2 < len(s) {
			i += 3
		} else {
			i++
		}
		n++
	}
	return n
}

// Decode writes the decoded bytes of p to dest, which must be at least
// DecodedLen() bytes long, and returns the number of bytes written.
// Behavior is undefined if p has not been validated.
func (p PercentString) Decode(dest []byte) int {
	s := p.encoded
	w := 0
	for i := 0; i < len(s); {
		if s[i] == '%' && i+2 < len(s) {
			b, n, err := percentTriplet(s, i)
			if err == nil {
				dest[w] = b
				w++
				i += n
				continue
			}
		}
		dest[w] = s[i]
		w++
		i++
	}
	return w
}

// DecodedString allocates and returns the fully decoded string.
func (p PercentString) DecodedString() string {
	buf := make([]byte, p.DecodedLen())
	n := p.Decode(buf)
	return string(buf[:n])
}

// DecodedEqual reports whether decoding p yields exactly plain, without
// allocating.
func (p PercentString) DecodedEqual(plain string) bool {
	s := p.encoded
	j := 0
	for i := 0; i < len(s); {
		var b byte
		if s[i] == '%' && i+2 < len(s) {
			decoded, n, err := percentTriplet(s, i)
			if err != nil {
				return false
			}
			b = decoded
			i += n
		} else {
			b = s[i]
			i++
		}
		if j >= len(plain) || plain[j] != b {
			return false
		}
		j++
	}
	return j == len(plain)
}

const upperHex = "0123456789ABCDEF"

// EncodedLen returns the number of bytes required to percent-encode raw
// using the complement of allowed as the must-encode set.
func EncodedLen(raw string, allowed CharSet) int {
	n := 0
	for i := 0; i < len(raw); i++ {
		if allowed.Contains(raw[i]) {
			n++
		} else {
			n += 3
		}
	}
	return n
}

// Encode percent-encodes raw using the complement of allowed as the
// must-encode set, writing uppercase hex digits, and returns the encoded
// string.
func Encode(raw string, allowed CharSet) string {
	n := EncodedLen(raw, allowed)
	if n == len(raw) {
		return raw
	}
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if allowed.Contains(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0xF])
	}
	return b.String()
}
