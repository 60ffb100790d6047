package uri

import "strings"

// IPv6 value type and the full RFC 3986 IPv6address grammar, including
// every "::" elision position and the dotted-quad suffix form for the low
// 32 bits. The zone identifier (RFC 6874, "%25" zone) is
// parsed separately by the host production, since it lives outside the
// address bytes proper.

// IPv6Address holds 16 octets in network order, plus an optional RFC 6874
// zone identifier (stored decoded).
type IPv6Address struct {
	octets [16]byte
	zone   string
	hasZone bool
}

// Octets returns the sixteen address bytes.
func (a IPv6Address) Octets() [16]byte { return a.octets }

// Zone returns the zone identifier and whether one was present.
func (a IPv6Address) Zone() (string, bool) { return a.zone, a.hasZone }

// String renders the address using the conventional "::" elision of the
// longest run of zero groups (matching common implementations), appending
// "%<zone>" if a zone is set.
func (a IPv6Address) String() string {
	var groups [8]uint16
	for i := 0; i < 8; i++ {
		groups[i] = uint16(a.octets[2*i])<<8 | uint16(a.octets[2*i+1])
	}

	// find longest run of zero groups, length >= 2, to elide
	bestStart, bestLen := -1, 0
	curStart, curLen := -1, 0
	for i := 0; i < 8; i++ {
		if groups[i] == 0 {
			if curStart == -1 {
				curStart = i
			}
			curLen++
			if curLen > bestLen {
				bestStart, bestLen = curStart, curLen
			}
		} else {
			curStart, curLen = -1, 0
		}
	}
	if bestLen < 2 {
		bestStart = -1
	}

	var b strings.Builder
	if bestStart == -1 {
		for i := 0; i < 8; i++ {
			if i > 0 {
				b.WriteByte(':')
			}
			b.WriteString(formatHexGroup(groups[i]))
		}
	} else {
		for i := 0; i < bestStart; i++ {
			if i > 0 {
				b.WriteByte(':')
			}
			b.WriteString(formatHexGroup(groups[i]))
		}
		b.WriteString("::")
		for i := bestStart + bestLen; i < 8; i++ {
			if i > bestStart+bestLen {
				b.WriteByte(':')
			}
			b.WriteString(formatHexGroup(groups[i]))
		}
	}

	if a.hasZone {
		b.WriteString("%25")
		b.WriteString(Encode(a.zone, zoneIDSet))
	}
	return b.String()
}

func formatHexGroup(v uint16) string {
	if v == 0 {
		return "0"
	}
	const hexdigits = "0123456789abcdef"
	var buf [4]byte
	n := 0
	started := false
	for shift := 12; shift >= 0; shift -= 4 {
		d := (v >> uint(shift)) & 0xF
		if d != 0 {
			started = true
		}
		if started {
			buf[n] = hexdigits[d]
			n++
		}
	}
	return string(buf[:n])
}

// parseIPv6 parses s (the bracket contents, without "[" "]", and without
// any "%25zone" suffix which the caller strips first) as the RFC 3986
// IPv6address production, producing exactly 16 octets.
func parseIPv6(s string) (IPv6Address, error) {
	if strings.Count(s, "::") > 1 {
		return IPv6Address{}, errorsJoin(ErrInvalidIPLiteral, errSyntaxf("at most one '::' elision is allowed in %q", s))
	}

	var left, right []string
	hasElision := strings.Contains(s, "::")
	if hasElision {
		parts := strings.SplitN(s, "::", 2)
		if parts[0] != "" {
			left = strings.Split(parts[0], ":")
		}
		if parts[1] != "" {
			right = strings.Split(parts[1], ":")
		}
	} else {
		if s == "" {
			return IPv6Address{}, errorsJoin(ErrInvalidIPLiteral, errSyntaxf("empty IPv6 address"))
		}
		left = strings.Split(s, ":")
	}

	// An embedded IPv4 tail (ls32 alternative) takes the place of the
	// final 2 groups and may only appear as the very last element.
	tailGroups := right
	if !hasElision {
		tailGroups = left
	}
	var ipv4Tail *IPv4Address
	if n := len(tailGroups); n > 0 && strings.Contains(tailGroups[n-1], ".") {
		addr, err := parseIPv4Strict(tailGroups[n-1])
		if err != nil {
			return IPv6Address{}, errorsJoin(ErrInvalidIPLiteral, err)
		}
		ipv4Tail = &addr
		tailGroups = tailGroups[:n-1]
		if hasElision {
			right = tailGroups
		} else {
			left = tailGroups
		}
	}

	groupCount := func(groups []string) int {
		return len(groups)
	}

	parseGroups := func(groups []string) ([]uint16, error) {
		out := make([]uint16, 0, len(groups))
		for _, g := range groups {
			if g == "" || len(g) > 4 {
				return nil, errorsJoin(ErrInvalidIPLiteral, errSyntaxf("invalid hextet %q", g))
			}
			var v uint32
			for i := 0; i < len(g); i++ {
				d := hexDigit(g[i])
				if d == invalidHexDigit {
					return nil, errorsJoin(ErrInvalidIPLiteral, errSyntaxf("invalid hex digit in %q", g))
				}
				v = v<<4 | uint32(d)
			}
			out = append(out, uint16(v))
		}
		return out, nil
	}

	leftVals, err := parseGroups(left)
	if err != nil {
		return IPv6Address{}, err
	}
	rightVals, err := parseGroups(right)
	if err != nil {
		return IPv6Address{}, err
	}

	ipv4GroupUnits := 0
	if ipv4Tail != nil {
		ipv4GroupUnits = 2
	}

	totalUnits := groupCount(left) + groupCount(right) + ipv4GroupUnits
	const wantUnits = 8

	var full [8]uint16
	if hasElision {
		if totalUnits > wantUnits-1 {
			return IPv6Address{}, errorsJoin(ErrInvalidIPLiteral, errSyntaxf("too many groups with '::' elision in %q", s))
		}
		zeros := wantUnits - totalUnits
		idx := 0
		for _, v := range leftVals {
			full[idx] = v
			idx++
		}
		idx += zeros
		for _, v := range rightVals {
			full[idx] = v
			idx++
		}
		if ipv4Tail != nil {
			oct := ipv4Tail.Octets()
			full[6] = uint16(oct[0])<<8 | uint16(oct[1])
			full[7] = uint16(oct[2])<<8 | uint16(oct[3])
		}
	} else {
		if totalUnits != wantUnits {
			return IPv6Address{}, errorsJoin(ErrInvalidIPLiteral, errSyntaxf("expected %d groups, got %d in %q", wantUnits, totalUnits, s))
		}
		idx := 0
		for _, v := range leftVals {
			full[idx] = v
			idx++
		}
		if ipv4Tail != nil {
			oct := ipv4Tail.Octets()
			full[idx] = uint16(oct[0])<<8 | uint16(oct[1])
			idx++
			full[idx] = uint16(oct[2])<<8 | uint16(oct[3])
			idx++
		}
	}

	var addr IPv6Address
	for i, v := range full {
		addr.octets[2*i] = byte(v >> 8)
		addr.octets[2*i+1] = byte(v)
	}
	return addr, nil
}

// splitZoneID extracts an RFC 6874 "%25" zone-id suffix from the bracket
// contents of an IP-literal, returning the address part and the decoded
// zone (if any).
func splitZoneID(s string) (addrPart string, zone string, hasZone bool, err error) {
	idx := strings.Index(s, "%25")
	if idx < 0 {
		return s, "", false, nil
	}
	zoneRaw := s[idx+3:]
	if zoneRaw == "" {
		return "", "", false, errorsJoin(ErrInvalidIPLiteral, errSyntaxf("empty zone identifier in %q", s))
	}
	ps := NewPercentString(zoneRaw)
	if _, verr := ps.Validate(zoneIDSet); verr != nil {
		return "", "", false, errorsJoin(ErrInvalidIPLiteral, verr)
	}
	return s[:idx], ps.DecodedString(), true, nil
}
