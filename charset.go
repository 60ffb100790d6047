package uri

import "github.com/bits-and-blooms/bitset"

// CharSet is a predicate over bytes with a fast membership table, backed by
// a 256-bit set. It is the building block every RFC 3986 production uses to
// decide which bytes may appear unescaped in a given component.
type CharSet struct {
	bits *bitset.BitSet
}

// newCharSet builds a CharSet containing exactly the given bytes.
func newCharSet(bytes ...byte) CharSet {
	b := bitset.New(256)
	for _, c := range bytes {
		b.Set(uint(c))
	}
	return CharSet{bits: b}
}

// newCharSetRange adds every byte in [lo, hi] (inclusive) to a new CharSet.
func newCharSetRange(lo, hi byte) CharSet {
	b := bitset.New(256)
	for c := int(lo); c <= int(hi); c++ {
		b.Set(uint(c))
	}
	return CharSet{bits: b}
}

// union returns a new CharSet containing the members of c and all others.
func (c CharSet) union(others ...CharSet) CharSet {
	merged := c.bits.Clone()
	for _, o := range others {
		merged = merged.Union(o.bits)
	}
	return CharSet{bits: merged}
}

// with returns a copy of c with the given bytes added.
func (c CharSet) with(bytes ...byte) CharSet {
	clone := c.bits.Clone()
	for _, ch := range bytes {
		clone.Set(uint(ch))
	}
	return CharSet{bits: clone}
}

// Contains reports whether c is in the set. Constant time.
func (c CharSet) Contains(ch byte) bool {
	return c.bits.Test(uint(ch))
}

// FindFirstNotIn returns the index of the first byte of s that is not a
// member of the set, or len(s) if every byte is a member.
func (c CharSet) FindFirstNotIn(s string) int {
	for i := 0; i < len(s); i++ {
		if !c.Contains(s[i]) {
			return i
		}
	}
	return len(s)
}

// FindFirstIn returns the index of the first byte of s that is a member of
// the set, or -1 if no byte qualifies.
func (c CharSet) FindFirstIn(s string) int {
	for i := 0; i < len(s); i++ {
		if c.Contains(s[i]) {
			return i
		}
	}
	return -1
}

// Predefined RFC 3986 character sets. Each is built once at init time from
// the grammar's terminal alphabets (§2.2/§2.3 gen-delims and sub-delims,
// §3.3 pchar, and the per-component extensions built on top of them).
var (
	alphaSet     CharSet
	digitSet     CharSet
	hexDigitSet  CharSet
	unreservedSet CharSet
	subDelimsSet CharSet
	genDelimsSet CharSet

	// pchar = unreserved / pct-encoded / sub-delims / ":" / "@"
	// (the percent-encoded alternative is handled by the scanners, not
	// baked into the charset itself)
	pcharSet CharSet

	userInfoSet   CharSet // unreserved / sub-delims / ":"
	regNameSet    CharSet // unreserved / sub-delims
	pathSegmentSet CharSet // pchar
	queryFragmentSet CharSet // pchar / "/" / "?"
	ipvFutureSet  CharSet // unreserved / sub-delims / ":"
	zoneIDSet     CharSet // unreserved (zone-id body before pct-decoding)
	schemeTailSet CharSet // ALPHA / DIGIT / "+" / "-" / "."
)

func init() {
	alphaSet = newCharSetRange('a', 'z').union(newCharSetRange('A', 'Z'))
	digitSet = newCharSetRange('0', '9')
	hexDigitSet = digitSet.union(newCharSetRange('a', 'f'), newCharSetRange('A', 'F'))

	unreservedSet = alphaSet.union(digitSet).with('-', '.', '_', '~')
	subDelimsSet = newCharSet('!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=')
	genDelimsSet = newCharSet(':', '/', '?', '#', '[', ']', '@')

	pcharSet = unreservedSet.union(subDelimsSet).with(':', '@')
	userInfoSet = unreservedSet.union(subDelimsSet).with(':')
	regNameSet = unreservedSet.union(subDelimsSet)
	pathSegmentSet = pcharSet
	queryFragmentSet = pcharSet.with('/', '?')
	ipvFutureSet = unreservedSet.union(subDelimsSet).with(':')
	zoneIDSet = unreservedSet
	schemeTailSet = alphaSet.union(digitSet).with('+', '-', '.')
}
