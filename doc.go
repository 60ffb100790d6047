// Package uri is an RFC 3986 compliant URI / URI-reference parser, builder
// and normalizer.
//
// This is based on the work from fredbi/uri (credits: Frederic BIDON), which
// itself forked ttacon/uri (credits: Trey Tacon). This version replaces the
// original per-component string fields with a single contiguous buffer and
// an offset table, so that a parsed URL can be mutated component-by-component
// (scheme, userinfo, host, port, path, query, fragment) and always re-produce
// a byte-exact, RFC 3986 conformant serialization.
//
// Two families of types are exposed:
//
//   - View: a read-only value holding an immutable serialized string plus
//     its offset table. Cheap to copy; later mutation of a URL it was taken
//     from does not change it.
//   - URL: an owning, mutable container. Every mutator keeps the storage
//     invariants intact, or leaves the URL untouched and returns an error.
//
// Reference: https://www.rfc-editor.org/rfc/rfc3986
// Reference: https://www.rfc-editor.org/rfc/rfc6874 (IPv6 zone identifiers)
package uri
