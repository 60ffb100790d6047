package uri

import (
	"errors"
	"fmt"
)

// Error wraps a parsing or validation failure with the byte offset at which
// the failure was detected, when that information is available.
//
// Error implements error and supports errors.Is/errors.As against the
// sentinel members of the error taxonomy below.
type Error struct {
	err    error
	offset int
	hasPos bool
}

// newError wraps err without position information.
func newError(err error) *Error {
	return &Error{err: err}
}

// newErrorAt wraps err with the byte offset at which parsing failed.
func newErrorAt(err error, offset int) *Error {
	return &Error{err: err, offset: offset, hasPos: true}
}

func (e *Error) Error() string {
	if e == nil || e.err == nil {
		return ""
	}
	if e.hasPos {
		return fmt.Sprintf("%s (at byte %d)", e.err.Error(), e.offset)
	}
	return e.err.Error()
}

func (e *Error) Unwrap() error { return e.err }

// Offset returns the byte position of the failure and whether one is known.
func (e *Error) Offset() (int, bool) {
	if e == nil {
		return 0, false
	}
	return e.offset, e.hasPos
}

// errSyntaxf builds an ad hoc descriptive error, to be joined with a
// taxonomy sentinel by the caller.
func errSyntaxf(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}

// errorsJoin composes a taxonomy sentinel with a more specific cause, the
// way fmt.Errorf("%w: %w", ...) would if it allowed more than one %w prior
// to Go 1.20; kept as a named helper for readability at call sites and for
// parity with callers built against Go versions predating errors.Join.
func errorsJoin(errs ...error) error {
	return errors.Join(errs...)
}

// Error taxonomy (kinds, not concrete types). Each failing operation
// returns (or wraps) one of these so that callers can errors.Is against
// a stable classification regardless of the specific message text.
var (
	// ErrSyntax is returned when input does not conform to the requested
	// grammar production.
	ErrSyntax = errors.New("syntax error")

	// ErrInvalidPercentEncoding is returned when a '%' is not followed by
	// two hex digits, or an unexpected byte appears where only
	// percent-encoded or allowed-set bytes are permitted.
	ErrInvalidPercentEncoding = errors.New("invalid percent-encoding")

	// ErrInvalidIPLiteral is returned when a bracketed host is neither a
	// valid IPv6 address nor a valid IPvFuture literal.
	ErrInvalidIPLiteral = errors.New("invalid IP literal")

	// ErrInvalidIPv4 is returned when an unbracketed dotted sequence has
	// a malformed or out-of-range octet.
	ErrInvalidIPv4 = errors.New("invalid IPv4 address")

	// ErrOverflow is returned when a numeric component (port, IPv4
	// octet) exceeds its allowed range.
	ErrOverflow = errors.New("numeric overflow")

	// ErrNotABase is returned when reference resolution is requested
	// against a base URL that has no scheme.
	ErrNotABase = errors.New("base URL has no scheme")

	// ErrOutOfRange is returned for indexed access beyond the size of a
	// segments or params collection.
	ErrOutOfRange = errors.New("index out of range")

	// ErrInvalidArgument is returned when an enum value is passed where
	// only a subset of values are meaningful (e.g. the "unknown" scheme
	// sentinel passed to SetScheme).
	ErrInvalidArgument = errors.New("invalid argument")

	// legacy-named aliases kept for readability at specific call sites;
	// each refers to the taxonomy member it refines.
	ErrInvalidURI            = ErrSyntax
	ErrInvalidScheme         = ErrSyntax
	ErrNoSchemeFound         = ErrSyntax
	ErrInvalidQuery          = ErrSyntax
	ErrInvalidFragment       = ErrSyntax
	ErrInvalidPath           = ErrSyntax
	ErrInvalidHost           = ErrSyntax
	ErrInvalidHostAddress    = ErrInvalidIPLiteral
	ErrInvalidRegisteredName = ErrSyntax
	ErrInvalidUserInfo       = ErrSyntax
	ErrInvalidPort           = ErrSyntax
	ErrMissingHost           = ErrSyntax
	ErrInvalidEscaping       = ErrInvalidPercentEncoding
	ErrInvalidDNSName        = ErrSyntax
)
