package uri

// encoding.TextMarshaler / encoding.TextUnmarshaler, so a URL can live as
// a struct field in JSON/YAML/env-var config without a bespoke
// (Un)MarshalJSON pair.

// MarshalText implements encoding.TextMarshaler.
func (u *URL) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts anything
// ParseReference accepts (scheme optional), since config values are
// commonly relative.
func (u *URL) UnmarshalText(text []byte) error {
	parsed, err := ParseReference(string(text))
	if err != nil {
		return err
	}
	*u = *parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for the read-only View.
func (v View) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}
