package uri

import "strings"

// Query-parameters editor. Like the segments editor, every
// mutating method rebuilds the query string from the edited Param slice
// and calls SetQuery.

// Params returns the ordered query parameters.
func (u *URL) Params() []Param { return splitQueryParams(u.EncodedQuery()) }

// ParamAt returns the parameter at pos, or (Param{}, false) if out of
// range.
func (u *URL) ParamAt(pos int) (Param, bool) {
	params := u.Params()
	if pos < 0 || pos >= len(params) {
		return Param{}, false
	}
	return params[pos], true
}

func (u *URL) setParams(params []Param) error {
	return u.SetQuery(joinQueryParams(params))
}

// AppendParam adds a parameter to the end of the query.
func (u *URL) AppendParam(p Param) error {
	return u.setParams(append(u.Params(), p))
}

// InsertParam inserts p at pos, shifting later parameters right.
func (u *URL) InsertParam(pos int, p Param) error {
	params := u.Params()
	if pos < 0 || pos > len(params) {
		return errorsJoin(ErrOutOfRange, errSyntaxf("param position %d out of range [0,%d]", pos, len(params)))
	}
	out := make([]Param, 0, len(params)+1)
	out = append(out, params[:pos]...)
	out = append(out, p)
	out = append(out, params[pos:]...)
	return u.setParams(out)
}

// ReplaceParam overwrites the parameter at pos.
func (u *URL) ReplaceParam(pos int, p Param) error {
	params := u.Params()
	if pos < 0 || pos >= len(params) {
		return errorsJoin(ErrOutOfRange, errSyntaxf("param position %d out of range [0,%d)", pos, len(params)))
	}
	params[pos] = p
	return u.setParams(params)
}

// EraseParam removes the parameter at pos.
func (u *URL) EraseParam(pos int) error {
	params := u.Params()
	if pos < 0 || pos >= len(params) {
		return errorsJoin(ErrOutOfRange, errSyntaxf("param position %d out of range [0,%d)", pos, len(params)))
	}
	return u.setParams(append(params[:pos], params[pos+1:]...))
}

// EraseParamRange removes parameters in [from, to).
func (u *URL) EraseParamRange(from, to int) error {
	params := u.Params()
	if from < 0 || to > len(params) || from > to {
		return errorsJoin(ErrOutOfRange, errSyntaxf("param range [%d,%d) out of bounds for length %d", from, to, len(params)))
	}
	out := make([]Param, 0, len(params)-(to-from))
	out = append(out, params[:from]...)
	out = append(out, params[to:]...)
	return u.setParams(out)
}

// EraseParamsByKey removes every parameter whose key matches key, honoring
// ignoreCase.
func (u *URL) EraseParamsByKey(key string, ignoreCase bool) error {
	params := u.Params()
	out := make([]Param, 0, len(params))
	for _, p := range params {
		if keysEqual(p.Key, key, ignoreCase) {
			continue
		}
		out = append(out, p)
	}
	return u.setParams(out)
}

// SetParam sets the value of the first parameter matching key and erases
// every further match, or appends a new parameter if none matches.
func (u *URL) SetParam(key, value string, ignoreCase bool) error {
	params := u.Params()
	out := make([]Param, 0, len(params)+1)
	set := false
	for _, p := range params {
		if !keysEqual(p.Key, key, ignoreCase) {
			out = append(out, p)
			continue
		}
		if set {
			continue
		}
		out = append(out, Param{Key: p.Key, Value: value, HasValue: true})
		set = true
	}
	if !set {
		out = append(out, Param{Key: key, Value: value, HasValue: true})
	}
	return u.setParams(out)
}

// UnsetParam removes the value from the parameter at pos, leaving a
// valueless key ("key" instead of "key=value").
func (u *URL) UnsetParam(pos int) error {
	params := u.Params()
	if pos < 0 || pos >= len(params) {
		return errorsJoin(ErrOutOfRange, errSyntaxf("param position %d out of range [0,%d)", pos, len(params)))
	}
	params[pos] = Param{Key: params[pos].Key}
	return u.setParams(params)
}

func keysEqual(a, b string, ignoreCase bool) bool {
	if ignoreCase {
		return strings.EqualFold(a, b)
	}
	return a == b
}
