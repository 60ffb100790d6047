package uri

import (
	"sync"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

// NormalizeOption tunes Normalize's behavior beyond the mandatory RFC 3986
// §6.2.2 syntax-based steps (normalize.go): IDNA host folding and Unicode
// NFC normalization of textual components, both opt-in since they touch
// bytes outside what syntax-based normalization alone is allowed to
// change. Options are pooled so that applying zero of them never
// allocates.
type (
	NormalizeOption func(*normalizeOptions)

	normalizeOptions struct {
		applyIDNA    bool
		idnaProfile  *idna.Profile
		applyNFC     bool
	}

	normalizeOptionsPool struct {
		*sync.Pool
	}
)

var (
	packageLevelNormalizeDefaults = normalizeOptions{}

	muxNormalizeDefaults sync.Mutex
	poolOfNormalizeOptions = normalizeOptionsPool{
		Pool: &sync.Pool{
			New: func() any {
				o := packageLevelNormalizeDefaults
				return &o
			},
		},
	}
)

func borrowNormalizeOptions() *normalizeOptions {
	o := poolOfNormalizeOptions.Get().(*normalizeOptions)
	*o = packageLevelNormalizeDefaults
	return o
}

func redeemNormalizeOptions(o *normalizeOptions) {
	if o == &packageLevelNormalizeDefaults {
		return
	}
	poolOfNormalizeOptions.Put(o)
}

func applyNormalizeOptions(opts []NormalizeOption) (*normalizeOptions, func(*normalizeOptions)) {
	if len(opts) == 0 {
		return &packageLevelNormalizeDefaults, redeemNormalizeOptions
	}
	o := borrowNormalizeOptions()
	for _, apply := range opts {
		apply(o)
	}
	return o, redeemNormalizeOptions
}

// SetDefaultNormalizeOptions tweaks package-level Normalize defaults. Use
// this only during initialization: it mutates a package global.
func SetDefaultNormalizeOptions(opts ...NormalizeOption) {
	muxNormalizeDefaults.Lock()
	defer muxNormalizeDefaults.Unlock()
	for _, apply := range opts {
		apply(&packageLevelNormalizeDefaults)
	}
}

// WithIDNA enables IDNA host folding during Normalize: a reg-name host is
// converted to its ASCII (Punycode) form via the given profile (or
// idna.Lookup if none is given) after the usual syntax-based steps have run.
func WithIDNA(enabled bool, profile ...idna.Option) NormalizeOption {
	return func(o *normalizeOptions) {
		o.applyIDNA = enabled
		if len(profile) > 0 {
			o.idnaProfile = idna.New(profile...)
		} else {
			o.idnaProfile = idna.Lookup
		}
	}
}

// WithUnicodeNFC enables Unicode NFC normalization of decoded userinfo,
// path, query and fragment text during Normalize, applied before the
// bytes are re-encoded.
func WithUnicodeNFC(enabled bool) NormalizeOption {
	return func(o *normalizeOptions) {
		o.applyNFC = enabled
	}
}

// NormalizeWith runs Normalize plus any opted-in IDNA/NFC transforms. u is
// not mutated.
func (u *URL) NormalizeWith(opts ...NormalizeOption) (*URL, error) {
	o, redeem := applyNormalizeOptions(opts)
	defer redeem(o)

	n, err := u.Normalize()
	if err != nil {
		return nil, err
	}

	if o.applyIDNA && n.HostType() == HostName {
		profile := o.idnaProfile
		if profile == nil {
			profile = idna.Lookup
		}
		ascii, err := profile.ToASCII(n.DecodedHost())
		if err != nil {
			return nil, errorsJoin(ErrInvalidHost, err)
		}
		if err := n.SetHost(Encode(ascii, regNameSet)); err != nil {
			return nil, err
		}
	}

	if o.applyNFC {
		if n.HasUserInfo() {
			user := Encode(norm.NFC.String(n.DecodedUser()), userInfoSet)
			userinfo := user
			if n.HasPassword() {
				userinfo += ":" + Encode(norm.NFC.String(n.DecodedPassword()), userInfoSet)
			}
			if err := n.SetUserInfo(userinfo); err != nil {
				return nil, err
			}
		}
		segs := n.Segments()
		for i, s := range segs {
			segs[i] = Encode(norm.NFC.String(NewPercentString(s).DecodedString()), pathSegmentSet)
		}
		if err := n.SetPath(joinSegments(segs, n.IsPathAbsolute())); err != nil {
			return nil, err
		}
		if n.HasQuery() {
			if err := n.SetQuery(Encode(norm.NFC.String(n.DecodedQuery()), queryFragmentSet)); err != nil {
				return nil, err
			}
		}
		if n.HasFragment() {
			if err := n.SetFragment(Encode(norm.NFC.String(n.DecodedFragment()), queryFragmentSet)); err != nil {
				return nil, err
			}
		}
	}

	return n, nil
}
