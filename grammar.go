package uri

// Grammar combinator layer.
//
// Go has no convenient exception-based backtracking, so this module
// expresses recursive-descent productions as a small set of composable
// rule functions instead of one bespoke function per production. A Rule
// reads from a Cursor and either advances it past the bytes it consumed
// and returns a nil error, or leaves the cursor untouched and returns an
// error describing the failure site: callers that need backtracking
// snapshot Cursor.Pos before trying an alternative and restore it on
// failure, per the "alternative" combinator below.

// Cursor walks a fixed, immutable input string.
type Cursor struct {
	s   string
	pos int
}

// NewCursor creates a Cursor positioned at the start of s.
func NewCursor(s string) *Cursor { return &Cursor{s: s} }

// Pos returns the current byte offset.
func (c *Cursor) Pos() int { return c.pos }

// SetPos resets the cursor to a previously observed position (used to
// implement backtracking in Alt).
func (c *Cursor) SetPos(p int) { c.pos = p }

// Done reports whether the cursor has consumed the whole input.
func (c *Cursor) Done() bool { return c.pos >= len(c.s) }

// Remaining returns the unconsumed tail of the input.
func (c *Cursor) Remaining() string { return c.s[c.pos:] }

// Peek returns the byte at the cursor without consuming it, and whether
// one exists.
func (c *Cursor) Peek() (byte, bool) {
	if c.Done() {
		return 0, false
	}
	return c.s[c.pos], true
}

// Advance moves the cursor forward n bytes.
func (c *Cursor) Advance(n int) { c.pos += n }

// Rule matches some grammar production starting at the cursor's current
// position. On success it advances the cursor past the consumed bytes and
// returns a nil error. On failure it MUST leave the cursor at the position
// it started from (or at the precise failure site, for rules that report
// positional errors) and return a non-nil error.
type Rule func(c *Cursor) error

// Seq runs rules left to right, short-circuiting (and restoring the
// cursor to its pre-Seq position) on the first failure.
func Seq(rules ...Rule) Rule {
	return func(c *Cursor) error {
		start := c.Pos()
		for _, r := range rules {
			if err := r(c); err != nil {
				c.SetPos(start)
				return err
			}
		}
		return nil
	}
}

// Alt tries each rule in order and commits to the first one that
// succeeds. If a rule consumes bytes and then a later stage of the
// overall parse fails, the caller is responsible for further
// backtracking; Alt itself only guarantees that a failed alternative
// leaves the cursor where Alt found it.
func Alt(rules ...Rule) Rule {
	return func(c *Cursor) error {
		start := c.Pos()
		var lastErr error
		for _, r := range rules {
			c.SetPos(start)
			if err := r(c); err == nil {
				return nil
			} else {
				lastErr = err
			}
		}
		c.SetPos(start)
		if lastErr == nil {
			lastErr = errorsJoin(ErrSyntax, errSyntaxf("no alternative matched"))
		}
		return lastErr
	}
}

// Opt always succeeds: it runs r and, if it fails, rewinds the cursor and
// succeeds anyway having consumed zero bytes.
func Opt(r Rule) Rule {
	return func(c *Cursor) error {
		start := c.Pos()
		if err := r(c); err != nil {
			c.SetPos(start)
		}
		return nil
	}
}

// Repeat matches r between min and max times (max < 0 means unbounded),
// succeeding as soon as min repetitions are met and stopping greedily at
// the first failed or max-reached repetition.
func Repeat(min, max int, r Rule) Rule {
	return func(c *Cursor) error {
		start := c.Pos()
		count := 0
		for max < 0 || count < max {
			mark := c.Pos()
			if err := r(c); err != nil {
				c.SetPos(mark)
				break
			}
			count++
		}
		if count < min {
			c.SetPos(start)
			return errorsJoin(ErrSyntax, errSyntaxf("expected at least %d repetitions, got %d", min, count))
		}
		return nil
	}
}

// Lookahead succeeds (without consuming) iff r would succeed from the
// current position.
func Lookahead(r Rule) Rule {
	return func(c *Cursor) error {
		mark := c.Pos()
		err := r(c)
		c.SetPos(mark)
		return err
	}
}

// NegLookahead succeeds (without consuming) iff r would fail from the
// current position.
func NegLookahead(r Rule) Rule {
	return func(c *Cursor) error {
		mark := c.Pos()
		err := r(c)
		c.SetPos(mark)
		if err == nil {
			return errorsJoin(ErrSyntax, errSyntaxf("negative lookahead matched unexpectedly at offset %d", mark))
		}
		return nil
	}
}

// Byte matches a single literal byte.
func Byte(b byte) Rule {
	return func(c *Cursor) error {
		got, ok := c.Peek()
		if !ok || got != b {
			return errorsJoin(ErrSyntax, errSyntaxf("expected %q at offset %d", b, c.Pos()))
		}
		c.Advance(1)
		return nil
	}
}

// InSet matches exactly one byte that belongs to set.
func InSet(set CharSet) Rule {
	return func(c *Cursor) error {
		got, ok := c.Peek()
		if !ok || !set.Contains(got) {
			return errorsJoin(ErrSyntax, errSyntaxf("expected a character from the set at offset %d", c.Pos()))
		}
		c.Advance(1)
		return nil
	}
}

// PctEncoded matches a single "%" HEXDIG HEXDIG triplet.
func PctEncoded(c *Cursor) error {
	_, n, err := percentTriplet(c.s, c.pos)
	if err != nil {
		return newErrorAt(err, c.pos)
	}
	c.Advance(n)
	return nil
}

// End matches only at end of input.
func End(c *Cursor) error {
	if !c.Done() {
		return errorsJoin(ErrSyntax, errSyntaxf("expected end of input at offset %d", c.Pos()))
	}
	return nil
}

// parseWhole runs r and requires that it consumes the entire input.
func parseWhole(s string, r Rule) error {
	c := NewCursor(s)
	if err := r(c); err != nil {
		return err
	}
	if !c.Done() {
		return newErrorAt(errorsJoin(ErrSyntax, errSyntaxf("unconsumed input starting at offset %d: %q", c.Pos(), c.Remaining())), c.Pos())
	}
	return nil
}
