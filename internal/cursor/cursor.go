// Copyright 2025 The Fixpp Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cursor implements a zero-copy byte cursor over a FIX frame.
//
// A Cursor never allocates; every "view" it hands out is a subslice of the
// input it was built from. The field delimiter is a cursor property, not a
// compile-time constant, so tests can substitute '|' for the wire SOH
// (0x01) as described in spec §4.3.
package cursor

// DefaultDelim is the wire SOH delimiter, ASCII 0x01.
const DefaultDelim byte = 0x01

// Cursor scans an input slice left to right. It holds no allocations of its
// own; Token and the match* methods all return subslices of data.
type Cursor struct {
	data  []byte
	pos   int
	delim byte
}

// New returns a cursor over data using the canonical SOH delimiter.
func New(data []byte) *Cursor {
	return &Cursor{data: data, delim: DefaultDelim}
}

// NewDelim returns a cursor over data using an explicit delimiter, for test
// harnesses that render frames with '|' instead of SOH.
func NewDelim(data []byte, delim byte) *Cursor {
	return &Cursor{data: data, delim: delim}
}

// Delim returns the delimiter this cursor matches on.
func (c *Cursor) Delim() byte { return c.delim }

// Pos returns the current offset into the original input.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the length of the original input, for offset math in errors.
func (c *Cursor) Len() int { return len(c.data) }

// Bytes returns the entire original input slice (for checksum/length
// validation, which needs to re-scan bytes already consumed).
func (c *Cursor) Bytes() []byte { return c.data }

// Eof reports whether the cursor has consumed the whole input.
func (c *Cursor) Eof() bool { return c.pos >= len(c.data) }

// Remaining returns the unconsumed suffix of the input.
func (c *Cursor) Remaining() []byte { return c.data[c.pos:] }

// Current returns the byte at pos, and false if the cursor is at EOF.
func (c *Cursor) Current() (byte, bool) {
	if c.Eof() {
		return 0, false
	}
	return c.data[c.pos], true
}

// Advance moves the cursor forward by n bytes, stopping at len(data) if n
// would overrun the input.
func (c *Cursor) Advance(n int) {
	c.pos += n
	if c.pos > len(c.data) {
		c.pos = len(c.data)
	}
}

// SeekTo sets the cursor's absolute position.
func (c *Cursor) SeekTo(pos int) {
	c.pos = pos
}

// MatchLiteral advances one byte if it equals b, and reports whether it did.
func (c *Cursor) MatchLiteral(b byte) bool {
	if c.Eof() || c.data[c.pos] != b {
		return false
	}
	c.pos++
	return true
}

// MatchDelim consumes the configured delimiter, returning false (and not
// advancing) if the next byte is not the delimiter.
func (c *Cursor) MatchDelim() bool {
	return c.MatchLiteral(c.delim)
}

// MatchInt reads an optionally '-'-signed decimal integer starting at pos
// and advances past it. Returns false without advancing if there is no
// digit (or sign-then-digit) at pos.
func (c *Cursor) MatchInt(out *int64) bool {
	start := c.pos
	neg := false
	if !c.Eof() && c.data[c.pos] == '-' {
		neg = true
		c.pos++
	}
	digitStart := c.pos
	var v int64
	for !c.Eof() {
		d := c.data[c.pos]
		if d < '0' || d > '9' {
			break
		}
		v = v*10 + int64(d-'0')
		c.pos++
	}
	if c.pos == digitStart {
		c.pos = start
		return false
	}
	if neg {
		v = -v
	}
	*out = v
	return true
}

// MatchUntil advances until delim is seen (without consuming it) or until
// EOF. Returns true if delim was found, and the view of bytes scanned
// (excluding delim).
func (c *Cursor) MatchUntil(delim byte) (view []byte, found bool) {
	start := c.pos
	for !c.Eof() {
		if c.data[c.pos] == delim {
			return c.data[start:c.pos], true
		}
		c.pos++
	}
	return c.data[start:c.pos], false
}

// MatchN consumes exactly n bytes and returns them as a view. Returns false
// (without advancing) if fewer than n bytes remain.
func (c *Cursor) MatchN(n int) (view []byte, ok bool) {
	if n < 0 || c.pos+n > len(c.data) {
		return nil, false
	}
	v := c.data[c.pos : c.pos+n]
	c.pos += n
	return v, true
}

// Token begins a capture; call End on the returned Token to get the view
// between the start position and the cursor's current position.
func (c *Cursor) Token() Token {
	return Token{c: c, start: c.pos}
}

// Token captures a byte range as the cursor advances.
type Token struct {
	c     *Cursor
	start int
}

// End returns the view from the token's start to the cursor's current
// position.
func (t Token) End() []byte {
	return t.c.data[t.start:t.c.pos]
}

// Snapshot captures the cursor's position for a scoped revert.
func (c *Cursor) Snapshot() Snapshot {
	return Snapshot{c: c, pos: c.pos}
}

// Snapshot is a scoped position marker. Calling Revert restores the
// cursor's position; calling Commit is a no-op documenting that the
// snapshot is no longer needed. A Snapshot that is simply dropped without
// either call has no effect (Go has no destructors), so callers must
// explicitly Revert on the failure path -- unlike the source's RAII
// scope guard, this is not automatic.
type Snapshot struct {
	c   *Cursor
	pos int
}

// Revert restores the cursor to the position captured by Snapshot.
func (s Snapshot) Revert() {
	s.c.pos = s.pos
}

// Commit is a documentation no-op: the snapshot is not going to be used to
// revert.
func (s Snapshot) Commit() {}
