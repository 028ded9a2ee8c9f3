// Package cursor provides the position-tracking rune reader shared by the
// markup and DSL lexers.
package cursor

import "unicode/utf8"

// Pos is a position in the input. Index is a byte offset; Line and Column
// are 1-based and count runes.
type Pos struct {
	Index  int
	Line   int
	Column int
}

// Start is the position of the first rune.
func Start() Pos {
	return Pos{Index: 0, Line: 1, Column: 1}
}

// Cursor reads runes from a string, tracking the position of the next one.
// Copying a Cursor yields an independent cursor at the same position.
type Cursor struct {
	input string
	pos   Pos
}

// New returns a cursor at the start of input.
func New(input string) Cursor {
	return Cursor{input: input, pos: Start()}
}

// Pos returns the position of the next rune.
func (c *Cursor) Pos() Pos {
	return c.pos
}

// Peek returns the next rune without consuming it.
func (c *Cursor) Peek() (rune, bool) {
	if c.pos.Index >= len(c.input) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.input[c.pos.Index:])
	return r, true
}

// Next consumes and returns the next rune.
func (c *Cursor) Next() (rune, bool) {
	if c.pos.Index >= len(c.input) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(c.input[c.pos.Index:])
	c.pos.Index += size
	if r == '\n' {
		c.pos.Line++
		c.pos.Column = 1
	} else {
		c.pos.Column++
	}
	return r, true
}

// NextIf consumes the next rune if it equals r.
func (c *Cursor) NextIf(r rune) bool {
	if p, ok := c.Peek(); ok && p == r {
		c.Next()
		return true
	}
	return false
}

// Input returns the whole input string.
func (c *Cursor) Input() string {
	return c.input
}

// Rest returns the unread part of the input.
func (c *Cursor) Rest() string {
	return c.input[c.pos.Index:]
}
