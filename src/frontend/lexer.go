// The parse context is a cursor over the source text. It is based on the scanner of Rob Pike's talk on Go
// lexers (https://talks.golang.org/2011/lex.slide#1): next, backup and peek move over runes of the input while
// the cursor keeps the current line for error reporting. Every parse step receives the cursor explicitly.

package frontend

import (
	"strings"
	"unicode/utf8"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// cursor traverses a source stream character by character.
type cursor struct {
	input string // The source stream of characters.
	pos   int    // The current position of the cursor in the source stream.
	width int    // The width of the last rune read, in bytes.
	line  int    // The current line in the source stream. Not zero-indexed.
}

// ---------------------
// ----- Constants -----
// ---------------------

const eof = 0 // Same as '\0' for null-terminated C strings.

// nameStop holds the characters that end a name even without surrounding whitespace.
const nameStop = "(){},;"

// ----------------------------
// ----- Cursor functions -----
// ----------------------------

// newCursor creates and returns a pointer to a new cursor at the start of src.
func newCursor(src string) *cursor {
	return &cursor{
		input: src,
		line:  1,
	}
}

// next returns the next rune in the input, or eof at the end of input.
func (c *cursor) next() rune {
	if c.pos >= len(c.input) {
		c.width = 0
		return eof
	}
	var r rune
	r, c.width = utf8.DecodeRuneInString(c.input[c.pos:])
	c.pos += c.width
	if r == '\n' {
		c.line++
	}
	return r
}

// backup steps back one rune. Should only be called once per call of next.
func (c *cursor) backup() {
	if c.width == 0 {
		return
	}
	c.pos -= c.width
	if c.input[c.pos] == '\n' {
		c.line--
	}
	c.width = 0
}

// peek returns, but does not consume, the next rune in the input.
func (c *cursor) peek() rune {
	r := c.next()
	c.backup()
	return r
}

// atEOF returns true if the whole input has been consumed.
func (c *cursor) atEOF() bool {
	return c.pos >= len(c.input)
}

// skipSpace consumes whitespace.
func (c *cursor) skipSpace() {
	for isSpace(c.peek()) {
		c.next()
	}
}

// word skips leading whitespace and consumes a name: every rune up to whitespace, a
// structural character or end of input.
func (c *cursor) word() string {
	c.skipSpace()
	start := c.pos
	for {
		r := c.next()
		if r == eof {
			break
		}
		if isSpace(r) || strings.ContainsRune(nameStop, r) {
			c.backup()
			break
		}
	}
	return c.input[start:c.pos]
}

// balanced consumes text up to the parenthesis closing an already consumed '(' and returns the text
// between them. The closing parenthesis is consumed too. false is returned if the input ends first.
func (c *cursor) balanced() (string, bool) {
	start := c.pos
	depth := 1
	for {
		r := c.next()
		switch r {
		case eof:
			return c.input[start:c.pos], false
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return c.input[start : c.pos-1], true
			}
		}
	}
}

// ----------------------------
// ----- Helper functions -----
// ----------------------------

// isDigit return true if rune r is a digit in the range [0-9].
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isSpace return true if rune r is a whitespace character.
func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\f' || r == '\r' || r == '\v'
}

// isDigits returns true if s is a non-empty string of digits.
func isDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !isDigit(r) {
			return false
		}
	}
	return true
}

// isName returns true if s can name a function, argument or local: it is not a literal and holds
// no operator or punctuation character.
func isName(s string) bool {
	return len(s) > 0 && !isDigits(s) && !strings.ContainsAny(s, "+-*/=<>!(){},;")
}
