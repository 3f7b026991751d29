// Tests the parse cursor by walking a small sample program and verifying the words, lines and balanced
// parenthesis spans it produces.

package frontend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCursorWords verifies that word stops at whitespace and structural characters and that line
// numbers follow the newlines consumed.
func TestCursorWords(t *testing.T) {
	c := newCursor("int main(int a,int b)\n{\n  return a;\n}")

	exp := []struct {
		val  string
		line int
	}{
		{val: "int", line: 1},
		{val: "main", line: 1},
	}
	for _, e1 := range exp {
		assert.Equal(t, e1.val, c.word())
		assert.Equal(t, e1.line, c.line)
	}

	assert.Equal(t, '(', c.next())
	assert.Equal(t, "int", c.word())
	assert.Equal(t, "a", c.word())
	assert.Equal(t, ',', c.next())
	assert.Equal(t, "int", c.word())
	assert.Equal(t, "b", c.word())
	assert.Equal(t, ')', c.next())

	c.skipSpace()
	assert.Equal(t, 2, c.line)
	assert.Equal(t, '{', c.next())
	assert.Equal(t, "return", c.word())
	assert.Equal(t, 3, c.line)
	assert.Equal(t, "a", c.word())
	assert.Equal(t, ';', c.next())
	c.skipSpace()
	assert.Equal(t, '}', c.next())
	assert.True(t, c.atEOF())
	assert.Equal(t, rune(eof), c.next())
	assert.Equal(t, "", c.word())
}

// TestCursorBackup verifies that backup restores the line counter when it steps over a newline.
func TestCursorBackup(t *testing.T) {
	c := newCursor("a\nb")
	assert.Equal(t, 'a', c.next())
	assert.Equal(t, '\n', c.next())
	assert.Equal(t, 2, c.line)
	c.backup()
	assert.Equal(t, 1, c.line)
	assert.Equal(t, '\n', c.peek())
	assert.Equal(t, 1, c.line)

	// Only one backup per next.
	c.backup()
	assert.Equal(t, 1, c.pos)
	assert.Equal(t, 1, c.line)
}

func TestCursorBalanced(t *testing.T) {
	tests := []struct {
		src  string
		text string
		ok   bool
		rest string
	}{
		{src: "a + b) {", text: "a + b", ok: true, rest: " {"},
		{src: "f(a, (b)) == 1) x", text: "f(a, (b)) == 1", ok: true, rest: " x"},
		{src: ")", text: "", ok: true, rest: ""},
		{src: "(a + b", text: "(a + b", ok: false, rest: ""},
	}
	for _, e1 := range tests {
		c := newCursor(e1.src)
		text, ok := c.balanced()
		require.Equal(t, e1.ok, ok, e1.src)
		assert.Equal(t, e1.text, text, e1.src)
		assert.Equal(t, e1.rest, c.input[c.pos:], e1.src)
	}
}

func TestIsDigits(t *testing.T) {
	assert.True(t, isDigits("0"))
	assert.True(t, isDigits("2147483648"))
	assert.False(t, isDigits(""))
	assert.False(t, isDigits("-1"))
	assert.False(t, isDigits("1a"))
}

func TestIsName(t *testing.T) {
	assert.True(t, isName("x"))
	assert.True(t, isName("x1"))
	assert.True(t, isName("iffy"))
	assert.False(t, isName(""))
	assert.False(t, isName("12"))
	assert.False(t, isName("x=0"))
	assert.False(t, isName("a+b"))
	assert.False(t, isName("f("))
}
