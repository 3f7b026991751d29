package frontend

import (
	"strings"
	"tdc/src/ir"
	"tdc/src/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dump renders the tree rooted at n in the indented form of ir.Node.Print.
func dump(n *ir.Node) string {
	sb := strings.Builder{}
	n.Print(&sb, 0)
	return sb.String()
}

func mustParse(t *testing.T, src string) (*ir.Node, *Lexer) {
	t.Helper()
	root, l, err := ParseSource(src)
	require.NoError(t, err)
	require.NotNil(t, root)
	return root, l
}

func TestParseTrees(t *testing.T) {
	tests := []struct {
		name string
		src  string
		exp  string
	}{
		{
			name: "return literal",
			src:  "int main(){ return 0; }",
			exp: `ROOT
  FUNCTION [0]
    EXPRESSION
      KEYWORD [return]
      LITERAL [0]
`,
		},
		{
			name: "locals",
			src:  "int main(){ int x; x = 2; int y; y = 3; return x + y; }",
			exp: `ROOT
  FUNCTION [0]
    EXPRESSION
      KEYWORD [declaration]
        IDENTIFIER [0]
    EXPRESSION
      OPERATOR [=]
      IDENTIFIER [0]
      LITERAL [0]
    EXPRESSION
      KEYWORD [declaration]
        IDENTIFIER [1]
    EXPRESSION
      OPERATOR [=]
      IDENTIFIER [1]
      LITERAL [1]
    EXPRESSION
      KEYWORD [return]
      EXPRESSION
        OPERATOR [+]
        IDENTIFIER [0]
        IDENTIFIER [1]
`,
		},
		{
			name: "call",
			src:  "int add(int a, int b){ return a + b; } int main(){ return add(2,3); }",
			exp: `ROOT
  FUNCTION [0]
    EXPRESSION
      KEYWORD [return]
      EXPRESSION
        OPERATOR [+]
        ARGUMENT [0]
        ARGUMENT [1]
  FUNCTION [1]
    EXPRESSION
      KEYWORD [return]
      EXPRESSION
        OPERATOR [call]
        FUNCTION [0]
        LITERAL [0]
        LITERAL [1]
`,
		},
		{
			name: "if",
			src:  "int main(){ int x; x = 1; if (x) { return 9; } return 0; }",
			exp: `ROOT
  FUNCTION [0]
    EXPRESSION
      KEYWORD [declaration]
        IDENTIFIER [0]
    EXPRESSION
      OPERATOR [=]
      IDENTIFIER [0]
      LITERAL [0]
    IF
      IDENTIFIER [0]
      EXPRESSION
        KEYWORD [return]
        LITERAL [1]
    EXPRESSION
      KEYWORD [return]
      LITERAL [2]
`,
		},
		{
			name: "no precedence",
			src:  "int main(){ return 2 * 3 + 1; }",
			exp: `ROOT
  FUNCTION [0]
    EXPRESSION
      KEYWORD [return]
      EXPRESSION
        OPERATOR [*]
        LITERAL [0]
        EXPRESSION
          OPERATOR [+]
          LITERAL [1]
          LITERAL [2]
`,
		},
		{
			name: "parentheses and initialiser",
			src:  "int main(){ int x = ((4)); return (x - 1) / 2; }",
			exp: `ROOT
  FUNCTION [0]
    EXPRESSION
      KEYWORD [declaration]
        IDENTIFIER [0]
      LITERAL [0]
    EXPRESSION
      KEYWORD [return]
      EXPRESSION
        OPERATOR [/]
        EXPRESSION
          OPERATOR [-]
          IDENTIFIER [0]
          LITERAL [1]
        LITERAL [2]
`,
		},
		{
			name: "call with trailing expression",
			src:  "int one(){ return 1; } int main(){ return one() + 2; }",
			exp: `ROOT
  FUNCTION [0]
    EXPRESSION
      KEYWORD [return]
      LITERAL [0]
  FUNCTION [1]
    EXPRESSION
      KEYWORD [return]
      EXPRESSION
        OPERATOR [+]
        EXPRESSION
          OPERATOR [call]
          FUNCTION [0]
        LITERAL [1]
`,
		},
		{
			name: "printn and dangling semicolon",
			src:  "int main(){ printn 42;; return 0; }",
			exp: `ROOT
  FUNCTION [0]
    EXPRESSION
      KEYWORD [print]
      LITERAL [0]
    EXPRESSION
      KEYWORD [print]
      LITERAL [1]
    EXPRESSION
      KEYWORD [print]
      LITERAL [2]
    EXPRESSION
      KEYWORD [return]
      LITERAL [3]
`,
		},
	}
	for _, e1 := range tests {
		t.Run(e1.name, func(t *testing.T) {
			root, _ := mustParse(t, e1.src)
			assert.Equal(t, e1.exp, dump(root))
		})
	}
}

func TestParseTables(t *testing.T) {
	_, l := mustParse(t, "int add(int a, int b){ int s = a + b; return s; }\nint main(){ printn 7; return add(20, 22); }")

	require.Len(t, l.Tab.Functions, 2)
	assert.Equal(t, "add", l.Tab.Functions[0].Name)
	assert.Equal(t, []ir.DataType{ir.DataInteger, ir.DataInteger}, l.Tab.Functions[0].Args)
	assert.Equal(t, []ir.DataType{ir.DataInteger}, l.Tab.Functions[0].Locals)
	assert.Equal(t, 2, l.Tab.Functions[1].Line)
	assert.Empty(t, l.Tab.Functions[1].Locals)
	assert.Equal(t, []int{'7', 10, 20, 22}, l.Tab.Literals)
	assert.Equal(t, []ir.Ident{{Typ: ir.DataInteger, Slot: 0, Func: 0}}, l.Tab.Identifiers)
}

func TestParseScopes(t *testing.T) {
	_, l := mustParse(t, "int f(int a){ int x; return a; } int main(){ int a; a = f(1); return a; }")

	// Arguments and locals are unbound once their function ends, function names stay.
	assert.False(t, l.Symbols.Bound("a"))
	assert.False(t, l.Symbols.Bound("x"))
	class, key := l.Symbols.Lookup("main")
	assert.Equal(t, ir.FUNCTION, class)
	assert.Equal(t, 1, key)

	// A local may shadow a function name for the rest of its function.
	root, l := mustParse(t, "int g(){ return 1; } int main(){ int g = 2; return g; }")
	assert.Equal(t, ir.IDENTIFIER, root.Children[1].Children[1].Children[1].Class)
	class, _ = l.Symbols.Lookup("g")
	assert.Equal(t, ir.FUNCTION, class)

	// An argument spelled like its function leaves the function bound for later callers.
	root, l = mustParse(t, "int f(int f){ return 1; } int main(){ return f(1); }")
	class, key = l.Symbols.Lookup("f")
	assert.Equal(t, ir.FUNCTION, class)
	assert.Equal(t, 0, key)
	call := root.Children[1].Children[0].Children[1]
	assert.Equal(t, ir.FUNCTION, call.Children[1].Class)
	assert.Equal(t, 0, call.Children[1].Key)

	sb := strings.Builder{}
	require.NoError(t, PrintSymbols(&sb, l))
	assert.Contains(t, sb.String(), `"g"`)
	assert.Contains(t, sb.String(), "FUNCTION")
	assert.Contains(t, sb.String(), `"return"`)
}

func TestParseSelfCall(t *testing.T) {
	root, _ := mustParse(t, "int f(int n){ if (n) { return f(n - 1); } return 0; } int main(){ return f(3); }")
	call := root.Children[0].Children[0].Children[1].Children[1]
	assert.Equal(t, ir.EXPRESSION, call.Class)
	assert.Equal(t, ir.FUNCTION, call.Children[1].Class)
	assert.Equal(t, 0, call.Children[1].Key)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		src  string
		kind util.ErrorKind
		line int
	}{
		{src: "int main(){ return ; }", kind: util.UnrecognizedExpression, line: 1},
		{src: "float main(){ return 0; }", kind: util.InvalidType, line: 1},
		{src: "int main(float a){ return 0; }", kind: util.InvalidType, line: 1},
		{src: "int main(){ return 0 }", kind: util.MissingPunctuation, line: 1},
		{src: "int main(){ return 0;", kind: util.MissingPunctuation, line: 1},
		{src: "int main() return 0; }", kind: util.MissingPunctuation, line: 1},
		{src: "int main{ return 0; }", kind: util.MissingPunctuation, line: 1},
		{src: "int main(){\n\n  x = 1;\n}", kind: util.UnrecognizedExpression, line: 3},
		{src: "int main(){ return 1 +; }", kind: util.UnrecognizedExpression, line: 1},
		{src: "int f(int a){ return a; } int main(){ return f(1; }", kind: util.UnterminatedCall, line: 1},
		{src: "int f(int a){ return a; } int main(){ return f; }", kind: util.MissingPunctuation, line: 1},
		{src: "int f(int a){ return a; } int main(){ return f(1,); }", kind: util.UnrecognizedExpression, line: 1},
		{src: "int main(){ printn 4x; }", kind: util.InvalidIntrinsicArgument, line: 1},
		{src: "int main(){ return 2147483648; }", kind: util.InvalidLiteral, line: 1},
		{src: "int (){ return 0; }", kind: util.InvalidName, line: 1},
		{src: "int main(){ return 0; } int main(){ return 1; }", kind: util.InvalidName, line: 1},
		{src: "int main(){ int x 5; return 0; }", kind: util.UnrecognizedExpression, line: 1},
		{src: "int main(){ int x=0; if (1) { x = 3; } return x; }", kind: util.InvalidName, line: 1},
		{src: "int main(){\n  int x+1 = 2;\n}", kind: util.InvalidName, line: 2},
		{src: "int f(int a=1){ return a; } int main(){ return 0; }", kind: util.InvalidName, line: 1},
		{src: "int f=(){ return 0; }", kind: util.InvalidName, line: 1},
		{src: "int main(){ if (1) { return 0; }", kind: util.MissingPunctuation, line: 1},
		{src: "int main(){ if 1 { return 0; } }", kind: util.MissingPunctuation, line: 1},
	}
	for _, e1 := range tests {
		_, _, err := ParseSource(e1.src)
		require.Error(t, err, e1.src)
		assert.True(t, util.IsKind(err, e1.kind), "%s: got %v", e1.src, err)
		var ce *util.CompileError
		if assert.ErrorAs(t, err, &ce, e1.src) {
			assert.Equal(t, e1.line, ce.Line, e1.src)
		}
	}
}
