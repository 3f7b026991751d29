package x86

import (
	"strings"
	"tdc/src/frontend"
	"tdc/src/ir"
	"tdc/src/ir/lir"
	"tdc/src/ir/lir/types"
	"tdc/src/util"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// translate compiles src to assembly.
func translate(t *testing.T, src string) (string, error) {
	t.Helper()
	root, l, err := frontend.ParseSource(src)
	require.NoError(t, err)
	require.NoError(t, ir.ValidateTree(root, l.Tab, "main"))
	m, err := lir.GenLIR("test", root, l.Tab)
	require.NoError(t, err)
	return GenX86("main", m, l.Tab)
}

// header returns the expected program header for functions declared in order.
func header(funcs ...string) string {
	sb := strings.Builder{}
	sb.WriteString("\t.text\n\t.global\t_start\n")
	for _, e1 := range funcs {
		sb.WriteString("\t.global\t_" + e1 + "\n")
	}
	sb.WriteString("\n_start:\n\tcall\t_main\n\tmov\t%eax, %ebx\n\tmov\t$1, %eax\n\tint\t$0x80\n")
	return sb.String()
}

// assertAsm compares generated assembly with the expected text and prints a line diff on mismatch.
func assertAsm(t *testing.T, exp, got string) {
	t.Helper()
	if exp == got {
		return
	}
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(exp, got)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	sb := strings.Builder{}
	for _, e1 := range diffs {
		prefix := "  "
		switch e1.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		}
		for _, e2 := range strings.SplitAfter(e1.Text, "\n") {
			if len(e2) > 0 {
				sb.WriteString(prefix + e2)
			}
		}
	}
	t.Errorf("generated assembly differs from expected (- expected, + generated):\n%s", sb.String())
}

func TestGenX86(t *testing.T) {
	tests := []struct {
		name string
		src  string
		exp  string
	}{
		{
			name: "return literal",
			src:  "int main(){ return 0; }",
			exp: header("main") + `
_main:
	mov	$0, %eax
	ret
`,
		},
		{
			name: "locals",
			src:  "int main(){ int x; x = 2; int y; y = 3; return x + y; }",
			exp: header("main") + `
_main:
	pushl	$0
	mov	$2, %eax
	mov	%eax, (%esp)
	pushl	$0
	mov	$3, %eax
	mov	%eax, (%esp)
	mov	4(%esp), %eax
	add	(%esp), %eax
	add	$8, %esp
	ret
`,
		},
		{
			name: "call",
			src:  "int add(int a, int b){ return a + b; } int main(){ return add(2,3); }",
			exp: header("add", "main") + `
_add:
	mov	4(%esp), %eax
	add	8(%esp), %eax
	ret

_main:
	pushl	$3
	pushl	$2
	call	_add
	add	$8, %esp
	ret
`,
		},
		{
			name: "if",
			src:  "int main(){ int x; x = 1; if (x) { return 9; } return 0; }",
			exp: header("main") + `
_main:
	pushl	$0
	mov	$1, %eax
	mov	%eax, (%esp)
	mov	(%esp), %eax
	cmp	$0, %eax
	je	.LIfEnd_000
	mov	$9, %eax
	add	$4, %esp
	ret
.LIfEnd_000:
	mov	$0, %eax
	add	$4, %esp
	ret
`,
		},
		{
			name: "spilled operand",
			src:  "int main(){ return (1 + 2) - (3 * 4); }",
			exp: header("main") + `
_main:
	mov	$1, %eax
	add	$2, %eax
	push	%eax
	mov	$3, %eax
	imul	$4, %eax
	mov	%eax, %edx
	pop	%eax
	sub	%edx, %eax
	ret
`,
		},
		{
			name: "locals in if body",
			src:  "int main(){ int x = 2; if (x > 1) { int y = x * 3; print y; } return x / 2; }",
			exp: header("main") + `
_main:
	pushl	$2
	mov	(%esp), %eax
	cmp	$1, %eax
	setg	%al
	movzbl	%al, %eax
	cmp	$0, %eax
	je	.LIfEnd_000
	mov	(%esp), %eax
	imul	$3, %eax
	push	%eax
	pushl	(%esp)
	mov	$4, %eax
	mov	$1, %ebx
	mov	%esp, %ecx
	mov	$1, %edx
	int	$0x80
	add	$4, %esp
	add	$4, %esp
.LIfEnd_000:
	mov	(%esp), %eax
	mov	$2, %ecx
	cltd
	idiv	%ecx
	add	$4, %esp
	ret
`,
		},
		{
			name: "spilled call argument",
			src:  "int f(int a, int b){ return a - b; } int main(){ int x = 10; return f(x + 1, x * 2); }",
			exp: header("f", "main") + `
_f:
	mov	4(%esp), %eax
	sub	8(%esp), %eax
	ret

_main:
	pushl	$10
	mov	(%esp), %eax
	add	$1, %eax
	push	%eax
	mov	4(%esp), %eax
	imul	$2, %eax
	push	%eax
	pushl	4(%esp)
	call	_f
	add	$12, %esp
	add	$4, %esp
	ret
`,
		},
		{
			name: "nested if",
			src:  "int main(){ if (1) { if (0) { return 1; } return 2; } return 3; }",
			exp: header("main") + `
_main:
	mov	$1, %eax
	cmp	$0, %eax
	je	.LIfEnd_000
	mov	$0, %eax
	cmp	$0, %eax
	je	.LIfEnd_001
	mov	$1, %eax
	ret
.LIfEnd_001:
	mov	$2, %eax
	ret
.LIfEnd_000:
	mov	$3, %eax
	ret
`,
		},
		{
			name: "implicit return and subtraction from accumulator",
			src:  "int main(){ int a = 7; a = 1 - (a + 1); }",
			exp: header("main") + `
_main:
	pushl	$7
	mov	(%esp), %eax
	add	$1, %eax
	mov	%eax, %edx
	mov	$1, %eax
	sub	%edx, %eax
	mov	%eax, (%esp)
	mov	$0, %eax
	add	$4, %esp
	ret
`,
		},
	}
	for _, e1 := range tests {
		t.Run(e1.name, func(t *testing.T) {
			got, err := translate(t, e1.src)
			require.NoError(t, err)
			assertAsm(t, e1.exp, got)
		})
	}
}

// TestGenX86Idempotent verifies that translating the same module twice yields identical assembly.
func TestGenX86Idempotent(t *testing.T) {
	root, l, err := frontend.ParseSource("int f(int a){ if (a) { printn 42; } return a; } int main(){ return f(1) + f(0); }")
	require.NoError(t, err)
	m, err := lir.GenLIR("test", root, l.Tab)
	require.NoError(t, err)

	first, err := GenX86("main", m, l.Tab)
	require.NoError(t, err)
	second, err := GenX86("main", m, l.Tab)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Contains(t, first, ".LIfEnd_000:")
	assert.NotContains(t, first, ".LIfEnd_001")
}

func TestGenX86Errors(t *testing.T) {
	_, err := translate(t, "int main(){ int x = 1; if (x) { int y = 2; } y = 3; return x; }")
	require.Error(t, err)
	assert.True(t, util.IsKind(err, util.OutOfScope), err.Error())

	root, l, err := frontend.ParseSource("int start(){ return 0; }")
	require.NoError(t, err)
	m, err := lir.GenLIR("test", root, l.Tab)
	require.NoError(t, err)
	_, err = GenX86("main", m, l.Tab)
	assert.True(t, util.IsKind(err, util.MissingEntry))
}

// TestInstructionTypesCovered generates one triple of every instruction type and verifies that none
// of them falls through to the missing generator error.
func TestInstructionTypesCovered(t *testing.T) {
	tab := &ir.Tables{
		Literals:  []int{5},
		Functions: []ir.Function{{Name: "main"}},
	}
	lit := lir.Operand{Class: ir.LITERAL, Key: 0}
	x := lir.Operand{Class: ir.IDENTIFIER, Key: 0}
	triples := []*lir.Triple{
		{Typ: types.DeclareInstruction, Keyword: ir.KwDeclaration, Args: []lir.Operand{{Class: ir.NONE}, x}},
		{Typ: types.StoreInstruction, Op: ir.OpAssign, Args: []lir.Operand{x, lit}},
		{Typ: types.DataInstruction, Op: ir.OpMinus, Args: []lir.Operand{x, lit}},
		{Typ: types.DivideInstruction, Op: ir.OpDivide, Args: []lir.Operand{x, lit}},
		{Typ: types.CompareInstruction, Op: ir.OpGreaterEqual, Args: []lir.Operand{x, lit}},
		{Typ: types.BranchInstruction, Keyword: ir.KwJump, Args: []lir.Operand{x}},
		{Typ: types.LabelInstruction, Keyword: ir.KwLabel},
		{Typ: types.PrintInstruction, Keyword: ir.KwPrint, Args: []lir.Operand{lit}},
		{Typ: types.FunctionCallInstruction, Op: ir.OpCall, Args: []lir.Operand{{Class: ir.FUNCTION, Key: 0}}},
		{Typ: types.ReturnInstruction, Keyword: ir.KwReturn, Args: []lir.Operand{x}},
	}

	g := generator{wr: &util.Writer{}, tab: tab}
	fr := &frame{f: &lir.Function{Name: "main", Triples: triples}}
	seen := make(map[types.InstructionType]bool)
	for i1, e1 := range triples {
		require.NoError(t, g.genTriple(fr, e1, i1), e1.Typ.String())
		seen[e1.Typ] = true
	}
	for i1 := types.InstructionType(0); i1 < types.NumInstructionTypes; i1++ {
		assert.True(t, seen[i1], "no generator exercised for %s", i1)
	}

	err := g.genTriple(fr, &lir.Triple{Typ: types.NumInstructionTypes}, 0)
	assert.True(t, util.IsKind(err, util.Internal))
}
