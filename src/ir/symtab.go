package ir

import "fmt"

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// DataType is the semantic key of TYPE tokens.
type DataType int

// Keyword is the semantic key of KEYWORD tokens and the tag of keyword triples.
type Keyword int

// Operator is the semantic key of OPERATOR tokens and the tag of operator triples.
type Operator int

// Function is a declared function. Its position in Tables.Functions is its semantic key.
type Function struct {
	Name   string     // Name of function, as spelled in source.
	Typ    DataType   // Return type.
	Args   []DataType // Argument types in order of declaration.
	Locals []DataType // Local variable types; a local's index is its slot.
	Line   int        // Line in source code the function is declared.
}

// Ident is an entry in the identifier table.
type Ident struct {
	Typ  DataType // Data type of the local variable.
	Slot int      // Position within the owning function's local variable list.
	Func int      // Key of the owning function.
}

// Tables holds the append-only tables discovered while parsing. Entries are referenced
// elsewhere by their stable index and are never removed or reordered.
type Tables struct {
	Literals    []int      // Integer literal values.
	Identifiers []Ident    // Declared locals in declaration order.
	Functions   []Function // Declared functions in declaration order.
}

// ---------------------
// ----- Constants -----
// ---------------------

const (
	DataNone DataType = iota
	DataInteger
)

const (
	KwNone Keyword = iota
	KwReturn
	KwDeclaration
	KwPrint
	KwJump
	KwLabel
)

const (
	OpNone Operator = iota
	OpPlus
	OpMinus
	OpMultiply
	OpDivide
	OpAssign
	OpCall
	OpEqual
	OpNotEqual
	OpLess
	OpGreater
	OpLessEqual
	OpGreaterEqual
)

// -------------------
// ----- Globals -----
// -------------------

// dTyp defines strings for print friendly output of DataType.
var dTyp = [...]string{
	"none",
	"int",
}

// kTyp defines strings for print friendly output of Keyword.
var kTyp = [...]string{
	"none",
	"return",
	"declaration",
	"print",
	"jump",
	"label",
}

// oTyp defines strings for print friendly output of Operator.
var oTyp = [...]string{
	"none",
	"+",
	"-",
	"*",
	"/",
	"=",
	"call",
	"==",
	"!=",
	"<",
	">",
	"<=",
	">=",
}

// ----------------------
// ----- Functions ------
// ----------------------

// String returns a print friendly string of the DataType.
func (d DataType) String() string {
	if d < 0 || int(d) >= len(dTyp) {
		return fmt.Sprintf("DataType(%d)", int(d))
	}
	return dTyp[d]
}

// String returns a print friendly string of the Keyword.
func (k Keyword) String() string {
	if k < 0 || int(k) >= len(kTyp) {
		return fmt.Sprintf("Keyword(%d)", int(k))
	}
	return kTyp[k]
}

// String returns a print friendly string of the Operator.
func (o Operator) String() string {
	if o < 0 || int(o) >= len(oTyp) {
		return fmt.Sprintf("Operator(%d)", int(o))
	}
	return oTyp[o]
}

// AddLiteral appends the integer v to the literal table and returns its index.
func (t *Tables) AddLiteral(v int) int {
	t.Literals = append(t.Literals, v)
	return len(t.Literals) - 1
}

// AddFunction appends f to the function table and returns its key.
func (t *Tables) AddFunction(f Function) int {
	t.Functions = append(t.Functions, f)
	return len(t.Functions) - 1
}

// AddLocal declares a new local variable of type typ in function fn. The local's slot is returned.
func (t *Tables) AddLocal(fn int, typ DataType) int {
	f := &t.Functions[fn]
	slot := len(f.Locals)
	f.Locals = append(f.Locals, typ)
	t.Identifiers = append(t.Identifiers, Ident{Typ: typ, Slot: slot, Func: fn})
	return slot
}

// Function returns the function with key k, or <nil> if no such function is declared.
func (t *Tables) Function(k int) *Function {
	if k < 0 || k >= len(t.Functions) {
		return nil
	}
	return &t.Functions[k]
}

// FunctionByName returns the key of the first function declared with the given name.
func (t *Tables) FunctionByName(name string) (int, bool) {
	for i1, e1 := range t.Functions {
		if e1.Name == name {
			return i1, true
		}
	}
	return -1, false
}

// Literal returns the value of the literal with index k.
func (t *Tables) Literal(k int) (int, bool) {
	if k < 0 || k >= len(t.Literals) {
		return 0, false
	}
	return t.Literals[k], true
}
