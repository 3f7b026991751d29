package lir

import (
	"fmt"
	"tdc/src/ir"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Operand is a (class, key) pair. Class ir.EXPRESSION refers to the accumulator value produced by the
// triple at position Key of the same function. Class ir.NONE marks an absent operand.
type Operand struct {
	Class ir.Class // Token class.
	Key   int      // Semantic key relative to Class.
}

// ---------------------
// ----- Functions -----
// ---------------------

// IsExpression returns true if o refers to the result of an earlier triple.
func (o Operand) IsExpression() bool {
	return o.Class == ir.EXPRESSION
}

// String returns the textual LIR representation of o.
func (o Operand) String() string {
	switch o.Class {
	case ir.NONE:
		return "_"
	case ir.EXPRESSION:
		return fmt.Sprintf("(%d)", o.Key)
	case ir.LITERAL:
		return fmt.Sprintf("lit%d", o.Key)
	case ir.IDENTIFIER:
		return fmt.Sprintf("var%d", o.Key)
	case ir.ARGUMENT:
		return fmt.Sprintf("arg%d", o.Key)
	case ir.FUNCTION:
		return fmt.Sprintf("func%d", o.Key)
	default:
		return fmt.Sprintf("%s:%d", o.Class, o.Key)
	}
}
