// Package lir provides functions for transforming the syntax tree into the light intermediate representation:
// one linear stream of triples per function. Every triple leaves its result in a single accumulator.
package lir

import (
	"tdc/src/ir"
	"tdc/src/ir/lir/types"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Triple is one elementary instruction. Exactly one of Keyword and Op is set.
type Triple struct {
	Typ     types.InstructionType // Instruction type, derived from Keyword or Op.
	Keyword ir.Keyword            // Keyword form, or ir.KwNone.
	Op      ir.Operator           // Operator form, or ir.OpNone.
	Args    []Operand             // Operands in order.
	Reused  bool                  // Set true if a later, non-adjacent triple consumes the result.
	Line    int                   // Line in source code the triple originates from.
}

// ---------------------
// ----- Functions -----
// ---------------------

// newKeywordTriple returns a triple of keyword form kw.
func newKeywordTriple(kw ir.Keyword, line int, args ...Operand) (*Triple, bool) {
	t := &Triple{Keyword: kw, Args: args, Line: line}
	switch kw {
	case ir.KwReturn:
		t.Typ = types.ReturnInstruction
	case ir.KwDeclaration:
		t.Typ = types.DeclareInstruction
	case ir.KwPrint:
		t.Typ = types.PrintInstruction
	case ir.KwJump:
		t.Typ = types.BranchInstruction
	case ir.KwLabel:
		t.Typ = types.LabelInstruction
	default:
		return nil, false
	}
	return t, true
}

// newOperatorTriple returns a triple of operator form op.
func newOperatorTriple(op ir.Operator, line int, args ...Operand) (*Triple, bool) {
	t := &Triple{Op: op, Args: args, Line: line}
	switch op {
	case ir.OpPlus, ir.OpMinus, ir.OpMultiply:
		t.Typ = types.DataInstruction
	case ir.OpDivide:
		t.Typ = types.DivideInstruction
	case ir.OpEqual, ir.OpNotEqual, ir.OpLess, ir.OpGreater, ir.OpLessEqual, ir.OpGreaterEqual:
		t.Typ = types.CompareInstruction
	case ir.OpAssign:
		t.Typ = types.StoreInstruction
	case ir.OpCall:
		t.Typ = types.FunctionCallInstruction
	default:
		return nil, false
	}
	return t, true
}
