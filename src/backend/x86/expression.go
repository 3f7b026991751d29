// expression.go provides functions for generating arithmetic, comparisons, assignments and declarations.

package x86

import (
	"tdc/src/backend/regfile"
	"tdc/src/ir"
	"tdc/src/ir/lir"
	"tdc/src/util"
)

// -------------------
// ----- Globals -----
// -------------------

// arithmetic maps operators to their two operand instruction.
var arithmetic = map[ir.Operator]string{
	ir.OpPlus:     "add",
	ir.OpMinus:    "sub",
	ir.OpMultiply: "imul",
}

// commutative holds the instructions whose operands may be swapped.
var commutative = map[string]bool{
	"add":  true,
	"imul": true,
}

// setcc maps relational operators to the instruction setting a byte register to 1 if the relation holds.
var setcc = map[ir.Operator]string{
	ir.OpEqual:        "sete",
	ir.OpNotEqual:     "setne",
	ir.OpLess:         "setl",
	ir.OpGreater:      "setg",
	ir.OpLessEqual:    "setle",
	ir.OpGreaterEqual: "setge",
}

// ---------------------
// ----- Functions -----
// ---------------------

// genData generates addition, subtraction or multiplication.
func (g *generator) genData(fr *frame, t *lir.Triple, i int) error {
	op, ok := arithmetic[t.Op]
	if !ok {
		return util.Errorf(util.Internal, t.Line, "operator %s is not arithmetic", t.Op)
	}
	return g.genBinary(fr, t, i, op)
}

// genCompare generates a relational operation. The accumulator is set to 1 if it holds and 0 otherwise.
func (g *generator) genCompare(fr *frame, t *lir.Triple, i int) error {
	set, ok := setcc[t.Op]
	if !ok {
		return util.Errorf(util.Internal, t.Line, "operator %s is not relational", t.Op)
	}
	if err := g.genBinary(fr, t, i, "cmp"); err != nil {
		return err
	}
	al, _ := regfile.Acc.Low8()
	g.wr.Ins1(set, al)
	g.wr.Ins2("movzbl", al, regfile.Acc.String())
	return nil
}

// genBinary applies the two operand instruction op with the left operand of t in the accumulator as destination
// and the right operand as source. Where the operands come from decides the instructions:
//
//	both results:       the right one is in the accumulator, the left one is popped off the stack
//	left result:        op right, acc
//	right result:       op left, acc if op is commutative, else the right one is moved to scratch first
//	no results:         the left one is loaded into the accumulator first
func (g *generator) genBinary(fr *frame, t *lir.Triple, i int, op string) error {
	l, r := t.Args[0], t.Args[1]
	acc, scratch := regfile.Acc.String(), regfile.Scratch.String()

	switch {
	case l.IsExpression() && inAcc(r, i):
		if err := g.popSpilled(fr, l, t.Line); err != nil {
			return err
		}
		g.wr.Ins2("mov", acc, scratch)
		g.wr.Ins1("pop", acc)
		g.wr.Ins2(op, scratch, acc)
	case inAcc(l, i):
		rs, err := g.loc(fr, r, t.Line)
		if err != nil {
			return err
		}
		g.wr.Ins2(op, rs, acc)
	case inAcc(r, i):
		ls, err := g.loc(fr, l, t.Line)
		if err != nil {
			return err
		}
		if commutative[op] {
			g.wr.Ins2(op, ls, acc)
		} else {
			g.wr.Ins2("mov", acc, scratch)
			g.wr.Ins2("mov", ls, acc)
			g.wr.Ins2(op, scratch, acc)
		}
	default:
		ls, err := g.loc(fr, l, t.Line)
		if err != nil {
			return err
		}
		rs, err := g.loc(fr, r, t.Line)
		if err != nil {
			return err
		}
		g.wr.Ins2("mov", ls, acc)
		g.wr.Ins2(op, rs, acc)
	}
	return nil
}

// genDivide generates signed division of the left operand by the right operand. The dividend is sign
// extended into the remainder register before dividing.
func (g *generator) genDivide(fr *frame, t *lir.Triple, i int) error {
	l, r := t.Args[0], t.Args[1]
	acc, div := regfile.Acc.String(), regfile.Divisor.String()

	switch {
	case l.IsExpression() && inAcc(r, i):
		if err := g.popSpilled(fr, l, t.Line); err != nil {
			return err
		}
		g.wr.Ins2("mov", acc, div)
		g.wr.Ins1("pop", acc)
	case inAcc(l, i):
		rs, err := g.loc(fr, r, t.Line)
		if err != nil {
			return err
		}
		g.wr.Ins2("mov", rs, div)
	case inAcc(r, i):
		ls, err := g.loc(fr, l, t.Line)
		if err != nil {
			return err
		}
		g.wr.Ins2("mov", acc, div)
		g.wr.Ins2("mov", ls, acc)
	default:
		ls, err := g.loc(fr, l, t.Line)
		if err != nil {
			return err
		}
		rs, err := g.loc(fr, r, t.Line)
		if err != nil {
			return err
		}
		g.wr.Ins2("mov", ls, acc)
		g.wr.Ins2("mov", rs, div)
	}
	g.wr.Ins0("cltd")
	g.wr.Ins1("idiv", div)
	return nil
}

// popSpilled verifies that the spilled result o is on top of the stack and forgets it. The caller emits the pop.
func (g *generator) popSpilled(fr *frame, o lir.Operand, line int) error {
	if top, ok := fr.above.Peek(); !ok || top != o.Key {
		return util.Errorf(util.Internal, line, "result of triple %d is not on top of the stack", o.Key)
	}
	fr.above.Pop()
	return nil
}

// genStore assigns the right operand to the variable or argument of the left operand. The value is passed
// through the accumulator, which holds it afterwards.
func (g *generator) genStore(fr *frame, t *lir.Triple, i int) error {
	l, r := t.Args[0], t.Args[1]
	if l.Class != ir.IDENTIFIER && l.Class != ir.ARGUMENT {
		return util.Errorf(util.Internal, t.Line, "cannot assign to operand of class %s", l.Class)
	}
	if err := g.load(fr, r, i, t.Line); err != nil {
		return err
	}
	ls, err := g.loc(fr, l, t.Line)
	if err != nil {
		return err
	}
	g.wr.Ins2("mov", regfile.Acc.String(), ls)
	return nil
}

// genDeclare pushes the storage slot of a new local, holding its initial value or zero.
func (g *generator) genDeclare(fr *frame, t *lir.Triple, i int) error {
	init, id := t.Args[0], t.Args[1]
	if id.Class != ir.IDENTIFIER {
		return util.Errorf(util.Internal, t.Line, "declaration of operand of class %s", id.Class)
	}
	switch {
	case init.Class == ir.NONE:
		g.wr.Ins1("pushl", imm(0))
	case inAcc(init, i):
		g.wr.Ins1("push", regfile.Acc.String())
	default:
		s, err := g.loc(fr, init, t.Line)
		if err != nil {
			return err
		}
		g.wr.Ins1("pushl", s)
	}
	fr.locals.Push(id.Key)
	return nil
}
