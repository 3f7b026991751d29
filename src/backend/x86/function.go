package x86

import (
	"tdc/src/backend/regfile"
	"tdc/src/ir"
	"tdc/src/ir/lir"
	"tdc/src/ir/lir/types"
	"tdc/src/util"

	"github.com/golang/glog"
)

// genFunction generates a function. An error is returned if something went wrong.
func (g *generator) genFunction(f *lir.Function) error {
	fr := &frame{f: f}
	start := g.wr.Instructions()

	g.wr.Write("\n")
	g.wr.Label(mangle(f.Name))
	for i1, e1 := range f.Triples {
		if err := g.genTriple(fr, e1, i1); err != nil {
			return err
		}
		if e1.Reused {
			g.wr.Ins1("push", regfile.Acc.String())
			fr.above.Push(i1)
		}
	}
	if fr.ends.Size() > 0 || fr.above.Size() > 0 {
		return util.Errorf(util.Internal, 0, "function %q ends with %d open if bodies and %d words above its locals",
			f.Name, fr.ends.Size(), fr.above.Size())
	}

	// Functions falling off their end return 0.
	if !f.Returns() {
		g.wr.Ins2("mov", imm(0), regfile.Acc.String())
		g.genEpilogue(fr)
	}
	glog.V(3).Infof("function %q: %d instructions", f.Name, g.wr.Instructions()-start)
	return nil
}

// genTriple generates the triple t at position i of the function.
func (g *generator) genTriple(fr *frame, t *lir.Triple, i int) error {
	if want, ok := arity[t.Typ]; ok && want != len(t.Args) {
		return util.Errorf(util.Internal, t.Line, "%s takes %d operands, got %d", t.Typ, want, len(t.Args))
	}
	switch t.Typ {
	case types.ReturnInstruction:
		return g.genReturn(fr, t, i)
	case types.DeclareInstruction:
		return g.genDeclare(fr, t, i)
	case types.DataInstruction:
		return g.genData(fr, t, i)
	case types.DivideInstruction:
		return g.genDivide(fr, t, i)
	case types.CompareInstruction:
		return g.genCompare(fr, t, i)
	case types.StoreInstruction:
		return g.genStore(fr, t, i)
	case types.BranchInstruction:
		return g.genBranch(fr, t, i)
	case types.LabelInstruction:
		return g.genLabel(fr, t)
	case types.PrintInstruction:
		return g.genPrint(fr, t, i)
	case types.FunctionCallInstruction:
		return g.genFunctionCall(fr, t, i)
	default:
		return util.Errorf(util.Internal, t.Line, "no code generator for %s", t.Typ)
	}
}

// arity holds the number of operands of instruction types with a fixed operand count.
var arity = map[types.InstructionType]int{
	types.ReturnInstruction:  1,
	types.DeclareInstruction: 2,
	types.DataInstruction:    2,
	types.DivideInstruction:  2,
	types.CompareInstruction: 2,
	types.StoreInstruction:   2,
	types.BranchInstruction:  1,
	types.LabelInstruction:   0,
	types.PrintInstruction:   1,
}

// genReturn loads the return value into the accumulator and returns to the caller.
func (g *generator) genReturn(fr *frame, t *lir.Triple, i int) error {
	if err := g.load(fr, t.Args[0], i, t.Line); err != nil {
		return err
	}
	g.genEpilogue(fr)
	return nil
}

// genEpilogue pops every local of the function and returns.
func (g *generator) genEpilogue(fr *frame) {
	g.release(fr.depth())
	g.wr.Ins0("ret")
}

// genFunctionCall pushes the arguments right to left, calls the function and releases the arguments. Results
// spilled to serve as arguments are pushed again from their spill slot and released with the arguments.
func (g *generator) genFunctionCall(fr *frame, t *lir.Triple, i int) error {
	if len(t.Args) == 0 || t.Args[0].Class != ir.FUNCTION {
		return util.Errorf(util.Internal, t.Line, "call without callee")
	}
	callee := g.tab.Function(t.Args[0].Key)
	if callee == nil {
		return util.Errorf(util.Internal, t.Line, "call of undeclared function %d", t.Args[0].Key)
	}
	args := t.Args[1:]
	if len(args) != len(callee.Args) {
		return util.Errorf(util.ArgumentCount, t.Line, "function %q takes %d arguments, got %d",
			callee.Name, len(callee.Args), len(args))
	}

	spills := 0
	for i1 := len(args) - 1; i1 >= 0; i1-- {
		a := args[i1]
		switch {
		case inAcc(a, i):
			g.wr.Ins1("push", regfile.Acc.String())
		case a.IsExpression():
			s, err := fr.spilled(a.Key, t.Line)
			if err != nil {
				return err
			}
			g.wr.Ins1("pushl", s)
			spills++
		default:
			s, err := g.loc(fr, a, t.Line)
			if err != nil {
				return err
			}
			g.wr.Ins1("pushl", s)
		}
		fr.above.Push(argWord)
	}
	g.wr.Ins1("call", mangle(callee.Name))

	n := len(args) + spills
	if n > fr.above.Size() {
		return util.Errorf(util.Internal, t.Line, "call of %q releases more words than pushed", callee.Name)
	}
	g.release(n)
	fr.above.Truncate(fr.above.Size() - n)
	return nil
}
