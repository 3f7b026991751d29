// This file contains 32-bit x86 assembly generating code for if statements. An if is lowered into a branch triple
// before its body and a label triple after it.

package x86

import (
	"tdc/src/backend/regfile"
	"tdc/src/ir/lir"
	"tdc/src/util"
)

// genBranch compares the condition with zero and jumps past the if body if it is zero. The label closing the
// body is handed out here and pushed on the label stack, so nested bodies close in the right order.
func (g *generator) genBranch(fr *frame, t *lir.Triple, i int) error {
	if err := g.load(fr, t.Args[0], i, t.Line); err != nil {
		return err
	}
	end := g.lb.NewLabel(util.LabelIfEnd)
	g.wr.Ins2("cmp", imm(0), regfile.Acc.String())
	g.wr.Ins1("je", end)
	fr.ends.Push(ifEnd{label: end, locals: fr.locals.Size()})
	return nil
}

// genLabel closes the innermost if body. Locals declared in the body are popped on the fall-through path, so
// both paths reach the label with the same stack.
func (g *generator) genLabel(fr *frame, t *lir.Triple) error {
	end, ok := fr.ends.Pop()
	if !ok {
		return util.Errorf(util.Internal, t.Line, "label without matching branch")
	}
	if n := fr.locals.Size() - end.locals; n > 0 {
		g.release(n)
		fr.locals.Truncate(end.locals)
	}
	g.wr.Label(end.label)
	return nil
}
