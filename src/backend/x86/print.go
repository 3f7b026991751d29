// print.go provides functions for generating print statement assembly.

package x86

import (
	"tdc/src/backend/regfile"
	"tdc/src/ir/lir"
)

// genPrint writes the low byte of its operand to stdout as a single character. The operand is pushed so the
// write system call can read it from memory; the stack is restored afterwards.
func (g *generator) genPrint(fr *frame, t *lir.Triple, i int) error {
	o := t.Args[0]
	if inAcc(o, i) {
		g.wr.Ins1("push", regfile.Acc.String())
	} else {
		s, err := g.loc(fr, o, t.Line)
		if err != nil {
			return err
		}
		g.wr.Ins1("pushl", s)
	}

	g.wr.Ins2("mov", imm(sysWrite), regfile.SysNum.String())
	g.wr.Ins2("mov", imm(stdout), regfile.SysArg.String())
	g.wr.Ins2("mov", regfile.SP.String(), regfile.SysBuf.String())
	g.wr.Ins2("mov", imm(1), regfile.SysLen.String())
	g.wr.Ins1("int", "$0x80")
	g.release(1)
	return nil
}
