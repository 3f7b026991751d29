// 32-bit x86 has a downward growing stack and no frame pointer is used: locals, arguments and spilled values
// are all addressed relative to the stack pointer, whose distance to each of them is tracked while generating.
//
// STACK layout of a function, top first:
//
//	words pushed above the frame: spilled results and arguments of a call being set up
//	locals, last declared first
//	return address
//	arguments, first argument first

package x86

import (
	"fmt"
	"tdc/src/backend/regfile"
	"tdc/src/ir"
	"tdc/src/ir/lir"
	"tdc/src/util"

	"github.com/golang/glog"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// generator holds the state of one translation.
type generator struct {
	wr  *util.Writer // Assembly output.
	tab *ir.Tables   // Literals and functions, read only.
	lb  util.Labeler // Label numbering, monotonic over the translation.
}

// frame tracks the stack of the function being generated.
type frame struct {
	f      *lir.Function     // Function being generated.
	locals util.Stack[int]   // Slots of live locals, in push order.
	above  util.Stack[int]   // Words above the locals: position of spilled triples, or argWord.
	ends   util.Stack[ifEnd] // Labels of the if bodies being generated, innermost on top.
}

// ifEnd is the label closing an if body and the number of live locals when the body was entered.
type ifEnd struct {
	label  string // Label name.
	locals int    // Live locals before the body.
}

// ---------------------
// ----- Constants -----
// ---------------------

const wordSize = 4 // wordSize defines the length of a machine word in bytes.

// argWord marks a call argument in frame.above.
const argWord = -1

// System call numbers, from arch/x86/entry/syscalls/syscall_32.tbl.
const sysExit = 1  // For properly exiting application.
const sysWrite = 4 // For writing to file descriptor.

// stdout defines the Unix file descriptor for standard out.
const stdout = 1

// labelStart is the program entry point.
const labelStart = "_start"

// ---------------------
// ----- Functions -----
// ---------------------

// GenX86 generates 32-bit x86 assembler in AT&T syntax for every function of m. The program entry point calls the
// function named entry and exits with its return value as exit status.
func GenX86(entry string, m *lir.Module, tab *ir.Tables) (string, error) {
	var main *lir.Function
	for _, e1 := range m.Functions {
		if e1.Name == entry {
			main = e1
			break
		}
	}
	if main == nil {
		return "", util.Errorf(util.MissingEntry, 0, "no function named %q declared", entry)
	}

	g := generator{wr: &util.Writer{}, tab: tab}

	// Header.
	g.wr.Write("\t.text\n")
	g.wr.Write("\t.global\t%s\n", labelStart)
	for _, e1 := range m.Functions {
		g.wr.Write("\t.global\t%s\n", mangle(e1.Name))
	}
	g.wr.Write("\n")
	g.wr.Label(labelStart)
	g.wr.Ins1("call", mangle(main.Name))
	g.wr.Ins2("mov", regfile.Acc.String(), regfile.SysArg.String())
	g.wr.Ins2("mov", imm(sysExit), regfile.SysNum.String())
	g.wr.Ins1("int", "$0x80")

	for _, e1 := range m.Functions {
		if err := g.genFunction(e1); err != nil {
			return "", err
		}
	}
	glog.V(1).Infof("generated %d instructions for %d functions", g.wr.Instructions(), len(m.Functions))
	return g.wr.String(), nil
}

// mangle returns the assembly label of the function named name.
func mangle(name string) string {
	return "_" + name
}

// imm returns the immediate operand of v.
func imm(v int) string {
	return fmt.Sprintf("$%d", v)
}

// inAcc returns true if operand o of the triple at position i is the result of the triple just before it,
// which is still in the accumulator.
func inAcc(o lir.Operand, i int) bool {
	return o.IsExpression() && o.Key == i-1
}

// depth returns the number of words between the stack pointer and the return address.
func (fr *frame) depth() int {
	return fr.above.Size() + fr.locals.Size()
}

// loc returns the assembler operand holding the value of o, which must not be an expression.
func (g *generator) loc(fr *frame, o lir.Operand, line int) (string, error) {
	switch o.Class {
	case ir.LITERAL:
		v, ok := g.tab.Literal(o.Key)
		if !ok {
			return "", util.Errorf(util.Internal, line, "literal %d not in table", o.Key)
		}
		return imm(v), nil
	case ir.IDENTIFIER:
		p := fr.locals.Index(func(slot int) bool { return slot == o.Key })
		if p < 0 {
			return "", util.Errorf(util.OutOfScope, line, "variable %d of function %q used outside the block declaring it", o.Key, fr.f.Name)
		}
		return regfile.SP.Mem(wordSize * (fr.depth() - 1 - p)), nil
	case ir.ARGUMENT:
		if o.Key < 0 || o.Key >= fr.f.Params {
			return "", util.Errorf(util.Internal, line, "function %q has no argument %d", fr.f.Name, o.Key)
		}
		return regfile.SP.Mem(wordSize * (fr.depth() + 1 + o.Key)), nil
	case ir.EXPRESSION:
		return "", util.Errorf(util.Internal, line, "result of triple %d is not in the accumulator", o.Key)
	default:
		return "", util.Errorf(util.Internal, line, "operand of class %s has no location", o.Class)
	}
}

// spilled returns the assembler operand of the spilled result of the triple at position pos.
func (fr *frame) spilled(pos, line int) (string, error) {
	p := fr.above.Index(func(e int) bool { return e == pos })
	if p < 0 {
		return "", util.Errorf(util.Internal, line, "result of triple %d was not spilled", pos)
	}
	return regfile.SP.Mem(wordSize * (fr.above.Size() - 1 - p)), nil
}

// load moves the value of o into the accumulator, unless it is already there.
func (g *generator) load(fr *frame, o lir.Operand, i, line int) error {
	if inAcc(o, i) {
		return nil
	}
	s, err := g.loc(fr, o, line)
	if err != nil {
		return err
	}
	g.wr.Ins2("mov", s, regfile.Acc.String())
	return nil
}

// release pops n words off the stack in one step.
func (g *generator) release(n int) {
	if n > 0 {
		g.wr.Ins2("add", imm(wordSize*n), regfile.SP.String())
	}
}
