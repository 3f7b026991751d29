package main

import (
	"fmt"
	"io"
	"path/filepath"
	"tdc/src/backend"
	"tdc/src/frontend"
	"tdc/src/ir"
	"tdc/src/ir/lir"
	"tdc/src/util"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// compiler runs the compilation pipeline. Parse must succeed before Translate is called.
type compiler struct {
	opt  util.Options    // Compiler settings.
	out  io.Writer       // Destination of debug dumps.
	root *ir.Node        // Syntax tree of the parsed source.
	lex  *frontend.Lexer // Dictionary and tables of the parsed source.
}

func newCompiler(opt util.Options, out io.Writer) *compiler {
	return &compiler{opt: opt, out: out}
}

// Parse parses and validates the source file at path.
func (c *compiler) Parse(path string) error {
	root, l, err := frontend.Parse(path)
	if err != nil {
		return err
	}
	if err := ir.ValidateTree(root, l.Tab, c.opt.Entry); err != nil {
		return err
	}
	c.root, c.lex = root, l

	if c.opt.DumpAST {
		root.Print(c.out, 0)
	}
	if c.opt.DumpSymbols {
		if err := frontend.PrintSymbols(c.out, l); err != nil {
			return err
		}
	}
	return nil
}

// Assembly lowers the parsed program and returns its assembly. It does not change the parsed program, so
// repeated calls return identical text.
func (c *compiler) Assembly() (string, error) {
	if c.root == nil {
		return "", errors.New("no program parsed")
	}
	m, err := lir.GenLIR(filepath.Base(c.opt.Src), c.root, c.lex.Tab)
	if err != nil {
		return "", err
	}
	if c.opt.DumpIR {
		_, _ = fmt.Fprint(c.out, m.String())
	}
	return backend.GenerateAssembler(c.opt, m, c.lex.Tab)
}

// Translate writes the assembly of the parsed program to path. Nothing is written if translation fails.
func (c *compiler) Translate(path string) error {
	asm, err := c.Assembly()
	if err != nil {
		return err
	}
	glog.V(1).Infof("writing %d bytes of assembly to %q", len(asm), path)
	return util.WriteOutput(path, asm)
}
