package backend

import (
	"fmt"
	"tdc/src/backend/x86"
	"tdc/src/ir"
	"tdc/src/ir/lir"
	"tdc/src/util"
)

// GenerateAssembler takes the triples of every function and generates output assembler code
// based on architecture defined by opt.
func GenerateAssembler(opt util.Options, m *lir.Module, tab *ir.Tables) (string, error) {
	arch, err := util.ParseArch(opt.Arch)
	if err != nil {
		return "", err
	}
	switch arch {
	case util.X86_32:
		return x86.GenX86(opt.Entry, m, tab)
	default:
		return "", fmt.Errorf("unsupported output architecture %q", opt.Arch)
	}
}
