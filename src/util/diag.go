package util

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

const (
	colorRed   = "\x1b[31;1m"
	colorReset = "\x1b[0m"
)

// IsTerminal returns true if f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ReportError prints err to stderr, colouring the prefix if stderr is a terminal.
func ReportError(err error) {
	FprintError(os.Stderr, err, IsTerminal(os.Stderr))
}

// FprintError prints err to w. Compilation errors are printed with the line they were detected on.
func FprintError(w io.Writer, err error, color bool) {
	prefix := "Error"
	if ce, ok := errors.Cause(err).(*CompileError); ok && ce.Line > 0 {
		prefix = fmt.Sprintf("Error on line %d", ce.Line)
		err = fmt.Errorf("%s: %s", ce.Kind, ce.Msg)
	}
	if color {
		prefix = colorRed + prefix + colorReset
	}
	_, _ = fmt.Fprintf(w, "%s: %s\n", prefix, err)
}
