package util

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Writer buffers generated assembly in a strings.Builder. Nothing reaches the output file
// before the whole translation has succeeded.
type Writer struct {
	sb  strings.Builder // Assembly text.
	ins int             // Number of instructions written.
}

// ---------------------
// ----- Functions -----
// ---------------------

// Write writes a format string to the Writer's buffer.
func (w *Writer) Write(format string, args ...interface{}) {
	w.sb.WriteString(fmt.Sprintf(format, args...))
}

// Ins0 writes a one-line instruction without operands.
func (w *Writer) Ins0(op string) {
	w.ins++
	w.sb.WriteString(fmt.Sprintf("\t%s\n", op))
}

// Ins1 writes a one-line instruction using the operator and single operand.
func (w *Writer) Ins1(op, rs1 string) {
	w.ins++
	w.sb.WriteString(fmt.Sprintf("\t%s\t%s\n", op, rs1))
}

// Ins2 writes a one-line instruction using the operator, a source operand and a destination operand.
// Operands are written in AT&T order: source first.
func (w *Writer) Ins2(op, rs1, rd string) {
	w.ins++
	w.sb.WriteString(fmt.Sprintf("\t%s\t%s, %s\n", op, rs1, rd))
}

// Label writes a one-line label with the given name.
func (w *Writer) Label(name string) {
	w.sb.WriteString(fmt.Sprintf("%s:\n", name))
}

// Instructions returns the number of instructions written so far.
func (w *Writer) Instructions() int {
	return w.ins
}

// String returns everything written so far.
func (w *Writer) String() string {
	return w.sb.String()
}

// ReadSource reads source code from the file at path. A missing or unreadable file is reported
// as a FileNotFound CompileError.
func ReadSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", Errorf(FileNotFound, 0, "could not open %q: %s", path, err)
	}
	return string(b), nil
}

// WriteOutput writes data to the file at path, creating or truncating it.
func WriteOutput(path, data string) error {
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		return errors.Wrapf(err, "could not write %q", path)
	}
	return nil
}
