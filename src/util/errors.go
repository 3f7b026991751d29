// errors.go defines the compilation errors reported by every stage of the compiler.
// All compilation errors are fatal: the first one aborts the compilation.

package util

import (
	"fmt"

	"github.com/pkg/errors"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// ErrorKind classifies compilation errors.
type ErrorKind int

// CompileError is a fatal compilation error tied to a line in the source code.
type CompileError struct {
	Kind ErrorKind // Error classification.
	Line int       // Line in source code where the error was detected. Not zero-indexed, 0 if unknown.
	Msg  string    // Human readable message.
}

// ---------------------
// ----- Constants -----
// ---------------------

const (
	FileNotFound ErrorKind = iota
	InvalidType
	MissingPunctuation
	UnrecognizedExpression
	UnterminatedCall
	InvalidIntrinsicArgument
	InvalidName
	InvalidLiteral
	MissingEntry
	ArgumentCount
	OutOfScope
	Internal
)

// -------------------
// ----- Globals -----
// -------------------

// kindNames provides print friendly names of ErrorKind.
var kindNames = [...]string{
	"file not found",
	"invalid type",
	"missing punctuation",
	"unrecognized expression",
	"unterminated call",
	"invalid intrinsic argument",
	"invalid name",
	"invalid literal",
	"missing entry function",
	"argument count mismatch",
	"identifier out of scope",
	"internal error",
}

// ---------------------
// ----- functions -----
// ---------------------

// String returns a print friendly name of the ErrorKind.
func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
	return kindNames[k]
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %s", e.Line, e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Errorf returns a new CompileError of kind k detected on the given line.
func Errorf(k ErrorKind, line int, format string, args ...interface{}) error {
	return &CompileError{
		Kind: k,
		Line: line,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// IsKind returns true if err, or the error it wraps, is a CompileError of kind k.
func IsKind(err error, k ErrorKind) bool {
	if ce, ok := errors.Cause(err).(*CompileError); ok {
		return ce.Kind == k
	}
	return false
}
