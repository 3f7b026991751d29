package frontend

import (
	"fmt"
	"strings"
	"tdc/src/util"
)

// intrinsicPrintn prints its digit-only argument as decimal characters followed by a newline.
const intrinsicPrintn = "printn"

// stmtSep separates statements produced by desugaring. It cannot occur in a collected statement.
const stmtSep = "\x1f"

// desugar rewrites intrinsic statements into plain statements joined by stmtSep. Other statements are
// returned unchanged.
//
// printn 42 is rewritten to print 52, print 50, print 10: one print of the character code per digit
// and a trailing newline.
func desugar(stmt string, line int) (string, error) {
	text := strings.TrimSpace(stmt)
	fields := strings.Fields(text)
	if len(fields) == 0 || fields[0] != intrinsicPrintn {
		return stmt, nil
	}

	arg := strings.TrimSpace(text[len(intrinsicPrintn):])
	if !isDigits(arg) {
		return "", util.Errorf(util.InvalidIntrinsicArgument, line, "%s expects a digit sequence, got %q", intrinsicPrintn, arg)
	}
	parts := make([]string, 0, len(arg)+1)
	for _, e1 := range arg {
		parts = append(parts, fmt.Sprintf("print %d", e1))
	}
	parts = append(parts, "print 10")
	return strings.Join(parts, stmtSep), nil
}

// splitStatements splits desugared text into statements.
func splitStatements(s string) []string {
	return strings.Split(s, stmtSep)
}
