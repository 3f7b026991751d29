// label.go provides generation of unique assembly labels for jumps.

package util

import "fmt"

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Labeler hands out uniquely numbered labels. Numbering increases monotonically for the lifetime of the Labeler,
// so one Labeler is used per translation.
type Labeler struct {
	indices [labelTypes]int // Numerical suffix of the next label of each type.
}

// ---------------------
// ----- Constants -----
// ---------------------

// Labels for conditionals.
const (
	LabelIfEnd = iota
	labelTypes // Number of label types.
)

// -------------------
// ----- globals -----
// -------------------

// labelPrefixes stores the string literal prefixes for labels of types.
// The leading dot keeps labels local to the object file and out of the way of mangled function names.
var labelPrefixes = [labelTypes]string{
	".LIfEnd_",
}

// ---------------------
// ----- functions -----
// ---------------------

// NewLabel returns a new label of type typ.
func (l *Labeler) NewLabel(typ int) string {
	if typ >= 0 && typ < len(l.indices) {
		s := fmt.Sprintf("%s%03d", labelPrefixes[typ], l.indices[typ])
		l.indices[typ]++
		return s
	}
	return "# LABEL ERROR"
}
