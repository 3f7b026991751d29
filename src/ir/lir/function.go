package lir

import (
	"tdc/src/ir"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Function holds the triple stream of one declared function. Triples are in emission order,
// which is execution order.
type Function struct {
	Key     int       // Key of the function in the function table.
	Name    string    // Name of function, as spelled in source.
	Params  int       // Number of parameters.
	Triples []*Triple // Triples in emission order.
}

// ---------------------
// ----- Functions -----
// ---------------------

// append adds t to the end of the stream of f and returns its position.
func (f *Function) append(t *Triple) int {
	f.Triples = append(f.Triples, t)
	return len(f.Triples) - 1
}

// Returns reports true if the last triple of f returns from the function.
func (f *Function) Returns() bool {
	if len(f.Triples) == 0 {
		return false
	}
	return f.Triples[len(f.Triples)-1].Keyword == ir.KwReturn
}
