package lir

import (
	"tdc/src/util"
)

// MarkReuse sets the Reused flag of every triple in f whose result is consumed by a later triple that is
// not its immediate successor. Work between producer and consumer clobbers the accumulator, so such
// results must be spilled. Operands must refer to strictly earlier triples.
func MarkReuse(f *Function) error {
	for _, e1 := range f.Triples {
		e1.Reused = false
	}
	for i1, e1 := range f.Triples {
		for _, e2 := range e1.Args {
			if !e2.IsExpression() {
				continue
			}
			if e2.Key < 0 || e2.Key >= i1 {
				return util.Errorf(util.Internal, e1.Line,
					"triple %d of function %q refers to triple %d", i1, f.Name, e2.Key)
			}
			if e2.Key != i1-1 {
				f.Triples[e2.Key].Reused = true
			}
		}
	}
	return nil
}
