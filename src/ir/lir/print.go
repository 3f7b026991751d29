package lir

import (
	"fmt"
	"strings"
)

// labelReused marks spilled triples in textual LIR.
const labelReused = " [reused]"

// String returns the textual LIR representation of t.
func (t *Triple) String() string {
	sb := strings.Builder{}
	if t.Op != 0 {
		sb.WriteString(t.Op.String())
	} else {
		sb.WriteString(t.Keyword.String())
	}
	for i1, e1 := range t.Args {
		if i1 == 0 {
			sb.WriteRune(' ')
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(e1.String())
	}
	if t.Reused {
		sb.WriteString(labelReused)
	}
	return sb.String()
}

// String returns the textual LIR representation of f.
func (f *Function) String() string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("function %s(%d):\n", f.Name, f.Params))
	for i1, e1 := range f.Triples {
		sb.WriteString(fmt.Sprintf("%4d: %s\n", i1, e1))
	}
	return sb.String()
}

// String returns a textual representation of the module.
func (m *Module) String() string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("Module: %s\n\n", m.Name))
	for i1, e1 := range m.Functions {
		if i1 > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(e1.String())
	}
	return sb.String()
}
