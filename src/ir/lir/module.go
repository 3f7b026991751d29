package lir

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Module defines a program: the triple streams of every declared function, in declaration order.
type Module struct {
	Name      string      // Name of module. Not important.
	Functions []*Function // All functions defined in module.
}

// ---------------------
// ----- Functions -----
// ---------------------

// CreateModule creates a new empty module with the given optional name.
func CreateModule(name string) *Module {
	m := Module{}
	if len(name) > 0 {
		m.Name = name
	} else {
		m.Name = "LIR Module"
	}
	return &m
}

// Triples returns the total number of triples in m.
func (m *Module) Triples() int {
	n := 0
	for _, e1 := range m.Functions {
		n += len(e1.Triples)
	}
	return n
}
