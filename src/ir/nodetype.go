package ir

import (
	"fmt"
	"io"
	"strings"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Class is the token class of a spelled word, a syntax tree node or a triple operand.
// The meaning of the accompanying key depends on the class.
type Class int

// Node represents a single node in the syntax tree. Every child is owned by exactly one parent.
type Node struct {
	Class    Class   // Token class of node.
	Key      int     // Semantic key, meaningful relative to Class.
	Line     int     // Line in source code Node is declared.
	Children []*Node // Children of this node that constitutes its local sub-tree.
}

// ---------------------
// ----- Constants -----
// ---------------------

const (
	NONE Class = iota
	TYPE
	KEYWORD
	OPERATOR
	IDENTIFIER
	ARGUMENT
	FUNCTION
	LITERAL
	EXPRESSION
	IF
	ROOT
	SEMICOLON
	POPEN
	PCLOSE
	COPEN
	CCLOSE
)

// nt provides an array of strings used for printing Class in a print friendly manner.
var nt = [...]string{
	"NONE",
	"TYPE",
	"KEYWORD",
	"OPERATOR",
	"IDENTIFIER",
	"ARGUMENT",
	"FUNCTION",
	"LITERAL",
	"EXPRESSION",
	"IF",
	"ROOT",
	"SEMICOLON",
	"POPEN",
	"PCLOSE",
	"COPEN",
	"CCLOSE",
}

// ----------------------
// ----- functions ------
// ----------------------

// String returns a print friendly string of the Class.
func (c Class) String() string {
	if c < 0 || int(c) >= len(nt) {
		return fmt.Sprintf("Class(%d)", int(c))
	}
	return nt[c]
}

// NewNode returns a childless node.
func NewNode(c Class, key, line int) *Node {
	return &Node{Class: c, Key: key, Line: line}
}

// Append adds children to n. <nil> children are ignored.
func (n *Node) Append(children ...*Node) *Node {
	for _, e1 := range children {
		if e1 != nil {
			n.Children = append(n.Children, e1)
		}
	}
	return n
}

// String returns a print friendly string of Node n.
func (n *Node) String() string {
	if n == nil {
		return "---> [NIL POINTER]"
	}
	switch n.Class {
	case KEYWORD:
		return fmt.Sprintf("%s [%s]", n.Class, Keyword(n.Key))
	case OPERATOR:
		return fmt.Sprintf("%s [%s]", n.Class, Operator(n.Key))
	case TYPE:
		return fmt.Sprintf("%s [%s]", n.Class, DataType(n.Key))
	case ROOT, EXPRESSION, IF:
		return n.Class.String()
	default:
		return fmt.Sprintf("%s [%d]", n.Class, n.Key)
	}
}

// Print recursively prints this Node and all its Children to w while indenting for every recursive call.
// depth is the number of times nodes are padded to the right, having the root node with padding 0.
func (n *Node) Print(w io.Writer, depth int) {
	if depth < 0 {
		depth = 0
	}
	_, _ = fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), n.String())
	if n == nil {
		return
	}
	for _, e := range n.Children {
		e.Print(w, depth+1)
	}
}

// Count returns the number of nodes in the sub-tree rooted at n.
func (n *Node) Count() int {
	if n == nil {
		return 0
	}
	c := 1
	for _, e1 := range n.Children {
		c += e1.Count()
	}
	return c
}
