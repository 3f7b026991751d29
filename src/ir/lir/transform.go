package lir

import (
	"tdc/src/ir"
	"tdc/src/util"

	"github.com/golang/glog"
)

// GenLIR generates the light intermediate representation of the syntax tree rooted at root. Each function
// node is lowered into its own triple stream, in declaration order. The tables are only read.
func GenLIR(name string, root *ir.Node, tab *ir.Tables) (*Module, error) {
	if root == nil || root.Class != ir.ROOT {
		return nil, util.Errorf(util.Internal, 0, "syntax tree has no root")
	}
	m := CreateModule(name)
	for _, e1 := range root.Children {
		f, err := genFunction(e1, tab)
		if err != nil {
			return nil, err
		}
		m.Functions = append(m.Functions, f)
	}
	glog.V(1).Infof("lowered %d functions into %d triples", len(m.Functions), m.Triples())
	return m, nil
}

// genFunction lowers the statements of function node n.
func genFunction(n *ir.Node, tab *ir.Tables) (*Function, error) {
	if n.Class != ir.FUNCTION {
		return nil, util.Errorf(util.Internal, n.Line, "expected function node, got %s", n.Class)
	}
	decl := tab.Function(n.Key)
	if decl == nil {
		return nil, util.Errorf(util.Internal, n.Line, "function %d not declared", n.Key)
	}
	f := &Function{Key: n.Key, Name: decl.Name, Params: len(decl.Args)}
	for _, e1 := range n.Children {
		if err := f.genStatement(e1); err != nil {
			return nil, err
		}
	}
	if err := MarkReuse(f); err != nil {
		return nil, err
	}
	glog.V(3).Infof("function %q: %d triples", f.Name, len(f.Triples))
	return f, nil
}

// genStatement lowers a statement: an expression or an if.
func (f *Function) genStatement(n *ir.Node) error {
	switch n.Class {
	case ir.EXPRESSION:
		_, err := f.genExpression(n)
		return err
	case ir.IF:
		return f.genIf(n)
	default:
		return util.Errorf(util.Internal, n.Line, "unexpected %s node in statement list", n.Class)
	}
}

// genIf lowers an if node into the condition, a jump triple, the body and the label closing the body.
func (f *Function) genIf(n *ir.Node) error {
	if len(n.Children) == 0 {
		return util.Errorf(util.Internal, n.Line, "if without condition")
	}
	cond, err := f.genOperand(n.Children[0])
	if err != nil {
		return err
	}
	jump, _ := newKeywordTriple(ir.KwJump, n.Line, cond)
	f.append(jump)
	for _, e1 := range n.Children[1:] {
		if err := f.genStatement(e1); err != nil {
			return err
		}
	}
	label, _ := newKeywordTriple(ir.KwLabel, n.Line)
	f.append(label)
	return nil
}

// genOperand lowers n if it is an expression and returns the operand referring to it.
func (f *Function) genOperand(n *ir.Node) (Operand, error) {
	if n.Class != ir.EXPRESSION {
		return Operand{Class: n.Class, Key: n.Key}, nil
	}
	i, err := f.genExpression(n)
	if err != nil {
		return Operand{}, err
	}
	return Operand{Class: ir.EXPRESSION, Key: i}, nil
}

// genExpression lowers the expression node n, operands first, and returns the position of its own triple.
func (f *Function) genExpression(n *ir.Node) (int, error) {
	if len(n.Children) == 0 {
		return 0, util.Errorf(util.Internal, n.Line, "empty expression")
	}
	head := n.Children[0]

	// Declarations carry the declared identifier below the keyword marker.
	if head.Class == ir.KEYWORD && ir.Keyword(head.Key) == ir.KwDeclaration {
		if len(head.Children) != 1 || head.Children[0].Class != ir.IDENTIFIER {
			return 0, util.Errorf(util.Internal, n.Line, "declaration without identifier")
		}
		init := Operand{Class: ir.NONE}
		if len(n.Children) > 1 {
			var err error
			if init, err = f.genOperand(n.Children[1]); err != nil {
				return 0, err
			}
		}
		t, _ := newKeywordTriple(ir.KwDeclaration, n.Line, init, Operand{Class: ir.IDENTIFIER, Key: head.Children[0].Key})
		return f.append(t), nil
	}

	args := make([]Operand, 0, len(n.Children)-1)
	for _, e1 := range n.Children[1:] {
		o, err := f.genOperand(e1)
		if err != nil {
			return 0, err
		}
		args = append(args, o)
	}

	var t *Triple
	var ok bool
	switch head.Class {
	case ir.KEYWORD:
		t, ok = newKeywordTriple(ir.Keyword(head.Key), n.Line, args...)
	case ir.OPERATOR:
		t, ok = newOperatorTriple(ir.Operator(head.Key), n.Line, args...)
	}
	if !ok {
		return 0, util.Errorf(util.Internal, n.Line, "expression headed by %s", head)
	}
	return f.append(t), nil
}
