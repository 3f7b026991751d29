package ir

import (
	"tdc/src/util"
)

// ---------------------
// ----- functions -----
// ---------------------

// ValidateTree verifies the syntax tree rooted at root before it is lowered. The function named entry
// must be declared, every call must pass as many arguments as its callee declares and every assignment
// must target a local variable or an argument.
func ValidateTree(root *Node, tab *Tables, entry string) error {
	if root == nil || root.Class != ROOT {
		return util.Errorf(util.Internal, 0, "syntax tree has no root")
	}
	if _, ok := tab.FunctionByName(entry); !ok {
		return util.Errorf(util.MissingEntry, 0, "no function named %q declared", entry)
	}
	for _, e1 := range root.Children {
		if err := e1.validate(tab); err != nil {
			return err
		}
	}
	return nil
}

// validate recursively validates the sub-tree rooted at n.
func (n *Node) validate(tab *Tables) error {
	if n.Class == EXPRESSION && len(n.Children) > 0 && n.Children[0].Class == OPERATOR {
		switch Operator(n.Children[0].Key) {
		case OpCall:
			if len(n.Children) < 2 {
				return util.Errorf(util.Internal, n.Line, "call without callee")
			}
			f := tab.Function(n.Children[1].Key)
			if f == nil {
				return util.Errorf(util.Internal, n.Line, "call of undeclared function %d", n.Children[1].Key)
			}
			if got := len(n.Children) - 2; got != len(f.Args) {
				return util.Errorf(util.ArgumentCount, n.Line,
					"function %q takes %d arguments, got %d", f.Name, len(f.Args), got)
			}
		case OpAssign:
			if len(n.Children) != 3 {
				return util.Errorf(util.Internal, n.Line, "assignment with %d operands", len(n.Children)-1)
			}
			if c := n.Children[1].Class; c != IDENTIFIER && c != ARGUMENT {
				return util.Errorf(util.UnrecognizedExpression, n.Line,
					"left side of assignment must be a variable, got %s", c)
			}
		}
	}
	for _, e1 := range n.Children {
		if err := e1.validate(tab); err != nil {
			return err
		}
	}
	return nil
}
