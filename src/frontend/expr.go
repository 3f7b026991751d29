package frontend

import (
	"strconv"
	"strings"
	"tdc/src/ir"
	"tdc/src/util"
)

// parseExpr parses the text of a single statement or sub-expression. <nil> is returned for empty text.
// Text is classified by its first word: keywords take an operand, types declare a local and function
// names start a call. Anything else is split at the first operator outside parentheses.
func (p *parser) parseExpr(s string, line int) (*ir.Node, error) {
	s = stripParens(s)
	if len(s) == 0 {
		return nil, nil
	}

	if isDigits(s) {
		v, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return nil, util.Errorf(util.InvalidLiteral, line, "integer literal %s out of range", s)
		}
		return ir.NewNode(ir.LITERAL, p.lex.Tab.AddLiteral(int(v)), line), nil
	}
	if class, key := p.lex.Symbols.Lookup(s); class == ir.IDENTIFIER || class == ir.ARGUMENT {
		return ir.NewNode(class, key, line), nil
	}

	head := leadingName(s)
	class, key := p.lex.Symbols.Lookup(head)
	switch class {
	case ir.KEYWORD:
		return p.parseKeyword(s[len(head):], ir.Keyword(key), line)
	case ir.TYPE:
		return p.parseDeclaration(s[len(head):], ir.DataType(key), line)
	case ir.FUNCTION:
		n, ok, err := p.parseCall(s[len(head):], head, key, line)
		if ok || err != nil {
			return n, err
		}
	}
	return p.parseBinary(s, line)
}

// parseKeyword parses the operand of keyword kw and returns EXPRESSION[KEYWORD, operand].
func (p *parser) parseKeyword(rest string, kw ir.Keyword, line int) (*ir.Node, error) {
	operand, err := p.parseExpr(rest, line)
	if err != nil {
		return nil, err
	}
	if operand == nil {
		return nil, util.Errorf(util.UnrecognizedExpression, line, "%s expects an operand", kw)
	}
	return ir.NewNode(ir.EXPRESSION, 0, line).Append(ir.NewNode(ir.KEYWORD, int(kw), line), operand), nil
}

// parseDeclaration declares a local of type typ in the current function. The returned node is
// EXPRESSION[KEYWORD(declaration)[IDENTIFIER], initialiser], where the initialiser is optional.
func (p *parser) parseDeclaration(rest string, typ ir.DataType, line int) (*ir.Node, error) {
	if p.fn < 0 {
		return nil, util.Errorf(util.Internal, line, "declaration outside function")
	}
	rest = strings.TrimSpace(rest)
	name := leadingName(rest)
	if !isName(name) {
		return nil, util.Errorf(util.InvalidName, line, "invalid variable name in declaration %q", rest)
	}

	slot := p.lex.Tab.AddLocal(p.fn, typ)
	p.bind(name, ir.IDENTIFIER, slot)
	marker := ir.NewNode(ir.KEYWORD, int(ir.KwDeclaration), line).Append(ir.NewNode(ir.IDENTIFIER, slot, line))
	decl := ir.NewNode(ir.EXPRESSION, 0, line).Append(marker)
	if len(strings.TrimSpace(rest[len(name):])) == 0 {
		return decl, nil
	}

	init, err := p.parseExpr(rest, line)
	if err != nil {
		return nil, err
	}
	if init == nil || init.Class != ir.EXPRESSION || len(init.Children) != 3 ||
		init.Children[0].Class != ir.OPERATOR || ir.Operator(init.Children[0].Key) != ir.OpAssign ||
		init.Children[1].Class != ir.IDENTIFIER || init.Children[1].Key != slot {
		return nil, util.Errorf(util.UnrecognizedExpression, line, "expected assignment in declaration of %q", name)
	}
	return decl.Append(init.Children[2]), nil
}

// parseCall parses the parenthesised argument list following the function name head. false is returned,
// without error, if more text follows the closing parenthesis; the text is then an operator expression.
func (p *parser) parseCall(rest, head string, key, line int) (*ir.Node, bool, error) {
	rest = strings.TrimSpace(rest)
	if !strings.HasPrefix(rest, "(") {
		return nil, false, util.Errorf(util.MissingPunctuation, line, "expecting '(' after %q", head)
	}
	c := newCursor(rest[1:])
	inner, ok := c.balanced()
	if !ok {
		return nil, false, util.Errorf(util.UnterminatedCall, line, "call of %q is missing ')'", head)
	}
	if len(strings.TrimSpace(c.input[c.pos:])) > 0 {
		return nil, false, nil
	}

	n := ir.NewNode(ir.EXPRESSION, 0, line).Append(
		ir.NewNode(ir.OPERATOR, int(ir.OpCall), line),
		ir.NewNode(ir.FUNCTION, key, line),
	)
	if len(strings.TrimSpace(inner)) == 0 {
		return n, true, nil
	}
	for _, e1 := range splitArgs(inner) {
		arg, err := p.parseExpr(e1, line)
		if err != nil {
			return nil, false, err
		}
		if arg == nil {
			return nil, false, util.Errorf(util.UnrecognizedExpression, line, "empty argument in call of %q", head)
		}
		n.Append(arg)
	}
	return n, true, nil
}

// parseBinary splits s at the first operator outside parentheses. Both sides must be non-empty.
// The split is flat: no precedence between operators applies.
func (p *parser) parseBinary(s string, line int) (*ir.Node, error) {
	words := strings.Fields(s)
	depth := 0
	for i1, e1 := range words {
		if depth == 0 && p.lex.isClass(e1, ir.OPERATOR) {
			_, key := p.lex.Symbols.Lookup(e1)
			left, err := p.parseExpr(strings.Join(words[:i1], " "), line)
			if err != nil {
				return nil, err
			}
			right, err := p.parseExpr(strings.Join(words[i1+1:], " "), line)
			if err != nil {
				return nil, err
			}
			if left == nil || right == nil {
				return nil, util.Errorf(util.UnrecognizedExpression, line, "operator %q is missing an operand in %q", e1, s)
			}
			return ir.NewNode(ir.EXPRESSION, 0, line).Append(ir.NewNode(ir.OPERATOR, key, line), left, right), nil
		}
		depth += strings.Count(e1, "(") - strings.Count(e1, ")")
	}
	return nil, util.Errorf(util.UnrecognizedExpression, line, "unrecognized expression %q", s)
}

// ----------------------------
// ----- Helper functions -----
// ----------------------------

// stripParens trims whitespace and removes enclosing parentheses matching each other, repeatedly.
func stripParens(s string) string {
	s = strings.TrimSpace(s)
	for len(s) >= 2 && s[0] == '(' && s[len(s)-1] == ')' {
		depth := 0
		for i1 := 0; i1 < len(s); i1++ {
			switch s[i1] {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 && i1 != len(s)-1 {
					// The opening parenthesis closes before the end: "(a) + (b)".
					return s
				}
			}
		}
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}

// leadingName returns the prefix of s up to whitespace or '('.
func leadingName(s string) string {
	if i := strings.IndexFunc(s, func(r rune) bool { return r == '(' || isSpace(r) }); i >= 0 {
		return s[:i]
	}
	return s
}

// splitArgs splits s at commas outside parentheses.
func splitArgs(s string) []string {
	var args []string
	depth, start := 0, 0
	for i1 := 0; i1 < len(s); i1++ {
		switch s[i1] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, s[start:i1])
				start = i1 + 1
			}
		}
	}
	return append(args, s[start:])
}
