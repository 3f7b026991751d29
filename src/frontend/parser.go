// parser.go carves source text into functions, argument lists and statement lists. Statements are collected
// as text up to their terminating ';' and handed to the expression parser in expr.go.

package frontend

import (
	"strings"
	"tdc/src/ir"
	"tdc/src/util"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// binding remembers what a word was bound to before a function scoped declaration rebound it.
type binding struct {
	word  string   // Rebound word.
	bound bool     // Set true if word carried a payload before.
	class ir.Class // Previous class, if bound.
	key   int      // Previous key, if bound.
}

// parser builds the syntax tree. Arguments and locals are bound in the dictionary for the duration of
// their function only.
type parser struct {
	lex   *Lexer    // Dictionary and tables.
	fn    int       // Key of the function being parsed, -1 outside functions.
	scope []binding // Bindings made by the function being parsed, oldest first.
}

// ---------------------
// ----- Functions -----
// ---------------------

// bind binds word to class and key in the scope of the current function.
func (p *parser) bind(word string, class ir.Class, key int) {
	b := binding{word: word, bound: p.lex.Symbols.Bound(word)}
	b.class, b.key = p.lex.Symbols.Lookup(word)
	p.scope = append(p.scope, b)
	p.lex.Symbols.Insert(word, class, key)
}

// unwind restores every binding made in the current function scope.
func (p *parser) unwind() {
	for i1 := len(p.scope) - 1; i1 >= 0; i1-- {
		b := p.scope[i1]
		if b.bound {
			p.lex.Symbols.Insert(b.word, b.class, b.key)
		} else {
			p.lex.Symbols.Remove(b.word)
		}
	}
	p.scope = p.scope[:0]
}

// parseRoot parses functions until the end of input.
func (p *parser) parseRoot(c *cursor) (*ir.Node, error) {
	root := ir.NewNode(ir.ROOT, 0, c.line)
	for {
		c.skipSpace()
		if c.atEOF() {
			return root, nil
		}
		f, err := p.parseFunction(c)
		if err != nil {
			return nil, err
		}
		root.Append(f)
	}
}

// parseFunction parses a function definition. The function is entered in the function table and bound
// in the dictionary before its body is parsed, so the body may call it.
func (p *parser) parseFunction(c *cursor) (*ir.Node, error) {
	c.skipSpace()
	line := c.line

	w := c.word()
	class, key := p.lex.Symbols.Lookup(w)
	if class != ir.TYPE {
		return nil, util.Errorf(util.InvalidType, line, "%q does not name a type", w)
	}
	name := c.word()
	if len(name) == 0 {
		return nil, util.Errorf(util.InvalidName, c.line, "missing function name")
	}
	if !isName(name) {
		return nil, util.Errorf(util.InvalidName, c.line, "invalid function name %q", name)
	}
	if _, ok := p.lex.Tab.FunctionByName(name); ok {
		return nil, util.Errorf(util.InvalidName, c.line, "function %q already declared", name)
	}

	f := ir.Function{Name: name, Typ: ir.DataType(key), Line: line}
	if err := p.parseArgs(c, &f); err != nil {
		return nil, err
	}
	p.fn = p.lex.Tab.AddFunction(f)
	p.lex.Symbols.Insert(name, ir.FUNCTION, p.fn)
	defer func(fn int) {
		p.unwind()
		// An argument spelled like the function restores the word to unbound; the function stays.
		p.lex.Symbols.Insert(name, ir.FUNCTION, fn)
		p.fn = -1
	}(p.fn)

	n := ir.NewNode(ir.FUNCTION, p.fn, line)
	if err := p.eat(c, ir.COPEN); err != nil {
		return nil, err
	}
	body, err := p.parseStatements(c)
	if err != nil {
		return nil, err
	}
	if err := p.eat(c, ir.CCLOSE); err != nil {
		return nil, err
	}
	return n.Append(body...), nil
}

// parseArgs parses a parenthesised list of typed arguments into f. Every argument is bound
// to its zero indexed position.
func (p *parser) parseArgs(c *cursor, f *ir.Function) error {
	if err := p.eat(c, ir.POPEN); err != nil {
		return err
	}
	for {
		c.skipSpace()
		if c.peek() == ')' {
			break
		}
		if c.atEOF() {
			return util.Errorf(util.MissingPunctuation, c.line, "missing ')' after arguments of %q", f.Name)
		}
		w := c.word()
		class, key := p.lex.Symbols.Lookup(w)
		if class != ir.TYPE {
			return util.Errorf(util.InvalidType, c.line, "%q does not name a type", w)
		}
		name := c.word()
		if !isName(name) {
			return util.Errorf(util.InvalidName, c.line, "invalid argument name %q", name)
		}
		p.bind(name, ir.ARGUMENT, len(f.Args))
		f.Args = append(f.Args, ir.DataType(key))

		c.skipSpace()
		if c.peek() == ',' {
			c.next()
		}
	}
	return p.eat(c, ir.PCLOSE)
}

// parseStatements parses statements up to, but not including, the '}' closing the list.
func (p *parser) parseStatements(c *cursor) ([]*ir.Node, error) {
	var result []*ir.Node
	for {
		c.skipSpace()
		if c.atEOF() {
			return nil, util.Errorf(util.MissingPunctuation, c.line, "missing '}'")
		}
		if c.peek() == '}' {
			return result, nil
		}

		line := c.line
		text, structural, err := p.collect(c)
		if err != nil {
			return nil, err
		}
		if structural {
			n, err := p.parseIf(c, line)
			if err != nil {
				return nil, err
			}
			result = append(result, n)
			continue
		}

		expanded, err := desugar(text, line)
		if err != nil {
			return nil, err
		}
		for _, e1 := range splitStatements(expanded) {
			n, err := p.parseExpr(e1, line)
			if err != nil {
				return nil, err
			}
			// Dangling ';' and statements without effect produce no node.
			if n != nil && n.Class == ir.EXPRESSION {
				result = append(result, n)
			}
		}
	}
}

// collect accumulates statement text up to and including its terminating ';', which is not returned.
// If the accumulated text spells the if keyword, collecting stops and true is returned instead.
func (p *parser) collect(c *cursor) (string, bool, error) {
	var sb strings.Builder
	line := c.line
	for {
		r := c.next()
		switch r {
		case eof, '}':
			return "", false, util.Errorf(util.MissingPunctuation, line,
				"missing ';' after %q", strings.TrimSpace(sb.String()))
		case ';':
			return sb.String(), false, nil
		}
		sb.WriteRune(r)
		if p.lex.isClass(strings.TrimSpace(sb.String()), ir.IF) {
			if next := c.peek(); next == '(' || isSpace(next) {
				return "", true, nil
			}
		}
	}
}

// parseIf parses the condition and body of an if statement. The if keyword has been consumed.
func (p *parser) parseIf(c *cursor, line int) (*ir.Node, error) {
	if err := p.eat(c, ir.POPEN); err != nil {
		return nil, err
	}
	text, ok := c.balanced()
	if !ok {
		return nil, util.Errorf(util.MissingPunctuation, line, "missing ')' after if condition")
	}
	cond, err := p.parseExpr(text, line)
	if err != nil {
		return nil, err
	}
	if cond == nil {
		return nil, util.Errorf(util.UnrecognizedExpression, line, "if without condition")
	}

	if err := p.eat(c, ir.COPEN); err != nil {
		return nil, err
	}
	body, err := p.parseStatements(c)
	if err != nil {
		return nil, err
	}
	if err := p.eat(c, ir.CCLOSE); err != nil {
		return nil, err
	}
	return ir.NewNode(ir.IF, 0, line).Append(cond).Append(body...), nil
}

// eat consumes the punctuation character bound to class, surrounded by optional whitespace.
func (p *parser) eat(c *cursor, class ir.Class) error {
	c.skipSpace()
	line := c.line
	r := c.next()
	if r == eof || !p.lex.isClass(string(r), class) {
		if r != eof {
			c.backup()
		}
		return util.Errorf(util.MissingPunctuation, line, "missing '%s'", spelling(class))
	}
	c.skipSpace()
	return nil
}

// spelling returns the first vocabulary word bound to class.
func spelling(class ir.Class) string {
	for _, e1 := range rw {
		if e1.class == class {
			return e1.val
		}
	}
	return class.String()
}
