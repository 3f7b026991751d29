package frontend

import "tdc/src/ir"

// reservedItem is a word of the fixed vocabulary.
type reservedItem struct {
	val   string   // Spelling.
	class ir.Class // Token class.
	key   int      // Semantic key.
}

// Lexer owns the symbol dictionary and the append-only tables that grow while parsing.
type Lexer struct {
	Symbols *Trie      // Every spelled word known to the compiler.
	Tab     *ir.Tables // Literals, identifiers and functions discovered so far.
}

// rw contains the fixed vocabulary: types, keywords, operators and structural punctuation.
var rw = [...]reservedItem{
	// Types.
	{val: "int", class: ir.TYPE, key: int(ir.DataInteger)},

	// Keywords.
	{val: "return", class: ir.KEYWORD, key: int(ir.KwReturn)},
	{val: "print", class: ir.KEYWORD, key: int(ir.KwPrint)},
	{val: "if", class: ir.IF},

	// Operators.
	{val: "+", class: ir.OPERATOR, key: int(ir.OpPlus)},
	{val: "-", class: ir.OPERATOR, key: int(ir.OpMinus)},
	{val: "*", class: ir.OPERATOR, key: int(ir.OpMultiply)},
	{val: "/", class: ir.OPERATOR, key: int(ir.OpDivide)},
	{val: "=", class: ir.OPERATOR, key: int(ir.OpAssign)},
	{val: "==", class: ir.OPERATOR, key: int(ir.OpEqual)},
	{val: "!=", class: ir.OPERATOR, key: int(ir.OpNotEqual)},
	{val: "<", class: ir.OPERATOR, key: int(ir.OpLess)},
	{val: ">", class: ir.OPERATOR, key: int(ir.OpGreater)},
	{val: "<=", class: ir.OPERATOR, key: int(ir.OpLessEqual)},
	{val: ">=", class: ir.OPERATOR, key: int(ir.OpGreaterEqual)},

	// Punctuation.
	{val: ";", class: ir.SEMICOLON},
	{val: "(", class: ir.POPEN},
	{val: ")", class: ir.PCLOSE},
	{val: "{", class: ir.COPEN},
	{val: "}", class: ir.CCLOSE},
}

// NewLexer returns a Lexer whose dictionary holds the fixed vocabulary and whose tables are empty.
func NewLexer() *Lexer {
	l := &Lexer{
		Symbols: NewTrie(),
		Tab:     &ir.Tables{},
	}
	for _, e1 := range rw {
		l.Symbols.Insert(e1.val, e1.class, e1.key)
	}
	return l
}

// isClass returns true if word is bound to class c.
func (l *Lexer) isClass(word string, c ir.Class) bool {
	class, _ := l.Symbols.Lookup(word)
	return class == c
}
