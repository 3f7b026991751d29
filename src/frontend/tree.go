// tree.go provides the entry points of the front end: parsing a source file or string into a syntax tree of
// ir.Nodes, and writing the symbol dictionary as a table for inspection.

package frontend

import (
	"fmt"
	"io"
	"tdc/src/ir"
	"tdc/src/util"
	"text/tabwriter"

	"github.com/golang/glog"
)

// Parse reads the source file at path and parses it.
func Parse(path string) (*ir.Node, *Lexer, error) {
	src, err := util.ReadSource(path)
	if err != nil {
		return nil, nil, err
	}
	return ParseSource(src)
}

// ParseSource parses src into a syntax tree. The returned Lexer holds the dictionary and the tables
// discovered while parsing. Names declared inside functions are no longer bound once parsing returns.
func ParseSource(src string) (*ir.Node, *Lexer, error) {
	l := NewLexer()
	p := parser{lex: l, fn: -1}
	root, err := p.parseRoot(newCursor(src))
	if err != nil {
		return nil, nil, err
	}
	glog.V(1).Infof("parsed %d functions, %d nodes, %d literals", len(l.Tab.Functions), root.Count(), len(l.Tab.Literals))
	return root, l, nil
}

// PrintSymbols writes every word bound in the dictionary of l as a table.
func PrintSymbols(w io.Writer, l *Lexer) error {
	tw := tabwriter.NewWriter(w, 10, 20, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "Word\tClass\tKey\n")
	l.Symbols.Walk(func(word string, class ir.Class, key int) {
		_, _ = fmt.Fprintf(tw, "%q\t%s\t%d\n", word, class, key)
	})
	return tw.Flush()
}
