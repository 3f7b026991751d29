// trie.go implements the symbol dictionary: a character keyed prefix tree mapping every spelled word,
// fixed vocabulary and user declared names alike, to a token class and a semantic key.

package frontend

import (
	"sort"
	"tdc/src/ir"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// payload is the terminal entry of a word in the trie.
type payload struct {
	class ir.Class // Token class of word.
	key   int      // Semantic key of word.
}

// node is a single character of the trie. Children are ordered by character and owned by their parent.
type node struct {
	c        byte     // Character of node. The root holds 0.
	children []*node  // At most one child per character, sorted ascending.
	term     *payload // Set if a word ends at this node.
}

// Trie is a prefix tree of words.
type Trie struct {
	root *node
}

// ---------------------
// ----- Functions -----
// ---------------------

// NewTrie returns an empty trie.
func NewTrie() *Trie {
	return &Trie{root: &node{}}
}

// child returns the position of the child holding c and true, or the position c would be inserted at and false.
func (n *node) child(c byte) (int, bool) {
	i := sort.Search(len(n.children), func(i int) bool { return n.children[i].c >= c })
	return i, i < len(n.children) && n.children[i].c == c
}

// Insert binds word to class and key, overwriting any previous binding of the exact word.
func (t *Trie) Insert(word string, class ir.Class, key int) {
	cur := t.root
	for i1 := 0; i1 < len(word); i1++ {
		i, ok := cur.child(word[i1])
		if !ok {
			n := &node{c: word[i1]}
			cur.children = append(cur.children, nil)
			copy(cur.children[i+1:], cur.children[i:])
			cur.children[i] = n
		}
		cur = cur.children[i]
	}
	cur.term = &payload{class: class, key: key}
}

// find returns the node reached by walking word, or <nil> if any character is unmatched.
func (t *Trie) find(word string) *node {
	cur := t.root
	for i1 := 0; i1 < len(word); i1++ {
		i, ok := cur.child(word[i1])
		if !ok {
			return nil
		}
		cur = cur.children[i]
	}
	return cur
}

// Lookup returns the class and key bound to word. ir.NONE is returned if word is unbound.
func (t *Trie) Lookup(word string) (ir.Class, int) {
	n := t.find(word)
	if n == nil || n.term == nil {
		return ir.NONE, 0
	}
	return n.term.class, n.term.key
}

// Bound returns true if word carries a terminal payload, even one of class ir.NONE.
func (t *Trie) Bound(word string) bool {
	n := t.find(word)
	return n != nil && n.term != nil
}

// Remove unbinds word. Nodes left without a payload and without children are pruned
// bottom-up along the path of word. Removing an unbound word does nothing.
func (t *Trie) Remove(word string) {
	path := make([]*node, 0, len(word)+1)
	path = append(path, t.root)
	cur := t.root
	for i1 := 0; i1 < len(word); i1++ {
		i, ok := cur.child(word[i1])
		if !ok {
			return
		}
		cur = cur.children[i]
		path = append(path, cur)
	}
	cur.term = nil

	// Prune after the walk, never while iterating a child list.
	for i1 := len(path) - 1; i1 > 0; i1-- {
		n := path[i1]
		if n.term != nil || len(n.children) > 0 {
			return
		}
		parent := path[i1-1]
		i, _ := parent.child(n.c)
		parent.children = append(parent.children[:i], parent.children[i+1:]...)
	}
}

// Walk calls fn for every bound word in lexicographical order.
func (t *Trie) Walk(fn func(word string, class ir.Class, key int)) {
	var walk func(n *node, prefix []byte)
	walk = func(n *node, prefix []byte) {
		if n.term != nil {
			fn(string(prefix), n.term.class, n.term.key)
		}
		for _, e1 := range n.children {
			walk(e1, append(prefix, e1.c))
		}
	}
	walk(t.root, make([]byte, 0, 16))
}
