package splay

import (
	"cmp"
	"fmt"
	"io"
	"strings"
)

// debug utilities

// Dump writes a plain indented listing of the tree to w, one line per
// node, parent before children, indented by depth. Intended for
// debugging; it does not splay.
func (t *Tree[K, V]) Dump(w io.Writer) {
	fmt.Fprintf(w, "tree size: %d\n", t.size)
	t.Walk(func(n *Node[K, V], depth int) bool {
		fmt.Fprintf(w, "%skey %v = %v (left: %s, right: %s)\n",
			strings.Repeat("  ", depth), n.key, n.value,
			childDesc(n.left), childDesc(n.right))
		return true
	})
}

func childDesc[K cmp.Ordered, V any](n *Node[K, V]) string {
	if n == nil {
		return "nil"
	}
	return fmt.Sprintf("%v", n.key)
}
