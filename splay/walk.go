package splay

import "cmp"

// Walk visits every node depth first, parent before children, without
// splaying. visit receives each node and its depth below the root and
// returns false to stop the walk early. Child identity is available
// through the node's Left and Right accessors, which is what rendering
// consumers need.
//
// visit must not mutate the tree.
func (t *Tree[K, V]) Walk(visit func(n *Node[K, V], depth int) bool) {
	walkNodes(t.root, 0, visit)
}

func walkNodes[K cmp.Ordered, V any](n *Node[K, V], depth int, visit func(*Node[K, V], int) bool) bool {
	if n == nil {
		return true
	}
	if !visit(n, depth) {
		return false
	}
	if !walkNodes(n.left, depth+1, visit) {
		return false
	}
	return walkNodes(n.right, depth+1, visit)
}
