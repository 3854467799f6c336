package splay

import (
	"cmp"
	"fmt"
)

// HealthCheck verifies the tree's structural invariants in one linear
// traversal: the size counter must match the reachable node count (and
// be zero exactly when there is no root), and every key must lie within
// the open bounds inherited from its ancestors. The returned error
// describes the first violation found; nil means healthy.
//
// The check is advisory. No operation invokes it internally, and a
// detected violation is reported, never repaired.
func (t *Tree[K, V]) HealthCheck() error {
	if t.root == nil && t.size == 0 {
		return nil
	}
	if t.root != nil && t.size == 0 {
		return fmt.Errorf("%w: size counter is zero but the tree has a root", ErrBadSize)
	}
	if t.root == nil {
		return fmt.Errorf("%w: size counter is %d but the tree has no root", ErrBadSize, t.size)
	}
	if n := countNodes(t.root); n != t.size {
		return fmt.Errorf("%w: size counter is %d but %d nodes are reachable", ErrBadSize, t.size, n)
	}
	return checkOrder(t.root, nil, nil)
}

// countNodes recomputes the reachable-node count independently of the
// size field. Linear time; it will not terminate if the links have a
// cycle, which is exactly the sort of corruption no checker can fully
// defend against.
func countNodes[K cmp.Ordered, V any](n *Node[K, V]) int {
	if n == nil {
		return 0
	}
	return 1 + countNodes(n.left) + countNodes(n.right)
}

// checkOrder walks the subtree carrying the open key interval inherited
// from the ancestors; a nil bound is unbounded. Bounds tighten on the
// way down: the left subtree inherits the node's key as its upper bound,
// the right subtree as its lower bound.
func checkOrder[K cmp.Ordered, V any](n *Node[K, V], lo, hi *K) error {
	if n == nil {
		return nil
	}
	if lo != nil && n.key < *lo {
		return fmt.Errorf("%w: key %v sorts before its ancestor bound %v", ErrBadOrder, n.key, *lo)
	}
	if hi != nil && *hi < n.key {
		return fmt.Errorf("%w: key %v sorts after its ancestor bound %v", ErrBadOrder, n.key, *hi)
	}
	if err := checkOrder(n.left, lo, &n.key); err != nil {
		return err
	}
	return checkOrder(n.right, &n.key, hi)
}
