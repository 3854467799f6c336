package splay

import "cmp"

// Copy deep-duplicates t into dst, which must be empty. t is unaffected
// and the two trees share no nodes afterward.
func (t *Tree[K, V]) Copy(dst *Tree[K, V]) error {
	if dst.root != nil || dst.size != 0 {
		return ErrDestinationNotEmpty
	}
	dst.root = cloneNodes(t.root)
	dst.size = t.size
	return nil
}

// Clone returns an independent deep copy of t.
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	dst := New[K, V]()
	_ = t.Copy(dst) // dst is freshly empty, Copy cannot fail
	return dst
}

// Move transfers the contents of t into dst in constant time, leaving t
// empty. dst must be empty.
func (t *Tree[K, V]) Move(dst *Tree[K, V]) error {
	if dst.root != nil || dst.size != 0 {
		return ErrDestinationNotEmpty
	}
	dst.root, dst.size = t.root, t.size
	t.root, t.size = nil, 0
	return nil
}

// cloneNodes duplicates a subtree postorder. Stack depth is O(height),
// which for a splay tree can reach O(n) on adversarial shapes.
func cloneNodes[K cmp.Ordered, V any](n *Node[K, V]) *Node[K, V] {
	if n == nil {
		return nil
	}
	l := cloneNodes(n.left)
	r := cloneNodes(n.right)
	c := newNode(n.key, n.value)
	c.left, c.right = l, r
	return c
}
