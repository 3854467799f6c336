package splay

import "cmp"

// Node is one record of the tree. It carries a key, an opaque value, and
// links to its two child subtrees. There is no parent link and no balance
// or color information; splay trees need neither.
//
// The fields are unexported so that external traversals (see Root and
// Walk) can inspect the structure without being able to break ownership
// of the links.
type Node[K cmp.Ordered, V any] struct {
	key   K
	value V

	// Subtree of records with keys not exceeding key.
	left *Node[K, V]

	// Subtree of records with keys at least as large as key.
	right *Node[K, V]
}

func newNode[K cmp.Ordered, V any](k K, v V) *Node[K, V] {
	return &Node[K, V]{key: k, value: v}
}

// Key returns a copy of the node's key.
func (n *Node[K, V]) Key() K { return n.key }

// Value returns a copy of the node's associated value.
func (n *Node[K, V]) Value() V { return n.value }

// Left returns the root of the left subtree, or nil.
func (n *Node[K, V]) Left() *Node[K, V] { return n.left }

// Right returns the root of the right subtree, or nil.
func (n *Node[K, V]) Right() *Node[K, V] { return n.right }

// rotateLeft rotates the link between t and its right child and returns
// the updated subtree root. t must have a right child.
//
//	  t              u
//	 / \            / \
//	a   u    =>    t   c
//	   / \        / \
//	  b   c      a   b
func rotateLeft[K cmp.Ordered, V any](t *Node[K, V]) *Node[K, V] {
	u := t.right
	t.right = u.left
	u.left = t
	return u
}

// rotateRight is the mirror image of rotateLeft. t must have a left child.
func rotateRight[K cmp.Ordered, V any](t *Node[K, V]) *Node[K, V] {
	s := t.left
	t.left = s.right
	s.right = t
	return s
}
