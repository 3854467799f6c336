package splay

import "cmp"

// Tree is an ordered dictionary over totally ordered keys, usable as a
// map, multimap, set or multiset. Duplicate keys are permitted. The zero
// value is an empty tree ready for use.
//
// All dictionary operations splay, including Find, Min and Max; see the
// package documentation for the concurrency consequences.
type Tree[K cmp.Ordered, V any] struct {
	root *Node[K, V]
	size int
}

// New returns an empty tree.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{}
}

// Len reports the number of records in the tree.
func (t *Tree[K, V]) Len() int { return t.size }

// Root returns the current root node, or nil for an empty tree. It is
// the entry point for external traversals (rendering, range scans) and
// does not splay. The returned node is invalidated by any subsequent
// mutating or splaying operation.
func (t *Tree[K, V]) Root() *Node[K, V] { return t.root }

// Insert adds a record with key k and value v, splaying it to the root.
// Existing records with equal keys are retained.
func (t *Tree[K, V]) Insert(k K, v V) {
	t.root = insertAndSplay(t.root, newNode(k, v))
	t.size++
}

// Find searches for k and splays. On success the result carries the key
// and value and the found record is at the root. On failure the tree is
// still splayed, leaving the last probed node at the root; absence is a
// normal outcome, not an error.
func (t *Tree[K, V]) Find(k K) Result[K, V] {
	var r Result[K, V]
	t.root, r.Found = searchAndSplay(t.root, k)
	if r.Found {
		r.Key = t.root.key
		r.Value = t.root.value
	}
	return r
}

// Update overwrites the value of a record with key k and reports whether
// one was found. With duplicate keys, exactly one record is affected and
// there is no way to control which.
func (t *Tree[K, V]) Update(k K, v V) bool {
	var found bool
	t.root, found = searchAndSplay(t.root, k)
	if found {
		t.root.value = v
	}
	return found
}

// Erase removes one record with key k and returns its value. If no such
// record exists it reports false and the tree is unchanged apart from
// the splay performed by the failed search.
func (t *Tree[K, V]) Erase(k K) (V, bool) {
	var found bool
	t.root, found = searchAndSplay(t.root, k)
	if !found {
		var zero V
		return zero, false
	}

	doomed := t.root

	// Splay the successor (the minimum of the right subtree, if any) to
	// the front of that subtree; it then adopts the erased node's left
	// subtree and takes over the root. With no right subtree the left
	// child is the new root outright.
	if doomed.right != nil {
		t.root = splayLeftmost(doomed.right)
		t.root.left = doomed.left
	} else {
		t.root = doomed.left
	}

	doomed.left, doomed.right = nil, nil
	t.size--
	return doomed.value, true
}

// Min splays the minimum record to the root and returns it. An empty
// tree reports not found.
func (t *Tree[K, V]) Min() Result[K, V] {
	var r Result[K, V]
	if t.root == nil {
		return r
	}
	t.root = splayLeftmost(t.root)
	r.Found = true
	r.Key = t.root.key
	r.Value = t.root.value
	return r
}

// Max splays the maximum record to the root and returns it. An empty
// tree reports not found.
func (t *Tree[K, V]) Max() Result[K, V] {
	var r Result[K, V]
	if t.root == nil {
		return r
	}
	t.root = splayRightmost(t.root)
	r.Found = true
	r.Key = t.root.key
	r.Value = t.root.value
	return r
}

// Clear resets the tree to empty. Safe on an already-empty tree.
func (t *Tree[K, V]) Clear() {
	t.root = nil
	t.size = 0
}
