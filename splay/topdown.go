package splay

import "cmp"

// direction tags which child link a descent step followed.
type direction uint8

const (
	towardLeft direction = iota
	towardRight
)

// frontier is one remainder tree under construction during a top-down
// splay. Nodes evicted from the search path are appended at the tip: the
// single currently-empty child slot on the tree's growing edge. The left
// remainder grows at its rightmost frontier (side == towardRight), so its
// keys arrive in nondecreasing order; the right remainder grows at its
// leftmost frontier (side == towardLeft) with keys in nonincreasing order.
//
// tail is the node that owns the tip slot; a nil tail means the tip is
// the root slot of a still-empty remainder tree.
type frontier[K cmp.Ordered, V any] struct {
	root *Node[K, V]
	tail *Node[K, V]
	side direction
}

// append attaches n at the tip and opens n's same-side child slot as the
// new tip. n keeps its opposite-side subtree; the same-side link is
// severed because it still points into the active search path.
func (f *frontier[K, V]) append(n *Node[K, V]) {
	if f.side == towardRight {
		n.right = nil
	} else {
		n.left = nil
	}
	f.graft(n)
	f.tail = n
}

// graft hangs sub at the tip without advancing it. Every splay ends with
// one graft per frontier, attaching the new root's vacated subtree below
// everything already appended. sub may be nil.
func (f *frontier[K, V]) graft(sub *Node[K, V]) {
	if f.tail == nil {
		f.root = sub
		return
	}
	if f.side == towardRight {
		f.tail.right = sub
	} else {
		f.tail.left = sub
	}
}

// step records one visited ancestor of the working root, together with
// the link direction the descent took away from it.
type step[K cmp.Ordered, V any] struct {
	n   *Node[K, V]
	dir direction
}

// topdown holds the transient state of one top-down splay: the two
// remainder trees plus a history of up to two just-visited ancestors of
// the working root. Descent proceeds at most two links per round; the
// round's steps are recorded with stepLeft/stepRight and flushed into the
// remainder trees with setAside. The zero value is not ready for use;
// call init first.
type topdown[K cmp.Ordered, V any] struct {
	left  frontier[K, V] // visited keys sorting before the target
	right frontier[K, V] // visited keys sorting after the target
	hist  [2]step[K, V]  // hist[0] upper level, hist[1] lower level
	depth int
}

func (td *topdown[K, V]) init() {
	td.left.side = towardRight
	td.right.side = towardLeft
}

// stepRight records root at the current history level and advances to its
// right child.
func (td *topdown[K, V]) stepRight(root *Node[K, V]) *Node[K, V] {
	td.hist[td.depth] = step[K, V]{root, towardRight}
	td.depth++
	return root.right
}

// stepLeft records root at the current history level and advances to its
// left child.
func (td *topdown[K, V]) stepLeft(root *Node[K, V]) *Node[K, V] {
	td.hist[td.depth] = step[K, V]{root, towardLeft}
	td.depth++
	return root.left
}

// undo removes the most recent step and hands its node back. Descent ran
// off the tree, so the last recorded ancestor becomes the working root
// again; any earlier step in the round stays in the history for the
// final setAside.
func (td *topdown[K, V]) undo() *Node[K, V] {
	td.depth--
	n := td.hist[td.depth].n
	td.hist[td.depth].n = nil
	return n
}

// setAside flushes the history into the remainder trees and clears it.
// Six disjoint cases by which history slots are populated:
//
//	zig \        one step right: the ancestor joins the left remainder
//	zig /        one step left: it joins the right remainder
//	zig-zig \\   two steps right: rotate the pair, then append it as one
//	             unit to the left remainder (this compression is what the
//	             amortized bound rests on)
//	zig-zig //   two steps left: mirror image, right remainder
//	zig-zag <    right then left: the two nodes straddle the target and
//	             split across the remainders independently
//	zig-zag >    left then right: mirror image
func (td *topdown[K, V]) setAside() {
	switch td.depth {
	case 1:
		if s := td.hist[0]; s.dir == towardRight {
			td.left.append(s.n)
		} else {
			td.right.append(s.n)
		}
	case 2:
		g, p := td.hist[0], td.hist[1]
		switch {
		case g.dir == towardRight && p.dir == towardRight:
			td.left.append(rotateLeft(g.n))
		case g.dir == towardLeft && p.dir == towardLeft:
			td.right.append(rotateRight(g.n))
		case g.dir == towardRight:
			td.left.append(g.n)
			td.right.append(p.n)
		default:
			td.right.append(g.n)
			td.left.append(p.n)
		}
	}
	td.depth = 0
}

// finish is the universal closing move of every top-down splay: the new
// root's current subtrees are grafted onto the remainder tips, and the
// remainder roots replace them as the new root's subtrees.
func (td *topdown[K, V]) finish(root *Node[K, V]) {
	td.left.graft(root.left)
	root.left = td.left.root

	td.right.graft(root.right)
	root.right = td.right.root
}
