package splay

import "cmp"

// searchAndSplay descends from root toward k, splaying as it goes, and
// returns the new root plus whether k was found. If k is present the new
// root holds it; if not, the new root is the last node probed before the
// search ran off the tree (its in-order neighbor along the search path).
// An empty tree stays empty. The function never allocates or frees nodes;
// it only rearranges links.
func searchAndSplay[K cmp.Ordered, V any](root *Node[K, V], k K) (*Node[K, V], bool) {
	if root == nil {
		return nil, false
	}

	var td topdown[K, V]
	td.init()
	found := false

	// Each pass of the loop descends at most two links, recording the
	// visited ancestors, then flushes them to the remainder trees. Four
	// ways out: k at the working root (no step taken this round), k one
	// level down (one step taken), or descent runs off the tree after
	// one or two comparisons, in which case the last step is rewound so
	// the final probed node becomes the root. Key comparisons never test
	// equality directly; "neither less" is the found condition, which is
	// what lets duplicate keys behave consistently.
loop:
	for {
		switch {
		case root.key < k:
			root = td.stepRight(root)
		case k < root.key:
			root = td.stepLeft(root)
		default:
			found = true
			break loop
		}
		if root == nil {
			root = td.undo()
			break
		}

		switch {
		case root.key < k:
			root = td.stepRight(root)
		case k < root.key:
			root = td.stepLeft(root)
		default:
			found = true
			break loop
		}
		if root == nil {
			root = td.undo()
			break
		}

		td.setAside()
	}

	// A round that ended mid-history leaves one final zig to flush.
	if td.depth > 0 {
		td.setAside()
	}

	td.finish(root)
	return root, found
}

// insertAndSplay splays a freshly allocated leaf n into the tree rooted
// at root and returns n as the new root. Unlike search there is no found
// short-circuit: every existing node is partitioned into the remainder
// trees, keyed against n, and the remainders become n's subtrees.
func insertAndSplay[K cmp.Ordered, V any](root, n *Node[K, V]) *Node[K, V] {
	if root == nil {
		return n
	}

	var td topdown[K, V]
	td.init()

	for root != nil {
		// An existing key equal to n's goes leftward here, which lands
		// it in the right remainder: equal keys end up adjacent with no
		// further ordering promise among them.
		if root.key < n.key {
			root = td.stepRight(root)
		} else {
			root = td.stepLeft(root)
		}
		if root != nil {
			if root.key < n.key {
				root = td.stepRight(root)
			} else {
				root = td.stepLeft(root)
			}
		}
		td.setAside()
	}

	n.left = td.left.root
	n.right = td.right.root
	return n
}

// splayLeftmost splays the minimum node of a non-empty tree to the root.
// No key comparisons happen: descent follows left links only, so every
// visited node lands in the right remainder tree and the left remainder
// stays empty.
func splayLeftmost[K cmp.Ordered, V any](root *Node[K, V]) *Node[K, V] {
	var td topdown[K, V]
	td.init()

	for root.left != nil {
		root = td.stepLeft(root)
		if root.left != nil {
			root = td.stepLeft(root)
		}
		td.setAside()
	}

	// The terminal node has no left child, so it is the minimum. Its
	// right subtree joins the remainder at the tip, and the remainder
	// becomes its right subtree.
	td.right.graft(root.right)
	root.right = td.right.root
	return root
}

// splayRightmost is the mirror image of splayLeftmost: it splays the
// maximum node of a non-empty tree to the root via right links only.
func splayRightmost[K cmp.Ordered, V any](root *Node[K, V]) *Node[K, V] {
	var td topdown[K, V]
	td.init()

	for root.right != nil {
		root = td.stepRight(root)
		if root.right != nil {
			root = td.stepRight(root)
		}
		td.setAside()
	}

	td.left.graft(root.left)
	root.left = td.left.root
	return root
}
