package splay

/*

# Splay tree primitives (top-down splaying, multimap semantics)

This package provides an ordered dictionary backed by a splay tree: a
self-adjusting binary search tree with no balance metadata at all. Every
basic operation finishes by restructuring the tree so that the accessed
(or last probed) node becomes the root. That restructuring is called a
splay, and it is what gives the container its amortized O(log n) bound:
long search paths are roughly halved as a side effect of walking them.
See Sleator and Tarjan, "Self-Adjusting Binary Search Trees", for the
analysis.

## Top-down splaying

There are two ways to splay: bottom-up (search first, then rotate the
found node upward) and top-down (restructure during the same single
downward pass). This implementation is top-down, which needs no parent
pointers and no second pass. As the working root descends toward the
target key, nodes stripped off the search path accumulate in two
"remainder trees":

  - the left remainder holds visited nodes whose keys sort before the
    target; it grows at its rightmost frontier in nondecreasing key order
  - the right remainder holds visited nodes whose keys sort after the
    target; it grows at its leftmost frontier in nonincreasing key order

Descent proceeds at most two links per round. The one or two just-visited
ancestors are held in a small direction-tagged history and then flushed
into the remainder trees; when both steps of a round went the same way
(the zig-zig case) the pair is rotated before it is flushed, which is the
compression that the amortized bound depends on. When descent halts, the
new root's subtrees are grafted onto the remainder frontiers and the
remainder roots become the new root's subtrees. See topdown.go.

## Core invariants

 1. in-order traversal yields keys in nondecreasing order
 2. Len() equals the number of reachable nodes, and Len() == 0 exactly
    when the tree has no root
 3. every node is owned by exactly one parent slot or the root slot

Duplicate keys are permitted; the tree behaves as an ordered multimap.
There is no defined order among records with equal keys: Find, Update and
Erase hit whichever equal record the splay reaches first.

## Reads write

Find, Min and Max splay, so they mutate link structure even though they
are conceptually read-only. A tree instance is therefore not safe for
concurrent use without external serialization of all operations,
including searches. The only operations that never restructure are the
traversal entry points Root, Walk and Dump, and HealthCheck.

Inserting from a sorted sequence is fine: unlike a naive BST, the splay
tree handles a monotone insertion order in linear total time.

*/
