// Package splaydot renders a splay tree in the DOT graph-description
// language understood by Graphviz. It is a pure consumer of the tree's
// traversal surface: rendering never splays.
//
// Only-children get an invisible phantom sibling so that dot draws the
// single edge slanted the way a binary search tree is conventionally
// presented, instead of pointing straight down.
package splaydot

import (
	"cmp"
	"fmt"
	"io"

	"github.com/predoehl/splaytree/splay"
)

const nodeAttrs = `[shape=box;color=black;fontcolor=black;style=filled;fillcolor=white]`

// Write renders t to w as a digraph. Node identifiers are assigned in
// preorder, so records with duplicate keys render as distinct nodes.
func Write[K cmp.Ordered, V any](w io.Writer, t *splay.Tree[K, V]) error {
	if _, err := fmt.Fprint(w, "digraph {\n  bgcolor=lightblue;\n"); err != nil {
		return err
	}
	p := &printer[K, V]{w: w, ids: make(map[*splay.Node[K, V]]int)}
	if err := p.emit(t.Root(), nil); err != nil {
		return err
	}
	_, err := fmt.Fprint(w, "}\n")
	return err
}

type printer[K cmp.Ordered, V any] struct {
	w        io.Writer
	ids      map[*splay.Node[K, V]]int
	next     int
	phantoms int
}

func (p *printer[K, V]) id(n *splay.Node[K, V]) int {
	id, ok := p.ids[n]
	if !ok {
		id = p.next
		p.next++
		p.ids[n] = id
	}
	return id
}

func (p *printer[K, V]) emit(n, parent *splay.Node[K, V]) error {
	if n == nil {
		return nil
	}

	id := p.id(n)
	if parent == nil {
		// The root has no in-edge.
		if err := p.decl(id, n); err != nil {
			return err
		}
	} else {
		pid := p.ids[parent]
		if parent.Left() == nil {
			if err := p.phantom(pid); err != nil {
				return err
			}
		}
		if err := p.decl(id, n); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(p.w, "  n%d -> n%d;\n", pid, id); err != nil {
			return err
		}
		if parent.Right() == nil {
			if err := p.phantom(pid); err != nil {
				return err
			}
		}
	}

	if err := p.emit(n.Left(), n); err != nil {
		return err
	}
	return p.emit(n.Right(), n)
}

func (p *printer[K, V]) decl(id int, n *splay.Node[K, V]) error {
	_, err := fmt.Fprintf(p.w, "  n%d [label=\"%v\"] %s;\n", id, n.Key(), nodeAttrs)
	return err
}

func (p *printer[K, V]) phantom(parentID int) error {
	p.phantoms++
	_, err := fmt.Fprintf(p.w,
		"  ph%d [style=invis];\n  n%d -> ph%d [style=invis];\n",
		p.phantoms, parentID, p.phantoms)
	return err
}
