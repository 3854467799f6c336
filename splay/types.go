package splay

import (
	"cmp"
	"errors"
)

// Result reports the outcome of a keyed or extremal search. Key and Value
// are copies of the record found; both are zero values when Found is false.
type Result[K cmp.Ordered, V any] struct {
	Found bool
	Key   K
	Value V
}

var (
	ErrDestinationNotEmpty = errors.New("splay: destination tree not empty")
	ErrBadOrder            = errors.New("splay: bst ordering violated")
	ErrBadSize             = errors.New("splay: size counter inconsistent")
)
