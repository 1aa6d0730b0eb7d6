// Package ordered exposes the repository's tree implementations behind a
// single container interface, so callers and benchmarks can swap the
// left-leaning red-black tree for a standard B-tree.
package ordered

import (
	"cmp"

	"github.com/qwtsc/yarb-tree/llrb"
)

// Container is an in-memory ordered set of values.
type Container[T cmp.Ordered] interface {
	Insert(value T)
	InsertAll(values []T)
	Contains(value T) bool
	Clear()
	Len() int
	Drain() []T
}

// NewLLRB returns the left-leaning red-black tree implementation.
func NewLLRB[T cmp.Ordered]() Container[T] {
	return llrb.New[T]()
}

// NewBTree returns a B-tree backed implementation.
func NewBTree[T cmp.Ordered]() Container[T] {
	return newBTree[T]()
}
