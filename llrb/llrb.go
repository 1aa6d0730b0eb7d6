// Package llrb implements an in-memory ordered set backed by a
// left-leaning red-black tree.
//
// The tree keeps its height within 2*log2(n+1) links, so Insert and
// Contains run in logarithmic time regardless of insertion order. Values
// are ordered by their natural ascending order; inserting a value that is
// already present replaces it in place.
//
// A Tree is not safe for concurrent use. Rotations rewrite child links in
// place, so callers that share a tree across goroutines must serialize
// every operation, reads included.
package llrb

import "cmp"

type node[T cmp.Ordered] struct {
	value       T
	left, right *node[T]
	black       bool
}

// Tree is a left-leaning red-black tree holding one copy of each
// distinct value inserted into it. The zero value is an empty tree
// ready for use.
type Tree[T cmp.Ordered] struct {
	root *node[T]
	size int
}

// New returns an empty tree.
func New[T cmp.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

// Len returns the number of distinct values currently stored.
func (t *Tree[T]) Len() int {
	return t.size
}

// Insert adds value to the tree. If an equal value is already present it
// is replaced and the tree is otherwise unchanged.
func (t *Tree[T]) Insert(value T) {
	var fresh bool
	t.root, fresh = t.insert(t.root, value)
	t.root.black = true
	if fresh {
		t.size++
	}
}

func (t *Tree[T]) insert(h *node[T], value T) (*node[T], bool) {
	if h == nil {
		// new nodes start red, a black leaf would break the black balance
		return &node[T]{value: value}, true
	}

	var fresh bool
	switch cmp.Compare(value, h.value) {
	case -1:
		h.left, fresh = t.insert(h.left, value)
	case 1:
		h.right, fresh = t.insert(h.right, value)
	default:
		h.value = value
	}

	if isRed(h.right) && !isRed(h.left) {
		h = t.rotateLeft(h)
	}
	if isRed(h.left) && isRed(h.left.left) {
		h = t.rotateRight(h)
	}
	if isRed(h.left) && isRed(h.right) {
		flip(h)
	}
	return h, fresh
}

// InsertAll inserts every value in order, producing the same tree as the
// equivalent sequence of Insert calls.
func (t *Tree[T]) InsertAll(values []T) {
	for _, v := range values {
		t.Insert(v)
	}
}

// Contains reports whether value is stored in the tree.
func (t *Tree[T]) Contains(value T) bool {
	for h := t.root; h != nil; {
		switch cmp.Compare(value, h.value) {
		case -1:
			h = h.left
		case 1:
			h = h.right
		default:
			return true
		}
	}
	return false
}

// Clear discards every value. The tree is empty and reusable afterwards.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.size = 0
}

// Drain consumes the tree, returning its values in ascending order and
// leaving the tree empty.
func (t *Tree[T]) Drain() []T {
	out := make([]T, 0, t.size)
	out = inorder(t.root, out)
	t.root = nil
	t.size = 0
	return out
}

func inorder[T cmp.Ordered](h *node[T], out []T) []T {
	if h == nil {
		return out
	}
	out = inorder(h.left, out)
	out = append(out, h.value)
	return inorder(h.right, out)
}

// Delete is declared for surface parity but deletion is not implemented;
// calling it panics unconditionally.
func (t *Tree[T]) Delete(value T) bool {
	panic("llrb: delete is not implemented")
}

func (t *Tree[T]) rotateLeft(h *node[T]) *node[T] {
	x := h.right
	if x.black {
		panic("rotating a black link")
	}
	h.right = x.left
	x.left = h
	x.black = h.black
	h.black = false
	return x
}

func (t *Tree[T]) rotateRight(h *node[T]) *node[T] {
	x := h.left
	if x.black {
		panic("rotating a black link")
	}
	h.left = x.right
	x.right = h
	x.black = h.black
	h.black = false
	return x
}

func isRed[T cmp.Ordered](h *node[T]) bool {
	if h == nil {
		return false
	}
	return !h.black
}

func flip[T cmp.Ordered](h *node[T]) {
	h.black = !h.black
	h.left.black = !h.left.black
	h.right.black = !h.right.black
}
