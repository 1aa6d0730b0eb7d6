package ordered

import (
	"cmp"
	"flag"

	gbt "github.com/google/btree"
)

// Degree of tree
var btreeDegree = flag.Int("degree", 32, "B-Tree degree")

type btree[T cmp.Ordered] struct {
	tree *gbt.BTreeG[T]
}

func newBTree[T cmp.Ordered]() *btree[T] {
	return &btree[T]{
		tree: gbt.NewG[T](*btreeDegree, func(a, b T) bool { return a < b }),
	}
}

func (t *btree[T]) Insert(value T) {
	t.tree.ReplaceOrInsert(value)
}

func (t *btree[T]) InsertAll(values []T) {
	for _, v := range values {
		t.tree.ReplaceOrInsert(v)
	}
}

func (t *btree[T]) Contains(value T) bool {
	return t.tree.Has(value)
}

func (t *btree[T]) Clear() {
	t.tree.Clear(false)
}

func (t *btree[T]) Len() int {
	return t.tree.Len()
}

func (t *btree[T]) Drain() []T {
	out := make([]T, 0, t.tree.Len())
	t.tree.Ascend(func(item T) bool {
		out = append(out, item)
		return true
	})
	t.tree.Clear(false)
	return out
}
