package quads

import (
	"iter"

	"github.com/npillmayer/quads/geom"
)

// QueryLazy returns a lazy view on the items Query(q) would return.
//
// The matching leaves are determined eagerly, with the same traversal
// and overlap semantics as Query; their items are then handed out on
// demand, without being copied into one intermediate slice.
//
// The returned Matches is bound to the tree's current structure.
// Mutating the tree (Insert, Clear) while a Matches is in use is
// undefined behavior; no isolation is provided.
func (t *Tree[T]) QueryLazy(q *geom.Rect) *Matches[T] {
	m := &Matches[T]{}
	t.collectLeaves(t.root, q, &m.leaves)
	return m
}

// Matches enumerates the items of the leaves matched by a lazy query.
//
// Items are produced leaf by leaf, in the tree's pre-order leaf
// sequence, each leaf's bucket in insertion order — the same order
// Query returns. A Matches carries one cursor; Reset rewinds it to the
// first item of the first leaf without re-running the leaf search.
type Matches[T any] struct {
	leaves []*node[T]
	leaf   int
	slot   int
}

// Next returns the next item, or ok == false when the matches are
// exhausted.
func (m *Matches[T]) Next() (item T, ok bool) {
	if m == nil {
		var zero T
		return zero, false
	}
	for m.leaf < len(m.leaves) {
		items := m.leaves[m.leaf].items
		if m.slot < len(items) {
			item = items[m.slot]
			m.slot++
			return item, true
		}
		m.leaf++
		m.slot = 0
	}
	var zero T
	return zero, false
}

// Reset rewinds the cursor to the first item of the first matching leaf.
func (m *Matches[T]) Reset() {
	if m == nil {
		return
	}
	m.leaf, m.slot = 0, 0
}

// Len returns the total number of items the matches will produce.
func (m *Matches[T]) Len() int {
	if m == nil {
		return 0
	}
	total := 0
	for _, leaf := range m.leaves {
		total += len(leaf.items)
	}
	return total
}

// Seq returns an iterator over all matched items.
//
// The iterator is restartable: every range over it starts again at the
// first item of the first leaf. It is independent of the Next/Reset
// cursor.
func (m *Matches[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		if m == nil {
			return
		}
		for _, leaf := range m.leaves {
			for _, item := range leaf.items {
				if !yield(item) {
					return
				}
			}
		}
	}
}
