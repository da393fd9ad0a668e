package quads

import (
	"github.com/npillmayer/quads/geom"
)

// Query returns all items held by leaves whose rectangle overlaps q.
//
// Matching is per leaf, not per item: a leaf that overlaps q contributes
// its complete item bucket, so returned items may extend outside q.
// Internal nodes are descended unconditionally; the overlap test runs at
// the leaves only, marking each overlapping leaf rectangle as a side
// effect.
func (t *Tree[T]) Query(q *geom.Rect) []T {
	var out []T
	t.queryNode(t.root, q, &out)
	return out
}

func (t *Tree[T]) queryNode(n *node[T], q *geom.Rect, out *[]T) {
	if !n.isLeaf() {
		for _, child := range n.children {
			t.queryNode(child, q, out)
		}
		return
	}
	if n.area.Overlaps(q) {
		*out = append(*out, n.items...)
	}
}

// QueryItem queries with a rectangle derived from the item's own bounds,
// i.e. it finds the neighborhood of an item: everything sharing a leaf
// whose quadrant the item's extent overlaps.
func (t *Tree[T]) QueryItem(item T) []T {
	b := t.cfg.Bounds
	left, top := b.Left(item), b.Top(item)
	right, bottom := b.Right(item), b.Bottom(item)
	return t.Query(geom.New(left, top, right-left, bottom-top))
}

// collectLeaves gathers the leaves Query(q) would visit and match,
// without copying their items. This is the eager first phase of lazy
// enumeration.
func (t *Tree[T]) collectLeaves(n *node[T], q *geom.Rect, out *[]*node[T]) {
	if !n.isLeaf() {
		for _, child := range n.children {
			t.collectLeaves(child, q, out)
		}
		return
	}
	if n.area.Overlaps(q) {
		*out = append(*out, n)
	}
}
