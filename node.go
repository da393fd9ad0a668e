package quads

import "github.com/npillmayer/quads/geom"

// node is one quadrant of the tree.
//
// A node is either a leaf (children == nil, items allowed) or an internal
// node (exactly four children in top-left, top-right, bottom-left,
// bottom-right order, items always empty). The invariant is enforced by
// split and checked by Tree.Check.
type node[T any] struct {
	area     *geom.Rect
	items    []T
	children []*node[T]
	depth    int
}

func newNode[T any](area *geom.Rect, depth int) *node[T] {
	return &node[T]{area: area, depth: depth}
}

func (n *node[T]) isLeaf() bool {
	return n.children == nil
}
