package quads

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"github.com/npillmayer/quads/geom"
)

// Tree is a region quadtree over a fixed rectangular domain.
//
// Items overlapping the domain are accepted by Insert and routed to
// quadrant leaves; leaves subdivide adaptively up to the configured
// maximum depth. Region queries report items at leaf granularity.
//
// A Tree must be created with New or NewAt. It is not safe for
// concurrent use.
type Tree[T any] struct {
	cfg  Config[T]
	root *node[T]
}

// New creates an empty tree covering width × height at the origin.
func New[T any](width, height float64, cfg Config[T]) (*Tree[T], error) {
	return NewAt(0, 0, width, height, cfg)
}

// NewAt creates an empty tree covering the domain rectangle
// (x, y, width, height).
//
// Configuration values are taken literally, see Config. The only error
// condition is a missing Bounds capability; degenerate domain extents
// are accepted and yield a tree that rejects every insertion.
func NewAt[T any](x, y, width, height float64, cfg Config[T]) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[T]{
		cfg:  cfg,
		root: newNode[T](geom.New(x, y, width, height), 0),
	}, nil
}

// Config returns a copy of the tree configuration.
func (t *Tree[T]) Config() Config[T] {
	return t.cfg
}

// Domain returns the domain rectangle of the tree.
func (t *Tree[T]) Domain() *geom.Rect {
	return t.root.area
}

// Insert adds an item to the tree.
//
// It returns false only if the item's bounds do not overlap the tree's
// domain rectangle. Once an item overlaps the domain, insertion always
// succeeds; over-capacity leaves subdivide as a side effect. An item
// straddling a quadrant seam is stored once, in the first quadrant that
// accepts it (top-left, top-right, bottom-left, bottom-right order).
func (t *Tree[T]) Insert(item T) bool {
	return t.insertNode(t.root, item)
}

// InsertAll inserts items one by one.
//
// There is no atomicity: each item is routed independently, exactly as
// by repeated Insert calls.
func (t *Tree[T]) InsertAll(items ...T) {
	for _, item := range items {
		t.Insert(item)
	}
}

// insertNode routes item into the subtree under n.
//
// Each node re-validates the item against its own rectangle, even though
// parents only hand down items that overlapped them.
func (t *Tree[T]) insertNode(n *node[T], item T) bool {
	if !t.itemOverlaps(n, item) {
		return false
	}
	if !n.isLeaf() {
		for _, child := range n.children {
			if t.insertNode(child, item) {
				return true
			}
		}
		// The item overlaps this node, so it must overlap at least one
		// quadrant; falling through here cannot happen for consistent
		// bounds. The item is still counted as accepted.
		return true
	}
	n.items = append(n.items, item)
	if len(n.items) > t.cfg.MaxNodeItems {
		t.split(n)
	}
	return true
}

// itemOverlaps tests item bounds against the node rectangle, using the
// routing polarity of geom.Rect.OverlapsEdges.
func (t *Tree[T]) itemOverlaps(n *node[T], item T) bool {
	b := t.cfg.Bounds
	return n.area.OverlapsEdges(b.Left(item), b.Top(item), b.Right(item), b.Bottom(item))
}

// split turns leaf n into an internal node with four quadrant children
// and redistributes its items through the normal insertion path.
//
// At the maximum depth split is a no-op: the leaf silently stays over
// capacity. Once split, a node never holds items again.
func (t *Tree[T]) split(n *node[T]) {
	if n.depth >= t.cfg.MaxDepth {
		return
	}
	assert(n.isLeaf(), "split called on an internal node")
	quadrants := n.area.Quadrants()
	n.children = make([]*node[T], 4)
	for i, q := range quadrants {
		n.children[i] = newNode[T](q, n.depth+1)
	}
	held := n.items
	n.items = nil
	for _, item := range held {
		t.insertNode(n, item)
	}
	tracer().Debugf("quadrant %v split at depth %d, %d items redistributed",
		n.area, n.depth, len(held))
}

// Count returns the number of items in the tree.
//
// The count is recomputed by a full subtree walk on every call.
func (t *Tree[T]) Count() int {
	return t.countItems(t.root)
}

func (t *Tree[T]) countItems(n *node[T]) int {
	if n.isLeaf() {
		return len(n.items)
	}
	total := 0
	for _, child := range n.children {
		total += t.countItems(child)
	}
	return total
}

// Clear resets the tree to a fresh empty leaf covering the same domain.
//
// All descendants are released, all items dropped, and every overlap
// mark on the remaining domain rectangle is reset. Clear is idempotent.
func (t *Tree[T]) Clear() {
	t.clearNode(t.root)
	tracer().Debugf("tree cleared, domain %v", t.root.area)
}

func (t *Tree[T]) clearNode(n *node[T]) {
	for _, child := range n.children {
		t.clearNode(child)
	}
	n.children = nil
	n.items = nil
	n.area.Overlapped = false
}

// Regions returns the rectangles of all nodes in pre-order: each node
// before its children, children in top-left, top-right, bottom-left,
// bottom-right order. The root rectangle comes first.
//
// The returned rectangles are the live node rectangles, not copies, so
// external visualization can watch their Overlapped marks change
// between queries.
func (t *Tree[T]) Regions() []*geom.Rect {
	var out []*geom.Rect
	t.collectRegions(t.root, &out)
	return out
}

func (t *Tree[T]) collectRegions(n *node[T], out *[]*geom.Rect) {
	*out = append(*out, n.area)
	for _, child := range n.children {
		t.collectRegions(child, out)
	}
}
