package quads

import (
	"fmt"

	"github.com/npillmayer/quads/geom"
)

// Check validates structural tree invariants.
//
// This checker is intentionally strict and meant for tests: violations
// indicate a tree algorithm bug, not an input error.
func (t *Tree[T]) Check() error {
	if t == nil || t.root == nil {
		return fmt.Errorf("%w: tree has no root", ErrInvariant)
	}
	if t.root.depth != 0 {
		return fmt.Errorf("%w: root must have depth 0, has %d", ErrInvariant, t.root.depth)
	}
	return t.checkNode(t.root, 0)
}

func (t *Tree[T]) checkNode(n *node[T], depth int) error {
	if n == nil {
		return fmt.Errorf("%w: nil node at depth %d", ErrInvariant, depth)
	}
	if n.area == nil {
		return fmt.Errorf("%w: node without rectangle at depth %d", ErrInvariant, depth)
	}
	if n.depth != depth {
		return fmt.Errorf("%w: node records depth %d at depth %d", ErrInvariant, n.depth, depth)
	}
	if n.isLeaf() {
		if depth < t.cfg.MaxDepth && t.cfg.MaxNodeItems >= 0 && len(n.items) > t.cfg.MaxNodeItems {
			return fmt.Errorf("%w: leaf at depth %d holds %d items, capacity %d",
				ErrInvariant, depth, len(n.items), t.cfg.MaxNodeItems)
		}
		return nil
	}
	if len(n.items) != 0 {
		return fmt.Errorf("%w: internal node at depth %d holds %d items",
			ErrInvariant, depth, len(n.items))
	}
	if len(n.children) != 4 {
		return fmt.Errorf("%w: internal node at depth %d has %d children",
			ErrInvariant, depth, len(n.children))
	}
	if depth >= t.cfg.MaxDepth {
		return fmt.Errorf("%w: node at depth %d subdivided beyond max depth %d",
			ErrInvariant, depth, t.cfg.MaxDepth)
	}
	quadrants := n.area.Quadrants()
	for i, child := range n.children {
		if child == nil {
			return fmt.Errorf("%w: nil child %d at depth %d", ErrInvariant, i, depth)
		}
		if !sameGeometry(child.area, quadrants[i]) {
			return fmt.Errorf("%w: child %d of %v covers %v, want %v",
				ErrInvariant, i, n.area, child.area, quadrants[i])
		}
		if err := t.checkNode(child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// sameGeometry compares position and extent, ignoring overlap marks.
func sameGeometry(a, b *geom.Rect) bool {
	return a.X == b.X && a.Y == b.Y && a.W == b.W && a.H == b.H
}
