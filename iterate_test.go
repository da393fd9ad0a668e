package quads

import (
	"testing"

	"github.com/npillmayer/quads/geom"
)

func scatterBoxes(t *testing.T, tree *Tree[box]) int {
	t.Helper()
	n := 0
	for x := 5.0; x < 100; x += 15 {
		for y := 5.0; y < 100; y += 15 {
			if !tree.Insert(box{left: x, top: y, right: x + 6, bottom: y + 6}) {
				t.Fatalf("insert at (%g,%g) failed unexpectedly", x, y)
			}
			n++
		}
	}
	return n
}

func TestLazyEagerEquivalence(t *testing.T) {
	tree := newBoxTree(t, 2, 4)
	scatterBoxes(t, tree)
	q := geom.New(20, 20, 50, 50)
	//
	eager := tree.Query(q)
	matches := tree.QueryLazy(q)
	if matches.Len() != len(eager) {
		t.Fatalf("lazy Len() = %d, eager len = %d", matches.Len(), len(eager))
	}
	var lazy []box
	for {
		item, ok := matches.Next()
		if !ok {
			break
		}
		lazy = append(lazy, item)
	}
	if len(lazy) != len(eager) {
		t.Fatalf("drained %d items, eager returned %d", len(lazy), len(eager))
	}
	// Both walk the same leaves in the same order.
	for i := range eager {
		if lazy[i] != eager[i] {
			t.Fatalf("item %d differs: lazy %v, eager %v", i, lazy[i], eager[i])
		}
	}
}

func TestMatchesReset(t *testing.T) {
	tree := newBoxTree(t, 2, 4)
	scatterBoxes(t, tree)
	matches := tree.QueryLazy(geom.New(0, 0, 60, 60))
	first, ok := matches.Next()
	if !ok {
		t.Fatalf("expected at least one match")
	}
	for { // drain
		if _, ok := matches.Next(); !ok {
			break
		}
	}
	if _, ok := matches.Next(); ok {
		t.Fatalf("exhausted matches must stay exhausted")
	}
	matches.Reset()
	again, ok := matches.Next()
	if !ok || again != first {
		t.Fatalf("Reset should restart at the first item, got %v ok=%v", again, ok)
	}
}

func TestMatchesSeqRestarts(t *testing.T) {
	tree := newBoxTree(t, 2, 4)
	scatterBoxes(t, tree)
	matches := tree.QueryLazy(geom.New(0, 0, 100, 100))
	//
	count := 0
	for range matches.Seq() {
		count++
		if count == 3 {
			break // early exit must not affect later ranges
		}
	}
	total := 0
	for range matches.Seq() {
		total++
	}
	if total != matches.Len() {
		t.Fatalf("restarted Seq produced %d items, want %d", total, matches.Len())
	}
}

func TestMatchesEmpty(t *testing.T) {
	tree := newBoxTree(t, 2, 4)
	scatterBoxes(t, tree)
	matches := tree.QueryLazy(geom.New(-500, -500, 10, 10))
	if matches.Len() != 0 {
		t.Fatalf("disjoint query should match nothing, Len() = %d", matches.Len())
	}
	if _, ok := matches.Next(); ok {
		t.Fatalf("Next on empty matches must report ok=false")
	}
	for range matches.Seq() {
		t.Fatalf("Seq on empty matches must not yield")
	}
}
