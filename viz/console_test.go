package viz

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/quads/geom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func sampleRegions() []*geom.Rect {
	domain := geom.New(0, 0, 100, 100)
	regions := []*geom.Rect{domain}
	for _, q := range domain.Quadrants() {
		regions = append(regions, q)
	}
	regions[1].Overlapped = true
	return regions
}

func TestSketcherWrite(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quads")
	defer teardown()
	color.NoColor = true // keep assertions free of escape sequences
	//
	sk := NewSketcher(nil)
	var sb strings.Builder
	if err := sk.Write(&sb, sampleRegions()); err != nil {
		t.Fatalf("unexpected Write error: %v", err)
	}
	out := sb.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 region lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "(0,0 100x100)") {
		t.Fatalf("domain line missing: %q", lines[0])
	}
	if !strings.Contains(lines[1], "*") {
		t.Fatalf("overlapped region should carry the * marker: %q", lines[1])
	}
	if !strings.Contains(lines[2], "-") {
		t.Fatalf("quiet region should carry the - marker: %q", lines[2])
	}
	// Quadrant lines are indented one level below the domain.
	if !strings.HasPrefix(lines[1], "  ") {
		t.Fatalf("quadrant line should be indented: %q", lines[1])
	}
}

func TestSketcherEmptyListing(t *testing.T) {
	sk := NewSketcher(nil)
	var sb strings.Builder
	if err := sk.Write(&sb, nil); err != nil {
		t.Fatalf("unexpected Write error: %v", err)
	}
	if sb.Len() != 0 {
		t.Fatalf("empty listing should produce no output, got %q", sb.String())
	}
}
