package viz

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/quads/geom"
	"golang.org/x/term"
)

// RegionState classifies regions for colorization.
type RegionState int

// Region states recognized by the default palette.
const (
	QuietRegion RegionState = iota
	OverlappedRegion
)

// Sketcher outputs a region listing to a console with a fixed width font.
//
// Regions are printed one per line, indented by their subdivision depth,
// with overlapped regions set apart by color. The listing is expected in
// the pre-order layout produced by Tree.Regions, i.e. with the domain
// rectangle first; depth is derived from each region's extent relative
// to the domain.
type Sketcher struct {
	colors  map[RegionState]*color.Color
	ctarget int // line length in fixed-width positions
}

// NewSketcher creates a sketcher.
//
// colors maps region states to display colors; it may be nil, selecting
// a default palette, and may cover just a subset of the states.
func NewSketcher(colors map[RegionState]*color.Color) *Sketcher {
	sk := &Sketcher{}
	if colors == nil {
		sk.colors = makeDefaultPalette()
	} else {
		sk.colors = colors
	}
	return sk
}

func makeDefaultPalette() map[RegionState]*color.Color {
	palette := map[RegionState]*color.Color{
		QuietRegion:      color.New(color.FgBlue),
		OverlappedRegion: color.New(color.FgRed),
	}
	return palette
}

// Print outputs a region listing to stdout.
//
// The line width is taken from the current terminal's properties if
// stdout is interactive.
func (sk *Sketcher) Print(regions []*geom.Rect) error {
	sk.ctarget = LineWidthFromTerminal()
	return sk.Write(os.Stdout, regions)
}

// Write outputs a region listing to w, one region per line.
func (sk *Sketcher) Write(w io.Writer, regions []*geom.Rect) error {
	if len(regions) == 0 {
		return nil
	}
	domain := regions[0]
	for _, r := range regions {
		line := sk.regionLine(domain, r)
		if sk.ctarget > 0 && len(line) > sk.ctarget {
			line = line[:sk.ctarget]
		}
		c := sk.colors[QuietRegion]
		if r.Overlapped {
			c = sk.colors[OverlappedRegion]
		}
		var err error
		if c != nil {
			_, err = c.Fprintln(w, line)
		} else {
			_, err = fmt.Fprintln(w, line)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// regionLine formats one region, indented by subdivision depth.
func (sk *Sketcher) regionLine(domain, r *geom.Rect) string {
	marker := "-"
	if r.Overlapped {
		marker = "*"
	}
	return fmt.Sprintf("%s%s %v", indent(domain, r), marker, r)
}

// indent derives the subdivision depth of r from its extent: every
// subdivision halves the width, so the ratio to the domain width gives
// the nesting level.
func indent(domain, r *geom.Rect) string {
	if r.W <= 0 || domain.W <= 0 || r.W >= domain.W {
		return ""
	}
	depth := int(math.Round(math.Log2(domain.W / r.W)))
	if depth < 0 {
		depth = 0
	}
	spaces := make([]byte, depth*2)
	for i := range spaces {
		spaces[i] = ' '
	}
	return string(spaces)
}

// LineWidthFromTerminal is a simple helper for sizing console output.
// It checks wether stdout is a terminal, and if so it reads the
// terminal's width and derives a usable line length.
func LineWidthFromTerminal() int {
	linewidth := 65
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err == nil {
			if w > 65 {
				linewidth = w - 10
			} else if w > 30 {
				linewidth = w - 5
			} else if w > 10 {
				linewidth = w
			} else {
				linewidth = 10
			}
		}
	}
	T().P("viz", "console").Infof("setting line length to %d en", linewidth)
	return linewidth
}
