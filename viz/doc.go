/*
Package viz renders quadrant-tree region listings for debugging and
visualization.

The quads tree exposes its node rectangles through Regions, including
the overlap marks left behind by queries. This package consumes such
listings: a console sketcher with a color palette, an HTML/SVG snapshot
writer, and a broadcast monitor that fans region snapshots out to
observers.

None of the renderers touch a tree directly; callers hand them region
listings, which keeps the tree's single-threaded contract intact.

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package viz

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
