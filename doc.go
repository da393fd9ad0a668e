/*
Package quads implements a region quadtree over a fixed rectangular domain.

Quadtrees

A quadtree organizes a dynamic set of boundable items in 2-D space by
recursively subdividing its domain into four equal quadrants. Region
queries (“which items overlap this rectangle?”) then touch per-leaf
item buckets instead of scanning the full item set.

Nodes start out as leaves. A leaf that is handed more items than its
configured capacity splits into four children — top-left, top-right,
bottom-left, bottom-right — and redistributes its items; from then on it
routes insertions instead of holding items itself. Subdivision stops at a
configurable maximum depth, where leaves accept any number of items.
Subdivision is irreversible: there is no deletion and no merging of
quadrants, only a tree-wide Clear.

Items are opaque to the tree. Callers supply a Bounds capability that
extracts an item's edge coordinates; the tree consults it on every
insertion and on bounds-derived queries. The coordinate plane has Y
growing downward: Top is the smaller coordinate value of a rectangle.

The tree is strictly single-threaded. No operation blocks, and no
internal synchronization exists; callers that share a tree between
goroutines must serialize access themselves.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package quads

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer is the tracer accessor for generic methods, where a type
// parameter named T shadows the package-level T.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// QuadError is an error type for the quads module.
type QuadError string

func (e QuadError) Error() string {
	return string(e)
}

// ErrNoBounds signals that a tree was configured without a Bounds
// capability; the tree cannot locate items without one.
const ErrNoBounds = QuadError("no bounds capability configured")

// ErrInvariant is the base error flagged by Check for structural
// violations of the quadrant tree.
const ErrInvariant = QuadError("tree invariant violated")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
