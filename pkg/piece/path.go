package piece

import (
	"github.com/puzzlecut/puzzlecut/pkg/geometry"
	"github.com/puzzlecut/puzzlecut/pkg/neighbors"
	"github.com/puzzlecut/puzzlecut/pkg/stud"
)

// BuildPath composes the four per-side edge profiles of a w×h piece into one
// continuous closed contour.
//
// Sides are emitted in fixed order top→right→bottom→left as a single
// subpath: each segment ends at the starting corner of the next, and the
// contour is closed explicitly, so the outline renders as one fill region
// regardless of how many sides carry studs. The result is a pure function of
// its inputs — no randomness, byte-identical on repeated calls.
func BuildPath(w, h float64, view neighbors.View, cfg stud.Config) geometry.Path {
	var p geometry.Path
	p.MoveTo(geometry.Point{X: 0, Y: 0})
	for _, s := range neighbors.Sides {
		appendEdge(&p, s, w, h, view.On(s), cfg)
	}
	p.Close()
	return p
}
