package piece

import (
	"github.com/puzzlecut/puzzlecut/pkg/geometry"
	"github.com/puzzlecut/puzzlecut/pkg/grid"
	"github.com/puzzlecut/puzzlecut/pkg/neighbors"
	"github.com/puzzlecut/puzzlecut/pkg/stud"
)

// Bounds computes the minimal local rectangle containing a w×h piece's full
// rendered outline. The origin sits at the piece's nominal top-left corner;
// each side that carries an outward tab extends the rectangle by the stud
// depth in that direction. Indents never grow the bounds.
func Bounds(w, h float64, view neighbors.View, cfg stud.Config) geometry.Rect {
	depth := cfg.Depth(w, h)
	r := geometry.Rect{MaxX: w, MaxY: h}
	if view.Tab(neighbors.Left) {
		r.MinX = -depth
	}
	if view.Tab(neighbors.Right) {
		r.MaxX = w + depth
	}
	if view.Tab(neighbors.Top) {
		r.MinY = -depth
	}
	if view.Tab(neighbors.Bottom) {
		r.MaxY = h + depth
	}
	return r
}

// SampleTransform derives the 2×3 affine image-sampling transform for the
// piece at (row, col) with local bounds b.
//
// Scale maps the full source image frame onto the piece's drawable
// rectangle; translation positions the sample window at the piece's nominal
// grid origin shifted by the bounds minimum, so the visible texture stays
// registered with the composite image even where the rendered shape extends
// beyond its nominal cell.
func SampleTransform(g grid.Grid, row, col int, b geometry.Rect) geometry.Affine {
	origin := g.CellOrigin(row, col)
	return geometry.ScaleTranslate(
		b.Width()/g.ImageWidth,
		b.Height()/g.ImageHeight,
		origin.X+b.MinX,
		origin.Y+b.MinY,
	)
}
