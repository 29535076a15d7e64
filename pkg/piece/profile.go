package piece

import (
	"github.com/puzzlecut/puzzlecut/pkg/geometry"
	"github.com/puzzlecut/puzzlecut/pkg/neighbors"
	"github.com/puzzlecut/puzzlecut/pkg/stud"
)

// remapFunc maps a point authored in the canonical top frame into a target
// side's frame.
type remapFunc func(x, y float64) geometry.Point

// remapFor returns the coordinate remap for one side of a w×h piece.
// The stud profile is authored once in the canonical "top" frame (x runs
// along the edge, negative y bulges outward) and rotated into place:
//
//	top:    identity            (x, y)
//	right:  90° clockwise       (w−y, x)
//	bottom: 180°                (w−x, h−y)
//	left:   270° clockwise      (y, h−x)
func remapFor(side neighbors.Side, w, h float64) remapFunc {
	switch side {
	case neighbors.Top:
		return func(x, y float64) geometry.Point { return geometry.Point{X: x, Y: y} }
	case neighbors.Right:
		return func(x, y float64) geometry.Point { return geometry.Point{X: w - y, Y: x} }
	case neighbors.Bottom:
		return func(x, y float64) geometry.Point { return geometry.Point{X: w - x, Y: h - y} }
	default:
		return func(x, y float64) geometry.Point { return geometry.Point{X: y, Y: h - x} }
	}
}

// acrossFor returns the edge length for a side: width for top/bottom,
// height for left/right.
func acrossFor(side neighbors.Side, w, h float64) float64 {
	if side == neighbors.Top || side == neighbors.Bottom {
		return w
	}
	return h
}

// appendEdge emits the path segment for one side of a piece into p.
// The pen is assumed to sit at the side's starting corner; the segment ends
// exactly at the next corner, so consecutive sides chain without move
// commands.
//
// desc is nil for a border side, which yields a straight line (optionally
// split by a corner jog of length CornerJog×depth). Otherwise the segment is
// a straight run to the stud neck, two cubic Beziers forming the rounded
// bump, and a straight run to the far corner. Tab polarity enters the
// geometry only through the sign of dy: tabs bulge outward (negative
// canonical y), indents recede inward.
func appendEdge(p *geometry.Path, side neighbors.Side, w, h float64, desc *neighbors.Descriptor, cfg stud.Config) {
	remap := remapFor(side, w, h)
	across := acrossFor(side, w, h)
	depth := cfg.Depth(w, h)

	if desc == nil {
		if jog := cfg.CornerJog * depth; jog > 0 && jog < across {
			p.LineTo(remap(jog, 0))
		}
		p.LineTo(remap(across, 0))
		return
	}

	dy := depth
	if desc.IsTab {
		dy = -depth
	}

	mid := across / 2
	half := cfg.StudWidth(w, h) / 2
	crown := half * (1 + cfg.Blend) // shoulders overhang the neck slightly

	p.LineTo(remap(mid-half, 0))
	p.CubicTo(
		remap(mid-half, cfg.Rise1*dy),
		remap(mid-crown, cfg.Rise2*dy),
		remap(mid, dy),
	)
	p.CubicTo(
		remap(mid+crown, cfg.Rise2*dy),
		remap(mid+half, cfg.Rise1*dy),
		remap(mid+half, 0),
	)
	p.LineTo(remap(across, 0))
}
