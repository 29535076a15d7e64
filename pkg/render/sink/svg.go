package sink

import (
	"bytes"
	"fmt"

	"github.com/puzzlecut/puzzlecut/pkg/geometry"
	"github.com/puzzlecut/puzzlecut/pkg/grid"
	"github.com/puzzlecut/puzzlecut/pkg/puzzle"
)

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	stroke      string
	strokeWidth float64
	fill        string
	labels      bool
	exploded    float64
}

// WithStroke sets the contour stroke color.
func WithStroke(color string) SVGOption { return func(r *svgRenderer) { r.stroke = color } }

// WithStrokeWidth sets the contour stroke width in image units.
func WithStrokeWidth(w float64) SVGOption { return func(r *svgRenderer) { r.strokeWidth = w } }

// WithFill sets a flat fill color for every piece. Default is no fill.
func WithFill(color string) SVGOption { return func(r *svgRenderer) { r.fill = color } }

// WithLabels draws each piece's ID at its cell center.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// WithExploded separates pieces by the given gap so individual contours are
// easier to inspect. A zero gap renders the assembled puzzle.
func WithExploded(gap float64) SVGOption { return func(r *svgRenderer) { r.exploded = gap } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{stroke: "#1a1a2e", strokeWidth: 1.5, fill: "none"}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG draws every piece contour translated to its cell origin so the
// output shows the assembled puzzle at image scale.
func RenderSVG(p *puzzle.Puzzle, opts ...SVGOption) ([]byte, error) {
	r := newSVGRenderer(opts...)
	g, err := p.Grid()
	if err != nil {
		return nil, err
	}

	totalW := p.ImageWidth + r.exploded*float64(p.Cols-1)
	totalH := p.ImageHeight + r.exploded*float64(p.Rows-1)

	// Tab depth can overhang the image frame on border-adjacent studs, so pad
	// the viewBox by the largest bounds overhang.
	pad := 0.0
	for i := range p.Pieces {
		b := p.Pieces[i].Bounds
		pad = max(pad, -b.MinX, -b.MinY, b.MaxX-g.PieceWidth(), b.MaxY-g.PieceHeight())
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s">`+"\n",
		coord(-pad), coord(-pad), coord(totalW+2*pad), coord(totalH+2*pad))

	for i := range p.Pieces {
		pc := &p.Pieces[i]
		origin := g.CellOrigin(pc.Row, pc.Col)
		dx := origin.X + r.exploded*float64(pc.Col)
		dy := origin.Y + r.exploded*float64(pc.Row)
		path := pc.Path.Translate(dx, dy)
		fmt.Fprintf(&buf, `  <path id=%q d=%q fill=%q stroke=%q stroke-width=%q/>`+"\n",
			"piece-"+puzzle.PieceID(pc.Row, pc.Col), path.SVG(), r.fill, r.stroke, coord(r.strokeWidth))
	}

	if r.labels {
		renderLabels(&buf, p, g, r.exploded)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

func renderLabels(buf *bytes.Buffer, p *puzzle.Puzzle, g grid.Grid, gap float64) {
	size := min(g.PieceWidth(), g.PieceHeight()) / 5
	for i := range p.Pieces {
		pc := &p.Pieces[i]
		origin := g.CellOrigin(pc.Row, pc.Col)
		cx := origin.X + gap*float64(pc.Col) + g.PieceWidth()/2
		cy := origin.Y + gap*float64(pc.Row) + g.PieceHeight()/2
		fmt.Fprintf(buf, `  <text x=%q y=%q font-size=%q text-anchor="middle" dominant-baseline="middle" font-family="monospace">%s</text>`+"\n",
			coord(cx), coord(cy), coord(size), puzzle.PieceID(pc.Row, pc.Col))
	}
}

func coord(v float64) string {
	return geometry.FormatCoord(v)
}
