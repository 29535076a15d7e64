package sink

import (
	"encoding/json"

	"github.com/puzzlecut/puzzlecut/pkg/geometry"
	"github.com/puzzlecut/puzzlecut/pkg/puzzle"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	svgPaths   bool
	transforms bool
}

// WithSVGPaths includes each piece's contour as SVG path data alongside the
// structured command list, for consumers that speak SVG directly.
func WithSVGPaths() JSONOption { return func(r *jsonRenderer) { r.svgPaths = true } }

// WithTransforms includes each piece's image sample transform.
func WithTransforms() JSONOption { return func(r *jsonRenderer) { r.transforms = true } }

type jsonOutput struct {
	ID          string      `json:"id"`
	Rows        int         `json:"rows"`
	Cols        int         `json:"cols"`
	ImageWidth  float64     `json:"image_width"`
	ImageHeight float64     `json:"image_height"`
	Seed        uint64      `json:"seed"`
	Pieces      []jsonPiece `json:"pieces"`
}

type jsonPiece struct {
	ID        string           `json:"id"`
	Row       int              `json:"row"`
	Col       int              `json:"col"`
	Origin    geometry.Point   `json:"origin"`
	Bounds    geometry.Rect    `json:"bounds"`
	Path      geometry.Path    `json:"path"`
	SVG       string           `json:"svg,omitempty"`
	Transform *geometry.Affine `json:"transform,omitempty"`
}

// RenderJSON exports piece outlines, bounds, and origins as a compact
// interchange document, enabling:
//
//   - Integration with external visualization tools
//   - Driving cutting hardware from precomputed contours
//   - Round-trip rendering (re-import and render identically)
func RenderJSON(p *puzzle.Puzzle, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	g, err := p.Grid()
	if err != nil {
		return nil, err
	}

	out := jsonOutput{
		ID:          p.ID,
		Rows:        p.Rows,
		Cols:        p.Cols,
		ImageWidth:  p.ImageWidth,
		ImageHeight: p.ImageHeight,
		Seed:        p.Seed,
		Pieces:      make([]jsonPiece, 0, len(p.Pieces)),
	}

	for i := range p.Pieces {
		pc := &p.Pieces[i]
		jp := jsonPiece{
			ID:     pc.ID(),
			Row:    pc.Row,
			Col:    pc.Col,
			Origin: g.CellOrigin(pc.Row, pc.Col),
			Bounds: pc.Bounds,
			Path:   pc.Path,
		}
		if r.svgPaths {
			jp.SVG = pc.Path.SVG()
		}
		if r.transforms {
			t := pc.Transform
			jp.Transform = &t
		}
		out.Pieces = append(out.Pieces, jp)
	}

	return json.MarshalIndent(out, "", "  ")
}
