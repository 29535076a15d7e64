package pipeline

import (
	"context"
	"fmt"

	"github.com/puzzlecut/puzzlecut/pkg/neighbors"
	"github.com/puzzlecut/puzzlecut/pkg/puzzle"
	"github.com/puzzlecut/puzzlecut/pkg/render/adjacency"
	"github.com/puzzlecut/puzzlecut/pkg/render/sink"
)

// RenderPuzzle renders a puzzle to every requested format.
// Returns artifacts keyed by format name.
func RenderPuzzle(ctx context.Context, p *puzzle.Puzzle, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := renderFormat(ctx, p, format, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(ctx context.Context, p *puzzle.Puzzle, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return sink.RenderSVG(p, svgOptions(opts)...)
	case FormatPNG:
		return sink.RenderPNG(p, pngOptions(opts)...)
	case FormatJSON:
		return sink.RenderJSON(p, sink.WithSVGPaths(), sink.WithTransforms())
	case FormatDOT:
		table, err := tableFromPuzzle(p)
		if err != nil {
			return nil, err
		}
		return []byte(adjacency.ToDOT(table, adjacency.Options{Detailed: opts.Detailed})), nil
	default:
		return nil, ValidateFormat(format)
	}
}

func svgOptions(opts Options) []sink.SVGOption {
	var so []sink.SVGOption
	if opts.Stroke != "" {
		so = append(so, sink.WithStroke(opts.Stroke))
	}
	if opts.Fill {
		so = append(so, sink.WithFill("#e8e8f0"))
	}
	if opts.Labels {
		so = append(so, sink.WithLabels())
	}
	if opts.Exploded > 0 {
		so = append(so, sink.WithExploded(opts.Exploded))
	}
	return so
}

func pngOptions(opts Options) []sink.PNGOption {
	po := []sink.PNGOption{sink.WithScale(opts.Scale)}
	if opts.Stroke != "" {
		po = append(po, sink.WithPNGStroke(opts.Stroke))
	}
	if opts.Texture != nil {
		po = append(po, sink.WithTexture(opts.Texture))
	}
	return po
}

// tableFromPuzzle rebuilds the neighbor table recorded in a puzzle document,
// so serialized puzzles can be rendered as adjacency diagrams without
// re-randomizing.
func tableFromPuzzle(p *puzzle.Puzzle) (*neighbors.Table, error) {
	return neighbors.FromPieces(p.Rows, p.Cols, func(row, col int, s neighbors.Side) (bool, bool) {
		pc := p.PieceAt(row, col)
		if pc == nil {
			return false, false
		}
		n, ok := pc.Neighbors[s.String()]
		return n.IsTab, ok
	})
}
