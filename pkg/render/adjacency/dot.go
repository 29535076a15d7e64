// Package adjacency renders the puzzle's neighbor relationships as a
// node-link diagram for debugging and documentation.
//
// Each piece becomes a node positioned on the grid, and each internal edge
// becomes a link labeled with its polarity as seen from the lower-indexed
// piece. A consistent assignment produces exactly one link per internal edge.
package adjacency

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/puzzlecut/puzzlecut/pkg/neighbors"
	"github.com/puzzlecut/puzzlecut/pkg/puzzle"
)

// Options configures adjacency diagram rendering.
type Options struct {
	// Detailed labels each link with the polarity seen from its source node.
	// When false, links are unlabeled.
	Detailed bool
}

// ToDOT converts a neighbor table to Graphviz DOT format. The resulting DOT
// string can be rendered using [RenderSVG] or [RenderPNG].
//
// Nodes are pinned to their grid positions so the diagram mirrors the puzzle
// layout. Links carry "tab" or "indent" labels describing the stud on the
// source side of the shared edge.
func ToDOT(table *neighbors.Table, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.1,0.05\"];\n")
	buf.WriteString("\n")

	for r := 0; r < table.Rows(); r++ {
		for c := 0; c < table.Cols(); c++ {
			id := puzzle.PieceID(r, c)
			// neato y grows upward, grid rows grow downward
			fmt.Fprintf(&buf, "  %q [pos=\"%d,%d!\"];\n", id, c*2, -r*2)
		}
	}

	buf.WriteString("\n")
	for r := 0; r < table.Rows(); r++ {
		for c := 0; c < table.Cols(); c++ {
			view := table.At(r, c)
			// Emit each internal edge once, from its top/left piece.
			for _, s := range []neighbors.Side{neighbors.Right, neighbors.Bottom} {
				d := view.On(s)
				if d == nil {
					continue
				}
				from := puzzle.PieceID(r, c)
				to := puzzle.PieceID(d.Row, d.Col)
				if opts.Detailed {
					fmt.Fprintf(&buf, "  %q -- %q [label=%q, fontsize=10];\n", from, to, polarityLabel(view.Tab(s)))
				} else {
					fmt.Fprintf(&buf, "  %q -- %q;\n", from, to)
				}
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func polarityLabel(isTab bool) string {
	if isTab {
		return "tab"
	}
	return "indent"
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
