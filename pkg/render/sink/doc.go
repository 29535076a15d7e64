// Package sink provides output format renderers for generated puzzles.
//
// # Overview
//
// A "sink" transforms a [puzzle.Puzzle] into a final output format.
// This package provides renderers for:
//
//   - SVG: Scalable vector graphics of the assembled cut pattern
//   - PNG: Raster output, optionally textured with a source image
//   - JSON: Layout data export for external tools
//
// # SVG Output
//
// [RenderSVG] draws every piece contour translated to its cell origin, so the
// output shows the assembled puzzle at image scale:
//
//	svg := sink.RenderSVG(p,
//	    sink.WithStroke("#1a1a2e"),
//	    sink.WithLabels(),
//	)
//
// # PNG Output
//
// [RenderPNG] rasterizes the same assembled view. With [WithTexture], each
// piece clips the source image through its contour using the piece's sample
// transform, producing the classic "cut photo" look. Without a texture,
// pieces are flat-filled.
//
// # JSON Output
//
// [RenderJSON] exports piece outlines, bounds, and sample transforms as a
// compact interchange document for external renderers and laser cutters.
//
// [puzzle.Puzzle]: github.com/puzzlecut/puzzlecut/pkg/puzzle.Puzzle
package sink
