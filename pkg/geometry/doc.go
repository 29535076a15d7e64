// Package geometry provides the primitive vector types shared across the
// puzzle pipeline: points, axis-aligned rectangles, 2×3 affine transforms,
// and the path command sequence used to describe piece contours.
//
// A [Path] is an ordered list of move/line/cubic-Bezier/close commands in a
// piece's local coordinate frame. Paths are plain data: they serialize to
// JSON and BSON, emit SVG path data via [Path.SVG], and can be replayed into
// any rasteriser or canvas by walking Commands.
package geometry
