// Package piece turns a cell's neighbor view into renderable geometry: a
// closed vector contour, the local bounding rectangle that accommodates its
// outward tabs, and the affine transform that keeps the piece's texture
// sample registered with the source image.
//
// The stud profile is authored once in a canonical top-side frame and
// rotated into the other three sides, so the bump geometry lives in exactly
// one place. Everything here is deterministic: given the same dimensions,
// neighbor view, and stud configuration, the output is byte-identical.
package piece
