// Package grid models the rectangular partition of a source image into an
// R×C grid of cells. It is the leaf of the generation pipeline: everything
// downstream (neighbor assignment, piece geometry, bounds) derives its
// dimensions from a validated [Grid].
package grid
