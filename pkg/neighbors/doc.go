// Package neighbors assigns the tab/indent relationship across every
// internal edge of a puzzle grid.
//
// # Invariants
//
// For every pair of adjacent cells, the two facing descriptors are
// complementary: one side is a tab, the other an indent. Cells on the grid's
// outer boundary carry no descriptor on their outward sides — absence, not a
// third polarity, marks a straight border edge.
//
// # Two-phase model
//
// Randomness lives entirely in [Assign]: one seeded boolean per internal
// edge, drawn in a fixed order. The resulting [Table] is immutable, and all
// downstream geometry is a pure function of it. Generating piece paths twice
// from the same table yields identical output.
package neighbors
