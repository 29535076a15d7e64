// Package puzzle defines the serialization boundary of the generator.
//
// This package is the canonical wire format for Puzzlecut's data, used for
// JSON files, API responses, Mongo documents, and cache entries.
//
// # Core Types
//
//   - [Puzzle]: the complete generated document (grid, seed, config, pieces)
//   - [Piece]: one cell's neighbor mapping, closed contour, bounds, transform
//   - [Neighbor]: a per-side {neighbor_id, is_tab} record; border sides are
//     omitted from the mapping rather than marked false
//
// # Common operations
//
//	p := puzzle.Build(g, table, cfg, seed)     // Table → Puzzle (Phase 2)
//	puzzle.WriteFile(p, "cut.json")            // Puzzle → file
//	p, _ = puzzle.ReadFile("cut.json")         // file → Puzzle
//	data, _ := puzzle.Marshal(p)               // Puzzle → []byte
//
// # Concurrency
//
// All functions are safe for concurrent reads. [Build] parallelizes piece
// construction internally; the returned document is immutable by convention.
package puzzle
