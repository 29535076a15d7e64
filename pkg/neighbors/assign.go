package neighbors

import (
	"github.com/puzzlecut/puzzlecut/pkg/errors"
)

// Descriptor records the relationship between one side of a piece and its
// neighbor across that side. IsTab is true when this piece's side bulges
// outward; the neighbor's facing descriptor always carries the negation.
type Descriptor struct {
	Row   int
	Col   int
	IsTab bool
}

// View is a piece's four-sided neighbor perspective. A nil entry means the
// side lies on the grid border and is rendered straight.
type View struct {
	sides [4]*Descriptor
}

// On returns the descriptor for side s, or nil on a border side.
func (v View) On(s Side) *Descriptor { return v.sides[s] }

// Tab reports whether side s exists and is a tab.
func (v View) Tab(s Side) bool {
	d := v.sides[s]
	return d != nil && d.IsTab
}

// Table is the complete, immutable neighbor assignment for a grid.
// It is produced once per generation request and is the durable identity of
// the puzzle's solution: piece paths and bounds are recomputable from it at
// any time without re-randomizing.
type Table struct {
	rows, cols int
	views      []View
}

// Rows returns the grid row count.
func (t *Table) Rows() int { return t.rows }

// Cols returns the grid column count.
func (t *Table) Cols() int { return t.cols }

// At returns the four-sided view of cell (row, col).
func (t *Table) At(row, col int) View {
	return t.views[row*t.cols+col]
}

// Assign flips one coin per internal edge of a rows×cols grid and derives
// every cell's four-sided neighbor view from the results.
//
// The assignment is edge-indexed: each shared boundary is decided exactly
// once, then both owners read their (complementary) half of the decision.
// This keeps the outcome independent of traversal order and makes the
// derivation pass safe to parallelize. Border sides are left nil.
//
// Source booleans are consumed in row-major cell order, right edge before
// bottom edge, so a seeded source reproduces the same table every time.
func Assign(rows, cols int, src Source) (*Table, error) {
	if err := errors.ValidateGridDimensions(rows, cols); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, errors.New(errors.ErrCodeInvalidRandomSource, "random source is required")
	}

	// Pass 1: one decision per internal edge. rightTab[r*cols+c] is the
	// polarity of (r,c)'s right side; bottomTab likewise for its bottom.
	rightTab := make([]bool, rows*cols)
	bottomTab := make([]bool, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				rightTab[r*cols+c] = src.Bool()
			}
			if r+1 < rows {
				bottomTab[r*cols+c] = src.Bool()
			}
		}
	}

	// Pass 2: derive per-cell views by lookup. Order-free.
	t := &Table{rows: rows, cols: cols, views: make([]View, rows*cols)}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := &t.views[r*cols+c]
			if c+1 < cols {
				v.sides[Right] = &Descriptor{Row: r, Col: c + 1, IsTab: rightTab[r*cols+c]}
			}
			if c > 0 {
				v.sides[Left] = &Descriptor{Row: r, Col: c - 1, IsTab: !rightTab[r*cols+c-1]}
			}
			if r+1 < rows {
				v.sides[Bottom] = &Descriptor{Row: r + 1, Col: c, IsTab: bottomTab[r*cols+c]}
			}
			if r > 0 {
				v.sides[Top] = &Descriptor{Row: r - 1, Col: c, IsTab: !bottomTab[(r-1)*cols+c]}
			}
		}
	}

	if err := t.Verify(); err != nil {
		return nil, err
	}
	return t, nil
}

// FromPieces reconstructs a table from previously serialized neighbor data.
// The lookup function returns the polarity of cell (row, col)'s side s and
// whether that side has a neighbor at all. The reconstructed table is
// verified, so corrupted or hand-edited documents are rejected rather than
// rendered inconsistently.
func FromPieces(rows, cols int, lookup func(row, col int, s Side) (isTab, ok bool)) (*Table, error) {
	if err := errors.ValidateGridDimensions(rows, cols); err != nil {
		return nil, err
	}

	t := &Table{rows: rows, cols: cols, views: make([]View, rows*cols)}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := &t.views[r*cols+c]
			for _, s := range Sides {
				dr, dc := s.Offset()
				nr, nc := r+dr, c+dc
				if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
					continue
				}
				isTab, ok := lookup(r, c, s)
				if !ok {
					return nil, errors.New(errors.ErrCodeInconsistentNeighbor,
						"cell (%d,%d) missing %s descriptor for internal edge", r, c, s)
				}
				v.sides[s] = &Descriptor{Row: nr, Col: nc, IsTab: isTab}
			}
		}
	}

	if err := t.Verify(); err != nil {
		return nil, err
	}
	return t, nil
}

// Verify checks the structural invariants of the table: every descriptor
// points at an in-grid cell, border sides carry no descriptor, and every
// shared edge is complementary between its two owners. A violation is an
// internal-consistency fault; callers must abort generation rather than
// emit a partially valid grid.
func (t *Table) Verify() error {
	for r := 0; r < t.rows; r++ {
		for c := 0; c < t.cols; c++ {
			v := t.At(r, c)
			for _, s := range Sides {
				d := v.On(s)
				dr, dc := s.Offset()
				nr, nc := r+dr, c+dc
				onBorder := nr < 0 || nr >= t.rows || nc < 0 || nc >= t.cols
				if d == nil {
					if !onBorder {
						return errors.New(errors.ErrCodeInconsistentNeighbor,
							"cell (%d,%d) missing %s descriptor for internal edge", r, c, s)
					}
					continue
				}
				if onBorder {
					return errors.New(errors.ErrCodeInconsistentNeighbor,
						"cell (%d,%d) has %s descriptor pointing outside the grid", r, c, s)
				}
				if d.Row != nr || d.Col != nc {
					return errors.New(errors.ErrCodeInconsistentNeighbor,
						"cell (%d,%d) %s descriptor names (%d,%d), want (%d,%d)", r, c, s, d.Row, d.Col, nr, nc)
				}
				facing := t.At(nr, nc).On(s.Opposite())
				if facing == nil || facing.IsTab == d.IsTab {
					return errors.New(errors.ErrCodeInconsistentNeighbor,
						"edge between (%d,%d) and (%d,%d) is not complementary", r, c, nr, nc)
				}
			}
		}
	}
	return nil
}
