package puzzle

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/puzzlecut/puzzlecut/pkg/geometry"
	"github.com/puzzlecut/puzzlecut/pkg/grid"
	"github.com/puzzlecut/puzzlecut/pkg/neighbors"
	"github.com/puzzlecut/puzzlecut/pkg/piece"
	"github.com/puzzlecut/puzzlecut/pkg/stud"
)

// Puzzle is the canonical serialization format for a generated puzzle.
// Used for files, API responses, storage, and caching.
//
// The format is designed for round-trip fidelity: the neighbor records are
// the puzzle's durable identity, and paths/bounds/transforms can always be
// recomputed from them without re-randomizing.
type Puzzle struct {
	ID          string      `json:"id" bson:"_id"`
	Rows        int         `json:"rows" bson:"rows"`
	Cols        int         `json:"cols" bson:"cols"`
	ImageWidth  float64     `json:"image_width" bson:"image_width"`
	ImageHeight float64     `json:"image_height" bson:"image_height"`
	Seed        uint64      `json:"seed" bson:"seed"`
	Config      stud.Config `json:"config" bson:"config"`
	GeneratedAt time.Time   `json:"generated_at" bson:"generated_at"`
	Pieces      []Piece     `json:"pieces" bson:"pieces"`
}

// Piece is one cell's serialized record: identity, neighbor relationships,
// and the derived geometry handed to rendering collaborators.
type Piece struct {
	Row       int                 `json:"row" bson:"row"`
	Col       int                 `json:"col" bson:"col"`
	Neighbors map[string]Neighbor `json:"neighbors,omitempty" bson:"neighbors,omitempty"`
	Path      geometry.Path       `json:"path" bson:"path"`
	Bounds    geometry.Rect       `json:"bounds" bson:"bounds"`
	Transform geometry.Affine     `json:"transform" bson:"transform"`
}

// Neighbor is one entry of a piece's neighbor mapping, keyed by side name.
// Absence of a side key signals a grid border.
type Neighbor struct {
	ID    string `json:"neighbor_id" bson:"neighbor_id"`
	IsTab bool   `json:"is_tab" bson:"is_tab"`
}

// PieceID returns the canonical identifier for cell (row, col), e.g. "r2c5".
func PieceID(row, col int) string {
	return fmt.Sprintf("r%dc%d", row, col)
}

// ID returns the piece's canonical identifier.
func (p *Piece) ID() string { return PieceID(p.Row, p.Col) }

// Build derives the complete piece list for a grid from its immutable
// neighbor table. This is Phase 2 of generation: the table must be fully
// populated before Build is called, after which every piece depends only on
// its own descriptors, so pieces are built concurrently.
//
// Build is deterministic. Identical inputs yield identical output; only
// [neighbors.Assign] consumes randomness.
func Build(g grid.Grid, table *neighbors.Table, cfg stud.Config, seed uint64) *Puzzle {
	pw, ph := g.PieceWidth(), g.PieceHeight()
	pieces := make([]Piece, g.PieceCount())

	var wg sync.WaitGroup
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			wg.Add(1)
			go func(r, c int) {
				defer wg.Done()
				view := table.At(r, c)
				b := piece.Bounds(pw, ph, view, cfg)
				pieces[r*g.Cols+c] = Piece{
					Row:       r,
					Col:       c,
					Neighbors: neighborMap(view),
					Path:      piece.BuildPath(pw, ph, view, cfg),
					Bounds:    b,
					Transform: piece.SampleTransform(g, r, c, b),
				}
			}(r, c)
		}
	}
	wg.Wait()

	return &Puzzle{
		ID:          uuid.NewString(),
		Rows:        g.Rows,
		Cols:        g.Cols,
		ImageWidth:  g.ImageWidth,
		ImageHeight: g.ImageHeight,
		Seed:        seed,
		Config:      cfg,
		GeneratedAt: time.Now().UTC(),
		Pieces:      pieces,
	}
}

// Grid reconstructs the validated grid the puzzle was generated from.
func (p *Puzzle) Grid() (grid.Grid, error) {
	return grid.New(p.Rows, p.Cols, p.ImageWidth, p.ImageHeight)
}

// PieceAt returns the piece at (row, col), or nil if out of range.
func (p *Puzzle) PieceAt(row, col int) *Piece {
	if row < 0 || row >= p.Rows || col < 0 || col >= p.Cols {
		return nil
	}
	return &p.Pieces[row*p.Cols+col]
}

// neighborMap converts a neighbor view into its serialized mapping.
// Border sides are omitted entirely rather than marked false.
func neighborMap(view neighbors.View) map[string]Neighbor {
	m := make(map[string]Neighbor, 4)
	for _, s := range neighbors.Sides {
		if d := view.On(s); d != nil {
			m[s.String()] = Neighbor{ID: PieceID(d.Row, d.Col), IsTab: d.IsTab}
		}
	}
	if len(m) == 0 {
		return nil
	}
	return m
}
