package puzzle

import (
	"strings"
	"testing"

	"github.com/puzzlecut/puzzlecut/pkg/errors"
	"github.com/puzzlecut/puzzlecut/pkg/grid"
	"github.com/puzzlecut/puzzlecut/pkg/neighbors"
	"github.com/puzzlecut/puzzlecut/pkg/stud"
)

func buildFixture(t *testing.T, rows, cols int, seed uint64) *Puzzle {
	t.Helper()
	g, err := grid.New(rows, cols, 1200, 900)
	if err != nil {
		t.Fatal(err)
	}
	tbl, err := neighbors.Assign(rows, cols, neighbors.NewSource(seed))
	if err != nil {
		t.Fatal(err)
	}
	return Build(g, tbl, stud.Default(), seed)
}

func TestPieceID(t *testing.T) {
	tests := []struct {
		row, col int
		want     string
	}{
		{0, 0, "r0c0"},
		{2, 5, "r2c5"},
		{10, 11, "r10c11"},
	}
	for _, tt := range tests {
		if got := PieceID(tt.row, tt.col); got != tt.want {
			t.Errorf("PieceID(%d,%d) = %q, want %q", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestBuild(t *testing.T) {
	p := buildFixture(t, 3, 4, 42)

	if len(p.Pieces) != 12 {
		t.Fatalf("piece count = %d, want 12", len(p.Pieces))
	}
	if p.ID == "" {
		t.Error("puzzle ID is empty")
	}
	if p.GeneratedAt.IsZero() {
		t.Error("GeneratedAt is zero")
	}

	for i, pc := range p.Pieces {
		wantRow, wantCol := i/4, i%4
		if pc.Row != wantRow || pc.Col != wantCol {
			t.Errorf("piece %d at (%d,%d), want (%d,%d)", i, pc.Row, pc.Col, wantRow, wantCol)
		}
		if !pc.Path.IsClosed(1e-6) {
			t.Errorf("piece %s path is not closed", pc.ID())
		}
	}
}

func TestBuildDeterministicGeometry(t *testing.T) {
	a := buildFixture(t, 3, 4, 42)
	b := buildFixture(t, 3, 4, 42)

	for i := range a.Pieces {
		if a.Pieces[i].Path.SVG() != b.Pieces[i].Path.SVG() {
			t.Errorf("piece %s path differs between identical builds", a.Pieces[i].ID())
		}
		if a.Pieces[i].Bounds != b.Pieces[i].Bounds {
			t.Errorf("piece %s bounds differ between identical builds", a.Pieces[i].ID())
		}
		if a.Pieces[i].Transform != b.Pieces[i].Transform {
			t.Errorf("piece %s transform differs between identical builds", a.Pieces[i].ID())
		}
	}
}

func TestNeighborMapOmitsBorders(t *testing.T) {
	p := buildFixture(t, 3, 3, 7)

	corner := p.PieceAt(0, 0)
	if _, ok := corner.Neighbors["top"]; ok {
		t.Error("corner piece has top neighbor entry")
	}
	if _, ok := corner.Neighbors["left"]; ok {
		t.Error("corner piece has left neighbor entry")
	}
	if n, ok := corner.Neighbors["right"]; !ok || n.ID != "r0c1" {
		t.Errorf("corner right neighbor = %+v, ok=%v", n, ok)
	}

	center := p.PieceAt(1, 1)
	if len(center.Neighbors) != 4 {
		t.Errorf("center piece has %d neighbor entries, want 4", len(center.Neighbors))
	}
}

func TestNeighborMapNilForLonePiece(t *testing.T) {
	g, err := grid.New(1, 1, 100, 100)
	if err != nil {
		t.Fatal(err)
	}
	tbl, err := neighbors.Assign(1, 1, neighbors.NewSource(1))
	if err != nil {
		t.Fatal(err)
	}
	p := Build(g, tbl, stud.Default(), 1)
	if p.Pieces[0].Neighbors != nil {
		t.Errorf("lone piece neighbors = %v, want nil", p.Pieces[0].Neighbors)
	}
}

func TestNeighborComplementarity(t *testing.T) {
	p := buildFixture(t, 4, 5, 99)

	for i := range p.Pieces {
		pc := &p.Pieces[i]
		for name, n := range pc.Neighbors {
			s, ok := neighbors.ParseSide(name)
			if !ok {
				t.Fatalf("piece %s has unknown side %q", pc.ID(), name)
			}
			dr, dc := s.Offset()
			other := p.PieceAt(pc.Row+dr, pc.Col+dc)
			if other == nil {
				t.Fatalf("piece %s %s neighbor out of range", pc.ID(), name)
			}
			facing, ok := other.Neighbors[s.Opposite().String()]
			if !ok {
				t.Fatalf("piece %s missing facing entry for %s", other.ID(), pc.ID())
			}
			if facing.IsTab == n.IsTab {
				t.Errorf("edge %s/%s is not complementary", pc.ID(), other.ID())
			}
		}
	}
}

func TestPieceAt(t *testing.T) {
	p := buildFixture(t, 2, 3, 5)

	if pc := p.PieceAt(1, 2); pc == nil || pc.ID() != "r1c2" {
		t.Errorf("PieceAt(1,2) = %v", pc)
	}
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		if pc := p.PieceAt(rc[0], rc[1]); pc != nil {
			t.Errorf("PieceAt(%d,%d) = %v, want nil", rc[0], rc[1], pc)
		}
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	orig := buildFixture(t, 2, 3, 11)

	data, err := Marshal(orig)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if got.ID != orig.ID || got.Rows != orig.Rows || got.Cols != orig.Cols || got.Seed != orig.Seed {
		t.Errorf("header mismatch: got %s %dx%d seed %d", got.ID, got.Rows, got.Cols, got.Seed)
	}
	if len(got.Pieces) != len(orig.Pieces) {
		t.Fatalf("piece count = %d, want %d", len(got.Pieces), len(orig.Pieces))
	}
	for i := range orig.Pieces {
		if got.Pieces[i].Path.SVG() != orig.Pieces[i].Path.SVG() {
			t.Errorf("piece %s path changed in round trip", orig.Pieces[i].ID())
		}
		if got.Pieces[i].Bounds != orig.Pieces[i].Bounds {
			t.Errorf("piece %s bounds changed in round trip", orig.Pieces[i].ID())
		}
	}
}

func TestReadValidation(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode errors.Code
	}{
		{"malformed json", "{not json", errors.ErrCodeInvalidPuzzle},
		{"zero rows", `{"rows":0,"cols":3,"image_width":100,"image_height":100,"pieces":[]}`, errors.ErrCodeInvalidGrid},
		{"zero image", `{"rows":2,"cols":3,"image_width":0,"image_height":100,"pieces":[]}`, errors.ErrCodeInvalidImage},
		{"piece count mismatch", `{"rows":2,"cols":3,"image_width":100,"image_height":100,"pieces":[]}`, errors.ErrCodeInvalidPuzzle},
		{"misplaced piece", `{"rows":1,"cols":2,"image_width":100,"image_height":100,"pieces":[{"row":0,"col":1},{"row":0,"col":0}]}`, errors.ErrCodeInvalidPuzzle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input))
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("Read() error = %v, want code %s", err, tt.wantCode)
			}
		})
	}
}

func TestReadRejectsReorderedPieces(t *testing.T) {
	p := buildFixture(t, 2, 2, 17)
	p.Pieces[1], p.Pieces[2] = p.Pieces[2], p.Pieces[1]

	data, err := Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	// A reordered document would make PieceAt return the wrong piece, so
	// decoding must reject it.
	if _, err := Unmarshal(data); !errors.Is(err, errors.ErrCodeInvalidPuzzle) {
		t.Errorf("Unmarshal() error = %v, want code %s", err, errors.ErrCodeInvalidPuzzle)
	}
}

func TestGridReconstruction(t *testing.T) {
	p := buildFixture(t, 3, 4, 42)
	g, err := p.Grid()
	if err != nil {
		t.Fatalf("Grid() error = %v", err)
	}
	if g.Rows != 3 || g.Cols != 4 || g.ImageWidth != 1200 || g.ImageHeight != 900 {
		t.Errorf("Grid() = %+v", g)
	}
}
