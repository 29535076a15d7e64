package piece

import (
	"testing"

	"github.com/puzzlecut/puzzlecut/pkg/geometry"
	"github.com/puzzlecut/puzzlecut/pkg/grid"
	"github.com/puzzlecut/puzzlecut/pkg/neighbors"
	"github.com/puzzlecut/puzzlecut/pkg/stud"
)

// allTabs answers true for every coin flip, so in the resulting table each
// cell's right and bottom sides are tabs and its left and top sides indents.
type allTabs struct{}

func (allTabs) Bool() bool { return true }

func mustAssign(t *testing.T, rows, cols int, src neighbors.Source) *neighbors.Table {
	t.Helper()
	tbl, err := neighbors.Assign(rows, cols, src)
	if err != nil {
		t.Fatal(err)
	}
	return tbl
}

func countOps(p geometry.Path, op geometry.Op) int {
	n := 0
	for _, cmd := range p.Commands {
		if cmd.Op == op {
			n++
		}
	}
	return n
}

func TestBuildPathBorderOnly(t *testing.T) {
	tbl := mustAssign(t, 1, 1, neighbors.NewSource(1))
	p := BuildPath(120, 80, tbl.At(0, 0), stud.Default())

	// A lone piece is a plain rectangle: move, four lines, close.
	if got := len(p.Commands); got != 6 {
		t.Fatalf("command count = %d, want 6", got)
	}
	if n := countOps(p, geometry.OpCubic); n != 0 {
		t.Errorf("border-only piece has %d cubics", n)
	}
	if !p.IsClosed(1e-6) {
		t.Error("path is not closed")
	}

	want := "M 0 0 L 120 0 L 120 80 L 0 80 L 0 0 Z"
	if got := p.SVG(); got != want {
		t.Errorf("SVG() = %q, want %q", got, want)
	}
}

func TestBuildPathStudCommandCounts(t *testing.T) {
	tbl := mustAssign(t, 2, 2, allTabs{})
	cfg := stud.Default()

	// (0,0) has two internal sides (right, bottom) and two borders.
	p := BuildPath(90, 90, tbl.At(0, 0), cfg)
	if n := countOps(p, geometry.OpCubic); n != 4 {
		t.Errorf("cubic count = %d, want 4 (two per stud side)", n)
	}
	// Border sides contribute one line each, stud sides two.
	if n := countOps(p, geometry.OpLine); n != 6 {
		t.Errorf("line count = %d, want 6", n)
	}
	if !p.IsClosed(1e-6) {
		t.Error("path is not closed")
	}
}

func TestBuildPathTabApex(t *testing.T) {
	tbl := mustAssign(t, 2, 2, allTabs{})
	cfg := stud.Default()

	// (0,0)'s right side is a tab on a 90x90 piece: depth 15, so the bump
	// apex sits outside the nominal cell at x = 105, halfway down the edge.
	p := BuildPath(90, 90, tbl.At(0, 0), cfg)
	if !containsEndpoint(p, geometry.Point{X: 105, Y: 45}) {
		t.Error("right tab apex (105, 45) not found in path")
	}

	// (0,1)'s left side faces the same edge as an indent: the apex recedes
	// into the cell to x = 15.
	p = BuildPath(90, 90, tbl.At(0, 1), cfg)
	if !containsEndpoint(p, geometry.Point{X: 15, Y: 45}) {
		t.Error("left indent apex (15, 45) not found in path")
	}
}

func containsEndpoint(p geometry.Path, want geometry.Point) bool {
	const tol = 1e-9
	for _, cmd := range p.Commands {
		if len(cmd.Points) == 0 {
			continue
		}
		end := cmd.Points[len(cmd.Points)-1]
		if abs(end.X-want.X) <= tol && abs(end.Y-want.Y) <= tol {
			return true
		}
	}
	return false
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func TestBuildPathDeterministic(t *testing.T) {
	tbl := mustAssign(t, 3, 3, neighbors.NewSource(21))
	cfg := stud.Default()

	a := BuildPath(100, 75, tbl.At(1, 1), cfg)
	b := BuildPath(100, 75, tbl.At(1, 1), cfg)
	if a.SVG() != b.SVG() {
		t.Error("repeated builds produced different paths")
	}
}

func TestBuildPathCornerJog(t *testing.T) {
	tbl := mustAssign(t, 1, 1, neighbors.NewSource(1))
	cfg := stud.Default()
	cfg.CornerJog = 0.5

	// Jog length = 0.5 × depth = 7.5; each border edge gains one extra line.
	p := BuildPath(90, 90, tbl.At(0, 0), cfg)
	if n := countOps(p, geometry.OpLine); n != 8 {
		t.Errorf("line count = %d, want 8 (two per jogged border)", n)
	}
	if !containsEndpoint(p, geometry.Point{X: 7.5, Y: 0}) {
		t.Error("top edge jog point (7.5, 0) not found")
	}
}

func TestBounds(t *testing.T) {
	tbl := mustAssign(t, 2, 2, allTabs{})
	cfg := stud.Default() // depth = 90/6 = 15 on a 90x90 piece

	tests := []struct {
		name     string
		row, col int
		want     geometry.Rect
	}{
		{"right and bottom tabs", 0, 0, geometry.Rect{MinX: 0, MinY: 0, MaxX: 105, MaxY: 105}},
		{"bottom tab only", 0, 1, geometry.Rect{MinX: 0, MinY: 0, MaxX: 90, MaxY: 105}},
		{"right tab only", 1, 0, geometry.Rect{MinX: 0, MinY: 0, MaxX: 105, MaxY: 90}},
		{"indents only", 1, 1, geometry.Rect{MinX: 0, MinY: 0, MaxX: 90, MaxY: 90}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bounds(90, 90, tbl.At(tt.row, tt.col), cfg)
			if got != tt.want {
				t.Errorf("Bounds() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBoundsContainPath(t *testing.T) {
	tbl := mustAssign(t, 3, 4, neighbors.NewSource(77))
	cfg := stud.Default()

	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			view := tbl.At(r, c)
			p := BuildPath(100, 60, view, cfg)
			b := Bounds(100, 60, view, cfg)
			for _, cmd := range p.Commands {
				for _, pt := range cmd.Points {
					if !b.Contains(pt) {
						t.Errorf("piece (%d,%d): point %v escapes bounds %+v", r, c, pt, b)
					}
				}
			}
		}
	}
}

func TestSampleTransform(t *testing.T) {
	g, err := grid.New(2, 2, 180, 180)
	if err != nil {
		t.Fatal(err)
	}
	tbl := mustAssign(t, 2, 2, allTabs{})
	cfg := stud.Default()

	// Tab-free piece (1,1): the sample window is exactly its cell.
	b := Bounds(90, 90, tbl.At(1, 1), cfg)
	a := SampleTransform(g, 1, 1, b)
	if got := a.Apply(geometry.Point{X: 0, Y: 0}); got != (geometry.Point{X: 90, Y: 90}) {
		t.Errorf("origin maps to %v, want (90, 90)", got)
	}
	if a.XX != 0.5 || a.YY != 0.5 {
		t.Errorf("scale = (%g, %g), want (0.5, 0.5)", a.XX, a.YY)
	}

	// Piece (0,0) with right+bottom tabs: window widens to the bounds.
	b = Bounds(90, 90, tbl.At(0, 0), cfg)
	a = SampleTransform(g, 0, 0, b)
	if got := a.Apply(geometry.Point{X: 0, Y: 0}); got != (geometry.Point{X: 0, Y: 0}) {
		t.Errorf("origin maps to %v, want (0, 0)", got)
	}
	wantScale := 105.0 / 180.0
	if a.XX != wantScale || a.YY != wantScale {
		t.Errorf("scale = (%g, %g), want (%g, %g)", a.XX, a.YY, wantScale, wantScale)
	}
}
