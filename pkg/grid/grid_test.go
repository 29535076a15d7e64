package grid

import (
	"testing"

	"github.com/puzzlecut/puzzlecut/pkg/errors"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name     string
		rows     int
		cols     int
		w, h     float64
		wantCode errors.Code
	}{
		{"valid", 4, 6, 1200, 900, ""},
		{"single cell", 1, 1, 100, 100, ""},
		{"zero rows", 0, 6, 1200, 900, errors.ErrCodeInvalidGrid},
		{"negative cols", 4, -1, 1200, 900, errors.ErrCodeInvalidGrid},
		{"zero width", 4, 6, 0, 900, errors.ErrCodeInvalidImage},
		{"negative height", 4, 6, 1200, -3, errors.ErrCodeInvalidImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.rows, tt.cols, tt.w, tt.h)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("New() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantCode) {
				t.Fatalf("New() error = %v, want code %s", err, tt.wantCode)
			}
		})
	}
}

func TestPieceDimensions(t *testing.T) {
	g, err := New(3, 4, 1200, 900)
	if err != nil {
		t.Fatal(err)
	}

	if got := g.PieceWidth(); got != 300 {
		t.Errorf("PieceWidth() = %g, want 300", got)
	}
	if got := g.PieceHeight(); got != 300 {
		t.Errorf("PieceHeight() = %g, want 300", got)
	}
	if got := g.PieceCount(); got != 12 {
		t.Errorf("PieceCount() = %d, want 12", got)
	}
}

func TestCellOrigin(t *testing.T) {
	g, err := New(3, 4, 1200, 900)
	if err != nil {
		t.Fatal(err)
	}

	origin := g.CellOrigin(2, 3)
	if origin.X != 900 || origin.Y != 600 {
		t.Errorf("CellOrigin(2,3) = %v, want (900, 600)", origin)
	}

	origin = g.CellOrigin(0, 0)
	if origin.X != 0 || origin.Y != 0 {
		t.Errorf("CellOrigin(0,0) = %v, want (0, 0)", origin)
	}
}

func TestInBounds(t *testing.T) {
	g, err := New(3, 4, 1200, 900)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		row, col int
		want     bool
	}{
		{0, 0, true},
		{2, 3, true},
		{-1, 0, false},
		{0, -1, false},
		{3, 0, false},
		{0, 4, false},
	}
	for _, tt := range tests {
		if got := g.InBounds(tt.row, tt.col); got != tt.want {
			t.Errorf("InBounds(%d,%d) = %v, want %v", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestInternalEdgeCount(t *testing.T) {
	tests := []struct {
		rows, cols int
		want       int
	}{
		{1, 1, 0},
		{1, 2, 1},
		{2, 2, 4},
		{3, 4, 17}, // 3*3 vertical + 2*4 horizontal
		{6, 8, 82},
	}
	for _, tt := range tests {
		g, err := New(tt.rows, tt.cols, 100, 100)
		if err != nil {
			t.Fatal(err)
		}
		if got := g.InternalEdgeCount(); got != tt.want {
			t.Errorf("InternalEdgeCount() for %dx%d = %d, want %d", tt.rows, tt.cols, got, tt.want)
		}
	}
}
