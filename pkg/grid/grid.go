package grid

import (
	"github.com/puzzlecut/puzzlecut/pkg/errors"
	"github.com/puzzlecut/puzzlecut/pkg/geometry"
)

// Grid describes the partition of a source image into rows × cols cells.
// Cell sizes are floats derived from the image dimensions; the grid itself
// carries no randomness and no piece geometry.
type Grid struct {
	Rows        int     `json:"rows" bson:"rows"`
	Cols        int     `json:"cols" bson:"cols"`
	ImageWidth  float64 `json:"image_width" bson:"image_width"`
	ImageHeight float64 `json:"image_height" bson:"image_height"`
}

// New validates the inputs and returns a Grid.
// Rejects non-positive rows, columns, or image dimensions before any
// generation work happens.
func New(rows, cols int, imageWidth, imageHeight float64) (Grid, error) {
	if err := errors.ValidateGridDimensions(rows, cols); err != nil {
		return Grid{}, err
	}
	if err := errors.ValidateImageDimensions(imageWidth, imageHeight); err != nil {
		return Grid{}, err
	}
	return Grid{
		Rows:        rows,
		Cols:        cols,
		ImageWidth:  imageWidth,
		ImageHeight: imageHeight,
	}, nil
}

// PieceWidth returns the nominal cell width (image width / columns).
func (g Grid) PieceWidth() float64 { return g.ImageWidth / float64(g.Cols) }

// PieceHeight returns the nominal cell height (image height / rows).
func (g Grid) PieceHeight() float64 { return g.ImageHeight / float64(g.Rows) }

// PieceCount returns rows × cols.
func (g Grid) PieceCount() int { return g.Rows * g.Cols }

// CellOrigin returns the image-space position of the nominal top-left corner
// of cell (row, col).
func (g Grid) CellOrigin(row, col int) geometry.Point {
	return geometry.Point{
		X: float64(col) * g.PieceWidth(),
		Y: float64(row) * g.PieceHeight(),
	}
}

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// InternalEdgeCount returns the number of edges shared between two cells:
// rows·(cols−1) vertical boundaries plus cols·(rows−1) horizontal ones.
func (g Grid) InternalEdgeCount() int {
	return g.Rows*(g.Cols-1) + g.Cols*(g.Rows-1)
}
