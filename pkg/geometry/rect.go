package geometry

// Rect is an axis-aligned rectangle.
type Rect struct {
	MinX float64 `json:"min_x" bson:"min_x"`
	MinY float64 `json:"min_y" bson:"min_y"`
	MaxX float64 `json:"max_x" bson:"max_x"`
	MaxY float64 `json:"max_y" bson:"max_y"`
}

// Width returns MaxX - MinX.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns MaxY - MinY.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Contains reports whether pt lies inside the rectangle (inclusive).
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.MinX && pt.X <= r.MaxX && pt.Y >= r.MinY && pt.Y <= r.MaxY
}
