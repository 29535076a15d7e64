package geometry

// Affine is a 2×3 affine transform in column-major form:
//
//	x' = XX*x + XY*y + X0
//	y' = YX*x + YY*y + Y0
type Affine struct {
	XX float64 `json:"xx" bson:"xx"`
	YX float64 `json:"yx" bson:"yx"`
	XY float64 `json:"xy" bson:"xy"`
	YY float64 `json:"yy" bson:"yy"`
	X0 float64 `json:"x0" bson:"x0"`
	Y0 float64 `json:"y0" bson:"y0"`
}

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{XX: 1, YY: 1}
}

// ScaleTranslate returns a transform that scales by (sx, sy) and then
// translates by (tx, ty).
func ScaleTranslate(sx, sy, tx, ty float64) Affine {
	return Affine{XX: sx, YY: sy, X0: tx, Y0: ty}
}

// Apply transforms pt.
func (a Affine) Apply(pt Point) Point {
	return Point{
		X: a.XX*pt.X + a.XY*pt.Y + a.X0,
		Y: a.YX*pt.X + a.YY*pt.Y + a.Y0,
	}
}
