package geometry

import "testing"

func TestIdentityApply(t *testing.T) {
	pt := Point{X: 3, Y: 4}
	if got := Identity().Apply(pt); got != pt {
		t.Errorf("Identity().Apply(%v) = %v", pt, got)
	}
}

func TestScaleTranslateApply(t *testing.T) {
	a := ScaleTranslate(2, 0.5, 10, -5)

	tests := []struct {
		in   Point
		want Point
	}{
		{Point{X: 0, Y: 0}, Point{X: 10, Y: -5}},
		{Point{X: 1, Y: 1}, Point{X: 12, Y: -4.5}},
		{Point{X: -2, Y: 4}, Point{X: 6, Y: -3}},
	}
	for _, tt := range tests {
		if got := a.Apply(tt.in); got != tt.want {
			t.Errorf("Apply(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRect(t *testing.T) {
	r := Rect{MinX: -1, MinY: -2, MaxX: 3, MaxY: 4}

	if got := r.Width(); got != 4 {
		t.Errorf("Width() = %g", got)
	}
	if got := r.Height(); got != 6 {
		t.Errorf("Height() = %g", got)
	}
	if !r.Contains(Point{X: 0, Y: 0}) {
		t.Error("Contains(origin) = false")
	}
	if r.Contains(Point{X: 5, Y: 0}) {
		t.Error("Contains(outside) = true")
	}
}
