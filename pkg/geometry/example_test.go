package geometry_test

import (
	"fmt"

	"github.com/puzzlecut/puzzlecut/pkg/geometry"
)

func ExamplePath_SVG() {
	var p geometry.Path
	p.MoveTo(geometry.Point{X: 0, Y: 0})
	p.LineTo(geometry.Point{X: 100, Y: 0})
	p.CubicTo(
		geometry.Point{X: 100, Y: 50},
		geometry.Point{X: 50, Y: 100},
		geometry.Point{X: 0, Y: 100},
	)
	p.LineTo(geometry.Point{X: 0, Y: 0})
	p.Close()

	fmt.Println(p.SVG())
	fmt.Println("closed:", p.IsClosed(1e-6))
	// Output:
	// M 0 0 L 100 0 C 100 50 50 100 0 100 L 0 0 Z
	// closed: true
}

func ExampleScaleTranslate() {
	// Map a 50-unit window onto a 200-unit frame, offset to (10, 20).
	a := geometry.ScaleTranslate(50.0/200.0, 50.0/200.0, 10, 20)
	fmt.Println(a.Apply(geometry.Point{X: 0, Y: 0}))
	fmt.Println(a.Apply(geometry.Point{X: 200, Y: 200}))
	// Output:
	// {10 20}
	// {60 70}
}
