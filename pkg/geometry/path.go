package geometry

import (
	"fmt"
	"math"
	"strings"
)

// Op identifies a path command.
type Op string

// Path command operations.
const (
	OpMove  Op = "move"
	OpLine  Op = "line"
	OpCubic Op = "cubic"
	OpClose Op = "close"
)

// Point is a 2D coordinate.
type Point struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Command is a single path instruction. Move and line commands carry one
// point; cubic commands carry two control points followed by the end point;
// close commands carry none.
type Command struct {
	Op     Op      `json:"op" bson:"op"`
	Points []Point `json:"points,omitempty" bson:"points,omitempty"`
}

// Path is an ordered sequence of commands describing a vector contour.
// Coordinates are in the owning piece's local frame.
type Path struct {
	Commands []Command `json:"commands" bson:"commands"`
}

// MoveTo starts a new subpath at p.
func (p *Path) MoveTo(pt Point) {
	p.Commands = append(p.Commands, Command{Op: OpMove, Points: []Point{pt}})
}

// LineTo draws a straight line from the current point to pt.
func (p *Path) LineTo(pt Point) {
	p.Commands = append(p.Commands, Command{Op: OpLine, Points: []Point{pt}})
}

// CubicTo draws a cubic Bezier from the current point to end using the two
// control points c1 and c2.
func (p *Path) CubicTo(c1, c2, end Point) {
	p.Commands = append(p.Commands, Command{Op: OpCubic, Points: []Point{c1, c2, end}})
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.Commands = append(p.Commands, Command{Op: OpClose})
}

// Start returns the first point of the path.
// Returns the zero point if the path is empty.
func (p *Path) Start() Point {
	if len(p.Commands) == 0 || len(p.Commands[0].Points) == 0 {
		return Point{}
	}
	return p.Commands[0].Points[0]
}

// End returns the final pen position before any closing command.
func (p *Path) End() Point {
	for i := len(p.Commands) - 1; i >= 0; i-- {
		if pts := p.Commands[i].Points; len(pts) > 0 {
			return pts[len(pts)-1]
		}
	}
	return Point{}
}

// IsClosed reports whether the path ends with a close command and the final
// pen position matches the start point within tol.
func (p *Path) IsClosed(tol float64) bool {
	if len(p.Commands) == 0 || p.Commands[len(p.Commands)-1].Op != OpClose {
		return false
	}
	start, end := p.Start(), p.End()
	return math.Abs(start.X-end.X) <= tol && math.Abs(start.Y-end.Y) <= tol
}

// SVG returns the path as SVG path data ("M ... L ... C ... Z").
func (p *Path) SVG() string {
	var b strings.Builder
	for i, cmd := range p.Commands {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch cmd.Op {
		case OpMove:
			fmt.Fprintf(&b, "M %s", fmtPoint(cmd.Points[0]))
		case OpLine:
			fmt.Fprintf(&b, "L %s", fmtPoint(cmd.Points[0]))
		case OpCubic:
			fmt.Fprintf(&b, "C %s %s %s", fmtPoint(cmd.Points[0]), fmtPoint(cmd.Points[1]), fmtPoint(cmd.Points[2]))
		case OpClose:
			b.WriteString("Z")
		}
	}
	return b.String()
}

// Translate returns a copy of the path shifted by (dx, dy).
func (p *Path) Translate(dx, dy float64) Path {
	out := Path{Commands: make([]Command, len(p.Commands))}
	for i, cmd := range p.Commands {
		c := Command{Op: cmd.Op}
		if len(cmd.Points) > 0 {
			c.Points = make([]Point, len(cmd.Points))
			for j, pt := range cmd.Points {
				c.Points[j] = Point{X: pt.X + dx, Y: pt.Y + dy}
			}
		}
		out.Commands[i] = c
	}
	return out
}

func fmtPoint(pt Point) string {
	return fmt.Sprintf("%s %s", FormatCoord(pt.X), FormatCoord(pt.Y))
}

// FormatCoord renders a coordinate with at most three decimals, trimming
// trailing zeros so path data stays compact and byte-stable.
func FormatCoord(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}
