package neighbors

// Side identifies one of the four edges of a piece.
type Side int

// Sides in path-traversal order. The order matters: piece contours are
// composed top→right→bottom→left.
const (
	Top Side = iota
	Right
	Bottom
	Left
)

// Sides lists all four sides in traversal order.
var Sides = [4]Side{Top, Right, Bottom, Left}

// String returns the lowercase side name ("top", "right", "bottom", "left").
func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return "invalid"
	}
}

// Opposite returns the side facing s on the adjacent piece.
func (s Side) Opposite() Side {
	switch s {
	case Top:
		return Bottom
	case Right:
		return Left
	case Bottom:
		return Top
	default:
		return Right
	}
}

// Offset returns the (rowDelta, colDelta) to the neighbor across s.
func (s Side) Offset() (int, int) {
	switch s {
	case Top:
		return -1, 0
	case Right:
		return 0, 1
	case Bottom:
		return 1, 0
	default:
		return 0, -1
	}
}

// ParseSide converts a side name to a Side. Returns false for unknown names.
func ParseSide(name string) (Side, bool) {
	switch name {
	case "top":
		return Top, true
	case "right":
		return Right, true
	case "bottom":
		return Bottom, true
	case "left":
		return Left, true
	default:
		return 0, false
	}
}
