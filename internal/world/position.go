package world

import "math"

// Position is a cell coordinate on a Map.
type Position struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns p offset by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Chebyshev returns max(|dx|, |dy|), the number of king moves between p and o.
func (p Position) Chebyshev(o Position) int {
	return max(abs(p.X-o.X), abs(p.Y-o.Y))
}

// Manhattan returns |dx| + |dy|.
func (p Position) Manhattan(o Position) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

// DistanceSquared returns the squared Euclidean distance between p and o.
func (p Position) DistanceSquared(o Position) int {
	dx, dy := p.X-o.X, p.Y-o.Y
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance between p and o.
func (p Position) Distance(o Position) float64 {
	return math.Sqrt(float64(p.DistanceSquared(o)))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Cardinal offsets in N, E, S, W order.
var Cardinal = [4]Position{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Diagonal offsets in NE, SE, SW, NW order.
var Diagonal = [4]Position{{1, -1}, {1, 1}, {-1, 1}, {-1, -1}}
