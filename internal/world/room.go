package world

// Room represents a rectangular room. The corners are part of the
// surrounding wall; the carved interior lies strictly between them.
type Room struct {
	X1, Y1 int // Top-left corner
	X2, Y2 int // Bottom-right corner
}

// NewRoom creates a room with its top-left corner at (x, y).
func NewRoom(x, y, width, height int) Room {
	return Room{X1: x, Y1: y, X2: x + width, Y2: y + height}
}

// Center returns the center cell of the room.
func (r Room) Center() Position {
	return Position{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Contains returns true if the position is inside the carved interior.
func (r Room) Contains(p Position) bool {
	return p.X > r.X1 && p.X < r.X2 && p.Y > r.Y1 && p.Y < r.Y2
}

// Intersects returns true if the two bounding boxes overlap or touch.
func (r Room) Intersects(other Room) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// InnerCorners returns the four corner cells of the carved interior.
func (r Room) InnerCorners() [4]Position {
	return [4]Position{
		{r.X1 + 1, r.Y1 + 1},
		{r.X2 - 1, r.Y1 + 1},
		{r.X1 + 1, r.Y2 - 1},
		{r.X2 - 1, r.Y2 - 1},
	}
}

// Interior returns every cell of the carved interior in row-major order.
func (r Room) Interior() []Position {
	var cells []Position
	for y := r.Y1 + 1; y < r.Y2; y++ {
		for x := r.X1 + 1; x < r.X2; x++ {
			cells = append(cells, Position{x, y})
		}
	}
	return cells
}
