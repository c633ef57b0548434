// Package fov computes the player's field of view with recursive symmetric
// shadowcasting. It holds no state between calls.
package fov

import (
	"github.com/samdwyer/delvecore/internal/world"
)

// octant maps (depth, col) scan coordinates onto map offsets:
// dx = col*xx + depth*xy, dy = col*yx + depth*yy.
type octant struct {
	xx, xy, yx, yy int
}

var octants = [8]octant{
	{1, 0, 0, -1},  // north, right of axis
	{-1, 0, 0, -1}, // north, left
	{0, 1, -1, 0},  // east, up
	{0, 1, 1, 0},   // east, down
	{1, 0, 0, 1},   // south, right
	{-1, 0, 0, 1},  // south, left
	{0, -1, 1, 0},  // west, down
	{0, -1, -1, 0}, // west, up
}

// slope is the exact rational num/den with den > 0.
type slope struct {
	num, den int
}

// Compute clears every visible flag on m, then marks the tiles in sight of
// origin within radius as visible and explored. It returns the visible
// positions in discovery order, origin first. The same map, origin and
// radius always give the same result.
func Compute(m *world.Map, origin world.Position, radius int) []world.Position {
	m.ClearVisible()
	if !m.InBounds(origin) {
		return nil
	}

	s := &scanner{m: m, origin: origin, radius: radius}
	s.reveal(origin, 0, 0)
	for _, o := range octants {
		s.scan(o, 1, slope{0, 1}, slope{1, 1})
	}
	return s.visible
}

type scanner struct {
	m       *world.Map
	origin  world.Position
	radius  int
	visible []world.Position
}

func (s *scanner) at(o octant, depth, col int) world.Position {
	return s.origin.Add(col*o.xx+depth*o.xy, col*o.yx+depth*o.yy)
}

// scan walks one row of an octant and recurses outward. Opaque cells in
// the row are always revealed; open cells only when the origin could see
// them back, which keeps visibility symmetric.
func (s *scanner) scan(o octant, depth int, start, end slope) {
	if depth > s.radius {
		return
	}

	first := roundTiesUp(depth, start)
	last := roundTiesDown(depth, end)

	var prevWall, started bool
	for col := first; col <= last; col++ {
		p := s.at(o, depth, col)
		wall := s.m.IsOpaque(p)

		if wall || isSymmetric(depth, col, start, end) {
			s.reveal(p, depth, col)
		}
		if started && prevWall && !wall {
			start = slope{2*col - 1, 2 * depth}
		}
		if started && !prevWall && wall {
			s.scan(o, depth+1, start, slope{2*col - 1, 2 * depth})
		}
		prevWall, started = wall, true
	}

	if started && !prevWall {
		s.scan(o, depth+1, start, end)
	}
}

func (s *scanner) reveal(p world.Position, depth, col int) {
	if depth*depth+col*col > s.radius*s.radius {
		return
	}
	t := s.m.Tile(p)
	if t == nil || t.Visible {
		return
	}
	t.Visible = true
	t.Explored = true
	s.visible = append(s.visible, p)
}

// isSymmetric reports whether col lies inside [depth*start, depth*end].
func isSymmetric(depth, col int, start, end slope) bool {
	return col*start.den >= depth*start.num && col*end.den <= depth*end.num
}

// roundTiesUp returns floor(depth*s + 1/2).
func roundTiesUp(depth int, s slope) int {
	return floorDiv(2*depth*s.num+s.den, 2*s.den)
}

// roundTiesDown returns ceil(depth*s - 1/2).
func roundTiesDown(depth int, s slope) int {
	return ceilDiv(2*depth*s.num-s.den, 2*s.den)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}
	return q
}
