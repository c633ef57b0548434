package dungeon

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/delvecore/internal/world"
)

// Region is a 4-connected set of walkable cells found by flood fill.
type Region struct {
	// Cells in breadth-first order from the origin, so the last cell is
	// one of the farthest by walking distance.
	Cells []world.Position
	set   mapset.Set[world.Position]
}

// Reachable flood-fills walkable tiles 4-directionally from origin. An
// unwalkable origin yields an empty region.
func Reachable(m *world.Map, origin world.Position) *Region {
	r := &Region{set: mapset.New[world.Position]()}
	r.extend(m, origin)
	return r
}

// extend floods from origin, adding every walkable cell not already in r.
func (r *Region) extend(m *world.Map, origin world.Position) {
	if !m.IsWalkable(origin) || r.set.Has(origin) {
		return
	}

	queue := []world.Position{origin}
	r.set.Put(origin)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		r.Cells = append(r.Cells, current)

		for _, d := range world.Cardinal {
			next := current.Add(d.X, d.Y)
			if r.set.Has(next) || !m.IsWalkable(next) {
				continue
			}
			r.set.Put(next)
			queue = append(queue, next)
		}
	}
}

// Contains reports whether p is in the region.
func (r *Region) Contains(p world.Position) bool {
	return r.set.Has(p)
}

// Len returns the number of cells in the region.
func (r *Region) Len() int {
	return len(r.Cells)
}

// Farthest returns the last cell reached by the flood fill.
func (r *Region) Farthest() (world.Position, bool) {
	if len(r.Cells) == 0 {
		return world.Position{}, false
	}
	return r.Cells[len(r.Cells)-1], true
}

// Nearest returns the region cell closest to p by straight-line distance.
// Ties go to the cell reached first.
func (r *Region) Nearest(p world.Position) (world.Position, bool) {
	best, bestDist := world.Position{}, -1
	for _, c := range r.Cells {
		if d := c.DistanceSquared(p); bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, bestDist >= 0
}

// IsSolvable reports whether the exit can be walked to from the start.
func IsSolvable(m *world.Map) bool {
	if m.Exit == nil {
		return false
	}
	return Reachable(m, m.Start).Contains(*m.Exit)
}
