package dungeon

import (
	"github.com/samdwyer/delvecore/internal/gamedata"
	"github.com/samdwyer/delvecore/internal/logger"
	"github.com/samdwyer/delvecore/internal/world"
)

const (
	caveFloorChance     = 0.45
	caveSmoothingPasses = 5

	// Below this many floor tiles after smoothing the cave is unplayable
	// and a fallback chamber is carved.
	minCaveFloor       = 100
	fallbackCaveWidth  = 24
	fallbackCaveHeight = 12

	caveDecorationChance = 0.01
	caveCellsPerShrine   = 600
)

// GenerateCaves builds a cellular-automata cave floor.
func GenerateCaves(rng RNG, floor int, cfg gamedata.BiomeConfig) *world.Map {
	m := world.NewMap(world.DefaultWidth, world.DefaultHeight, floor, cfg.Biome)

	randomFill(m, rng)
	for i := 0; i < caveSmoothingPasses; i++ {
		smooth(m)
	}

	floors := m.Find(world.TileFloor)
	if len(floors) < minCaveFloor {
		logger.Warning("cave too sparse, carving fallback chamber", "floor", floor, "floor_tiles", len(floors))
		carveFallbackCave(m)
		floors = m.Find(world.TileFloor)
	}

	region := Reachable(m, floors[rng.Intn(len(floors))])
	if region.Len()*2 < len(floors) {
		tunnels := connectPockets(m, region, floors)
		logger.Debug("cave connectivity repaired", "floor", floor, "tunnels", tunnels, "reachable", region.Len())
	}

	m.Start = region.Cells[rng.Intn(region.Len())]
	fromStart := Reachable(m, m.Start)
	if exit, ok := fromStart.Farthest(); ok && exit != m.Start {
		m.SetExit(exit)
	}
	if floor > 1 {
		m.SetType(m.Start, world.TileStairsUp)
	}

	placeShrines(m, rng, floor, fromStart.Cells, shrineCapacity(fromStart.Len(), caveCellsPerShrine), caveShrineSpacing)
	scatterDecorations(m, rng, fromStart.Cells, cfg.Decorations, caveDecorationChance)

	return m
}

// randomFill makes each interior cell floor with probability caveFloorChance.
// The border stays wall.
func randomFill(m *world.Map, rng RNG) {
	for y := 1; y < m.Height-1; y++ {
		for x := 1; x < m.Width-1; x++ {
			if rng.Float64() < caveFloorChance {
				m.SetType(world.Pos(x, y), world.TileFloor)
			}
		}
	}
}

// smooth runs one cellular-automata pass. The next generation is computed
// entirely from the current one before being written back.
func smooth(m *world.Map) {
	next := make([]world.TileType, len(m.Tiles))
	for i := range m.Tiles {
		next[i] = m.Tiles[i].Type
	}

	for y := 1; y < m.Height-1; y++ {
		for x := 1; x < m.Width-1; x++ {
			p := world.Pos(x, y)
			walls := countAdjacentWalls(m, p)
			if walls > 4 {
				next[m.Index(p)] = world.TileWall
			} else if walls < 4 {
				next[m.Index(p)] = world.TileFloor
			}
		}
	}

	for i := range m.Tiles {
		m.Tiles[i].Type = next[i]
	}
}

// countAdjacentWalls counts walls among the 8 neighbors. Off-map counts as wall.
func countAdjacentWalls(m *world.Map, p world.Position) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if m.TypeAt(p.Add(dx, dy)) == world.TileWall {
				count++
			}
		}
	}
	return count
}

// carveFallbackCave opens a rectangular chamber in the middle of the map.
func carveFallbackCave(m *world.Map) {
	x0 := (m.Width - fallbackCaveWidth) / 2
	y0 := (m.Height - fallbackCaveHeight) / 2
	for y := y0; y < y0+fallbackCaveHeight; y++ {
		for x := x0; x < x0+fallbackCaveWidth; x++ {
			if p := world.Pos(x, y); m.InInterior(p) {
				m.SetType(p, world.TileFloor)
			}
		}
	}
}

// connectPockets tunnels every floor tile outside the region to the nearest
// region cell, then floods the newly joined pocket into the region so the
// rest of that pocket needs no tunnel of its own. Returns the tunnel count.
func connectPockets(m *world.Map, region *Region, floors []world.Position) int {
	tunnels := 0
	for _, p := range floors {
		if region.Contains(p) {
			continue
		}
		target, ok := region.Nearest(p)
		if !ok {
			return tunnels
		}
		carveTunnel(m, p, target)
		region.extend(m, p)
		tunnels++
	}
	return tunnels
}

// carveTunnel walks from one cell to another one axis at a time, turning
// walls into corridor on the way.
func carveTunnel(m *world.Map, from, to world.Position) {
	p := from
	for p != to {
		switch {
		case p.X < to.X:
			p.X++
		case p.X > to.X:
			p.X--
		case p.Y < to.Y:
			p.Y++
		default:
			p.Y--
		}
		if m.TypeAt(p) == world.TileWall {
			m.SetType(p, world.TileCorridor)
		}
	}
}
