package dungeon

import (
	"github.com/samdwyer/delvecore/internal/world"
)

const (
	// Minimum straight-line distance between two shrines on one floor.
	roomShrineSpacing = 8.0
	caveShrineSpacing = 15.0

	maxShrinesPerFloor = 3

	enchantingMinFloor = 5
	corruptionMinFloor = 3
)

// shrineTypes returns the shrine types available on a floor, unshuffled.
// Enchanting needs accumulated currency so it starts deeper; corruption
// shrines phase in from floor 3 with rising probability.
func shrineTypes(rng RNG, floor int) []world.TileType {
	types := []world.TileType{world.TileShrineRest, world.TileShrineSkill}
	if floor >= enchantingMinFloor {
		types = append(types, world.TileShrineEnchanting)
	}
	if floor >= corruptionMinFloor && chance(rng, corruptionShrineChance(floor)) {
		types = append(types, world.TileShrineCorruption)
	}
	return types
}

func corruptionShrineChance(floor int) float64 {
	return min(0.25+0.1*float64(floor-corruptionMinFloor), 0.75)
}

// shrineCapacity scales the shrine count with the space available.
func shrineCapacity(areas, perShrine int) int {
	if areas <= 0 {
		return 0
	}
	return max(1, min(maxShrinesPerFloor, areas/perShrine))
}

// placeShrines walks the candidate cells in random order and drops one
// shrine of each type until capacity or the type list runs out. Candidates
// must be plain floor, off the start and exit, and not a chokepoint; no
// shrine lands closer than spacing to another.
func placeShrines(m *world.Map, rng RNG, floor int, candidates []world.Position, capacity int, spacing float64) []world.Position {
	types := shrineTypes(rng, floor)
	rng.Shuffle(len(types), func(i, j int) { types[i], types[j] = types[j], types[i] })

	cells := append([]world.Position(nil), candidates...)
	rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })

	var placed []world.Position
	next := 0
	for _, c := range cells {
		if len(placed) >= capacity || next >= len(types) {
			break
		}
		if !shrineSiteOK(m, c) || tooClose(c, placed, spacing) {
			continue
		}
		m.SetType(c, types[next])
		placed = append(placed, c)
		next++
	}
	return placed
}

func shrineSiteOK(m *world.Map, p world.Position) bool {
	return isPlainFloor(m, p) &&
		!m.IsStart(p) && !m.IsExit(p) &&
		!m.IsNarrowPassage(p)
}

// isPlainFloor reports whether p is undecorated floor with no glyph override.
func isPlainFloor(m *world.Map, p world.Position) bool {
	t := m.Tile(p)
	return t != nil && t.Type == world.TileFloor && t.Glyph == 0
}

func tooClose(p world.Position, others []world.Position, spacing float64) bool {
	for _, o := range others {
		if p.Distance(o) < spacing {
			return true
		}
	}
	return false
}

// scatterDecorations drops palette tiles on plain floor cells, skipping
// the start and exit.
func scatterDecorations(m *world.Map, rng RNG, cells []world.Position, palette []world.TileType, density float64) int {
	if len(palette) == 0 {
		return 0
	}
	placed := 0
	for _, c := range cells {
		if !isPlainFloor(m, c) || m.IsStart(c) || m.IsExit(c) {
			continue
		}
		if chance(rng, density) {
			m.SetType(c, palette[rng.Intn(len(palette))])
			placed++
		}
	}
	return placed
}
