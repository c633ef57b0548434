package world

// IsNarrowPassage reports whether blocking p would risk severing a passage.
//
// A tile is narrow when it is a corridor, when it has at most one walkable
// cardinal neighbor (a dead end), when its only two walkable cardinal
// neighbors sit on opposite sides (a straight-through cell), or when at most
// three of its eight neighbors are walkable.
func (m *Map) IsNarrowPassage(p Position) bool {
	if m.TypeAt(p) == TileCorridor {
		return true
	}

	north := m.IsWalkable(p.Add(0, -1))
	south := m.IsWalkable(p.Add(0, 1))
	east := m.IsWalkable(p.Add(1, 0))
	west := m.IsWalkable(p.Add(-1, 0))

	cardinal, total := m.WalkableNeighbors(p)
	if cardinal <= 1 {
		return true
	}
	if cardinal == 2 && ((north && south) || (east && west)) {
		return true
	}
	return total <= 3
}
