package world

const (
	// Default floor dimensions
	DefaultWidth  = 80
	DefaultHeight = 50

	// EliteRadius is the Chebyshev radius around an elite anchor that
	// counts as part of the elite zone.
	EliteRadius = 5
)

// Map is one dungeon floor.
type Map struct {
	Width  int
	Height int
	Floor  int
	Biome  Biome
	Tiles  []Tile // row-major, len Width*Height

	Start Position
	// Exit is nil until generation places the down stairs.
	Exit       *Position
	EliteRooms []Position
}

// NewMap creates a map filled with walls.
func NewMap(width, height, floor int, biome Biome) *Map {
	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i] = NewTile(TileWall)
	}
	return &Map{
		Width:  width,
		Height: height,
		Floor:  floor,
		Biome:  biome,
		Tiles:  tiles,
	}
}

// InBounds returns true if p lies on the map.
func (m *Map) InBounds(p Position) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Height
}

// InInterior returns true if p lies on the map and off its outer border.
func (m *Map) InInterior(p Position) bool {
	return p.X > 0 && p.X < m.Width-1 && p.Y > 0 && p.Y < m.Height-1
}

// Index returns the offset of p in Tiles. p must be in bounds.
func (m *Map) Index(p Position) int {
	return p.Y*m.Width + p.X
}

// PositionAt is the inverse of Index.
func (m *Map) PositionAt(i int) Position {
	return Position{X: i % m.Width, Y: i / m.Width}
}

// Tile returns the tile at p, or nil if p is out of bounds.
func (m *Map) Tile(p Position) *Tile {
	if !m.InBounds(p) {
		return nil
	}
	return &m.Tiles[m.Index(p)]
}

// TypeAt returns the tile type at p. Out of bounds reads as wall.
func (m *Map) TypeAt(p Position) TileType {
	if !m.InBounds(p) {
		return TileWall
	}
	return m.Tiles[m.Index(p)].Type
}

// SetType overwrites the tile type at p. Out of bounds writes are ignored.
func (m *Map) SetType(p Position, t TileType) {
	if !m.InBounds(p) {
		return
	}
	m.Tiles[m.Index(p)].Type = t
}

// IsWalkable returns true if p is on the map and can be walked on.
func (m *Map) IsWalkable(p Position) bool {
	return m.InBounds(p) && m.Tiles[m.Index(p)].IsWalkable()
}

// IsOpaque returns true if p blocks sight. Out of bounds is opaque.
func (m *Map) IsOpaque(p Position) bool {
	return !m.InBounds(p) || m.Tiles[m.Index(p)].IsOpaque()
}

// SetExit places the down stairs at p and records it as the exit.
func (m *Map) SetExit(p Position) {
	m.SetType(p, TileStairsDown)
	exit := p
	m.Exit = &exit
}

// HasValidExit reports whether the exit is set and still holds the down stairs.
func (m *Map) HasValidExit() bool {
	return m.Exit != nil && m.TypeAt(*m.Exit) == TileStairsDown
}

// IsStart reports whether p is the start position.
func (m *Map) IsStart(p Position) bool {
	return p == m.Start
}

// IsExit reports whether p is the exit position.
func (m *Map) IsExit(p Position) bool {
	return m.Exit != nil && *m.Exit == p
}

// IsElite reports whether p lies within EliteRadius of any elite anchor.
func (m *Map) IsElite(p Position) bool {
	for _, anchor := range m.EliteRooms {
		if anchor.Chebyshev(p) <= EliteRadius {
			return true
		}
	}
	return false
}

// WalkableCount returns the number of walkable tiles.
func (m *Map) WalkableCount() int {
	n := 0
	for i := range m.Tiles {
		if m.Tiles[i].IsWalkable() {
			n++
		}
	}
	return n
}

// Find returns the positions of every tile of type t in row-major order.
func (m *Map) Find(t TileType) []Position {
	var found []Position
	for i := range m.Tiles {
		if m.Tiles[i].Type == t {
			found = append(found, m.PositionAt(i))
		}
	}
	return found
}

// ClearVisible resets the visible flag on every tile.
func (m *Map) ClearVisible() {
	for i := range m.Tiles {
		m.Tiles[i].Visible = false
	}
}

// WalkableNeighbors counts walkable cardinal and diagonal neighbors of p.
func (m *Map) WalkableNeighbors(p Position) (cardinal, total int) {
	for _, d := range Cardinal {
		if m.IsWalkable(p.Add(d.X, d.Y)) {
			cardinal++
		}
	}
	total = cardinal
	for _, d := range Diagonal {
		if m.IsWalkable(p.Add(d.X, d.Y)) {
			total++
		}
	}
	return cardinal, total
}
