// Package world provides the dungeon floor grid, its tiles and the queries
// the rest of the game runs against it.
package world

import "fmt"

// TileType identifies what occupies a single map cell.
type TileType uint8

const (
	// TileWall is impassable, opaque rock. Every floor starts filled with it.
	TileWall TileType = iota
	// TileFloor is open ground carved by a generator.
	TileFloor
	// TileCorridor is ground carved while connecting rooms or repairing caves.
	TileCorridor

	// Hazards. Walkable, but the combat layer punishes standing on them.
	TileLava
	TilePit
	TileCorruption

	TileDoorClosed
	TileDoorOpen
	TileStairsUp
	TileStairsDown

	// Decorations.
	TileBones
	TileBloodStain
	TileRubble
	TileCobweb
	TileMoss
	TilePuddle

	// Light sources.
	TileBrazier
	TileTorch

	// Shrines. At most one of each per floor.
	TileShrineRest
	TileShrineSkill
	TileShrineEnchanting
	TileShrineCorruption

	tileTypeCount
)

var tileNames = [tileTypeCount]string{
	TileWall:             "wall",
	TileFloor:            "floor",
	TileCorridor:         "corridor",
	TileLava:             "lava",
	TilePit:              "pit",
	TileCorruption:       "corruption",
	TileDoorClosed:       "door_closed",
	TileDoorOpen:         "door_open",
	TileStairsUp:         "stairs_up",
	TileStairsDown:       "stairs_down",
	TileBones:            "bones",
	TileBloodStain:       "blood_stain",
	TileRubble:           "rubble",
	TileCobweb:           "cobweb",
	TileMoss:             "moss",
	TilePuddle:           "puddle",
	TileBrazier:          "brazier",
	TileTorch:            "torch",
	TileShrineRest:       "shrine_rest",
	TileShrineSkill:      "shrine_skill",
	TileShrineEnchanting: "shrine_enchanting",
	TileShrineCorruption: "shrine_corruption",
}

// String returns the stable name used in data files and snapshots.
func (t TileType) String() string {
	if t < tileTypeCount {
		return tileNames[t]
	}
	return fmt.Sprintf("tile(%d)", uint8(t))
}

// ParseTileType looks up a tile type by its String name.
func ParseTileType(name string) (TileType, error) {
	for i, n := range tileNames {
		if n == name {
			return TileType(i), nil
		}
	}
	return TileWall, fmt.Errorf("%w: %q", ErrUnknownTile, name)
}

// AllTileTypes returns every tile type in declaration order.
func AllTileTypes() []TileType {
	types := make([]TileType, 0, tileTypeCount)
	for t := TileType(0); t < tileTypeCount; t++ {
		types = append(types, t)
	}
	return types
}

// Walkable reports whether an actor may stand on the tile.
func (t TileType) Walkable() bool {
	switch t {
	case TileWall, TileDoorClosed:
		return false
	case TileFloor, TileCorridor,
		TileLava, TilePit, TileCorruption,
		TileDoorOpen, TileStairsUp, TileStairsDown,
		TileBones, TileBloodStain, TileRubble, TileCobweb, TileMoss, TilePuddle,
		TileBrazier, TileTorch,
		TileShrineRest, TileShrineSkill, TileShrineEnchanting, TileShrineCorruption:
		return true
	default:
		return false
	}
}

// Transparent reports whether light and sight pass through the tile.
func (t TileType) Transparent() bool {
	switch t {
	case TileWall, TileDoorClosed:
		return false
	case TileFloor, TileCorridor,
		TileLava, TilePit, TileCorruption,
		TileDoorOpen, TileStairsUp, TileStairsDown,
		TileBones, TileBloodStain, TileRubble, TileCobweb, TileMoss, TilePuddle,
		TileBrazier, TileTorch,
		TileShrineRest, TileShrineSkill, TileShrineEnchanting, TileShrineCorruption:
		return true
	default:
		return false
	}
}

// Rune returns the tile's display character.
func (t TileType) Rune() rune {
	switch t {
	case TileWall:
		return '#'
	case TileFloor:
		return '.'
	case TileCorridor:
		return ','
	case TileLava:
		return '~'
	case TilePit:
		return 'O'
	case TileCorruption:
		return '%'
	case TileDoorClosed:
		return '+'
	case TileDoorOpen:
		return '\''
	case TileStairsUp:
		return '<'
	case TileStairsDown:
		return '>'
	case TileBones:
		return ';'
	case TileBloodStain:
		return '"'
	case TileRubble:
		return ':'
	case TileCobweb:
		return 'x'
	case TileMoss:
		return '`'
	case TilePuddle:
		return '='
	case TileBrazier:
		return '&'
	case TileTorch:
		return '!'
	case TileShrineRest:
		return 'R'
	case TileShrineSkill:
		return 'S'
	case TileShrineEnchanting:
		return 'E'
	case TileShrineCorruption:
		return 'C'
	default:
		return '?'
	}
}

// LightRadius is how far the tile casts light. Zero for non-emitters.
func (t TileType) LightRadius() int {
	switch t {
	case TileBrazier:
		return 6
	case TileTorch:
		return 4
	case TileLava:
		return 2
	case TileShrineEnchanting, TileShrineCorruption:
		return 2
	default:
		return 0
	}
}

// IsHazard reports whether the tile is a hazard.
func (t TileType) IsHazard() bool {
	switch t {
	case TileLava, TilePit, TileCorruption:
		return true
	default:
		return false
	}
}

// IsDecoration reports whether the tile is cosmetic scatter, light sources included.
func (t TileType) IsDecoration() bool {
	switch t {
	case TileBones, TileBloodStain, TileRubble, TileCobweb, TileMoss, TilePuddle,
		TileBrazier, TileTorch:
		return true
	default:
		return false
	}
}

// IsShrine reports whether the tile is one of the four shrines.
func (t TileType) IsShrine() bool {
	switch t {
	case TileShrineRest, TileShrineSkill, TileShrineEnchanting, TileShrineCorruption:
		return true
	default:
		return false
	}
}

// IsGround reports whether the tile is plain carved ground (floor or corridor).
func (t TileType) IsGround() bool {
	return t == TileFloor || t == TileCorridor
}

// Tile is a single map cell.
type Tile struct {
	Type     TileType
	Explored bool // ever seen; never reset once true
	Visible  bool // in line of sight as of the last FOV pass
	// LightLevel in [0, 1], written by the lighting pass.
	LightLevel float64
	// Glyph overrides Type.Rune() for rendering when non-zero.
	Glyph rune
}

// NewTile returns an unexplored tile of the given type.
func NewTile(t TileType) Tile {
	return Tile{Type: t}
}

// IsWalkable returns true if the tile can be walked on.
func (t Tile) IsWalkable() bool {
	return t.Type.Walkable()
}

// IsOpaque returns true if the tile blocks sight.
func (t Tile) IsOpaque() bool {
	return !t.Type.Transparent()
}

// Rune returns the tile's display character, honoring the glyph override.
func (t Tile) Rune() rune {
	if t.Glyph != 0 {
		return t.Glyph
	}
	return t.Type.Rune()
}
