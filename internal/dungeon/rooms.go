package dungeon

import (
	"github.com/samdwyer/delvecore/internal/gamedata"
	"github.com/samdwyer/delvecore/internal/logger"
	"github.com/samdwyer/delvecore/internal/world"
)

const (
	maxPlacementAttempts = 100

	baseMaxRooms = 8
	maxMaxRooms  = 16

	maxEliteChance = 0.4
	eliteGlyph     = '*'

	roomDecorationChance = 0.015
	roomsPerShrine       = 2
)

// roomBuilder carves rooms and corridors into a single map.
type roomBuilder struct {
	m     *world.Map
	rng   RNG
	cfg   gamedata.BiomeConfig
	floor int
	rooms []world.Room
}

// GenerateRooms builds a room-and-corridor floor.
func GenerateRooms(rng RNG, floor int, cfg gamedata.BiomeConfig) *world.Map {
	m, _ := generateRooms(rng, floor, cfg)
	return m
}

func generateRooms(rng RNG, floor int, cfg gamedata.BiomeConfig) (*world.Map, []world.Room) {
	b := &roomBuilder{
		m:     world.NewMap(world.DefaultWidth, world.DefaultHeight, floor, cfg.Biome),
		rng:   rng,
		cfg:   cfg,
		floor: floor,
	}

	b.placeRooms()
	if len(b.rooms) == 0 {
		logger.Warning("no rooms placed, carving fallback room", "floor", floor)
		b.addRoom(b.fallbackRoom())
	}

	b.placeStairs()
	b.tagEliteRooms()

	inner := b.innerRooms()
	var candidates []world.Position
	for _, r := range inner {
		candidates = append(candidates, r.Interior()...)
	}
	placeShrines(b.m, rng, floor, candidates, shrineCapacity(len(inner), roomsPerShrine), roomShrineSpacing)

	var cells []world.Position
	for _, r := range b.rooms {
		cells = append(cells, r.Interior()...)
	}
	scatterDecorations(b.m, rng, cells, cfg.Decorations, roomDecorationChance)

	return b.m, b.rooms
}

// maxRooms grows with depth: deeper floors are busier.
func maxRooms(floor int) int {
	return min(baseMaxRooms+floor/2, maxMaxRooms)
}

// placeRooms samples rectangles until the room cap or the attempt cap is hit.
func (b *roomBuilder) placeRooms() {
	limit := maxRooms(b.floor)
	for attempt := 0; attempt < maxPlacementAttempts && len(b.rooms) < limit; attempt++ {
		w := intRange(b.rng, b.cfg.MinRoomSize, b.cfg.MaxRoomSize)
		h := intRange(b.rng, b.cfg.MinRoomSize, b.cfg.MaxRoomSize)
		if w >= b.m.Width-1 || h >= b.m.Height-1 {
			continue
		}

		x := b.rng.Intn(b.m.Width - w - 1)
		y := b.rng.Intn(b.m.Height - h - 1)
		room := world.NewRoom(x, y, w, h)

		if b.overlaps(room) {
			continue
		}
		b.addRoom(room)
	}
}

func (b *roomBuilder) overlaps(room world.Room) bool {
	for _, other := range b.rooms {
		if room.Intersects(other) {
			return true
		}
	}
	return false
}

// addRoom carves the room and joins it to the previous one.
func (b *roomBuilder) addRoom(room world.Room) {
	b.carveRoom(room)
	if n := len(b.rooms); n > 0 {
		b.carveCorridor(b.rooms[n-1].Center(), room.Center())
	}
	b.rooms = append(b.rooms, room)
}

func (b *roomBuilder) fallbackRoom() world.Room {
	w, h := b.cfg.MinRoomSize, b.cfg.MinRoomSize
	return world.NewRoom((b.m.Width-w)/2, (b.m.Height-h)/2, w, h)
}

// carveRoom sets all tiles within the room interior to floor.
func (b *roomBuilder) carveRoom(room world.Room) {
	for _, p := range room.Interior() {
		if b.m.InInterior(p) {
			b.m.SetType(p, world.TileFloor)
		}
	}
}

// carveCorridor joins two points with an L-shaped corridor, choosing the
// leg order at random. The elbow gets a 3x3 patch so the turn is never a
// single-tile pinch.
func (b *roomBuilder) carveCorridor(from, to world.Position) {
	var elbow world.Position
	if b.rng.Intn(2) == 0 {
		b.carveHorizontalTunnel(from.X, to.X, from.Y)
		b.carveVerticalTunnel(from.Y, to.Y, to.X)
		elbow = world.Pos(to.X, from.Y)
	} else {
		b.carveVerticalTunnel(from.Y, to.Y, from.X)
		b.carveHorizontalTunnel(from.X, to.X, to.Y)
		elbow = world.Pos(from.X, to.Y)
	}

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			b.carveCorridorCell(elbow.Add(dx, dy))
		}
	}
}

// carveHorizontalTunnel carves a two-wide horizontal tunnel at rows y and y+1.
func (b *roomBuilder) carveHorizontalTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		b.carveCorridorCell(world.Pos(x, y))
		b.carveCorridorCell(world.Pos(x, y+1))
	}
}

// carveVerticalTunnel carves a two-wide vertical tunnel at columns x and x+1.
func (b *roomBuilder) carveVerticalTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		b.carveCorridorCell(world.Pos(x, y))
		b.carveCorridorCell(world.Pos(x+1, y))
	}
}

// carveCorridorCell turns wall into corridor, leaving room floor alone.
func (b *roomBuilder) carveCorridorCell(p world.Position) {
	if b.m.InInterior(p) && b.m.TypeAt(p) == world.TileWall {
		b.m.SetType(p, world.TileCorridor)
	}
}

// placeStairs puts the start in the first room and the exit in the last.
func (b *roomBuilder) placeStairs() {
	first := b.rooms[0]
	b.m.Start = first.Center()
	if b.floor > 1 {
		b.m.SetType(b.m.Start, world.TileStairsUp)
	}

	exit := b.rooms[len(b.rooms)-1].Center()
	if exit == b.m.Start {
		// Single room: use the interior corner farthest from the center.
		corners := first.InnerCorners()
		exit = corners[len(corners)-1]
	}
	b.m.SetExit(exit)
}

func eliteChance(floor int) float64 {
	return min(0.05*float64(floor), maxEliteChance)
}

// tagEliteRooms marks some middle rooms as elite anchors and flags their
// inner corners with a cosmetic glyph.
func (b *roomBuilder) tagEliteRooms() {
	p := eliteChance(b.floor)
	for _, room := range b.innerRooms() {
		if !chance(b.rng, p) {
			continue
		}
		b.m.EliteRooms = append(b.m.EliteRooms, room.Center())
		for _, c := range room.InnerCorners() {
			if t := b.m.Tile(c); t != nil && t.Type == world.TileFloor {
				t.Glyph = eliteGlyph
			}
		}
	}
}

// innerRooms returns every room except the first and last.
func (b *roomBuilder) innerRooms() []world.Room {
	if len(b.rooms) <= 2 {
		return nil
	}
	return b.rooms[1 : len(b.rooms)-1]
}
