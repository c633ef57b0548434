package dungeon

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/delvecore/internal/gamedata"
	"github.com/samdwyer/delvecore/internal/logger"
	"github.com/samdwyer/delvecore/internal/telemetry"
	"github.com/samdwyer/delvecore/internal/world"
)

// Kind identifies which generator built a floor.
type Kind int

const (
	KindRooms Kind = iota
	KindCaves
)

func (k Kind) String() string {
	switch k {
	case KindRooms:
		return "rooms"
	case KindCaves:
		return "caves"
	default:
		return "unknown"
	}
}

// Generate builds a finished floor for the given biome. It never fails:
// every degenerate layout is corrected in place. ctx only carries the
// trace span.
func Generate(ctx context.Context, rng RNG, floor int, biome world.Biome) *world.Map {
	return GenerateWithConfig(ctx, rng, floor, gamedata.Biome(biome))
}

// GenerateWithConfig is Generate with explicit biome dials.
func GenerateWithConfig(ctx context.Context, rng RNG, floor int, cfg gamedata.BiomeConfig) *world.Map {
	_, span := telemetry.Tracer("dungeon").Start(ctx, "dungeon.generate",
		trace.WithAttributes(
			attribute.Int("floor", floor),
			attribute.String("biome", cfg.Biome.String()),
		),
	)
	defer span.End()
	began := time.Now()

	kind := KindRooms
	if chance(rng, cfg.CaveRatio) {
		kind = KindCaves
	}

	var m *world.Map
	rooms := 0
	switch kind {
	case KindCaves:
		m = GenerateCaves(rng, floor, cfg)
	default:
		var placed []world.Room
		m, placed = generateRooms(rng, floor, cfg)
		rooms = len(placed)
	}

	stats := finalize(m, rng, cfg)
	shrines := countShrines(m)
	elapsed := time.Since(began)

	span.SetAttributes(
		attribute.String("generator", kind.String()),
		attribute.Int("rooms", rooms),
		attribute.Int("shrines", shrines),
		attribute.Int("elite_rooms", len(m.EliteRooms)),
		attribute.Int("hazards", stats.hazards),
		attribute.Int("decorations", stats.decorations),
		attribute.Int64("duration_us", elapsed.Microseconds()),
	)

	logger.Info("floor generated",
		"floor", floor,
		"biome", cfg.Biome.String(),
		"generator", kind.String(),
		"rooms", rooms,
		"shrines", shrines,
		"hazards", stats.hazards,
		"decorations", stats.decorations,
		"duration", elapsed,
	)
	return m
}

type passStats struct {
	hazards     int
	decorations int
}

// finalize runs the post-generation passes in their required order. The
// second stairs check repairs an exit lost to the hazard or decoration pass.
func finalize(m *world.Map, rng RNG, cfg gamedata.BiomeConfig) passStats {
	EnsureStairsExist(m)
	stats := passStats{
		hazards:     applyHazards(m, rng, cfg.Hazard, cfg.HazardChance),
		decorations: applyDecorations(m, rng, cfg.Decorations, cfg.DecorationDensity),
	}
	EnsureStairsExist(m)
	ApplyLighting(m, cfg.LightModifier)
	return stats
}

// EnsureStairsExist guarantees the map has a down staircase at Exit. When
// the exit is missing or was overwritten, the walkable tile farthest from
// the start becomes the exit; with no walkable tile at all, the map center
// is forced. Tiles connected to the start are preferred when there are any.
func EnsureStairsExist(m *world.Map) {
	if m.HasValidExit() {
		return
	}

	connected := Reachable(m, m.Start)
	restrict := connected.Len() > 1

	best, bestDist := world.Position{}, -1
	for i := range m.Tiles {
		p := m.PositionAt(i)
		if !m.Tiles[i].IsWalkable() || m.IsStart(p) {
			continue
		}
		if restrict && !connected.Contains(p) {
			continue
		}
		if d := p.DistanceSquared(m.Start); d > bestDist {
			best, bestDist = p, d
		}
	}

	if bestDist < 0 {
		best = world.Pos(m.Width/2, m.Height/2)
		logger.Warning("no walkable tiles, forcing exit at center", "floor", m.Floor, "exit", best)
	} else {
		logger.Debug("exit missing, relocated to farthest tile", "floor", m.Floor, "exit", best)
	}
	m.SetExit(best)
}

// hazardEligible reports whether a hazard may replace the tile at i.
func hazardEligible(m *world.Map, i int) bool {
	t := m.Tiles[i].Type
	if !t.IsGround() && !t.IsDecoration() {
		return false
	}
	p := m.PositionAt(i)
	return !m.IsStart(p) && !m.IsExit(p)
}

func applyHazards(m *world.Map, rng RNG, hazard world.TileType, p float64) int {
	if p <= 0 || !hazard.IsHazard() {
		return 0
	}
	placed := 0
	for i := range m.Tiles {
		if !hazardEligible(m, i) {
			continue
		}
		if chance(rng, p) {
			m.Tiles[i].Type = hazard
			m.Tiles[i].Glyph = 0
			placed++
		}
	}
	return placed
}

func applyDecorations(m *world.Map, rng RNG, palette []world.TileType, density float64) int {
	if len(palette) == 0 || density <= 0 {
		return 0
	}
	placed := 0
	for i := range m.Tiles {
		t := &m.Tiles[i]
		if !t.Type.IsGround() || t.Glyph != 0 {
			continue
		}
		p := m.PositionAt(i)
		if m.IsStart(p) || m.IsExit(p) {
			continue
		}
		if chance(rng, density) {
			t.Type = palette[rng.Intn(len(palette))]
			placed++
		}
	}
	return placed
}

func countShrines(m *world.Map) int {
	n := 0
	for i := range m.Tiles {
		if m.Tiles[i].Type.IsShrine() {
			n++
		}
	}
	return n
}
