package dungeon

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/samdwyer/delvecore/internal/gamedata"
	"github.com/samdwyer/delvecore/internal/world"
)

// fixedRNG always draws the same values and never shuffles.
type fixedRNG struct{ f float64 }

func (fixedRNG) Intn(int) int                { return 0 }
func (r fixedRNG) Float64() float64          { return r.f }
func (fixedRNG) Shuffle(int, func(i, j int)) {}

// openMap returns a w x h map whose interior is all floor.
func openMap(w, h int) *world.Map {
	m := world.NewMap(w, h, 1, world.BiomeCrypt)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			m.SetType(world.Pos(x, y), world.TileFloor)
		}
	}
	return m
}

func TestGenerateReproducibility(t *testing.T) {
	seed := int64(12345)
	ctx := context.Background()

	for _, biome := range world.AllBiomes() {
		m1 := Generate(ctx, rand.New(rand.NewSource(seed)), 4, biome)
		m2 := Generate(ctx, rand.New(rand.NewSource(seed)), 4, biome)

		if m1.Start != m2.Start {
			t.Errorf("%s: start mismatch: %v != %v", biome, m1.Start, m2.Start)
		}
		if *m1.Exit != *m2.Exit {
			t.Errorf("%s: exit mismatch: %v != %v", biome, *m1.Exit, *m2.Exit)
		}
		for i := range m1.Tiles {
			if m1.Tiles[i] != m2.Tiles[i] {
				t.Fatalf("%s: tile mismatch at %v: %v != %v",
					biome, m1.PositionAt(i), m1.Tiles[i].Type, m2.Tiles[i].Type)
			}
		}
	}
}

func TestGenerateDifferentSeeds(t *testing.T) {
	ctx := context.Background()
	m1 := Generate(ctx, rand.New(rand.NewSource(12345)), 1, world.BiomeCrypt)
	m2 := Generate(ctx, rand.New(rand.NewSource(54321)), 1, world.BiomeCrypt)

	identical := m1.Start == m2.Start
	if identical {
		for i := range m1.Tiles {
			if m1.Tiles[i].Type != m2.Tiles[i].Type {
				identical = false
				break
			}
		}
	}
	if identical {
		t.Error("floors with different seeds should not be identical")
	}
}

func TestGeneratedFloorInvariants(t *testing.T) {
	seeds := 20
	if testing.Short() {
		seeds = 4
	}
	ctx := context.Background()

	for _, biome := range world.AllBiomes() {
		for _, floor := range []int{1, 3, 5, 8, 12} {
			for seed := 1; seed <= seeds; seed++ {
				m := Generate(ctx, rand.New(rand.NewSource(int64(seed))), floor, biome)

				require.NotNil(t, m.Exit, "%s floor %d seed %d: exit unset", biome, floor, seed)
				assert.Equal(t, world.TileStairsDown, m.TypeAt(*m.Exit),
					"%s floor %d seed %d", biome, floor, seed)
				assert.True(t, m.IsWalkable(m.Start), "%s floor %d seed %d: start not walkable", biome, floor, seed)
				assert.True(t, IsSolvable(m), "%s floor %d seed %d: exit unreachable", biome, floor, seed)
				assertUniqueShrines(t, m)
				assertLightInRange(t, m)

				if floor > 1 {
					assert.Equal(t, world.TileStairsUp, m.TypeAt(m.Start))
				}
			}
		}
	}
}

func TestGeneratorShrineSpacing(t *testing.T) {
	for _, biome := range world.AllBiomes() {
		cfg := gamedata.Biome(biome)
		for seed := int64(1); seed <= 15; seed++ {
			rooms, _ := generateRooms(rand.New(rand.NewSource(seed)), 6, cfg)
			finalize(rooms, rand.New(rand.NewSource(seed)), cfg)
			assertShrineSpacing(t, rooms, roomShrineSpacing)

			caves := GenerateCaves(rand.New(rand.NewSource(seed)), 6, cfg)
			finalize(caves, rand.New(rand.NewSource(seed)), cfg)
			assertShrineSpacing(t, caves, caveShrineSpacing)
			assert.True(t, IsSolvable(caves), "%s seed %d: cave exit unreachable", biome, seed)
		}
	}
}

func shrines(m *world.Map) []world.Position {
	var found []world.Position
	for i := range m.Tiles {
		if m.Tiles[i].Type.IsShrine() {
			found = append(found, m.PositionAt(i))
		}
	}
	return found
}

func assertUniqueShrines(t *testing.T, m *world.Map) {
	t.Helper()
	seen := make(map[world.TileType]world.Position)
	for _, p := range shrines(m) {
		typ := m.TypeAt(p)
		if prev, ok := seen[typ]; ok {
			t.Errorf("floor %d: two %s at %v and %v", m.Floor, typ, prev, p)
		}
		seen[typ] = p
	}
	assert.LessOrEqual(t, len(seen), maxShrinesPerFloor)
}

func assertShrineSpacing(t *testing.T, m *world.Map, spacing float64) {
	t.Helper()
	placed := shrines(m)
	for i := range placed {
		for j := i + 1; j < len(placed); j++ {
			assert.GreaterOrEqual(t, placed[i].Distance(placed[j]), spacing,
				"shrines %v and %v too close", placed[i], placed[j])
		}
	}
}

func assertLightInRange(t *testing.T, m *world.Map) {
	t.Helper()
	for i := range m.Tiles {
		if l := m.Tiles[i].LightLevel; l < 0 || l > 1 {
			t.Fatalf("light level %v at %v out of range", l, m.PositionAt(i))
		}
	}
}

func TestHazardPassNeverKeepsExitBuried(t *testing.T) {
	m := openMap(12, 12)
	m.Start = world.Pos(1, 1)
	m.SetExit(world.Pos(10, 10))

	cfg := gamedata.Biome(world.BiomeInferno)
	cfg.HazardChance = 1
	cfg.DecorationDensity = 0

	stats := finalize(m, rand.New(rand.NewSource(7)), cfg)

	assert.Equal(t, world.TileStairsDown, m.TypeAt(world.Pos(10, 10)))
	assert.Equal(t, world.Pos(10, 10), *m.Exit)
	assert.Equal(t, world.TileFloor, m.TypeAt(m.Start))
	assert.Equal(t, world.TileLava, m.TypeAt(world.Pos(5, 5)))
	assert.Equal(t, 100-2, stats.hazards)
	assert.True(t, IsSolvable(m))
}

func TestEnsureStairsExistRepairsOverwrittenExit(t *testing.T) {
	m := openMap(12, 12)
	m.Start = world.Pos(1, 1)
	m.SetExit(world.Pos(10, 10))

	// Simulate a pass that ignored the exit.
	m.SetType(world.Pos(10, 10), world.TileLava)
	require.False(t, m.HasValidExit())

	EnsureStairsExist(m)

	require.True(t, m.HasValidExit())
	assert.Equal(t, world.Pos(10, 10), *m.Exit)
	assert.True(t, IsSolvable(m))
}

func TestEnsureStairsExistPicksFarthestTile(t *testing.T) {
	m := openMap(12, 8)
	m.Start = world.Pos(2, 2)

	EnsureStairsExist(m)

	require.NotNil(t, m.Exit)
	assert.Equal(t, world.Pos(10, 6), *m.Exit)
	assert.Equal(t, world.TileStairsDown, m.TypeAt(world.Pos(10, 6)))
}

func TestEnsureStairsExistPrefersConnectedTiles(t *testing.T) {
	m := world.NewMap(30, 10, 1, world.BiomeCrypt)
	for x := 1; x <= 5; x++ {
		m.SetType(world.Pos(x, 5), world.TileFloor)
	}
	// Unreachable pocket farther away.
	m.SetType(world.Pos(28, 8), world.TileFloor)
	m.Start = world.Pos(1, 5)

	EnsureStairsExist(m)

	assert.Equal(t, world.Pos(5, 5), *m.Exit)
	assert.True(t, IsSolvable(m))
}

func TestEnsureStairsExistSolidRock(t *testing.T) {
	m := world.NewMap(20, 10, 1, world.BiomeCrypt)

	EnsureStairsExist(m)

	require.NotNil(t, m.Exit)
	assert.Equal(t, world.Pos(10, 5), *m.Exit)
	assert.Equal(t, world.TileStairsDown, m.TypeAt(world.Pos(10, 5)))
}

func TestApplyDecorationsSkipsSpecialTiles(t *testing.T) {
	m := openMap(10, 10)
	m.Start = world.Pos(1, 1)
	m.SetExit(world.Pos(8, 8))
	m.SetType(world.Pos(4, 4), world.TileShrineRest)
	m.Tile(world.Pos(2, 2)).Glyph = eliteGlyph

	placed := applyDecorations(m, rand.New(rand.NewSource(1)), []world.TileType{world.TileBones}, 1)

	assert.Equal(t, 64-4, placed)
	assert.Equal(t, world.TileFloor, m.TypeAt(m.Start))
	assert.Equal(t, world.TileStairsDown, m.TypeAt(world.Pos(8, 8)))
	assert.Equal(t, world.TileShrineRest, m.TypeAt(world.Pos(4, 4)))
	assert.Equal(t, world.TileFloor, m.TypeAt(world.Pos(2, 2)))
	assert.Equal(t, world.TileBones, m.TypeAt(world.Pos(5, 5)))
}

func TestGenerateRecordsSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	defer otel.SetTracerProvider(prev)

	cfg := gamedata.Biome(world.BiomeCaverns)
	cfg.CaveRatio = 1
	GenerateWithConfig(context.Background(), rand.New(rand.NewSource(3)), 2, cfg)

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "dungeon.generate", ended[0].Name())

	attrs := make(map[attribute.Key]attribute.Value)
	for _, kv := range ended[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, "caves", attrs["generator"].AsString())
	assert.Equal(t, "caverns", attrs["biome"].AsString())
	assert.Equal(t, int64(2), attrs["floor"].AsInt64())
	assert.Equal(t, int64(0), attrs["rooms"].AsInt64())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "rooms", KindRooms.String())
	assert.Equal(t, "caves", KindCaves.String())
	assert.Equal(t, "unknown", Kind(9).String())
}
