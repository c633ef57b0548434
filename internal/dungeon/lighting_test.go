package dungeon

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/samdwyer/delvecore/internal/world"
)

func TestApplyLightingFalloff(t *testing.T) {
	m := openMap(30, 30)
	m.SetType(world.Pos(15, 15), world.TileBrazier)

	ApplyLighting(m, 1)

	assert.InDelta(t, 1.0, m.Tile(world.Pos(15, 15)).LightLevel, 1e-9)
	assert.InDelta(t, 1-3.0/7, m.Tile(world.Pos(15, 18)).LightLevel, 1e-9)
	// Falloff below ambient keeps the ambient level.
	assert.InDelta(t, ambientLight, m.Tile(world.Pos(15, 21)).LightLevel, 1e-9)
	assert.InDelta(t, ambientLight, m.Tile(world.Pos(2, 2)).LightLevel, 1e-9)
}

func TestApplyLightingModifierAndClamp(t *testing.T) {
	m := openMap(20, 20)
	m.SetType(world.Pos(10, 10), world.TileTorch)

	ApplyLighting(m, 2)
	assert.InDelta(t, 1.0, m.Tile(world.Pos(10, 10)).LightLevel, 1e-9, "clamped to 1")
	assert.InDelta(t, 0.4, m.Tile(world.Pos(1, 1)).LightLevel, 1e-9)

	ApplyLighting(m, 0)
	for i := range m.Tiles {
		assert.Zero(t, m.Tiles[i].LightLevel)
	}
}

func TestApplyLightingOverlappingSourcesTakeBrightest(t *testing.T) {
	m := openMap(20, 10)
	m.SetType(world.Pos(5, 5), world.TileTorch)
	m.SetType(world.Pos(8, 5), world.TileBrazier)

	ApplyLighting(m, 1)

	// (6,5): torch d=1 -> 0.8, brazier d=2 -> 5/7.
	assert.InDelta(t, 0.8, m.Tile(world.Pos(6, 5)).LightLevel, 1e-9)
}
