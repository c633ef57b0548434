package dungeon

import (
	"github.com/samdwyer/delvecore/internal/world"
)

const ambientLight = 0.2

// ApplyLighting recomputes LightLevel for every tile: an ambient base
// scaled by modifier, raised by linear falloff around each light source.
// Levels are clamped to [0, 1].
func ApplyLighting(m *world.Map, modifier float64) {
	ambient := clamp01(ambientLight * modifier)
	for i := range m.Tiles {
		m.Tiles[i].LightLevel = ambient
	}

	for i := range m.Tiles {
		radius := m.Tiles[i].Type.LightRadius()
		if radius == 0 {
			continue
		}
		src := m.PositionAt(i)
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				p := src.Add(dx, dy)
				t := m.Tile(p)
				if t == nil {
					continue
				}
				d := src.Distance(p)
				if d > float64(radius) {
					continue
				}
				level := clamp01((1 - d/float64(radius+1)) * modifier)
				if level > t.LightLevel {
					t.LightLevel = level
				}
			}
		}
	}
}

func clamp01(v float64) float64 {
	return max(0, min(v, 1))
}
