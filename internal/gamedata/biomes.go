package gamedata

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/delvecore/internal/world"
)

// BiomeDef is a biome entry as written in biomes.yaml.
type BiomeDef struct {
	ID                string   `yaml:"id"`
	CaveRatio         float64  `yaml:"cave_ratio"`
	Hazard            string   `yaml:"hazard"`
	HazardChance      float64  `yaml:"hazard_chance"`
	Decorations       []string `yaml:"decorations"`
	DecorationDensity float64  `yaml:"decoration_density"`
	LightModifier     float64  `yaml:"light_modifier"`
	MinRoomSize       int      `yaml:"min_room_size"`
	MaxRoomSize       int      `yaml:"max_room_size"`
	Tint              string   `yaml:"tint"`
}

// BiomesFile represents the structure of biomes.yaml.
type BiomesFile struct {
	Biomes []BiomeDef `yaml:"biomes"`
}

// BiomeConfig holds the generation dials for one biome. It is read-only
// once loaded.
type BiomeConfig struct {
	Biome world.Biome

	// CaveRatio is the chance of using the cave generator: 0 = always
	// rooms, 1 = always caves.
	CaveRatio float64

	Hazard       world.TileType
	HazardChance float64

	// Decorations is the palette decorations are drawn from, in order.
	Decorations       []world.TileType
	DecorationDensity float64

	LightModifier float64

	MinRoomSize int
	MaxRoomSize int

	Tint tcell.Color
}

// Config converts the YAML definition into a BiomeConfig.
func (d *BiomeDef) Config() (BiomeConfig, error) {
	biome, err := world.ParseBiome(d.ID)
	if err != nil {
		return BiomeConfig{}, err
	}

	hazard, err := world.ParseTileType(d.Hazard)
	if err != nil {
		return BiomeConfig{}, fmt.Errorf("biome %s hazard: %w", d.ID, err)
	}
	if !hazard.IsHazard() {
		return BiomeConfig{}, fmt.Errorf("biome %s: %s is not a hazard tile", d.ID, hazard)
	}

	decorations := make([]world.TileType, 0, len(d.Decorations))
	for _, name := range d.Decorations {
		t, err := world.ParseTileType(name)
		if err != nil {
			return BiomeConfig{}, fmt.Errorf("biome %s decoration: %w", d.ID, err)
		}
		if !t.IsDecoration() {
			return BiomeConfig{}, fmt.Errorf("biome %s: %s is not a decoration tile", d.ID, t)
		}
		decorations = append(decorations, t)
	}

	if d.MinRoomSize < 3 || d.MaxRoomSize < d.MinRoomSize {
		return BiomeConfig{}, fmt.Errorf("biome %s: invalid room size range %d..%d", d.ID, d.MinRoomSize, d.MaxRoomSize)
	}

	tint, err := ParseHexColor(d.Tint)
	if err != nil {
		return BiomeConfig{}, fmt.Errorf("biome %s tint: %w", d.ID, err)
	}

	return BiomeConfig{
		Biome:             biome,
		CaveRatio:         d.CaveRatio,
		Hazard:            hazard,
		HazardChance:      d.HazardChance,
		Decorations:       decorations,
		DecorationDensity: d.DecorationDensity,
		LightModifier:     d.LightModifier,
		MinRoomSize:       d.MinRoomSize,
		MaxRoomSize:       d.MaxRoomSize,
		Tint:              tint,
	}, nil
}

// BiomeRegistry holds the loaded biome configurations.
type BiomeRegistry struct {
	configs map[world.Biome]BiomeConfig
}

// NewBiomeRegistry validates and indexes biome definitions. Every biome in
// world.AllBiomes must be present.
func NewBiomeRegistry(defs []BiomeDef) (*BiomeRegistry, error) {
	registry := &BiomeRegistry{configs: make(map[world.Biome]BiomeConfig, len(defs))}
	for i := range defs {
		cfg, err := defs[i].Config()
		if err != nil {
			return nil, err
		}
		registry.configs[cfg.Biome] = cfg
	}
	for _, b := range world.AllBiomes() {
		if _, ok := registry.configs[b]; !ok {
			return nil, fmt.Errorf("biome %s missing from biomes.yaml", b)
		}
	}
	return registry, nil
}

// LoadBiomeRegistry loads and creates a registry from the embedded biomes.yaml.
func LoadBiomeRegistry() (*BiomeRegistry, error) {
	file, err := Load[BiomesFile]("biomes.yaml")
	if err != nil {
		return nil, err
	}
	if len(file.Biomes) == 0 {
		return nil, errors.New("no biomes loaded from biomes.yaml")
	}
	return NewBiomeRegistry(file.Biomes)
}

// MustLoadBiomeRegistry loads a registry, panicking on error.
func MustLoadBiomeRegistry() *BiomeRegistry {
	registry, err := LoadBiomeRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Get returns the configuration for a biome.
func (r *BiomeRegistry) Get(b world.Biome) BiomeConfig {
	return r.configs[b]
}

// Count returns the number of biomes in the registry.
func (r *BiomeRegistry) Count() int {
	return len(r.configs)
}

var defaultBiomes = MustLoadBiomeRegistry()

// Biome returns the embedded configuration for b.
func Biome(b world.Biome) BiomeConfig {
	return defaultBiomes.Get(b)
}
