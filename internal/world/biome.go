package world

import "fmt"

// Biome is the visual and gameplay theme of a floor.
type Biome uint8

const (
	BiomeCrypt Biome = iota
	BiomeCaverns
	BiomeInferno
	BiomeBlight
)

// String returns a human-readable biome name.
func (b Biome) String() string {
	switch b {
	case BiomeCrypt:
		return "crypt"
	case BiomeCaverns:
		return "caverns"
	case BiomeInferno:
		return "inferno"
	case BiomeBlight:
		return "blight"
	default:
		return "unknown"
	}
}

// ParseBiome returns the biome with the given String name.
func ParseBiome(name string) (Biome, error) {
	for _, b := range AllBiomes() {
		if b.String() == name {
			return b, nil
		}
	}
	return BiomeCrypt, fmt.Errorf("unknown biome %q", name)
}

// AllBiomes returns every biome in progression order.
func AllBiomes() []Biome {
	return []Biome{BiomeCrypt, BiomeCaverns, BiomeInferno, BiomeBlight}
}

// BiomeForFloor picks the biome a floor number belongs to.
// Floors 1-3 are crypts, 4-6 caverns, 7-9 inferno, everything deeper is blight.
func BiomeForFloor(floor int) Biome {
	switch {
	case floor <= 3:
		return BiomeCrypt
	case floor <= 6:
		return BiomeCaverns
	case floor <= 9:
		return BiomeInferno
	default:
		return BiomeBlight
	}
}
