package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/delvecore/internal/world"
)

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewRGBColor(int32(rgb>>16&0xFF), int32(rgb>>8&0xFF), int32(rgb&0xFF)), nil
}

// MustParseHexColor converts a hex color string to tcell.Color, panicking on error.
func MustParseHexColor(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return color
}

// TileColor returns the foreground color a tile type is drawn with.
// Ground and walls return tcell.ColorDefault so the biome tint applies.
func TileColor(t world.TileType) tcell.Color {
	switch t {
	case world.TileWall, world.TileFloor, world.TileCorridor:
		return tcell.ColorDefault
	case world.TileLava:
		return tcell.ColorOrangeRed
	case world.TilePit:
		return tcell.ColorDarkSlateGray
	case world.TileCorruption:
		return tcell.ColorDarkMagenta
	case world.TileDoorClosed, world.TileDoorOpen:
		return tcell.ColorSaddleBrown
	case world.TileStairsUp, world.TileStairsDown:
		return tcell.ColorWhite
	case world.TileBones:
		return tcell.ColorIvory
	case world.TileBloodStain:
		return tcell.ColorDarkRed
	case world.TileRubble:
		return tcell.ColorGray
	case world.TileCobweb:
		return tcell.ColorSilver
	case world.TileMoss:
		return tcell.ColorDarkGreen
	case world.TilePuddle:
		return tcell.ColorSteelBlue
	case world.TileBrazier, world.TileTorch:
		return tcell.ColorGold
	case world.TileShrineRest:
		return tcell.ColorLightGreen
	case world.TileShrineSkill:
		return tcell.ColorLightSkyBlue
	case world.TileShrineEnchanting:
		return tcell.ColorViolet
	case world.TileShrineCorruption:
		return tcell.ColorCrimson
	default:
		return tcell.ColorDefault
	}
}
