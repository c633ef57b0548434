package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/delvecore/internal/entity"
	"github.com/samdwyer/delvecore/internal/gamedata"
	"github.com/samdwyer/delvecore/internal/world"
)

// statusLines is the number of rows reserved below the map.
const statusLines = 2

// brightLight is the light level at which visible tiles are drawn bold.
const brightLight = 0.6

// View is everything the renderer needs for one frame.
type View struct {
	Map     *world.Map
	Player  *entity.Player
	Status  string
	Message string
	// RevealAll draws every tile regardless of visibility.
	RevealAll bool
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the floor, the player and the status lines.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	width, height := r.screen.Size()
	viewH := max(height-statusLines, 1)
	ox, oy := Camera(v.Player.Pos, v.Map.Width, v.Map.Height, width, viewH)
	tint := gamedata.Biome(v.Map.Biome).Tint

	for sy := 0; sy < viewH; sy++ {
		for sx := 0; sx < width; sx++ {
			tile := v.Map.Tile(world.Pos(sx+ox, sy+oy))
			if tile == nil {
				continue
			}
			style, ok := TileStyle(*tile, tint, v.RevealAll)
			if !ok {
				continue
			}
			r.screen.SetContent(sx, sy, tile.Rune(), style)
		}
	}

	playerStyle := tcell.StyleDefault.
		Foreground(tcell.ColorYellow).
		Bold(true)
	r.screen.SetContent(v.Player.Pos.X-ox, v.Player.Pos.Y-oy, v.Player.Symbol, playerStyle)

	r.RenderMessage(v.Status, viewH)
	r.RenderMessage(v.Message, viewH+1)

	r.screen.Show()
}

// Camera returns the map offset that keeps focus on screen, clamped so the
// view never scrolls past the map edge.
func Camera(focus world.Position, mapW, mapH, viewW, viewH int) (x, y int) {
	return clampOffset(focus.X-viewW/2, mapW-viewW), clampOffset(focus.Y-viewH/2, mapH-viewH)
}

func clampOffset(v, limit int) int {
	return max(0, min(v, limit))
}

// TileStyle returns the style for a tile and whether it should be drawn at
// all. Visible tiles use their palette color, with walls and ground taking
// the biome tint; remembered tiles are drawn dim; unexplored tiles are not
// drawn unless reveal is set.
func TileStyle(tile world.Tile, tint tcell.Color, reveal bool) (tcell.Style, bool) {
	switch {
	case tile.Visible || reveal:
	case tile.Explored:
		return tcell.StyleDefault.Foreground(tcell.ColorDimGray), true
	default:
		return tcell.StyleDefault, false
	}

	color := gamedata.TileColor(tile.Type)
	if color == tcell.ColorDefault {
		color = tint
		if tile.Type.IsGround() {
			color = tcell.ColorGray
		}
	}
	style := tcell.StyleDefault.Foreground(color)
	if tile.Visible && tile.LightLevel >= brightLight {
		style = style.Bold(true)
	}
	return style, true
}

// RenderMessage displays a message on row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}
