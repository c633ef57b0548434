package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/delvecore/internal/entity"
	"github.com/samdwyer/delvecore/internal/world"
)

func TestCamera(t *testing.T) {
	tests := []struct {
		name  string
		focus world.Position
		wantX int
		wantY int
	}{
		{"top left clamps to origin", world.Pos(2, 2), 0, 0},
		{"centered", world.Pos(40, 25), 30, 20},
		{"bottom right clamps to edge", world.Pos(79, 49), 60, 40},
	}
	for _, tt := range tests {
		x, y := Camera(tt.focus, 80, 50, 20, 10)
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("%s: Camera = (%d,%d), want (%d,%d)", tt.name, x, y, tt.wantX, tt.wantY)
		}
	}

	// A view larger than the map never scrolls.
	if x, y := Camera(world.Pos(70, 40), 80, 50, 120, 60); x != 0 || y != 0 {
		t.Errorf("Camera on a large view = (%d,%d), want (0,0)", x, y)
	}
}

func TestTileStyle(t *testing.T) {
	tint := tcell.ColorPurple

	if _, ok := TileStyle(world.NewTile(world.TileFloor), tint, false); ok {
		t.Error("unexplored tiles should not be drawn")
	}

	remembered := world.Tile{Type: world.TileLava, Explored: true}
	style, ok := TileStyle(remembered, tint, false)
	if !ok || style != tcell.StyleDefault.Foreground(tcell.ColorDimGray) {
		t.Errorf("remembered tile style = %v, %v", style, ok)
	}

	wall := world.Tile{Type: world.TileWall, Visible: true, Explored: true}
	style, _ = TileStyle(wall, tint, false)
	if fg, _, _ := style.Decompose(); fg != tint {
		t.Errorf("visible wall fg = %v, want biome tint", fg)
	}

	lava := world.Tile{Type: world.TileLava, Visible: true, LightLevel: 1}
	style, _ = TileStyle(lava, tint, false)
	if fg, _, attrs := style.Decompose(); fg != tcell.ColorOrangeRed || attrs&tcell.AttrBold == 0 {
		t.Errorf("lit lava style = %v", style)
	}

	if _, ok := TileStyle(world.NewTile(world.TileShrineRest), tint, true); !ok {
		t.Error("reveal should draw unexplored tiles")
	}
}

func TestRenderDrawsVisibleTilesAndPlayer(t *testing.T) {
	screen, err := NewSimulationScreen(20, 12)
	if err != nil {
		t.Fatalf("NewSimulationScreen: %v", err)
	}
	defer screen.Close()

	m := world.NewMap(20, 10, 1, world.BiomeCrypt)
	for x := 1; x < 19; x++ {
		m.SetType(world.Pos(x, 5), world.TileFloor)
	}
	m.SetExit(world.Pos(18, 5))
	m.Tile(world.Pos(18, 5)).Visible = true
	m.Tile(world.Pos(1, 5)).Explored = true

	NewRenderer(screen).Render(View{
		Map:     m,
		Player:  entity.NewPlayer(world.Pos(3, 5)),
		Status:  "Floor 1",
		Message: "hello",
	})

	if got := screen.RuneAt(3, 5); got != '@' {
		t.Errorf("player cell = %q, want '@'", got)
	}
	if got := screen.RuneAt(18, 5); got != '>' {
		t.Errorf("exit cell = %q, want '>'", got)
	}
	if got := screen.RuneAt(1, 5); got != '.' {
		t.Errorf("remembered floor = %q, want '.'", got)
	}
	if got := screen.RuneAt(10, 5); got == '.' {
		t.Error("unexplored floor should not be drawn")
	}
	if got := screen.RuneAt(0, 10); got != 'F' {
		t.Errorf("status line starts with %q, want 'F'", got)
	}
	if got := screen.RuneAt(0, 11); got != 'h' {
		t.Errorf("message line starts with %q, want 'h'", got)
	}
}
