package game

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/delvecore/internal/config"
	"github.com/samdwyer/delvecore/internal/dungeon"
	"github.com/samdwyer/delvecore/internal/world"
)

func testGame(t *testing.T) *Game {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Seed = 20240611
	g := newGame(cfg, "test-session")
	g.enterFloor(context.Background(), cfg.StartFloor)
	return g
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateExplore, "explore"},
		{StateOverview, "overview"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}
}

func TestEnterFloorPlacesPlayerOnStart(t *testing.T) {
	g := testGame(t)

	if g.player.Pos != g.level.Start {
		t.Errorf("player at %v, want start %v", g.player.Pos, g.level.Start)
	}
	if !g.level.Tile(g.player.Pos).Visible {
		t.Error("player tile should be visible after entering a floor")
	}
	if len(g.visible) == 0 || g.visible[0] != g.player.Pos {
		t.Errorf("visible list should start at the player, got %v", g.visible)
	}
	if g.level.Biome != world.BiomeForFloor(1) {
		t.Errorf("floor 1 biome = %s", g.level.Biome)
	}
}

func TestSameSeedSameFloor(t *testing.T) {
	a, b := testGame(t), testGame(t)
	if a.level.Start != b.level.Start || *a.level.Exit != *b.level.Exit {
		t.Error("games with the same seed should generate the same first floor")
	}
}

func TestTryMoveBlockedByWall(t *testing.T) {
	g := testGame(t)

	// Walk west until blocked; the floor is bounded, so this terminates.
	for i := 0; i < g.level.Width && g.tryMove(context.Background(), -1, 0); i++ {
	}

	before := g.player.Pos
	if g.tryMove(context.Background(), -1, 0) {
		t.Fatal("expected the move to be blocked")
	}
	if g.player.Pos != before {
		t.Errorf("blocked move changed position %v -> %v", before, g.player.Pos)
	}
	if g.level.IsWalkable(before.Add(-1, 0)) {
		t.Error("blocked move should only happen against an unwalkable tile")
	}
}

func TestTryMoveUpdatesFOV(t *testing.T) {
	g := testGame(t)

	for _, d := range world.Cardinal {
		if g.tryMove(context.Background(), d.X, d.Y) {
			if !g.level.Tile(g.player.Pos).Visible {
				t.Error("new position should be visible")
			}
			if g.player.Steps != 1 {
				t.Errorf("steps = %d, want 1", g.player.Steps)
			}
			return
		}
	}
	t.Fatal("player could not move in any direction from the start")
}

func TestBumpOpensDoor(t *testing.T) {
	g := testGame(t)
	door := g.player.Pos.Add(1, 0)
	g.level.SetType(door, world.TileDoorClosed)

	if g.tryMove(context.Background(), 1, 0) {
		t.Error("bumping a door should not move the player")
	}
	if got := g.level.TypeAt(door); got != world.TileDoorOpen {
		t.Errorf("door = %s, want door_open", got)
	}
}

func TestDescendRequiresStairs(t *testing.T) {
	g := testGame(t)

	if g.descend(context.Background()) {
		t.Fatal("descend should fail away from the exit")
	}
	if g.floor != 1 {
		t.Errorf("floor = %d, want 1", g.floor)
	}

	g.player.MoveTo(*g.level.Exit)
	if !g.descend(context.Background()) {
		t.Fatal("descend should succeed on the exit")
	}
	if g.floor != 2 {
		t.Errorf("floor = %d, want 2", g.floor)
	}
	if g.player.Pos != g.level.Start || g.player.Steps != 0 {
		t.Errorf("player not reset onto the new floor: %+v", g.player)
	}
	if got := g.level.TypeAt(g.level.Start); got != world.TileStairsUp {
		t.Errorf("arrival tile = %s, want stairs_up", got)
	}
	if !dungeon.IsSolvable(g.level) {
		t.Error("new floor should be solvable")
	}
}

func TestApplyCommands(t *testing.T) {
	g := testGame(t)
	ctx := context.Background()

	g.apply(ctx, CmdToggleOverview)
	if g.state != StateOverview || !g.view().RevealAll {
		t.Error("overview toggle should reveal the whole map")
	}
	g.apply(ctx, CmdToggleOverview)
	if g.state != StateExplore {
		t.Error("second toggle should return to explore")
	}

	g.apply(ctx, CmdQuit)
	if g.running {
		t.Error("quit should stop the loop")
	}
}

func TestCommandFor(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want Command
	}{
		{tcell.KeyEscape, 0, CmdQuit},
		{tcell.KeyCtrlC, 0, CmdQuit},
		{tcell.KeyUp, 0, CmdMoveNorth},
		{tcell.KeyRight, 0, CmdMoveEast},
		{tcell.KeyRune, 'j', CmdMoveSouth},
		{tcell.KeyRune, 'h', CmdMoveWest},
		{tcell.KeyRune, '>', CmdDescend},
		{tcell.KeyRune, 'm', CmdToggleOverview},
		{tcell.KeyRune, 'z', CmdNone},
	}

	for _, tt := range tests {
		if got := commandFor(tt.key, tt.r); got != tt.want {
			t.Errorf("commandFor(%v, %q) = %d, want %d", tt.key, tt.r, got, tt.want)
		}
	}
}

func TestDescribe(t *testing.T) {
	if describe(world.TileFloor) != "" {
		t.Error("plain floor has no description")
	}
	for _, typ := range world.AllTileTypes() {
		if typ.IsShrine() && describe(typ) == "" {
			t.Errorf("shrine %s has no description", typ)
		}
	}
}
