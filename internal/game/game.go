package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/delvecore/internal/config"
	"github.com/samdwyer/delvecore/internal/dungeon"
	"github.com/samdwyer/delvecore/internal/entity"
	"github.com/samdwyer/delvecore/internal/fov"
	"github.com/samdwyer/delvecore/internal/logger"
	"github.com/samdwyer/delvecore/internal/telemetry"
	"github.com/samdwyer/delvecore/internal/ui"
	"github.com/samdwyer/delvecore/internal/world"
)

// Game holds the entire game state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	tracer   trace.Tracer

	sessionID string
	seed      int64
	rng       *rand.Rand
	fovRadius int

	floor   int
	level   *world.Map
	player  *entity.Player
	visible []world.Position
	state   State
	message string
	running bool
}

// New creates a new game instance bound to the terminal.
func New(cfg *config.Config, sessionID string) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	g := newGame(cfg, sessionID)
	g.screen = screen
	g.renderer = ui.NewRenderer(screen)
	return g, nil
}

// newGame builds the game state without a terminal.
func newGame(cfg *config.Config, sessionID string) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Game{
		tracer:    telemetry.Tracer("game"),
		sessionID: sessionID,
		seed:      seed,
		rng:       rand.New(rand.NewSource(seed)),
		fovRadius: cfg.FOVRadius,
		floor:     cfg.StartFloor,
		state:     StateExplore,
		running:   true,
	}
}

// Seed returns the seed the run was generated from.
func (g *Game) Seed() int64 {
	return g.seed
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	ctx, initSpan := g.tracer.Start(ctx, "game.init",
		trace.WithAttributes(
			attribute.String("session.id", g.sessionID),
			attribute.Int64("game.seed", g.seed),
		),
	)
	g.enterFloor(ctx, g.floor)
	initSpan.End()

	logger.Info("run started", "session", g.sessionID, "seed", g.seed, "floor", g.floor)

	for g.running {
		g.renderer.Render(g.view())
		g.handleInput(ctx)
	}

	logger.Info("run ended", "session", g.sessionID, "floor", g.floor)
	g.screen.Close()
	return nil
}

// view assembles the frame for the renderer.
func (g *Game) view() ui.View {
	return ui.View{
		Map:       g.level,
		Player:    g.player,
		Status:    g.status(),
		Message:   g.message,
		RevealAll: g.state == StateOverview,
	}
}

func (g *Game) status() string {
	return fmt.Sprintf("Floor %d (%s)  Seed %d  Steps %d  [%s]",
		g.floor, g.level.Biome, g.seed, g.player.Steps, g.state)
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.apply(ctx, commandForKey(ev))
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// apply executes one command.
func (g *Game) apply(ctx context.Context, cmd Command) {
	switch cmd {
	case CmdQuit:
		g.running = false
	case CmdMoveNorth:
		g.tryMove(ctx, 0, -1)
	case CmdMoveSouth:
		g.tryMove(ctx, 0, 1)
	case CmdMoveWest:
		g.tryMove(ctx, -1, 0)
	case CmdMoveEast:
		g.tryMove(ctx, 1, 0)
	case CmdDescend:
		g.descend(ctx)
	case CmdToggleOverview:
		if g.state == StateOverview {
			g.state = StateExplore
		} else {
			g.state = StateOverview
		}
	}
}

// enterFloor generates a floor and places the player on its start.
func (g *Game) enterFloor(ctx context.Context, floor int) {
	ctx, span := g.tracer.Start(ctx, "game.enter_floor")
	defer span.End()

	biome := world.BiomeForFloor(floor)
	g.floor = floor
	g.level = dungeon.Generate(ctx, g.rng, floor, biome)
	if g.player == nil {
		g.player = entity.NewPlayer(g.level.Start)
	} else {
		g.player.Arrive(g.level.Start)
	}
	g.updateFOV(ctx)
	g.message = fmt.Sprintf("You enter floor %d of the %s.", floor, biome)

	span.SetAttributes(
		attribute.Int("floor", floor),
		attribute.String("biome", biome.String()),
		attribute.Int("walkable", g.level.WalkableCount()),
		attribute.Bool("solvable", dungeon.IsSolvable(g.level)),
	)
}

// updateFOV recomputes what the player can see.
func (g *Game) updateFOV(ctx context.Context) {
	_, span := g.tracer.Start(ctx, "game.fov")
	g.visible = fov.Compute(g.level, g.player.Pos, g.fovRadius)
	span.SetAttributes(
		attribute.Int("fov.radius", g.fovRadius),
		attribute.Int("fov.visible", len(g.visible)),
	)
	span.End()
}

// tryMove attempts to move the player by the given delta. Bumping a
// closed door opens it instead of moving.
func (g *Game) tryMove(ctx context.Context, dx, dy int) bool {
	next := g.player.Pos.Add(dx, dy)

	if g.level.TypeAt(next) == world.TileDoorClosed {
		g.level.SetType(next, world.TileDoorOpen)
		g.updateFOV(ctx)
		g.message = "The door creaks open."
		return false
	}
	if !g.level.IsWalkable(next) {
		return false
	}

	wasElite := g.level.IsElite(g.player.Pos)
	g.player.MoveTo(next)
	g.updateFOV(ctx)

	g.message = describe(g.level.TypeAt(next))
	if !wasElite && g.level.IsElite(next) {
		g.message = "You sense something powerful nearby."
	}
	return true
}

// descend moves to the next floor when the player stands on the exit.
func (g *Game) descend(ctx context.Context) bool {
	if !g.level.IsExit(g.player.Pos) {
		g.message = "There are no stairs down here."
		return false
	}
	logger.Debug("descending", "session", g.sessionID, "from", g.floor, "steps", g.player.Steps)
	g.enterFloor(ctx, g.floor+1)
	return true
}

// describe returns the flavor line for stepping onto a tile.
func describe(t world.TileType) string {
	switch t {
	case world.TileStairsDown:
		return "A staircase leads down. Press > to descend."
	case world.TileStairsUp:
		return "The way back up is sealed."
	case world.TileLava:
		return "Heat blisters your boots."
	case world.TilePit:
		return "You edge around a gaping pit."
	case world.TileCorruption:
		return "Corruption seeps into the stone here."
	case world.TileShrineRest:
		return "A shrine of rest. The air is calm."
	case world.TileShrineSkill:
		return "A shrine of skill hums quietly."
	case world.TileShrineEnchanting:
		return "An enchanting shrine glows with arcane light."
	case world.TileShrineCorruption:
		return "A corrupted shrine whispers promises."
	case world.TileBrazier, world.TileTorch:
		return "Flames crackle beside you."
	default:
		return ""
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
