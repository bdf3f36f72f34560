package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/slugdungeon/data"
	"github.com/samdwyer/slugdungeon/internal/dungeon"
	"github.com/samdwyer/slugdungeon/internal/gamedata"
	"github.com/samdwyer/slugdungeon/internal/level"
	"github.com/samdwyer/slugdungeon/internal/telemetry"
	"github.com/samdwyer/slugdungeon/internal/ui"
	"github.com/samdwyer/slugdungeon/internal/world"
)

// Game holds the entire game state.
type Game struct {
	cfg      Config
	runID    string
	screen   *ui.Screen
	renderer *ui.Renderer
	lvl      *level.Level
	model    *dungeon.Model
	state    State
	running  bool
}

// New loads the configured level, builds its model, and opens the terminal
// screen.
func New(cfg Config) (*Game, error) {
	raw, err := data.ReadLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	lvl, err := level.Parse(raw, gamedata.MustLoadWeaponRegistry(), gamedata.MustLoadSlugRegistry())
	if err != nil {
		return nil, fmt.Errorf("game: level %q: %w", cfg.Level, err)
	}
	model, err := lvl.Model()
	if err != nil {
		return nil, fmt.Errorf("game: level %q: %w", cfg.Level, err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		runID:    uuid.NewString(),
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		lvl:      lvl,
		model:    model,
		state:    StatePlaying,
		running:  true,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	ctx, initSpan := tracer.Start(ctx, "game.init")
	initSpan.SetAttributes(
		attribute.String("run.id", g.runID),
		attribute.String("level.name", g.cfg.Level),
		attribute.String("level.fingerprint", g.lvl.Fingerprint),
		attribute.Int("level.slug_count", len(g.lvl.Slugs)),
	)
	initSpan.End()

	for g.running {
		g.renderer.Render(g.model)

		if g.state != StatePlaying {
			g.renderer.RenderBanner(g.model, g.banner())
			g.screen.PollEvent()
			break
		}

		// Handle input (blocking)
		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

func (g *Game) banner() string {
	switch g.state {
	case StateWon:
		return "You escaped the slug dungeon! Press any key."
	case StateLost:
		return "The slugs got you. Press any key."
	default:
		return ""
	}
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.tryMove(ctx, world.Up)
	case tcell.KeyDown:
		g.tryMove(ctx, world.Down)
	case tcell.KeyLeft:
		g.tryMove(ctx, world.Left)
	case tcell.KeyRight:
		g.tryMove(ctx, world.Right)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			g.tryMove(ctx, world.Up)
		case 's', 'S':
			g.tryMove(ctx, world.Down)
		case 'a', 'A':
			g.tryMove(ctx, world.Left)
		case 'd', 'D':
			g.tryMove(ctx, world.Right)
		case 'q', 'Q':
			g.running = false
		}
	}
}

// tryMove resolves one turn and refreshes the win/loss state.
func (g *Game) tryMove(ctx context.Context, delta world.Position) {
	g.model.HandlePlayerMove(ctx, delta)

	switch {
	case g.model.HasLost():
		g.state = StateLost
	case g.model.HasWon():
		g.state = StateWon
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
