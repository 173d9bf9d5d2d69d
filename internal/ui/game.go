package ui

import (
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/mitchelldurbincs/CrystalCaves/internal/common"
	"github.com/mitchelldurbincs/CrystalCaves/internal/config"
	"github.com/mitchelldurbincs/CrystalCaves/internal/game"
	"github.com/mitchelldurbincs/CrystalCaves/internal/game/core"
	"github.com/mitchelldurbincs/CrystalCaves/internal/game/reveal"
	"github.com/mitchelldurbincs/CrystalCaves/internal/ui/dispatch"
	"github.com/mitchelldurbincs/CrystalCaves/internal/ui/input"
	"github.com/mitchelldurbincs/CrystalCaves/internal/ui/layout"
	"github.com/mitchelldurbincs/CrystalCaves/internal/ui/renderer"
)

// Game is the ebiten front end of an engine
type Game struct {
	engine        *game.Engine
	boardRenderer *renderer.BoardRenderer
	panel         *renderer.PanelRenderer
	inputHandler  *input.Handler
	dispatcher    *dispatch.Dispatcher
	defaultFont   font.Face
	logger        zerolog.Logger

	screenWidth, screenHeight int

	// Path reveal animation
	start      time.Time
	revealPath []core.Coordinate
	revealStep int
	lastReveal time.Duration

	palette common.Palette

	// Written by the config watcher goroutine
	mu             sync.Mutex
	revealInterval time.Duration
	pendingPalette *common.Palette

	hovered       core.Coordinate
	hasHover      bool
	statusMessage string
}

// NewGame creates a new Ebitengine game instance.
func NewGame(engine *game.Engine, cfg *config.Config, logger zerolog.Logger) *Game {
	board := engine.Board()
	l := layout.New(cfg.UI.Grid.TriSize, board.Rows, board.Cols)
	boardW, boardH := l.BoardSize()
	palette := common.PaletteFromConfig(cfg.Colors)

	g := &Game{
		engine:         engine,
		boardRenderer:  renderer.NewBoardRenderer(l, palette),
		inputHandler:   input.NewHandler(),
		dispatcher:     dispatch.New(l),
		defaultFont:    basicfont.Face7x13,
		logger:         logger.With().Str("component", "UIGame").Logger(),
		screenWidth:    max(cfg.UI.Window.Width, boardW+cfg.UI.Grid.PanelWidth),
		screenHeight:   max(cfg.UI.Window.Height, boardH),
		start:          time.Now(),
		revealInterval: intervalFromConfig(cfg),
		palette:        palette,
	}
	g.panel = renderer.NewPanelRenderer(boardW, g.defaultFont, palette)

	g.logger.Debug().
		Int("board_width", boardW).
		Int("board_height", boardH).
		Int("screen_width", g.screenWidth).
		Int("screen_height", g.screenHeight).
		Msg("UI created")
	return g
}

func intervalFromConfig(cfg *config.Config) time.Duration {
	if cfg.UI.Reveal.IntervalMS <= 0 {
		return reveal.DefaultInterval
	}
	return time.Duration(cfg.UI.Reveal.IntervalMS) * time.Millisecond
}

// ApplyConfig picks up the settings that can change while the window is open.
// Safe to call from the config watcher goroutine.
func (g *Game) ApplyConfig(cfg *config.Config) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.revealInterval = intervalFromConfig(cfg)
	palette := common.PaletteFromConfig(cfg.Colors)
	g.pendingPalette = &palette
}

// Update proceeds the game state.
func (g *Game) Update() error {
	if g.inputHandler.QuitRequested() {
		g.logger.Info().Msg("Quit requested")
		return ebiten.Termination
	}

	g.syncConfig()

	frame := g.inputHandler.Update()
	g.hovered, g.hasHover = g.dispatcher.Hovered(frame)

	for _, cmd := range g.dispatcher.Commands(frame, g.engine.Board()) {
		out, err := g.engine.Apply(cmd)
		if msg := dispatch.Status(out, err); msg != "" {
			g.statusMessage = msg
		}
		if err == nil && out.Command == core.CommandSolvePath {
			g.startReveal(out.Path)
		}
	}

	// A move, clear or rollover may have dropped the path
	if g.engine.Path() == nil {
		g.revealPath = nil
		g.revealStep = 0
	}

	g.advanceReveal()
	return nil
}

func (g *Game) syncConfig() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.pendingPalette == nil {
		return
	}
	g.palette = *g.pendingPalette
	g.pendingPalette = nil

	board := g.engine.Board()
	l := layout.New(int(g.boardRenderer.Layout().TriSize), board.Rows, board.Cols)
	boardW, _ := l.BoardSize()
	g.boardRenderer = renderer.NewBoardRenderer(l, g.palette)
	g.panel = renderer.NewPanelRenderer(boardW, g.defaultFont, g.palette)
	g.logger.Debug().Msg("Palette reloaded")
}

func (g *Game) startReveal(path []core.Coordinate) {
	g.revealPath = path
	g.revealStep = 0
	g.lastReveal = time.Since(g.start)
}

func (g *Game) advanceReveal() {
	if reveal.Done(g.revealStep, len(g.revealPath)) {
		return
	}
	g.mu.Lock()
	interval := g.revealInterval
	g.mu.Unlock()
	g.revealStep, g.lastReveal = reveal.Advance(time.Since(g.start), g.lastReveal, interval, g.revealStep, len(g.revealPath))
}

// Draw renders the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.palette.Background)

	g.boardRenderer.Draw(screen, renderer.Frame{
		Board:      g.engine.Board(),
		Hovered:    g.hovered,
		HasHover:   g.hasHover,
		Path:       g.revealPath,
		Revealed:   g.revealStep,
		LegalMoves: g.engine.LegalMoveMask(),
	})

	g.panel.Draw(screen, renderer.PanelInfo{
		Stats:    g.engine.Stats(),
		Relation: g.engine.Relation(),
		Status:   g.statusMessage,
	})
}

// Layout defines the Ebitengine screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.screenWidth, g.screenHeight
}

// Run opens the window and blocks until it is closed
func Run(g *Game, title string) error {
	ebiten.SetWindowSize(g.screenWidth, g.screenHeight)
	ebiten.SetWindowTitle(title)
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}
