// Package ebiten provides the Ebiten-based window for ALLFARM: it polls the
// keyboard, gamepads and mouse wheel, steps the game and draws each frame.
package ebiten

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	engineinput "allfarm/pkg/engine/input"
	"allfarm/pkg/game/atlas"
	"allfarm/pkg/game/config"
	"allfarm/pkg/game/locale"
	"allfarm/pkg/game/state"
)

// EbitenRenderer runs the game in an Ebiten window
type EbitenRenderer struct {
	// Window dimensions as configured
	windowWidth  int
	windowHeight int
	title        string
	fullscreen   bool
	tps          int

	game      *state.Game
	table     *atlas.Table
	catalog   *locale.Catalog
	collector *engineinput.Collector
	logger    *log.Logger

	atlasPath  string
	atlasImage *ebiten.Image
	face       *text.GoTextFace

	// Flag to track if we've logged window opening
	windowOpenedLogged bool
}

// New creates a renderer for g. The atlas image is loaded by Run.
func New(g *state.Game, cfg config.Config, cat *locale.Catalog, logger *log.Logger) *EbitenRenderer {
	title := cfg.Window.Title
	if title == "" {
		title = cat.Get("WINDOW_TITLE")
	}
	bindings := cfg.InputBindings()
	for act, codes := range bindings.ByAction() {
		logger.Debug("Input binding", "action", engineinput.ActionName(act), "codes", codes)
	}
	return &EbitenRenderer{
		windowWidth:  cfg.Window.Width,
		windowHeight: cfg.Window.Height,
		title:        title,
		fullscreen:   cfg.Window.Fullscreen,
		tps:          cfg.Window.TPS,
		game:         g,
		table:        atlas.Default(float64(cfg.Atlas.TileSize)),
		catalog:      cat,
		collector:    engineinput.NewCollector(bindings),
		logger:       logger,
		atlasPath:    cfg.Atlas.Path,
	}
}

// Init loads the texture atlas and the overlay font
func (e *EbitenRenderer) Init() error {
	img, _, err := ebitenutil.NewImageFromFile(e.atlasPath)
	if err != nil {
		return fmt.Errorf("failed to load texture atlas %s: %w", e.atlasPath, err)
	}
	e.atlasImage = img

	face, err := newOverlayFace()
	if err != nil {
		return fmt.Errorf("failed to load overlay font: %w", err)
	}
	e.face = face
	return nil
}

// Run opens the window and blocks until the player quits or closes it
func (e *EbitenRenderer) Run() error {
	if err := e.Init(); err != nil {
		return err
	}

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(e.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(e.fullscreen)
	ebiten.SetTPS(e.tps)

	e.logger.Info("Starting game", "size", fmt.Sprintf("%dx%d", e.windowWidth, e.windowHeight), "tps", e.tps)
	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if float64(outsideWidth) != e.game.ViewWidth || float64(outsideHeight) != e.game.ViewHeight {
		e.game.Resize(float64(outsideWidth), float64(outsideHeight))
		e.logger.Debug("Window resized", "width", outsideWidth, "height", outsideHeight)
	}
	return outsideWidth, outsideHeight
}
