// Package window runs pong in a desktop window with ebiten.
package window

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/tomz197/pong/internal/config"
	"github.com/tomz197/pong/internal/game"
)

// binding maps a keyboard key to a game key.
type binding struct {
	key  ebiten.Key
	game game.Key
}

var bindings = []binding{
	{ebiten.KeyW, game.KeyW},
	{ebiten.KeyS, game.KeyS},
	{ebiten.KeyArrowUp, game.KeyArrowUp},
	{ebiten.KeyArrowDown, game.KeyArrowDown},
	{ebiten.KeySpace, game.KeySpace},
	{ebiten.KeyEscape, game.KeyEscape},
}

// Game adapts game.State to ebiten.Game.
type Game struct {
	state    *game.State
	renderer *renderer
	width    int
	height   int
	dt       float64
}

var _ ebiten.Game = (*Game)(nil)

// NewGame creates a window game. sound may be nil.
func NewGame(cfg config.Config, sound game.Sound) *Game {
	return &Game{
		state:    game.New(cfg, sound),
		renderer: newRenderer(float64(cfg.Window.Height), text.NewGoXFace(basicfont.Face7x13)),
		width:    cfg.Window.Width,
		height:   cfg.Window.Height,
		dt:       cfg.TickSeconds(),
	}
}

// Update delivers this tick's key transitions and advances the game.
func (g *Game) Update() error {
	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			g.state.Press(b.game)
		}
		if inpututil.IsKeyJustReleased(b.key) {
			g.state.Release(b.game)
		}
	}
	g.state.Tick(g.dt)
	return nil
}

// Draw renders the current screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(game.Background)
	g.renderer.dst = screen
	g.state.Render(g.renderer)
}

// Layout keeps the field at its configured size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until it is closed.
func Run(cfg config.Config, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}

	var sound game.Sound
	beeper, err := NewBeeper(audio.NewContext(SampleRate), cfg.Sound)
	if err != nil {
		logger.Warn("Sound disabled", "err", err)
	} else {
		sound = beeper
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
	ebiten.SetTPS(cfg.Window.TickRate)

	logger.Info("Opening window", "title", cfg.Window.Title,
		"width", cfg.Window.Width, "height", cfg.Window.Height, "tps", cfg.Window.TickRate)

	if err := ebiten.RunGame(NewGame(cfg, sound)); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
