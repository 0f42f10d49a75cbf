// Package loop runs pong on a terminal: it reads keys, ticks the game at a
// fixed rate and draws every tick.
package loop

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/tomz197/pong/internal/config"
	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/game"
	"github.com/tomz197/pong/internal/input"
)

// Max render resolution. Larger terminals get a centred, bordered field.
const (
	MaxTermWidth  = 120
	MaxTermHeight = 40
)

// Options configures a terminal game.
type Options struct {
	Config       config.Config
	TermSizeFunc draw.TermSizeFunc  // defaults to the size of os.Stdout
	Style        *lipgloss.Renderer // colour profile for text, nil for lipgloss' default
	Logger       *log.Logger        // nil for log.Default()
}

// Client plays one game on one terminal.
type Client struct {
	game         *game.State
	canvas       *draw.Canvas
	renderer     *draw.Renderer
	chunkWriter  *draw.ChunkWriter
	writer       io.Writer
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger
	interval     time.Duration
	dt           float64
	prevScreen   game.Screen
}

// NewClient creates a game reading keys from r and drawing to w.
func NewClient(r io.Reader, w io.Writer, opts Options) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	cfg := opts.Config
	chunkWriter := draw.NewChunkWriter(w, 0, 0)
	canvas := draw.NewScaledCanvas(0, 0, float64(cfg.Window.Width), float64(cfg.Window.Height))

	c := &Client{
		game:         game.New(cfg, draw.Bell{W: chunkWriter}),
		canvas:       canvas,
		renderer:     draw.NewRenderer(canvas, opts.Style),
		chunkWriter:  chunkWriter,
		writer:       w,
		inputStream:  input.StartStream(r),
		termSizeFunc: termSizeFunc,
		logger:       logger,
		interval:     cfg.TickInterval(),
		dt:           cfg.TickSeconds(),
	}
	c.prevScreen = c.game.Screen
	return c
}

// Run is NewClient(r, w, opts).Run(ctx).
func Run(ctx context.Context, r io.Reader, w io.Writer, opts Options) error {
	return NewClient(r, w, opts).Run(ctx)
}

// Run plays until the player quits or the input closes, which return nil, or
// until ctx is done, which returns ctx.Err().
func (c *Client) Run(ctx context.Context) error {
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		var now time.Time
		select {
		case <-ctx.Done():
			c.drawShutdownScreen()
			return ctx.Err()
		case now = <-ticker.C:
		}

		frame := c.inputStream.Poll(now)
		if frame.Quit || frame.Closed {
			break
		}
		frame.Apply(c.game)
		c.game.Tick(c.dt)

		if err := c.drawFrame(); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}
	}

	draw.ClearScreen(c.writer)
	return nil
}

// updateScreen handles terminal resize, clamping to the max render resolution.
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := draw.ClampTermSize(termWidth, termHeight, MaxTermWidth, MaxTermHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		c.chunkWriter.ClearScreen()
		c.canvas.ForceRedraw()
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

func (c *Client) drawFrame() error {
	if c.game.Screen != c.prevScreen {
		c.logger.Debug("screen changed", "from", c.prevScreen, "to", c.game.Screen, "opponent", c.game.Opponent)
		c.chunkWriter.ClearScreen()
		c.canvas.ForceRedraw()
		c.prevScreen = c.game.Screen
	}
	c.updateScreen()

	c.canvas.Clear()
	c.game.Render(c.renderer)
	c.renderer.Flush(c.chunkWriter)
	return c.chunkWriter.Flush()
}

// drawShutdownScreen replaces the field with a notice that the server is going away.
func (c *Client) drawShutdownScreen() {
	c.updateScreen()
	centerX := c.canvas.TerminalWidth() / 2
	centerY := c.canvas.TerminalHeight() / 2

	cw := c.chunkWriter
	cw.ClearScreen()
	title := "SERVER SHUTTING DOWN"
	cw.WriteAt(max(1, centerX-len(title)/2), max(1, centerY-1), title)
	msg := "Please reconnect in a moment."
	cw.WriteAt(max(1, centerX-len(msg)/2), centerY+1, msg)
	_ = cw.Flush()
}
