package draw

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomz197/pong/internal/game"
	"github.com/tomz197/pong/internal/physics"
)

// Renderer draws game frames onto a Canvas. Shapes go to the half-block
// canvas; text is queued and written over it once the canvas is flushed.
// Game coordinates have Y up, so every position is flipped against the
// canvas' logical height.
type Renderer struct {
	canvas *Canvas
	style  *lipgloss.Renderer
	texts  []overlay
}

type overlay struct {
	str   string
	pos   physics.Vec
	style game.TextStyle
}

var _ game.Renderer = (*Renderer)(nil)

// NewRenderer creates a renderer that draws onto canvas. style decides the
// colour profile of text; nil falls back to lipgloss' default renderer.
func NewRenderer(canvas *Canvas, style *lipgloss.Renderer) *Renderer {
	if style == nil {
		style = lipgloss.DefaultRenderer()
	}
	return &Renderer{canvas: canvas, style: style}
}

func (r *Renderer) flip(y float64) float64 {
	return r.canvas.LogicalHeight() - y
}

// DrawRectangle fills a rectangle centred at pos.
func (r *Renderer) DrawRectangle(pos, size physics.Vec, _ color.Color) {
	r.canvas.FillRect(
		pos.X-size.X/2, r.flip(pos.Y+size.Y/2),
		pos.X+size.X/2, r.flip(pos.Y-size.Y/2),
	)
}

// DrawCircle fills a circle centred at pos.
func (r *Renderer) DrawCircle(pos physics.Vec, radius float64, _ color.Color) {
	r.canvas.FillCircle(pos.X, r.flip(pos.Y), radius)
}

// DrawText queues str for the overlay pass.
func (r *Renderer) DrawText(str string, pos physics.Vec, style game.TextStyle) {
	r.texts = append(r.texts, overlay{str: str, pos: pos, style: style})
}

// Flush renders the canvas and the queued text to cw, then resets the queue.
// Rows that received text are redrawn on the next frame.
//
// On short terminals two overlays can land on the same row; the later one
// moves down until it finds a free row.
func (r *Renderer) Flush(cw *ChunkWriter) {
	r.canvas.Render(cw)
	r.canvas.RenderBorder(cw)

	used := make(map[int]bool, len(r.texts))
	for _, t := range r.texts {
		col, row := r.canvas.LogicalToTerminal(t.pos.X, r.flip(t.pos.Y))
		if row < 1 {
			continue
		}
		for used[row] {
			row++
		}
		if row > r.canvas.TerminalHeight() {
			continue
		}
		used[row] = true

		s := r.style.NewStyle().Bold(true)
		if t.style.Color != nil {
			s = s.Foreground(lipgloss.Color(hexColor(t.style.Color)))
		}
		text := s.Render(t.str)
		width := lipgloss.Width(text)

		switch t.style.Align {
		case game.AlignCenter:
			col -= width / 2
		case game.AlignRight:
			col -= width
		}
		col = max(1, min(col, r.canvas.TerminalWidth()-width+1))

		cw.WriteAt(col, row, text)
		r.canvas.Invalidate(row)
	}
	r.texts = r.texts[:0]
}

func hexColor(c color.Color) string {
	cr, cg, cb, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", cr>>8, cg>>8, cb>>8)
}
