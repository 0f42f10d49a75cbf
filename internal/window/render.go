package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/pong/internal/game"
	"github.com/tomz197/pong/internal/physics"
)

// renderer draws on an ebiten image, flipping game Y (up) to screen Y (down).
type renderer struct {
	dst    *ebiten.Image
	height float64
	face   *text.GoXFace
}

func newRenderer(height float64, face *text.GoXFace) *renderer {
	return &renderer{height: height, face: face}
}

func (r *renderer) flip(y float64) float64 {
	return r.height - y
}

// rect returns the screen-space top-left corner and size of a rectangle
// centred at pos.
func (r *renderer) rect(pos, size physics.Vec) (x, y, w, h float32) {
	return float32(pos.X - size.X/2), float32(r.flip(pos.Y + size.Y/2)), float32(size.X), float32(size.Y)
}

func (r *renderer) DrawRectangle(pos, size physics.Vec, c color.Color) {
	x, y, w, h := r.rect(pos, size)
	vector.FillRect(r.dst, x, y, w, h, c, false)
}

func (r *renderer) DrawCircle(pos physics.Vec, radius float64, c color.Color) {
	vector.FillCircle(r.dst, float32(pos.X), float32(r.flip(pos.Y)), float32(radius), c, true)
}

// DrawText places the baseline of str at pos, scaling the bitmap face to style.Size.
func (r *renderer) DrawText(str string, pos physics.Vec, style game.TextStyle) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = primaryAlign(style.Align)

	scale := r.scale(style.Size)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(pos.X, r.flip(pos.Y)-r.face.Metrics().HAscent*scale)
	if style.Color != nil {
		op.ColorScale.ScaleWithColor(style.Color)
	}
	text.Draw(r.dst, str, r.face, op)
}

// scale is the factor from the face's native height to size.
func (r *renderer) scale(size float64) float64 {
	m := r.face.Metrics()
	native := m.HAscent + m.HDescent
	if size <= 0 || native <= 0 {
		return 1
	}
	return size / native
}

func primaryAlign(a game.Align) text.Align {
	switch a {
	case game.AlignCenter:
		return text.AlignCenter
	case game.AlignRight:
		return text.AlignEnd
	default:
		return text.AlignStart
	}
}
