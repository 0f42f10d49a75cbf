package game

import "github.com/tomz197/pong/internal/physics"

// Paddle is a vertical bar positioned by its centre.
type Paddle struct {
	Position physics.Vec // Centre
	Size     physics.Vec // Width, height
	Speed    float64     // Units per second
}

// NewPaddle creates a paddle centred at pos.
func NewPaddle(pos physics.Vec, width, height, speed float64) Paddle {
	return Paddle{
		Position: pos,
		Size:     physics.Vec{X: width, Y: height},
		Speed:    speed,
	}
}

// MoveUp moves the paddle towards the top of the field.
func (p *Paddle) MoveUp(dt float64) {
	p.Position.Y += p.Speed * dt
}

// MoveDown moves the paddle towards the bottom of the field.
func (p *Paddle) MoveDown(dt float64) {
	p.Position.Y -= p.Speed * dt
}

// Clamp keeps the paddle centre inside [0, height].
func (p *Paddle) Clamp(height float64) {
	p.Position.Y = physics.Clamp(p.Position.Y, 0, height)
}

// Covers reports whether y is strictly inside the paddle's vertical extent.
func (p *Paddle) Covers(y float64) bool {
	half := p.Size.Y / 2
	return physics.Between(y, p.Position.Y-half, p.Position.Y+half)
}
