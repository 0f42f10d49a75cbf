package game

import "github.com/tomz197/pong/internal/physics"

// Ball is the moving ball, positioned by its centre.
type Ball struct {
	Position        physics.Vec
	Radius          float64
	Velocity        physics.Vec // Units per second
	DefaultVelocity physics.Vec // Serve speed, restored on reset
	Multiplier      physics.Vec // Applied to speed on every bounce
}

// NewBall creates a ball at pos moving with velocity.
func NewBall(pos physics.Vec, radius float64, velocity, multiplier physics.Vec) Ball {
	return Ball{
		Position:        pos,
		Radius:          radius,
		Velocity:        velocity,
		DefaultVelocity: velocity,
		Multiplier:      multiplier,
	}
}

// Move advances the ball by velocity*dt.
func (b *Ball) Move(dt float64) {
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
}

// BounceHorizontal reverses horizontal travel and speeds the ball up.
// The factor is Multiplier.Y, not Multiplier.X.
func (b *Ball) BounceHorizontal() {
	b.Velocity.X *= -b.Multiplier.Y
}

// BounceVertical reverses vertical travel and speeds the ball up.
func (b *Ball) BounceVertical() {
	b.Velocity.Y *= -b.Multiplier.Y
}

// Reset puts the ball at center and serves it at default speed, reversed on
// both axes relative to its current direction.
func (b *Ball) Reset(center physics.Vec) {
	b.Position = center
	b.Velocity = physics.Vec{
		X: -physics.Sign(b.Velocity.X) * b.DefaultVelocity.X,
		Y: -physics.Sign(b.Velocity.Y) * b.DefaultVelocity.Y,
	}
}

// Half returns half the radius, the margin used for wall and paddle contact.
func (b *Ball) Half() float64 {
	return b.Radius / 2
}
