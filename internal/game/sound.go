package game

// Sound plays the game's single sound effect.
// volume is in [0, 1], pan in [-1 (left), 1 (right)].
type Sound interface {
	Play(volume, pan float64)
}

// Mute is a Sound that does nothing.
type Mute struct{}

// Play implements Sound.
func (Mute) Play(volume, pan float64) {}
