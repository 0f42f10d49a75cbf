// Package game implements the pong rules: paddles, ball, scoring and the
// menu/playing/paused screens. It has no I/O of its own; frontends feed it
// key events, call Tick at a fixed rate and draw it through a Renderer.
//
// Coordinates have their origin at the bottom-left corner and Y grows upwards.
package game

import (
	"github.com/tomz197/pong/internal/config"
	"github.com/tomz197/pong/internal/physics"
)

// Player indices.
const (
	Left  = 0
	Right = 1
)

// State is the complete game. It is not safe for concurrent use; the driver
// that ticks it must also deliver key events.
type State struct {
	Width    float64
	Height   float64
	Ball     Ball
	Players  [2]Player
	Screen   Screen
	Opponent Opponent
	Input    Input

	cfg   config.Config
	sound Sound
}

// New creates a game on the menu screen. A nil sound is treated as Mute.
func New(cfg config.Config, sound Sound) *State {
	if sound == nil {
		sound = Mute{}
	}
	s := &State{cfg: cfg, sound: sound}
	s.Restart()
	return s
}

// Restart rebuilds every entity, clears scores, records and input, and
// returns to the menu.
func (s *State) Restart() {
	s.Width = float64(s.cfg.Window.Width)
	s.Height = float64(s.cfg.Window.Height)

	s.Ball = NewBall(
		s.Center(),
		s.cfg.Ball.Radius,
		physics.Vec{X: s.cfg.Ball.Velocity.X, Y: s.cfg.Ball.Velocity.Y},
		physics.Vec{X: s.cfg.Ball.Multiplier.X, Y: s.cfg.Ball.Multiplier.Y},
	)

	pw, ph, speed := s.cfg.Paddle.Width, s.cfg.Paddle.Height, s.cfg.Paddle.Speed
	s.Players = [2]Player{
		{ID: Left, Paddle: NewPaddle(physics.Vec{X: pw / 2, Y: s.Height / 2}, pw, ph, speed)},
		{ID: Right, Paddle: NewPaddle(physics.Vec{X: s.Width - pw/2, Y: s.Height / 2}, pw, ph, speed)},
	}

	s.Screen = ScreenMenu
	s.Opponent = OpponentHuman
	s.Input = Input{}
}

// Center is the middle of the field.
func (s *State) Center() physics.Vec {
	return physics.Vec{X: s.Width / 2, Y: s.Height / 2}
}

// Press delivers a key-down event.
// Space toggles pause and Escape restarts; both act immediately.
func (s *State) Press(k Key) {
	if s.Input.set(k, true) {
		return
	}
	switch k {
	case KeySpace:
		s.togglePause()
	case KeyEscape:
		s.Restart()
		s.playSound()
	}
}

// Release delivers a key-up event.
func (s *State) Release(k Key) {
	s.Input.set(k, false)
}

func (s *State) togglePause() {
	switch s.Screen {
	case ScreenPlaying:
		s.Screen = ScreenPaused
		s.playSound()
	case ScreenPaused:
		s.Screen = ScreenPlaying
		s.playSound()
	case ScreenMenu:
	}
}

func (s *State) playSound() {
	s.sound.Play(s.cfg.Sound.Volume, s.cfg.Sound.Pan)
}
