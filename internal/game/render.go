package game

import (
	"fmt"
	"image/color"

	"github.com/tomz197/pong/internal/physics"
)

// Drawing defaults.
var (
	Background = color.RGBA{R: 20, G: 20, B: 20, A: 0xff}
	Foreground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// FontSize is the size of every piece of text the game draws.
const FontSize = 16

// Align is the horizontal anchor of a text position.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextStyle describes how DrawText renders a string.
type TextStyle struct {
	Color color.Color
	Size  float64
	Align Align
}

// Renderer draws primitives in game coordinates (origin bottom-left, Y up).
// Rectangles are positioned by their centre; text by its baseline anchor.
type Renderer interface {
	DrawRectangle(pos, size physics.Vec, c color.Color)
	DrawCircle(pos physics.Vec, radius float64, c color.Color)
	DrawText(str string, pos physics.Vec, style TextStyle)
}

var centered = TextStyle{Color: Foreground, Size: FontSize, Align: AlignCenter}

// Render draws the current screen.
func (s *State) Render(r Renderer) {
	switch s.Screen {
	case ScreenMenu:
		s.drawPrompt(r,
			"PRESS ARROW UP TO PLAY AGAINST A FRIEND!",
			"PRESS ARROW DOWN TO PLAY AGAINST AN UNBEATABLE FOE!")
	case ScreenPaused:
		s.drawPrompt(r, "GAME PAUSED", "PRESS SPACE TO CONTINUE")
		s.drawField(r)
	case ScreenPlaying:
		s.drawField(r)
	}
}

// drawPrompt draws two centred lines around the middle of the field.
func (s *State) drawPrompt(r Renderer, first, second string) {
	r.DrawText(first, physics.Vec{X: s.Width / 2, Y: s.Height/2 + 8}, centered)
	r.DrawText(second, physics.Vec{X: s.Width / 2, Y: s.Height/2 - 32}, centered)
}

// drawField draws the score, the ball and both paddles.
func (s *State) drawField(r Renderer) {
	left, right := &s.Players[Left], &s.Players[Right]
	if s.Opponent == OpponentBot {
		r.DrawText(fmt.Sprintf("SCORE: %d", left.Score), physics.Vec{X: s.Width / 2, Y: s.Height - 50}, centered)
		r.DrawText(fmt.Sprintf("RECORD: %d", left.Record), physics.Vec{X: s.Width / 2, Y: s.Height - 72}, centered)
	} else {
		r.DrawText(fmt.Sprintf("%d - %d", left.Score, right.Score), physics.Vec{X: s.Width / 2, Y: s.Height - 50}, centered)
	}

	r.DrawCircle(s.Ball.Position, s.Ball.Radius, Foreground)
	for i := range s.Players {
		p := &s.Players[i].Paddle
		r.DrawRectangle(p.Position, p.Size, Foreground)
	}
}
