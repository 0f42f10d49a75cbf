package game

// Player owns one paddle and keeps score.
type Player struct {
	ID     int
	Score  int
	Record int // Highest score reached since the last restart
	Paddle Paddle
}

// MovePaddle moves the paddle when exactly one of up/down is held.
func (p *Player) MovePaddle(dt float64, up, down bool) {
	switch {
	case up && !down:
		p.Paddle.MoveUp(dt)
	case down && !up:
		p.Paddle.MoveDown(dt)
	}
}

// Win awards a point and raises the record if needed.
func (p *Player) Win() {
	p.Score++
	p.Record = max(p.Record, p.Score)
}
