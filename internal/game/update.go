package game

// Tick advances the game by dt seconds.
func (s *State) Tick(dt float64) {
	switch s.Screen {
	case ScreenMenu:
		s.updateMenu()
	case ScreenPlaying:
		s.updatePlaying(dt)
	case ScreenPaused:
		// Frozen until Space.
	}
}

// updateMenu starts a match once Up or Down is held. Down selects the bot.
func (s *State) updateMenu() {
	if !s.Input.Up && !s.Input.Down {
		return
	}
	if s.Input.Down {
		s.Opponent = OpponentBot
	} else {
		s.Opponent = OpponentHuman
	}
	s.playSound()
	s.Screen = ScreenPlaying
}

func (s *State) updatePlaying(dt float64) {
	s.updatePaddles(dt)
	s.updateBall(dt)
	if s.Opponent == OpponentBot {
		s.trackBall()
	}
}

// updatePaddles applies held keys to the paddles. The bot's paddle is left
// to trackBall.
func (s *State) updatePaddles(dt float64) {
	left := &s.Players[Left]
	left.MovePaddle(dt, s.Input.W, s.Input.S)
	left.Paddle.Clamp(s.Height)

	if s.Opponent == OpponentBot {
		return
	}
	right := &s.Players[Right]
	right.MovePaddle(dt, s.Input.Up, s.Input.Down)
	right.Paddle.Clamp(s.Height)
}

// trackBall snaps the right paddle to the ball's height. It runs once the
// ball has moved and again after the walls, so the bot never lags.
func (s *State) trackBall() {
	s.Players[Right].Paddle.Position.Y = s.Ball.Position.Y
}

func (s *State) updateBall(dt float64) {
	ball := &s.Ball
	ball.Move(dt)
	if s.Opponent == OpponentBot {
		s.trackBall()
	}

	s.checkHorizontal()

	// Walls
	top := s.Height - ball.Half()
	switch {
	case ball.Position.Y < ball.Half():
		ball.Position.Y = ball.Half()
		ball.BounceVertical()
	case ball.Position.Y > top:
		ball.Position.Y = top
		ball.BounceVertical()
	}
}

// checkHorizontal resolves contact with either paddle plane: a catch bounces
// the ball back, a miss scores for the other side and serves again.
func (s *State) checkHorizontal() {
	ball := &s.Ball
	left := &s.Players[Left]
	right := &s.Players[Right]

	leftPlane := ball.Half() + left.Paddle.Size.X
	rightPlane := s.Width - ball.Half() - right.Paddle.Size.X

	switch {
	case ball.Position.X < leftPlane:
		if left.Paddle.Covers(ball.Position.Y) {
			ball.Position.X = leftPlane
			ball.BounceHorizontal()
			if s.Opponent == OpponentBot {
				left.Win()
			}
			s.playSound()
			return
		}
		right.Win()
		if s.Opponent == OpponentBot {
			left.Score = 0
		}
		ball.Reset(s.Center())

	case ball.Position.X > rightPlane:
		if right.Paddle.Covers(ball.Position.Y) {
			ball.Position.X = rightPlane
			ball.BounceHorizontal()
			s.playSound()
			return
		}
		left.Win()
		ball.Reset(s.Center())
	}
}
