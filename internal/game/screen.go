package game

// Screen selects which update and draw path runs.
type Screen int

const (
	ScreenMenu    Screen = iota // Opponent selection
	ScreenPlaying               // Active gameplay
	ScreenPaused                // Physics frozen, overlay shown
)

func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenPlaying:
		return "playing"
	case ScreenPaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Opponent is who controls the right paddle.
type Opponent int

const (
	OpponentHuman Opponent = iota // Second player on Up/Down
	OpponentBot                   // Right paddle tracks the ball exactly
)

func (o Opponent) String() string {
	switch o {
	case OpponentHuman:
		return "human"
	case OpponentBot:
		return "bot"
	default:
		return "unknown"
	}
}
