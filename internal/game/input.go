package game

// Key identifies the keys the game reacts to.
type Key int

const (
	KeyW Key = iota
	KeyS
	KeyArrowUp
	KeyArrowDown
	KeySpace
	KeyEscape
)

func (k Key) String() string {
	switch k {
	case KeyW:
		return "W"
	case KeyS:
		return "S"
	case KeyArrowUp:
		return "Up"
	case KeyArrowDown:
		return "Down"
	case KeySpace:
		return "Space"
	case KeyEscape:
		return "Escape"
	default:
		return "unknown"
	}
}

// Input holds the held state of the four movement keys.
// It is written by Press/Release between ticks and read by Tick.
type Input struct {
	W    bool
	S    bool
	Up   bool
	Down bool
}

// set records a movement key transition. Returns false for keys that are not
// tracked as held.
func (in *Input) set(k Key, down bool) bool {
	switch k {
	case KeyW:
		in.W = down
	case KeyS:
		in.S = down
	case KeyArrowUp:
		in.Up = down
	case KeyArrowDown:
		in.Down = down
	default:
		return false
	}
	return true
}
