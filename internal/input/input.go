// Package input turns raw terminal bytes into game key events.
//
// Terminals report key presses (and auto-repeat) but never releases, so a
// movement key counts as held until HoldDuration passes without another byte
// for it.
package input

import (
	"io"
	"time"

	"github.com/tomz197/pong/internal/game"
)

// HoldDuration is how long a movement key stays held after its last byte.
// It has to bridge the terminal's auto-repeat interval.
const HoldDuration = 120 * time.Millisecond

// movementKeys are tracked as held; every other key is press-only.
var movementKeys = [...]game.Key{game.KeyW, game.KeyS, game.KeyArrowUp, game.KeyArrowDown}

// Event is a single key transition.
type Event struct {
	Key  game.Key
	Down bool
}

// Frame is everything that happened since the previous Poll.
type Frame struct {
	Events []Event
	Quit   bool // q or Ctrl-C
	Closed bool // the reader is exhausted
}

// Stream delivers input bytes via a channel and tracks held keys.
type Stream struct {
	ch       chan []byte
	closed   bool
	lastSeen [len(movementKeys)]time.Time
	down     [len(movementKeys)]bool
	buf      []byte
	pending  []byte // a trailing ESC or ESC [ waiting for the rest of its sequence
}

// StartStream spawns a goroutine that reads from r and sends each read to the
// stream whole, so an escape sequence is never split between two polls.
func StartStream(r io.Reader) *Stream {
	s := &Stream{ch: make(chan []byte, 64)}
	go func() {
		defer close(s.ch)
		var b [64]byte
		for {
			n, err := r.Read(b[:])
			if n > 0 {
				s.ch <- append([]byte(nil), b[:n]...)
			}
			if err != nil {
				return
			}
		}
	}()
	return s
}

// Poll drains all available bytes (non-blocking) and returns the resulting events.
func (s *Stream) Poll(now time.Time) Frame {
	s.buf = s.buf[:0]
drain:
	for !s.closed {
		select {
		case chunk, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			s.buf = append(s.buf, chunk...)
		default:
			break drain
		}
	}

	frame := s.parse(s.buf, now)
	frame.Closed = s.closed
	return frame
}

// parse updates key state from buf and reports transitions. Press-only keys
// are reported in arrival order, followed by movement key edges.
//
// An ESC (or ESC [) at the end of buf may be the start of an arrow sequence
// split across reads, so it is held back for one poll. If nothing arrives by
// then it is a lone Escape.
func (s *Stream) parse(in []byte, now time.Time) Frame {
	var frame Frame

	flush := len(in) == 0
	buf := in
	if len(s.pending) > 0 {
		buf = append(s.pending, in...)
		s.pending = nil
	}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' {
			rest := buf[i+1:]
			// Escape sequences: ESC [ <code> and ESC O <code> (application cursor mode).
			if len(rest) >= 2 && (rest[0] == '[' || rest[0] == 'O') {
				switch rest[1] {
				case 'A':
					s.seen(game.KeyArrowUp, now)
				case 'B':
					s.seen(game.KeyArrowDown, now)
				}
				i += 2
				continue
			}
			if !flush && (len(rest) == 0 || (len(rest) == 1 && (rest[0] == '[' || rest[0] == 'O'))) {
				s.pending = append([]byte(nil), buf[i:]...)
				break
			}
		}

		switch b {
		case 'w', 'W':
			s.seen(game.KeyW, now)
		case 's', 'S':
			s.seen(game.KeyS, now)
		case ' ':
			frame.Events = append(frame.Events, Event{Key: game.KeySpace, Down: true})
		case '\x1b':
			frame.Events = append(frame.Events, Event{Key: game.KeyEscape, Down: true})
		case 'q', 'Q', '\x03':
			frame.Quit = true
		}
	}

	for i, k := range movementKeys {
		held := !s.lastSeen[i].IsZero() && now.Sub(s.lastSeen[i]) < HoldDuration
		if held != s.down[i] {
			s.down[i] = held
			frame.Events = append(frame.Events, Event{Key: k, Down: held})
		}
	}
	return frame
}

func (s *Stream) seen(k game.Key, now time.Time) {
	for i, mk := range movementKeys {
		if mk == k {
			s.lastSeen[i] = now
			return
		}
	}
}

// Apply delivers the frame's events to the game in order.
func (f Frame) Apply(g *game.State) {
	for _, e := range f.Events {
		if e.Down {
			g.Press(e.Key)
		} else {
			g.Release(e.Key)
		}
	}
}
