package loop

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"
)

// ErrShuttingDown is returned by Sessions.Run once Shutdown has been called.
var ErrShuttingDown = errors.New("loop: shutting down")

// Sessions tracks the games running on a server so they can be stopped together.
type Sessions struct {
	mu     sync.Mutex
	nextID int
	active map[int]context.CancelFunc
	closed bool
}

// NewSessions creates an empty registry.
func NewSessions() *Sessions {
	return &Sessions{active: make(map[int]context.CancelFunc), nextID: 1}
}

// Run plays a game for user like the package-level Run, registered for the
// duration of the game.
func (s *Sessions) Run(ctx context.Context, user string, r io.Reader, w io.Writer, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	id, ok := s.register(cancel)
	if !ok {
		return ErrShuttingDown
	}
	defer s.unregister(id)

	c := NewClient(r, w, opts)
	c.logger.Info("Game session started", "id", id, "user", user)
	err := c.Run(ctx)
	c.logger.Info("Game session ended", "id", id, "user", user,
		"score", c.game.Players[0].Score, "record", c.game.Players[0].Record)
	return err
}

// Len returns the number of running games.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active)
}

// Shutdown refuses new games, cancels the running ones and waits for them to
// return, up to timeout. It reports whether every game finished in time.
func (s *Sessions) Shutdown(timeout time.Duration) bool {
	s.mu.Lock()
	s.closed = true
	for _, cancel := range s.active {
		cancel()
	}
	s.mu.Unlock()

	deadline := time.After(timeout)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		if s.Len() == 0 {
			return true
		}
		select {
		case <-deadline:
			return false
		case <-ticker.C:
		}
	}
}

func (s *Sessions) register(cancel context.CancelFunc) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, false
	}
	id := s.nextID
	s.nextID++
	s.active[id] = cancel
	return id, true
}

func (s *Sessions) unregister(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.active, id)
}
