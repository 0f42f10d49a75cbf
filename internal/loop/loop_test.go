package loop

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/pong/internal/config"
)

// syncBuffer is a bytes.Buffer safe to read while a game writes to it.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func testOptions() Options {
	style := lipgloss.NewRenderer(io.Discard)
	style.SetColorProfile(termenv.Ascii)
	return Options{
		Config:       config.Default(),
		TermSizeFunc: func() (int, int, error) { return 120, 40, nil },
		Style:        style,
		Logger:       log.New(io.Discard),
	}
}

func runAsync(ctx context.Context, r io.Reader, w io.Writer) <-chan error {
	done := make(chan error, 1)
	go func() { done <- Run(ctx, r, w, testOptions()) }()
	return done
}

func waitDone(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("game did not stop")
		return nil
	}
}

func TestRun(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	out := &syncBuffer{}

	done := runAsync(context.Background(), r, out)

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "PRESS ARROW UP TO PLAY AGAINST A FRIEND!")
	}, time.Second, 5*time.Millisecond)

	_, err := w.Write([]byte("\x1b[A"))
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "0 - 0")
	}, time.Second, 5*time.Millisecond)

	_, err = w.Write([]byte("q"))
	require.NoError(t, err)
	require.NoError(t, waitDone(t, done))

	assert.True(t, strings.HasPrefix(out.String(), "\033[?25l"))
	assert.True(t, strings.HasSuffix(out.String(), "\033[?25h"))
	assert.Contains(t, out.String(), "\a", "starting a match beeps")
}

func TestRunClosedInput(t *testing.T) {
	out := &syncBuffer{}
	done := runAsync(context.Background(), strings.NewReader(""), out)
	require.NoError(t, waitDone(t, done))
}

func TestRunCancelled(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	out := &syncBuffer{}

	ctx, cancel := context.WithCancel(context.Background())
	done := runAsync(ctx, r, out)
	cancel()

	require.ErrorIs(t, waitDone(t, done), context.Canceled)
	assert.Contains(t, out.String(), "SERVER SHUTTING DOWN")
}

func TestClientResize(t *testing.T) {
	opts := testOptions()
	width, height := 200, 50
	opts.TermSizeFunc = func() (int, int, error) { return width, height, nil }

	c := NewClient(strings.NewReader(""), io.Discard, opts)
	c.updateScreen()
	assert.Equal(t, MaxTermWidth, c.canvas.TerminalWidth())
	assert.Equal(t, MaxTermHeight, c.canvas.TerminalHeight())
	assert.Equal(t, 40, c.canvas.OffsetCol())
	assert.Equal(t, 5, c.canvas.OffsetRow())

	width, height = 80, 24
	c.updateScreen()
	assert.Equal(t, 80, c.canvas.TerminalWidth())
	assert.Equal(t, 0, c.canvas.OffsetCol())
}

func TestSessions(t *testing.T) {
	sessions := NewSessions()

	var pipes []*io.PipeWriter
	var dones []chan error
	for _, user := range []string{"alice", "bob"} {
		r, w := io.Pipe()
		pipes = append(pipes, w)
		done := make(chan error, 1)
		dones = append(dones, done)
		go func() {
			done <- sessions.Run(context.Background(), user, r, io.Discard, testOptions())
		}()
	}
	defer func() {
		for _, w := range pipes {
			w.Close()
		}
	}()

	require.Eventually(t, func() bool { return sessions.Len() == 2 }, time.Second, 5*time.Millisecond)

	assert.True(t, sessions.Shutdown(time.Second))
	assert.Equal(t, 0, sessions.Len())
	for _, done := range dones {
		assert.ErrorIs(t, waitDone(t, done), context.Canceled)
	}

	err := sessions.Run(context.Background(), "late", strings.NewReader(""), io.Discard, testOptions())
	assert.ErrorIs(t, err, ErrShuttingDown)
}

func TestSessionsQuit(t *testing.T) {
	sessions := NewSessions()
	err := sessions.Run(context.Background(), "carol", strings.NewReader("q"), io.Discard, testOptions())
	require.NoError(t, err)
	assert.Equal(t, 0, sessions.Len())
}
