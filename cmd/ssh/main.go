package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"

	"github.com/tomz197/pong/internal/config"
	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/loop"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file (default $PONG_CONFIG or the user config dir)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Failed to load config", "err", err)
	}
	logger, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		logger.Warn("Using default log level", "err", err)
	}

	host, port, hostKeyPath := cfg.SSH.Host, cfg.SSH.Port, cfg.SSH.HostKeyPath
	workingDir, workErr := os.Getwd()
	if workErr != nil {
		logger.Warn("Failed to get working directory", "err", workErr)
	}
	logger.Info("SSH config", "host", host, "port", port, "hostKeyPath", hostKeyPath, "workingDir", workingDir)

	sessions := loop.NewSessions()

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			gameMiddleware(sessions, cfg, logger),
			activeterm.Middleware(),
			logging.StructuredMiddlewareWithLogger(logger, log.InfoLevel),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("Failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("Starting SSH server", "addr", net.JoinHostPort(host, port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("Server error", "err", err)
		}
	}()

	<-done
	logger.Info("Shutting down server...")

	logger.Info("Stopping running games", "sessions", sessions.Len())
	if !sessions.Shutdown(15 * time.Second) {
		logger.Warn("Some games did not stop in time", "sessions", sessions.Len())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		logger.Fatal("Shutdown error", "err", err)
	}
}

// gameMiddleware runs one independent game per SSH session.
func gameMiddleware(sessions *loop.Sessions, cfg config.Config, logger *log.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}

			logger.Info("New game session", "user", sess.User(), "terminal", pty.Term,
				"width", pty.Window.Width, "height", pty.Window.Height)

			// Create a terminal size tracker that updates on window changes
			sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
			go func() {
				for win := range winCh {
					sizeTracker.update(win.Width, win.Height)
				}
			}()

			err := sessions.Run(sess.Context(), sess.User(), sess, sess, loop.Options{
				Config:       cfg,
				TermSizeFunc: sizeTracker.getSize,
				Style:        lipgloss.NewRenderer(sess),
				Logger:       logger,
			})
			switch {
			case errors.Is(err, loop.ErrShuttingDown):
				fmt.Fprintln(sess, "Server is shutting down. Please reconnect in a moment.")
			case err != nil && !errors.Is(err, context.Canceled):
				logger.Error("Game error", "user", sess.User(), "err", err)
			}

			next(sess)
		}
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
