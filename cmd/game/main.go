package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/tomz197/pong/internal/config"
	"github.com/tomz197/pong/internal/loop"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file (default $PONG_CONFIG or the user config dir)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		logger.Warn("Using default log level", "err", err)
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	err = loop.Run(ctx, os.Stdin, os.Stdout, loop.Options{
		Config: cfg,
		Style:  lipgloss.NewRenderer(os.Stdout),
		Logger: logger,
	})
	stop()
	_ = term.Restore(fd, oldState)

	if err != nil && ctx.Err() == nil {
		logger.Error("Game error", "err", err)
		os.Exit(1)
	}
}
