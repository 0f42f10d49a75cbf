package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"

	"github.com/tomz197/pong/internal/config"
	"github.com/tomz197/pong/internal/window"
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

	if err := window.Run(cfg, logger); err != nil {
		logger.Fatal("Game error", "err", err)
	}
}
