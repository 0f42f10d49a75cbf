package config

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger creates a logger writing to w at the configured level.
func (c Config) NewLogger(w io.Writer) (*log.Logger, error) {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pong",
	})
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return logger, fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}
	logger.SetLevel(level)
	return logger, nil
}
