package config

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pong.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 600, cfg.Window.Width)
	assert.Equal(t, 400, cfg.Window.Height)
	assert.Equal(t, 80.0, cfg.Paddle.Height)
	assert.Equal(t, Pair{X: 200, Y: 200}, cfg.Ball.Velocity)
	assert.Equal(t, time.Second/120, cfg.TickInterval())
}

func TestLoad(t *testing.T) {
	t.Run("file overrides defaults", func(t *testing.T) {
		path := writeFile(t, `
[window]
width = 800
tick_rate = 60

[ball.multiplier]
x = 1.5
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 800, cfg.Window.Width)
		assert.Equal(t, 400, cfg.Window.Height)
		assert.Equal(t, 60, cfg.Window.TickRate)
		assert.Equal(t, 1.5, cfg.Ball.Multiplier.X)
		assert.Equal(t, 1.05, cfg.Ball.Multiplier.Y)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := writeFile(t, "[window]\nheight = 300\n")
		t.Setenv(EnvHeight, "500")
		t.Setenv(EnvSSHPort, "2323")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 500, cfg.Window.Height)
		assert.Equal(t, "2323", cfg.SSH.Port)
	})

	t.Run("config path from environment", func(t *testing.T) {
		path := writeFile(t, "log_level = \"debug\"\n")
		t.Setenv(EnvConfigPath, path)

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
	})

	t.Run("missing default file is fine", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		t.Setenv("HOME", t.TempDir())
		t.Setenv(EnvConfigPath, "")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default().Window, cfg.Window)
	})

	t.Run("malformed env", func(t *testing.T) {
		t.Setenv(EnvTickRate, "fast")
		_, err := Load(writeFile(t, ""))
		require.Error(t, err)
	})

	t.Run("non-finite file values", func(t *testing.T) {
		_, err := Load(writeFile(t, "[paddle]\nspeed = nan\n"))
		require.ErrorIs(t, err, ErrInvalid)

		_, err = Load(writeFile(t, "[ball.velocity]\nx = inf\n"))
		require.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("sound from environment", func(t *testing.T) {
		t.Setenv(EnvVolume, "0.5")
		t.Setenv(EnvPan, "-0.25")

		cfg, err := Load(writeFile(t, ""))
		require.NoError(t, err)
		assert.Equal(t, 0.5, cfg.Sound.Volume)
		assert.Equal(t, -0.25, cfg.Sound.Pan)

		t.Setenv(EnvVolume, "NaN")
		_, err = Load(writeFile(t, ""))
		require.ErrorIs(t, err, ErrInvalid)

		t.Setenv(EnvVolume, "loud")
		_, err = Load(writeFile(t, ""))
		require.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := Load(writeFile(t, "[window]\nwidth = 0\n"))
		require.ErrorIs(t, err, ErrInvalid)
	})
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"tick rate":  func(c *Config) { c.Window.TickRate = 0 },
		"paddle":     func(c *Config) { c.Paddle.Height = -1 },
		"radius":     func(c *Config) { c.Ball.Radius = 0 },
		"multiplier": func(c *Config) { c.Ball.Multiplier.Y = 0 },
		"volume":     func(c *Config) { c.Sound.Volume = 2 },
		"pan":        func(c *Config) { c.Sound.Pan = -1.5 },

		"nan speed":         func(c *Config) { c.Paddle.Speed = math.NaN() },
		"nan paddle width":  func(c *Config) { c.Paddle.Width = math.NaN() },
		"inf paddle height": func(c *Config) { c.Paddle.Height = math.Inf(1) },
		"nan radius":        func(c *Config) { c.Ball.Radius = math.NaN() },
		"inf velocity":      func(c *Config) { c.Ball.Velocity.X = math.Inf(-1) },
		"nan velocity":      func(c *Config) { c.Ball.Velocity.Y = math.NaN() },
		"inf multiplier":    func(c *Config) { c.Ball.Multiplier.X = math.Inf(1) },
		"nan volume":        func(c *Config) { c.Sound.Volume = math.NaN() },
		"nan pan":           func(c *Config) { c.Sound.Pan = math.NaN() },
		"inf frequency":     func(c *Config) { c.Sound.Frequency = math.Inf(1) },
		"nan duration":      func(c *Config) { c.Sound.Duration = math.NaN() },
		"radius too big":    func(c *Config) { c.Ball.Radius = 400 },
		"paddle too tall":   func(c *Config) { c.Paddle.Height = 401 },
		"paddles too wide":  func(c *Config) { c.Paddle.Width = 298 },
		"ball too wide":     func(c *Config) { c.Paddle.Width = 150; c.Ball.Radius = 300 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var out bytes.Buffer
	cfg := Default()
	cfg.LogLevel = "warn"

	logger, err := cfg.NewLogger(&out)
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown", "key", "value")
	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "shown")
	assert.Contains(t, out.String(), "key=value")

	cfg.LogLevel = "loud"
	logger, err = cfg.NewLogger(&out)
	require.ErrorIs(t, err, ErrInvalid)
	assert.NotNil(t, logger)
}
