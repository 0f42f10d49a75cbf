package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Environment variables read by Load.
const (
	EnvConfigPath = "PONG_CONFIG"
	EnvWidth      = "PONG_WIDTH"
	EnvHeight     = "PONG_HEIGHT"
	EnvTickRate   = "PONG_TICK_RATE"
	EnvLogLevel   = "PONG_LOG_LEVEL"
	EnvSSHHost    = "PONG_SSH_HOST"
	EnvSSHPort    = "PONG_SSH_PORT"
	EnvSSHHostKey = "PONG_SSH_HOST_KEY"
	EnvVolume     = "PONG_SOUND_VOLUME"
	EnvPan        = "PONG_SOUND_PAN"
)

// Pair is a per-axis value (velocity, multiplier).
type Pair struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
}

// Window describes the play field and how often it is updated.
type Window struct {
	Title    string `toml:"title"`
	Width    int    `toml:"width"`
	Height   int    `toml:"height"`
	TickRate int    `toml:"tick_rate"` // fixed updates per second
}

// Paddle describes both paddles.
type Paddle struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Speed  float64 `toml:"speed"` // units per second
}

// Ball describes the ball and how it speeds up on each bounce.
type Ball struct {
	Radius     float64 `toml:"radius"`
	Velocity   Pair    `toml:"velocity"`
	Multiplier Pair    `toml:"multiplier"`
}

// Sound describes the single sound effect.
type Sound struct {
	Volume    float64 `toml:"volume"`
	Pan       float64 `toml:"pan"`
	Frequency float64 `toml:"frequency"` // Hz, window frontend only
	Duration  float64 `toml:"duration"`  // seconds, window frontend only
}

// SSH configures the terminal-over-SSH frontend.
type SSH struct {
	Host        string `toml:"host"`
	Port        string `toml:"port"`
	HostKeyPath string `toml:"host_key_path"`
}

// Config groups every tunable parameter.
type Config struct {
	LogLevel string `toml:"log_level"`
	Window   Window `toml:"window"`
	Paddle   Paddle `toml:"paddle"`
	Ball     Ball   `toml:"ball"`
	Sound    Sound  `toml:"sound"`
	SSH      SSH    `toml:"ssh"`
}

// Default returns the classic settings.
func Default() Config {
	return Config{
		LogLevel: "info",
		Window: Window{
			Title:    "Pong!",
			Width:    600,
			Height:   400,
			TickRate: 120,
		},
		Paddle: Paddle{
			Width:  10,
			Height: 80,
			Speed:  800,
		},
		Ball: Ball{
			Radius:     5,
			Velocity:   Pair{X: 200, Y: 200},
			Multiplier: Pair{X: 1.05, Y: 1.05},
		},
		Sound: Sound{
			Volume:    0.03,
			Pan:       0,
			Frequency: 660,
			Duration:  0.08,
		},
		SSH: SSH{
			Host:        "::",
			Port:        "2222",
			HostKeyPath: ".ssh/pong_host_key",
		},
	}
}

// DefaultPath is where Load looks when neither an argument nor PONG_CONFIG names a file.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "pong.toml"
	}
	return filepath.Join(dir, "pong", "config.toml")
}

// Load builds a Config from the defaults, an optional TOML file and the
// environment, in that order, and validates the result.
//
// An explicitly named file (argument or PONG_CONFIG) must exist; the default
// location is optional.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := true
	if path == "" {
		path = GetEnv(EnvConfigPath, "")
	}
	if path == "" {
		path = DefaultPath()
		explicit = false
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, fmt.Errorf("config environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	var err error
	if c.Window.Width, err = GetEnvInt(EnvWidth, c.Window.Width); err != nil {
		return err
	}
	if c.Window.Height, err = GetEnvInt(EnvHeight, c.Window.Height); err != nil {
		return err
	}
	if c.Window.TickRate, err = GetEnvInt(EnvTickRate, c.Window.TickRate); err != nil {
		return err
	}
	if c.Sound.Volume, err = GetEnvFloat(EnvVolume, c.Sound.Volume); err != nil {
		return err
	}
	if c.Sound.Pan, err = GetEnvFloat(EnvPan, c.Sound.Pan); err != nil {
		return err
	}
	c.LogLevel = GetEnv(EnvLogLevel, c.LogLevel)
	c.SSH.Host = GetEnv(EnvSSHHost, c.SSH.Host)
	c.SSH.Port = GetEnv(EnvSSHPort, c.SSH.Port)
	c.SSH.HostKeyPath = GetEnv(EnvSSHHostKey, c.SSH.HostKeyPath)
	return nil
}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	for name, v := range c.floats() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is %g", ErrInvalid, name, v)
		}
	}

	width, height := float64(c.Window.Width), float64(c.Window.Height)
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.TickRate <= 0:
		return fmt.Errorf("%w: tick rate %d", ErrInvalid, c.Window.TickRate)
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return fmt.Errorf("%w: paddle size %gx%g", ErrInvalid, c.Paddle.Width, c.Paddle.Height)
	case c.Paddle.Height > height:
		return fmt.Errorf("%w: paddle height %g exceeds window height %d", ErrInvalid, c.Paddle.Height, c.Window.Height)
	case c.Paddle.Speed < 0:
		return fmt.Errorf("%w: paddle speed %g", ErrInvalid, c.Paddle.Speed)
	case c.Ball.Radius <= 0:
		return fmt.Errorf("%w: ball radius %g", ErrInvalid, c.Ball.Radius)
	case c.Ball.Radius >= height:
		return fmt.Errorf("%w: ball radius %g does not fit window height %d", ErrInvalid, c.Ball.Radius, c.Window.Height)
	case c.Paddle.Width+c.Ball.Radius/2 >= width/2:
		return fmt.Errorf("%w: paddles and ball do not fit window width %d", ErrInvalid, c.Window.Width)
	case c.Ball.Multiplier.X <= 0 || c.Ball.Multiplier.Y <= 0:
		return fmt.Errorf("%w: ball multiplier must be positive", ErrInvalid)
	case c.Sound.Volume < 0 || c.Sound.Volume > 1:
		return fmt.Errorf("%w: sound volume %g", ErrInvalid, c.Sound.Volume)
	case c.Sound.Pan < -1 || c.Sound.Pan > 1:
		return fmt.Errorf("%w: sound pan %g", ErrInvalid, c.Sound.Pan)
	}
	return nil
}

// floats lists every floating point setting by its TOML name.
func (c Config) floats() map[string]float64 {
	return map[string]float64{
		"paddle.width":      c.Paddle.Width,
		"paddle.height":     c.Paddle.Height,
		"paddle.speed":      c.Paddle.Speed,
		"ball.radius":       c.Ball.Radius,
		"ball.velocity.x":   c.Ball.Velocity.X,
		"ball.velocity.y":   c.Ball.Velocity.Y,
		"ball.multiplier.x": c.Ball.Multiplier.X,
		"ball.multiplier.y": c.Ball.Multiplier.Y,
		"sound.volume":      c.Sound.Volume,
		"sound.pan":         c.Sound.Pan,
		"sound.frequency":   c.Sound.Frequency,
		"sound.duration":    c.Sound.Duration,
	}
}

// TickInterval is the fixed time step between updates.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Window.TickRate)
}

// TickSeconds is TickInterval expressed in seconds.
func (c Config) TickSeconds() float64 {
	return 1.0 / float64(c.Window.TickRate)
}
