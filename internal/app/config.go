package app

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"turnchart/internal/game"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width    int
	Height   int
	TPS      int
	Metric   string
	Autoplay time.Duration
	Turns    int
	Export   string
	LogLevel string
	Name     string
	Growth   kvList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 960, Height: 540, TPS: 60, Metric: "gold", Turns: 5, LogLevel: "info"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.StringVar(&c.Metric, "metric", c.Metric, "metric charted at startup")
	fs.DurationVar(&c.Autoplay, "autoplay", c.Autoplay, "advance a turn every interval (0 disables)")
	fs.IntVar(&c.Turns, "turns", c.Turns, "turns to simulate in headless mode")
	fs.StringVar(&c.Export, "export", c.Export, "write the chart to this PNG file")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&c.Name, "name", c.Name, "country name")
	fs.Var(&c.Growth, "growth", "per-turn growth override in metric=delta form (repeatable)")
}

// Level parses LogLevel, falling back to info.
func (c *Config) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// Logger returns a text logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.Level()}))
}

// GameConfig builds the country configuration from the growth overrides.
func (c *Config) GameConfig() game.Config {
	m := make(map[string]string, len(c.Growth)+1)
	for _, kv := range c.Growth {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		m[strings.ToLower(strings.TrimSpace(parts[0]))] = strings.TrimSpace(parts[1])
	}
	if c.Name != "" {
		m["name"] = c.Name
	}
	return game.FromMap(m)
}

// Validate rejects settings that cannot produce a usable window.
func (c *Config) Validate() error {
	if c.Width < minWindowWidth || c.Height < minWindowHeight {
		return fmt.Errorf("window %dx%d is smaller than %dx%d", c.Width, c.Height, minWindowWidth, minWindowHeight)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.Turns < 0 {
		return fmt.Errorf("turns must not be negative, got %d", c.Turns)
	}
	return nil
}

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

const (
	minWindowWidth  = 480
	minWindowHeight = 420
)
