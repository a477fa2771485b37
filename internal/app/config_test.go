package app

import (
	"flag"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turnchart/internal/history"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)

	err := fs.Parse([]string{
		"-width", "1280",
		"-metric", "score",
		"-autoplay", "2s",
		"-growth", "wood=3",
		"-growth", "Iron = 4",
		"-growth", "broken",
		"-name", "Avalon",
		"-log-level", "debug",
	})
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.Width)
	assert.Equal(t, "score", cfg.Metric)
	assert.Equal(t, 2*time.Second, cfg.Autoplay)
	assert.Equal(t, slog.LevelDebug, cfg.Level())

	gc := cfg.GameConfig()
	assert.Equal(t, "Avalon", gc.Name)
	assert.Equal(t, int64(3), gc.Growth[history.MetricWood])
	assert.Equal(t, int64(4), gc.Growth[history.MetricIron])
	assert.Equal(t, int64(20), gc.Growth[history.MetricGold])
}

func TestConfigLevelFallback(t *testing.T) {
	cfg := NewConfig()
	cfg.LogLevel = "chatty"
	assert.Equal(t, slog.LevelInfo, cfg.Level())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{name: "defaults", mutate: func(*Config) {}, ok: true},
		{name: "tiny window", mutate: func(c *Config) { c.Width = 100 }, ok: false},
		{name: "zero tps", mutate: func(c *Config) { c.TPS = 0 }, ok: false},
		{name: "negative turns", mutate: func(c *Config) { c.Turns = -1 }, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
