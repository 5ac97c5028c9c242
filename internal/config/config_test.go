package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 16, cfg.TickIntervalMs)
	assert.Equal(t, 100, cfg.MaxFrameDeltaMs)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("TICK_INTERVAL_MS", "33")
	t.Setenv("MAX_FRAME_DELTA_MS", "0")

	cfg := Load()

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 33, cfg.TickIntervalMs)
	assert.Equal(t, 0, cfg.MaxFrameDeltaMs)
}

func TestLoadIgnoresMalformedInt(t *testing.T) {
	t.Setenv("TICK_INTERVAL_MS", "fast")

	cfg := Load()

	assert.Equal(t, 16, cfg.TickIntervalMs, "malformed values should fall back to the default")
}
