package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 1280, cfg.WindowWidth)
	assert.Equal(t, 720, cfg.WindowHeight)
	assert.Equal(t, 256, cfg.PoolCapacity)
	assert.True(t, cfg.EditorKey)
	assert.False(t, cfg.Fullscreen)
}

func TestLoadKeepsDefaultsWithoutEnv(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default().WindowWidth, cfg.WindowWidth)
}

func TestLoadOverridesFromEnv(t *testing.T) {
	t.Setenv("WINDOW_WIDTH", "640")
	t.Setenv("WINDOW_TITLE", "test-window")
	t.Setenv("FULLSCREEN", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.WindowWidth)
	assert.Equal(t, "test-window", cfg.WindowTitle)
	assert.True(t, cfg.Fullscreen)
	// Untouched fields keep defaults
	assert.Equal(t, 720, cfg.WindowHeight)
}
