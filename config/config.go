package config

import (
	jlconfig "github.com/JeremyLoy/config"
)

// Config holds engine settings. Fields map to environment variables in
// snake case (WindowWidth -> WINDOW_WIDTH); unset variables keep the
// defaults from Default.
type Config struct {
	WindowWidth  int    `config:"WINDOW_WIDTH"`
	WindowHeight int    `config:"WINDOW_HEIGHT"`
	WindowTitle  string `config:"WINDOW_TITLE"`
	Fullscreen   bool   `config:"FULLSCREEN"`
	PoolCapacity int    `config:"POOL_CAPACITY"`
	EditorKey    bool   `config:"EDITOR_KEY"` // enable the F1 editor toggle
	Debug        bool   `config:"DEBUG"`      // debug-level logging
}

// Default returns the engine defaults
func Default() Config {
	return Config{
		WindowWidth:  1280,
		WindowHeight: 720,
		WindowTitle:  "ebiten-forge",
		Fullscreen:   false,
		PoolCapacity: 256,
		EditorKey:    true,
		Debug:        false,
	}
}

// Load returns the defaults overridden by any matching environment
// variables.
func Load() (Config, error) {
	cfg := Default()
	err := jlconfig.FromEnv().To(&cfg)
	return cfg, err
}
