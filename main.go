package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"ebiten-forge/config"
	"ebiten-forge/gamelog"
)

func main() {
	gamelog.Pretty()

	cfg, err := config.Load()
	if err != nil {
		l := gamelog.Logger()
		l.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.Debug {
		gamelog.SetLevel(zerolog.DebugLevel)
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(cfg.WindowTitle)
	if cfg.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	if err := ebiten.RunGame(NewGame(cfg)); err != nil {
		l := gamelog.Logger()
		l.Fatal().Err(err).Msg("game exited with error")
	}
}
