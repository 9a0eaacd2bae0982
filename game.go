package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-forge/config"
	"ebiten-forge/scene"
)

// Game implements ebiten.Game by delegating to a scene stack
type Game struct {
	stack *scene.Stack
}

// NewGame creates the game with the demo scene on the stack
func NewGame(cfg config.Config) *Game {
	g := &Game{stack: scene.NewStack()}
	g.stack.Push(NewDemoScene(cfg))
	return g
}

// Update updates the top scene
func (g *Game) Update() error {
	return g.stack.Update()
}

// Draw draws all scenes bottom to top
func (g *Game) Draw(screen *ebiten.Image) {
	g.stack.Draw(screen)
}

// Layout delegates to the top scene
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.stack.Layout(outsideWidth, outsideHeight)
}
