package ecs

import "github.com/hajimehoshi/ebiten/v2"

// System defines an interface for processing entities with specific components
type System interface {
	// Update is called each frame to process entities
	Update(world *World, dt float64)
}

// DrawSystem is implemented by systems that also draw to the screen.
// The world calls Draw on every registered system that implements it.
type DrawSystem interface {
	System
	Draw(world *World, screen *ebiten.Image)
}
