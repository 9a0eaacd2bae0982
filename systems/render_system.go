package systems

import (
	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-forge/components"
	"ebiten-forge/ecs"
	"ebiten-forge/mesh"
)

// RenderSystem draws every visible entity's mesh at its transform.
// The world's entity list is already depth-sorted, so iteration order
// is draw order.
type RenderSystem struct{}

// NewRenderSystem creates a new rendering system
func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Update implements ecs.System; rendering happens in Draw
func (s *RenderSystem) Update(world *ecs.World, dt float64) {}

// Draw renders all visible entities with a mesh renderer and transform
func (s *RenderSystem) Draw(world *ecs.World, screen *ebiten.Image) {
	for _, entity := range world.Entities() {
		if !entity.Visible {
			continue
		}
		rendererComp, ok := world.GetComponent(entity.ID, components.MeshRenderer)
		if !ok {
			continue
		}
		transformComp, ok := world.GetComponent(entity.ID, components.Transform)
		if !ok {
			continue
		}

		renderer := rendererComp.(*components.MeshRendererComponent)
		transform := transformComp.(*components.TransformComponent)
		if renderer.Mesh == nil {
			continue
		}
		renderer.Mesh.Draw(screen, mesh.DrawOptions{
			X:        transform.X,
			Y:        transform.Y,
			ScaleX:   transform.ScaleX,
			ScaleY:   transform.ScaleY,
			Rotation: transform.Rotation,
			Tint:     renderer.Color,
		})
	}
}
