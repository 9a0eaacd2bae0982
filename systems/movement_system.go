package systems

import (
	"ebiten-forge/components"
	"ebiten-forge/ecs"
)

// MovementSystem integrates velocity into transforms each frame
type MovementSystem struct{}

// NewMovementSystem creates a new movement system
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

// Update moves every active entity with both a transform and a velocity
func (s *MovementSystem) Update(world *ecs.World, dt float64) {
	for _, entity := range world.EntitiesWith(components.Velocity) {
		if !entity.Active {
			continue
		}
		transformComp, ok := world.GetComponent(entity.ID, components.Transform)
		if !ok {
			continue
		}
		velocityComp, _ := world.GetComponent(entity.ID, components.Velocity)

		transform := transformComp.(*components.TransformComponent)
		velocity := velocityComp.(*components.VelocityComponent)
		transform.X += velocity.DX * dt
		transform.Y += velocity.DY * dt
	}
}
