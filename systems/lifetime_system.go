package systems

import (
	"ebiten-forge/components"
	"ebiten-forge/ecs"
)

// LifetimeSystem counts down lifetime components and despawns expired
// entities. Despawns are queued on the world's entity list, so expiring
// entities mid-iteration is safe.
type LifetimeSystem struct{}

// NewLifetimeSystem creates a new lifetime system
func NewLifetimeSystem() *LifetimeSystem {
	return &LifetimeSystem{}
}

// Update ticks down every lifetime and despawns the expired
func (s *LifetimeSystem) Update(world *ecs.World, dt float64) {
	for _, entity := range world.EntitiesWith(components.Lifetime) {
		if !entity.Active {
			continue
		}
		lifetimeComp, _ := world.GetComponent(entity.ID, components.Lifetime)
		lifetime := lifetimeComp.(*components.LifetimeComponent)
		lifetime.Remaining -= dt
		if lifetime.Remaining <= 0 {
			world.Despawn(entity.ID)
		}
	}
}
