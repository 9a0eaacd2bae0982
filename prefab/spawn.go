package prefab

import (
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"ebiten-forge/components"
	"ebiten-forge/ecs"
	"ebiten-forge/gamelog"
	"ebiten-forge/mesh"
)

// Spawner instantiates prefabs into a world. The entity goes through
// World.Spawn, so it only joins the world at the next list flush.
type Spawner struct {
	world   *ecs.World
	manager *Manager
	logger  zerolog.Logger
}

// NewSpawner creates a spawner for the given world and prefab manager
func NewSpawner(world *ecs.World, manager *Manager) *Spawner {
	return &Spawner{
		world:   world,
		manager: manager,
		logger:  gamelog.Logger().With().Str("module", "prefab").Logger(),
	}
}

// Spawn instantiates the prefab at the given position
func (s *Spawner) Spawn(prefabID string, x, y float64) (*ecs.Entity, error) {
	p, ok := s.manager.Get(prefabID)
	if !ok {
		return nil, eris.Wrapf(ErrUnknownPrefab, "%q", prefabID)
	}

	entity := s.world.Spawn(p.Name)
	s.world.SetDepth(entity.ID, p.Depth)
	for _, tag := range p.Tags {
		s.world.Tag(entity.ID, tag)
	}

	s.world.AddComponent(entity.ID, components.Transform, components.NewTransformComponent(x, y))

	if p.Velocity != nil {
		s.world.AddComponent(entity.ID, components.Velocity, &components.VelocityComponent{
			DX: p.Velocity.DX,
			DY: p.Velocity.DY,
		})
	}

	if p.Lifetime > 0 {
		s.world.AddComponent(entity.ID, components.Lifetime, &components.LifetimeComponent{
			Remaining: p.Lifetime,
		})
	}

	if p.Shape != nil {
		m, err := buildMesh(p.Shape)
		if err != nil {
			s.world.Despawn(entity.ID)
			return nil, eris.Wrapf(err, "prefab %q", prefabID)
		}
		s.world.AddComponent(entity.ID, components.MeshRenderer, components.NewMeshRendererComponent(m))
	}

	s.logger.Debug().
		Str("prefab", prefabID).
		Uint64("entity_id", uint64(entity.ID)).
		Msg("prefab spawned")
	return entity, nil
}

// buildMesh constructs the geometry for a shape spec, centered on the
// origin so the entity transform positions it.
func buildMesh(spec *ShapeSpec) (*mesh.Mesh, error) {
	c, err := ParseHexColor(spec.Color)
	if err != nil {
		return nil, err
	}

	m := mesh.New()
	switch spec.Kind {
	case "rect":
		err = m.AddRect(-spec.Width/2, -spec.Height/2, spec.Width, spec.Height, c)
	case "circle":
		segments := spec.Segments
		if segments == 0 {
			segments = 24
		}
		err = m.AddCircle(0, 0, spec.Radius, segments, c)
	case "triangle":
		err = m.AddTriangle(
			mesh.Point{X: 0, Y: -spec.Height / 2},
			mesh.Point{X: spec.Width / 2, Y: spec.Height / 2},
			mesh.Point{X: -spec.Width / 2, Y: spec.Height / 2},
			c,
		)
	default:
		return nil, eris.Errorf("unknown shape kind %q", spec.Kind)
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}
