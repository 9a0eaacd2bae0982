package prefab

import (
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-forge/components"
	"ebiten-forge/ecs"
)

const sparkJSON = `{
	"id": "spark",
	"name": "spark",
	"tags": ["effect"],
	"depth": 20,
	"lifetime": 2,
	"shape": {"kind": "triangle", "width": 10, "height": 14, "color": "#E57373"},
	"velocity": {"dx": 30, "dy": -40}
}`

func newTestSpawner(t *testing.T) (*ecs.World, *Spawner) {
	t.Helper()
	m := NewManager()
	require.NoError(t, m.LoadBytes([]byte(sparkJSON)))
	world := ecs.NewWorld()
	return world, NewSpawner(world, m)
}

func TestSpawnBuildsEntity(t *testing.T) {
	world, spawner := newTestSpawner(t)

	entity, err := spawner.Spawn("spark", 100, 200)
	require.NoError(t, err)

	// Spawn is deferred like any other
	assert.Equal(t, 0, world.EntityCount())
	world.UpdateLists()
	require.Equal(t, 1, world.EntityCount())

	assert.Equal(t, "spark", entity.Name)
	assert.Equal(t, 20, entity.Depth())
	assert.True(t, entity.HasTag("effect"))

	transformComp, ok := world.GetComponent(entity.ID, components.Transform)
	require.True(t, ok)
	transform := transformComp.(*components.TransformComponent)
	assert.Equal(t, 100.0, transform.X)
	assert.Equal(t, 200.0, transform.Y)

	velocityComp, ok := world.GetComponent(entity.ID, components.Velocity)
	require.True(t, ok)
	velocity := velocityComp.(*components.VelocityComponent)
	assert.Equal(t, 30.0, velocity.DX)
	assert.Equal(t, -40.0, velocity.DY)

	lifetimeComp, ok := world.GetComponent(entity.ID, components.Lifetime)
	require.True(t, ok)
	assert.Equal(t, 2.0, lifetimeComp.(*components.LifetimeComponent).Remaining)

	rendererComp, ok := world.GetComponent(entity.ID, components.MeshRenderer)
	require.True(t, ok)
	renderer := rendererComp.(*components.MeshRendererComponent)
	require.NotNil(t, renderer.Mesh)
	assert.Equal(t, 1, renderer.Mesh.TriangleCount())

	tagged := world.WithTag("effect")
	require.Len(t, tagged, 1)
	assert.Equal(t, entity.ID, tagged[0].ID)
}

func TestSpawnUnknownPrefab(t *testing.T) {
	_, spawner := newTestSpawner(t)
	_, err := spawner.Spawn("no-such-prefab", 0, 0)
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrUnknownPrefab))
}

func TestSpawnBadShapeCancelsEntity(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.LoadBytes([]byte(`{
		"id": "broken",
		"name": "broken",
		"shape": {"kind": "dodecahedron", "color": "#FFFFFF"}
	}`)))
	world := ecs.NewWorld()
	spawner := NewSpawner(world, m)

	_, err := spawner.Spawn("broken", 0, 0)
	require.Error(t, err)

	world.UpdateLists()
	assert.Equal(t, 0, world.EntityCount(), "failed spawn must not leave an entity behind")
}
