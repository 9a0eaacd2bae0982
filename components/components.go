package components

import (
	"image/color"

	"ebiten-forge/ecs"
	"ebiten-forge/mesh"
)

// Define component IDs for the toolkit's built-in components
const (
	Transform ecs.ComponentID = iota
	Velocity
	MeshRenderer
	Lifetime
)

// TransformComponent stores entity position, scale and rotation
type TransformComponent struct {
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64 // radians
}

// NewTransformComponent creates a transform at the given position with
// unit scale and no rotation.
func NewTransformComponent(x, y float64) *TransformComponent {
	return &TransformComponent{
		X:      x,
		Y:      y,
		ScaleX: 1,
		ScaleY: 1,
	}
}

// VelocityComponent stores movement in pixels per second
type VelocityComponent struct {
	DX, DY float64
}

// MeshRendererComponent attaches renderable geometry to an entity.
// The mesh is drawn at the entity's transform, tinted by Color.
type MeshRendererComponent struct {
	Mesh  *mesh.Mesh
	Color color.Color
}

// NewMeshRendererComponent wraps a mesh with a neutral white tint
func NewMeshRendererComponent(m *mesh.Mesh) *MeshRendererComponent {
	return &MeshRendererComponent{
		Mesh:  m,
		Color: color.White,
	}
}

// LifetimeComponent despawns the entity once Remaining reaches zero
type LifetimeComponent struct {
	Remaining float64 // seconds
}
