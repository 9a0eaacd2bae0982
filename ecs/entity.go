package ecs

import "sync/atomic"

// EntityID is a unique identifier for an entity
type EntityID uint64

var nextEntityID uint64 = 0

// NewEntityID generates a new unique entity ID. IDs are never reused,
// even when the entity object itself is recycled through the pool.
func NewEntityID() EntityID {
	return EntityID(atomic.AddUint64(&nextEntityID, 1))
}

// Entity represents a game object managed by the world's entity list
type Entity struct {
	ID   EntityID
	Name string
	// Tags can be used for quick identification (e.g., "player", "enemy")
	Tags map[string]bool
	// Active entities are processed by systems; inactive ones are skipped
	Active bool
	// Visible entities are drawn; invisible ones are skipped by renderers
	Visible bool
	// depth controls draw/sort order; lower values sort first.
	// Changed through World.SetDepth so the list knows to re-sort.
	depth int
}

// Depth returns the entity's sort depth. Lower depths sort first.
func (e *Entity) Depth() int {
	return e.depth
}

// AddTag adds a tag to the entity
func (e *Entity) AddTag(tag string) {
	e.Tags[tag] = true
}

// HasTag checks if the entity has a specific tag
func (e *Entity) HasTag(tag string) bool {
	return e.Tags[tag]
}

// RemoveTag removes a tag from the entity
func (e *Entity) RemoveTag(tag string) {
	delete(e.Tags, tag)
}

// reset scrubs the entity for reuse. The stale ID is overwritten by the
// pool on Obtain.
func (e *Entity) reset() {
	e.Name = ""
	e.Active = true
	e.Visible = true
	e.depth = 0
	for tag := range e.Tags {
		delete(e.Tags, tag)
	}
}
