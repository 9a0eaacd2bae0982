package ecs

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"ebiten-forge/gamelog"
)

// World manages all entities and components. Entity membership is
// mutation-buffered: Spawn and Despawn only queue work, and the queues
// are flushed once per frame by UpdateLists before systems run. Queries
// (Entities, WithTag, First, EntitiesWith) therefore never observe a
// mid-frame add or remove.
type World struct {
	list *EntityList
	// Flushed members by ID
	entities map[EntityID]*Entity
	// Spawned but not yet flushed into the list
	pending map[EntityID]*Entity
	// Store components as map[EntityID]map[ComponentID]Component
	components map[EntityID]ComponentMap
	// Tag-based entity lookup for quick access
	entityTags map[string]map[EntityID]bool
	// Systems slice to store all systems
	systems []System
	// Event manager for system communication
	eventManager *EventManager
	// Free-list cache for despawned entity objects
	pool   *Pool
	logger zerolog.Logger
}

// NewWorld creates a new ECS world with the default pool capacity
func NewWorld() *World {
	return NewWorldWithPoolCapacity(DefaultPoolCapacity)
}

// NewWorldWithPoolCapacity creates a world whose entity pool holds at
// most capacity recycled entities.
func NewWorldWithPoolCapacity(capacity int) *World {
	return &World{
		list:         NewEntityList(),
		entities:     make(map[EntityID]*Entity),
		pending:      make(map[EntityID]*Entity),
		components:   make(map[EntityID]ComponentMap),
		entityTags:   make(map[string]map[EntityID]bool),
		systems:      make([]System, 0),
		eventManager: NewEventManager(),
		pool:         NewPool(capacity),
		logger:       gamelog.Logger().With().Str("module", "ecs").Logger(),
	}
}

// SetLogger replaces the world's logger
func (w *World) SetLogger(logger zerolog.Logger) {
	w.logger = logger
}

// Spawn obtains an entity from the pool and queues it for insertion at
// the next UpdateLists. Components and tags may be configured right
// away, but the entity stays invisible to queries until the flush.
func (w *World) Spawn(name string) *Entity {
	entity := w.pool.Obtain()
	entity.Name = name
	w.pending[entity.ID] = entity
	w.components[entity.ID] = make(ComponentMap)
	w.list.Add(entity)
	return entity
}

// Despawn queues an entity for removal at the next UpdateLists.
// Despawning an entity whose spawn has not flushed yet cancels the
// spawn outright. Unknown IDs are ignored.
func (w *World) Despawn(entityID EntityID) {
	if entity, ok := w.entities[entityID]; ok {
		w.list.Remove(entity)
		return
	}
	if entity, ok := w.pending[entityID]; ok {
		if cancelled := w.list.Remove(entity); cancelled {
			delete(w.pending, entityID)
			delete(w.components, entityID)
			w.pool.Release(entity)
		}
	}
}

// UpdateLists flushes all queued removals and additions and restores
// depth order. Called once per frame by Update; exposed for drivers
// that need a flush outside the normal update cycle (tests, loaders).
func (w *World) UpdateLists() {
	w.list.UpdateLists(w.applyRemove, w.applyAdd)
}

func (w *World) applyRemove(entity *Entity) {
	for tag := range entity.Tags {
		delete(w.entityTags[tag], entity.ID)
		if len(w.entityTags[tag]) == 0 {
			delete(w.entityTags, tag)
		}
	}
	delete(w.components, entity.ID)
	delete(w.entities, entity.ID)

	w.eventManager.Emit(EntityRemovedEvent{EntityID: entity.ID, Name: entity.Name})
	w.logger.Debug().
		Uint64("entity_id", uint64(entity.ID)).
		Str("name", entity.Name).
		Msg("entity removed")

	w.pool.Release(entity)
}

func (w *World) applyAdd(entity *Entity) {
	delete(w.pending, entity.ID)
	w.entities[entity.ID] = entity
	for tag := range entity.Tags {
		w.indexTag(entity.ID, tag)
	}

	w.eventManager.Emit(EntityAddedEvent{Entity: entity})
	w.logger.Debug().
		Uint64("entity_id", uint64(entity.ID)).
		Str("name", entity.Name).
		Int("depth", entity.depth).
		Msg("entity added")
}

// Update flushes the entity list and then runs all registered systems
// in registration order.
func (w *World) Update(dt float64) {
	w.UpdateLists()
	for _, system := range w.systems {
		system.Update(w, dt)
	}
}

// Draw calls every registered system that implements DrawSystem
func (w *World) Draw(screen *ebiten.Image) {
	for _, system := range w.systems {
		if drawer, ok := system.(DrawSystem); ok {
			drawer.Draw(w, screen)
		}
	}
}

// AddSystem adds a system to the world
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
}

// GetSystems returns all systems registered in the world
func (w *World) GetSystems() []System {
	return w.systems
}

// GetEntity returns an entity by its ID, whether flushed or still
// pending, or nil when unknown.
func (w *World) GetEntity(entityID EntityID) *Entity {
	if entity, ok := w.entities[entityID]; ok {
		return entity
	}
	if entity, ok := w.pending[entityID]; ok {
		return entity
	}
	return nil
}

// Entities returns the flushed membership in depth order. The slice is
// shared with the world; safe to range while spawning and despawning,
// but callers must not reorder it.
func (w *World) Entities() []*Entity {
	return w.list.Entities()
}

// First returns the first entity in depth order with the given name,
// or nil when no flushed entity matches.
func (w *World) First(name string) *Entity {
	for _, entity := range w.list.Entities() {
		if entity.Name == name {
			return entity
		}
	}
	return nil
}

// SetDepth changes an entity's sort depth. The list order is only
// re-established at the next flush, never mid-frame.
func (w *World) SetDepth(entityID EntityID, depth int) {
	entity := w.GetEntity(entityID)
	if entity == nil || entity.depth == depth {
		return
	}
	entity.depth = depth
	if _, flushed := w.entities[entityID]; flushed {
		w.list.MarkUnsorted()
	}
}

// Tag adds a tag to an entity and updates the tag lookup. Tags set on
// a pending entity are indexed when its spawn flushes.
func (w *World) Tag(entityID EntityID, tag string) {
	entity := w.GetEntity(entityID)
	if entity == nil {
		return
	}
	entity.AddTag(tag)
	if _, flushed := w.entities[entityID]; flushed {
		w.indexTag(entityID, tag)
	}
}

// Untag removes a tag from an entity and updates the tag lookup
func (w *World) Untag(entityID EntityID, tag string) {
	entity := w.GetEntity(entityID)
	if entity == nil {
		return
	}
	entity.RemoveTag(tag)
	delete(w.entityTags[tag], entityID)
	if len(w.entityTags[tag]) == 0 {
		delete(w.entityTags, tag)
	}
}

func (w *World) indexTag(entityID EntityID, tag string) {
	if _, ok := w.entityTags[tag]; !ok {
		w.entityTags[tag] = make(map[EntityID]bool)
	}
	w.entityTags[tag][entityID] = true
}

// WithTag returns all flushed entities carrying the tag, in depth
// order. The slice is freshly allocated; an unknown tag yields an
// empty slice, not nil panics downstream.
func (w *World) WithTag(tag string) []*Entity {
	entities := make([]*Entity, 0)
	tagged, ok := w.entityTags[tag]
	if !ok {
		return entities
	}
	for _, entity := range w.list.Entities() {
		if tagged[entity.ID] {
			entities = append(entities, entity)
		}
	}
	return entities
}

// Tags returns every tag currently indexed, in no particular order
func (w *World) Tags() []string {
	tags := make([]string, 0, len(w.entityTags))
	for tag := range w.entityTags {
		tags = append(tags, tag)
	}
	return tags
}

// AddComponent adds a component to an entity
func (w *World) AddComponent(entityID EntityID, componentID ComponentID, component Component) {
	if w.GetEntity(entityID) == nil {
		return
	}
	if _, ok := w.components[entityID]; !ok {
		w.components[entityID] = make(ComponentMap)
	}
	w.components[entityID][componentID] = component
}

// GetComponent retrieves a component from an entity
func (w *World) GetComponent(entityID EntityID, componentID ComponentID) (Component, bool) {
	if componentMap, ok := w.components[entityID]; ok {
		component, ok := componentMap[componentID]
		return component, ok
	}
	return nil, false
}

// HasComponent checks if an entity has a specific component
func (w *World) HasComponent(entityID EntityID, componentID ComponentID) bool {
	if componentMap, ok := w.components[entityID]; ok {
		_, ok := componentMap[componentID]
		return ok
	}
	return false
}

// RemoveComponent removes a component from an entity
func (w *World) RemoveComponent(entityID EntityID, componentID ComponentID) {
	if componentMap, ok := w.components[entityID]; ok {
		delete(componentMap, componentID)
	}
}

// EntitiesWith returns all flushed entities that have a specific
// component, in depth order.
func (w *World) EntitiesWith(componentID ComponentID) []*Entity {
	entities := make([]*Entity, 0)
	for _, entity := range w.list.Entities() {
		if w.HasComponent(entity.ID, componentID) {
			entities = append(entities, entity)
		}
	}
	return entities
}

// GetEventManager returns the world's event manager
func (w *World) GetEventManager() *EventManager {
	return w.eventManager
}

// EmitEvent is a convenience method to emit an event
func (w *World) EmitEvent(event Event) {
	w.eventManager.Emit(event)
}

// EntityCount returns the number of flushed entities
func (w *World) EntityCount() int {
	return w.list.Len()
}

// PendingCount returns the number of spawns waiting for the next flush
func (w *World) PendingCount() int {
	return w.list.Pending()
}

// PoolSize returns how many recycled entities the pool is holding
func (w *World) PoolSize() int {
	return w.pool.Size()
}
