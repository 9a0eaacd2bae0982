package ecs

import "sort"

// EntityList is the mutation-buffering collection at the heart of the
// world. Adds and removes requested during a frame are queued and only
// applied by UpdateLists, so systems can range over Entities without the
// slice shifting under them. The list keeps itself sorted by depth;
// equal depths keep their insertion order.
type EntityList struct {
	entities []*Entity
	toAdd    []*Entity
	toRemove []*Entity
	adding   map[EntityID]bool
	removing map[EntityID]bool
	unsorted bool
}

// NewEntityList creates an empty entity list
func NewEntityList() *EntityList {
	return &EntityList{
		entities: make([]*Entity, 0),
		adding:   make(map[EntityID]bool),
		removing: make(map[EntityID]bool),
	}
}

// Add queues an entity for insertion at the next UpdateLists. Queueing
// the same entity twice is a no-op.
func (l *EntityList) Add(e *Entity) {
	if e == nil || l.adding[e.ID] {
		return
	}
	l.adding[e.ID] = true
	l.toAdd = append(l.toAdd, e)
}

// Remove queues an entity for removal at the next UpdateLists. Removing
// an entity whose add is still pending cancels the add instead; the
// entity never becomes visible and no hooks fire for it. The return
// value reports that cancellation.
func (l *EntityList) Remove(e *Entity) (cancelled bool) {
	if e == nil {
		return false
	}
	if l.adding[e.ID] {
		delete(l.adding, e.ID)
		for i, queued := range l.toAdd {
			if queued.ID == e.ID {
				l.toAdd = append(l.toAdd[:i], l.toAdd[i+1:]...)
				break
			}
		}
		return true
	}
	if l.removing[e.ID] {
		return false
	}
	l.removing[e.ID] = true
	l.toRemove = append(l.toRemove, e)
	return false
}

// MarkUnsorted flags the list for a re-sort at the next UpdateLists.
// Called by the world whenever an entity's depth changes.
func (l *EntityList) MarkUnsorted() {
	l.unsorted = true
}

// UpdateLists applies all queued removals, then all queued additions,
// then re-sorts if anything disturbed the depth order. onRemove and
// onAdd run once per applied mutation, in queue order, and may be nil.
func (l *EntityList) UpdateLists(onRemove, onAdd func(*Entity)) {
	if len(l.toRemove) > 0 {
		for _, e := range l.toRemove {
			for i, member := range l.entities {
				if member.ID == e.ID {
					l.entities = append(l.entities[:i], l.entities[i+1:]...)
					break
				}
			}
			delete(l.removing, e.ID)
			if onRemove != nil {
				onRemove(e)
			}
		}
		l.toRemove = l.toRemove[:0]
	}

	if len(l.toAdd) > 0 {
		for _, e := range l.toAdd {
			l.entities = append(l.entities, e)
			delete(l.adding, e.ID)
			if onAdd != nil {
				onAdd(e)
			}
		}
		l.toAdd = l.toAdd[:0]
		l.unsorted = true
	}

	if l.unsorted {
		sort.SliceStable(l.entities, func(i, j int) bool {
			return l.entities[i].depth < l.entities[j].depth
		})
		l.unsorted = false
	}
}

// Entities returns the current membership in depth order. The slice is
// the list's own backing store: safe to range while spawning and
// despawning (those are deferred), but callers must not reorder it.
func (l *EntityList) Entities() []*Entity {
	return l.entities
}

// Len returns the number of entities currently in the list, excluding
// pending additions.
func (l *EntityList) Len() int {
	return len(l.entities)
}

// Pending returns how many additions are queued for the next flush
func (l *EntityList) Pending() int {
	return len(l.toAdd)
}
