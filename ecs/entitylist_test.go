package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEntity(name string, depth int) *Entity {
	e := &Entity{Tags: make(map[string]bool)}
	e.reset()
	e.ID = NewEntityID()
	e.Name = name
	e.depth = depth
	return e
}

func TestEntityListDefersAdd(t *testing.T) {
	list := NewEntityList()
	e := newTestEntity("a", 0)

	list.Add(e)
	assert.Equal(t, 0, list.Len())
	assert.Equal(t, 1, list.Pending())

	list.UpdateLists(nil, nil)
	assert.Equal(t, 1, list.Len())
	assert.Equal(t, 0, list.Pending())
}

func TestEntityListAddDedup(t *testing.T) {
	list := NewEntityList()
	e := newTestEntity("a", 0)

	list.Add(e)
	list.Add(e)
	list.UpdateLists(nil, nil)
	assert.Equal(t, 1, list.Len())
}

func TestEntityListRemoveDedup(t *testing.T) {
	list := NewEntityList()
	e := newTestEntity("a", 0)
	list.Add(e)
	list.UpdateLists(nil, nil)

	removed := 0
	list.Remove(e)
	list.Remove(e)
	list.UpdateLists(func(*Entity) { removed++ }, nil)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 0, list.Len())
}

func TestEntityListRemovePendingCancelsAdd(t *testing.T) {
	list := NewEntityList()
	e := newTestEntity("a", 0)

	list.Add(e)
	cancelled := list.Remove(e)
	assert.True(t, cancelled)

	added, removed := 0, 0
	list.UpdateLists(func(*Entity) { removed++ }, func(*Entity) { added++ })
	assert.Equal(t, 0, added)
	assert.Equal(t, 0, removed)
	assert.Equal(t, 0, list.Len())
}

func TestEntityListDepthOrder(t *testing.T) {
	list := NewEntityList()
	back := newTestEntity("back", -5)
	mid := newTestEntity("mid", 0)
	front := newTestEntity("front", 5)

	// Queue out of order; the flush sorts.
	list.Add(front)
	list.Add(back)
	list.Add(mid)
	list.UpdateLists(nil, nil)

	entities := list.Entities()
	require.Len(t, entities, 3)
	assert.Equal(t, "back", entities[0].Name)
	assert.Equal(t, "mid", entities[1].Name)
	assert.Equal(t, "front", entities[2].Name)
}

func TestEntityListDepthTiesKeepInsertionOrder(t *testing.T) {
	list := NewEntityList()
	first := newTestEntity("first", 3)
	second := newTestEntity("second", 3)
	third := newTestEntity("third", 3)

	list.Add(first)
	list.Add(second)
	list.Add(third)
	list.UpdateLists(nil, nil)

	entities := list.Entities()
	require.Len(t, entities, 3)
	assert.Equal(t, "first", entities[0].Name)
	assert.Equal(t, "second", entities[1].Name)
	assert.Equal(t, "third", entities[2].Name)
}

func TestEntityListReorderOnlyAtFlush(t *testing.T) {
	list := NewEntityList()
	a := newTestEntity("a", 0)
	b := newTestEntity("b", 1)
	list.Add(a)
	list.Add(b)
	list.UpdateLists(nil, nil)

	// A depth change mid-frame does not move anything until the flush.
	a.depth = 10
	list.MarkUnsorted()
	assert.Equal(t, "a", list.Entities()[0].Name)

	list.UpdateLists(nil, nil)
	assert.Equal(t, "b", list.Entities()[0].Name)
	assert.Equal(t, "a", list.Entities()[1].Name)
}

func TestEntityListHooksRunInQueueOrder(t *testing.T) {
	list := NewEntityList()
	a := newTestEntity("a", 0)
	b := newTestEntity("b", 0)

	var added []string
	list.Add(a)
	list.Add(b)
	list.UpdateLists(nil, func(e *Entity) { added = append(added, e.Name) })
	assert.Equal(t, []string{"a", "b"}, added)

	var removed []string
	list.Remove(b)
	list.Remove(a)
	list.UpdateLists(func(e *Entity) { removed = append(removed, e.Name) }, nil)
	assert.Equal(t, []string{"b", "a"}, removed)
}
