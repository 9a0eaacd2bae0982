package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ebiten-forge/ecs"
)

func TestManagerToggle(t *testing.T) {
	m := NewManager(ecs.NewWorld())
	assert.False(t, m.Active())

	m.Toggle()
	assert.True(t, m.Active())
	m.Toggle()
	assert.False(t, m.Active())
}

func TestManagerInactiveNeverCapturesInput(t *testing.T) {
	m := NewManager(ecs.NewWorld())
	assert.False(t, m.CapturingInput())
}

func TestManagerSelect(t *testing.T) {
	w := ecs.NewWorld()
	e := w.Spawn("crate")
	w.UpdateLists()

	m := NewManager(w)
	m.Select(e.ID)
	assert.Equal(t, e.ID, m.selected)
}
