// Package editor provides an in-process entity inspector composed with
// the debugui immediate-mode GUI. It runs inside the game loop and is
// toggled at runtime, so scenes can be inspected without a separate
// tool.
package editor

import (
	"fmt"
	"image"
	"sort"

	"github.com/ebitengine/debugui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-forge/ecs"
)

// ToggleKey opens and closes the editor overlay
const ToggleKey = ebiten.KeyF1

// Manager owns the overlay windows and the current selection
type Manager struct {
	ui       debugui.DebugUI
	world    *ecs.World
	active   bool
	selected ecs.EntityID
	capture  debugui.InputCapturingState
}

// NewManager creates an editor overlay for the given world
func NewManager(world *ecs.World) *Manager {
	return &Manager{world: world}
}

// Active reports whether the overlay is currently shown
func (m *Manager) Active() bool {
	return m.active
}

// Toggle shows or hides the overlay
func (m *Manager) Toggle() {
	m.active = !m.active
}

// CapturingInput reports whether the overlay consumed pointer or
// keyboard input this frame. The game should skip its own input
// handling when true.
func (m *Manager) CapturingInput() bool {
	return m.active && m.capture != 0
}

// Select sets the inspected entity
func (m *Manager) Select(id ecs.EntityID) {
	m.selected = id
}

// Update handles the toggle key and rebuilds the overlay UI. Call once
// per frame from the scene update, after World.Update.
func (m *Manager) Update() error {
	if inpututil.IsKeyJustPressed(ToggleKey) {
		m.Toggle()
	}
	if !m.active {
		m.capture = 0
		return nil
	}

	// Drop a selection whose entity despawned
	if m.selected != 0 && m.world.GetEntity(m.selected) == nil {
		m.selected = 0
	}

	capture, err := m.ui.Update(func(ctx *debugui.Context) error {
		m.hierarchyWindow(ctx)
		m.inspectorWindow(ctx)
		m.statsWindow(ctx)
		return nil
	})
	m.capture = capture
	return err
}

// Draw renders the overlay on top of the game
func (m *Manager) Draw(screen *ebiten.Image) {
	if !m.active {
		return
	}
	m.ui.Draw(screen)
}

func (m *Manager) hierarchyWindow(ctx *debugui.Context) {
	ctx.Window("Hierarchy", image.Rect(10, 10, 260, 400), func(layout debugui.ContainerLayout) {
		tags := m.world.Tags()
		sort.Strings(tags)
		for _, tag := range tags {
			tagged := m.world.WithTag(tag)
			ctx.TreeNode(fmt.Sprintf("%s (%d)", tag, len(tagged)), func() {
				for _, entity := range tagged {
					m.entityRow(ctx, entity)
				}
			})
		}
		ctx.TreeNode(fmt.Sprintf("all (%d)", m.world.EntityCount()), func() {
			for _, entity := range m.world.Entities() {
				m.entityRow(ctx, entity)
			}
		})
	})
}

func (m *Manager) entityRow(ctx *debugui.Context, entity *ecs.Entity) {
	label := fmt.Sprintf("#%d %s", entity.ID, entity.Name)
	if entity.ID == m.selected {
		label = "> " + label
	}
	id := entity.ID
	ctx.Button(label).On(func() {
		m.selected = id
	})
}

func (m *Manager) inspectorWindow(ctx *debugui.Context) {
	ctx.Window("Inspector", image.Rect(270, 10, 520, 330), func(layout debugui.ContainerLayout) {
		entity := m.world.GetEntity(m.selected)
		if entity == nil {
			ctx.Text("nothing selected")
			return
		}

		ctx.Text(fmt.Sprintf("#%d %s", entity.ID, entity.Name))
		ctx.Checkbox(&entity.Active, "Active")
		ctx.Checkbox(&entity.Visible, "Visible")

		// Depth edits go through the world so re-sorting is deferred
		// to the next list flush.
		id := entity.ID
		depth := entity.Depth()
		ctx.Text(fmt.Sprintf("Depth: %d", depth))
		ctx.Button("Depth -").On(func() {
			m.world.SetDepth(id, depth-1)
		})
		ctx.Button("Depth +").On(func() {
			m.world.SetDepth(id, depth+1)
		})

		tags := make([]string, 0, len(entity.Tags))
		for tag := range entity.Tags {
			tags = append(tags, tag)
		}
		sort.Strings(tags)
		for _, tag := range tags {
			tag := tag
			ctx.Button("untag "+tag).On(func() {
				m.world.Untag(id, tag)
			})
		}

		ctx.Button("Despawn").On(func() {
			m.world.Despawn(id)
		})
	})
}

func (m *Manager) statsWindow(ctx *debugui.Context) {
	ctx.Window("Stats", image.Rect(270, 340, 520, 460), func(layout debugui.ContainerLayout) {
		ctx.Text(fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
		ctx.Text(fmt.Sprintf("Entities: %d", m.world.EntityCount()))
		ctx.Text(fmt.Sprintf("Pending:  %d", m.world.PendingCount()))
		ctx.Text(fmt.Sprintf("Pooled:   %d", m.world.PoolSize()))
	})
}
