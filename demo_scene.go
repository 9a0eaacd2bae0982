package main

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"ebiten-forge/components"
	"ebiten-forge/config"
	"ebiten-forge/ecs"
	"ebiten-forge/editor"
	"ebiten-forge/gamelog"
	"ebiten-forge/prefab"
	"ebiten-forge/systems"
)

const dt = 1.0 / 60.0

// DemoScene exercises the toolkit: prefab-spawned entities moving
// under the built-in systems, with the editor overlay on F1.
type DemoScene struct {
	cfg     config.Config
	world   *ecs.World
	spawner *prefab.Spawner
	editor  *editor.Manager
	logger  zerolog.Logger
}

// NewDemoScene builds the world, systems and initial entities
func NewDemoScene(cfg config.Config) *DemoScene {
	world := ecs.NewWorldWithPoolCapacity(cfg.PoolCapacity)
	world.AddSystem(systems.NewMovementSystem())
	world.AddSystem(systems.NewLifetimeSystem())
	world.AddSystem(systems.NewRenderSystem())

	manager := prefab.NewManager()
	logger := gamelog.Logger().With().Str("module", "demo").Logger()
	if err := manager.LoadDirectory("data/prefabs"); err != nil {
		logger.Warn().Err(err).Msg("failed to load prefabs")
	}

	s := &DemoScene{
		cfg:     cfg,
		world:   world,
		spawner: prefab.NewSpawner(world, manager),
		logger:  logger,
	}
	if cfg.EditorKey {
		s.editor = editor.NewManager(world)
	}
	s.populate()
	return s
}

// populate spawns the initial entity layout
func (s *DemoScene) populate() {
	cx := float64(s.cfg.WindowWidth) / 2
	cy := float64(s.cfg.WindowHeight) / 2

	if _, err := s.spawner.Spawn("player", cx, cy); err != nil {
		s.logger.Warn().Err(err).Msg("failed to spawn player")
	}
	for i := 0; i < 8; i++ {
		angle := 2 * math.Pi * float64(i) / 8
		x := cx + 200*math.Cos(angle)
		y := cy + 200*math.Sin(angle)
		if _, err := s.spawner.Spawn("orb", x, y); err != nil {
			s.logger.Warn().Err(err).Msg("failed to spawn orb")
			return
		}
	}
}

// burst spawns short-lived sparks to exercise the entity pool
func (s *DemoScene) burst(x, y float64) {
	for i := 0; i < 16; i++ {
		entity, err := s.spawner.Spawn("spark", x, y)
		if err != nil {
			s.logger.Warn().Err(err).Msg("failed to spawn spark")
			return
		}
		angle := rand.Float64() * 2 * math.Pi
		speed := 60 + rand.Float64()*120
		s.world.AddComponent(entity.ID, components.Velocity, &components.VelocityComponent{
			DX: speed * math.Cos(angle),
			DY: speed * math.Sin(angle),
		})
	}
}

// Update advances the world one frame and then the editor overlay
func (s *DemoScene) Update() error {
	editorBusy := s.editor != nil && s.editor.CapturingInput()
	if !editorBusy && inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		cx, cy := ebiten.CursorPosition()
		s.burst(float64(cx), float64(cy))
	}

	s.world.Update(dt)

	if s.editor != nil {
		return s.editor.Update()
	}
	return nil
}

// Draw renders the world and the overlay
func (s *DemoScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{16, 16, 24, 255})
	s.world.Draw(screen)
	if s.editor != nil {
		s.editor.Draw(screen)
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f  entities: %d  [Space] burst  [F1] editor",
		ebiten.ActualFPS(), s.world.EntityCount()))
}

// Layout reports the fixed logical screen size
func (s *DemoScene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.cfg.WindowWidth, s.cfg.WindowHeight
}
