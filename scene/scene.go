package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene that can be pushed onto the scene stack.
// A scene owns its world and drives World.Update once per frame.
type Scene interface {
	// Update updates the scene state
	Update() error
	// Draw draws the scene
	Draw(screen *ebiten.Image)
	// Layout handles scene layout
	Layout(outsideWidth, outsideHeight int) (int, int)
}

// Stack manages a stack of scenes: the top scene updates, every scene
// draws bottom to top.
type Stack struct {
	scenes []Scene
}

// NewStack creates a new scene stack
func NewStack() *Stack {
	return &Stack{
		scenes: make([]Scene, 0),
	}
}

// Push adds a new scene to the top of the stack
func (s *Stack) Push(scene Scene) {
	s.scenes = append(s.scenes, scene)
}

// Pop removes the top scene from the stack
func (s *Stack) Pop() Scene {
	if len(s.scenes) == 0 {
		return nil
	}
	top := s.scenes[len(s.scenes)-1]
	s.scenes = s.scenes[:len(s.scenes)-1]
	return top
}

// Peek returns the top scene without removing it
func (s *Stack) Peek() Scene {
	if len(s.scenes) == 0 {
		return nil
	}
	return s.scenes[len(s.scenes)-1]
}

// Len returns the number of scenes on the stack
func (s *Stack) Len() int {
	return len(s.scenes)
}

// Update updates the top scene
func (s *Stack) Update() error {
	if top := s.Peek(); top != nil {
		return top.Update()
	}
	return nil
}

// Draw draws all scenes from bottom to top
func (s *Stack) Draw(screen *ebiten.Image) {
	for _, sc := range s.scenes {
		sc.Draw(screen)
	}
}

// Layout handles layout for the top scene
func (s *Stack) Layout(outsideWidth, outsideHeight int) (int, int) {
	if top := s.Peek(); top != nil {
		return top.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
