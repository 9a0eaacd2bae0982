package scene

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScene struct {
	name    string
	updates int
	w, h    int
}

func (s *fakeScene) Update() error {
	s.updates++
	return nil
}

func (s *fakeScene) Draw(screen *ebiten.Image) {}

func (s *fakeScene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.w, s.h
}

func TestStackPushPopPeek(t *testing.T) {
	stack := NewStack()
	assert.Nil(t, stack.Peek())
	assert.Nil(t, stack.Pop())

	a := &fakeScene{name: "a"}
	b := &fakeScene{name: "b"}
	stack.Push(a)
	stack.Push(b)
	assert.Equal(t, 2, stack.Len())
	assert.Same(t, b, stack.Peek())

	popped := stack.Pop()
	assert.Same(t, b, popped)
	assert.Same(t, a, stack.Peek())
	assert.Equal(t, 1, stack.Len())
}

func TestStackUpdatesOnlyTop(t *testing.T) {
	stack := NewStack()
	bottom := &fakeScene{name: "bottom"}
	top := &fakeScene{name: "top"}
	stack.Push(bottom)
	stack.Push(top)

	require.NoError(t, stack.Update())
	assert.Equal(t, 0, bottom.updates)
	assert.Equal(t, 1, top.updates)
}

func TestStackUpdateEmpty(t *testing.T) {
	stack := NewStack()
	assert.NoError(t, stack.Update())
}

func TestStackLayoutDelegatesToTop(t *testing.T) {
	stack := NewStack()
	stack.Push(&fakeScene{w: 320, h: 240})
	stack.Push(&fakeScene{w: 640, h: 480})

	w, h := stack.Layout(1000, 1000)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}

func TestStackLayoutEmptyPassesThrough(t *testing.T) {
	stack := NewStack()
	w, h := stack.Layout(800, 600)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
}
