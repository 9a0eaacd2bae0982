package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type pingEvent struct{ n int }

func (pingEvent) Type() EventType { return "ping" }

func TestEventManagerEmit(t *testing.T) {
	em := NewEventManager()

	var got []int
	em.Subscribe("ping", func(e Event) { got = append(got, e.(pingEvent).n) })
	em.Emit(pingEvent{n: 1})
	em.Emit(pingEvent{n: 2})

	assert.Equal(t, []int{1, 2}, got)
}

func TestEventManagerEmitWithoutSubscribers(t *testing.T) {
	em := NewEventManager()
	em.Emit(pingEvent{n: 1}) // must not panic
}

func TestEventManagerOrderIsRegistrationOrder(t *testing.T) {
	em := NewEventManager()

	var order []string
	em.Subscribe("ping", func(Event) { order = append(order, "first") })
	em.Subscribe("ping", func(Event) { order = append(order, "second") })
	em.Emit(pingEvent{})

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestEventManagerUnsubscribe(t *testing.T) {
	em := NewEventManager()

	calls := 0
	sub := em.Subscribe("ping", func(Event) { calls++ })
	keep := 0
	em.Subscribe("ping", func(Event) { keep++ })

	em.Emit(pingEvent{})
	em.Unsubscribe("ping", sub)
	em.Emit(pingEvent{})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, keep)
}

func TestEventManagerUnsubscribeUnknown(t *testing.T) {
	em := NewEventManager()
	em.Unsubscribe("ping", Subscription(42)) // must not panic
}
