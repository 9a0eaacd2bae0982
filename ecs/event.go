package ecs

// EventType identifies different types of events
type EventType string

// Events emitted by the world itself when the entity list is flushed.
const (
	EventEntityAdded   EventType = "entity_added"
	EventEntityRemoved EventType = "entity_removed"
)

// EntityAddedEvent fires when a queued entity becomes part of the world
type EntityAddedEvent struct {
	Entity *Entity
}

func (EntityAddedEvent) Type() EventType { return EventEntityAdded }

// EntityRemovedEvent fires when a queued removal is applied. The entity
// object may be recycled afterwards; keep the ID, not the pointer.
type EntityRemovedEvent struct {
	EntityID EntityID
	Name     string
}

func (EntityRemovedEvent) Type() EventType { return EventEntityRemoved }

// Event interface that all events must implement
type Event interface {
	Type() EventType
}

// EventHandler is a function that processes events
type EventHandler func(Event)

// Subscription identifies a registered handler so it can be removed later.
// Function values cannot be compared in Go, so Subscribe hands out a token.
type Subscription uint64

type subscriber struct {
	id      Subscription
	handler EventHandler
}

// EventManager manages event subscriptions and dispatches
type EventManager struct {
	subscribers map[EventType][]subscriber
	nextID      Subscription
}

// NewEventManager creates a new event manager
func NewEventManager() *EventManager {
	return &EventManager{
		subscribers: make(map[EventType][]subscriber),
	}
}

// Subscribe registers a handler for a specific event type
func (em *EventManager) Subscribe(eventType EventType, handler EventHandler) Subscription {
	em.nextID++
	em.subscribers[eventType] = append(em.subscribers[eventType], subscriber{
		id:      em.nextID,
		handler: handler,
	})
	return em.nextID
}

// Unsubscribe removes the handler registered under the given subscription
func (em *EventManager) Unsubscribe(eventType EventType, sub Subscription) {
	handlers, exists := em.subscribers[eventType]
	if !exists {
		return
	}

	for i, s := range handlers {
		if s.id == sub {
			em.subscribers[eventType] = append(handlers[:i], handlers[i+1:]...)
			break
		}
	}

	if len(em.subscribers[eventType]) == 0 {
		delete(em.subscribers, eventType)
	}
}

// Emit dispatches an event to all subscribed handlers in registration order
func (em *EventManager) Emit(event Event) {
	handlers, exists := em.subscribers[event.Type()]
	if !exists {
		return
	}

	for _, s := range handlers {
		s.handler(event)
	}
}
