package ecs

// Pool is a free-list cache of entity objects. Despawned entities are
// scrubbed and parked here so steady-state spawning does not allocate.
// Overflow beyond the capacity is dropped and left to the GC.
type Pool struct {
	free     []*Entity
	capacity int
}

// DefaultPoolCapacity bounds the free list when no capacity is configured.
const DefaultPoolCapacity = 256

// NewPool creates a pool holding at most capacity recycled entities
func NewPool(capacity int) *Pool {
	if capacity <= 0 {
		capacity = DefaultPoolCapacity
	}
	return &Pool{
		free:     make([]*Entity, 0, capacity),
		capacity: capacity,
	}
}

// Obtain returns a recycled entity or allocates a new one. The entity
// always carries a fresh ID; stale IDs held by callers never alias it.
func (p *Pool) Obtain() *Entity {
	var e *Entity
	if n := len(p.free); n > 0 {
		e = p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
	} else {
		e = &Entity{Tags: make(map[string]bool)}
		e.reset()
	}
	e.ID = NewEntityID()
	return e
}

// Release scrubs the entity and parks it for reuse if there is room
func (p *Pool) Release(e *Entity) {
	if e == nil || len(p.free) >= p.capacity {
		return
	}
	e.reset()
	p.free = append(p.free, e)
}

// Size returns the number of entities currently parked in the pool
func (p *Pool) Size() int {
	return len(p.free)
}
