package ecs

// EventKind identifies scene events.
type EventKind string

const (
	EventShapeSpawned   EventKind = "shape_spawned"
	EventShapeDestroyed EventKind = "shape_destroyed"
)

// Event is emitted by systems and drained by the scene once per frame.
type Event struct {
	Kind   EventKind
	Entity Entity
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
