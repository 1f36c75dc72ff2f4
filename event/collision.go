package event

import (
	"github.com/lixenwraith/void-trader/core"
	"github.com/lixenwraith/void-trader/vmath"
)

// CollisionEvent reports that A touches B within the frame
// Trigger: World.Step detect phase, once per ordered pair (A,B) and (B,A)
// Consumer: gameplay systems after integration | Valid until the next Step
type CollisionEvent struct {
	A, B core.Entity
	// Point is A's estimated world position at contact
	Point vmath.Vec2
	// Ticks elapsed before contact, 0 when already overlapping at frame start
	Ticks int
}

// CollisionBuffer is a frame-owned event list, reset at the start of every frame
// Backing storage is reused across frames; not safe for concurrent use
type CollisionBuffer struct {
	events []CollisionEvent
}

func NewCollisionBuffer(capacity int) *CollisionBuffer {
	return &CollisionBuffer{events: make([]CollisionEvent, 0, capacity)}
}

// Reset empties the buffer keeping capacity
func (b *CollisionBuffer) Reset() {
	clear(b.events)
	b.events = b.events[:0]
}

// Push appends an event
func (b *CollisionBuffer) Push(ev CollisionEvent) {
	b.events = append(b.events, ev)
}

// Events returns the frame's events
// The slice aliases the buffer and is overwritten by the next Reset
func (b *CollisionBuffer) Events() []CollisionEvent {
	return b.events
}

func (b *CollisionBuffer) Len() int {
	return len(b.events)
}
