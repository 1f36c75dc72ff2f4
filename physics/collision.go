package physics

import (
	"math"

	"github.com/lixenwraith/void-trader/parameter"
	"github.com/lixenwraith/void-trader/vmath"
)

// CollisionConfig tunes narrow phase sub-stepping
type CollisionConfig struct {
	TickLength float64 // Target sub-tick in seconds
	MaxTicks   int     // Sub-tick cap per pair per frame
}

// DefaultCollisionConfig returns the parameter package defaults
func DefaultCollisionConfig() CollisionConfig {
	return CollisionConfig{
		TickLength: parameter.CollisionTickLength.Seconds(),
		MaxTicks:   parameter.CollisionMaxTicks,
	}
}

// Contact describes when and where a pair first touched within a frame
type Contact struct {
	// Ticks elapsed before contact, 0 for overlap at frame start
	Ticks int
	// Elapsed seconds into the frame, Ticks * sub-tick length
	Elapsed float64
	// Offset is the self body displacement up to contact, added to its position for the contact point
	Offset vmath.Vec2
}

// SubTicks returns the sub-tick count and length used to walk dt
// Count is floor(dt/TickLength)+1, capped at MaxTicks; the length stretches to cover dt when capped
func (c CollisionConfig) SubTicks(dt float64) (count int, length float64) {
	if !(dt > 0) || c.TickLength <= 0 || c.MaxTicks <= 0 {
		return 0, 0
	}
	if c.Capped(dt) {
		count = c.MaxTicks
	} else {
		count = int(dt/c.TickLength) + 1
	}
	return count, dt / float64(count)
}

// Capped reports whether dt needs more sub-ticks than MaxTicks allows
// A capped frame stretches each sub-tick to dt/MaxTicks rather than keeping TickLength fixed
func (c CollisionConfig) Capped(dt float64) bool {
	if dt <= 0 || c.TickLength <= 0 {
		return false
	}
	// Compare in float space, dt/TickLength may not fit an int
	return math.Floor(dt/c.TickLength)+1 > float64(c.MaxTicks)
}

// FindCollision walks the relative motion of other against self across dt
// relative is other position minus self position at frame start
// Read-only on both bodies; reports the first sub-tick at which the radii overlap
func FindCollision(self, other *MotionBody, relative vmath.Vec2, dt float64, cfg CollisionConfig) (Contact, bool) {
	radiusSum := self.radius + other.radius
	limitSq := radiusSum * radiusSum

	if vmath.V2MagSq(relative) <= limitSq {
		return Contact{}, true
	}

	relVel := vmath.V2Sub(other.Velocity, self.Velocity)
	if vmath.V2MagSq(relVel) == 0 {
		return Contact{}, false
	}

	ticks, tick := cfg.SubTicks(dt)
	step := vmath.V2Scale(relVel, tick)
	for i := 1; i <= ticks; i++ {
		relative = vmath.V2Add(relative, step)
		if vmath.V2MagSq(relative) <= limitSq {
			elapsed := tick * float64(i)
			return Contact{
				Ticks:   i,
				Elapsed: elapsed,
				Offset:  vmath.V2Scale(self.Velocity, elapsed),
			}, true
		}
	}

	// Tick cap or frame end without contact
	return Contact{}, false
}
