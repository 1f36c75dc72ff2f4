package physics

import (
	"math"

	"github.com/lixenwraith/void-trader/vmath"
)

// tangentEpsilon is the off-axis speed, relative to total speed, treated as projection noise
const tangentEpsilon = 1e-9

// ApplyThrustForce pushes along the current heading
func (b *MotionBody) ApplyThrustForce(magnitude, dt float64) {
	b.ApplyForce(vmath.V2Scale(b.HeadingVector(), magnitude), dt)
}

// ApplyThrustForceLimited is ApplyThrustForce that does nothing once forward speed reached ±limit
func (b *MotionBody) ApplyThrustForceLimited(magnitude, limit, dt float64) {
	b.ApplyOffsetThrustForceLimited(magnitude, 0, limit, dt)
}

// ApplyOffsetThrustForceLimited thrusts along heading rotated by offset
// No-op when the requested direction would push the axis speed component past ±limit
func (b *MotionBody) ApplyOffsetThrustForceLimited(magnitude, offset, limit, dt float64) {
	axis := vmath.V2FromAngle(b.Heading + offset)
	forward := vmath.V2Dot(b.Velocity, axis)
	if magnitude > 0 && forward >= limit {
		return
	}
	if magnitude < 0 && forward <= -limit {
		return
	}
	b.ApplyForce(vmath.V2Scale(axis, magnitude), dt)
}

// ForwardSpeed returns the velocity component along heading rotated by offset
func (b *MotionBody) ForwardSpeed(offset float64) float64 {
	return vmath.V2Dot(b.Velocity, vmath.V2FromAngle(b.Heading+offset))
}

// ApplyThrustBraking damps drift perpendicular to heading, see ApplyOffsetThrustBraking
func (b *MotionBody) ApplyThrustBraking(braking, dt float64) float64 {
	return b.ApplyOffsetThrustBraking(braking, 0, dt)
}

// ApplyOffsetThrustBraking applies a braking force of magnitude braking against the
// tangential (off-axis) velocity component
// The removed speed never exceeds the tangential speed, so braking cannot reverse drift
// Returns tangential speed before braking, negative when drift is counter-clockwise of the axis
// The return value is feedback for thruster indicators only
func (b *MotionBody) ApplyOffsetThrustBraking(braking, offset, dt float64) float64 {
	axis := vmath.V2FromAngle(b.Heading + offset)
	tangent := vmath.V2Sub(b.Velocity, vmath.V2Project(b.Velocity, axis))
	speed := vmath.V2Mag(tangent)
	if speed <= tangentEpsilon*math.Max(1, vmath.V2Mag(b.Velocity)) {
		return 0
	}

	dv := min(braking*dt/b.mass, speed)
	if dv > 0 {
		b.Velocity = vmath.V2Sub(b.Velocity, vmath.V2Scale(tangent, dv/speed))
	}

	if vmath.V2Cross(tangent, axis) < 0 {
		return -speed
	}
	return speed
}
