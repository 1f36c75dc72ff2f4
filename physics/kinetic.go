package physics

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/void-trader/vmath"
)

var (
	ErrInvalidMass   = errors.New("physics: mass must be positive and finite")
	ErrInvalidRadius = errors.New("physics: radius must be non-negative and finite")
)

// MotionBody is the per-entity physical state driven by forces and impulses
// Position is owned by the entity transform, not by the body
type MotionBody struct {
	Velocity vmath.Vec2
	// Heading in radians, unbounded
	Heading float64
	// AngularRate in radians per second, integrated into Heading by Integrate
	AngularRate float64

	mass   float64
	radius float64
}

// NewMotionBody creates an at-rest body, rejecting non-positive mass and negative radius
func NewMotionBody(mass, radius float64) (*MotionBody, error) {
	if !vmath.IsFinite(mass) || mass <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMass, mass)
	}
	if !vmath.IsFinite(radius) || radius < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRadius, radius)
	}
	return &MotionBody{mass: mass, radius: radius}, nil
}

// MustMotionBody is NewMotionBody for compile-time tuning constants, panics on invalid input
func MustMotionBody(mass, radius float64) *MotionBody {
	b, err := NewMotionBody(mass, radius)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *MotionBody) Mass() float64   { return b.mass }
func (b *MotionBody) Radius() float64 { return b.radius }

// HeadingVector returns the unit forward axis (cos θ, sin θ)
func (b *MotionBody) HeadingVector() vmath.Vec2 {
	return vmath.V2FromAngle(b.Heading)
}

// ApplyImpulse adds impulse/mass to velocity (instantaneous momentum transfer)
func (b *MotionBody) ApplyImpulse(impulse vmath.Vec2) {
	b.Velocity = vmath.V2Add(b.Velocity, vmath.V2Scale(impulse, 1/b.mass))
}

// ApplyForce integrates force over dt: v += f/m*dt
func (b *MotionBody) ApplyForce(force vmath.Vec2, dt float64) {
	b.Velocity = vmath.V2Add(b.Velocity, vmath.V2Scale(force, dt/b.mass))
}

// ApplyRotationForce turns the heading directly, no angular momentum
func (b *MotionBody) ApplyRotationForce(rate, dt float64) {
	b.Heading += rate * dt
}

// Integrate returns pos advanced by velocity over dt and advances heading by angular rate
func Integrate(pos vmath.Vec2, b *MotionBody, dt float64) vmath.Vec2 {
	b.Heading += b.AngularRate * dt
	return vmath.V2Add(pos, vmath.V2Scale(b.Velocity, dt))
}
