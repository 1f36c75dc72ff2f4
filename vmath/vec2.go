package vmath

import (
	"math"
)

// Vec2 is a float64 2D vector in world units
// Used for positions, velocities and forces of motion bodies
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{x, y}
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// V2Cross returns the z component of the 3D cross product (a.X*b.Y - a.Y*b.X)
// Positive when b lies counter-clockwise of a
func V2Cross(a, b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

// V2DistSq returns squared distance between a and b
func V2DistSq(a, b Vec2) float64 {
	return V2MagSq(V2Sub(a, b))
}

// V2Normalize returns unit vector, zero-safe
func V2Normalize(v Vec2) Vec2 {
	mag := V2Mag(v)
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// V2Project returns the projection of v onto axis
// Zero axis yields zero vector
func V2Project(v, axis Vec2) Vec2 {
	axisSq := V2MagSq(axis)
	if axisSq == 0 {
		return Vec2{}
	}
	return V2Scale(axis, V2Dot(v, axis)/axisSq)
}

// V2FromAngle returns the unit vector (cos θ, sin θ)
func V2FromAngle(theta float64) Vec2 {
	sin, cos := math.Sincos(theta)
	return Vec2{cos, sin}
}

// V2Angle returns the angle of v from the +X axis in radians
func V2Angle(v Vec2) float64 {
	return math.Atan2(v.Y, v.X)
}

// V2Rotate rotates v counter-clockwise by theta radians
func V2Rotate(v Vec2, theta float64) Vec2 {
	sin, cos := math.Sincos(theta)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// V2IsFinite reports whether both components are neither NaN nor Inf
func V2IsFinite(v Vec2) bool {
	return IsFinite(v.X) && IsFinite(v.Y)
}

// IsFinite reports whether f is neither NaN nor ±Inf
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// FloorDiv returns floor(f / d) as int, used for grid cell mapping
func FloorDiv(f, d float64) int {
	return int(math.Floor(f / d))
}
