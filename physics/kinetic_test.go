package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/lixenwraith/void-trader/vmath"
)

const epsilon = 1e-9

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func approxVec(a, b vmath.Vec2, tol float64) bool {
	return approxEqual(a.X, b.X, tol) && approxEqual(a.Y, b.Y, tol)
}

func TestNewMotionBody_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		mass    float64
		radius  float64
		wantErr error
	}{
		{"zero mass", 0, 1, ErrInvalidMass},
		{"negative mass", -1, 1, ErrInvalidMass},
		{"nan mass", math.NaN(), 1, ErrInvalidMass},
		{"inf mass", math.Inf(1), 1, ErrInvalidMass},
		{"negative radius", 1, -0.5, ErrInvalidRadius},
		{"nan radius", 1, math.NaN(), ErrInvalidRadius},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewMotionBody(tt.mass, tt.radius)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Expected %v, got %v", tt.wantErr, err)
			}
			if b != nil {
				t.Errorf("Expected nil body on error, got %+v", b)
			}
		})
	}
}

func TestNewMotionBody_ZeroRadiusAllowed(t *testing.T) {
	b, err := NewMotionBody(2, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if b.Mass() != 2 || b.Radius() != 0 {
		t.Errorf("Expected mass 2 radius 0, got %v %v", b.Mass(), b.Radius())
	}
	if b.Velocity != (vmath.Vec2{}) || b.Heading != 0 || b.AngularRate != 0 {
		t.Errorf("Expected body at rest, got %+v", b)
	}
}

func TestMustMotionBody_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for zero mass")
		}
	}()
	MustMotionBody(0, 1)
}

func TestApplyForce_ScalesByMassAndDt(t *testing.T) {
	tests := []struct {
		mass  float64
		force vmath.Vec2
		dt    float64
	}{
		{1, vmath.V2(10, 0), 0.5},
		{4, vmath.V2(-8, 12), 1.0 / 60},
		{0.25, vmath.V2(3, -7), 0.016},
	}

	for _, tt := range tests {
		b := MustMotionBody(tt.mass, 1)
		b.Velocity = vmath.V2(1, 2)
		b.ApplyForce(tt.force, tt.dt)

		want := vmath.V2(1+tt.force.X/tt.mass*tt.dt, 2+tt.force.Y/tt.mass*tt.dt)
		if !approxVec(b.Velocity, want, epsilon) {
			t.Errorf("mass=%v force=%v dt=%v: expected %v, got %v", tt.mass, tt.force, tt.dt, want, b.Velocity)
		}
	}
}

func TestApplyImpulse_DividesByMass(t *testing.T) {
	b := MustMotionBody(2, 1)
	b.ApplyImpulse(vmath.V2(4, -6))
	if !approxVec(b.Velocity, vmath.V2(2, -3), epsilon) {
		t.Errorf("Expected (2,-3), got %v", b.Velocity)
	}
}

func TestApplyThrustForce_AlongHeading(t *testing.T) {
	b := MustMotionBody(1, 1)
	b.Heading = math.Pi / 2
	b.ApplyThrustForce(10, 0.1)
	if !approxVec(b.Velocity, vmath.V2(0, 1), epsilon) {
		t.Errorf("Expected (0,1), got %v", b.Velocity)
	}
}

func TestApplyThrustForceLimited_NeverExceedsLimit(t *testing.T) {
	const (
		limit = 3.0
		dt    = 1.0 / 60
	)

	for _, magnitude := range []float64{5, -5} {
		b := MustMotionBody(1, 1)
		b.Heading = 0.7
		for i := 0; i < 10000; i++ {
			before := b.ForwardSpeed(0)
			b.ApplyThrustForceLimited(magnitude, limit, dt)
			after := b.ForwardSpeed(0)
			// A single step may cross the limit from below, never push further once at or past it
			if math.Abs(before) >= limit && math.Abs(after) > math.Abs(before)+epsilon {
				t.Fatalf("magnitude=%v step %d: forward speed grew past limit %v -> %v", magnitude, i, before, after)
			}
		}
		step := math.Abs(magnitude) * dt
		if math.Abs(b.ForwardSpeed(0)) > limit+step {
			t.Errorf("magnitude=%v: forward speed %v exceeds limit %v", magnitude, b.ForwardSpeed(0), limit)
		}
	}
}

func TestApplyThrustForceLimited_OffAxisHeadings(t *testing.T) {
	for _, heading := range offAxisHeadings {
		b := MustMotionBody(1, 1)
		b.Heading = heading
		for i := 0; i < 600; i++ {
			b.ApplyThrustForceLimited(400, 300, 1.0/60)
			b.ApplyThrustBraking(200, 1.0/60)
		}
		if speed := vmath.V2Mag(b.Velocity); speed > 300+400.0/60+1e-9 || speed < 300 {
			t.Errorf("heading=%v: expected speed at limit, got %v", heading, speed)
		}
		if drift := math.Abs(vmath.V2Cross(b.Velocity, b.HeadingVector())); drift > 1e-9 {
			t.Errorf("heading=%v: expected no lateral drift, got %v", heading, drift)
		}
	}
}

func TestApplyThrustForceLimited_AllowsOpposingThrust(t *testing.T) {
	b := MustMotionBody(1, 1)
	b.Velocity = vmath.V2(10, 0)
	b.ApplyThrustForceLimited(-5, 3, 1)
	if !approxVec(b.Velocity, vmath.V2(5, 0), epsilon) {
		t.Errorf("Expected reverse thrust to slow body to (5,0), got %v", b.Velocity)
	}
}

func TestApplyOffsetThrustForceLimited_UsesRotatedAxis(t *testing.T) {
	b := MustMotionBody(1, 1)
	// Already at limit forward, strafing is still allowed
	b.Velocity = vmath.V2(3, 0)
	b.ApplyOffsetThrustForceLimited(1, math.Pi/2, 3, 1)
	if !approxVec(b.Velocity, vmath.V2(3, 1), epsilon) {
		t.Errorf("Expected strafe to (3,1), got %v", b.Velocity)
	}

	b.ApplyThrustForceLimited(1, 3, 1)
	if !approxVec(b.Velocity, vmath.V2(3, 1), epsilon) {
		t.Errorf("Expected forward thrust blocked at limit, got %v", b.Velocity)
	}
}

func TestApplyRotationForce(t *testing.T) {
	b := MustMotionBody(1, 1)
	b.ApplyRotationForce(5, 0.1)
	b.ApplyRotationForce(-2, 0.5)
	if !approxEqual(b.Heading, -0.5, epsilon) {
		t.Errorf("Expected heading -0.5, got %v", b.Heading)
	}
	if b.AngularRate != 0 {
		t.Errorf("Expected no angular momentum, got %v", b.AngularRate)
	}
}

var offAxisHeadings = []float64{0, 0.1, 0.3, 0.7, 2.2, 4.5}

func TestApplyThrustBraking_AlignedVelocityUnchanged(t *testing.T) {
	for _, heading := range offAxisHeadings {
		b := MustMotionBody(1, 1)
		b.Heading = heading
		// Velocity built from thrust alone lies on the heading axis up to rounding
		b.ApplyThrustForce(600, 1.0/60)
		before := b.Velocity

		if got := b.ApplyThrustBraking(300, 1.0/60); got != 0 {
			t.Errorf("heading=%v: expected 0 feedback, got %v", heading, got)
		}
		if b.Velocity != before {
			t.Errorf("heading=%v: expected velocity %v unchanged, got %v", heading, before, b.Velocity)
		}
	}
}

func TestApplyThrustBraking_NeverOvershoots(t *testing.T) {
	b := MustMotionBody(1, 1)
	b.Velocity = vmath.V2(10, 0.5)

	// Force 300 over 1/60s would remove 5 units, only 0.5 of drift exists
	if got := b.ApplyThrustBraking(300, 1.0/60); !approxEqual(got, -0.5, epsilon) {
		t.Errorf("Expected feedback -0.5, got %v", got)
	}
	if !approxVec(b.Velocity, vmath.V2(10, 0), epsilon) {
		t.Errorf("Expected drift removed without reversal, got %v", b.Velocity)
	}
}

func TestApplyThrustBraking_OpposesTangent(t *testing.T) {
	tests := []struct {
		name     string
		velocity vmath.Vec2
		wantSign float64
	}{
		// Heading +X; +Y drift is counter-clockwise of the axis
		{"ccw drift", vmath.V2(4, 3), -1},
		{"cw drift", vmath.V2(4, -3), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := MustMotionBody(2, 1)
			b.Velocity = tt.velocity
			got := b.ApplyThrustBraking(4, 0.5)

			if !approxEqual(got, tt.wantSign*3, epsilon) {
				t.Errorf("Expected feedback %v, got %v", tt.wantSign*3, got)
			}
			// Braking force 4 / mass 2 * 0.5s = 1 unit of tangential speed removed
			want := vmath.V2(4, tt.velocity.Y-math.Copysign(1, tt.velocity.Y))
			if !approxVec(b.Velocity, want, epsilon) {
				t.Errorf("Expected velocity %v, got %v", want, b.Velocity)
			}
		})
	}
}

func TestApplyOffsetThrustBraking_ZeroVelocity(t *testing.T) {
	b := MustMotionBody(1, 1)
	if got := b.ApplyOffsetThrustBraking(3, 1.2, 1); got != 0 {
		t.Errorf("Expected 0 for body at rest, got %v", got)
	}
}

func TestIntegrate(t *testing.T) {
	b := MustMotionBody(1, 1)
	b.Velocity = vmath.V2(10, -20)
	b.AngularRate = 2

	pos := Integrate(vmath.V2(1, 1), b, 0.5)
	if !approxVec(pos, vmath.V2(6, -9), epsilon) {
		t.Errorf("Expected (6,-9), got %v", pos)
	}
	if !approxEqual(b.Heading, 1, epsilon) {
		t.Errorf("Expected heading 1, got %v", b.Heading)
	}
	if b.Velocity != vmath.V2(10, -20) {
		t.Errorf("Integrate must not change velocity, got %v", b.Velocity)
	}
}
