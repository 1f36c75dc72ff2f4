package vmath

import (
	"math"
	"testing"
)

func near(a, b Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestV2Project(t *testing.T) {
	tests := []struct {
		name    string
		v, axis Vec2
		want    Vec2
	}{
		{"aligned", V2(3, 0), V2(2, 0), V2(3, 0)},
		{"diagonal", V2(4, 3), V2(1, 0), V2(4, 0)},
		{"unnormalized axis", V2(0, 5), V2(0, 10), V2(0, 5)},
		{"perpendicular", V2(0, 5), V2(1, 0), V2(0, 0)},
		{"zero axis", V2(1, 1), V2(0, 0), V2(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := V2Project(tt.v, tt.axis); !near(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestV2Normalize_ZeroSafe(t *testing.T) {
	if got := V2Normalize(Vec2{}); got != (Vec2{}) {
		t.Errorf("Expected zero vector, got %v", got)
	}
	if got := V2Mag(V2Normalize(V2(-7, 24))); math.Abs(got-1) > 1e-12 {
		t.Errorf("Expected unit length, got %v", got)
	}
}

func TestV2Rotate_CounterClockwise(t *testing.T) {
	if got := V2Rotate(V2(1, 0), math.Pi/2); !near(got, V2(0, 1)) {
		t.Errorf("Expected (0,1), got %v", got)
	}
	if V2Cross(V2(1, 0), V2(0, 1)) <= 0 {
		t.Error("Expected positive cross for counter-clockwise pair")
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		f, d float64
		want int
	}{
		{0, 200, 0},
		{199.9, 200, 0},
		{-0.1, 200, -1},
		{-400, 200, -2},
		{-400.5, 200, -3},
	}
	for _, tt := range tests {
		if got := FloorDiv(tt.f, tt.d); got != tt.want {
			t.Errorf("FloorDiv(%v, %v): expected %d, got %d", tt.f, tt.d, tt.want, got)
		}
	}
}

func TestV2IsFinite(t *testing.T) {
	if !V2IsFinite(V2(1, -1)) {
		t.Error("Expected finite")
	}
	if V2IsFinite(V2(math.NaN(), 0)) || V2IsFinite(V2(0, math.Inf(-1))) {
		t.Error("Expected non-finite")
	}
}
