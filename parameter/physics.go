package parameter

import "time"

// Spatial index
const (
	// SpatialCellSize covers the largest gameplay interaction radius within the 3x3 query window
	SpatialCellSize = 200.0
)

// Narrow phase sub-stepping
const (
	// CollisionTickLength is the target sub-tick of the relative-motion walk
	CollisionTickLength = time.Millisecond
	// CollisionMaxTicks caps sub-ticks per pair per frame; larger dt coarsens the step instead
	CollisionMaxTicks = 250
)

// Frame pacing
const (
	FrameRate     = 60
	FrameInterval = time.Second / FrameRate
	// MaxFrameDelta clamps dt after stalls (window drag, debugger) to bound per-frame work
	MaxFrameDelta = 100 * time.Millisecond
)
