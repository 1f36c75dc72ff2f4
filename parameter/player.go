package parameter

// Player ship tuning (world units, seconds)
const (
	PlayerMass   = 1.0
	PlayerRadius = 8.0

	// PlayerEngineStrength is forward thrust force
	PlayerEngineStrength = 400.0
	// PlayerSpeedLimit caps forward speed reached through limited thrust
	PlayerSpeedLimit = 300.0
	// PlayerThrustBraking is lateral braking force applied while thrusting
	PlayerThrustBraking = 200.0
	// PlayerTurnRate is heading change in radians per second while turning
	PlayerTurnRate = 5.0
	// PlayerStrafeOffset rotates thrust axis for strafing (±π/2)
	PlayerStrafeOffset = 1.5707963267948966

	PlayerInitialShields = 50.0
	PlayerInitialHull    = 100.0

	// SideBrakingIndicatorThreshold is the minimum braking feedback that lights a maneuver jet
	SideBrakingIndicatorThreshold = 0.1
)

// Terminal input
const (
	// ControlHoldFrames keeps a key intent active between terminal key repeats
	ControlHoldFrames = 6
	// CameraScale is world units per terminal column
	CameraScale = 10.0
)
