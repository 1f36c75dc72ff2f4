package parameter

// System execution priorities after World.Step (lower runs first)
const (
	PriorityPilot    = 10 // Control forces apply to the next frame's integration
	PriorityTurret   = 20
	PriorityCombat   = 30
	PriorityPickup   = 40
	PriorityJammer   = 50
	PriorityLifetime = 60
	PriorityCleanup  = 1000 // After all others, sweeps stores of despawned entities
)
