package parameter

import "time"

// Bullets
const (
	BulletMass   = 1.0
	BulletRadius = 1.0
	// BulletSpeed is added to the shooter velocity along its heading
	BulletSpeed = 1000.0
	// BulletLifetime despawns stray bullets
	BulletLifetime = 2 * time.Second

	DamagePlayerBullet = 5.0
	DamageEnemyBullet  = 5.0

	// FireCooldown is the minimum interval between player shots
	FireCooldown = 150 * time.Millisecond
)

// Cargo ships
const (
	CargoSectionMass   = 1.0
	CargoSectionRadius = 32.0
	CargoSectionHP     = 40.0
	CargoSectionCount  = 3
	// CargoSectionSpacing is distance between consecutive section centers
	CargoSectionSpacing = 64.0
	CargoCruiseSpeed    = 40.0
)

// Pickups
const (
	PickupMass   = 1.0
	PickupRadius = 16.0

	PickupExoticAmount  = 100.0
	PickupSalvageAmount = 25.0
)

// Jamming fields
const (
	JammerMass = 1.0
	// JammerBodyRadius is zero: jammers never produce contact events
	JammerBodyRadius = 0.0
	JammerRadius     = 1000.0
	// JammerGrowthTime is the time for the field to reach full radius
	JammerGrowthTime = 2 * time.Second
	JammerCooldown   = 5 * time.Second
)

// Turrets mounted on cargo ships
const (
	TurretRange    = 600.0
	TurretCooldown = 1200 * time.Millisecond
	// TurretBulletSpeed is added to the turret body velocity toward the target
	TurretBulletSpeed = 400.0
)
