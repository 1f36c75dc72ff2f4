package gameplay

import (
	"time"

	"github.com/lixenwraith/void-trader/core"
	"github.com/lixenwraith/void-trader/engine"
)

// Side tags friend or foe for bullets and ships
type Side uint8

const (
	SidePlayer Side = iota
	SideEnemy
)

func (s Side) String() string {
	if s == SidePlayer {
		return "player"
	}
	return "enemy"
}

// Ship is a damageable hull protected by shields
type Ship struct {
	Side       Side
	Shields    float64
	MaxShields float64
	Hull       float64
	MaxHull    float64

	// Cargo hold
	Exotic  float64
	Salvage float64

	// Pilot feedback of the last frame, read by indicators
	Thrust      float64 // -1 reverse, 0 idle, 1 forward
	SideBraking float64 // Signed lateral speed being braked
}

// TakeDamage drains shields first, overflow goes to the hull
// Returns true when shields absorbed at least part of the hit
func (s *Ship) TakeDamage(amount float64) bool {
	if amount <= 0 {
		return false
	}
	if s.Shields > 0 {
		absorbed := min(s.Shields, amount)
		s.Shields -= absorbed
		s.Hull -= amount - absorbed
		return true
	}
	s.Hull -= amount
	return false
}

func (s *Ship) Destroyed() bool {
	return s.Hull <= 0
}

// Bullet is a linear projectile with contact damage
type Bullet struct {
	Side        Side
	Owner       core.Entity
	Damage      float64
	Lifetime    time.Duration // Accumulated age
	MaxLifetime time.Duration
}

type PickupKind uint8

const (
	PickupExotic PickupKind = iota
	PickupSalvage
)

// Pickup is collected by flying the player ship into it
type Pickup struct {
	Kind   PickupKind
	Amount float64
}

// CargoSection is one hull segment of a cargo convoy
type CargoSection struct {
	Convoy int
	Index  int
	HP     float64
}

// Turret fires enemy bullets at player ships within range
type Turret struct {
	Range    float64
	Cooldown time.Duration
	Ready    time.Duration // Remaining time until next shot
}

// Jammer projects a hyperdrive jamming field that grows to Radius
type Jammer struct {
	Radius     float64
	GrowthTime time.Duration
	Progress   time.Duration
}

// EffectiveRadius is the field radius at the current progress
func (j *Jammer) EffectiveRadius() float64 {
	if j.GrowthTime <= 0 || j.Progress >= j.GrowthTime {
		return j.Radius
	}
	return j.Radius * float64(j.Progress) / float64(j.GrowthTime)
}

// Jammable marks entities whose hyperdrive can be jammed
type Jammable struct {
	Jammed bool
}

// Components holds one store per gameplay component type
type Components struct {
	Ship     *engine.Store[*Ship]
	Bullet   *engine.Store[*Bullet]
	Pickup   *engine.Store[Pickup]
	Cargo    *engine.Store[*CargoSection]
	Turret   *engine.Store[*Turret]
	Jammer   *engine.Store[*Jammer]
	Jammable *engine.Store[*Jammable]
}

func NewComponents() *Components {
	return &Components{
		Ship:     engine.NewStore[*Ship](),
		Bullet:   engine.NewStore[*Bullet](),
		Pickup:   engine.NewStore[Pickup](),
		Cargo:    engine.NewStore[*CargoSection](),
		Turret:   engine.NewStore[*Turret](),
		Jammer:   engine.NewStore[*Jammer](),
		Jammable: engine.NewStore[*Jammable](),
	}
}

func (c *Components) stores() []engine.AnyStore {
	return []engine.AnyStore{c.Ship, c.Bullet, c.Pickup, c.Cargo, c.Turret, c.Jammer, c.Jammable}
}

// Sweep drops components of entities that fail alive
func (c *Components) Sweep(alive func(core.Entity) bool) {
	for _, s := range c.stores() {
		s.Retain(alive)
	}
}

// Remove drops every component of e
func (c *Components) Remove(e core.Entity) {
	for _, s := range c.stores() {
		s.RemoveEntity(e)
	}
}

func (c *Components) Clear() {
	for _, s := range c.stores() {
		s.ClearAllComponents()
	}
}
