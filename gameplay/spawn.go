package gameplay

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/void-trader/config"
	"github.com/lixenwraith/void-trader/core"
	"github.com/lixenwraith/void-trader/engine"
	"github.com/lixenwraith/void-trader/parameter"
	"github.com/lixenwraith/void-trader/physics"
	"github.com/lixenwraith/void-trader/vmath"
)

var ErrDeadEntity = errors.New("gameplay: entity is not alive")

// Spawner creates gameplay entities: a world body plus their components
type Spawner struct {
	World      *engine.World
	Components *Components
}

func NewSpawner(w *engine.World, c *Components) *Spawner {
	return &Spawner{World: w, Components: c}
}

// Player spawns the player ship using the ship tuning
func (s *Spawner) Player(pos vmath.Vec2, tuning config.ShipConfig) (core.Entity, error) {
	body, err := physics.NewMotionBody(tuning.Mass, tuning.Radius)
	if err != nil {
		return core.Entity{}, fmt.Errorf("gameplay: player body: %w", err)
	}
	e, err := s.World.Spawn(pos, body)
	if err != nil {
		return core.Entity{}, err
	}
	s.Components.Ship.SetComponent(e, &Ship{
		Side:       SidePlayer,
		Shields:    parameter.PlayerInitialShields,
		MaxShields: parameter.PlayerInitialShields,
		Hull:       parameter.PlayerInitialHull,
		MaxHull:    parameter.PlayerInitialHull,
	})
	s.Components.Jammable.SetComponent(e, &Jammable{})
	return e, nil
}

// CargoShip spawns a convoy of sections trailing behind pos along heading, cruising forward
// The middle section carries a turret
func (s *Spawner) CargoShip(pos vmath.Vec2, heading float64, convoy int) ([]core.Entity, error) {
	dir := vmath.V2FromAngle(heading)
	velocity := vmath.V2Scale(dir, parameter.CargoCruiseSpeed)

	sections := make([]core.Entity, 0, parameter.CargoSectionCount)
	for i := 0; i < parameter.CargoSectionCount; i++ {
		body := physics.MustMotionBody(parameter.CargoSectionMass, parameter.CargoSectionRadius)
		body.Heading = heading
		body.Velocity = velocity

		at := vmath.V2Sub(pos, vmath.V2Scale(dir, float64(i)*parameter.CargoSectionSpacing))
		e, err := s.World.Spawn(at, body)
		if err != nil {
			return sections, err
		}
		s.Components.Cargo.SetComponent(e, &CargoSection{Convoy: convoy, Index: i, HP: parameter.CargoSectionHP})
		s.Components.Jammable.SetComponent(e, &Jammable{})
		if i == parameter.CargoSectionCount/2 {
			s.Components.Turret.SetComponent(e, &Turret{
				Range:    parameter.TurretRange,
				Cooldown: parameter.TurretCooldown,
				Ready:    parameter.TurretCooldown,
			})
		}
		sections = append(sections, e)
	}
	return sections, nil
}

// Pickup spawns a collectible drifting at velocity
func (s *Spawner) Pickup(pos, velocity vmath.Vec2, kind PickupKind, amount float64) (core.Entity, error) {
	body := physics.MustMotionBody(parameter.PickupMass, parameter.PickupRadius)
	body.Velocity = velocity
	e, err := s.World.Spawn(pos, body)
	if err != nil {
		return core.Entity{}, err
	}
	s.Components.Pickup.SetComponent(e, Pickup{Kind: kind, Amount: amount})
	return e, nil
}

// FireBullet launches a bullet from shooter along its heading
// Bullet velocity is the shooter velocity plus heading times the bullet speed
func (s *Spawner) FireBullet(shooter core.Entity, side Side) (core.Entity, error) {
	body := s.World.Body(shooter)
	if body == nil {
		return core.Entity{}, ErrDeadEntity
	}
	return s.FireBulletAt(shooter, body.HeadingVector(), parameter.BulletSpeed, side)
}

// FireBulletAt launches a bullet from shooter along dir at speed relative to the shooter
func (s *Spawner) FireBulletAt(shooter core.Entity, dir vmath.Vec2, speed float64, side Side) (core.Entity, error) {
	from := s.World.Body(shooter)
	pos, ok := s.World.Position(shooter)
	if from == nil || !ok {
		return core.Entity{}, ErrDeadEntity
	}

	body := physics.MustMotionBody(parameter.BulletMass, parameter.BulletRadius)
	dir = vmath.V2Normalize(dir)
	body.Heading = from.Heading
	if dir != (vmath.Vec2{}) {
		body.Heading = vmath.V2Angle(dir)
	}
	body.Velocity = vmath.V2Add(from.Velocity, vmath.V2Scale(dir, speed))

	e, err := s.World.Spawn(pos, body)
	if err != nil {
		return core.Entity{}, err
	}
	damage := parameter.DamagePlayerBullet
	if side == SideEnemy {
		damage = parameter.DamageEnemyBullet
	}
	s.Components.Bullet.SetComponent(e, &Bullet{
		Side:        side,
		Owner:       shooter,
		Damage:      damage,
		MaxLifetime: parameter.BulletLifetime,
	})
	return e, nil
}

// Jammer deploys a jamming field at the owner's position, drifting with the owner's velocity
func (s *Spawner) Jammer(owner core.Entity) (core.Entity, error) {
	from := s.World.Body(owner)
	pos, ok := s.World.Position(owner)
	if from == nil || !ok {
		return core.Entity{}, ErrDeadEntity
	}
	body := physics.MustMotionBody(parameter.JammerMass, parameter.JammerBodyRadius)
	body.Velocity = from.Velocity

	e, err := s.World.Spawn(pos, body)
	if err != nil {
		return core.Entity{}, err
	}
	s.Components.Jammer.SetComponent(e, &Jammer{
		Radius:     parameter.JammerRadius,
		GrowthTime: parameter.JammerGrowthTime,
	})
	return e, nil
}

// Despawn removes e from the world and drops its components
func (s *Spawner) Despawn(e core.Entity) bool {
	if !s.World.Despawn(e) {
		return false
	}
	s.Components.Remove(e)
	return true
}
