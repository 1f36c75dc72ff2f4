package gameplay

import (
	"log"
	"time"

	"github.com/lixenwraith/void-trader/config"
	"github.com/lixenwraith/void-trader/core"
	"github.com/lixenwraith/void-trader/engine"
	"github.com/lixenwraith/void-trader/event"
	"github.com/lixenwraith/void-trader/parameter"
)

// Controls are the pilot intents for the current frame
type Controls struct {
	Thrust int // 1 forward, -1 reverse
	Turn   int // 1 counter-clockwise, -1 clockwise
	Strafe int // 1 left, -1 right
	Fire   bool
	// Deploy is edge triggered, cleared once handled
	Deploy bool
}

// PilotSystem maps control intents of one ship onto its motion body
// Forces applied here take effect at the next frame's integration
type PilotSystem struct {
	spawner *Spawner
	notices *Notices
	tuning  config.ShipConfig
	ship    core.Entity

	Controls Controls

	fireReady   time.Duration
	jammerReady time.Duration
}

func NewPilotSystem(spawner *Spawner, notices *Notices, ship core.Entity, tuning config.ShipConfig) *PilotSystem {
	return &PilotSystem{
		spawner: spawner,
		notices: notices,
		tuning:  tuning,
		ship:    ship,
	}
}

func (s *PilotSystem) Name() string  { return "pilot" }
func (s *PilotSystem) Priority() int { return parameter.PriorityPilot }

// Ship returns the piloted entity
func (s *PilotSystem) Ship() core.Entity { return s.ship }

// SetShip hands control to another entity and resets cooldowns
func (s *PilotSystem) SetShip(e core.Entity) {
	s.ship = e
	s.fireReady = 0
	s.jammerReady = 0
	s.Controls = Controls{}
}

func (s *PilotSystem) Update(w *engine.World, events []event.CollisionEvent, dt float64) {
	step := seconds(dt)
	s.fireReady = max(0, s.fireReady-step)
	s.jammerReady = max(0, s.jammerReady-step)

	body := w.Body(s.ship)
	ship, ok := s.spawner.Components.Ship.GetComponent(s.ship)
	if body == nil || !ok || ship.Destroyed() {
		s.Controls.Deploy = false
		return
	}
	ctl := s.Controls
	t := s.tuning

	if ctl.Thrust != 0 {
		dir := float64(sign(ctl.Thrust))
		body.ApplyThrustForceLimited(dir*t.EngineStrength, t.SpeedLimit, dt)
		ship.Thrust = dir
		ship.SideBraking = body.ApplyThrustBraking(t.ThrustBraking, dt)
	} else {
		ship.Thrust = 0
		ship.SideBraking = 0
	}

	if ctl.Strafe != 0 {
		offset := float64(sign(ctl.Strafe)) * parameter.PlayerStrafeOffset
		body.ApplyOffsetThrustForceLimited(t.EngineStrength, offset, t.SpeedLimit, dt)
	}

	if ctl.Turn != 0 {
		body.ApplyRotationForce(float64(sign(ctl.Turn))*t.TurnRate, dt)
	}

	if ctl.Fire && s.fireReady == 0 {
		if _, err := s.spawner.FireBullet(s.ship, ship.Side); err != nil {
			log.Printf("pilot: fire failed: %v", err)
		}
		s.fireReady = parameter.FireCooldown
	}

	if ctl.Deploy {
		s.Controls.Deploy = false
		if s.jammerReady == 0 {
			if e, err := s.spawner.Jammer(s.ship); err != nil {
				log.Printf("pilot: jammer deploy failed: %v", err)
			} else {
				pos, _ := w.Position(e)
				s.notices.Push(NoticeJammerDeployed, e, pos)
				s.jammerReady = parameter.JammerCooldown
			}
		}
	}
}

// JetState reports which maneuver jets a ship shows for its last pilot feedback
type JetState struct {
	Forward, Reverse      bool
	BrakeLeft, BrakeRight bool
}

func Jets(ship *Ship) JetState {
	th := parameter.SideBrakingIndicatorThreshold
	return JetState{
		Forward:    ship.Thrust > th,
		Reverse:    ship.Thrust < -th,
		BrakeLeft:  ship.SideBraking < -th,
		BrakeRight: ship.SideBraking > th,
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
