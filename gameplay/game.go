package gameplay

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/lixenwraith/void-trader/config"
	"github.com/lixenwraith/void-trader/core"
	"github.com/lixenwraith/void-trader/engine"
	"github.com/lixenwraith/void-trader/event"
	"github.com/lixenwraith/void-trader/parameter"
	"github.com/lixenwraith/void-trader/vmath"
)

// Game wires the world, gameplay stores and systems of one sandbox session
type Game struct {
	Config     config.Config
	World      *engine.World
	Sim        *engine.Simulation
	Components *Components
	Spawner    *Spawner
	Notices    *Notices
	Pilot      *PilotSystem
	// Session tags log lines of one run; renewed on Reset
	Session uuid.UUID

	convoys int
}

// NewGame validates cfg, builds the world and registers every gameplay system
// The player ship is spawned at the origin
func NewGame(cfg config.Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("gameplay: %w", err)
	}
	w, err := engine.NewWorld(cfg.Physics)
	if err != nil {
		return nil, err
	}

	c := NewComponents()
	g := &Game{
		Config:     cfg,
		World:      w,
		Sim:        engine.NewSimulation(w),
		Components: c,
		Spawner:    NewSpawner(w, c),
		Notices:    &Notices{},
		Session:    uuid.New(),
	}

	player, err := g.Spawner.Player(vmath.Vec2{}, cfg.Ship)
	if err != nil {
		return nil, err
	}
	g.Pilot = NewPilotSystem(g.Spawner, g.Notices, player, cfg.Ship)

	g.Sim.AddSystem(g.Pilot)
	g.Sim.AddSystem(NewTurretSystem(g.Spawner))
	g.Sim.AddSystem(NewCombatSystem(g.Spawner, g.Notices))
	g.Sim.AddSystem(NewPickupSystem(g.Spawner, g.Notices))
	g.Sim.AddSystem(NewJammerSystem(c))
	g.Sim.AddSystem(NewLifetimeSystem(g.Spawner))
	g.Sim.AddSystem(NewCleanupSystem(c))
	log.Printf("gameplay: session %s started", g.Session)
	return g, nil
}

// Tick advances one frame; notices of the previous frame are discarded first
func (g *Game) Tick(dt float64) []event.CollisionEvent {
	g.Notices.Reset()
	return g.Sim.Tick(dt)
}

// Player returns the piloted ship entity
func (g *Game) Player() core.Entity {
	return g.Pilot.Ship()
}

// PlayerShip returns the ship component of the player, false once despawned
func (g *Game) PlayerShip() (*Ship, bool) {
	return g.Components.Ship.GetComponent(g.Player())
}

// SpawnConvoy adds a cargo convoy under a fresh convoy id
func (g *Game) SpawnConvoy(pos vmath.Vec2, heading float64) ([]core.Entity, error) {
	g.convoys++
	return g.Spawner.CargoShip(pos, heading, g.convoys)
}

// Seed populates the sector around the origin with a convoy and pickups
func (g *Game) Seed() error {
	if _, err := g.Spawner.Pickup(vmath.V2(300, 0), vmath.Vec2{}, PickupExotic, parameter.PickupExoticAmount); err != nil {
		return err
	}
	if _, err := g.Spawner.Pickup(vmath.V2(-250, -350), vmath.Vec2{}, PickupSalvage, parameter.PickupSalvageAmount); err != nil {
		return err
	}
	if _, err := g.SpawnConvoy(vmath.V2(-900, 500), 0); err != nil {
		return err
	}
	_, err := g.SpawnConvoy(vmath.V2(1200, -700), 2.5)
	return err
}

// Reset despawns everything and respawns the player at the origin
func (g *Game) Reset() error {
	g.World.Clear()
	g.Components.Clear()
	g.Notices.Reset()
	g.convoys = 0

	player, err := g.Spawner.Player(vmath.Vec2{}, g.Config.Ship)
	if err != nil {
		return err
	}
	g.Pilot.SetShip(player)
	g.Session = uuid.New()
	log.Printf("gameplay: session %s started after reset", g.Session)
	return nil
}
