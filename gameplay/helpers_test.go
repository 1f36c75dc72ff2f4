package gameplay

import (
	"testing"

	"github.com/lixenwraith/void-trader/config"
	"github.com/lixenwraith/void-trader/core"
	"github.com/lixenwraith/void-trader/parameter"
	"github.com/lixenwraith/void-trader/physics"
	"github.com/lixenwraith/void-trader/vmath"
)

const frame = 1.0 / 60

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := NewGame(config.Default())
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func spawnBullet(t *testing.T, g *Game, pos, vel vmath.Vec2, side Side) core.Entity {
	t.Helper()
	body := physics.MustMotionBody(parameter.BulletMass, parameter.BulletRadius)
	body.Velocity = vel
	e, err := g.World.Spawn(pos, body)
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	g.Components.Bullet.SetComponent(e, &Bullet{
		Side:        side,
		Damage:      5,
		MaxLifetime: parameter.BulletLifetime,
	})
	return e
}

func spawnStillConvoy(t *testing.T, g *Game, pos vmath.Vec2) []core.Entity {
	t.Helper()
	sections, err := g.SpawnConvoy(pos, 0)
	if err != nil {
		t.Fatalf("SpawnConvoy: %v", err)
	}
	for _, e := range sections {
		g.World.Body(e).Velocity = vmath.Vec2{}
	}
	return sections
}

func tickN(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Tick(frame)
	}
}

func playerShip(t *testing.T, g *Game) *Ship {
	t.Helper()
	ship, ok := g.PlayerShip()
	if !ok {
		t.Fatal("Player ship missing")
	}
	return ship
}
