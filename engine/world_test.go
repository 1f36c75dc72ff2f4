package engine

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/lixenwraith/void-trader/config"
	"github.com/lixenwraith/void-trader/core"
	"github.com/lixenwraith/void-trader/event"
	"github.com/lixenwraith/void-trader/physics"
	"github.com/lixenwraith/void-trader/vmath"
)

func newTestWorld(t *testing.T) *World {
	t.Helper()
	w, err := NewWorld(config.DefaultPhysics())
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return w
}

func spawn(t *testing.T, w *World, pos vmath.Vec2, vel vmath.Vec2, radius float64) core.Entity {
	t.Helper()
	b := physics.MustMotionBody(1, radius)
	b.Velocity = vel
	e, err := w.Spawn(pos, b)
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	return e
}

func hasPair(events []event.CollisionEvent, a, b core.Entity) bool {
	for _, ev := range events {
		if ev.A == a && ev.B == b {
			return true
		}
	}
	return false
}

func TestEntityTable_GenerationReuse(t *testing.T) {
	tbl := NewEntityTable(4)
	a := tbl.Create()
	if a == (core.Entity{}) || !tbl.Alive(a) {
		t.Fatalf("Expected live non-zero handle, got %v", a)
	}
	if tbl.Alive(core.Entity{}) {
		t.Error("Zero handle must never be alive")
	}

	if !tbl.Destroy(a) {
		t.Fatal("Destroy failed")
	}
	if tbl.Destroy(a) {
		t.Error("Double destroy must fail")
	}

	b := tbl.Create()
	if b.Index != a.Index {
		t.Fatalf("Expected slot reuse, got %v after %v", b, a)
	}
	if b.Generation == a.Generation {
		t.Error("Reused slot must bump generation")
	}
	if tbl.Alive(a) {
		t.Error("Stale handle alive after slot reuse")
	}
	if tbl.Count() != 1 {
		t.Errorf("Expected count 1, got %d", tbl.Count())
	}
}

func TestEntityTable_ClearStalesHandles(t *testing.T) {
	tbl := NewEntityTable(4)
	handles := []core.Entity{tbl.Create(), tbl.Create(), tbl.Create()}
	tbl.Clear()

	for _, h := range handles {
		if tbl.Alive(h) {
			t.Errorf("Handle %v alive after Clear", h)
		}
	}
	if n := len(slices.Collect(tbl.All())); n != 0 {
		t.Errorf("Expected no live handles, got %d", n)
	}
	if e := tbl.Create(); e.Index != 0 {
		t.Errorf("Expected slot 0 reused first, got %v", e)
	}
}

func TestNewWorld_RejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultPhysics()
	cfg.TickLength = 0
	if _, err := NewWorld(cfg); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestSpawn_NilBody(t *testing.T) {
	w := newTestWorld(t)
	if _, err := w.Spawn(vmath.Vec2{}, nil); !errors.Is(err, ErrNilBody) {
		t.Errorf("Expected ErrNilBody, got %v", err)
	}
}

func TestStep_ImmediateCollisionBothOrders(t *testing.T) {
	w := newTestWorld(t)
	a := spawn(t, w, vmath.V2(0, 0), vmath.Vec2{}, 1)
	b := spawn(t, w, vmath.V2(1, 0), vmath.Vec2{}, 1)

	events := w.Step(1.0 / 60)
	if len(events) != 2 {
		t.Fatalf("Expected 2 events, got %d: %+v", len(events), events)
	}
	if !hasPair(events, a, b) || !hasPair(events, b, a) {
		t.Errorf("Expected (a,b) and (b,a), got %+v", events)
	}
	for _, ev := range events {
		if ev.Ticks != 0 {
			t.Errorf("Expected zero ticks, got %d", ev.Ticks)
		}
		if pos, _ := w.Position(ev.A); ev.Point != pos {
			t.Errorf("Expected contact point at A's position %v, got %v", pos, ev.Point)
		}
	}
}

func TestStep_DetectsBeforeIntegrating(t *testing.T) {
	w := newTestWorld(t)
	// Bullet passes fully through the target within one frame
	bullet := spawn(t, w, vmath.V2(0, 0), vmath.V2(6000, 0), 1)
	target := spawn(t, w, vmath.V2(60, 0), vmath.Vec2{}, 32)

	events := w.Step(1.0 / 60)
	if !hasPair(events, bullet, target) {
		t.Fatalf("Expected bullet->target contact, got %+v", events)
	}

	pos, _ := w.Position(bullet)
	if math.Abs(pos.X-100) > 1e-9 {
		t.Errorf("Expected bullet integrated to x=100, got %v", pos)
	}
	for _, ev := range events {
		if ev.A == bullet && (ev.Point.X <= 0 || ev.Point.X >= 60) {
			t.Errorf("Expected contact point between start and target, got %v", ev.Point)
		}
	}
}

func TestStep_NoCollisionOutsideWindow(t *testing.T) {
	w := newTestWorld(t)
	spawn(t, w, vmath.V2(0, 0), vmath.Vec2{}, 1)
	spawn(t, w, vmath.V2(1000, 0), vmath.Vec2{}, 1)

	if events := w.Step(1.0 / 60); len(events) != 0 {
		t.Errorf("Expected no events, got %+v", events)
	}
	if w.Stats().Candidates != 0 {
		t.Errorf("Expected broad phase to prune far pair, got %d candidates", w.Stats().Candidates)
	}
}

func TestStep_BufferResetEachFrame(t *testing.T) {
	w := newTestWorld(t)
	a := spawn(t, w, vmath.V2(0, 0), vmath.Vec2{}, 1)
	spawn(t, w, vmath.V2(1, 0), vmath.Vec2{}, 1)

	if n := len(w.Step(1.0 / 60)); n != 2 {
		t.Fatalf("Expected 2 events, got %d", n)
	}
	w.Body(a).Velocity = vmath.V2(-60000, 0)
	w.Step(1.0 / 60)
	// a is now far away; stale events must not survive
	if events := w.Step(1.0 / 60); len(events) != 0 {
		t.Errorf("Expected no events after separation, got %+v", events)
	}
}

func TestStep_DespawnPurgedFromGrid(t *testing.T) {
	w := newTestWorld(t)
	a := spawn(t, w, vmath.V2(0, 0), vmath.Vec2{}, 1)
	b := spawn(t, w, vmath.V2(1, 0), vmath.Vec2{}, 1)
	w.Step(1.0 / 60)

	if !w.Despawn(b) {
		t.Fatal("Despawn failed")
	}
	if w.Despawn(b) {
		t.Error("Second despawn must fail")
	}

	events := w.Step(1.0 / 60)
	if len(events) != 0 {
		t.Errorf("Expected no events after despawn, got %+v", events)
	}
	if slices.Contains(slices.Collect(w.Grid().Query(vmath.V2(0, 0))), b) {
		t.Error("Despawned entity still in grid")
	}
	if w.Grid().Len() != 1 {
		t.Errorf("Expected 1 grid entry, got %d", w.Grid().Len())
	}
	if w.Body(b) != nil {
		t.Error("Expected nil body for despawned handle")
	}
	if _, ok := w.Position(a); !ok {
		t.Error("Survivor lost")
	}
}

func TestStep_SlotReuseBeforeRetain(t *testing.T) {
	w := newTestWorld(t)
	old := spawn(t, w, vmath.V2(0, 0), vmath.Vec2{}, 1)
	w.Step(1.0 / 60)

	w.Despawn(old)
	// Reuses the slot far away before any retain pass ran
	fresh := spawn(t, w, vmath.V2(5000, 5000), vmath.Vec2{}, 1)
	if fresh.Index != old.Index {
		t.Fatalf("Expected slot reuse, got %v", fresh)
	}
	w.Step(1.0 / 60)

	if got := slices.Collect(w.Grid().Query(vmath.V2(0, 0))); len(got) != 0 {
		t.Errorf("Expected old cell empty, got %v", got)
	}
	if got := slices.Collect(w.Grid().Query(vmath.V2(5000, 5000))); !slices.Equal(got, []core.Entity{fresh}) {
		t.Errorf("Expected fresh handle at new cell, got %v", got)
	}
}

func TestStep_RebucketsMovedBodies(t *testing.T) {
	w := newTestWorld(t)
	e := spawn(t, w, vmath.V2(0, 0), vmath.V2(12000, 0), 1)

	// One second of travel crosses 60 cells
	for i := 0; i < 60; i++ {
		w.Step(1.0 / 60)
	}
	w.Step(0)

	pos, _ := w.Position(e)
	cells := bucketsOf(w.Grid(), e)
	if len(cells) != 1 || cells[0] != w.Grid().CellOf(pos) {
		t.Errorf("Expected single bucket at %v, got %v", w.Grid().CellOf(pos), cells)
	}
}

func TestStep_SetPositionTeleports(t *testing.T) {
	w := newTestWorld(t)
	a := spawn(t, w, vmath.V2(0, 0), vmath.Vec2{}, 1)
	b := spawn(t, w, vmath.V2(3000, 0), vmath.Vec2{}, 1)
	w.Step(1.0 / 60)

	w.SetPosition(b, vmath.V2(1.5, 0))
	events := w.Step(1.0 / 60)
	if !hasPair(events, a, b) {
		t.Errorf("Expected contact after teleport, got %+v", events)
	}
}

func TestStep_DeltaClamping(t *testing.T) {
	w := newTestWorld(t)
	e := spawn(t, w, vmath.V2(0, 0), vmath.V2(10, 0), 1)

	for _, dt := range []float64{-1, math.NaN()} {
		w.Step(dt)
		if w.LastDelta() != 0 {
			t.Errorf("dt=%v: expected 0, got %v", dt, w.LastDelta())
		}
	}
	if pos, _ := w.Position(e); pos != vmath.V2(0, 0) {
		t.Errorf("Expected no movement for invalid dt, got %v", pos)
	}

	w.Step(10)
	if limit := config.DefaultPhysics().MaxFrameDelta.Seconds(); w.LastDelta() != limit {
		t.Errorf("Expected dt clamped to %v, got %v", limit, w.LastDelta())
	}
}

func TestStep_CappedStats(t *testing.T) {
	cfg := config.DefaultPhysics()
	cfg.MaxTicks = 10
	w, err := NewWorld(cfg)
	if err != nil {
		t.Fatal(err)
	}
	w.Step(0.05)
	if s := w.Stats(); !s.Capped || s.SubTicks != 10 {
		t.Errorf("Expected capped frame with 10 sub-ticks, got %+v", s)
	}
	w.Step(0.0055)
	if s := w.Stats(); s.Capped || s.SubTicks != 6 {
		t.Errorf("Expected uncapped frame with 6 sub-ticks, got %+v", s)
	}
}

func TestWorld_ClearStalesHandles(t *testing.T) {
	w := newTestWorld(t)
	a := spawn(t, w, vmath.V2(0, 0), vmath.Vec2{}, 1)
	w.Step(1.0 / 60)
	w.Clear()

	if w.Alive(a) || w.Count() != 0 || w.Grid().Len() != 0 {
		t.Errorf("Expected empty world, alive=%v count=%d grid=%d", w.Alive(a), w.Count(), w.Grid().Len())
	}
}

type recordingSystem struct {
	name     string
	priority int
	log      *[]string
	seen     int
}

func (s *recordingSystem) Update(w *World, events []event.CollisionEvent, dt float64) {
	*s.log = append(*s.log, s.name)
	s.seen = len(events)
}

func (s *recordingSystem) Priority() int { return s.priority }

func TestSimulation_RunsSystemsAfterStepByPriority(t *testing.T) {
	w := newTestWorld(t)
	spawn(t, w, vmath.V2(0, 0), vmath.Vec2{}, 1)
	spawn(t, w, vmath.V2(1, 0), vmath.Vec2{}, 1)

	var order []string
	late := &recordingSystem{name: "late", priority: 20, log: &order}
	early := &recordingSystem{name: "early", priority: 10, log: &order}

	sim := NewSimulation(w)
	sim.AddSystem(late)
	sim.AddSystem(early)

	sim.Tick(1.0 / 60)
	if !slices.Equal(order, []string{"early", "late"}) {
		t.Errorf("Expected early before late, got %v", order)
	}
	if early.seen != 2 || late.seen != 2 {
		t.Errorf("Expected systems to see 2 events, got %d %d", early.seen, late.seen)
	}
	if w.Frame() != 1 {
		t.Errorf("Expected frame 1, got %d", w.Frame())
	}
}
