package systems

import (
	"math"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/antcolony/components"
)

type antMapper = ecs.Map3[components.Position, components.Direction, components.Forager]

// newFieldWorld builds a world holding the colony resource and a pheromone
// system over f.
func newFieldWorld(f *Fields, params FieldParams) (*ecs.World, *antMapper, *PheromoneSystem) {
	world := ecs.NewWorld()
	ecs.AddResource(world, &components.Colony{})
	mapper := ecs.NewMap3[components.Position, components.Direction, components.Forager](world)
	return world, mapper, NewPheromoneSystem(world, f.W, params)
}

func spawn(m *antMapper, x, y int, dir components.Direction, mode components.Mode) ecs.Entity {
	return m.NewEntity(&components.Position{X: x, Y: y}, &dir, &components.Forager{Mode: mode})
}

func colonyOf(world *ecs.World) *components.Colony {
	colony := ecs.NewResource[components.Colony](world)
	return colony.Get()
}

func TestPheromoneUpdate_DecayAndFloor(t *testing.T) {
	f := mustFields(t, 3)
	f.FoodPheromone[0] = 1.0
	f.FoodPheromone[1] = 0.015 // decays below the floor
	f.HomePheromone[2] = 0.5

	_, _, s := newFieldWorld(f, FieldParams{DecayRate: 0.6, ResetPeriod: 100, Nest: CenteredNest(3, 0)})
	s.Update(f, 1)

	if math.Abs(f.FoodPheromone[0]-0.6) > 1e-12 {
		t.Errorf("food[0] = %v, want 0.6", f.FoodPheromone[0])
	}
	if f.FoodPheromone[1] != 0 {
		t.Errorf("food[1] = %v, want clamped to 0", f.FoodPheromone[1])
	}
	if math.Abs(f.HomePheromone[2]-0.3) > 1e-12 {
		t.Errorf("home[2] = %v, want 0.3", f.HomePheromone[2])
	}
	for i, v := range f.FoodPheromone {
		if v != 0 && v < PheromoneFloor {
			t.Errorf("food[%d] = %v below floor", i, v)
		}
	}
}

func TestPheromoneUpdate_ForagingDepositsHome(t *testing.T) {
	f := mustFields(t, 5)
	world, m, s := newFieldWorld(f, FieldParams{DepositRate: 0.25, DecayRate: 1, ResetPeriod: 100, Nest: CenteredNest(5, 0)})
	e := spawn(m, 0, 0, components.Direction{DX: 1}, components.ModeForaging)

	stats := s.Update(f, 1)

	if got := f.HomePheromone[f.ID(0, 0)]; got != 0.25 {
		t.Errorf("home(0,0) = %v, want 0.25", got)
	}
	if f.FoodPheromone[f.ID(0, 0)] != 0 {
		t.Error("foraging ant laid food trail")
	}
	_, dir, ant := m.Get(e)
	if ant.Mode != components.ModeForaging || dir.Zero() {
		t.Errorf("ant changed: mode %v heading %v", ant.Mode, *dir)
	}
	if stats.PickedUp != 0 || stats.Delivered != 0 || colonyOf(world).Collected != 0 {
		t.Errorf("unexpected transitions: %+v", stats)
	}
}

func TestPheromoneUpdate_ReturningDepositsFood(t *testing.T) {
	f := mustFields(t, 5)
	f.Resource[f.ID(4, 4)] = 3
	_, m, s := newFieldWorld(f, FieldParams{DepositRate: 0.25, DecayRate: 1, ResetPeriod: 100, Nest: CenteredNest(5, 0)})
	e := spawn(m, 4, 4, components.Direction{DX: 1, DY: 1}, components.ModeReturning)

	s.Update(f, 1)

	if got := f.FoodPheromone[f.ID(4, 4)]; got != 0.25 {
		t.Errorf("food(4,4) = %v, want 0.25", got)
	}
	if f.Resource[f.ID(4, 4)] != 3 {
		t.Error("returning ant consumed resource")
	}
	if _, _, ant := m.Get(e); ant.Mode != components.ModeReturning {
		t.Errorf("mode = %v, want returning", ant.Mode)
	}
}

func TestPheromoneUpdate_PickUp(t *testing.T) {
	f := mustFields(t, 5)
	f.Resource[f.ID(1, 2)] = 1
	world, m, s := newFieldWorld(f, FieldParams{DepositRate: 0.25, DecayRate: 1, ResetPeriod: 100, Nest: CenteredNest(5, 0)})

	first := spawn(m, 1, 2, components.Direction{DX: 0, DY: 1}, components.ModeForaging)
	second := spawn(m, 1, 2, components.Direction{DX: 1, DY: 1}, components.ModeForaging)

	stats := s.Update(f, 1)

	if f.Resource[f.ID(1, 2)] != 0 {
		t.Errorf("resource = %v, want 0", f.Resource[f.ID(1, 2)])
	}
	if stats.PickedUp != 1 || colonyOf(world).Consumed != 1 {
		t.Errorf("picked up %d, consumed %d, want 1 each", stats.PickedUp, colonyOf(world).Consumed)
	}

	_, dir, ant := m.Get(first)
	if ant.Mode != components.ModeReturning || !dir.Zero() {
		t.Errorf("first ant: mode %v heading %v, want returning with reset heading", ant.Mode, *dir)
	}
	_, dir, ant = m.Get(second)
	if ant.Mode != components.ModeForaging || dir.Zero() {
		t.Errorf("second ant: mode %v heading %v, want unchanged forager", ant.Mode, *dir)
	}

	// Both ants lay home trail on the shared cell.
	if got := f.HomePheromone[f.ID(1, 2)]; got != 0.5 {
		t.Errorf("home(1,2) = %v, want 0.5", got)
	}
}

func TestPheromoneUpdate_DeliverAtNest(t *testing.T) {
	f := mustFields(t, 5)
	world, m, s := newFieldWorld(f, FieldParams{DepositRate: 0.25, DecayRate: 1, ResetPeriod: 100, Nest: CenteredNest(5, 0)})
	e := spawn(m, 2, 2, components.Direction{DX: -1, DY: 0}, components.ModeReturning)

	stats := s.Update(f, 1)

	_, dir, ant := m.Get(e)
	if ant.Mode != components.ModeForaging {
		t.Errorf("mode = %v, want foraging", ant.Mode)
	}
	if !dir.Zero() {
		t.Errorf("heading = %v, want reset", *dir)
	}
	if colonyOf(world).Collected != 1 || stats.Delivered != 1 {
		t.Errorf("collected = %d, delivered = %d, want 1", colonyOf(world).Collected, stats.Delivered)
	}
	if f.FoodPheromone[f.ID(2, 2)] != 0 || f.HomePheromone[f.ID(2, 2)] != 0 {
		t.Error("ant deposited on its drop-off tick")
	}
}

func TestPheromoneUpdate_Replenish(t *testing.T) {
	f := mustFields(t, 3)
	f.ResourceTemplate[f.ID(0, 0)] = 2
	world, m, s := newFieldWorld(f, FieldParams{DepositRate: 0.25, DecayRate: 1, ResetPeriod: 10, Nest: CenteredNest(3, 0)})
	spawn(m, 0, 0, components.Direction{}, components.ModeForaging)

	stats := s.Update(f, 0)
	if !stats.Replenished {
		t.Error("tick 0 should replenish")
	}
	// Replenished to 2, then one unit taken.
	if f.Resource[0] != 1 {
		t.Errorf("resource = %v, want 1", f.Resource[0])
	}

	for tick := 1; tick < 10; tick++ {
		if s.Update(f, tick).Replenished {
			t.Fatalf("tick %d replenished", tick)
		}
	}
	if colonyOf(world).Consumed != 1 {
		t.Errorf("consumed = %d, want 1", colonyOf(world).Consumed)
	}

	if !s.Update(f, 10).Replenished {
		t.Error("tick 10 should replenish")
	}
	if colonyOf(world).Consumed != 0 {
		t.Errorf("consumed after reset = %d, want 0", colonyOf(world).Consumed)
	}
}

func TestPheromoneUpdate_DiffusionSpreadsTrail(t *testing.T) {
	f := mustFields(t, 11)
	c := f.ID(5, 5)
	f.HomePheromone[c] = 10

	_, _, s := newFieldWorld(f, FieldParams{DecayRate: 1, Diffuse: true, DiffuseSigma: 1, ResetPeriod: 100, Nest: CenteredNest(11, 0)})
	s.Update(f, 1)

	if f.HomePheromone[c] >= 10 {
		t.Errorf("centre = %v, want spread below 10", f.HomePheromone[c])
	}
	if f.HomePheromone[f.ID(6, 5)] <= 0 || f.HomePheromone[f.ID(5, 4)] <= 0 {
		t.Error("neighbours received no trail")
	}
	if a, b := f.HomePheromone[f.ID(6, 5)], f.HomePheromone[f.ID(4, 5)]; math.Abs(a-b) > 1e-12 {
		t.Errorf("diffusion not symmetric: %v vs %v", a, b)
	}
}
