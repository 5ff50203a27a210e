package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/antcolony/components"
)

// spawnInitialPopulation creates the colony at the nest centre.
func (g *Game) spawnInitialPopulation() {
	x, y := g.cfg.Derived.SpawnX, g.cfg.Derived.SpawnY

	for i := 0; i < g.cfg.Colony.Ants; i++ {
		var dir components.Direction
		if g.cfg.Colony.RandomDirection {
			dir.DX = g.rng.Intn(3) - 1
			dir.DY = g.rng.Intn(3) - 1
		}
		g.SpawnAnt(x, y, dir, components.ModeForaging)
	}
}

// SpawnAnt adds an ant. Ants are processed in spawn order every tick.
// Panics if (x, y) is off the grid.
func (g *Game) SpawnAnt(x, y int, dir components.Direction, mode components.Mode) ecs.Entity {
	g.fields.ID(x, y)

	g.nextID++
	pos := components.Position{X: x, Y: y}
	ant := components.Forager{ID: g.nextID, Mode: mode}
	return g.antMapper.NewEntity(&pos, &dir, &ant)
}
