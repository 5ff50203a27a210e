package game

import (
	"gonum.org/v1/gonum/mat"

	"github.com/pthm-cable/antcolony/components"
	"github.com/pthm-cable/antcolony/systems"
	"github.com/pthm-cable/antcolony/telemetry"
)

// Ants returns a copy of every ant's state in processing order.
func (g *Game) Ants() []components.AntState {
	ants := make([]components.AntState, 0, g.cfg.Colony.Ants)
	query := g.antFilter.Query()
	for query.Next() {
		pos, dir, ant := query.Get()
		ants = append(ants, components.AntState{ID: ant.ID, Pos: *pos, Dir: *dir, Mode: ant.Mode})
	}
	return ants
}

// Records returns the collected counter as it stood after each tick.
func (g *Game) Records() []telemetry.CollectedRecord {
	return g.collector.Records()
}

// ActiveMask returns the obstacle layout used by the most recent tick.
func (g *Game) ActiveMask() systems.MaskID {
	return g.activeMask
}

// Nest returns the drop-off rectangle.
func (g *Game) Nest() systems.Nest {
	return g.nest
}

// Consumed returns units taken from the resource layer since its last replenishment.
func (g *Game) Consumed() int {
	return g.colony.Get().Consumed
}

// FieldTotals sums each field layer.
func (g *Game) FieldTotals() systems.FieldTotals {
	return g.fields.Totals()
}

// FoodPheromone returns a copy of the food trail (row = y).
func (g *Game) FoodPheromone() *mat.Dense {
	return g.fields.FoodView()
}

// HomePheromone returns a copy of the home trail (row = y).
func (g *Game) HomePheromone() *mat.Dense {
	return g.fields.HomeView()
}

// Resource returns a copy of the resource layer (row = y).
func (g *Game) Resource() *mat.Dense {
	return g.fields.ResourceView()
}

// ResourceTemplate returns a copy of the replenishment template (row = y).
func (g *Game) ResourceTemplate() *mat.Dense {
	return mat.NewDense(g.fields.W, g.fields.W, append([]float64(nil), g.fields.ResourceTemplate...))
}

// Mask returns a copy of an obstacle layer (row = y).
func (g *Game) Mask(id systems.MaskID) *mat.Dense {
	return g.fields.MaskView(id)
}
