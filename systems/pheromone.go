package systems

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/floats"

	"github.com/pthm-cable/antcolony/components"
	"github.com/pthm-cable/antcolony/config"
)

// PheromoneFloor is the level below which trail values are treated as absent.
const PheromoneFloor = 0.01

// FieldParams configures the pheromone system.
type FieldParams struct {
	DepositRate  float64
	DecayRate    float64 // multiplicative per tick, 1 = no decay
	Diffuse      bool
	DiffuseSigma float64
	ResetPeriod  int // ticks between resource replenishments
	Nest         Nest
}

// FieldParamsFromConfig extracts pheromone system parameters from cfg.
func FieldParamsFromConfig(cfg *config.Config) FieldParams {
	return FieldParams{
		DepositRate:  cfg.Pheromone.DepositRate,
		DecayRate:    cfg.Pheromone.DecayRate,
		Diffuse:      cfg.Pheromone.Diffuse,
		DiffuseSigma: cfg.Pheromone.DiffuseSigma,
		ResetPeriod:  cfg.Resource.ResetPeriod,
		Nest:         NestFromRect(cfg.Derived.Nest),
	}
}

// FieldStats counts what happened to the fields during one tick.
type FieldStats struct {
	Replenished bool
	Delivered   int // returning ants that reached the nest
	PickedUp    int // foraging ants that took a resource unit
}

// PheromoneSystem advances the trail and resource layers after ants have
// moved: replenish, decay, diffuse, floor, then per-ant deposit, pickup and
// drop-off. New layer values are built in scratch buffers and swapped in at
// the end of the tick.
type PheromoneSystem struct {
	filter *ecs.Filter3[components.Position, components.Direction, components.Forager]
	colony ecs.Resource[components.Colony]
	params FieldParams
	blur   *GaussianBlur

	food []float64
	home []float64
	res  []float64
}

// NewPheromoneSystem creates the field update system for a width×width grid.
// The world must hold a components.Colony resource.
func NewPheromoneSystem(world *ecs.World, width int, params FieldParams) *PheromoneSystem {
	n := width * width
	s := &PheromoneSystem{
		filter: ecs.NewFilter3[components.Position, components.Direction, components.Forager](world),
		colony: ecs.NewResource[components.Colony](world),
		params: params,
		food:   make([]float64, n),
		home:   make([]float64, n),
		res:    make([]float64, n),
	}
	if params.Diffuse {
		s.blur = NewGaussianBlur(width, params.DiffuseSigma)
	}
	return s
}

// Update runs the field cycle for tick. It must run after MovementSystem.Update
// for the same tick.
func (s *PheromoneSystem) Update(f *Fields, tick int) FieldStats {
	var stats FieldStats
	colony := s.colony.Get()

	if tick%s.params.ResetPeriod == 0 {
		f.Replenish()
		colony.Consumed = 0
		stats.Replenished = true
	}

	floats.ScaleTo(s.food, s.params.DecayRate, f.FoodPheromone)
	floats.ScaleTo(s.home, s.params.DecayRate, f.HomePheromone)

	if s.blur != nil {
		s.blur.Apply(s.food, s.food)
		s.blur.Apply(s.home, s.home)
	}

	clampFloor(s.food)
	clampFloor(s.home)

	copy(s.res, f.Resource)

	deposit := s.params.DepositRate
	query := s.filter.Query()
	for query.Next() {
		pos, dir, ant := query.Get()
		id := f.ID(pos.X, pos.Y)

		switch {
		case ant.Mode == components.ModeReturning && s.params.Nest.Contains(pos.X, pos.Y):
			ant.Mode = components.ModeForaging
			colony.Collected++
			dir.Reset()
			stats.Delivered++

		case ant.Mode == components.ModeReturning:
			s.food[id] += deposit

		case s.res[id] > 0:
			// Consumption is sequential so a unit can only be taken once.
			s.res[id]--
			colony.Consumed++
			ant.Mode = components.ModeReturning
			s.home[id] += deposit
			dir.Reset()
			stats.PickedUp++

		default:
			s.home[id] += deposit
		}
	}

	f.FoodPheromone, s.food = s.food, f.FoodPheromone
	f.HomePheromone, s.home = s.home, f.HomePheromone
	f.Resource, s.res = s.res, f.Resource

	return stats
}

// clampFloor zeroes every value below PheromoneFloor.
func clampFloor(field []float64) {
	for i, v := range field {
		if v < PheromoneFloor {
			field[i] = 0
		}
	}
}
