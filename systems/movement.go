package systems

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/antcolony/components"
)

// Decision records which branch of the movement policy picked a cell.
type Decision uint8

const (
	DecisionStuck   Decision = iota // no passable cell in the cone
	DecisionGreedy                  // foraging ant stepped onto visible resource
	DecisionExplore                 // random step
	DecisionFollow                  // climbed the pheromone gradient
)

// MoveStats counts policy outcomes for one tick.
type MoveStats struct {
	Moved    int
	Stuck    int
	Greedy   int
	Explored int
	Followed int
}

func (s *MoveStats) record(d Decision) {
	switch d {
	case DecisionStuck:
		s.Stuck++
		return
	case DecisionGreedy:
		s.Greedy++
	case DecisionExplore:
		s.Explored++
	case DecisionFollow:
		s.Followed++
	}
	s.Moved++
}

// MovementSystem moves every ant one cell per tick based on its vision cone,
// visible resource and the pheromone trail for its mode. It never writes to
// the fields.
type MovementSystem struct {
	filter      *ecs.Filter3[components.Position, components.Direction, components.Forager]
	exploreProb float64

	// Scratch buffers reused across ants
	candidates []Cell
	rich       []Cell
	best       []int
}

// NewMovementSystem creates a movement system over all ants in world.
func NewMovementSystem(world *ecs.World, exploreProb float64) *MovementSystem {
	return &MovementSystem{
		filter:      ecs.NewFilter3[components.Position, components.Direction, components.Forager](world),
		exploreProb: exploreProb,
		candidates:  make([]Cell, 0, 8),
		rich:        make([]Cell, 0, 8),
		best:        make([]int, 0, 8),
	}
}

// Update moves all ants using mask as the obstacle layout for this tick.
// Fields are only read, so every ant sees the same values regardless of
// iteration order.
func (s *MovementSystem) Update(f *Fields, mask []float64, rng *rand.Rand) MoveStats {
	var stats MoveStats

	query := s.filter.Query()
	for query.Next() {
		pos, dir, ant := query.Get()

		next, decision := s.Decide(f, mask, *pos, *dir, ant.Mode, rng)
		stats.record(decision)

		if decision == DecisionStuck {
			dir.Reset()
			continue
		}

		dir.DX = next.X - pos.X
		dir.DY = next.Y - pos.Y
		pos.X = next.X
		pos.Y = next.Y
	}

	return stats
}

// Decide picks the next cell for a single ant. It returns DecisionStuck when
// the cone holds no passable cell, in which case the cell is meaningless.
//
// Policy, in priority order:
//  1. a foraging ant that sees resource steps onto one of those cells at random;
//  2. with probability exploreProb the ant steps to any candidate at random;
//  3. otherwise it picks uniformly among the candidates with the highest value
//     of its mode's trail (home trail when returning, food trail when foraging).
func (s *MovementSystem) Decide(f *Fields, mask []float64, pos components.Position, dir components.Direction, mode components.Mode, rng *rand.Rand) (Cell, Decision) {
	s.candidates = f.Candidates(s.candidates[:0], pos, dir, mask)
	if len(s.candidates) == 0 {
		return Cell{X: pos.X, Y: pos.Y}, DecisionStuck
	}

	if mode == components.ModeForaging {
		s.rich = s.rich[:0]
		for _, c := range s.candidates {
			if f.Resource[c.Y*f.W+c.X] > 0 {
				s.rich = append(s.rich, c)
			}
		}
		if len(s.rich) > 0 {
			return s.rich[rng.Intn(len(s.rich))], DecisionGreedy
		}
	}

	if rng.Float64() < s.exploreProb {
		return s.candidates[rng.Intn(len(s.candidates))], DecisionExplore
	}

	trail := f.FoodPheromone
	if mode == components.ModeReturning {
		trail = f.HomePheromone
	}

	s.best = s.best[:0]
	maxP := trail[s.candidates[0].Y*f.W+s.candidates[0].X]
	for i, c := range s.candidates {
		p := trail[c.Y*f.W+c.X]
		switch {
		case p > maxP:
			maxP = p
			s.best = append(s.best[:0], i)
		case p == maxP:
			s.best = append(s.best, i)
		}
	}

	return s.candidates[s.best[rng.Intn(len(s.best))]], DecisionFollow
}
