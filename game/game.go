// Package game drives the colony simulation: it owns the ECS world, the
// fields, the seeded RNG and the tick counter, and runs the systems in order.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/antcolony/components"
	"github.com/pthm-cable/antcolony/config"
	"github.com/pthm-cable/antcolony/layout"
	"github.com/pthm-cable/antcolony/systems"
	"github.com/pthm-cable/antcolony/telemetry"
)

// Options configures a Game.
type Options struct {
	Config *config.Config // nil = config.Cfg()
	Layout *layout.Layout // nil = generated from Config.Sim.Seed

	LogStats      bool
	OutputDir     string
	SnapshotDir   string
	StatsCallback func(telemetry.WindowStats)

	// SkipSpawn leaves the colony empty; ants are added with SpawnAnt.
	SkipSpawn bool
}

// Game holds the complete simulation state.
type Game struct {
	cfg  *config.Config
	seed int64
	rng  *rand.Rand

	world     *ecs.World
	antMapper *ecs.Map3[components.Position, components.Direction, components.Forager]
	antFilter *ecs.Filter3[components.Position, components.Direction, components.Forager]
	colony    ecs.Resource[components.Colony]

	fields     *systems.Fields
	nest       systems.Nest
	movement   *systems.MovementSystem
	pheromone  *systems.PheromoneSystem
	registry   *systems.SystemRegistry
	activeMask systems.MaskID

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	statsCallback func(telemetry.WindowStats)
	logStats      bool
	snapshotDir   string
	flushedTicks  int // collected records already written to disk

	tick   int
	nextID uint32
}

// NewGameWithOptions creates a simulation. It fails with a
// *config.ConfigurationError when the layout does not match the grid size.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}
	if err := cfg.Recompute(); err != nil {
		return nil, err
	}

	seed := cfg.Sim.Seed

	lay := opts.Layout
	if lay == nil {
		lay = layout.Generate(cfg, seed)
	}

	fields, err := systems.NewFields(cfg.World.Size, lay.MaskA, lay.MaskB, lay.Resource)
	if err != nil {
		return nil, fmt.Errorf("building fields: %w", err)
	}

	world := ecs.NewWorld()
	ecs.AddResource(world, &components.Colony{})

	g := &Game{
		cfg:    cfg,
		seed:   seed,
		rng:    rand.New(rand.NewSource(seed)),
		world:  world,
		fields: fields,
		nest:   systems.NestFromRect(cfg.Derived.Nest),

		antMapper: ecs.NewMap3[components.Position, components.Direction, components.Forager](world),
		antFilter: ecs.NewFilter3[components.Position, components.Direction, components.Forager](world),
		colony:    ecs.NewResource[components.Colony](world),

		movement:  systems.NewMovementSystem(world, cfg.Movement.ExploreProb),
		pheromone: systems.NewPheromoneSystem(world, cfg.World.Size, systems.FieldParamsFromConfig(cfg)),
		registry:  systems.NewSystemRegistry(),

		collector:     telemetry.NewCollector(cfg.Telemetry.StatsWindow),
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		statsCallback: opts.StatsCallback,
		logStats:      opts.LogStats,
		snapshotDir:   opts.SnapshotDir,
	}

	g.outputManager, err = telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := g.outputManager.WriteConfig(cfg); err != nil {
		g.outputManager.Close()
		return nil, err
	}

	if !opts.SkipSpawn {
		g.spawnInitialPopulation()
	}

	return g, nil
}

// Step advances the simulation by one tick: pick the obstacle mask, move
// ants, then update fields and modes.
func (g *Game) Step() {
	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhaseObstacles)
	g.activeMask = systems.ActiveMask(g.tick, g.cfg.Obstacles.SwitchPeriod)

	g.perfCollector.StartPhase(telemetry.PhaseMovement)
	moves := g.movement.Update(g.fields, g.fields.Mask(g.activeMask), g.rng)

	g.perfCollector.StartPhase(telemetry.PhasePheromone)
	fieldStats := g.pheromone.Update(g.fields, g.tick)

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.collector.RecordMoves(moves)
	g.collector.RecordFields(fieldStats)
	g.collector.RecordTick(g.tick, g.Collected())

	g.tick++
	g.flushTelemetry()

	g.perfCollector.EndTick()
}

// Run advances n ticks.
func (g *Game) Run(n int) {
	for i := 0; i < n; i++ {
		g.Step()
	}
}

// Unload flushes pending output and releases files.
func (g *Game) Unload() {
	if g.outputManager == nil {
		return
	}
	g.writeCollected()
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
	g.outputManager = nil
}

// Tick returns the number of completed ticks.
func (g *Game) Tick() int {
	return g.tick
}

// Seed returns the RNG seed the run started from.
func (g *Game) Seed() int64 {
	return g.seed
}

// Collected returns the number of resource units delivered to the nest.
func (g *Game) Collected() int {
	return g.colony.Get().Collected
}

// Config returns the configuration the game was built with.
func (g *Game) Config() *config.Config {
	return g.cfg
}

// Systems returns the registry of tick systems.
func (g *Game) Systems() *systems.SystemRegistry {
	return g.registry
}
