package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/pthm-cable/antcolony/config"
	"github.com/pthm-cable/antcolony/game"
	"github.com/pthm-cable/antcolony/layout"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	snapshotDir := flag.String("snapshot-dir", "", "Directory for per-window state snapshots")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (default: sim.seed from config)")
	ticks := flag.Int("ticks", 0, "Number of ticks to run (0 = use config)")
	maskA := flag.String("mask-a", "", "Grayscale PNG for the first obstacle mask")
	maskB := flag.String("mask-b", "", "Grayscale PNG for the second obstacle mask")
	resource := flag.String("resource", "", "Grayscale PNG for resource density (dark = resource)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Only an explicit -seed overrides the config, so 0 is a valid seed
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.Sim.Seed = *seed
		}
	})

	runTicks := cfg.Sim.Ticks
	if *ticks > 0 {
		runTicks = *ticks
	}

	opts := game.Options{
		Config:      cfg,
		LogStats:    *logStats,
		OutputDir:   *outputDir,
		SnapshotDir: *snapshotDir,
	}

	// Images replace the generated layout only when all three are given
	if *maskA != "" || *maskB != "" || *resource != "" {
		if *maskA == "" || *maskB == "" || *resource == "" {
			slog.Error("mask-a, mask-b and resource must be given together")
			os.Exit(1)
		}
		lay, err := layout.Load(*maskA, *maskB, *resource, cfg.World.Size, cfg.Resource.Multiplier)
		if err != nil {
			slog.Error("failed to load layout", "error", err)
			os.Exit(1)
		}
		opts.Layout = lay
	}

	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		slog.Error("failed to create simulation", "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	systemNames := make([]string, 0, len(g.Systems().IDs()))
	for _, id := range g.Systems().IDs() {
		systemNames = append(systemNames, g.Systems().GetName(id))
	}

	slog.Info("starting simulation",
		"seed", g.Seed(),
		"size", cfg.World.Size,
		"ants", cfg.Colony.Ants,
		"ticks", runTicks,
		"systems", systemNames,
	)

	g.Run(runTicks)

	totals := g.FieldTotals()
	slog.Info("simulation finished",
		"tick", g.Tick(),
		"collected", g.Collected(),
		"food_total", totals.Food,
		"home_total", totals.Home,
		"resource_total", totals.Resource,
	)
}
