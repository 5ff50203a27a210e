package game

import (
	"log/slog"

	"github.com/pthm-cable/antcolony/telemetry"
)

// flushTelemetry closes the stats window when it is full.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	stats := g.collector.Flush(g.tick, g.sampleColony())
	perfStats := g.perfCollector.Stats()

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
		g.writeCollected()
	}

	if g.snapshotDir != "" {
		g.saveSnapshot()
	}
}

// writeCollected appends collected records not yet on disk.
func (g *Game) writeCollected() {
	records := g.collector.Records()
	if g.flushedTicks >= len(records) {
		return
	}
	if err := g.outputManager.WriteCollected(records[g.flushedTicks:]); err != nil {
		slog.Error("failed to write collected", "error", err)
		return
	}
	g.flushedTicks = len(records)
}

// sampleColony gathers end-of-window colony state.
func (g *Game) sampleColony() telemetry.ColonySample {
	sample := telemetry.ColonySample{
		CollectedTotal: g.Collected(),
		ActiveMask:     g.activeMask,
		Totals:         g.fields.Totals(),
	}

	query := g.antFilter.Query()
	for query.Next() {
		pos, _, ant := query.Get()
		if ant.Returning() {
			sample.Returning++
			sample.ReturnDists = append(sample.ReturnDists, float64(g.nest.Distance(pos.X, pos.Y)))
		} else {
			sample.Foraging++
		}
	}
	return sample
}

// Snapshot copies the current colony state.
func (g *Game) Snapshot() *telemetry.Snapshot {
	return &telemetry.Snapshot{
		Version:       telemetry.SnapshotVersion,
		RNGSeed:       g.seed,
		Tick:          g.tick,
		Width:         g.fields.W,
		ActiveMask:    g.activeMask.String(),
		Collected:     g.Collected(),
		Ants:          g.Ants(),
		FoodPheromone: append([]float64(nil), g.fields.FoodPheromone...),
		HomePheromone: append([]float64(nil), g.fields.HomePheromone...),
		Resource:      append([]float64(nil), g.fields.Resource...),
	}
}

// saveSnapshot writes the current state to the snapshot directory.
func (g *Game) saveSnapshot() {
	path, err := telemetry.SaveSnapshot(g.Snapshot(), g.snapshotDir)
	if err != nil {
		slog.Error("failed to save snapshot", "error", err)
		return
	}
	if g.logStats {
		slog.Info("snapshot saved", "path", path, "tick", g.tick)
	}
}
