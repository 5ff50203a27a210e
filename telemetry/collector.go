package telemetry

import "github.com/pthm-cable/antcolony/systems"

// CollectedRecord is one row of the per-tick collected-resource series.
type CollectedRecord struct {
	Tick      int `csv:"tick"`
	Collected int `csv:"collected"`
}

// ColonySample is the colony state sampled at a window boundary.
type ColonySample struct {
	Foraging       int
	Returning      int
	ReturnDists    []float64 // distance of each returning ant from the nest
	CollectedTotal int
	ActiveMask     systems.MaskID
	Totals         systems.FieldTotals
}

// Collector accumulates per-tick events into windows and keeps the full
// collected-resource series.
type Collector struct {
	windowTicks     int
	windowStartTick int

	// Event counters for current window
	collected      int
	pickedUp       int
	replenishments int
	moves          systems.MoveStats

	records []CollectedRecord
}

// NewCollector creates a collector flushing every windowTicks ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: windowTicks}
}

// RecordMoves adds a tick of movement outcomes.
func (c *Collector) RecordMoves(m systems.MoveStats) {
	c.moves.Moved += m.Moved
	c.moves.Stuck += m.Stuck
	c.moves.Greedy += m.Greedy
	c.moves.Explored += m.Explored
	c.moves.Followed += m.Followed
}

// RecordFields adds a tick of field outcomes.
func (c *Collector) RecordFields(f systems.FieldStats) {
	c.collected += f.Delivered
	c.pickedUp += f.PickedUp
	if f.Replenished {
		c.replenishments++
	}
}

// RecordTick appends the collected counter as it stood after tick.
func (c *Collector) RecordTick(tick, collectedTotal int) {
	c.records = append(c.records, CollectedRecord{Tick: tick, Collected: collectedTotal})
}

// Records returns the collected counter after every recorded tick.
func (c *Collector) Records() []CollectedRecord {
	return c.records
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int, sample ColonySample) WindowStats {
	var rate float64
	if span := currentTick - c.windowStartTick; span > 0 {
		rate = float64(c.collected) / float64(span)
	}
	distMean, distP50, distP90 := ComputeDistanceStats(sample.ReturnDists)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,

		Collected:      c.collected,
		CollectedTotal: sample.CollectedTotal,
		CollectRate:    rate,
		PickedUp:       c.pickedUp,
		Replenishments: c.replenishments,

		Foraging:   sample.Foraging,
		Returning:  sample.Returning,
		ActiveMask: sample.ActiveMask.String(),

		GreedyMoves:  c.moves.Greedy,
		ExploreMoves: c.moves.Explored,
		FollowMoves:  c.moves.Followed,
		StuckMoves:   c.moves.Stuck,

		FoodTotal:     sample.Totals.Food,
		HomeTotal:     sample.Totals.Home,
		ResourceTotal: sample.Totals.Resource,

		ReturnDistMean: distMean,
		ReturnDistP50:  distP50,
		ReturnDistP90:  distP90,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.collected = 0
	c.pickedUp = 0
	c.replenishments = 0
	c.moves = systems.MoveStats{}

	return stats
}
