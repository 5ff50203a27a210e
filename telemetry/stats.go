package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a window of ticks.
type WindowStats struct {
	WindowStartTick int `csv:"-"`
	WindowEndTick   int `csv:"window_end"`

	// Deliveries
	Collected      int     `csv:"collected"`       // delivered during the window
	CollectedTotal int     `csv:"collected_total"` // running counter at window end
	CollectRate    float64 `csv:"collect_rate"`    // deliveries per tick
	PickedUp       int     `csv:"picked_up"`
	Replenishments int     `csv:"replenishments"`

	// Colony state at window end
	Foraging   int    `csv:"foraging"`
	Returning  int    `csv:"returning"`
	ActiveMask string `csv:"active_mask"`

	// Movement decisions during the window
	GreedyMoves  int `csv:"greedy_moves"`
	ExploreMoves int `csv:"explore_moves"`
	FollowMoves  int `csv:"follow_moves"`
	StuckMoves   int `csv:"stuck_moves"`

	// Field totals at window end
	FoodTotal     float64 `csv:"food_total"`
	HomeTotal     float64 `csv:"home_total"`
	ResourceTotal float64 `csv:"resource_total"`

	// Distance of returning ants from the nest (chebyshev cells)
	ReturnDistMean float64 `csv:"return_dist_mean"`
	ReturnDistP50  float64 `csv:"return_dist_p50"`
	ReturnDistP90  float64 `csv:"return_dist_p90"`
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeDistanceStats calculates mean, median and p90 of values.
// values is sorted in place.
func ComputeDistanceStats(values []float64) (mean, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0
	}

	mean = stat.Mean(values, nil)

	sort.Float64s(values)
	return mean, Percentile(values, 0.5), Percentile(values, 0.9)
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", s.WindowStartTick),
		slog.Int("window_end", s.WindowEndTick),
		slog.Int("collected", s.Collected),
		slog.Int("collected_total", s.CollectedTotal),
		slog.Float64("collect_rate", s.CollectRate),
		slog.Int("picked_up", s.PickedUp),
		slog.Int("replenishments", s.Replenishments),
		slog.Int("foraging", s.Foraging),
		slog.Int("returning", s.Returning),
		slog.String("active_mask", s.ActiveMask),
		slog.Int("greedy_moves", s.GreedyMoves),
		slog.Int("explore_moves", s.ExploreMoves),
		slog.Int("follow_moves", s.FollowMoves),
		slog.Int("stuck_moves", s.StuckMoves),
		slog.Float64("food_total", s.FoodTotal),
		slog.Float64("home_total", s.HomeTotal),
		slog.Float64("resource_total", s.ResourceTotal),
		slog.Float64("return_dist_mean", s.ReturnDistMean),
		slog.Float64("return_dist_p50", s.ReturnDistP50),
		slog.Float64("return_dist_p90", s.ReturnDistP90),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"collected", s.Collected,
		"collected_total", s.CollectedTotal,
		"collect_rate", s.CollectRate,
		"picked_up", s.PickedUp,
		"foraging", s.Foraging,
		"returning", s.Returning,
		"active_mask", s.ActiveMask,
		"stuck_moves", s.StuckMoves,
		"food_total", s.FoodTotal,
		"home_total", s.HomeTotal,
		"resource_total", s.ResourceTotal,
		"return_dist_mean", s.ReturnDistMean,
	)
}
