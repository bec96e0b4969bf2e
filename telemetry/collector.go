package telemetry

import (
	"log/slog"

	"github.com/pthm-cable/flock/sim"
)

// Source is the simulation surface the collector reads from.
// *sim.Simulation satisfies it.
type Source interface {
	Tick() int
	Generation() int
	Genomes() []sim.Genome
}

// Collector samples population statistics at window boundaries.
type Collector struct {
	window   int
	logStats bool
	out      *OutputManager

	lastWindow int
}

// NewCollector creates a collector emitting one record every window ticks.
// out may be nil (CSV output disabled); logStats additionally emits each
// record via slog.
func NewCollector(window int, logStats bool, out *OutputManager) *Collector {
	if window < 1 {
		window = 1
	}
	return &Collector{
		window:   window,
		logStats: logStats,
		out:      out,
	}
}

// Observe checks for a window boundary and records stats when one has been
// crossed. Call once per simulation update; cheap when mid-window.
func (c *Collector) Observe(src Source) error {
	tick := src.Tick()
	currentWindow := tick / c.window
	if currentWindow == c.lastWindow {
		return nil
	}
	c.lastWindow = currentWindow

	stats := ComputeWindowStats(tick, src.Generation(), src.Genomes())

	if c.logStats {
		slog.Info("window stats",
			"window_end", stats.WindowEnd,
			"generation", stats.Generation,
			"animals", stats.Animals,
			"fitness_mean", stats.FitnessMean,
			"fitness_best", stats.FitnessBest,
			"speed_mean", stats.SpeedMean,
			"wander_mean", stats.WanderMean,
		)
	}

	return c.out.WriteTelemetry(stats)
}
