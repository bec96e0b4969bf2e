// Package telemetry aggregates windowed population statistics and writes
// them to CSV for offline analysis.
package telemetry

import (
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/flock/sim"
)

// WindowStats holds aggregated statistics for one stats window.
type WindowStats struct {
	WindowEnd  int `csv:"window_end"`
	Generation int `csv:"generation"`
	Animals    int `csv:"animals"`

	// Fitness distribution (distance traveled this generation)
	FitnessMean float64 `csv:"fitness_mean"`
	FitnessStd  float64 `csv:"fitness_std"`
	FitnessBest float64 `csv:"fitness_best"`

	// Movement gene distribution
	SpeedMean  float64 `csv:"speed_mean"`
	SpeedStd   float64 `csv:"speed_std"`
	WanderMean float64 `csv:"wander_mean"`
}

// ComputeWindowStats aggregates the population's genomes at a window
// boundary.
func ComputeWindowStats(tick, generation int, genomes []sim.Genome) WindowStats {
	ws := WindowStats{
		WindowEnd:  tick,
		Generation: generation,
		Animals:    len(genomes),
	}
	if len(genomes) == 0 {
		return ws
	}

	fitness := make([]float64, len(genomes))
	speeds := make([]float64, len(genomes))
	wanders := make([]float64, len(genomes))
	for i, g := range genomes {
		fitness[i] = float64(g.Fitness)
		speeds[i] = float64(g.Speed)
		wanders[i] = float64(g.Wander)
		if fitness[i] > ws.FitnessBest {
			ws.FitnessBest = fitness[i]
		}
	}

	ws.FitnessMean = stat.Mean(fitness, nil)
	ws.SpeedMean = stat.Mean(speeds, nil)
	ws.WanderMean = stat.Mean(wanders, nil)

	// Sample std needs at least two values
	if len(genomes) > 1 {
		ws.FitnessStd = stat.StdDev(fitness, nil)
		ws.SpeedStd = stat.StdDev(speeds, nil)
	}

	return ws
}
