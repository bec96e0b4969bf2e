package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/flock/sim"
)

func TestComputeWindowStats(t *testing.T) {
	genomes := []sim.Genome{
		{Speed: 0.001, Wander: 0.02, Fitness: 1},
		{Speed: 0.002, Wander: 0.04, Fitness: 2},
		{Speed: 0.003, Wander: 0.06, Fitness: 3},
		{Speed: 0.004, Wander: 0.08, Fitness: 4},
	}

	ws := ComputeWindowStats(600, 2, genomes)

	if ws.WindowEnd != 600 || ws.Generation != 2 || ws.Animals != 4 {
		t.Errorf("header fields wrong: end=%d gen=%d animals=%d", ws.WindowEnd, ws.Generation, ws.Animals)
	}

	if math.Abs(ws.FitnessMean-2.5) > 1e-9 {
		t.Errorf("fitness mean %f, want 2.5", ws.FitnessMean)
	}
	if math.Abs(ws.FitnessBest-4) > 1e-9 {
		t.Errorf("fitness best %f, want 4", ws.FitnessBest)
	}

	// Sample standard deviation of {1,2,3,4} is sqrt(5/3)
	wantStd := math.Sqrt(5.0 / 3.0)
	if math.Abs(ws.FitnessStd-wantStd) > 1e-9 {
		t.Errorf("fitness std %f, want %f", ws.FitnessStd, wantStd)
	}

	if math.Abs(ws.SpeedMean-0.0025) > 1e-6 {
		t.Errorf("speed mean %f, want 0.0025", ws.SpeedMean)
	}
	if math.Abs(ws.WanderMean-0.05) > 1e-6 {
		t.Errorf("wander mean %f, want 0.05", ws.WanderMean)
	}
}

func TestComputeWindowStatsEmpty(t *testing.T) {
	ws := ComputeWindowStats(100, 0, nil)

	if ws.Animals != 0 {
		t.Errorf("expected 0 animals, got %d", ws.Animals)
	}
	if ws.FitnessMean != 0 || ws.FitnessStd != 0 || ws.FitnessBest != 0 {
		t.Errorf("expected zero stats for empty population, got %+v", ws)
	}
}

func TestComputeWindowStatsSingle(t *testing.T) {
	ws := ComputeWindowStats(100, 1, []sim.Genome{{Speed: 0.002, Fitness: 7}})

	if math.Abs(ws.FitnessMean-7) > 1e-9 {
		t.Errorf("fitness mean %f, want 7", ws.FitnessMean)
	}
	// Sample std is undefined for n=1; must report 0, not NaN
	if ws.FitnessStd != 0 || ws.SpeedStd != 0 {
		t.Errorf("expected zero std for single genome, got %f / %f", ws.FitnessStd, ws.SpeedStd)
	}
}
