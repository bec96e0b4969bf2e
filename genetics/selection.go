package genetics

import "math/rand"

// RouletteWheel selects parents with probability proportional to fitness.
// Individuals with zero fitness can still be picked when the whole
// population has zero fitness (uniform fallback).
type RouletteWheel struct{}

// Select picks one individual by spinning a fitness-weighted wheel.
func (RouletteWheel) Select(rng *rand.Rand, population []Individual) Individual {
	if len(population) == 0 {
		panic("genetics: Select called with empty population")
	}

	var total float64
	for _, ind := range population {
		total += float64(ind.Fitness())
	}

	// All-zero fitness: every slot is equally likely
	if total <= 0 {
		return population[rng.Intn(len(population))]
	}

	spin := rng.Float64() * total
	for _, ind := range population {
		spin -= float64(ind.Fitness())
		if spin <= 0 {
			return ind
		}
	}

	// Floating-point slack lands on the last individual
	return population[len(population)-1]
}
