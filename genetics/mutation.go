package genetics

import "math/rand"

// GaussianMutation perturbs each gene with probability Chance by a sample
// from N(0, Coeff).
type GaussianMutation struct {
	Chance float64 // Per-gene mutation probability in [0, 1]
	Coeff  float64 // Standard deviation of the perturbation
}

// Mutate perturbs the chromosome in place.
func (m GaussianMutation) Mutate(rng *rand.Rand, chromosome []float32) {
	for i := range chromosome {
		if rng.Float64() < m.Chance {
			chromosome[i] += float32(rng.NormFloat64() * m.Coeff)
		}
	}
}
