package genetics

import "math/rand"

// UniformCrossover builds a child by flipping a fair coin per gene.
type UniformCrossover struct{}

// Crossover returns a new chromosome where each gene comes from parentA or
// parentB with equal probability. Panics when the parents differ in length.
func (UniformCrossover) Crossover(rng *rand.Rand, parentA, parentB []float32) []float32 {
	if len(parentA) != len(parentB) {
		panic("genetics: Crossover called with mismatched chromosome lengths")
	}

	child := make([]float32, len(parentA))
	for i := range child {
		if rng.Float64() < 0.5 {
			child[i] = parentA[i]
		} else {
			child[i] = parentB[i]
		}
	}
	return child
}
