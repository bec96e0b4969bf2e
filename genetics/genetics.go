// Package genetics implements a small genetic algorithm: fitness-proportional
// selection, per-gene crossover, and gaussian mutation over flat float32
// chromosomes.
package genetics

import "math/rand"

// Individual is a member of an evolvable population.
type Individual interface {
	// Chromosome returns the individual's genes. Callers must not mutate it.
	Chromosome() []float32

	// Fitness returns the individual's non-negative fitness score.
	Fitness() float32
}

// SelectionMethod picks a parent from a population.
type SelectionMethod interface {
	Select(rng *rand.Rand, population []Individual) Individual
}

// CrossoverMethod combines two parent chromosomes into a child chromosome.
// Both parents must have the same length; the child has that length too.
type CrossoverMethod interface {
	Crossover(rng *rand.Rand, parentA, parentB []float32) []float32
}

// MutationMethod perturbs a chromosome in place.
type MutationMethod interface {
	Mutate(rng *rand.Rand, chromosome []float32)
}

// Algorithm bundles the three GA operators.
type Algorithm struct {
	selection SelectionMethod
	crossover CrossoverMethod
	mutation  MutationMethod
}

// New creates an Algorithm from the given operators.
func New(selection SelectionMethod, crossover CrossoverMethod, mutation MutationMethod) *Algorithm {
	return &Algorithm{
		selection: selection,
		crossover: crossover,
		mutation:  mutation,
	}
}

// Evolve produces the next generation: for each slot, two parents are
// selected, crossed over, and the child mutated. birth turns the child
// chromosome back into a domain individual. Panics on an empty population.
func (a *Algorithm) Evolve(rng *rand.Rand, population []Individual, birth func(chromosome []float32) Individual) []Individual {
	if len(population) == 0 {
		panic("genetics: Evolve called with empty population")
	}

	next := make([]Individual, len(population))
	for i := range next {
		parentA := a.selection.Select(rng, population).Chromosome()
		parentB := a.selection.Select(rng, population).Chromosome()

		child := a.crossover.Crossover(rng, parentA, parentB)
		a.mutation.Mutate(rng, child)

		next[i] = birth(child)
	}
	return next
}
