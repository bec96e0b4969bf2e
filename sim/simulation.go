// Package sim implements the simulation engine behind the viewer: a
// population of animals moving on a toroidal unit square, with movement
// genes evolved by a genetic algorithm between generations.
package sim

import (
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/flock/components"
	"github.com/pthm-cable/flock/config"
	"github.com/pthm-cable/flock/genetics"
)

// Simulation owns the ECS world and advances it one tick per Step call.
type Simulation struct {
	world *ecs.World
	rng   *rand.Rand

	mapper *ecs.Map3[components.Position, components.Rotation, components.Motion]
	filter *ecs.Filter3[components.Position, components.Rotation, components.Motion]

	ga *genetics.Algorithm

	// World parameters captured at construction
	minSpeed   float32
	maxSpeed   float32
	maxWander  float32
	epochTicks int

	tick       int
	generation int
}

// New creates a simulation with a randomized initial population.
func New(cfg *config.Config, rng *rand.Rand) *Simulation {
	world := ecs.NewWorld()

	s := &Simulation{
		world:      world,
		rng:        rng,
		mapper:     ecs.NewMap3[components.Position, components.Rotation, components.Motion](world),
		filter:     ecs.NewFilter3[components.Position, components.Rotation, components.Motion](world),
		minSpeed:   float32(cfg.World.MinSpeed),
		maxSpeed:   float32(cfg.World.MaxSpeed),
		maxWander:  float32(cfg.World.MaxWander),
		epochTicks: cfg.World.EpochTicks,
		ga: genetics.New(
			genetics.RouletteWheel{},
			genetics.UniformCrossover{},
			genetics.GaussianMutation{
				Chance: cfg.Genetics.MutationChance,
				Coeff:  cfg.Genetics.MutationCoeff,
			},
		),
	}

	for i := 0; i < cfg.World.Animals; i++ {
		pos := components.Position{
			X: rng.Float32(),
			Y: rng.Float32(),
		}
		// Spawn within the normalized heading domain [-pi, pi] so a
		// zero-wander step never rewrites a heading by a full turn
		rot := components.Rotation{
			Heading: (rng.Float32()*2 - 1) * math.Pi,
		}
		motion := components.Motion{
			Speed:  s.minSpeed + rng.Float32()*(s.maxSpeed-s.minSpeed),
			Wander: rng.Float32() * s.maxWander,
		}
		s.mapper.NewEntity(&pos, &rot, &motion)
	}

	return s
}

// Step advances the simulation by one tick: every animal jitters its
// heading by its wander gene and moves forward by its speed gene, wrapping
// at the world edges. At epoch boundaries the population evolves.
func (s *Simulation) Step() {
	query := s.filter.Query()
	for query.Next() {
		pos, rot, motion := query.Get()

		rot.Heading += (s.rng.Float32()*2 - 1) * motion.Wander
		rot.Heading = normalizeAngle(rot.Heading)

		// Forward vector convention: heading 0 points up
		sin, cos := math.Sincos(float64(rot.Heading))
		pos.X = mod(pos.X-float32(sin)*motion.Speed, 1)
		pos.Y = mod(pos.Y+float32(cos)*motion.Speed, 1)

		motion.Distance += motion.Speed
	}

	s.tick++

	if s.epochTicks > 0 && s.tick%s.epochTicks == 0 {
		s.evolve()
	}
}

// World returns a snapshot of the current animal positions and rotations.
func (s *Simulation) World() World {
	var animals []Animal

	query := s.filter.Query()
	for query.Next() {
		pos, rot, _ := query.Get()
		animals = append(animals, Animal{
			X:        pos.X,
			Y:        pos.Y,
			Rotation: rot.Heading,
		})
	}

	return World{Animals: animals}
}

// Genomes returns the heritable state of the current population.
func (s *Simulation) Genomes() []Genome {
	var genomes []Genome

	query := s.filter.Query()
	for query.Next() {
		_, _, motion := query.Get()
		genomes = append(genomes, Genome{
			Speed:   motion.Speed,
			Wander:  motion.Wander,
			Fitness: motion.Distance,
		})
	}

	return genomes
}

// Tick returns the number of completed steps.
func (s *Simulation) Tick() int {
	return s.tick
}

// Generation returns the number of completed GA epochs.
func (s *Simulation) Generation() int {
	return s.generation
}

// animalGenome adapts one animal's movement genes to genetics.Individual.
// Fitness is the distance traveled during the generation.
type animalGenome struct {
	chromosome []float32 // [speed, wander]
	fitness    float32
}

func (a *animalGenome) Chromosome() []float32 { return a.chromosome }
func (a *animalGenome) Fitness() float32      { return a.fitness }

// evolve runs one GA generation over the movement genes and resets the
// fitness accumulators. Positions and headings carry over unchanged.
func (s *Simulation) evolve() {
	var population []genetics.Individual

	query := s.filter.Query()
	for query.Next() {
		_, _, motion := query.Get()
		population = append(population, &animalGenome{
			chromosome: []float32{motion.Speed, motion.Wander},
			fitness:    motion.Distance,
		})
	}

	if len(population) == 0 {
		return
	}

	next := s.ga.Evolve(s.rng, population, func(chromosome []float32) genetics.Individual {
		return &animalGenome{chromosome: chromosome}
	})

	// Write the evolved genes back, clamped to the configured gene bounds
	i := 0
	query = s.filter.Query()
	for query.Next() {
		_, _, motion := query.Get()
		chromosome := next[i].Chromosome()
		motion.Speed = clamp(chromosome[0], s.minSpeed, s.maxSpeed)
		motion.Wander = clamp(chromosome[1], 0, s.maxWander)
		motion.Distance = 0
		i++
	}

	s.generation++
}

// normalizeAngle wraps an angle to [-pi, pi].
func normalizeAngle(a float32) float32 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// mod returns the positive modulo (Go's % can return negative).
func mod(x, m float32) float32 {
	r := float32(math.Mod(float64(x), float64(m)))
	if r < 0 {
		r += m
	}
	return r
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
