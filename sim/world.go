package sim

// Animal is a read-only projection of one entity for rendering.
// Coordinates are normalized to the unit square; Rotation is in radians
// with 0 pointing up (forward vector (-sin r, cos r)).
type Animal struct {
	X        float32
	Y        float32
	Rotation float32
}

// World is a value snapshot of the simulation state. It is detached from
// the engine: mutating it has no effect on subsequent steps.
type World struct {
	Animals []Animal
}

// Genome is a read-only projection of one entity's heritable state,
// used by telemetry.
type Genome struct {
	Speed   float32
	Wander  float32
	Fitness float32
}
