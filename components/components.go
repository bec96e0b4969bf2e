// Package components defines the ECS components for simulation entities.
package components

// Position is an entity's location on the unit square, normalized to [0, 1).
type Position struct {
	X, Y float32
}

// Rotation is an entity's facing direction.
// Heading 0 points "up": the forward vector is (-sin h, cos h).
type Rotation struct {
	Heading float32 // radians
}

// Motion holds the heritable movement genes and the fitness accumulator.
type Motion struct {
	Speed    float32 // forward movement per tick, in world units
	Wander   float32 // max random heading change per tick, radians
	Distance float32 // distance traveled since the last generation
}
