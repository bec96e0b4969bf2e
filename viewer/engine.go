package viewer

import "github.com/pthm-cable/flock/sim"

// Engine is the narrow boundary between the viewer and the simulation:
// advance one tick, snapshot the current state. The viewer never reaches
// past it, so tests can drive rendering with a stub.
type Engine interface {
	Step()
	World() sim.World
}
