package components

import (
	"math/rand/v2"

	"github.com/yohamta/donburi"
)

// ClockData is the simulation time step. Systems read Delta instead of
// querying the engine so tests can drive time directly.
type ClockData struct {
	Delta   float64 // seconds covered by the current tick
	Elapsed float64
	Ticks   uint64
}

var Clock = donburi.NewComponentType[ClockData]()

// RandomData holds the world's single random source.
type RandomData struct {
	*rand.Rand
}

var Random = donburi.NewComponentType[RandomData]()

// SpawnerData accumulates time towards the next asteroid spawn roll.
type SpawnerData struct {
	Timer float64
}

var Spawner = donburi.NewComponentType[SpawnerData]()
