package systems

import (
	"math/rand/v2"

	"github.com/automoto/asteroids/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances simulation time by one tick. It runs first and
// always, so a paused frame still reports a sane delta.
func UpdateClock(ecs *ecs.ECS) {
	clock := getClock(ecs)
	clock.Delta = 1 / float64(ebiten.TPS())
	clock.Elapsed += clock.Delta
	clock.Ticks++
}

func worldEntry(ecs *ecs.ECS) *donburi.Entry {
	return components.Clock.MustFirst(ecs.World)
}

func getClock(ecs *ecs.ECS) *components.ClockData {
	return components.Clock.Get(worldEntry(ecs))
}

// delta returns the seconds covered by the current tick.
func delta(ecs *ecs.ECS) float64 {
	return getClock(ecs).Delta
}

func getRand(ecs *ecs.ECS) *rand.Rand {
	return components.Random.Get(worldEntry(ecs)).Rand
}

// randRange returns a uniform float in [lo, hi).
func randRange(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

// randIntRange returns a uniform int in [lo, hi].
func randIntRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}
