package systems

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/automoto/asteroids/components"
	cfg "github.com/automoto/asteroids/config"
	"github.com/automoto/asteroids/events"
	"github.com/automoto/asteroids/systems/factory"
	"github.com/automoto/asteroids/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
	math2 "github.com/yohamta/donburi/features/math"
)

const tick = 1.0 / 60

// newTestECS builds a world with the singletons and event consumers but no
// ship, stars or spawner activity.
func newTestECS(t *testing.T, seed uint64) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateWorld(e, rand.New(rand.NewPCG(seed, seed+1)))
	factory.CreateSpace(e)
	SubscribeEvents(e)
	return e
}

// step runs one simulation frame without input or random spawns.
func step(e *ecs.ECS, dt float64) {
	clock := getClock(e)
	clock.Delta = dt
	clock.Elapsed += dt
	clock.Ticks++

	UpdateMovement(e)
	UpdateBoundary(e)
	UpdateBullets(e)
	UpdateObjects(e)
	UpdateCollisions(e)
	UpdateDamage(e)
	ProcessEvents(e)
	UpdateShipState(e)
	UpdateEffects(e)
}

// polygon returns a regular outline whose mean radius is exactly r.
func polygon(r float64, edges int) []math2.Vec2 {
	points := make([]math2.Vec2, edges)
	for i := range points {
		a := 2 * math.Pi / float64(edges) * float64(i)
		points[i] = math2.Vec2{X: r * math.Sin(a), Y: r * math.Cos(a)}
	}
	return points
}

func spawnRock(e *ecs.ECS, r float64, pos, vel math2.Vec2) *donburi.Entry {
	return factory.CreateAsteroid(e, cfg.Asteroid.Tier(r), pos, polygon(r, 12), vel, 0)
}

func count(e *ecs.ECS, c donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(c)).Count(e.World)
}

// recorder captures events as they are delivered.
type recorder struct {
	spawns       []events.AsteroidSpawnEvent
	splits       []events.AsteroidSplitEvent
	destructions []events.DestructionEvent
	hits         []events.HitEvent
	deaths       []events.PlayerDeathEvent
	grains       []events.GrainParticleSpawnEvent
}

func record(e *ecs.ECS) *recorder {
	r := &recorder{}
	events.AsteroidSpawn.Subscribe(e.World, func(_ donburi.World, ev events.AsteroidSpawnEvent) {
		r.spawns = append(r.spawns, ev)
	})
	events.AsteroidSplit.Subscribe(e.World, func(_ donburi.World, ev events.AsteroidSplitEvent) {
		r.splits = append(r.splits, ev)
	})
	events.Destruction.Subscribe(e.World, func(_ donburi.World, ev events.DestructionEvent) {
		r.destructions = append(r.destructions, ev)
	})
	events.Hit.Subscribe(e.World, func(_ donburi.World, ev events.HitEvent) {
		r.hits = append(r.hits, ev)
	})
	events.PlayerDeath.Subscribe(e.World, func(_ donburi.World, ev events.PlayerDeathEvent) {
		r.deaths = append(r.deaths, ev)
	})
	events.GrainParticleSpawn.Subscribe(e.World, func(_ donburi.World, ev events.GrainParticleSpawnEvent) {
		r.grains = append(r.grains, ev)
	})
	return r
}

func asteroids(e *ecs.ECS) []*donburi.Entry {
	return sortedEntries(e, tags.Asteroid)
}

func radiusOf(e *donburi.Entry) float64 {
	return components.Bounding.Get(e).Radius
}
