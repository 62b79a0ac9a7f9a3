package systems

import (
	"github.com/automoto/asteroids/events"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SubscribeEvents wires the event consumers into the world.
func SubscribeEvents(ecs *ecs.ECS) {
	events.Destruction.Subscribe(ecs.World, func(_ donburi.World, ev events.DestructionEvent) {
		onDestruction(ecs, ev)
	})
	events.PlayerDeath.Subscribe(ecs.World, func(_ donburi.World, ev events.PlayerDeathEvent) {
		onPlayerDeath(ecs, ev)
	})
	events.Hit.Subscribe(ecs.World, func(_ donburi.World, ev events.HitEvent) {
		onHit(ecs, ev)
	})
	events.AsteroidSplit.Subscribe(ecs.World, func(_ donburi.World, ev events.AsteroidSplitEvent) {
		onAsteroidSplit(ecs, ev)
	})
	events.AsteroidSpawn.Subscribe(ecs.World, func(_ donburi.World, ev events.AsteroidSpawnEvent) {
		onAsteroidSpawn(ecs, ev)
	})
	events.GrainParticleSpawn.Subscribe(ecs.World, func(_ donburi.World, ev events.GrainParticleSpawnEvent) {
		onGrainParticleSpawn(ecs, ev)
	})
}

// ProcessEvents drains every event queue. It runs after all systems that
// publish and before the ones that react to spawned entities.
func ProcessEvents(ecs *ecs.ECS) {
	events.Process(ecs.World)
}
