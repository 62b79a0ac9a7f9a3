package systems

import (
	"math"

	"github.com/automoto/asteroids/components"
	cfg "github.com/automoto/asteroids/config"
	"github.com/automoto/asteroids/events"
	"github.com/automoto/asteroids/gamemath"
	"github.com/automoto/asteroids/systems/factory"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// onGrainParticleSpawn scatters a ring of grains inside the spawn radius,
// each pushed outward and carrying the impact velocity.
func onGrainParticleSpawn(ecs *ecs.ECS, ev events.GrainParticleSpawnEvent) {
	rng := getRand(ecs)
	count := randIntRange(rng, ev.MinParticles, ev.MaxParticles)
	if count <= 0 {
		return
	}

	step := 2 * math.Pi / float64(count)
	for i := 0; i < count; i++ {
		dir := math2.Vec2{X: math.Sin(step * float64(i)), Y: math.Cos(step * float64(i))}
		spread := randRange(rng, cfg.Particles.SpreadMin, cfg.Particles.SpreadMax) * ev.SpawnRadius
		force := randRange(rng, cfg.Particles.ForceMin, cfg.Particles.ForceMax)

		pos := gamemath.Add(ev.Pos, gamemath.Scale(dir, spread))
		vel := gamemath.Add(gamemath.Scale(dir, force), ev.ImpactVelocity)
		lifetime := randRange(rng, cfg.Particles.LifetimeMin, cfg.Particles.LifetimeMax)
		factory.CreateGrain(ecs, pos, vel, lifetime)
	}
}

// onHit flickers the survivor and sprays a few grains at the contact point.
func onHit(ecs *ecs.ECS, ev events.HitEvent) {
	if ev.Entity == nil || !ev.Entity.Valid() {
		return
	}
	startFlicker(ev.Entity, cfg.Effects.HitFlickerDuration, cfg.Effects.HitFlickerInterval)

	var vel math2.Vec2
	if ev.Entity.HasComponent(components.Velocity) {
		vel = components.Velocity.Get(ev.Entity).Vec2
	}
	events.GrainParticleSpawn.Publish(ecs.World, events.GrainParticleSpawnEvent{
		Pos:            ev.Point,
		SpawnRadius:    cfg.Particles.ImpactSpawn,
		MinParticles:   cfg.Particles.ImpactMin,
		MaxParticles:   cfg.Particles.ImpactMax,
		ImpactVelocity: vel,
	})
}
