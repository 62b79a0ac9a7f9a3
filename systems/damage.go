package systems

import (
	"github.com/automoto/asteroids/components"
	cfg "github.com/automoto/asteroids/config"
	"github.com/automoto/asteroids/events"
	"github.com/automoto/asteroids/gamemath"
	"github.com/automoto/asteroids/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// damagePass tracks what happened to entities during one damage pass.
type damagePass struct {
	ecs      *ecs.ECS
	doomed   map[donburi.Entity]bool // victims that already produced a DestructionEvent
	consumed map[donburi.Entity]bool // projectiles already spent
	shipDown bool
}

// UpdateDamage transfers damage across the contacts recorded this frame.
// A victim whose health drops below zero produces exactly one
// DestructionEvent; one that survives produces a HitEvent. Bullets are
// removed on their first hit. The ship dies on any asteroid contact.
func UpdateDamage(ecs *ecs.ECS) {
	contacts := components.Contacts.Get(worldEntry(ecs))
	pass := &damagePass{
		ecs:      ecs,
		doomed:   map[donburi.Entity]bool{},
		consumed: map[donburi.Entity]bool{},
	}

	for _, c := range contacts.Pairs {
		if !c.A.Valid() || !c.B.Valid() {
			continue
		}
		point := c.Point
		if !c.HasPoint {
			point = components.Transform.Get(c.B).Position
		}

		switch {
		case c.A.HasComponent(tags.Ship):
			pass.shipContact(c.A, c.B, c.VelA, point)
		case c.B.HasComponent(tags.Bullet):
			pass.bulletHit(c.B, c.A, c.VelB, point)
		}
	}
}

// bulletHit applies a bullet's damage to victim and spends the bullet.
func (p *damagePass) bulletHit(bullet, victim *donburi.Entry, bulletVel math2.Vec2, point math2.Vec2) {
	if p.consumed[bullet.Entity()] {
		return
	}
	p.consumed[bullet.Entity()] = true

	p.damage(victim, components.Damage.Get(bullet).Amount, bulletVel, point)
	removeEntity(bullet)
}

// shipContact kills an alive ship and lets it ram the asteroid.
func (p *damagePass) shipContact(ship, asteroid *donburi.Entry, shipVel math2.Vec2, point math2.Vec2) {
	if p.shipDown || !components.Ship.Get(ship).Collidable() {
		return
	}
	p.shipDown = true

	events.PlayerDeath.Publish(p.ecs.World, events.PlayerDeathEvent{
		Pos:            components.Transform.Get(ship).Position,
		Radius:         components.Bounding.Get(ship).Radius,
		ImpactVelocity: shipVel,
	})
	p.damage(asteroid, components.Damage.Get(ship).Amount, shipVel, point)
}

// damage lowers victim health and publishes the outcome.
func (p *damagePass) damage(victim *donburi.Entry, amount int, sourceVel math2.Vec2, point math2.Vec2) {
	if p.doomed[victim.Entity()] || !victim.HasComponent(components.Health) {
		return
	}

	hp := components.Health.Get(victim)
	hp.Current -= amount
	if hp.Current >= 0 {
		events.Hit.Publish(p.ecs.World, events.HitEvent{Entity: victim, Point: point})
		return
	}

	p.doomed[victim.Entity()] = true
	events.Destruction.Publish(p.ecs.World, events.DestructionEvent{Entity: victim})

	// Terminal rocks burst into grains carrying part of the hit.
	if victim.HasComponent(tags.Asteroid) {
		radius := components.Bounding.Get(victim).Radius
		tier := cfg.Asteroid.Tier(radius)
		if cfg.Asteroid.TierConfig(tier).Children == 0 {
			impact := gamemath.Add(
				components.Velocity.Get(victim).Vec2,
				gamemath.Scale(sourceVel, cfg.Particles.ImpactVelocityShare),
			)
			events.GrainParticleSpawn.Publish(p.ecs.World, events.GrainParticleSpawnEvent{
				Pos:            components.Transform.Get(victim).Position,
				SpawnRadius:    radius,
				MinParticles:   cfg.Particles.TerminalMin,
				MaxParticles:   cfg.Particles.TerminalMax,
				ImpactVelocity: impact,
			})
		}
	}
}
