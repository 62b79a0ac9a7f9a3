package archetypes

import (
	"github.com/automoto/asteroids/components"
	cfg "github.com/automoto/asteroids/config"
	"github.com/automoto/asteroids/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Ship = newArchetype(
		tags.Ship,
		tags.BoundaryWrap,
		components.Ship,
		components.Transform,
		components.Velocity,
		components.Damping,
		components.SpeedLimit,
		components.Bounding,
		components.Damage,
		components.Drive,
		components.Thrusters,
		components.Steering,
		components.Cannon,
		components.Outline,
		components.Visibility,
		components.Object,
	)
	Asteroid = newArchetype(
		tags.Asteroid,
		tags.BoundaryWrap,
		components.Transform,
		components.Velocity,
		components.AngularVelocity,
		components.SpeedLimit,
		components.Bounding,
		components.Health,
		components.Outline,
		components.Visibility,
		components.Object,
	)
	Bullet = newArchetype(
		tags.Bullet,
		tags.BoundaryRemoval,
		components.Bullet,
		components.Transform,
		components.Velocity,
		components.Bounding,
		components.Damage,
		components.Visibility,
		components.Object,
	)
	Grain = newArchetype(
		tags.Particle,
		tags.BoundaryRemoval,
		components.Transform,
		components.Velocity,
		components.Damping,
		components.Bounding,
		components.TimedRemoval,
		components.Fade,
		components.Visibility,
	)
	Star = newArchetype(
		tags.Star,
		components.Transform,
		components.Bounding,
	)
	Space = newArchetype(
		components.Space,
	)
	World = newArchetype(
		components.Clock,
		components.Random,
		components.Spawner,
		components.Contacts,
		components.Stats,
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return ecs.World.Entry(ecs.Create(cfg.Default, all...))
}
