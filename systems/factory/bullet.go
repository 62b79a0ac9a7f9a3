package factory

import (
	"github.com/automoto/asteroids/archetypes"
	"github.com/automoto/asteroids/components"
	cfg "github.com/automoto/asteroids/config"
	"github.com/automoto/asteroids/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// CreateBullet spawns a cannon round at pos travelling with vel.
func CreateBullet(ecs *ecs.ECS, pos, vel math2.Vec2) *donburi.Entry {
	b := archetypes.Bullet.Spawn(ecs)

	components.Bullet.SetValue(b, components.BulletData{Lifetime: cfg.Bullet.Lifetime})
	components.Transform.SetValue(b, components.TransformData{Position: pos, Scale: 1})
	components.Velocity.SetValue(b, components.VelocityData{Vec2: vel})
	components.Bounding.SetValue(b, components.BoundingData{Radius: cfg.Bullet.Radius})
	components.Damage.SetValue(b, components.DamageData{Amount: cfg.Bullet.Damage})
	components.Visibility.SetValue(b, components.VisibilityData{Visible: true})

	attachObject(ecs, b, pos, cfg.Bullet.Radius, tags.ResolvBullet)
	return b
}
