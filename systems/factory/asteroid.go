package factory

import (
	"github.com/automoto/asteroids/archetypes"
	"github.com/automoto/asteroids/components"
	cfg "github.com/automoto/asteroids/config"
	"github.com/automoto/asteroids/gamemath"
	"github.com/automoto/asteroids/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// CreateAsteroid spawns a rock of the given tier. Its collision radius is
// the mean vertex distance of the outline clamped to the tier band, and its
// health comes from the tier table.
func CreateAsteroid(ecs *ecs.ECS, tier cfg.TierID, pos math2.Vec2, points []math2.Vec2, vel math2.Vec2, spin float64) *donburi.Entry {
	row := cfg.Asteroid.TierConfig(tier)
	radius := row.Clamp(gamemath.MeanRadius(points))

	a := archetypes.Asteroid.Spawn(ecs)
	components.Transform.SetValue(a, components.TransformData{Position: pos, Scale: 1})
	components.Velocity.SetValue(a, components.VelocityData{Vec2: vel})
	components.AngularVelocity.SetValue(a, components.AngularVelocityData{Rate: spin})
	components.SpeedLimit.SetValue(a, components.SpeedLimitData{Max: cfg.Asteroid.SpeedLimit})
	components.Bounding.SetValue(a, components.BoundingData{Radius: radius})
	components.Health.SetValue(a, components.HealthData{Current: row.Health, Max: row.Health})
	components.Outline.SetValue(a, components.OutlineData{Points: points})
	components.Visibility.SetValue(a, components.VisibilityData{Visible: true})

	attachObject(ecs, a, pos, radius, tags.ResolvAsteroid)
	return a
}

// CreateAsteroidFragment spawns one piece of a split parent. points are in
// world orientation relative to the parent's center; the fragment is placed
// at the piece's centroid with its outline recentered on it.
func CreateAsteroidFragment(ecs *ecs.ECS, tier cfg.TierID, parentPos math2.Vec2, points []math2.Vec2, vel math2.Vec2, spin float64) *donburi.Entry {
	c := gamemath.Centroid(points)
	return CreateAsteroid(ecs, tier, gamemath.Add(parentPos, c), gamemath.Recenter(points, c), vel, spin)
}
