package factory

import (
	"github.com/automoto/asteroids/archetypes"
	"github.com/automoto/asteroids/components"
	cfg "github.com/automoto/asteroids/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// CreateGrain spawns one explosion particle that darkens and shrinks over
// lifetime seconds and is then removed.
func CreateGrain(ecs *ecs.ECS, pos, vel math2.Vec2, lifetime float64) *donburi.Entry {
	g := archetypes.Grain.Spawn(ecs)

	components.Transform.SetValue(g, components.TransformData{Position: pos, Scale: 1})
	components.Velocity.SetValue(g, components.VelocityData{Vec2: vel})
	components.Damping.SetValue(g, components.DampingData{Factor: cfg.Particles.Damping})
	components.Bounding.SetValue(g, components.BoundingData{Radius: cfg.Particles.GrainRadius})
	components.TimedRemoval.SetValue(g, components.TimedRemovalData{Remaining: lifetime})
	components.Fade.SetValue(g, components.FadeData{
		Darken:     gween.New(1, 0.2, float32(lifetime), ease.Linear),
		Shrink:     gween.New(1, 0.3, float32(lifetime), ease.InQuad),
		Brightness: 1,
		Scale:      1,
	})
	components.Visibility.SetValue(g, components.VisibilityData{Visible: true})
	return g
}
