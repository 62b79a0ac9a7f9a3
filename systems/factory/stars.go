package factory

import (
	"math/rand/v2"

	"github.com/automoto/asteroids/archetypes"
	"github.com/automoto/asteroids/components"
	cfg "github.com/automoto/asteroids/config"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// CreateStars scatters the backdrop over the play field.
func CreateStars(ecs *ecs.ECS, rng *rand.Rand) {
	frame := cfg.Arena.Frame()
	for i := 0; i < cfg.Stars.Count; i++ {
		s := archetypes.Star.Spawn(ecs)
		pos := math2.Vec2{
			X: frame.MinX + rng.Float64()*frame.Width(),
			Y: frame.MinY + rng.Float64()*frame.Height(),
		}
		r := cfg.Stars.MinRadius + rng.Float64()*(cfg.Stars.MaxRadius-cfg.Stars.MinRadius)
		components.Transform.SetValue(s, components.TransformData{Position: pos, Scale: 1})
		components.Bounding.SetValue(s, components.BoundingData{Radius: r})
	}
}
