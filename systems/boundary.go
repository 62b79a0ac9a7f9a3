package systems

import (
	"github.com/automoto/asteroids/components"
	cfg "github.com/automoto/asteroids/config"
	"github.com/automoto/asteroids/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBoundary wraps bodies tagged BoundaryWrap around the play field and
// removes bodies tagged BoundaryRemoval once they have fully left it.
func UpdateBoundary(ecs *ecs.ECS) {
	frame := cfg.Arena.Frame()

	tags.BoundaryWrap.Each(ecs.World, func(e *donburi.Entry) {
		t := components.Transform.Get(e)
		t.Position = frame.Wrap(t.Position, components.Bounding.Get(e).Radius)
	})

	var toRemove []*donburi.Entry
	tags.BoundaryRemoval.Each(ecs.World, func(e *donburi.Entry) {
		if frame.Outside(components.Transform.Get(e).Position, components.Bounding.Get(e).Radius) {
			toRemove = append(toRemove, e)
		}
	})
	for _, e := range toRemove {
		removeEntity(e)
	}
}

// UpdateBullets expires bullets whose lifetime has run out.
func UpdateBullets(ecs *ecs.ECS) {
	dt := delta(ecs)

	var toRemove []*donburi.Entry
	components.Bullet.Each(ecs.World, func(e *donburi.Entry) {
		b := components.Bullet.Get(e)
		b.Lifetime -= dt
		if b.Lifetime <= 0 {
			toRemove = append(toRemove, e)
		}
	})
	for _, e := range toRemove {
		removeEntity(e)
	}
}
