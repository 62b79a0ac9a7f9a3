package systems

import (
	"github.com/automoto/asteroids/components"
	cfg "github.com/automoto/asteroids/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves every broad phase box onto its body and re-indexes it.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		pos := components.Transform.Get(e).Position
		r := components.Bounding.Get(e).Radius
		obj.X, obj.Y = cfg.Arena.ToSpace(pos, r)
		obj.Update()
	}
}

// removeEntity drops an entity and its broad phase box. Stale entries are
// ignored so a body can be removed from more than one place in a frame.
func removeEntity(e *donburi.Entry) {
	if e == nil || !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		if obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	e.Remove()
}
