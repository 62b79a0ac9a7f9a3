package systems

import (
	"github.com/automoto/asteroids/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects processes visual effect components (flicker, fades, timed removal)
func UpdateEffects(ecs *ecs.ECS) {
	dt := delta(ecs)
	updateFlicker(ecs, dt)
	updateFades(ecs, dt)
	updateTimedRemoval(ecs, dt)
}

// startFlicker attaches or restarts a flicker on e.
func startFlicker(e *donburi.Entry, duration, interval float64) {
	if !e.HasComponent(components.Flicker) {
		e.AddComponent(components.Flicker)
	}
	components.Flicker.SetValue(e, components.FlickerData{
		Remaining:  duration,
		Interval:   interval,
		NextToggle: interval,
	})
}

// updateFlicker toggles visibility every interval. When the flicker ends the
// entity is left visible and the component is detached.
func updateFlicker(ecs *ecs.ECS, dt float64) {
	var toRemove []*donburi.Entry

	components.Flicker.Each(ecs.World, func(e *donburi.Entry) {
		f := components.Flicker.Get(e)
		vis := components.Visibility.Get(e)

		f.Remaining -= dt
		if f.Remaining <= 0 {
			vis.Visible = true
			toRemove = append(toRemove, e)
			return
		}

		if f.Interval <= 0 {
			return
		}
		f.NextToggle -= dt
		for f.NextToggle <= 0 {
			vis.Visible = !vis.Visible
			f.NextToggle += f.Interval
		}
	})

	for _, e := range toRemove {
		e.RemoveComponent(components.Flicker)
	}
}

// updateFades advances the darken and shrink tweens of particles.
func updateFades(ecs *ecs.ECS, dt float64) {
	components.Fade.Each(ecs.World, func(e *donburi.Entry) {
		fade := components.Fade.Get(e)
		fade.Brightness, _ = fade.Darken.Update(float32(dt))
		fade.Scale, _ = fade.Shrink.Update(float32(dt))
	})
}

// updateTimedRemoval removes entities whose timer has run out
func updateTimedRemoval(ecs *ecs.ECS, dt float64) {
	var toDestroy []*donburi.Entry

	components.TimedRemoval.Each(ecs.World, func(e *donburi.Entry) {
		tr := components.TimedRemoval.Get(e)
		tr.Remaining -= dt
		if tr.Remaining <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		removeEntity(e)
	}
}
