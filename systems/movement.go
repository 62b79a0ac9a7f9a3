package systems

import (
	"github.com/automoto/asteroids/components"
	"github.com/automoto/asteroids/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// UpdateMovement applies propulsion, spin, damping and speed limits, then
// integrates positions over the tick.
func UpdateMovement(ecs *ecs.ECS) {
	dt := delta(ecs)

	query := donburi.NewQuery(filter.Contains(components.Transform, components.Velocity))
	query.Each(ecs.World, func(e *donburi.Entry) {
		t := components.Transform.Get(e)
		v := components.Velocity.Get(e)

		if e.HasComponent(components.Steering) {
			s := components.Steering.Get(e)
			t.Rotation += s.Rate * s.Turn * dt
		}
		if e.HasComponent(components.AngularVelocity) {
			t.Rotation += components.AngularVelocity.Get(e).Rate * dt
		}

		if e.HasComponent(components.Drive) {
			d := components.Drive.Get(e)
			force := d.Force
			if d.Throttle < 0 {
				force = d.ReverseForce
			}
			v.Vec2 = gamemath.Add(v.Vec2, gamemath.Scale(gamemath.Forward(t.Rotation), force*d.Throttle))
		}
		if e.HasComponent(components.Thrusters) {
			th := components.Thrusters.Get(e)
			right := gamemath.Forward(t.Rotation - halfPi)
			v.Vec2 = gamemath.Add(v.Vec2, gamemath.Scale(right, th.Force*th.Direction))
		}

		if e.HasComponent(components.Damping) {
			v.Vec2 = gamemath.Scale(v.Vec2, components.Damping.Get(e).Factor)
		}
		if e.HasComponent(components.SpeedLimit) {
			v.Vec2 = gamemath.ClampLength(v.Vec2, components.SpeedLimit.Get(e).Max)
		}

		t.Position = gamemath.Add(t.Position, gamemath.Scale(v.Vec2, dt))
	})
}
