package systems

import (
	"math"

	"github.com/automoto/asteroids/components"
	cfg "github.com/automoto/asteroids/config"
	"github.com/automoto/asteroids/events"
	"github.com/automoto/asteroids/gamemath"
	"github.com/automoto/asteroids/logging"
	"github.com/automoto/asteroids/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

const halfPi = math.Pi / 2

// UpdateShipControls turns held actions into steering, drive and thruster
// intents and fires the cannon. A ship that cannot move gets idle intents.
func UpdateShipControls(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	components.Ship.Each(ecs.World, func(e *donburi.Entry) {
		ship := components.Ship.Get(e)
		steering := components.Steering.Get(e)
		drive := components.Drive.Get(e)
		thrusters := components.Thrusters.Get(e)

		steering.Turn, drive.Throttle, thrusters.Direction = 0, 0, 0
		if !ship.CanMove() {
			return
		}

		steering.Turn = axis(input, cfg.ActionSteerRight, cfg.ActionSteerLeft)
		drive.Throttle = axis(input, cfg.ActionReverse, cfg.ActionThrust)
		thrusters.Direction = axis(input, cfg.ActionStrafeLeft, cfg.ActionStrafeRight)

		if ship.CanFire() && GetAction(input, cfg.ActionFire).JustPressed {
			fireCannon(ecs, e)
		}
	})
}

// axis returns -1 while only neg is held, 1 while only pos is held.
func axis(input *components.InputData, neg, pos cfg.ActionID) float64 {
	var v float64
	if GetAction(input, neg).Pressed {
		v--
	}
	if GetAction(input, pos).Pressed {
		v++
	}
	return v
}

// fireCannon launches a bullet from the nose, inheriting the ship's velocity.
func fireCannon(ecs *ecs.ECS, ship *donburi.Entry) {
	t := components.Transform.Get(ship)
	forward := gamemath.Forward(t.Rotation)
	offset := components.Bounding.Get(ship).Radius + cfg.Bullet.Radius + 1

	pos := gamemath.Add(t.Position, gamemath.Scale(forward, offset))
	vel := gamemath.Add(components.Velocity.Get(ship).Vec2, gamemath.Scale(forward, components.Cannon.Get(ship).Speed))
	factory.CreateBullet(ecs, pos, vel)
}

// UpdateShipState runs the Spawning and Dead countdowns.
func UpdateShipState(ecs *ecs.ECS) {
	dt := delta(ecs)

	var respawn []*donburi.Entry
	components.Ship.Each(ecs.World, func(e *donburi.Entry) {
		ship := components.Ship.Get(e)
		if ship.Phase == components.ShipAlive {
			return
		}

		ship.Countdown -= dt
		if ship.Countdown > 0 {
			return
		}

		switch ship.Phase {
		case components.ShipSpawning:
			ship.Phase = components.ShipAlive
			ship.Countdown = 0
			logging.L().Debug("ship phase", zap.Stringer("phase", ship.Phase))
		case components.ShipDead:
			respawn = append(respawn, e)
		}
	})

	// respawning attaches a flicker, which must not happen mid-query
	for _, e := range respawn {
		respawnShip(e)
	}
}

// respawnShip puts the ship back at the center, facing up, flickering.
func respawnShip(e *donburi.Entry) {
	ship := components.Ship.Get(e)
	ship.Phase = components.ShipSpawning
	ship.Countdown = cfg.Ship.SpawningDuration

	t := components.Transform.Get(e)
	t.Position = math2.Vec2{}
	t.Rotation = math.Pi
	components.Velocity.Get(e).Vec2 = math2.Vec2{}
	components.Visibility.Get(e).Visible = true

	startFlicker(e, cfg.Ship.FlickerDuration, cfg.Ship.FlickerInterval)
	logging.L().Debug("ship phase", zap.Stringer("phase", components.ShipSpawning))
}

// onPlayerDeath hides the ship and starts the Dead countdown.
func onPlayerDeath(ecs *ecs.ECS, ev events.PlayerDeathEvent) {
	events.GrainParticleSpawn.Publish(ecs.World, events.GrainParticleSpawnEvent{
		Pos:            ev.Pos,
		SpawnRadius:    ev.Radius,
		MinParticles:   cfg.Ship.DeathGrainMin,
		MaxParticles:   cfg.Ship.DeathGrainMax,
		ImpactVelocity: ev.ImpactVelocity,
	})

	e, ok := components.Ship.First(ecs.World)
	if !ok {
		return
	}
	ship := components.Ship.Get(e)
	ship.Phase = components.ShipDead
	ship.Countdown = cfg.Ship.DeadDuration

	components.Velocity.Get(e).Vec2 = math2.Vec2{}
	components.Visibility.Get(e).Visible = false
	if e.HasComponent(components.Flicker) {
		e.RemoveComponent(components.Flicker)
	}

	components.Stats.Get(worldEntry(ecs)).Deaths++
	logging.L().Info("ship destroyed", zap.Float64("x", ev.Pos.X), zap.Float64("y", ev.Pos.Y))
}
