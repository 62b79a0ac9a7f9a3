package factory

import (
	"math"

	"github.com/automoto/asteroids/archetypes"
	"github.com/automoto/asteroids/components"
	cfg "github.com/automoto/asteroids/config"
	"github.com/automoto/asteroids/gamemath"
	"github.com/automoto/asteroids/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// CreateShip spawns the player ship at the arena center, facing up, in the
// Spawning phase.
func CreateShip(ecs *ecs.ECS) *donburi.Entry {
	ship := archetypes.Ship.Spawn(ecs)
	radius := cfg.Ship.Size / 2

	components.Ship.SetValue(ship, components.ShipData{
		Phase:     components.ShipSpawning,
		Countdown: cfg.Ship.InitialSpawnDelay,
	})
	components.Transform.SetValue(ship, components.TransformData{
		Position: math2.Vec2{},
		Rotation: math.Pi,
		Scale:    1,
	})
	components.Damping.SetValue(ship, components.DampingData{Factor: cfg.Ship.Damping})
	components.SpeedLimit.SetValue(ship, components.SpeedLimitData{Max: cfg.Ship.SpeedLimit})
	components.Bounding.SetValue(ship, components.BoundingData{Radius: radius})
	components.Damage.SetValue(ship, components.DamageData{Amount: cfg.Ship.RamDamage})
	components.Drive.SetValue(ship, components.DriveData{
		Force:        cfg.Ship.DriveForce,
		ReverseForce: cfg.Ship.ReverseForce,
	})
	components.Thrusters.SetValue(ship, components.ThrustersData{Force: cfg.Ship.ThrusterForce})
	components.Steering.SetValue(ship, components.SteeringData{Rate: cfg.Ship.SteeringRate})
	components.Cannon.SetValue(ship, components.CannonData{Speed: cfg.Ship.CannonSpeed})
	components.Outline.SetValue(ship, components.OutlineData{Points: gamemath.ShipOutline(cfg.Ship.Size)})
	components.Visibility.SetValue(ship, components.VisibilityData{Visible: false})

	attachObject(ecs, ship, math2.Vec2{}, radius, tags.ResolvShip)
	return ship
}
