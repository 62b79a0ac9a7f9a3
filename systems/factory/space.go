package factory

import (
	"math/rand/v2"

	"github.com/automoto/asteroids/archetypes"
	"github.com/automoto/asteroids/components"
	cfg "github.com/automoto/asteroids/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// CreateSpace creates the broad phase collision space covering the arena
// plus its margin.
func CreateSpace(ecs *ecs.ECS) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	w, h := cfg.Arena.SpaceSize()
	spaceData := resolv.NewSpace(w, h, cfg.Arena.CellSize, cfg.Arena.CellSize)
	components.Space.Set(space, spaceData)
	return space
}

// CreateWorld creates the singleton holding the clock, the random source,
// the contact buffer, session stats and runtime settings.
func CreateWorld(ecs *ecs.ECS, rng *rand.Rand) *donburi.Entry {
	world := archetypes.World.Spawn(ecs)
	components.Random.SetValue(world, components.RandomData{Rand: rng})
	components.Settings.SetValue(world, components.SettingsData{
		DebugOverlay: cfg.Debug.Overlay,
	})
	return world
}

// attachObject registers a square broad phase box around a circular body.
func attachObject(ecs *ecs.ECS, e *donburi.Entry, pos math2.Vec2, radius float64, tag string) *resolv.Object {
	x, y := cfg.Arena.ToSpace(pos, radius)
	obj := resolv.NewObject(x, y, radius*2, radius*2, tag)
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obj
}
