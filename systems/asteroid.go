package systems

import (
	"math"
	"math/rand/v2"

	"github.com/automoto/asteroids/components"
	cfg "github.com/automoto/asteroids/config"
	"github.com/automoto/asteroids/events"
	"github.com/automoto/asteroids/gamemath"
	"github.com/automoto/asteroids/logging"
	"github.com/automoto/asteroids/systems/factory"
	"github.com/automoto/asteroids/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

// onDestruction removes a destroyed entity. An asteroid first asks for its
// children: fresh rocks in the next tier, or pieces of its own outline when
// the table selects partition mode.
func onDestruction(ecs *ecs.ECS, ev events.DestructionEvent) {
	e := ev.Entity
	if e == nil || !e.Valid() {
		return
	}
	if !e.HasComponent(tags.Asteroid) {
		removeEntity(e)
		return
	}

	t := components.Transform.Get(e)
	radius := components.Bounding.Get(e).Radius
	tier := cfg.Asteroid.Tier(radius)
	row := cfg.Asteroid.TierConfig(tier)
	child := cfg.Asteroid.ChildTier(tier)

	components.Stats.Get(worldEntry(ecs)).Destroyed++
	logging.L().Debug("asteroid destroyed",
		zap.Stringer("tier", tier),
		zap.Float64("radius", radius),
		zap.Int("children", row.Children),
	)

	if row.Children > 0 && child != cfg.TierNone {
		childRow := cfg.Asteroid.TierConfig(child)
		switch cfg.Asteroid.FragmentMode {
		case cfg.FragmentPartition:
			points := components.Outline.Get(e).Points
			world := make([]math2.Vec2, len(points))
			for i, p := range points {
				world[i] = gamemath.Rotate(p, t.Rotation)
			}
			events.AsteroidSplit.Publish(ecs.World, events.AsteroidSplitEvent{
				ParentPoints: world,
				Pos:          t.Position,
				Radius:       childRow.Min,
				Amount:       row.Children,
			})
		default:
			events.AsteroidSpawn.Publish(ecs.World, events.AsteroidSpawnEvent{
				Pos:          t.Position,
				Radius:       randRange(getRand(ecs), childRow.Min, childRow.Max),
				Amount:       row.Children,
				ParentRadius: radius,
			})
		}
	}

	removeEntity(e)
}

// onAsteroidSpawn creates ev.Amount rocks with fresh outlines. Children of
// a parent are spread evenly on a circle of ParentRadius*SpawnOffset so they
// start apart.
func onAsteroidSpawn(ecs *ecs.ECS, ev events.AsteroidSpawnEvent) {
	rng := getRand(ecs)
	tier := cfg.Asteroid.Tier(ev.Radius)
	row := cfg.Asteroid.TierConfig(tier)

	for i := 0; i < ev.Amount; i++ {
		pos := ev.Pos
		if ev.ParentRadius > 0 {
			angle := 2 * math.Pi / float64(ev.Amount) * float64(i)
			offset := math2.Vec2{X: math.Sin(angle), Y: math.Cos(angle)}
			pos = gamemath.Add(pos, gamemath.Scale(offset, ev.ParentRadius*cfg.Asteroid.SpawnOffset))
		}

		edges := cfg.Asteroid.EdgesMin + rng.IntN(cfg.Asteroid.EdgesMax-cfg.Asteroid.EdgesMin)
		points := gamemath.RockOutline(rng, ev.Radius, row.VertexBand, edges)
		vel := asteroidVelocity(rng, tier, pos, ev.ParentRadius == 0)
		factory.CreateAsteroid(ecs, tier, pos, points, vel, asteroidSpin(rng))
	}

	logging.L().Debug("asteroids spawned",
		zap.Stringer("tier", tier),
		zap.Int("amount", ev.Amount),
		zap.Float64("radius", ev.Radius),
	)
}

// onAsteroidSplit cuts the parent outline into arcs and launches each piece
// away from the parent's center.
func onAsteroidSplit(ecs *ecs.ECS, ev events.AsteroidSplitEvent) {
	rng := getRand(ecs)
	tier := cfg.Asteroid.Tier(ev.Radius)
	row := cfg.Asteroid.TierConfig(tier)

	for _, piece := range gamemath.PartitionOutline(ev.ParentPoints, ev.Amount) {
		dir := gamemath.Centroid(piece)
		if l := gamemath.Length(dir); l > 0 {
			dir = gamemath.Scale(dir, 1/l)
		} else {
			dir = gamemath.Direction(rng.Float64() * 2 * math.Pi)
		}
		vel := gamemath.Scale(dir, randRange(rng, row.SpeedMin, row.SpeedMax))
		factory.CreateAsteroidFragment(ecs, tier, ev.Pos, piece, vel, asteroidSpin(rng))
	}
}

// asteroidVelocity picks a speed from the tier range. Fresh large rocks head
// for the center of the field; everything else flies off in a random
// direction.
func asteroidVelocity(rng *rand.Rand, tier cfg.TierID, pos math2.Vec2, fresh bool) math2.Vec2 {
	row := cfg.Asteroid.TierConfig(tier)
	speed := randRange(rng, row.SpeedMin, row.SpeedMax)

	if fresh && tier == cfg.TierLarge {
		if l := gamemath.Length(pos); l > 0 {
			return gamemath.Scale(pos, -speed/l)
		}
	}
	return gamemath.Scale(gamemath.Direction(rng.Float64()*2*math.Pi), speed)
}

func asteroidSpin(rng *rand.Rand) float64 {
	spin := randRange(rng, cfg.Asteroid.SpinMin, cfg.Asteroid.SpinMax)
	if rng.IntN(2) == 0 {
		spin = -spin
	}
	return spin
}

// UpdateAsteroidSpawner rolls for a new asteroid every interval. A rock
// enters on a random edge of the field and is skipped if it would overlap
// one already there.
func UpdateAsteroidSpawner(ecs *ecs.ECS) {
	spawner := components.Spawner.Get(worldEntry(ecs))
	spawner.Timer += delta(ecs)

	rng := getRand(ecs)
	for spawner.Timer >= cfg.Spawner.Interval {
		spawner.Timer -= cfg.Spawner.Interval
		if rng.IntN(cfg.Spawner.Chance) != 0 {
			continue
		}
		trySpawnAsteroid(ecs, rng)
	}
}

func trySpawnAsteroid(ecs *ecs.ECS, rng *rand.Rand) bool {
	tier := cfg.Spawner.SizeTable[rng.IntN(len(cfg.Spawner.SizeTable))]
	row := cfg.Asteroid.TierConfig(tier)
	radius := randRange(rng, row.Min, row.Max)
	pos := edgePosition(rng)

	blocked := false
	tags.Asteroid.Each(ecs.World, func(e *donburi.Entry) {
		if blocked {
			return
		}
		other := components.Transform.Get(e).Position
		if gamemath.Touching(pos, radius, other, components.Bounding.Get(e).Radius) {
			blocked = true
		}
	})
	if blocked {
		return false
	}

	events.AsteroidSpawn.Publish(ecs.World, events.AsteroidSpawnEvent{
		Pos:    pos,
		Radius: radius,
		Amount: 1,
	})
	return true
}

// edgePosition returns a random point on one of the four frame edges.
func edgePosition(rng *rand.Rand) math2.Vec2 {
	frame := cfg.Arena.Frame()
	switch rng.IntN(4) {
	case 0:
		return math2.Vec2{X: randRange(rng, frame.MinX, frame.MaxX), Y: frame.MaxY}
	case 1:
		return math2.Vec2{X: randRange(rng, frame.MinX, frame.MaxX), Y: frame.MinY}
	case 2:
		return math2.Vec2{X: frame.MinX, Y: randRange(rng, frame.MinY, frame.MaxY)}
	default:
		return math2.Vec2{X: frame.MaxX, Y: randRange(rng, frame.MinY, frame.MaxY)}
	}
}
