package systems

import (
	"testing"

	"github.com/automoto/asteroids/components"
	cfg "github.com/automoto/asteroids/config"
	"github.com/automoto/asteroids/gamemath"
	"github.com/automoto/asteroids/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	math2 "github.com/yohamta/donburi/features/math"
)

func TestFragmentationCounts(t *testing.T) {
	cases := []struct {
		name     string
		radius   float64
		children int
		tier     cfg.TierID
	}{
		{"large", 70, 2, cfg.TierMedium},
		{"medium", 40, 3, cfg.TierSmall},
		{"small", 15, 0, cfg.TierNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestECS(t, 7)
			rec := record(e)

			rock := spawnRock(e, tc.radius, math2.Vec2{}, math2.Vec2{})
			components.Health.Get(rock).Current = 0
			factory.CreateBullet(e, math2.Vec2{X: tc.radius + 0.5}, math2.Vec2{})

			step(e, tick)

			assert.False(t, rock.Valid())
			require.Len(t, rec.destructions, 1)

			children := asteroids(e)
			require.Len(t, children, tc.children)
			if tc.children == 0 {
				assert.Empty(t, rec.spawns)
				return
			}

			require.Len(t, rec.spawns, 1)
			assert.Equal(t, tc.children, rec.spawns[0].Amount)

			row := cfg.Asteroid.TierConfig(tc.tier)
			for _, c := range children {
				r := radiusOf(c)
				assert.GreaterOrEqual(t, r, row.Min)
				assert.LessOrEqual(t, r, row.Max)
				assert.Equal(t, tc.tier, cfg.Asteroid.Tier(r))
				assert.Equal(t, row.Health, components.Health.Get(c).Current)
			}
		})
	}
}

func TestFragmentsStartApart(t *testing.T) {
	e := newTestECS(t, 8)
	rock := spawnRock(e, 40, math2.Vec2{}, math2.Vec2{})
	components.Health.Get(rock).Current = 0
	factory.CreateBullet(e, math2.Vec2{X: 40.5}, math2.Vec2{})

	step(e, tick)

	children := asteroids(e)
	require.Len(t, children, 3)
	for i := range children {
		for j := i + 1; j < len(children); j++ {
			pi := components.Transform.Get(children[i]).Position
			pj := components.Transform.Get(children[j]).Position
			assert.False(t, gamemath.Touching(pi, radiusOf(children[i]), pj, radiusOf(children[j])))
		}
	}
}

func TestPartitionMode(t *testing.T) {
	prev := cfg.Asteroid.FragmentMode
	cfg.Asteroid.FragmentMode = cfg.FragmentPartition
	t.Cleanup(func() { cfg.Asteroid.FragmentMode = prev })

	e := newTestECS(t, 9)
	rec := record(e)

	rock := spawnRock(e, 70, math2.Vec2{X: 10, Y: 20}, math2.Vec2{})
	components.Health.Get(rock).Current = 0
	factory.CreateBullet(e, math2.Vec2{X: 80.5, Y: 20}, math2.Vec2{})

	step(e, tick)

	assert.Empty(t, rec.spawns)
	require.Len(t, rec.splits, 1)
	assert.Equal(t, 2, rec.splits[0].Amount)

	children := asteroids(e)
	require.Len(t, children, 2)
	medium := cfg.Asteroid.TierConfig(cfg.TierMedium)
	for _, c := range children {
		assert.Equal(t, cfg.TierMedium, cfg.Asteroid.Tier(radiusOf(c)))
		assert.Equal(t, medium.Health, components.Health.Get(c).Current)
		// Pieces fly away from the parent center.
		pos := gamemath.Sub(components.Transform.Get(c).Position, math2.Vec2{X: 10, Y: 20})
		assert.Positive(t, gamemath.Dot(pos, components.Velocity.Get(c).Vec2))
	}
}

func TestSpawnerRejectsOverlap(t *testing.T) {
	e := newTestECS(t, 10)
	rec := record(e)

	blocker := spawnRock(e, 70, math2.Vec2{}, math2.Vec2{})
	components.Bounding.Get(blocker).Radius = 1000

	assert.False(t, trySpawnAsteroid(e, getRand(e)))
	ProcessEvents(e)
	assert.Empty(t, rec.spawns)
	assert.Len(t, asteroids(e), 1)
}

func TestSpawnerPlacesOnEdge(t *testing.T) {
	e := newTestECS(t, 11)

	require.True(t, trySpawnAsteroid(e, getRand(e)))
	ProcessEvents(e)

	rocks := asteroids(e)
	require.Len(t, rocks, 1)

	frame := cfg.Arena.Frame()
	pos := components.Transform.Get(rocks[0]).Position
	onEdge := pos.X == frame.MinX || pos.X == frame.MaxX || pos.Y == frame.MinY || pos.Y == frame.MaxY
	assert.True(t, onEdge, "spawned at %v", pos)
	assert.NotEqual(t, cfg.TierNone, cfg.Asteroid.Tier(radiusOf(rocks[0])))
}

func TestSpawnerTimer(t *testing.T) {
	e := newTestECS(t, 12)
	getClock(e).Delta = cfg.Spawner.Interval * 0.5

	UpdateAsteroidSpawner(e)
	assert.InDelta(t, cfg.Spawner.Interval*0.5, components.Spawner.Get(worldEntry(e)).Timer, 1e-9)

	UpdateAsteroidSpawner(e)
	assert.InDelta(t, 0, components.Spawner.Get(worldEntry(e)).Timer, 1e-9)
}
