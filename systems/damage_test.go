package systems

import (
	"testing"

	"github.com/automoto/asteroids/components"
	cfg "github.com/automoto/asteroids/config"
	"github.com/automoto/asteroids/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	math2 "github.com/yohamta/donburi/features/math"
)

func TestBulletHitLargeAsteroidSurvives(t *testing.T) {
	e := newTestECS(t, 1)
	rec := record(e)

	rock := spawnRock(e, 70, math2.Vec2{}, math2.Vec2{})
	bullet := factory.CreateBullet(e, math2.Vec2{X: 70.5}, math2.Vec2{})

	step(e, tick)

	require.True(t, rock.Valid())
	assert.Equal(t, 20, components.Health.Get(rock).Current)
	assert.True(t, rock.HasComponent(components.Flicker))
	assert.False(t, bullet.Valid())

	assert.Len(t, rec.hits, 1)
	assert.Empty(t, rec.destructions)
	assert.Empty(t, rec.spawns)
	assert.Equal(t, 0, components.Stats.Get(worldEntry(e)).Destroyed)
}

func TestBulletDestroysSmallAsteroid(t *testing.T) {
	e := newTestECS(t, 2)
	rec := record(e)

	rock := spawnRock(e, 15, math2.Vec2{}, math2.Vec2{})
	factory.CreateBullet(e, math2.Vec2{X: 15.5}, math2.Vec2{})

	step(e, tick)

	assert.False(t, rock.Valid())
	assert.Len(t, rec.destructions, 1)
	assert.Empty(t, rec.spawns)
	assert.Empty(t, rec.hits)
	assert.Equal(t, 0, len(asteroids(e)))
	assert.Equal(t, 1, components.Stats.Get(worldEntry(e)).Destroyed)

	// The terminal burst carries the rock's grains.
	require.Len(t, rec.grains, 1)
	assert.Equal(t, cfg.Particles.TerminalMin, rec.grains[0].MinParticles)
	assert.GreaterOrEqual(t, count(e, components.Fade), cfg.Particles.TerminalMin)
}

func TestTwoBulletsOneDestruction(t *testing.T) {
	e := newTestECS(t, 3)
	rec := record(e)

	spawnRock(e, 15, math2.Vec2{}, math2.Vec2{})
	b1 := factory.CreateBullet(e, math2.Vec2{X: 15.5}, math2.Vec2{})
	b2 := factory.CreateBullet(e, math2.Vec2{X: -15.5}, math2.Vec2{})

	step(e, tick)

	assert.Len(t, rec.destructions, 1)
	assert.False(t, b1.Valid())
	assert.False(t, b2.Valid())
	assert.Equal(t, 0, count(e, components.Bullet))
}

func TestHealthNeverIncreases(t *testing.T) {
	e := newTestECS(t, 4)
	rock := spawnRock(e, 70, math2.Vec2{}, math2.Vec2{})

	last := components.Health.Get(rock).Current
	for i := 0; i < 3; i++ {
		factory.CreateBullet(e, math2.Vec2{X: 70.5}, math2.Vec2{})
		step(e, tick)
		require.True(t, rock.Valid())

		hp := components.Health.Get(rock).Current
		assert.Less(t, hp, last)
		last = hp
	}
	assert.Equal(t, 0, last)
}

func TestAsteroidPairDealsNoDamage(t *testing.T) {
	e := newTestECS(t, 5)
	rec := record(e)

	a := spawnRock(e, 40, math2.Vec2{X: -35}, math2.Vec2{})
	b := spawnRock(e, 40, math2.Vec2{X: 35}, math2.Vec2{})

	step(e, tick)

	assert.Equal(t, 20, components.Health.Get(a).Current)
	assert.Equal(t, 20, components.Health.Get(b).Current)
	assert.Empty(t, rec.hits)
	assert.Empty(t, rec.destructions)
}
