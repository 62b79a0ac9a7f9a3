package systems

import (
	"testing"

	"github.com/automoto/asteroids/components"
	"github.com/automoto/asteroids/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	math2 "github.com/yohamta/donburi/features/math"
)

func TestAsteroidsBounce(t *testing.T) {
	e := newTestECS(t, 30)
	a := spawnRock(e, 40, math2.Vec2{X: -35}, math2.Vec2{X: 10})
	b := spawnRock(e, 40, math2.Vec2{X: 35}, math2.Vec2{X: -10})

	step(e, tick)

	contacts := components.Contacts.Get(worldEntry(e)).Pairs
	require.Len(t, contacts, 1)
	assert.Equal(t, a.Entity(), contacts[0].A.Entity())
	assert.True(t, contacts[0].HasPoint)

	assert.Negative(t, components.Velocity.Get(a).Vec2.X)
	assert.Positive(t, components.Velocity.Get(b).Vec2.X)

	pa := components.Transform.Get(a).Position
	pb := components.Transform.Get(b).Position
	assert.GreaterOrEqual(t, gamemath.Distance(pa, pb), 80-1e-9)
}

func TestDistantAsteroidsIgnored(t *testing.T) {
	e := newTestECS(t, 31)
	spawnRock(e, 40, math2.Vec2{X: -100}, math2.Vec2{})
	spawnRock(e, 40, math2.Vec2{X: 100}, math2.Vec2{})

	step(e, tick)

	assert.Empty(t, components.Contacts.Get(worldEntry(e)).Pairs)
}

func TestContactsResetEachFrame(t *testing.T) {
	e := newTestECS(t, 32)
	spawnRock(e, 40, math2.Vec2{X: -35}, math2.Vec2{})
	spawnRock(e, 40, math2.Vec2{X: 35}, math2.Vec2{})

	step(e, tick)
	require.Len(t, components.Contacts.Get(worldEntry(e)).Pairs, 1)

	step(e, tick)
	assert.Empty(t, components.Contacts.Get(worldEntry(e)).Pairs)
}
