package systems

import (
	"testing"

	"github.com/automoto/asteroids/components"
	"github.com/automoto/asteroids/events"
	"github.com/automoto/asteroids/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	math2 "github.com/yohamta/donburi/features/math"
)

func TestFlickerEndsVisible(t *testing.T) {
	e := newTestECS(t, 50)
	rock := spawnRock(e, 40, math2.Vec2{}, math2.Vec2{})
	startFlicker(rock, 0.5, 0.1)

	toggled := false
	for i := 0; i < 40; i++ {
		step(e, tick)
		if !components.Visibility.Get(rock).Visible {
			toggled = true
		}
	}

	assert.True(t, toggled)
	assert.True(t, components.Visibility.Get(rock).Visible)
	assert.False(t, rock.HasComponent(components.Flicker))
}

func TestFlickerWithoutInterval(t *testing.T) {
	e := newTestECS(t, 51)
	rock := spawnRock(e, 40, math2.Vec2{}, math2.Vec2{})
	startFlicker(rock, 0.1, 0)

	step(e, tick)
	assert.True(t, components.Visibility.Get(rock).Visible)
}

func TestGrainFadesAndExpires(t *testing.T) {
	e := newTestECS(t, 52)
	grain := factory.CreateGrain(e, math2.Vec2{}, math2.Vec2{}, 0.5)

	for i := 0; i < 15; i++ {
		step(e, tick)
	}
	require.True(t, grain.Valid())
	fade := components.Fade.Get(grain)
	assert.Less(t, fade.Brightness, float32(1))
	assert.Less(t, fade.Scale, float32(1))
	assert.Greater(t, fade.Brightness, float32(0.2))

	for i := 0; i < 20; i++ {
		step(e, tick)
	}
	assert.False(t, grain.Valid())
}

func TestHitBurstsGrains(t *testing.T) {
	e := newTestECS(t, 53)
	rock := spawnRock(e, 40, math2.Vec2{}, math2.Vec2{})

	onHit(e, events.HitEvent{Entity: rock, Point: math2.Vec2{X: 40}})
	ProcessEvents(e)

	assert.True(t, rock.HasComponent(components.Flicker))
	assert.Positive(t, count(e, components.Fade))
}
