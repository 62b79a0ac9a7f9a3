package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	math2 "github.com/yohamta/donburi/features/math"
)

func momentum(m1 float64, v1 math2.Vec2, m2 float64, v2 math2.Vec2) math2.Vec2 {
	return Add(Scale(v1, m1), Scale(v2, m2))
}

func energy(m1 float64, v1 math2.Vec2, m2 float64, v2 math2.Vec2) float64 {
	return 0.5*m1*Dot(v1, v1) + 0.5*m2*Dot(v2, v2)
}

func TestResolveElasticHeadOn(t *testing.T) {
	a := Body{Pos: math2.Vec2{X: 0}, Vel: math2.Vec2{X: 10}, Radius: 5}
	b := Body{Pos: math2.Vec2{X: 9}, Vel: math2.Vec2{X: -10}, Radius: 5}

	res := ResolveElastic(a, b, 1)
	require.True(t, res.Exchanged)

	// equal masses swap their normal velocities
	assert.InDelta(t, -10, res.VelA.X, 1e-9)
	assert.InDelta(t, 10, res.VelB.X, 1e-9)
	assert.InDelta(t, 10, res.PosB.X, 1e-9)
}

func TestResolveElasticSeparates(t *testing.T) {
	bodies := []struct {
		a, b Body
	}{
		{Body{Pos: math2.Vec2{}, Radius: 70}, Body{Pos: math2.Vec2{X: 30, Y: 40}, Radius: 20}},
		{Body{Pos: math2.Vec2{X: 5, Y: 5}, Vel: math2.Vec2{X: 3}, Radius: 10}, Body{Pos: math2.Vec2{X: 6, Y: 4}, Vel: math2.Vec2{Y: 8}, Radius: 1}},
		{Body{Pos: math2.Vec2{X: -20}, Radius: 40}, Body{Pos: math2.Vec2{X: 10, Y: -1}, Radius: 40}},
	}

	for _, tc := range bodies {
		res := ResolveElastic(tc.a, tc.b, 0.992)
		assert.GreaterOrEqual(t, Distance(tc.a.Pos, res.PosB), tc.a.Radius+tc.b.Radius-1e-9)
	}
}

func TestResolveElasticConservesMomentumAndBoundsEnergy(t *testing.T) {
	a := Body{Pos: math2.Vec2{}, Vel: math2.Vec2{X: 30, Y: 5}, Radius: 10}
	b := Body{Pos: math2.Vec2{X: 25, Y: 3}, Vel: math2.Vec2{X: -4, Y: 12}, Radius: 17}
	m1, m2 := Mass(a.Radius), Mass(b.Radius)

	perfect := ResolveElastic(a, b, 1)
	require.True(t, perfect.Exchanged)

	before := momentum(m1, a.Vel, m2, b.Vel)
	after := momentum(m1, perfect.VelA, m2, perfect.VelB)
	assert.InDelta(t, before.X, after.X, 1e-6*Length(before))
	assert.InDelta(t, before.Y, after.Y, 1e-6*Length(before))
	assert.InDelta(t, energy(m1, a.Vel, m2, b.Vel), energy(m1, perfect.VelA, m2, perfect.VelB), 1e-6*energy(m1, a.Vel, m2, b.Vel))

	lossy := ResolveElastic(a, b, 0.992)
	assert.LessOrEqual(t, energy(m1, lossy.VelA, m2, lossy.VelB), energy(m1, a.Vel, m2, b.Vel))
	assert.LessOrEqual(t, Length(momentum(m1, lossy.VelA, m2, lossy.VelB)), Length(before)+1e-9)
}

func TestResolveElasticIsSymmetric(t *testing.T) {
	a := Body{Pos: math2.Vec2{X: 1, Y: 2}, Vel: math2.Vec2{X: 8, Y: -2}, Radius: 12}
	b := Body{Pos: math2.Vec2{X: 15, Y: 9}, Vel: math2.Vec2{X: -6, Y: 1}, Radius: 9}

	ab := ResolveElastic(a, b, 0.992)
	ba := ResolveElastic(b, a, 0.992)

	assert.InDelta(t, ab.VelA.X, ba.VelB.X, 1e-9)
	assert.InDelta(t, ab.VelA.Y, ba.VelB.Y, 1e-9)
	assert.InDelta(t, ab.VelB.X, ba.VelA.X, 1e-9)
	assert.InDelta(t, ab.VelB.Y, ba.VelA.Y, 1e-9)
}

func TestResolveElasticCoincidentCenters(t *testing.T) {
	a := Body{Pos: math2.Vec2{X: 4, Y: 4}, Vel: math2.Vec2{X: 1}, Radius: 5}
	b := Body{Pos: math2.Vec2{X: 4, Y: 4}, Vel: math2.Vec2{Y: 2}, Radius: 5}

	res := ResolveElastic(a, b, 1)
	assert.False(t, res.Exchanged)
	assert.Equal(t, a.Vel, res.VelA)
	assert.Equal(t, b.Vel, res.VelB)
	assert.InDelta(t, 4+UnstickNudge, res.PosB.X, 1e-12)
	assert.False(t, math.IsNaN(res.PosB.Y))
}

func TestResolveElasticSkipsSeparatingPairs(t *testing.T) {
	a := Body{Pos: math2.Vec2{}, Vel: math2.Vec2{X: -5}, Radius: 10}
	b := Body{Pos: math2.Vec2{X: 15}, Vel: math2.Vec2{X: 5}, Radius: 10}

	res := ResolveElastic(a, b, 1)
	assert.False(t, res.Exchanged)
	assert.Equal(t, a.Vel, res.VelA)
	assert.Equal(t, b.Vel, res.VelB)
	assert.InDelta(t, 20, res.PosB.X, 1e-9)
}

func TestElasticExchangeHeavyTarget(t *testing.T) {
	v1, v2 := ElasticExchange(1, 1e9, 10, 0)
	assert.InDelta(t, -10, v1, 1e-6)
	assert.InDelta(t, 0, v2, 1e-6)
}
