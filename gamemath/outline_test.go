package gamemath

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	math2 "github.com/yohamta/donburi/features/math"
)

func TestRockOutlineStaysInBand(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for edges := 9; edges < 15; edges++ {
		points := RockOutline(rng, 40, 15, edges)
		require.Len(t, points, edges)
		for _, p := range points {
			l := Length(p)
			assert.GreaterOrEqual(t, l, 25-1e-9)
			assert.LessOrEqual(t, l, 40+1e-9)
		}
		mean := MeanRadius(points)
		assert.GreaterOrEqual(t, mean, 25.0)
		assert.LessOrEqual(t, mean, 40.0)
	}
}

func TestRockOutlineIsDeterministic(t *testing.T) {
	a := RockOutline(rand.New(rand.NewPCG(7, 7)), 70, 30, 11)
	b := RockOutline(rand.New(rand.NewPCG(7, 7)), 70, 30, 11)
	assert.Equal(t, a, b)
}

func TestRecenterMovesCentroidToOrigin(t *testing.T) {
	points := []math2.Vec2{{X: 10, Y: 10}, {X: 14, Y: 10}, {X: 14, Y: 16}, {X: 10, Y: 16}}
	c := Centroid(points)
	assert.Equal(t, math2.Vec2{X: 12, Y: 13}, c)

	moved := Recenter(points, c)
	got := Centroid(moved)
	assert.InDelta(t, 0, got.X, 1e-12)
	assert.InDelta(t, 0, got.Y, 1e-12)
	assert.Equal(t, math2.Vec2{X: 10, Y: 10}, points[0], "input is not mutated")
}

func TestPartitionOutline(t *testing.T) {
	points := RockOutline(rand.New(rand.NewPCG(3, 4)), 70, 30, 12)

	pieces := PartitionOutline(points, 2)
	require.Len(t, pieces, 2)

	center := Centroid(points)
	for _, piece := range pieces {
		assert.Equal(t, center, piece[0])
		assert.GreaterOrEqual(t, len(piece), 4)
	}

	// neighbouring pieces share their boundary vertex
	first, second := pieces[0], pieces[1]
	assert.Equal(t, first[len(first)-1], second[1])
	assert.Equal(t, second[len(second)-1], first[1])
}

func TestPartitionOutlineTooSmall(t *testing.T) {
	points := []math2.Vec2{{X: 1}, {Y: 1}, {X: -1}}
	pieces := PartitionOutline(points, 3)
	require.Len(t, pieces, 1)
	assert.Equal(t, points, pieces[0])
}

func TestShipOutlineNosePointsForward(t *testing.T) {
	points := ShipOutline(20)
	require.NotEmpty(t, points)
	assert.Equal(t, math2.Vec2{X: 0, Y: -10}, points[0])
	assert.Equal(t, points[0], points[len(points)-1])
}
