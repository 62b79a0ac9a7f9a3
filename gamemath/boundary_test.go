package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	math2 "github.com/yohamta/donburi/features/math"
)

func TestWrapAtExactEdge(t *testing.T) {
	f := CenteredFrame(200, 100)

	got := f.Wrap(math2.Vec2{X: 105, Y: 0}, 5)
	assert.Equal(t, math2.Vec2{X: -105, Y: 0}, got)

	got = f.Wrap(math2.Vec2{X: 0, Y: 55}, 5)
	assert.Equal(t, math2.Vec2{X: 0, Y: -55}, got)
}

func TestWrapIsIdempotent(t *testing.T) {
	f := CenteredFrame(200, 100)
	positions := []math2.Vec2{
		{X: 105}, {X: -106}, {X: 130, Y: -70}, {Y: 56}, {X: -3, Y: -60}, {X: 20, Y: 20},
	}

	for _, p := range positions {
		once := f.Wrap(p, 5)
		assert.Equal(t, once, f.Wrap(once, 5), "position %v", p)
	}
}

func TestWrapLeavesInteriorAlone(t *testing.T) {
	f := CenteredFrame(200, 100)
	p := math2.Vec2{X: 102, Y: -52}
	assert.Equal(t, p, f.Wrap(p, 5))
}

func TestOutside(t *testing.T) {
	f := CenteredFrame(200, 100)

	assert.False(t, f.Outside(math2.Vec2{X: 101}, 1))
	assert.True(t, f.Outside(math2.Vec2{X: 101.5}, 1))
	assert.True(t, f.Outside(math2.Vec2{Y: -52}, 1))
	assert.False(t, f.Outside(math2.Vec2{}, 1))
}
