// Package gamemath holds the pure geometry and collision math used by the
// simulation systems. Nothing here touches the ECS.
package gamemath

import (
	"math"

	math2 "github.com/yohamta/donburi/features/math"
)

// Distance returns the Euclidean distance between two positions.
func Distance(a, b math2.Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Touching reports whether two circles overlap. Exact tangency is not a
// contact, so bodies resting against each other do not oscillate.
func Touching(posA math2.Vec2, radiusA float64, posB math2.Vec2, radiusB float64) bool {
	return Distance(posA, posB) < radiusA+radiusB
}

// Penetration returns how deep two circles overlap. Negative when apart;
// callers check Touching first.
func Penetration(posA math2.Vec2, radiusA float64, posB math2.Vec2, radiusB float64) float64 {
	return radiusA + radiusB - Distance(posA, posB)
}

// ContactAngle returns the direction from A to B in radians.
func ContactAngle(posA, posB math2.Vec2) float64 {
	return math.Atan2(posB.Y-posA.Y, posB.X-posA.X)
}

// Mass is the area of a disk of the given radius, used as the mass proxy.
func Mass(radius float64) float64 {
	return math.Pi * radius * radius
}

// IntersectionMidpoint returns the midpoint of the two points where the
// boundaries of two circles cross. It returns false when the centers
// coincide, one circle contains the other, or the circles are apart.
func IntersectionMidpoint(posA math2.Vec2, radiusA float64, posB math2.Vec2, radiusB float64) (math2.Vec2, bool) {
	d := Distance(posA, posB)
	if d == 0 || d >= radiusA+radiusB || d <= math.Abs(radiusA-radiusB) {
		return math2.Vec2{}, false
	}

	// distance from A's center to the chord along the center line
	a := (radiusA*radiusA - radiusB*radiusB + d*d) / (2 * d)
	return math2.Vec2{
		X: posA.X + a*(posB.X-posA.X)/d,
		Y: posA.Y + a*(posB.Y-posA.Y)/d,
	}, true
}

// Direction returns the unit vector for an angle measured from +X.
func Direction(angle float64) math2.Vec2 {
	return math2.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}

// Forward returns the unit heading of a body rotated by rotation radians.
// A rotation of zero faces -Y; rotations are counter-clockwise.
func Forward(rotation float64) math2.Vec2 {
	return math2.Vec2{X: math.Sin(rotation), Y: -math.Cos(rotation)}
}

// Length returns the magnitude of v.
func Length(v math2.Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

// Scale multiplies v by s.
func Scale(v math2.Vec2, s float64) math2.Vec2 {
	return math2.Vec2{X: v.X * s, Y: v.Y * s}
}

// Add returns a+b.
func Add(a, b math2.Vec2) math2.Vec2 {
	return math2.Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub returns a-b.
func Sub(a, b math2.Vec2) math2.Vec2 {
	return math2.Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

// Dot returns the dot product of a and b.
func Dot(a, b math2.Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// ClampLength shortens v to at most max, keeping its direction.
func ClampLength(v math2.Vec2, max float64) math2.Vec2 {
	l := Length(v)
	if l <= max || l == 0 {
		return v
	}
	return Scale(v, max/l)
}
