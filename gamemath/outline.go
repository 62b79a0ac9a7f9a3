package gamemath

import (
	"math"
	"math/rand/v2"

	math2 "github.com/yohamta/donburi/features/math"
)

// RockOutline builds a centroid-relative polygon with the given number of
// edges at equal angular steps. Each vertex sits at a random distance in
// [target-band, target] so the silhouette looks like a rock rather than a
// circle.
func RockOutline(rng *rand.Rand, target, band float64, edges int) []math2.Vec2 {
	inner := math.Max(target-band, 0)
	step := 2 * math.Pi / float64(edges)
	points := make([]math2.Vec2, 0, edges)
	for i := 1; i <= edges; i++ {
		r := inner + rng.Float64()*(target-inner)
		a := step * float64(i)
		points = append(points, math2.Vec2{X: r * math.Sin(a), Y: r * math.Cos(a)})
	}
	return points
}

// MeanRadius returns the mean distance of the points from the origin.
func MeanRadius(points []math2.Vec2) float64 {
	if len(points) == 0 {
		return 0
	}
	var sum float64
	for _, p := range points {
		sum += Length(p)
	}
	return sum / float64(len(points))
}

// Centroid returns the vertex average of the points.
func Centroid(points []math2.Vec2) math2.Vec2 {
	if len(points) == 0 {
		return math2.Vec2{}
	}
	var c math2.Vec2
	for _, p := range points {
		c.X += p.X
		c.Y += p.Y
	}
	return Scale(c, 1/float64(len(points)))
}

// Recenter returns a copy of points translated so that c becomes the origin.
func Recenter(points []math2.Vec2, c math2.Vec2) []math2.Vec2 {
	out := make([]math2.Vec2, len(points))
	for i, p := range points {
		out[i] = Sub(p, c)
	}
	return out
}

// PartitionOutline cuts a closed outline into amount contiguous arcs. Each
// arc shares its end vertex with the start of the next one and is closed
// into a polygon through the outline's centroid, so the pieces tile the
// parent silhouette. Outlines too small to split come back as one piece.
func PartitionOutline(points []math2.Vec2, amount int) [][]math2.Vec2 {
	if amount < 2 || len(points) < amount*2 {
		return [][]math2.Vec2{append([]math2.Vec2(nil), points...)}
	}

	center := Centroid(points)
	per := len(points) / amount
	pieces := make([][]math2.Vec2, 0, amount)
	for k := 0; k < amount; k++ {
		start := k * per
		end := start + per
		if k == amount-1 {
			end = len(points)
		}
		piece := []math2.Vec2{center}
		for i := start; i <= end; i++ {
			piece = append(piece, points[i%len(points)])
		}
		pieces = append(pieces, piece)
	}
	return pieces
}

// ShipOutline returns the open polyline of the player ship, nose towards -Y.
func ShipOutline(size float64) []math2.Vec2 {
	h, w := size, size
	nose := math2.Vec2{X: 0, Y: -h / 2}
	left := math2.Vec2{X: -w / 2, Y: h / 2}
	right := math2.Vec2{X: w / 2, Y: h / 2}
	leftFin := math2.Vec2{X: -w / 1.5, Y: h / 1.5}
	rightFin := math2.Vec2{X: w / 1.5, Y: h / 1.5}
	return []math2.Vec2{nose, left, leftFin, left, right, rightFin, right, nose}
}

// Rotate turns v counter-clockwise by angle radians.
func Rotate(v math2.Vec2, angle float64) math2.Vec2 {
	s, c := math.Sincos(angle)
	return math2.Vec2{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c}
}
