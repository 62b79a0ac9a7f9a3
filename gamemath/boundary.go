package gamemath

import math2 "github.com/yohamta/donburi/features/math"

// Frame is the axis-aligned play-field rectangle in world coordinates.
type Frame struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// CenteredFrame returns a frame of the given size centered on the origin.
func CenteredFrame(width, height float64) Frame {
	return Frame{MinX: -width / 2, MinY: -height / 2, MaxX: width / 2, MaxY: height / 2}
}

// Width returns the horizontal extent of the frame.
func (f Frame) Width() float64 { return f.MaxX - f.MinX }

// Height returns the vertical extent of the frame.
func (f Frame) Height() float64 { return f.MaxY - f.MinY }

// Wrap teleports a body that has left the frame by its full radius to the
// opposite edge, keeping its overshoot. The wrapped coordinate lies in the
// half-open band [min-r, max+r), so a body exactly at max+r lands on min-r
// and wrapping again without movement leaves it in place.
func (f Frame) Wrap(pos math2.Vec2, radius float64) math2.Vec2 {
	pos.X = wrapAxis(pos.X, f.MinX-radius, f.MaxX+radius)
	pos.Y = wrapAxis(pos.Y, f.MinY-radius, f.MaxY+radius)
	return pos
}

func wrapAxis(v, lo, hi float64) float64 {
	span := hi - lo
	if span <= 0 {
		return v
	}
	if v >= hi {
		v -= span
	} else if v < lo {
		v += span
	}
	return v
}

// Outside reports whether a body has left the frame by more than its radius.
func (f Frame) Outside(pos math2.Vec2, radius float64) bool {
	return pos.X < f.MinX-radius || pos.X > f.MaxX+radius ||
		pos.Y < f.MinY-radius || pos.Y > f.MaxY+radius
}

// Contains reports whether pos lies inside the frame.
func (f Frame) Contains(pos math2.Vec2) bool {
	return pos.X >= f.MinX && pos.X <= f.MaxX && pos.Y >= f.MinY && pos.Y <= f.MaxY
}
