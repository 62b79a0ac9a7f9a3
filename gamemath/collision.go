package gamemath

import (
	math2 "github.com/yohamta/donburi/features/math"
)

// Body is the slice of a physical entity the contact resolver works on.
type Body struct {
	Pos    math2.Vec2
	Vel    math2.Vec2
	Radius float64
}

// Resolution is the outcome of resolving one overlapping pair.
type Resolution struct {
	VelA math2.Vec2
	VelB math2.Vec2
	PosB math2.Vec2
	// Exchanged is false when no momentum was traded, either because the
	// centers coincide or because the bodies are already separating.
	Exchanged bool
}

// UnstickNudge is how far B is moved when both centers coincide. Full
// separation happens on the next frame once a contact normal exists.
const UnstickNudge = 0.5

// ResolveElastic separates b from a along the contact normal and exchanges
// the velocity components parallel to that normal with the 1-D elastic
// collision formula, using the disk area as mass. The exchanged components
// are scaled by restitution; the perpendicular components are kept. a is
// treated as immovable for the positional push.
func ResolveElastic(a, b Body, restitution float64) Resolution {
	res := Resolution{VelA: a.Vel, VelB: b.Vel, PosB: b.Pos}

	d := Distance(a.Pos, b.Pos)
	if d == 0 {
		res.PosB = math2.Vec2{X: b.Pos.X + UnstickNudge, Y: b.Pos.Y}
		return res
	}

	normal := math2.Vec2{X: (b.Pos.X - a.Pos.X) / d, Y: (b.Pos.Y - a.Pos.Y) / d}
	if depth := a.Radius + b.Radius - d; depth > 0 {
		res.PosB = Add(b.Pos, Scale(normal, depth))
	}

	u1 := Dot(a.Vel, normal)
	u2 := Dot(b.Vel, normal)

	// approaching only when A gains on B along the normal
	if u1-u2 <= 0 {
		return res
	}

	m1 := Mass(a.Radius)
	m2 := Mass(b.Radius)
	v1, v2 := ElasticExchange(m1, m2, u1, u2)

	perpA := Sub(a.Vel, Scale(normal, u1))
	perpB := Sub(b.Vel, Scale(normal, u2))

	res.VelA = Add(perpA, Scale(normal, v1*restitution))
	res.VelB = Add(perpB, Scale(normal, v2*restitution))
	res.Exchanged = true
	return res
}

// ElasticExchange applies the 1-D elastic collision formula to the scalar
// velocities u1 and u2 of masses m1 and m2.
func ElasticExchange(m1, m2, u1, u2 float64) (v1, v2 float64) {
	total := m1 + m2
	v1 = ((m1-m2)/total)*u1 + (2*m2/total)*u2
	v2 = (2*m1/total)*u1 - ((m1-m2)/total)*u2
	return v1, v2
}
