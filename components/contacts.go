package components

import (
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// Contact is one overlapping pair seen by the collision pass, recorded
// before the resolver pushes the bodies apart.
type Contact struct {
	A, B *donburi.Entry

	// Point is where the two outlines cross; HasPoint is false when the
	// circles are concentric or one contains the other.
	Point    math2.Vec2
	HasPoint bool

	// Velocities at the moment of contact.
	VelA, VelB math2.Vec2
}

// ContactsData is the per-frame contact buffer. It is reset at the start of
// every collision pass.
type ContactsData struct {
	Pairs []Contact
}

var Contacts = donburi.NewComponentType[ContactsData]()
