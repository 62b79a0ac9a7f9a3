package components

import (
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// TransformData places a body in world space. Rotation is counter-clockwise
// in radians, zero facing -Y.
type TransformData struct {
	Position math2.Vec2
	Rotation float64
	Scale    float64
}

var Transform = donburi.NewComponentType[TransformData]()

// VelocityData is the linear velocity in world units per second.
type VelocityData struct {
	math2.Vec2
}

var Velocity = donburi.NewComponentType[VelocityData]()

// AngularVelocityData is the spin in radians per second.
type AngularVelocityData struct {
	Rate float64
}

var AngularVelocity = donburi.NewComponentType[AngularVelocityData]()

// DampingData scales velocity once per tick.
type DampingData struct {
	Factor float64
}

var Damping = donburi.NewComponentType[DampingData]()

type SpeedLimitData struct {
	Max float64
}

var SpeedLimit = donburi.NewComponentType[SpeedLimitData]()

// BoundingData is the collision radius.
type BoundingData struct {
	Radius float64
}

var Bounding = donburi.NewComponentType[BoundingData]()
