package components

import (
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// OutlineData is a closed polygon relative to the body's centroid.
type OutlineData struct {
	Points []math2.Vec2
}

var Outline = donburi.NewComponentType[OutlineData]()
