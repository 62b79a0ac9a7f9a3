package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlickerData blinks an entity for a fixed time after it is hit or respawns.
type FlickerData struct {
	Remaining  float64 // seconds until the flicker ends
	Interval   float64 // seconds between visibility toggles
	NextToggle float64
}

var Flicker = donburi.NewComponentType[FlickerData]()

// TimedRemovalData removes the entity when Remaining reaches zero.
type TimedRemovalData struct {
	Remaining float64
}

var TimedRemoval = donburi.NewComponentType[TimedRemovalData]()

// FadeData darkens and shrinks a particle over its lifetime.
type FadeData struct {
	Darken     *gween.Tween
	Shrink     *gween.Tween
	Brightness float32
	Scale      float32
}

var Fade = donburi.NewComponentType[FadeData]()

type VisibilityData struct {
	Visible bool
}

var Visibility = donburi.NewComponentType[VisibilityData]()
