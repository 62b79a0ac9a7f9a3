package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

var Health = donburi.NewComponentType[HealthData]()

// DamageData is the health an entity takes from whatever it touches.
type DamageData struct {
	Amount int
}

var Damage = donburi.NewComponentType[DamageData]()
