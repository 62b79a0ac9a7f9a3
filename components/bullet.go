package components

import "github.com/yohamta/donburi"

type BulletData struct {
	Lifetime float64 // seconds left before the bullet is removed
}

var Bullet = donburi.NewComponentType[BulletData]()
