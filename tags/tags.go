package tags

import "github.com/yohamta/donburi"

var (
	Ship     = donburi.NewTag().SetName("Ship")
	Asteroid = donburi.NewTag().SetName("Asteroid")
	Bullet   = donburi.NewTag().SetName("Bullet")
	Particle = donburi.NewTag().SetName("Particle")
	Star     = donburi.NewTag().SetName("Star")

	// Boundary policies; an entity carries at most one.
	BoundaryWrap    = donburi.NewTag().SetName("BoundaryWrap")
	BoundaryRemoval = donburi.NewTag().SetName("BoundaryRemoval")
)

// Resolv tags for the broad phase
const (
	ResolvShip     = "ship"
	ResolvAsteroid = "asteroid"
	ResolvBullet   = "bullet"
)
