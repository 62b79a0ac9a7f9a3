package components

import "github.com/yohamta/donburi"

// ShipPhase is the player ship life cycle: Spawning -> Alive -> Dead -> Spawning.
type ShipPhase int

const (
	ShipSpawning ShipPhase = iota
	ShipAlive
	ShipDead
)

func (p ShipPhase) String() string {
	switch p {
	case ShipSpawning:
		return "spawning"
	case ShipAlive:
		return "alive"
	case ShipDead:
		return "dead"
	}
	return "unknown"
}

type ShipData struct {
	Phase     ShipPhase
	Countdown float64 // seconds left in the current phase; unused while alive
}

// Collidable reports whether the ship takes part in contacts.
func (s *ShipData) Collidable() bool { return s.Phase == ShipAlive }

// CanFire reports whether the cannon may be used.
func (s *ShipData) CanFire() bool { return s.Phase == ShipAlive }

// CanMove reports whether controls and drive apply.
func (s *ShipData) CanMove() bool { return s.Phase == ShipAlive }

var Ship = donburi.NewComponentType[ShipData]()

// DriveData is forward/backward propulsion. Throttle is set by the controls:
// 1 forward, -1 reverse, 0 idle.
type DriveData struct {
	Force        float64
	ReverseForce float64
	Throttle     float64
}

var Drive = donburi.NewComponentType[DriveData]()

// ThrustersData pushes the ship sideways. Direction is -1 left, 1 right.
type ThrustersData struct {
	Force     float64
	Direction float64
}

var Thrusters = donburi.NewComponentType[ThrustersData]()

// SteeringData turns the ship. Turn is 1 left (counter-clockwise), -1 right.
type SteeringData struct {
	Rate float64
	Turn float64
}

var Steering = donburi.NewComponentType[SteeringData]()

type CannonData struct {
	Speed float64
}

var Cannon = donburi.NewComponentType[CannonData]()
