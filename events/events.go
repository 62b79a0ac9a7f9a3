// Package events declares the one-shot notifications systems exchange
// within a frame. Each queue is drained once per frame by ProcessEvents.
package events

import (
	"github.com/yohamta/donburi"
	dbevents "github.com/yohamta/donburi/features/events"
	math2 "github.com/yohamta/donburi/features/math"
)

// AsteroidSpawnEvent asks for Amount new asteroids around Pos. Radius is the
// target radius of each child; ParentRadius is zero for fresh spawns.
type AsteroidSpawnEvent struct {
	Pos          math2.Vec2
	Radius       float64
	Amount       int
	ParentRadius float64
}

// AsteroidSplitEvent asks for the parent outline to be cut into Amount
// pieces that inherit its geometry.
type AsteroidSplitEvent struct {
	ParentPoints []math2.Vec2
	Pos          math2.Vec2
	Radius       float64
	Amount       int
}

// DestructionEvent reports that Entity's health dropped below zero.
type DestructionEvent struct {
	Entity *donburi.Entry
}

type PlayerDeathEvent struct {
	Pos            math2.Vec2
	Radius         float64
	ImpactVelocity math2.Vec2
}

// HitEvent reports a hit that Entity survived.
type HitEvent struct {
	Entity *donburi.Entry
	Point  math2.Vec2
}

// GrainParticleSpawnEvent asks for a burst of grain particles.
type GrainParticleSpawnEvent struct {
	Pos            math2.Vec2
	SpawnRadius    float64
	MinParticles   int
	MaxParticles   int
	ImpactVelocity math2.Vec2
}

var (
	AsteroidSpawn      = dbevents.NewEventType[AsteroidSpawnEvent]()
	AsteroidSplit      = dbevents.NewEventType[AsteroidSplitEvent]()
	Destruction        = dbevents.NewEventType[DestructionEvent]()
	PlayerDeath        = dbevents.NewEventType[PlayerDeathEvent]()
	Hit                = dbevents.NewEventType[HitEvent]()
	GrainParticleSpawn = dbevents.NewEventType[GrainParticleSpawnEvent]()
)

// Process delivers every queued event in a fixed type order. Destruction
// and death consumers publish spawn requests, so those queues go last.
func Process(w donburi.World) {
	Destruction.ProcessEvents(w)
	PlayerDeath.ProcessEvents(w)
	Hit.ProcessEvents(w)
	AsteroidSplit.ProcessEvents(w)
	AsteroidSpawn.ProcessEvents(w)
	GrainParticleSpawn.ProcessEvents(w)
}
