package config

import (
	"image/color"
	"math"

	"github.com/automoto/asteroids/gamemath"
	math2 "github.com/yohamta/donburi/features/math"
)

// ArenaConfig describes the window and the play field inside it.
// World coordinates are centered on the play field with +Y pointing up.
type ArenaConfig struct {
	ScreenWidth  int
	ScreenHeight int

	// Play field, drawn at FrameOffsetX on the left of the window. The HUD
	// panel takes the rest.
	GameWidth    float64
	GameHeight   float64
	FrameOffsetX float64
	Border       float64

	// Broad phase grid
	CellSize    int
	SpaceMargin float64 // room around the frame so wrapping bodies stay indexed
}

// Frame returns the logical play-field rectangle used by boundary checks.
func (a ArenaConfig) Frame() gamemath.Frame {
	return gamemath.CenteredFrame(a.GameWidth-a.Border, a.GameHeight-a.Border)
}

// SpaceSize returns the broad phase grid size in pixels.
func (a ArenaConfig) SpaceSize() (int, int) {
	return int(a.GameWidth + 2*a.SpaceMargin), int(a.GameHeight + 2*a.SpaceMargin)
}

// ToSpace converts a body's center and radius into the top-left corner of
// its box in the broad phase space, which has +Y pointing down.
func (a ArenaConfig) ToSpace(pos math2.Vec2, radius float64) (float64, float64) {
	x := pos.X + a.GameWidth/2 + a.SpaceMargin - radius
	y := a.GameHeight/2 - pos.Y + a.SpaceMargin - radius
	return x, y
}

// ToScreen converts a world position into window pixels.
func (a ArenaConfig) ToScreen(pos math2.Vec2) (float64, float64) {
	return a.FrameOffsetX + a.GameWidth/2 + pos.X, a.GameHeight/2 - pos.Y
}

// ShipConfig contains all ship-related configuration values
type ShipConfig struct {
	Size float64

	// Movement, applied as velocity change per tick while held
	DriveForce    float64
	ReverseForce  float64
	ThrusterForce float64
	SteeringRate  float64 // radians per second
	Damping       float64
	SpeedLimit    float64

	// Combat
	CannonSpeed float64
	RamDamage   int

	// State timers (seconds)
	InitialSpawnDelay float64
	DeadDuration      float64
	SpawningDuration  float64
	FlickerDuration   float64
	FlickerInterval   float64

	// Explosion on death
	DeathGrainMin int
	DeathGrainMax int
}

// BulletConfig contains cannon projectile configuration
type BulletConfig struct {
	Radius   float64
	Damage   int
	Lifetime float64 // seconds
}

// CollisionConfig contains contact resolver configuration
type CollisionConfig struct {
	// Restitution scales the exchanged normal velocities. Slightly below 1
	// so clusters of touching rocks settle instead of jittering.
	Restitution float64
}

// ParticlesConfig contains grain particle configuration
type ParticlesConfig struct {
	GrainRadius float64
	Damping     float64
	ForceMin    float64
	ForceMax    float64
	LifetimeMin float64 // seconds
	LifetimeMax float64
	SpreadMin   float64 // fraction of the spawn radius
	SpreadMax   float64

	// Burst sizes
	TerminalMin int
	TerminalMax int
	ImpactMin   int
	ImpactMax   int
	ImpactSpawn float64 // spawn radius of an impact burst

	// Share of the hitting body's velocity carried into the burst
	ImpactVelocityShare float64
}

// EffectsConfig contains hit feedback configuration
type EffectsConfig struct {
	HitFlickerDuration float64 // seconds
	HitFlickerInterval float64
}

// SpawnerConfig contains the random asteroid spawner configuration
type SpawnerConfig struct {
	Interval float64 // seconds between rolls
	Chance   int     // one in Chance rolls spawns
	// SizeTable maps a uniform roll in [0, len) to a tier
	SizeTable []TierID
}

// StarsConfig contains backdrop configuration
type StarsConfig struct {
	Count     int
	MinRadius float64
	MaxRadius float64
}

// UIConfig contains UI-related configuration values
type UIConfig struct {
	HUDFontSize   float64
	DebugFontSize float64
	HUDMargin     float64

	BackgroundColor color.RGBA
	FrameColor      color.RGBA
	ShipColor       color.RGBA
	AsteroidColor   color.RGBA
	BulletColor     color.RGBA
	GrainColor      color.RGBA
	StarColor       color.RGBA
	HUDTextColor    color.RGBA
	DebugColor      color.RGBA
	LineWidth       float32
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Title        string
	Hint         string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool // bounding circles and entity counts
}

// Global configuration instances
var Arena ArenaConfig
var Ship ShipConfig
var Bullet BulletConfig
var Collision CollisionConfig
var Particles ParticlesConfig
var Effects EffectsConfig
var Spawner SpawnerConfig
var Stars StarsConfig
var UI UIConfig
var Pause PauseConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Grey         = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	DarkGrey     = color.RGBA{R: 40, G: 40, B: 48, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	Arena = ArenaConfig{
		ScreenWidth:  1024,
		ScreenHeight: 512,
		GameWidth:    776,
		GameHeight:   512,
		FrameOffsetX: 0,
		Border:       8,
		CellSize:     32,
		SpaceMargin:  256,
	}

	Ship = ShipConfig{
		Size:          20,
		DriveForce:    3.0,
		ReverseForce:  2.5,
		ThrusterForce: 2.0,
		SteeringRate:  math.Pi,
		Damping:       0.992,
		SpeedLimit:    200,

		CannonSpeed: 400,
		RamDamage:   5,

		InitialSpawnDelay: 0.001,
		DeadDuration:      2,
		SpawningDuration:  1,
		FlickerDuration:   2,
		FlickerInterval:   0.2,

		DeathGrainMin: 150,
		DeathGrainMax: 200,
	}

	Bullet = BulletConfig{
		Radius:   1,
		Damage:   10,
		Lifetime: 1.25,
	}

	Collision = CollisionConfig{
		Restitution: 0.992,
	}

	Particles = ParticlesConfig{
		GrainRadius: 1,
		Damping:     0.992,
		ForceMin:    20,
		ForceMax:    90,
		LifetimeMin: 0.3,
		LifetimeMax: 1.5,
		SpreadMin:   0.1,
		SpreadMax:   0.9,

		TerminalMin: 50,
		TerminalMax: 100,
		ImpactMin:   3,
		ImpactMax:   8,
		ImpactSpawn: 4,

		ImpactVelocityShare: 1.0 / 3.0,
	}

	Effects = EffectsConfig{
		HitFlickerDuration: 0.4,
		HitFlickerInterval: 0.1,
	}

	Spawner = SpawnerConfig{
		Interval: 0.5,
		Chance:   6,
		SizeTable: []TierID{
			TierLarge, TierLarge, TierLarge, TierLarge,
			TierMedium, TierMedium, TierMedium,
			TierSmall, TierSmall, TierSmall,
			TierLarge,
		},
	}

	Stars = StarsConfig{
		Count:     120,
		MinRadius: 0.5,
		MaxRadius: 1.5,
	}

	UI = UIConfig{
		HUDFontSize:   16,
		DebugFontSize: 10,
		HUDMargin:     16,

		BackgroundColor: Black,
		FrameColor:      DarkGrey,
		ShipColor:       White,
		AsteroidColor:   White,
		BulletColor:     BrightOrange,
		GrainColor:      White,
		StarColor:       Grey,
		HUDTextColor:    White,
		DebugColor:      LightGreen,
		LineWidth:       1,
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
		Title:        "PAUSED",
		Hint:         "Press ESC to resume",
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Overlay: false,
	}
}
