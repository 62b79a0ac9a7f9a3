package scenes

import (
	"math/rand/v2"
	"sync"

	cfg "github.com/automoto/asteroids/config"
	"github.com/automoto/asteroids/systems"
	"github.com/automoto/asteroids/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene runs the asteroid field.
type WorldScene struct {
	ecs   *ecs.ECS
	rng   *rand.Rand
	saved *systems.SavedStats
	once  sync.Once
}

// NewWorldScene creates the scene. saved may be nil when nothing was stored.
func NewWorldScene(rng *rand.Rand, saved *systems.SavedStats) *WorldScene {
	return &WorldScene{rng: rng, saved: saved}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.UI.BackgroundColor)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)

	// Simulation, in declared order
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateShipControls))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateMovement))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateBoundary))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateBullets))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateObjects))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCollisions))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateDamage))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateAsteroidSpawner))
	ecs.AddSystem(systems.WithPauseCheck(systems.ProcessEvents))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateShipState))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))
	ecs.AddSystem(systems.UpdateStats)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawStars)
	ecs.AddRenderer(cfg.Default, systems.DrawShapes)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)
	ecs.AddRenderer(cfg.Overlay, systems.DrawPause)

	ws.ecs = ecs

	factory.CreateWorld(ws.ecs, ws.rng)
	factory.CreateSpace(ws.ecs)
	systems.SubscribeEvents(ws.ecs)
	systems.ApplySavedStats(ws.ecs, ws.saved)

	factory.CreateStars(ws.ecs, ws.rng)
	factory.CreateShip(ws.ecs)
}
