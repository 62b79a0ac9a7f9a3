package systems

import (
	"fmt"

	"github.com/automoto/asteroids/components"
	cfg "github.com/automoto/asteroids/config"
	"github.com/automoto/asteroids/fonts"
	"github.com/automoto/asteroids/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// DrawDebug outlines every collision radius and prints entity counts.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := components.Settings.Get(worldEntry(ecs))
	if !settings.DebugOverlay {
		return
	}

	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Ship) && !components.Ship.Get(e).Collidable() {
			return
		}
		x, y := cfg.Arena.ToScreen(components.Transform.Get(e).Position)
		r := components.Bounding.Get(e).Radius
		vector.StrokeCircle(screen, float32(x), float32(y), float32(r), 1, cfg.UI.DebugColor, true)
	})

	contacts := components.Contacts.Get(worldEntry(ecs))
	for _, c := range contacts.Pairs {
		if !c.HasPoint {
			continue
		}
		x, y := cfg.Arena.ToScreen(c.Point)
		vector.FillCircle(screen, float32(x), float32(y), 2, cfg.Orange, false)
	}

	lines := []string{
		fmt.Sprintf("TPS %0.1f  FPS %0.1f", ebiten.ActualTPS(), ebiten.ActualFPS()),
		fmt.Sprintf("asteroids %d", countOf(ecs, tags.Asteroid)),
		fmt.Sprintf("bullets %d", countOf(ecs, tags.Bullet)),
		fmt.Sprintf("particles %d", countOf(ecs, tags.Particle)),
		fmt.Sprintf("contacts %d", len(contacts.Pairs)),
	}
	face := fonts.Small.Get()
	for i, line := range lines {
		text.Draw(screen, line, face, 6, 14+i*12, cfg.UI.DebugColor)
	}
}

func countOf(ecs *ecs.ECS, c donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(c)).Count(ecs.World)
}
