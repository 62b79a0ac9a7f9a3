package systems

import (
	"fmt"

	"github.com/automoto/asteroids/components"
	cfg "github.com/automoto/asteroids/config"
	"github.com/automoto/asteroids/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the score panel to the right of the play field.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	stats := components.Stats.Get(worldEntry(ecs))

	x := int(cfg.Arena.FrameOffsetX + cfg.Arena.GameWidth + cfg.UI.HUDMargin)
	y := int(cfg.UI.HUDMargin) + 16
	face := fonts.HUD.Get()

	lines := []string{
		"ASTEROIDS",
		"",
		fmt.Sprintf("Destroyed  %d", stats.Destroyed),
		fmt.Sprintf("Best       %d", stats.Best),
		fmt.Sprintf("Deaths     %d", stats.Deaths),
	}
	if ship, ok := components.Ship.First(ecs.World); ok {
		lines = append(lines, fmt.Sprintf("Ship       %s", components.Ship.Get(ship).Phase))
	}

	for i, line := range lines {
		text.Draw(screen, line, face, x, y+i*22, cfg.UI.HUDTextColor)
	}
}
