package systems

import (
	"image/color"

	"github.com/automoto/asteroids/components"
	cfg "github.com/automoto/asteroids/config"
	"github.com/automoto/asteroids/gamemath"
	"github.com/automoto/asteroids/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// DrawStars renders the backdrop and the play-field border.
func DrawStars(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	tags.Star.Each(ecs.World, func(e *donburi.Entry) {
		x, y := cfg.Arena.ToScreen(components.Transform.Get(e).Position)
		r := components.Bounding.Get(e).Radius
		vector.FillCircle(screen, float32(x), float32(y), float32(r), cfg.UI.StarColor, true)
	})

	frame := cfg.Arena.Frame()
	x, y := cfg.Arena.ToScreen(math2.Vec2{X: frame.MinX, Y: frame.MaxY})
	vector.StrokeRect(screen,
		float32(x), float32(y),
		float32(frame.Width()), float32(frame.Height()),
		cfg.UI.LineWidth, cfg.UI.FrameColor, false)
}

// DrawShapes renders asteroids, the ship, bullets and grains.
func DrawShapes(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Asteroid.Each(ecs.World, func(e *donburi.Entry) {
		if !visible(e) {
			return
		}
		drawOutline(screen, e, true, cfg.UI.AsteroidColor)
	})

	tags.Ship.Each(ecs.World, func(e *donburi.Entry) {
		if !visible(e) {
			return
		}
		drawOutline(screen, e, false, cfg.UI.ShipColor)
	})

	tags.Bullet.Each(ecs.World, func(e *donburi.Entry) {
		x, y := cfg.Arena.ToScreen(components.Transform.Get(e).Position)
		r := components.Bounding.Get(e).Radius
		vector.FillCircle(screen, float32(x), float32(y), float32(r)+0.5, cfg.UI.BulletColor, true)
	})

	tags.Particle.Each(ecs.World, func(e *donburi.Entry) {
		x, y := cfg.Arena.ToScreen(components.Transform.Get(e).Position)
		r := float32(components.Bounding.Get(e).Radius)
		fade := components.Fade.Get(e)
		vector.FillCircle(screen, float32(x), float32(y), r*fade.Scale, dim(cfg.UI.GrainColor, fade.Brightness), true)
	})
}

// drawOutline strokes an entity's outline in world orientation. closed
// joins the last vertex back to the first.
func drawOutline(screen *ebiten.Image, e *donburi.Entry, closed bool, clr color.Color) {
	t := components.Transform.Get(e)
	points := components.Outline.Get(e).Points
	if len(points) < 2 {
		return
	}

	screenPoint := func(p math2.Vec2) (float32, float32) {
		x, y := cfg.Arena.ToScreen(gamemath.Add(t.Position, gamemath.Rotate(p, t.Rotation)))
		return float32(x), float32(y)
	}

	n := len(points)
	if !closed {
		n--
	}
	for i := 0; i < n; i++ {
		x0, y0 := screenPoint(points[i])
		x1, y1 := screenPoint(points[(i+1)%len(points)])
		vector.StrokeLine(screen, x0, y0, x1, y1, cfg.UI.LineWidth, clr, true)
	}
}

func visible(e *donburi.Entry) bool {
	return components.Visibility.Get(e).Visible
}

// dim scales the color channels by brightness in [0, 1].
func dim(c color.RGBA, brightness float32) color.RGBA {
	if brightness < 0 {
		brightness = 0
	}
	if brightness > 1 {
		brightness = 1
	}
	return color.RGBA{
		R: uint8(float32(c.R) * brightness),
		G: uint8(float32(c.G) * brightness),
		B: uint8(float32(c.B) * brightness),
		A: c.A,
	}
}
