package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hexbit/sparkle/components"
	cfg "github.com/hexbit/sparkle/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawEffect repaints the overlay surface and blits it at the pointer.
// Each live point is a square centered on its position, tinted with the
// effect color at the point's current fade value.
func DrawEffect(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Overlay.First(ecs.World)
	if !ok {
		return
	}
	overlay := components.Overlay.Get(entry)
	if overlay.Canvas == nil {
		return
	}

	overlay.Canvas.Clear()

	components.Point.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Point.Get(e)

		c := cfg.Effect.Color
		c.A = fadeAlpha(p.Fade)

		half := float64(p.Size) / 2
		vector.DrawFilledRect(overlay.Canvas,
			float32(p.X-half), float32(p.Y-half),
			float32(p.Size), float32(p.Size),
			c, false)
	})

	left, top := OverlayTopLeft(overlay.PointerX, overlay.PointerY)

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(left, top)
	screen.DrawImage(overlay.Canvas, drawOp)
}

// fadeAlpha maps a fade value onto an alpha byte.
func fadeAlpha(fade float64) uint8 {
	if fade >= components.FadeLimit {
		return 255
	}
	if fade <= 0 {
		return 0
	}
	return uint8(fade)
}
