package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hexbit/sparkle/components"
	cfg "github.com/hexbit/sparkle/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePointer stores the current pointer position on the overlay entity.
// The overlay window spans the whole monitor, so cursor coordinates are
// already top-level screen coordinates.
func UpdatePointer(ecs *ecs.ECS) {
	entry, ok := components.Overlay.First(ecs.World)
	if !ok {
		return
	}
	overlay := components.Overlay.Get(entry)

	x, y := ebiten.CursorPosition()
	overlay.PointerX = float64(x)
	overlay.PointerY = float64(y)
}

// OverlayTopLeft returns where the surface's top-left corner goes for a
// pointer at (px, py): centered on the pointer, then nudged by half the
// cursor dimensions so the effect trails slightly below-right of it.
func OverlayTopLeft(px, py float64) (left, top float64) {
	left = px - float64(cfg.Effect.SurfaceWidth)/2 + float64(cfg.Effect.CursorWidth)/2
	top = py - float64(cfg.Effect.SurfaceHeight)/2 + float64(cfg.Effect.CursorHeight)/2
	return left, top
}
