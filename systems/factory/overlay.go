package factory

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hexbit/sparkle/archetypes"
	"github.com/hexbit/sparkle/components"
	cfg "github.com/hexbit/sparkle/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateOverlay spawns the single overlay entity and allocates its
// offscreen drawing surface.
func CreateOverlay(e *ecs.ECS) *donburi.Entry {
	overlay := archetypes.Overlay.Spawn(e)
	components.Overlay.SetValue(overlay, components.OverlayData{
		Canvas: ebiten.NewImage(cfg.Effect.SurfaceWidth, cfg.Effect.SurfaceHeight),
	})
	return overlay
}
