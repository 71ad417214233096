package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// OverlayData holds the effect's shared state: the last known pointer
// position (top-level screen coordinates) and the offscreen surface the
// points are drawn onto. There is exactly one overlay entity.
type OverlayData struct {
	PointerX, PointerY float64

	Canvas *ebiten.Image
}

var Overlay = donburi.NewComponentType[OverlayData]()
