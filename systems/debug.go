package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	cfg "github.com/hexbit/sparkle/config"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug overlays the actual tick rate and live point count.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowStats {
		return
	}

	msg := fmt.Sprintf("TPS: %0.0f  points: %d", ebiten.ActualTPS(), CountPoints(ecs))
	ebitenutil.DebugPrint(screen, msg)
}
