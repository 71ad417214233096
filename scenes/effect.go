package scenes

import (
	"sync"

	cfg "github.com/hexbit/sparkle/config"
	"github.com/hexbit/sparkle/systems"
	"github.com/hexbit/sparkle/systems/factory"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EffectScene drives the particle effect: each tick it tracks the
// pointer, refills the point pool, and ages out finished points.
type EffectScene struct {
	ecs  *ecs.ECS
	once sync.Once
}

func NewEffectScene() *EffectScene {
	return &EffectScene{}
}

func (es *EffectScene) Update() {
	es.once.Do(es.configure)
	es.ecs.Update()
}

func (es *EffectScene) Draw(screen *ebiten.Image) {
	// The screen must stay fully transparent outside the surface.
	screen.Clear()

	if es.ecs == nil {
		return
	}
	es.ecs.Draw(screen)
}

func (es *EffectScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdatePointer)
	ecs.AddSystem(systems.UpdateSpawn)
	ecs.AddSystem(systems.UpdateFade)

	ecs.AddRenderer(cfg.Default, systems.DrawEffect)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	es.ecs = ecs

	factory.CreateOverlay(es.ecs)
}
