package factory

import (
	"github.com/hexbit/sparkle/archetypes"
	"github.com/hexbit/sparkle/components"
	cfg "github.com/hexbit/sparkle/config"
	"github.com/hexbit/sparkle/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePoint spawns a point at a random position that doesn't crowd any
// live point. Position search is rejection sampling: roll a size and a
// position, throw both away if an existing point is within size*6, and
// roll again. There is no retry cap; with at most six obstacles in a
// 64x64 field the search space stays sparse, but larger constants could
// spin here.
func CreatePoint(e *ecs.ECS) *donburi.Entry {
	var live []*components.PointData
	components.Point.Each(e.World, func(entry *donburi.Entry) {
		live = append(live, components.Point.Get(entry))
	})

	for {
		size := gamemath.IntBetween(cfg.Effect.SizeMin, cfg.Effect.SizeMax)

		// Lower bound inset by the full size, upper bound by half of it.
		x := float64(gamemath.IntBetween(size, cfg.Effect.SurfaceWidth-size/2))
		y := float64(gamemath.IntBetween(size, cfg.Effect.SurfaceHeight-size/2))

		if crowded(live, x, y, float64(size*cfg.Effect.SeparationFactor)) {
			continue
		}

		step := gamemath.FloatBetween(cfg.Effect.FadeSpeedMin, cfg.Effect.FadeSpeedMax)

		entry := archetypes.Point.Spawn(e)
		components.Point.SetValue(entry, components.NewPointData(x, y, size, step))
		return entry
	}
}

// crowded reports whether any live point sits within minDist of (x, y).
func crowded(live []*components.PointData, x, y, minDist float64) bool {
	for _, p := range live {
		if p.DistanceTo(x, y) <= minDist {
			return true
		}
	}
	return false
}
