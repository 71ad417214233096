package systems

import (
	cfg "github.com/hexbit/sparkle/config"
	"github.com/hexbit/sparkle/systems/factory"
	"github.com/hexbit/sparkle/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawn tops the point pool back up to the configured population.
func UpdateSpawn(ecs *ecs.ECS) {
	for count := CountPoints(ecs); count < cfg.Effect.MaxAlive; count++ {
		factory.CreatePoint(ecs)
	}
}

// CountPoints returns the number of live points.
func CountPoints(ecs *ecs.ECS) int {
	count := 0
	tags.Point.Each(ecs.World, func(entry *donburi.Entry) {
		count++
	})
	return count
}
