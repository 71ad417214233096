package systems

import (
	"github.com/hexbit/sparkle/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFade advances every point's fade by one tick and removes the ones
// that finished fading in. Removal happens after iteration so entries are
// never skipped mid-pass.
func UpdateFade(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	components.Point.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Point.Get(e)
		p.Update()
		if p.Satisfied {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		e.Remove()
	}
}
