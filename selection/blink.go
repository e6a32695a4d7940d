package selection

import (
	"time"

	"github.com/automoto/rts-cursor/components"
	"github.com/automoto/rts-cursor/visual"
	"github.com/yohamta/donburi"
)

// UpdateBlinkers steps every blinker by dt, fades its material and destroys
// the ones that ran out of blinks.
func UpdateBlinkers(w donburi.World, host visual.Host, dt time.Duration) {
	var expired []donburi.Entity

	components.Blinker.Each(w, func(entry *donburi.Entry) {
		b := components.Blinker.Get(entry)
		stepped, done := b.Step(dt)
		if done {
			expired = append(expired, entry.Entity())
			return
		}
		if stepped && entry.HasComponent(components.Material) {
			components.Material.Get(entry).SetAlpha(b.Alpha())
		}
	})

	for _, e := range expired {
		host.Destroy(e)
	}
}
