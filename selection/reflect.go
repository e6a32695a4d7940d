package selection

import (
	"github.com/automoto/rts-cursor/components"
	"github.com/automoto/rts-cursor/shared/raycast"
	"github.com/automoto/rts-cursor/tags"
	"github.com/automoto/rts-cursor/visual"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// Reflectors returns the world boxes of every entity the cursor ray may land on.
func Reflectors(w donburi.World) []raycast.Target {
	var out []raycast.Target
	tags.CursorReflector.Each(w, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Transform) || !entry.HasComponent(components.Extents) {
			return
		}
		at := visual.WorldTranslation(w, entry.Entity())
		ext := components.Extents.Get(entry)
		out = append(out, raycast.Target{Min: ext.Min(at), Max: ext.Max(at)})
	})
	return out
}

// CastCursor returns the nearest reflector hit along ray, or nil.
func CastCursor(w donburi.World, ray raycast.Ray) *mgl64.Vec3 {
	hit, ok := ray.Nearest(Reflectors(w))
	if !ok {
		return nil
	}
	return &hit
}
