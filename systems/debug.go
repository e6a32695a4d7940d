package systems

import (
	"image/color"

	"github.com/automoto/rts-cursor/components"
	cfg "github.com/automoto/rts-cursor/config"
	"github.com/automoto/rts-cursor/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines the resolv footprints of the spatial index on the ground.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowSpatialIndex {
		return
	}
	p, ok := newProjector(e, screen)
	if !ok {
		return
	}
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		// Determine color based on tags
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvQuery) {
			c = color.RGBA{255, 0, 255, 255} // Magenta
		}

		x := obj.X/space.Resolution + space.OriginX
		z := obj.Y/space.Resolution + space.OriginZ
		w := obj.W / space.Resolution
		d := obj.H / space.Resolution
		p.box(mgl64.Vec3{x, 0, z}, mgl64.Vec3{x + w, 0, z + d}, c)
	}
}
