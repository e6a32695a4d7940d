package systems

import (
	"image/color"
	"math"

	"github.com/automoto/rts-cursor/components"
	cfg "github.com/automoto/rts-cursor/config"
	"github.com/automoto/rts-cursor/shared/raycast"
	"github.com/automoto/rts-cursor/tags"
	"github.com/automoto/rts-cursor/visual"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const lineWidth = 1

// projector draws world-space lines onto the screen.
type projector struct {
	cam    raycast.Camera
	screen *ebiten.Image
	w, h   int
}

func newProjector(e *ecs.ECS, screen *ebiten.Image) (projector, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return projector{}, false
	}
	return projector{
		cam:    components.Camera.Get(cameraEntry).Camera,
		screen: screen,
		w:      screen.Bounds().Dx(),
		h:      screen.Bounds().Dy(),
	}, true
}

func (p projector) line(a, b mgl64.Vec3, clr color.Color) {
	x0, y0, ok0 := p.cam.Project(a, p.w, p.h)
	x1, y1, ok1 := p.cam.Project(b, p.w, p.h)
	if !ok0 || !ok1 {
		return
	}
	vector.StrokeLine(p.screen, float32(x0), float32(y0), float32(x1), float32(y1), lineWidth, clr, true)
}

func (p projector) box(min, max mgl64.Vec3, clr color.Color) {
	corner := func(i int) mgl64.Vec3 {
		v := min
		if i&1 != 0 {
			v[0] = max[0]
		}
		if i&2 != 0 {
			v[1] = max[1]
		}
		if i&4 != 0 {
			v[2] = max[2]
		}
		return v
	}
	// Corners differing in exactly one bit share an edge.
	for i := 0; i < 8; i++ {
		for bit := 1; bit < 8; bit <<= 1 {
			if i&bit == 0 {
				p.line(corner(i), corner(i|bit), clr)
			}
		}
	}
}

func (p projector) ring(center mgl64.Vec3, radius float64, segments int, clr color.Color) {
	if segments < 3 {
		segments = 3
	}
	point := func(i int) mgl64.Vec3 {
		a := 2 * math.Pi * float64(i) / float64(segments)
		return center.Add(mgl64.Vec3{radius * math.Cos(a), 0, radius * math.Sin(a)})
	}
	for i := 0; i < segments; i++ {
		p.line(point(i), point(i+1), clr)
	}
}

// DrawGround renders the reflector surfaces as a one-unit grid.
func DrawGround(e *ecs.ECS, screen *ebiten.Image) {
	p, ok := newProjector(e, screen)
	if !ok {
		return
	}

	tags.CursorReflector.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Extents) {
			return
		}
		at := visual.WorldTranslation(e.World, entry.Entity())
		ext := components.Extents.Get(entry)
		min, max := ext.Min(at), ext.Max(at)

		for x := math.Ceil(min.X()); x <= max.X(); x++ {
			p.line(mgl64.Vec3{x, min.Y(), min.Z()}, mgl64.Vec3{x, min.Y(), max.Z()}, cfg.UI.GridColor)
		}
		for z := math.Ceil(min.Z()); z <= max.Z(); z++ {
			p.line(mgl64.Vec3{min.X(), min.Y(), z}, mgl64.Vec3{max.X(), min.Y(), z}, cfg.UI.GridColor)
		}
	})
}

// DrawMeshes renders units and selection visuals as wireframes.
func DrawMeshes(e *ecs.ECS, screen *ebiten.Image) {
	p, ok := newProjector(e, screen)
	if !ok {
		return
	}

	components.Mesh.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(tags.CursorReflector) {
			return
		}

		var clr color.Color = cfg.UI.UnitColor
		if entry.HasComponent(components.Material) {
			clr = components.Material.Get(entry).BaseColor
		}
		if entry.HasComponent(tags.Selected) {
			clr = cfg.UI.SelectedColor
		}

		at := visual.WorldTranslation(e.World, entry.Entity())
		mesh := components.Mesh.Get(entry)
		switch mesh.Kind {
		case components.ShapeCube:
			scale := mgl64.Vec3{1, 1, 1}
			if entry.HasComponent(components.Transform) {
				scale = components.Transform.Get(entry).Scale
			}
			half := absVec(scale).Mul(mesh.Size / 2)
			p.box(at.Sub(half), at.Add(half), clr)
		case components.ShapeBox:
			p.box(at.Add(mesh.Min), at.Add(mesh.Max), clr)
		case components.ShapeTorus:
			p.ring(at, mesh.Radius, cfg.UI.TorusSegments, clr)
		}
	})
}

func absVec(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Abs(v[0]), math.Abs(v[1]), math.Abs(v[2])}
}
