package selection

import (
	"github.com/automoto/rts-cursor/components"
	"github.com/automoto/rts-cursor/shared/gamemath"
	"github.com/automoto/rts-cursor/tags"
	"github.com/automoto/rts-cursor/visual"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// ResolveSelection consumes a confirmed rectangle: it shows the confirmation
// outline and selects every pickable entity inside the rectangle. The
// confirmation flag is cleared whether or not anything matched.
func (c *Cursor) ResolveSelection(w donburi.World) {
	defer func() { c.state.Selection.JustSelected = false }()
	if !c.state.Selection.JustSelected {
		return
	}

	min, max := c.state.Corner1, c.state.Corner2
	c.createOutline(min, max)

	query := c.query
	if query == nil {
		query = WorldQuery{World: w}
	}

	for _, e := range c.candidates(w, min, max) {
		if c.state.Selection.Selected.Contains(e) {
			continue
		}

		tr, ext, err := query.Lookup(e)
		if err != nil {
			c.log.Warn().Err(err).Uint64("entity", uint64(e)).Msg("skipping selection candidate")
			continue
		}

		tolerance := mgl64.Vec3{0, c.cfg.YInclusionLimit + ext.HalfExtents.Y(), 0}
		if !gamemath.InArea(tr.Translation, min, max, tolerance) {
			continue
		}
		c.selectEntity(w, e, ext)
	}

	c.log.Debug().
		Floats64("min", min[:]).
		Floats64("max", max[:]).
		Int("selected", c.state.Selection.Selected.Size()).
		Msg("selection confirmed")
}

func (c *Cursor) candidates(w donburi.World, min, max mgl64.Vec3) []donburi.Entity {
	// The index is built from world components, so a custom query bypasses it.
	if c.index != nil && c.query == nil {
		c.index.Sync(w)
		// Unplaced entities still go through the lookup so their failure is reported.
		return append(c.index.Candidates(min, max), c.index.Unplaced()...)
	}

	var out []donburi.Entity
	tags.Pickable.Each(w, func(entry *donburi.Entry) {
		out = append(out, entry.Entity())
	})
	return out
}

func (c *Cursor) selectEntity(w donburi.World, e donburi.Entity, ext components.ExtentsData) {
	c.state.Selection.Selected.Add(e)
	if w.Valid(e) {
		entry := w.Entry(e)
		if !entry.HasComponent(tags.Selected) {
			entry.AddComponent(tags.Selected)
		}
	}

	color := c.cfg.Aesthetics.SelectedAreaBoxColor
	ring := c.host.Create(visual.Spec{
		Name: highlightName,
		Mesh: components.Torus(
			gamemath.RingRadius(ext.HalfExtents, c.cfg.TorusOffset),
			c.cfg.Aesthetics.SelectedLineThickness,
		),
		Material: components.MaterialData{
			BaseColor:      color,
			Emissive:       color,
			CastsShadow:    true,
			ReceivesShadow: true,
		},
		Transform: components.NewTransform(mgl64.Vec3{0, -ext.HalfExtents.Y(), 0}),
		Tags:      []donburi.IComponentType{tags.SelectionHighlighter},
	})
	c.host.AttachChild(e, ring)
}

func (c *Cursor) createOutline(min, max mgl64.Vec3) {
	color := c.cfg.Aesthetics.BoundingBoxColor
	material := components.MaterialData{
		BaseColor: color,
		Emissive:  color,
		Blend:     true,
	}

	var root donburi.Entity
	for i, seg := range OutlineSegments(min, max, c.cfg.Aesthetics.LineThickness) {
		blink := components.NewBlinker(c.cfg.Blink.Speed, c.cfg.Blink.Duration, c.cfg.Blink.Count, c.cfg.Blink.Tick)
		e := c.host.Create(visual.Spec{
			Name:      boxName,
			Mesh:      seg,
			Material:  material,
			Transform: components.NewTransform(mgl64.Vec3{}),
			Tags:      []donburi.IComponentType{tags.ConfirmOutline},
			Blink:     &blink,
		})
		if i == 0 {
			root = e
			continue
		}
		c.host.AttachChild(root, e)
	}
}

// OutlineSegments returns the four boxes framing the rectangle min..max on
// the ground, each t thick: north, south, east, west. North and south span
// the corners; east and west fill the gap between them.
func OutlineSegments(min, max mgl64.Vec3, t float64) []components.MeshData {
	bottom, top := min.Y(), max.Y()+t
	return []components.MeshData{
		components.Box(
			mgl64.Vec3{min.X() - t, bottom, max.Z() - t},
			mgl64.Vec3{max.X() + t, top, max.Z() + t},
		),
		components.Box(
			mgl64.Vec3{min.X() - t, bottom, min.Z() - t},
			mgl64.Vec3{max.X() + t, top, min.Z() + t},
		),
		components.Box(
			mgl64.Vec3{max.X() - t, bottom, min.Z() + t},
			mgl64.Vec3{max.X() + t, top, max.Z() - t},
		),
		components.Box(
			mgl64.Vec3{min.X() - t, bottom, min.Z() + t},
			mgl64.Vec3{min.X() + t, top, max.Z() - t},
		),
	}
}
