package selection

import (
	"math"
	"slices"

	"github.com/ErikKalkoken/go-set"
	"github.com/automoto/rts-cursor/archetypes"
	"github.com/automoto/rts-cursor/components"
	"github.com/automoto/rts-cursor/shared/gamemath"
	"github.com/automoto/rts-cursor/tags"
	"github.com/automoto/rts-cursor/visual"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// indexResolution is the number of resolv units per world unit.
const indexResolution = 16.0

// SpatialIndex keeps the X/Z footprint of every pickable entity in a resolv
// space so a confirmed rectangle only tests nearby entities.
type SpatialIndex struct {
	space   *components.SpaceData
	cell    float64 // world units
	objects map[donburi.Entity]*resolv.Object

	// pickable entities the last Sync could not place
	unplaced []donburi.Entity
}

// NewSpatialIndex spawns the space entity covering bounds with square cells
// of cellSize world units.
func NewSpatialIndex(w donburi.World, bounds gamemath.Bounds2D, cellSize float64) *SpatialIndex {
	cellPx := int(math.Max(1, math.Round(cellSize*indexResolution)))
	width := int(math.Ceil(bounds.Width()*indexResolution)) + cellPx
	height := int(math.Ceil(bounds.Depth()*indexResolution)) + cellPx

	data := &components.SpaceData{
		Space:      resolv.NewSpace(width, height, cellPx, cellPx),
		Resolution: indexResolution,
		OriginX:    bounds.MinX,
		OriginZ:    bounds.MinZ,
	}
	entry := archetypes.Space.Spawn(w)
	components.Space.Set(entry, data)

	return &SpatialIndex{
		space:   data,
		cell:    float64(cellPx) / indexResolution,
		objects: make(map[donburi.Entity]*resolv.Object),
	}
}

// Sync adds, moves and drops footprints to match the pickable entities of w.
func (idx *SpatialIndex) Sync(w donburi.World) {
	var pickable []donburi.Entity
	idx.unplaced = idx.unplaced[:0]
	tags.Pickable.Each(w, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Transform) && entry.HasComponent(components.Extents) {
			pickable = append(pickable, entry.Entity())
			return
		}
		idx.unplaced = append(idx.unplaced, entry.Entity())
	})

	var seen set.Set[donburi.Entity]
	for _, e := range pickable {
		seen.Add(e)
		entry := w.Entry(e)
		x, y, wd, ht := idx.footprint(visual.WorldTranslation(w, e), *components.Extents.Get(entry))

		if obj, ok := idx.objects[e]; ok {
			obj.X, obj.Y, obj.W, obj.H = x, y, wd, ht
			obj.Update()
			continue
		}

		obj := resolv.NewObject(x, y, wd, ht, tags.ResolvPickable)
		obj.Data = e
		idx.space.Add(obj)
		idx.objects[e] = obj
		if !entry.HasComponent(components.Object) {
			entry.AddComponent(components.Object)
		}
		components.Object.Set(entry, &components.ObjectData{Object: obj})
	}

	for e, obj := range idx.objects {
		if seen.Contains(e) {
			continue
		}
		idx.space.Remove(obj)
		delete(idx.objects, e)
		if w.Valid(e) {
			if entry := w.Entry(e); entry.HasComponent(components.Object) {
				entry.RemoveComponent(components.Object)
			}
		}
	}
}

// Len returns the number of indexed footprints.
func (idx *SpatialIndex) Len() int {
	return len(idx.objects)
}

// Unplaced returns the pickable entities the last Sync left out of the index
// because they lack a transform or extents.
func (idx *SpatialIndex) Unplaced() []donburi.Entity {
	return slices.Clone(idx.unplaced)
}

// Candidates returns the indexed entities near the rectangle min..max, in
// ascending order. It may return entities outside the rectangle; callers
// still apply the exact test.
func (idx *SpatialIndex) Candidates(min, max mgl64.Vec3) []donburi.Entity {
	pad := idx.cell
	x, y := idx.toSpace(min.X()-pad, min.Z()-pad)
	x2, y2 := idx.toSpace(max.X()+pad, max.Z()+pad)

	query := resolv.NewObject(x, y, x2-x, y2-y, tags.ResolvQuery)
	idx.space.Add(query)
	defer idx.space.Remove(query)

	check := query.Check(0, 0, tags.ResolvPickable)
	if check == nil {
		return nil
	}

	var found set.Set[donburi.Entity]
	for _, o := range check.Objects {
		if e, ok := o.Data.(donburi.Entity); ok {
			found.Add(e)
		}
	}
	return slices.Sorted(found.All())
}

// footprint covers the extents and the translation itself, since the exact
// test runs on the translation.
func (idx *SpatialIndex) footprint(at mgl64.Vec3, ext components.ExtentsData) (x, y, w, h float64) {
	lo := gamemath.MinVec3(ext.Min(at), at)
	hi := gamemath.MaxVec3(ext.Max(at), at)
	x, y = idx.toSpace(lo.X(), lo.Z())
	x2, y2 := idx.toSpace(hi.X(), hi.Z())
	return x, y, math.Max(x2-x, 1), math.Max(y2-y, 1)
}

func (idx *SpatialIndex) toSpace(x, z float64) (float64, float64) {
	return (x - idx.space.OriginX) * idx.space.Resolution, (z - idx.space.OriginZ) * idx.space.Resolution
}
