package archetypes

import (
	"github.com/automoto/rts-cursor/components"
	"github.com/automoto/rts-cursor/tags"
	"github.com/yohamta/donburi"
)

var (
	// Unit is a pickable game entity with a footprint.
	Unit = newArchetype(
		tags.Unit,
		tags.Pickable,
		components.Transform,
		components.Extents,
		components.Mesh,
		components.Material,
		components.Hierarchy,
		components.Name,
	)
	// Ground is the surface the cursor ray lands on.
	Ground = newArchetype(
		tags.CursorReflector,
		components.Transform,
		components.Extents,
		components.Mesh,
		components.Material,
	)
	// Visual is anything created on behalf of the selection cursor.
	Visual = newArchetype(
		tags.Visual,
		components.Transform,
		components.Mesh,
		components.Material,
		components.Hierarchy,
		components.Name,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Pointer = newArchetype(
		components.Pointer,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype components plus any extras.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
