// Package visual creates, parents and destroys the transient objects shown by
// the selection cursor.
package visual

import (
	"github.com/automoto/rts-cursor/archetypes"
	"github.com/automoto/rts-cursor/components"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// Spec describes a visual to create.
type Spec struct {
	Name      string
	Mesh      components.MeshData
	Material  components.MaterialData
	Transform components.TransformData
	Tags      []donburi.IComponentType // extra tags
	Blink     *components.BlinkerData
}

// Host is the render capability the cursor depends on.
type Host interface {
	Create(spec Spec) donburi.Entity
	Destroy(e donburi.Entity)
	AttachChild(parent, child donburi.Entity)
}

// WorldHost keeps visuals as entities of a donburi world.
type WorldHost struct {
	world donburi.World
}

func NewWorldHost(w donburi.World) *WorldHost {
	return &WorldHost{world: w}
}

func (h *WorldHost) Create(spec Spec) donburi.Entity {
	extra := spec.Tags
	if spec.Blink != nil {
		extra = append(append([]donburi.IComponentType(nil), extra...), components.Blinker)
	}
	entry := archetypes.Visual.Spawn(h.world, extra...)
	components.Mesh.SetValue(entry, spec.Mesh)
	components.Material.SetValue(entry, spec.Material)
	components.Transform.SetValue(entry, spec.Transform)
	components.Name.SetValue(entry, components.NameData{Value: spec.Name})
	if spec.Blink != nil {
		components.Blinker.SetValue(entry, *spec.Blink)
	}
	return entry.Entity()
}

// AttachChild parents child under parent. The parent does not need to be a
// visual; it gains a hierarchy when it has none. A child that already has a
// parent is moved.
func (h *WorldHost) AttachChild(parent, child donburi.Entity) {
	if parent == child || !h.world.Valid(parent) || !h.world.Valid(child) {
		return
	}

	ce := h.world.Entry(child)
	ensureHierarchy(ce)
	ch := components.Hierarchy.Get(ce)
	if ch.HasParent {
		h.unlink(ch.Parent, child)
	}
	ch.Parent = parent
	ch.HasParent = true

	pe := h.world.Entry(parent)
	ensureHierarchy(pe)
	ph := components.Hierarchy.Get(pe)
	ph.Children = append(ph.Children, child)
}

// Destroy removes e and, before it, every descendant. Destroying an entity
// that is already gone does nothing.
func (h *WorldHost) Destroy(e donburi.Entity) {
	if !h.world.Valid(e) {
		return
	}

	entry := h.world.Entry(e)
	if entry.HasComponent(components.Hierarchy) {
		hier := components.Hierarchy.Get(entry)
		children := append([]donburi.Entity(nil), hier.Children...)
		for _, c := range children {
			h.Destroy(c)
		}
		if hier.HasParent {
			h.unlink(hier.Parent, e)
		}
	}

	h.world.Remove(e)
}

func (h *WorldHost) unlink(parent, child donburi.Entity) {
	if !h.world.Valid(parent) {
		return
	}
	pe := h.world.Entry(parent)
	if !pe.HasComponent(components.Hierarchy) {
		return
	}
	components.Hierarchy.Get(pe).RemoveChild(child)
}

func ensureHierarchy(entry *donburi.Entry) {
	if !entry.HasComponent(components.Hierarchy) {
		entry.AddComponent(components.Hierarchy)
	}
}

// WorldTranslation adds up the translations of e and its ancestors.
func WorldTranslation(w donburi.World, e donburi.Entity) mgl64.Vec3 {
	var t mgl64.Vec3
	for depth := 0; depth < 64 && w.Valid(e); depth++ {
		entry := w.Entry(e)
		if entry.HasComponent(components.Transform) {
			t = t.Add(components.Transform.Get(entry).Translation)
		}
		if !entry.HasComponent(components.Hierarchy) {
			break
		}
		hier := components.Hierarchy.Get(entry)
		if !hier.HasParent {
			break
		}
		e = hier.Parent
	}
	return t
}
