package visual

import (
	"testing"

	"github.com/automoto/rts-cursor/archetypes"
	"github.com/automoto/rts-cursor/components"
	"github.com/automoto/rts-cursor/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func newBox(h *WorldHost, name string, at mgl64.Vec3) donburi.Entity {
	return h.Create(Spec{
		Name:      name,
		Mesh:      components.Cube(1),
		Transform: components.NewTransform(at),
	})
}

func TestCreate(t *testing.T) {
	w := donburi.NewWorld()
	h := NewWorldHost(w)

	e := h.Create(Spec{
		Name:      "SelectionBox",
		Mesh:      components.Box(mgl64.Vec3{1, 1, 1}, mgl64.Vec3{0, 0, 0}),
		Transform: components.NewTransform(mgl64.Vec3{1, 2, 3}),
		Tags:      []donburi.IComponentType{tags.DragBox},
	})

	require.True(t, w.Valid(e))
	entry := w.Entry(e)
	assert.True(t, entry.HasComponent(tags.Visual))
	assert.True(t, entry.HasComponent(tags.DragBox))
	assert.Equal(t, "SelectionBox", components.Name.Get(entry).Value)
	assert.Equal(t, mgl64.Vec3{0, 0, 0}, components.Mesh.Get(entry).Min)
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, components.Transform.Get(entry).Translation)
}

func TestDestroyIsRecursive(t *testing.T) {
	w := donburi.NewWorld()
	h := NewWorldHost(w)

	root := newBox(h, "root", mgl64.Vec3{})
	child := newBox(h, "child", mgl64.Vec3{})
	grandchild := newBox(h, "grandchild", mgl64.Vec3{})
	other := newBox(h, "other", mgl64.Vec3{})
	h.AttachChild(root, child)
	h.AttachChild(child, grandchild)

	h.Destroy(root)

	assert.False(t, w.Valid(root))
	assert.False(t, w.Valid(child))
	assert.False(t, w.Valid(grandchild))
	assert.True(t, w.Valid(other))

	assert.NotPanics(t, func() { h.Destroy(root) })
}

func TestDestroyChildUnlinksFromParent(t *testing.T) {
	w := donburi.NewWorld()
	h := NewWorldHost(w)

	root := newBox(h, "root", mgl64.Vec3{})
	a := newBox(h, "a", mgl64.Vec3{})
	b := newBox(h, "b", mgl64.Vec3{})
	h.AttachChild(root, a)
	h.AttachChild(root, b)

	h.Destroy(a)

	hier := components.Hierarchy.Get(w.Entry(root))
	assert.Equal(t, []donburi.Entity{b}, hier.Children)
}

func TestAttachChildToPlainEntity(t *testing.T) {
	w := donburi.NewWorld()
	h := NewWorldHost(w)

	ground := archetypes.Ground.Spawn(w)
	components.Transform.SetValue(ground, components.NewTransform(mgl64.Vec3{5, 0, 5}))

	ring := newBox(h, "ring", mgl64.Vec3{0, -1, 0})
	h.AttachChild(ground.Entity(), ring)

	entry := w.Entry(ground.Entity())
	require.True(t, entry.HasComponent(components.Hierarchy))
	assert.Equal(t, []donburi.Entity{ring}, components.Hierarchy.Get(entry).Children)
	assert.Equal(t, mgl64.Vec3{5, -1, 5}, WorldTranslation(w, ring))

	h.Destroy(ground.Entity())
	assert.False(t, w.Valid(ring))
}

func TestAttachChildMovesBetweenParents(t *testing.T) {
	w := donburi.NewWorld()
	h := NewWorldHost(w)

	p1 := newBox(h, "p1", mgl64.Vec3{})
	p2 := newBox(h, "p2", mgl64.Vec3{})
	c := newBox(h, "c", mgl64.Vec3{})

	h.AttachChild(p1, c)
	h.AttachChild(p2, c)
	h.AttachChild(c, c)

	assert.Empty(t, components.Hierarchy.Get(w.Entry(p1)).Children)
	assert.Equal(t, []donburi.Entity{c}, components.Hierarchy.Get(w.Entry(p2)).Children)
	assert.Equal(t, p2, components.Hierarchy.Get(w.Entry(c)).Parent)
}
