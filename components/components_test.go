package components

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
)

func TestPointerEdges(t *testing.T) {
	var p PointerData

	p.Push(true, 10, 20)
	assert.Equal(t, ActionState{Pressed: true, JustPressed: true}, p.Select())
	assert.True(t, p.Moved)

	p.Push(true, 10, 20)
	assert.Equal(t, ActionState{Pressed: true}, p.Select())
	assert.False(t, p.Moved)

	p.Push(false, 12, 20)
	assert.Equal(t, ActionState{JustReleased: true}, p.Select())
	assert.Equal(t, 12, p.X)

	p.Push(false, 12, 20)
	assert.Equal(t, ActionState{}, p.Select())
}

func TestBoxNormalizesCorners(t *testing.T) {
	m := Box(mgl64.Vec3{4, 0, 0}, mgl64.Vec3{0, 1, -2})
	assert.Equal(t, ShapeBox, m.Kind)
	assert.Equal(t, mgl64.Vec3{0, 0, -2}, m.Min)
	assert.Equal(t, mgl64.Vec3{4, 1, 0}, m.Max)
}

func TestShapeKindString(t *testing.T) {
	assert.Equal(t, "cube", ShapeCube.String())
	assert.Equal(t, "box", ShapeBox.String())
	assert.Equal(t, "torus", ShapeTorus.String())
	assert.Equal(t, "unknown", ShapeKind(42).String())
}

func TestMaterialSetAlpha(t *testing.T) {
	m := MaterialData{
		BaseColor: color.NRGBA{R: 255, A: 84},
		Emissive:  color.NRGBA{G: 255, A: 84},
	}

	cases := []struct {
		alpha float64
		want  uint8
	}{
		{1, 255},
		{0.5, 128},
		{0, 0},
		{-0.25, 0},
		{1.5, 255},
	}
	for _, tc := range cases {
		m.SetAlpha(tc.alpha)
		assert.Equal(t, tc.want, m.BaseColor.A, "alpha %v", tc.alpha)
		assert.Equal(t, tc.want, m.Emissive.A, "alpha %v", tc.alpha)
	}
	assert.Equal(t, uint8(255), m.BaseColor.R, "color channels are kept")
}

func TestRemoveChild(t *testing.T) {
	a, b, c := donburi.Entity(1), donburi.Entity(2), donburi.Entity(3)
	h := HierarchyData{Children: []donburi.Entity{a, b, c}}

	h.RemoveChild(b)
	assert.Equal(t, []donburi.Entity{a, c}, h.Children)

	h.RemoveChild(b)
	assert.Equal(t, []donburi.Entity{a, c}, h.Children)
}

func TestExtentsCorners(t *testing.T) {
	e := ExtentsData{Center: mgl64.Vec3{0, 1, 0}, HalfExtents: mgl64.Vec3{0.5, 1, 2}}
	at := mgl64.Vec3{10, 0, 10}

	assert.Equal(t, mgl64.Vec3{9.5, 0, 8}, e.Min(at))
	assert.Equal(t, mgl64.Vec3{10.5, 2, 12}, e.Max(at))
}

func TestNewBlinkerStartsVisible(t *testing.T) {
	b := NewBlinker(0.01, 0.08, 2, 0)
	assert.Equal(t, 0.08, b.Elapsed)
	assert.Equal(t, -1.0, b.Direction)
	assert.Equal(t, 1.0, b.Alpha())
}
