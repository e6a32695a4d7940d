package components

import (
	"image/color"

	"github.com/automoto/rts-cursor/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type ShapeKind int

const (
	ShapeCube ShapeKind = iota
	ShapeBox
	ShapeTorus
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeCube:
		return "cube"
	case ShapeBox:
		return "box"
	case ShapeTorus:
		return "torus"
	}
	return "unknown"
}

// MeshData describes the shape of a visual in its local space. Only the
// fields of its Kind are meaningful.
type MeshData struct {
	Kind ShapeKind

	Size float64 // cube edge

	Min, Max mgl64.Vec3 // box corners

	Radius     float64 // torus: distance from center to tube center
	RingRadius float64 // torus: tube radius
}

var Mesh = donburi.NewComponentType[MeshData]()

// Cube is a cube of the given edge length centered on the origin.
func Cube(size float64) MeshData {
	return MeshData{Kind: ShapeCube, Size: size}
}

// Box is an axis-aligned box with explicit corners. Corners are reordered so
// that Min <= Max on every axis.
func Box(a, b mgl64.Vec3) MeshData {
	return MeshData{Kind: ShapeBox, Min: gamemath.MinVec3(a, b), Max: gamemath.MaxVec3(a, b)}
}

// Torus is a ring lying flat on the X/Z plane.
func Torus(radius, ringRadius float64) MeshData {
	return MeshData{Kind: ShapeTorus, Radius: radius, RingRadius: ringRadius}
}

// MaterialData is the render state of a visual.
type MaterialData struct {
	BaseColor      color.NRGBA
	Emissive       color.NRGBA
	Blend          bool
	Unlit          bool
	CastsShadow    bool
	ReceivesShadow bool
}

var Material = donburi.NewComponentType[MaterialData]()

// SetAlpha sets the alpha of both color channels; alpha is clamped to [0,1].
func (m *MaterialData) SetAlpha(alpha float64) {
	a := uint8(gamemath.ClampFloat(alpha, 0, 1)*255 + 0.5)
	m.BaseColor.A = a
	m.Emissive.A = a
}

// Alpha returns the base color alpha in [0,1].
func (m *MaterialData) Alpha() float64 {
	return float64(m.BaseColor.A) / 255
}

// NameData labels an entity for debug listings.
type NameData struct {
	Value string
}

var Name = donburi.NewComponentType[NameData]()
