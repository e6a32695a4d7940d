package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// TransformData is a world transform, or a local one for entities with a parent.
type TransformData struct {
	Translation mgl64.Vec3
	Rotation    mgl64.Quat
	Scale       mgl64.Vec3
}

var Transform = donburi.NewComponentType[TransformData]()

// NewTransform returns an unrotated, unit-scale transform at translation.
func NewTransform(translation mgl64.Vec3) TransformData {
	return TransformData{
		Translation: translation,
		Rotation:    mgl64.QuatIdent(),
		Scale:       mgl64.Vec3{1, 1, 1},
	}
}

// ExtentsData is an axis-aligned bounding box relative to the entity origin.
type ExtentsData struct {
	Center      mgl64.Vec3
	HalfExtents mgl64.Vec3
}

var Extents = donburi.NewComponentType[ExtentsData]()

// Min returns the lower corner in world space for a translation.
func (e ExtentsData) Min(at mgl64.Vec3) mgl64.Vec3 {
	return at.Add(e.Center).Sub(e.HalfExtents)
}

// Max returns the upper corner in world space for a translation.
func (e ExtentsData) Max(at mgl64.Vec3) mgl64.Vec3 {
	return at.Add(e.Center).Add(e.HalfExtents)
}
