package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween/ease"
)

// InArea reports whether pos lies within [min-tolerance, max+tolerance] on
// every axis. Tolerance is per axis so height can be given more slack than
// the ground plane.
func InArea(pos, min, max, tolerance mgl64.Vec3) bool {
	for i := 0; i < 3; i++ {
		if pos[i] < min[i]-tolerance[i] || pos[i] > max[i]+tolerance[i] {
			return false
		}
	}
	return true
}

// RectanglePoints turns a drag box transform into its two ordered corners.
// The scale sign encodes the drag direction; the result does not depend on it.
func RectanglePoints(position, scale mgl64.Vec3) (mgl64.Vec3, mgl64.Vec3) {
	half := scale.Mul(0.5)
	c1 := position.Sub(half)
	c2 := position.Add(half)
	return MinVec3(c1, c2), MaxVec3(c1, c2)
}

// MinVec3 returns the elementwise minimum.
func MinVec3(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Min(a[0], b[0]), math.Min(a[1], b[1]), math.Min(a[2], b[2])}
}

// MaxVec3 returns the elementwise maximum.
func MaxVec3(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Max(a[0], b[0]), math.Max(a[1], b[1]), math.Max(a[2], b[2])}
}

// RingRadius sizes a selection ring around a footprint: the larger horizontal
// half extent plus a fixed offset.
func RingRadius(halfExtents mgl64.Vec3, offset float64) float64 {
	return math.Max(halfExtents.X(), halfExtents.Z()) + offset
}

// MapRange maps value linearly from [inMin, inMax] onto [outMin, outMax].
// A zero-width input range maps everything onto outMin.
//
// The progress through the input range goes through gween's linear curve,
// the same curve tweens use, while the offsets stay in float64 so large
// ranges keep their precision.
func MapRange(value, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	progress := (value - inMin) / (inMax - inMin)
	return outMin + (outMax-outMin)*float64(ease.Linear(float32(progress), 0, 1, 1))
}
