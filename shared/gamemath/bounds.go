package gamemath

import "github.com/go-gl/mathgl/mgl64"

// Sentinel is the "no location" marker used for press anchors and rectangle
// corners that have not been set yet.
var Sentinel = mgl64.Vec3{-1, -1, -1}

// Bounds2D is the flat play area on the X/Z plane. Y is unconstrained.
type Bounds2D struct {
	MinX float64 `mapstructure:"minX" json:"minX"`
	MinZ float64 `mapstructure:"minZ" json:"minZ"`
	MaxX float64 `mapstructure:"maxX" json:"maxX"`
	MaxZ float64 `mapstructure:"maxZ" json:"maxZ"`
}

// Ordered reports whether both axes satisfy min <= max.
func (b Bounds2D) Ordered() bool {
	return b.MinX <= b.MaxX && b.MinZ <= b.MaxZ
}

// Fits reports whether padding leaves a non-empty interval on both axes.
func (b Bounds2D) Fits(padding float64) bool {
	return b.MinX+padding <= b.MaxX-padding && b.MinZ+padding <= b.MaxZ-padding
}

// Width returns the X extent.
func (b Bounds2D) Width() float64 {
	return b.MaxX - b.MinX
}

// Depth returns the Z extent.
func (b Bounds2D) Depth() float64 {
	return b.MaxZ - b.MinZ
}

// Center returns the middle of the area at height y.
func (b Bounds2D) Center(y float64) mgl64.Vec3 {
	return mgl64.Vec3{(b.MinX + b.MaxX) / 2, y, (b.MinZ + b.MaxZ) / 2}
}

// KeepInBounds clamps pos onto the play area shrunk by padding on each side.
// Y is left untouched. The lower edge is applied before the upper edge, so an
// interval emptied by padding collapses onto max-padding.
func KeepInBounds(bounds Bounds2D, pos mgl64.Vec3, padding float64) mgl64.Vec3 {
	if pos[0] < bounds.MinX+padding {
		pos[0] = bounds.MinX + padding
	}
	if pos[0] > bounds.MaxX-padding {
		pos[0] = bounds.MaxX - padding
	}
	if pos[2] < bounds.MinZ+padding {
		pos[2] = bounds.MinZ + padding
	}
	if pos[2] > bounds.MaxZ-padding {
		pos[2] = bounds.MaxZ - padding
	}
	return pos
}

// ClampFloat clamps v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
