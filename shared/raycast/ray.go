package raycast

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ray is a half line with a normalized direction.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IntersectPlaneY intersects the ray with the horizontal plane at height y.
func (r Ray) IntersectPlaneY(y float64) (mgl64.Vec3, bool) {
	if math.Abs(r.Direction.Y()) < 1e-9 {
		return mgl64.Vec3{}, false
	}
	t := (y - r.Origin.Y()) / r.Direction.Y()
	if t < 0 {
		return mgl64.Vec3{}, false
	}
	return r.At(t), true
}

// IntersectAABB returns the distance to the box along the ray. A ray starting
// inside the box reports its exit distance. Flat boxes are allowed.
func (r Ray) IntersectAABB(min, max mgl64.Vec3) (float64, bool) {
	tmin := math.Inf(-1)
	tmax := math.Inf(1)

	for i := 0; i < 3; i++ {
		if r.Direction[i] == 0 {
			if r.Origin[i] < min[i] || r.Origin[i] > max[i] {
				return 0, false
			}
			continue
		}
		t1 := (min[i] - r.Origin[i]) / r.Direction[i]
		t2 := (max[i] - r.Origin[i]) / r.Direction[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// Target is anything a ray can hit.
type Target struct {
	Min, Max mgl64.Vec3
}

// Nearest returns the closest hit point among targets.
func (r Ray) Nearest(targets []Target) (mgl64.Vec3, bool) {
	best := math.Inf(1)
	found := false
	for _, tg := range targets {
		if t, ok := r.IntersectAABB(tg.Min, tg.Max); ok && t < best {
			best = t
			found = true
		}
	}
	if !found {
		return mgl64.Vec3{}, false
	}
	return r.At(best), true
}
