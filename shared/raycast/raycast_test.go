package raycast

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCamera() Camera {
	return Camera{
		Eye:    mgl64.Vec3{0, 10, 10},
		Target: mgl64.Vec3{0, 0, 0},
		FovY:   45,
		Near:   0.1,
		Far:    100,
	}
}

func TestScreenRayThroughCenterHitsTarget(t *testing.T) {
	cam := testCamera()
	ray, err := cam.ScreenRay(400, 300, 800, 600)
	require.NoError(t, err)

	hit, ok := ray.IntersectPlaneY(0)
	require.True(t, ok)
	assert.InDelta(t, 0, hit.X(), 1e-6)
	assert.InDelta(t, 0, hit.Y(), 1e-6)
	assert.InDelta(t, 0, hit.Z(), 1e-6)
	assert.InDelta(t, 1, ray.Direction.Len(), 1e-9)
}

func TestScreenRayLeftOfCenterHitsNegativeX(t *testing.T) {
	cam := testCamera()
	ray, err := cam.ScreenRay(100, 300, 800, 600)
	require.NoError(t, err)

	hit, ok := ray.IntersectPlaneY(0)
	require.True(t, ok)
	assert.Less(t, hit.X(), 0.0)
}

func TestProjectInvertsScreenRay(t *testing.T) {
	cam := testCamera()
	p := mgl64.Vec3{2, 0, -1}

	x, y, ok := cam.Project(p, 800, 600)
	require.True(t, ok)

	ray, err := cam.ScreenRay(x, y, 800, 600)
	require.NoError(t, err)
	hit, ok := ray.IntersectPlaneY(0)
	require.True(t, ok)
	assert.True(t, hit.ApproxEqualThreshold(p, 1e-6), "hit %v", hit)
}

func TestProjectCenter(t *testing.T) {
	x, y, ok := testCamera().Project(mgl64.Vec3{}, 800, 600)
	assert.True(t, ok)
	assert.InDelta(t, 400, x, 1e-6)
	assert.InDelta(t, 300, y, 1e-6)
}

func TestIntersectPlaneY(t *testing.T) {
	t.Run("parallel", func(t *testing.T) {
		_, ok := Ray{Origin: mgl64.Vec3{0, 1, 0}, Direction: mgl64.Vec3{1, 0, 0}}.IntersectPlaneY(0)
		assert.False(t, ok)
	})
	t.Run("behind", func(t *testing.T) {
		_, ok := Ray{Origin: mgl64.Vec3{0, 1, 0}, Direction: mgl64.Vec3{0, 1, 0}}.IntersectPlaneY(0)
		assert.False(t, ok)
	})
	t.Run("below", func(t *testing.T) {
		p, ok := Ray{Origin: mgl64.Vec3{3, 4, 5}, Direction: mgl64.Vec3{0, -1, 0}}.IntersectPlaneY(1)
		assert.True(t, ok)
		assert.Equal(t, mgl64.Vec3{3, 1, 5}, p)
	})
}

func TestIntersectAABB(t *testing.T) {
	down := Ray{Origin: mgl64.Vec3{0, 5, 0}, Direction: mgl64.Vec3{0, -1, 0}}

	t.Run("flat ground", func(t *testing.T) {
		d, ok := down.IntersectAABB(mgl64.Vec3{-1, 0, -1}, mgl64.Vec3{1, 0, 1})
		assert.True(t, ok)
		assert.Equal(t, 5.0, d)
	})
	t.Run("miss beside", func(t *testing.T) {
		_, ok := down.IntersectAABB(mgl64.Vec3{2, 0, 2}, mgl64.Vec3{3, 1, 3})
		assert.False(t, ok)
	})
	t.Run("behind origin", func(t *testing.T) {
		_, ok := down.IntersectAABB(mgl64.Vec3{-1, 6, -1}, mgl64.Vec3{1, 7, 1})
		assert.False(t, ok)
	})
	t.Run("inside reports exit", func(t *testing.T) {
		d, ok := down.IntersectAABB(mgl64.Vec3{-1, 4, -1}, mgl64.Vec3{1, 6, 1})
		assert.True(t, ok)
		assert.Equal(t, 1.0, d)
	})
}

func TestNearest(t *testing.T) {
	down := Ray{Origin: mgl64.Vec3{0, 5, 0}, Direction: mgl64.Vec3{0, -1, 0}}
	targets := []Target{
		{Min: mgl64.Vec3{-10, 0, -10}, Max: mgl64.Vec3{10, 0, 10}},
		{Min: mgl64.Vec3{-1, 0, -1}, Max: mgl64.Vec3{1, 2, 1}},
	}

	p, ok := down.Nearest(targets)
	assert.True(t, ok)
	assert.Equal(t, mgl64.Vec3{0, 2, 0}, p)

	_, ok = down.Nearest(nil)
	assert.False(t, ok)
}
