package gamemath

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

var testBounds = Bounds2D{MinX: -2, MinZ: -2, MaxX: 2, MaxZ: 2}

func TestKeepInBounds(t *testing.T) {
	cases := []struct {
		name    string
		pos     mgl64.Vec3
		padding float64
		want    mgl64.Vec3
	}{
		{"below both minimums", mgl64.Vec3{-3, -2, -3}, 0, mgl64.Vec3{-2, -2, -2}},
		{"above both maximums", mgl64.Vec3{5, 7, 9}, 0, mgl64.Vec3{2, 7, 2}},
		{"inside is untouched", mgl64.Vec3{1, 3, -1}, 0, mgl64.Vec3{1, 3, -1}},
		{"padding shrinks area", mgl64.Vec3{-3, 0, 3}, 0.5, mgl64.Vec3{-1.5, 0, 1.5}},
		{"padding empties interval", mgl64.Vec3{0, 0, 0}, 3, mgl64.Vec3{-1, 0, -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, KeepInBounds(testBounds, tc.pos, tc.padding))
		})
	}
}

func TestKeepInBoundsStaysInRange(t *testing.T) {
	b := Bounds2D{MinX: 0, MinZ: 0, MaxX: 32, MaxZ: 32}
	for x := -40.0; x <= 40; x += 3.5 {
		for z := -40.0; z <= 40; z += 3.5 {
			p := mgl64.Vec3{x, x - z, z}
			got := KeepInBounds(b, p, 0)
			assert.GreaterOrEqual(t, got.X(), b.MinX)
			assert.LessOrEqual(t, got.X(), b.MaxX)
			assert.GreaterOrEqual(t, got.Z(), b.MinZ)
			assert.LessOrEqual(t, got.Z(), b.MaxZ)
			assert.Equal(t, p.Y(), got.Y())
		}
	}
}

func TestKeepInBoundsIsIdempotent(t *testing.T) {
	points := []mgl64.Vec3{{-9, 1, 4}, {0.5, 0, 0.5}, {3, -3, -3}, {2, 2, 2}}
	for _, pad := range []float64{0, 0.25, 1} {
		for _, p := range points {
			once := KeepInBounds(testBounds, p, pad)
			assert.Equal(t, once, KeepInBounds(testBounds, once, pad))
		}
	}
}

func TestBounds2D(t *testing.T) {
	assert.True(t, testBounds.Ordered())
	assert.False(t, Bounds2D{MinX: 1, MaxX: 0}.Ordered())
	assert.True(t, testBounds.Fits(2))
	assert.False(t, testBounds.Fits(2.1))
	assert.Equal(t, 4.0, testBounds.Width())
	assert.Equal(t, 4.0, testBounds.Depth())
	assert.Equal(t, mgl64.Vec3{0, 1, 0}, testBounds.Center(1))
}

func TestRectanglePoints(t *testing.T) {
	t.Run("drag from origin to (4,0,2)", func(t *testing.T) {
		pressed := mgl64.Vec3{0, 0, 0}
		current := mgl64.Vec3{4, 0, 2}
		diff := current.Sub(pressed)
		center := pressed.Add(diff.Mul(0.5))
		min, max := RectanglePoints(center, mgl64.Vec3{diff.X(), 0, diff.Z()})
		assert.Equal(t, mgl64.Vec3{0, 0, 0}, min)
		assert.Equal(t, mgl64.Vec3{4, 0, 2}, max)
	})
	t.Run("independent of drag direction", func(t *testing.T) {
		center := mgl64.Vec3{1, 0.5, -3}
		for _, scale := range []mgl64.Vec3{{4, 0, 2}, {-4, 0, 2}, {4, 0, -2}, {-4, 0, -2}} {
			min, max := RectanglePoints(center, scale)
			negMin, negMax := RectanglePoints(center, scale.Mul(-1))
			assert.Equal(t, min, negMin)
			assert.Equal(t, max, negMax)
			assert.Equal(t, mgl64.Vec3{-1, 0.5, -4}, min)
			assert.Equal(t, mgl64.Vec3{3, 0.5, -2}, max)
		}
	})
	t.Run("zero size", func(t *testing.T) {
		p := mgl64.Vec3{2, 0, 2}
		min, max := RectanglePoints(p, mgl64.Vec3{})
		assert.Equal(t, p, min)
		assert.Equal(t, p, max)
	})
}

func TestInArea(t *testing.T) {
	min := mgl64.Vec3{0, 0, 0}
	max := mgl64.Vec3{4, 0, 2}

	t.Run("inside with y tolerance", func(t *testing.T) {
		assert.True(t, InArea(mgl64.Vec3{1, 0, 1}, min, max, mgl64.Vec3{0, 1, 0}))
		assert.True(t, InArea(mgl64.Vec3{1, 0.9, 1}, min, max, mgl64.Vec3{0, 1, 0}))
	})
	t.Run("too high", func(t *testing.T) {
		assert.False(t, InArea(mgl64.Vec3{1, 1.5, 1}, min, max, mgl64.Vec3{0, 1, 0}))
	})
	t.Run("outside horizontally", func(t *testing.T) {
		assert.False(t, InArea(mgl64.Vec3{4.01, 0, 1}, min, max, mgl64.Vec3{0, 1, 0}))
		assert.False(t, InArea(mgl64.Vec3{1, 0, -0.01}, min, max, mgl64.Vec3{0, 1, 0}))
	})
	t.Run("edges are inclusive", func(t *testing.T) {
		assert.True(t, InArea(max, min, max, mgl64.Vec3{}))
		assert.True(t, InArea(min, min, max, mgl64.Vec3{}))
	})
	t.Run("reflexive for any non-negative tolerance", func(t *testing.T) {
		p := mgl64.Vec3{-7, 3, 11}
		for _, tol := range []mgl64.Vec3{{}, {0, 1, 0}, {0.5, 0.5, 0.5}} {
			assert.True(t, InArea(p, p, p, tol))
		}
	})
	t.Run("monotonic in tolerance", func(t *testing.T) {
		points := []mgl64.Vec3{{-0.5, 0, 1}, {1, 2, 1}, {5, -1, 3}, {2, 0, 1}}
		small := mgl64.Vec3{0.5, 1, 0}
		large := mgl64.Vec3{1, 2, 1.5}
		for _, p := range points {
			if InArea(p, min, max, small) {
				assert.True(t, InArea(p, min, max, large), "point %v", p)
			}
		}
	})
}

func TestRingRadius(t *testing.T) {
	assert.InDelta(t, 0.6, RingRadius(mgl64.Vec3{0.5, 3, 0.25}, 0.1), 1e-9)
	assert.InDelta(t, 1.1, RingRadius(mgl64.Vec3{0.5, 0, 1}, 0.1), 1e-9)
}

func TestMapRange(t *testing.T) {
	assert.InDelta(t, 0.0, MapRange(0, 0, 0.08, 0, 1), 1e-6)
	assert.InDelta(t, 0.5, MapRange(0.04, 0, 0.08, 0, 1), 1e-6)
	assert.InDelta(t, 1.0, MapRange(0.08, 0, 0.08, 0, 1), 1e-6)
	assert.InDelta(t, 10.0, MapRange(1, 0, 2, 5, 15), 1e-6)
	assert.Equal(t, 3.0, MapRange(1, 2, 2, 3, 4))
}

func TestMapRangeKeepsLargeOffsets(t *testing.T) {
	assert.InDelta(t, 123457.789, MapRange(0.5, 0, 1, 123456.789, 123458.789), 1e-9)
	assert.InDelta(t, 1e6+1, MapRange(1e6+0.5, 1e6, 1e6+1, 1e6, 1e6+2), 1e-9)
}

func TestClampFloat(t *testing.T) {
	assert.Equal(t, 1.0, ClampFloat(-1, 1, 2))
	assert.Equal(t, 2.0, ClampFloat(3, 1, 2))
	assert.Equal(t, 1.5, ClampFloat(1.5, 1, 2))
}
