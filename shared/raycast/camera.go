// Package raycast turns screen positions into world rays and world points back
// into screen positions.
package raycast

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
)

var ErrDegenerateRay = errors.New("near and far points coincide")

// Camera is a perspective camera. Screen coordinates use a top-left origin.
type Camera struct {
	Eye    mgl64.Vec3
	Target mgl64.Vec3
	Up     mgl64.Vec3
	FovY   float64 // degrees
	Near   float64
	Far    float64
}

func (c Camera) up() mgl64.Vec3 {
	if c.Up == (mgl64.Vec3{}) {
		return mgl64.Vec3{0, 1, 0}
	}
	return c.Up
}

// View returns the world-to-camera matrix.
func (c Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye, c.Target, c.up())
}

// Projection returns the perspective matrix for a viewport of w x h pixels.
func (c Camera) Projection(w, h int) mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FovY), float64(w)/float64(h), c.Near, c.Far)
}

// ScreenRay casts a ray from the near plane through the pixel (x, y).
func (c Camera) ScreenRay(x, y float64, w, h int) (Ray, error) {
	view, proj := c.View(), c.Projection(w, h)
	winY := float64(h) - y

	near, err := mgl64.UnProject(mgl64.Vec3{x, winY, 0}, view, proj, 0, 0, w, h)
	if err != nil {
		return Ray{}, err
	}
	far, err := mgl64.UnProject(mgl64.Vec3{x, winY, 1}, view, proj, 0, 0, w, h)
	if err != nil {
		return Ray{}, err
	}

	dir := far.Sub(near)
	if dir.Len() == 0 {
		return Ray{}, ErrDegenerateRay
	}
	return Ray{Origin: near, Direction: dir.Normalize()}, nil
}

// Project maps a world point onto the screen. ok is false when the point lies
// outside the near/far range.
func (c Camera) Project(p mgl64.Vec3, w, h int) (x, y float64, ok bool) {
	win := mgl64.Project(p, c.View(), c.Projection(w, h), 0, 0, w, h)
	ok = win[2] >= 0 && win[2] <= 1
	return win[0], float64(h) - win[1], ok
}
