package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// nearPlane is the closest depth that still projects
	nearPlane = 0.1
	farPlane  = 1000
)

var up = mgl64.Vec3{0, 1, 0}

// Camera is a perspective camera at Position looking at Target
// FOV is the vertical field of view in degrees
type Camera struct {
	Position Vec3    `yaml:"position"`
	Target   Vec3    `yaml:"target"`
	FOV      float64 `yaml:"fov"`
}

func (c Camera) view() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position.M(), c.Target.M(), up)
}

func (c Camera) projection(aspect float64) mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FOV), aspect, nearPlane, farPlane)
}

// focal returns the focal length in pixels for a viewport of height h
func (c Camera) focal(h float64) float64 {
	return c.projection(1).At(1, 1) * h / 2
}

// Project maps a world point to screen coordinates for a w×h viewport, y down
// ok is false for points behind the near plane
func (c Camera) Project(p Vec3, w, h float64) (x, y, depth float64, ok bool) {
	view := c.view()
	depth = -view.Mul4x1(p.M().Vec4(1)).Z()
	if depth < nearPlane || w <= 0 || h <= 0 {
		return 0, 0, depth, false
	}
	iw, ih := int(math.Round(w)), int(math.Round(h))
	win := mgl64.Project(p.M(), view, c.projection(float64(iw)/float64(ih)), 0, 0, iw, ih)
	return win.X(), float64(ih) - win.Y(), depth, true
}

// PixelSize converts a world-space length at the given depth into pixels
func (c Camera) PixelSize(length, depth, h float64) float64 {
	if depth < nearPlane {
		return 0
	}
	return length / depth * c.focal(h)
}

// Distance is how far Position sits from Target
func (c Camera) Distance() float64 {
	return c.Position.Sub(c.Target).Len()
}
