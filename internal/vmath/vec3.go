package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a float64 3D vector in scene units
// The fields stay named for YAML; the arithmetic runs on mgl64.Vec3
type Vec3 struct {
	X, Y, Z float64
}

// V3 is shorthand for a literal Vec3
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Splat returns a vector with all components set to s
func Splat(s float64) Vec3 {
	return Vec3{s, s, s}
}

// From converts an mgl64 vector
func From(m mgl64.Vec3) Vec3 {
	return Vec3{m[0], m[1], m[2]}
}

// M returns the mgl64 form
func (v Vec3) M() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return From(v.M().Add(o.M()))
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return From(v.M().Sub(o.M()))
}

func (v Vec3) Scale(s float64) Vec3 {
	return From(v.M().Mul(s))
}

// Mul multiplies component-wise
func (v Vec3) Mul(o Vec3) Vec3 {
	return From(mgl64.Diag3(o.M()).Mul3x1(v.M()))
}

func (v Vec3) Len() float64 {
	return v.M().Len()
}

// Rotate applies Euler angles in X, Y, Z order (the matrix Rx·Ry·Rz)
func (v Vec3) Rotate(euler Vec3) Vec3 {
	m := mgl64.Rotate3DX(euler.X).Mul3(mgl64.Rotate3DY(euler.Y)).Mul3(mgl64.Rotate3DZ(euler.Z))
	return From(m.Mul3x1(v.M()))
}

// Finite reports whether no component is NaN or infinite
func (v Vec3) Finite() bool {
	return finite(v.X) && finite(v.Y) && finite(v.Z)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Spherical builds a Y-up offset from radius, polar angle from +Y and azimuth around Y from +Z
func Spherical(radius, polar, azimuth float64) Vec3 {
	// mgl64 is Z-up with azimuth from +X; swizzle into Y-up
	m := mgl64.SphericalToCartesian(radius, polar, azimuth)
	return Vec3{X: m[1], Y: m[2], Z: m[0]}
}

// ToSpherical is the inverse of Spherical; a zero vector yields zeros
func ToSpherical(v Vec3) (radius, polar, azimuth float64) {
	radius = v.Len()
	if radius == 0 {
		return 0, 0, 0
	}
	polar = math.Acos(mgl64.Clamp(v.Y/radius, -1, 1))
	azimuth = math.Atan2(v.X, v.Z)
	return radius, polar, azimuth
}
