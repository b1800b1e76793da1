// Package anim holds the closed-form animation of every entity kind.
// Each function is pure: elapsed time, entity constants and shared parameter
// readings in, pose out. The numeric constants are part of the observable
// behavior and must not be retuned.
package anim

import (
	"math"

	"github.com/iburimskiy/celestial-scene/internal/vmath"
)

// Layer is a secondary renderable attached to an entity (moon shell, slider track, knob)
// Offset and Rotation are in the entity's local frame
type Layer struct {
	Name     string
	Offset   vmath.Vec3
	Rotation vmath.Vec3
	Scale    float64
	Emissive float64
	Opacity  float64
}

// Pose is the derived visual state of one entity for one frame
type Pose struct {
	Position vmath.Vec3
	Rotation vmath.Vec3
	Scale    vmath.Vec3
	Emissive float64
	Opacity  float64
	Layers   []Layer
}

// Finite reports whether every numeric field is usable by a renderer
func (p Pose) Finite() bool {
	if !p.Position.Finite() || !p.Rotation.Finite() || !p.Scale.Finite() {
		return false
	}
	if !finite(p.Emissive) || !finite(p.Opacity) {
		return false
	}
	for _, l := range p.Layers {
		if !l.Offset.Finite() || !l.Rotation.Finite() || !finite(l.Scale) || !finite(l.Emissive) || !finite(l.Opacity) {
			return false
		}
	}
	return true
}

// Layer returns the named layer
func (p Pose) Layer(name string) (Layer, bool) {
	for _, l := range p.Layers {
		if l.Name == name {
			return l, true
		}
	}
	return Layer{}, false
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Placement is the layout-driven part of an entity, replaced on a size class change
type Placement struct {
	Base  vmath.Vec3
	Scale vmath.Vec3
}
