package scene

import (
	"math"

	"github.com/iburimskiy/celestial-scene/internal/anim"
	"github.com/iburimskiy/celestial-scene/internal/layout"
	"github.com/iburimskiy/celestial-scene/internal/vmath"
)

// Orbit limits and damping
const (
	OrbitDamping = 0.05
	// dampingRate is the frame rate OrbitDamping is expressed at
	dampingRate = 60
	MaxPolar    = math.Pi / 2
	// minPolar keeps the camera off the vertical axis where the up vector degenerates
	minPolar = 0.01
)

// Orbit is the host-owned camera rig around the configuration target
// Rotation eases toward its goal; distance changes apply at once and are clamped to the class range
// A size class change snaps the rig back to the class camera
type Orbit struct {
	class layout.SizeClass
	set   bool

	distance       float64
	azimuth, polar float64
	goalAzimuth    float64
	goalPolar      float64
}

func (o *Orbit) sync(cfg layout.Configuration) {
	if o.set && o.class == cfg.Class {
		return
	}
	r, polar, az := vmath.ToSpherical(cfg.Camera.Position.Sub(cfg.Camera.Target))
	o.class = cfg.Class
	o.set = true
	o.distance = r
	o.polar = clampPolar(polar)
	o.azimuth = az
	o.goalPolar, o.goalAzimuth = o.polar, o.azimuth
}

func clampPolar(p float64) float64 {
	return math.Max(minPolar, math.Min(MaxPolar, p))
}

// Camera returns the configuration camera moved onto the orbit
func (o *Orbit) Camera(cfg layout.Configuration) vmath.Camera {
	o.sync(cfg)
	cam := cfg.Camera.Camera
	cam.Position = cam.Target.Add(vmath.Spherical(o.distance, o.polar, o.azimuth))
	return cam
}

// Zoom moves the camera delta units along its view line
func (o *Orbit) Zoom(cfg layout.Configuration, delta float64) {
	o.sync(cfg)
	o.distance = cfg.Camera.ClampDistance(o.distance + delta)
}

// Rotate turns the goal by radians; the polar goal never passes below the horizon
func (o *Orbit) Rotate(cfg layout.Configuration, azimuth, polar float64) {
	o.sync(cfg)
	o.goalAzimuth += azimuth
	o.goalPolar = clampPolar(o.goalPolar + polar)
}

// Update eases the rotation toward its goal over dt seconds
// One 1/30 s step lands where two 1/60 s steps do
func (o *Orbit) Update(dt float64) {
	if dt <= 0 || !o.set {
		return
	}
	a := 1 - math.Pow(1-OrbitDamping, dt*dampingRate)
	o.azimuth += (o.goalAzimuth - o.azimuth) * a
	o.polar += (o.goalPolar - o.polar) * a
}

func (o *Orbit) Distance() float64 { return o.distance }
func (o *Orbit) Azimuth() float64  { return o.azimuth }
func (o *Orbit) Polar() float64    { return o.polar }

// View projects entity poses onto a w×h host surface
type View struct {
	Camera vmath.Camera
	Width  float64
	Height float64
}

func NewView(cam vmath.Camera, width, height int) View {
	return View{Camera: cam, Width: float64(width), Height: float64(height)}
}

// Point projects a world point
func (v View) Point(p vmath.Vec3) (x, y, depth float64, ok bool) {
	return v.Camera.Project(p, v.Width, v.Height)
}

// Size converts a world length at depth into pixels
func (v View) Size(length, depth float64) float64 {
	return v.Camera.PixelSize(length, depth, v.Height)
}

// Track is the screen segment a slider knob travels along
type Track struct {
	X0, X1, Y float64
	// Travel is the knob travel in world units
	Travel float64
}

// Offset maps a screen x onto a world knob offset from the track center
func (t Track) Offset(x float64) float64 {
	span := t.X1 - t.X0
	if span <= 0 {
		return 0
	}
	f := (x - t.X0) / span
	f = math.Max(0, math.Min(1, f))
	return (f - 0.5) * t.Travel
}

// Contains reports whether (x, y) lies within pad pixels of the segment
func (t Track) Contains(x, y, pad float64) bool {
	return x >= t.X0-pad && x <= t.X1+pad && math.Abs(y-t.Y) <= pad
}

// SliderTrack projects a slider entity's knob travel
func (v View) SliderTrack(e *Entity) (Track, bool) {
	if e.Kind != KindSlider {
		return Track{}, false
	}
	travel := anim.TrackWidth(e.Placement.Scale.X) * anim.KnobTravel
	half := vmath.V3(travel/2, 0, 0)
	x0, y, _, ok0 := v.Point(e.Pose.Position.Sub(half))
	x1, _, _, ok1 := v.Point(e.Pose.Position.Add(half))
	if !ok0 || !ok1 {
		return Track{}, false
	}
	return Track{X0: x0, X1: x1, Y: y, Travel: travel}, true
}
