package anim

import (
	"math"

	"github.com/iburimskiy/celestial-scene/internal/vmath"
)

// Star
const (
	StarRotationY = 0.7
	StarRotationZ = 0.5

	StarTwinkleAmplitude = 0.4
	StarTwinkleBase      = 0.8
	StarEmissiveGain     = 1.2
	StarScaleBase        = 0.9
	StarScaleGain        = 0.6
)

// Moon
const (
	MoonSpin       = 0.13
	MoonBobRate    = 0.2
	MoonBobHeight  = 0.8
	MoonSwayRate   = 0.1
	MoonSwayWidth  = 0.5
	MoonCoreScale  = 0.9
	MoonInnerScale = 1.1
	MoonOuterScale = 1.2

	MoonInnerOpacity     = 0.15
	MoonInnerOpacityGain = 0.06
	MoonOuterOpacity     = 0.09
	MoonOuterOpacityGain = 0.05
)

// Celestial body
const SunRotationSpeed = 0.03

// Avatar
const (
	AvatarBobRate   = 0.8
	AvatarBobHeight = 0.1
	AvatarYaw       = 0.26
	AvatarTurnRate  = 0.3
	AvatarTurnWidth = 0.8
)

// Social icon
const (
	IconYawRate      = 0.8
	IconYawWidth     = 0.2
	IconPitchRate    = 0.6
	IconPitchWidth   = 0.1
	IconBobRate      = 1.2
	IconBobPhase     = 0.5
	IconBobHeight    = 0.08
	IconPulseRate    = 2
	IconPulseWidth   = 0.05
	IconEmissive     = 0.08
	IconEmissiveGain = 0.80
)

// IconBox is the social icon mesh proportions before scaling
var IconBox = vmath.V3(0.36, 0.36, 0.16)

// Slider control
const (
	KnobPulseBase   = 0.5
	KnobPulseRate   = 3
	KnobPulseWidth  = 0.2
	TrackPulseBase  = 0.3
	TrackPulseRate  = 2
	TrackPulseWidth = 0.1
	SliderYawRate   = 0.5
	SliderYawWidth  = 0.1
)

const (
	// SliderTrackLength is the track length before scaling
	SliderTrackLength = 3.0
	// KnobTravel is the fraction of the track the knob may cover
	KnobTravel = 0.93
	// KnobLift raises the knob above the track
	KnobLift   = 0.15
	KnobRadius = 0.2
)

// Text label
const (
	TextPulseRate  = 1
	TextPulseWidth = 0.05
)

// Navigation button
const (
	NavYawRate         = 0.8
	NavYawWidth        = 0.3
	NavPitchRate       = 0.6
	NavPitchWidth      = 0.1
	NavBobRate         = 1.2
	NavBobHeight       = 0.15
	ShaftPulseRate     = 2
	ShaftPulseWidth    = 0.1
	ShaftEmissive      = 0.3
	ShaftEmissiveRate  = 3
	ShaftEmissiveWidth = 0.2
	HeadMorphRate      = 2.5
	HeadMorphWidth     = 0.15
	HeadEmissive       = 0.5
	HeadEmissiveRate   = 4
	HeadEmissiveWidth  = 0.3
	RingSpinZ          = 1.5
	RingSpinX          = 0.8
	RingPulseRate      = 2.2
	RingPulseWidth     = 0.2
	RingOpacity        = 0.2
	RingOpacityRate    = 3
	RingOpacityWidth   = 0.15
	SwirlSpinY         = 2
	SwirlSpinX         = 1.2
	SwirlEmissive      = 0.8
	CoreOpacity        = 0.1
	FieldOpacity       = 0.05
)

// Navigation button mesh, in button units
const (
	ShaftLength  = 0.8
	ShaftRadius  = 0.1
	ShaftOffsetY = -0.3
	HeadLength   = 0.6
	HeadRadius   = 0.25
	HeadOffsetY  = 0.2
	// HeadStretch is the extra vertical morph of the arrow head
	HeadStretch = 1.2
	RingRadius  = 1.2
	SwirlRadius = 1.5
	SwirlLift   = 0.3
	SwirlCount  = 8
	SwirlDot    = 0.05
	CoreRadius  = 0.6
	FieldRadius = 1.0
	// NavUnitPx is the viewport edge the mesh is modelled for; smaller buttons scale down
	NavUnitPx = 120
)

// NavCamera frames the navigation button in its own square viewport
var NavCamera = vmath.Camera{Position: vmath.V3(0, 0, 4), FOV: 75}

// Layer names
const (
	LayerMoonCore  = "core"
	LayerMoonInner = "inner-shell"
	LayerMoonOuter = "outer-shell"
	LayerTrack     = "track"
	LayerKnob      = "knob"
	LayerShaft     = "shaft"
	LayerHead      = "head"
	LayerRing      = "ring"
	LayerSwirl     = "swirl"
	LayerNavCore   = "nav-core"
	LayerNavField  = "nav-field"
)

// Twinkle is the star brightness driver
func Twinkle(t, twinkleSpeed float64) float64 {
	return math.Sin(t*twinkleSpeed)*StarTwinkleAmplitude + StarTwinkleBase
}

// Star animates one star at its generated position
func Star(t float64, position vmath.Vec3, baseScale, rotationSpeed, twinkleSpeed float64) Pose {
	spin := t * rotationSpeed
	tw := Twinkle(t, twinkleSpeed)
	return Pose{
		Position: position,
		Rotation: vmath.V3(spin, spin*StarRotationY, spin*StarRotationZ),
		Scale:    vmath.Splat(baseScale * (StarScaleBase + tw*StarScaleGain)),
		Emissive: tw * StarEmissiveGain,
		Opacity:  1,
	}
}

// MoonShellOpacity returns the inner and outer translucent shell opacities
func MoonShellOpacity(glow float64) (inner, outer float64) {
	return MoonInnerOpacity + glow*MoonInnerOpacityGain, MoonOuterOpacity + glow*MoonOuterOpacityGain
}

// Moon orbits lazily around its base position
func Moon(t float64, pl Placement, glow float64) Pose {
	inner, outer := MoonShellOpacity(glow)
	pos := pl.Base
	pos.X += math.Cos(t*MoonSwayRate) * MoonSwayWidth
	pos.Y += math.Sin(t*MoonBobRate) * MoonBobHeight
	return Pose{
		Position: pos,
		Rotation: vmath.V3(0, t*MoonSpin, 0),
		Scale:    pl.Scale,
		Opacity:  1,
		Layers: []Layer{
			{Name: LayerMoonCore, Scale: MoonCoreScale, Opacity: 1},
			{Name: LayerMoonInner, Scale: MoonInnerScale, Opacity: inner},
			{Name: LayerMoonOuter, Scale: MoonOuterScale, Opacity: outer},
		},
	}
}

// CelestialSpin integrates the body's yaw by one frame
// Unlike the other kinds it depends on the previous angle, not on elapsed time
func CelestialSpin(angle, rotationSpeed, delta float64) float64 {
	return angle + rotationSpeed*delta
}

// Celestial poses a sun or planet with an already integrated yaw
func Celestial(pl Placement, angle float64) Pose {
	return Pose{
		Position: pl.Base,
		Rotation: vmath.V3(0, angle, 0),
		Scale:    pl.Scale,
		Emissive: 1,
		Opacity:  1,
	}
}

// Avatar bobs and turns slowly
func Avatar(t float64, pl Placement) Pose {
	pos := pl.Base
	pos.Y += math.Sin(t*AvatarBobRate) * AvatarBobHeight
	return Pose{
		Position: pos,
		Rotation: vmath.V3(0, AvatarYaw+math.Sin(t*AvatarTurnRate)*AvatarTurnWidth, 0),
		Scale:    pl.Scale,
		Opacity:  1,
	}
}

// SocialIcon wobbles icon index out of phase with its neighbours
func SocialIcon(t float64, index int, pl Placement, glow float64) Pose {
	i := float64(index)
	pos := pl.Base
	pos.Y += math.Sin(t*IconBobRate+i*IconBobPhase) * IconBobHeight
	pulse := 1 + math.Sin(t*IconPulseRate+i)*IconPulseWidth
	return Pose{
		Position: pos,
		Rotation: vmath.V3(
			math.Sin(t*IconPitchRate+i)*IconPitchWidth,
			math.Sin(t*IconYawRate+i)*IconYawWidth,
			0,
		),
		Scale:    pl.Scale.Scale(pulse),
		Emissive: IconEmissive + glow*IconEmissiveGain,
		Opacity:  1,
	}
}

// TrackWidth is the slider track length for a placement scale
func TrackWidth(scale float64) float64 {
	return SliderTrackLength * scale
}

// Slider pulses the knob and track and yaws the whole control
// knobOffset is the knob's x offset from the track center in local units
func Slider(t float64, pl Placement, knobOffset float64) Pose {
	knob := KnobPulseBase + math.Sin(t*KnobPulseRate)*KnobPulseWidth
	return Pose{
		Position: pl.Base,
		Rotation: vmath.V3(0, math.Sin(t*SliderYawRate)*SliderYawWidth, 0),
		Scale:    pl.Scale,
		Emissive: knob,
		Opacity:  1,
		Layers: []Layer{
			{Name: LayerTrack, Scale: 1, Emissive: TrackPulseBase + math.Sin(t*TrackPulseRate)*TrackPulseWidth, Opacity: 1},
			{Name: LayerKnob, Offset: vmath.V3(knobOffset, KnobLift, 0), Scale: KnobRadius, Emissive: knob, Opacity: 1},
		},
	}
}

// Text breathes the label scale
func Text(t float64, pl Placement) Pose {
	pulse := 1 + math.Sin(t*TextPulseRate)*TextPulseWidth
	return Pose{
		Position: pl.Base,
		Scale:    pl.Scale.Scale(pulse),
		Opacity:  1,
	}
}

// SwirlPoint is particle i of the swirl ring before the swirl rotation
func SwirlPoint(i int) vmath.Vec3 {
	a := float64(i) / SwirlCount * 2 * math.Pi
	return vmath.V3(math.Cos(a)*SwirlRadius, math.Sin(a)*SwirlLift, math.Sin(a)*SwirlRadius)
}

// NavButton sways the arrow and spins its ring and particle swirl
func NavButton(t float64, pl Placement) Pose {
	pos := pl.Base
	pos.Y += math.Sin(t*NavBobRate) * NavBobHeight
	morph := 1 + math.Sin(t*HeadMorphRate)*HeadMorphWidth
	return Pose{
		Position: pos,
		Rotation: vmath.V3(math.Cos(t*NavPitchRate)*NavPitchWidth, math.Sin(t*NavYawRate)*NavYawWidth, 0),
		Scale:    pl.Scale,
		Emissive: HeadEmissive + math.Sin(t*HeadEmissiveRate)*HeadEmissiveWidth,
		Opacity:  1,
		Layers: []Layer{
			{Name: LayerNavField, Scale: FieldRadius, Opacity: FieldOpacity},
			{Name: LayerNavCore, Scale: CoreRadius, Opacity: CoreOpacity},
			{
				Name:     LayerRing,
				Rotation: vmath.V3(t*RingSpinX, 0, t*RingSpinZ),
				Scale:    1 + math.Sin(t*RingPulseRate)*RingPulseWidth,
				Opacity:  RingOpacity + math.Sin(t*RingOpacityRate)*RingOpacityWidth,
			},
			{Name: LayerSwirl, Rotation: vmath.V3(t*SwirlSpinX, t*SwirlSpinY, 0), Scale: 1, Emissive: SwirlEmissive, Opacity: 1},
			{
				Name:     LayerShaft,
				Offset:   vmath.V3(0, ShaftOffsetY, 0),
				Scale:    1 + math.Sin(t*ShaftPulseRate)*ShaftPulseWidth,
				Emissive: ShaftEmissive + math.Sin(t*ShaftEmissiveRate)*ShaftEmissiveWidth,
				Opacity:  1,
			},
			{
				Name:     LayerHead,
				Offset:   vmath.V3(0, HeadOffsetY, 0),
				Scale:    morph,
				Emissive: HeadEmissive + math.Sin(t*HeadEmissiveRate)*HeadEmissiveWidth,
				Opacity:  1,
			},
		},
	}
}
