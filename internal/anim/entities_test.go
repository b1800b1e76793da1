package anim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/celestial-scene/internal/param"
	"github.com/iburimskiy/celestial-scene/internal/vmath"
)

const eps = 1e-12

func TestStarAtZero(t *testing.T) {
	p := Star(0, vmath.V3(1, 2, 3), 1, 0.5, 2)

	assert.InDelta(t, 0.8, Twinkle(0, 2), eps)
	assert.InDelta(t, 0.96, p.Emissive, eps)
	assert.InDelta(t, 1.38, p.Scale.X, eps)
	assert.Equal(t, p.Scale.X, p.Scale.Y)
	assert.Equal(t, vmath.V3(1, 2, 3), p.Position)
	assert.Equal(t, vmath.Vec3{}, p.Rotation)
}

func TestStarRotationAxes(t *testing.T) {
	p := Star(2, vmath.Vec3{}, 0.5, 0.4, 3)

	assert.InDelta(t, 0.8, p.Rotation.X, eps)
	assert.InDelta(t, 0.56, p.Rotation.Y, eps)
	assert.InDelta(t, 0.4, p.Rotation.Z, eps)

	tw := math.Sin(6)*0.4 + 0.8
	assert.InDelta(t, tw*1.2, p.Emissive, eps)
	assert.InDelta(t, 0.5*(0.9+tw*0.6), p.Scale.Z, eps)
}

func TestMoon(t *testing.T) {
	pl := Placement{Base: vmath.V3(10, 6, -18), Scale: vmath.Splat(1)}

	p := Moon(1, pl, 0.8)
	assert.InDelta(t, 6+math.Sin(0.2)*0.8, p.Position.Y, eps)
	assert.InDelta(t, 10+math.Cos(0.1)*0.5, p.Position.X, eps)
	assert.Equal(t, -18.0, p.Position.Z)
	assert.InDelta(t, 0.13, p.Rotation.Y, eps)

	inner, ok := p.Layer(LayerMoonInner)
	require.True(t, ok)
	assert.InDelta(t, 0.15+0.8*0.06, inner.Opacity, eps)
	outer, ok := p.Layer(LayerMoonOuter)
	require.True(t, ok)
	assert.InDelta(t, 0.09+0.8*0.05, outer.Opacity, eps)
}

func TestCelestialIsIntegrated(t *testing.T) {
	angle := 0.0
	for i := 0; i < 10; i++ {
		angle = CelestialSpin(angle, SunRotationSpeed, 0.1)
	}
	assert.InDelta(t, 0.03, angle, 1e-12)

	p := Celestial(Placement{Base: vmath.V3(10, 16, -80), Scale: vmath.Splat(2.5)}, angle)
	assert.InDelta(t, 0.03, p.Rotation.Y, eps)
	assert.Equal(t, vmath.Splat(2.5), p.Scale)

	assert.Equal(t, 1.5, CelestialSpin(1.5, SunRotationSpeed, 0), "no delta, no spin")
}

func TestAvatar(t *testing.T) {
	pl := Placement{Base: vmath.V3(-6.8, -3.3, 0.5), Scale: vmath.Splat(3)}

	p := Avatar(0, pl)
	assert.InDelta(t, -3.3, p.Position.Y, eps)
	assert.InDelta(t, 0.26, p.Rotation.Y, eps)

	p = Avatar(2, pl)
	assert.InDelta(t, -3.3+math.Sin(1.6)*0.1, p.Position.Y, eps)
	assert.InDelta(t, 0.26+math.Sin(0.6)*0.8, p.Rotation.Y, eps)
}

func TestSocialIconFormulas(t *testing.T) {
	pl := Placement{Base: vmath.V3(1.2, -3.5, 0), Scale: vmath.Splat(1)}
	tm := 1.7
	p := SocialIcon(tm, 1, pl, 0.8)

	assert.InDelta(t, math.Sin(tm*0.8+1)*0.2, p.Rotation.Y, eps)
	assert.InDelta(t, math.Sin(tm*0.6+1)*0.1, p.Rotation.X, eps)
	assert.InDelta(t, -3.5+math.Sin(tm*1.2+0.5)*0.08, p.Position.Y, eps)
	assert.InDelta(t, 1+math.Sin(tm*2+1)*0.05, p.Scale.X, eps)
	assert.InDelta(t, 0.08+0.8*0.80, p.Emissive, eps)
}

func TestSocialIconsAreOutOfPhase(t *testing.T) {
	pl := Placement{Scale: vmath.Splat(1)}
	for _, tm := range []float64{0, 0.3, 1, 2.5, 10, 123.4} {
		a := SocialIcon(tm, 0, pl, 1)
		b := SocialIcon(tm, 1, pl, 1)
		if math.Sin(tm*0.8) != math.Sin(tm*0.8+1) {
			assert.NotEqual(t, a.Rotation.Y, b.Rotation.Y, "t=%v", tm)
		}
		assert.NotEqual(t, a.Position.Y, b.Position.Y, "t=%v", tm)
	}
}

func TestSlider(t *testing.T) {
	pl := Placement{Base: vmath.V3(9, 1, -2), Scale: vmath.Splat(1)}
	p := Slider(0.5, pl, 0.42)

	assert.InDelta(t, 0.5+math.Sin(1.5)*0.2, p.Emissive, eps)
	assert.InDelta(t, math.Sin(0.25)*0.1, p.Rotation.Y, eps)

	track, ok := p.Layer(LayerTrack)
	require.True(t, ok)
	assert.InDelta(t, 0.3+math.Sin(1.0)*0.1, track.Emissive, eps)

	knob, ok := p.Layer(LayerKnob)
	require.True(t, ok)
	assert.Equal(t, 0.42, knob.Offset.X)
	assert.Equal(t, KnobLift, knob.Offset.Y)
	assert.InDelta(t, 3.6, TrackWidth(1.2), eps)
}

func TestText(t *testing.T) {
	pl := Placement{Scale: vmath.Splat(0.5)}
	assert.InDelta(t, 0.5, Text(0, pl).Scale.X, eps)
	assert.InDelta(t, 0.5*(1+math.Sin(1)*0.05), Text(1, pl).Scale.X, eps)
}

func TestPoseFinite(t *testing.T) {
	p := Slider(1, Placement{Scale: vmath.Splat(1)}, 0)
	assert.True(t, p.Finite())

	p.Layers[1].Emissive = math.NaN()
	assert.False(t, p.Finite())

	p = Star(math.Inf(1), vmath.Vec3{}, 1, 1, 1)
	assert.False(t, p.Finite())
}

func TestLight(t *testing.T) {
	l := Light(param.Values{Glow: 0.8, Darkness: 0.3, DarknessNorm: 0.15})
	assert.InDelta(t, 0.9, l.Ambient, eps)
	assert.InDelta(t, 0.42, l.Key, eps)
	assert.InDelta(t, 0.28, l.Fill, eps)
	assert.InDelta(t, 0.85, l.Background, eps)
}

func TestNavButtonSway(t *testing.T) {
	pl := Placement{Scale: vmath.Splat(1)}
	p := NavButton(1, pl)

	assert.InDelta(t, math.Sin(1.2)*0.15, p.Position.Y, eps)
	assert.InDelta(t, math.Sin(0.8)*0.3, p.Rotation.Y, eps)
	assert.InDelta(t, math.Cos(0.6)*0.1, p.Rotation.X, eps)
	assert.True(t, p.Finite())

	head, ok := p.Layer(LayerHead)
	require.True(t, ok)
	assert.InDelta(t, 1+math.Sin(2.5)*0.15, head.Scale, eps)
	assert.InDelta(t, 0.5+math.Sin(4)*0.3, head.Emissive, eps)
	assert.Equal(t, vmath.V3(0, HeadOffsetY, 0), head.Offset)

	shaft, ok := p.Layer(LayerShaft)
	require.True(t, ok)
	assert.InDelta(t, 1+math.Sin(2)*0.1, shaft.Scale, eps)
	assert.InDelta(t, 0.3+math.Sin(3)*0.2, shaft.Emissive, eps)
}

func TestNavButtonSpins(t *testing.T) {
	p := NavButton(2, Placement{Scale: vmath.Splat(1)})

	ring, ok := p.Layer(LayerRing)
	require.True(t, ok)
	assert.InDelta(t, 3.0, ring.Rotation.Z, eps)
	assert.InDelta(t, 1.6, ring.Rotation.X, eps)
	assert.InDelta(t, 0.2+math.Sin(6)*0.15, ring.Opacity, eps)
	assert.InDelta(t, 1+math.Sin(4.4)*0.2, ring.Scale, eps)

	swirl, ok := p.Layer(LayerSwirl)
	require.True(t, ok)
	assert.InDelta(t, 4.0, swirl.Rotation.Y, eps)
	assert.InDelta(t, 2.4, swirl.Rotation.X, eps)

	core, _ := p.Layer(LayerNavCore)
	field, _ := p.Layer(LayerNavField)
	assert.Equal(t, CoreOpacity, core.Opacity)
	assert.Equal(t, FieldOpacity, field.Opacity)
}

func TestSwirlPoints(t *testing.T) {
	first := SwirlPoint(0)
	assert.InDelta(t, SwirlRadius, first.X, eps)
	assert.InDelta(t, 0, first.Y, eps)

	quarter := SwirlPoint(2)
	assert.InDelta(t, 0, quarter.X, 1e-9)
	assert.InDelta(t, SwirlLift, quarter.Y, eps)
	assert.InDelta(t, SwirlRadius, quarter.Z, eps)
}
