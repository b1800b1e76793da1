package scene

import (
	"fmt"

	"github.com/iburimskiy/celestial-scene/internal/anim"
	"github.com/iburimskiy/celestial-scene/internal/clock"
	"github.com/iburimskiy/celestial-scene/internal/param"
)

type Kind uint8

const (
	KindCelestial Kind = iota
	KindStar
	KindMoon
	KindAvatar
	KindSocialIcon
	KindSlider
	KindText
	// KindNavButton lives in its own screen-anchored viewport, not in the world
	KindNavButton
)

var kindNames = [...]string{"celestial", "star", "moon", "avatar", "social-icon", "slider", "text", "nav-button"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Status tracks whether an entity's visual asset is usable
type Status uint8

const (
	StatusLive Status = iota
	// StatusUnavailable entities keep animating; hosts draw a placeholder
	StatusUnavailable
)

// Constants are fixed at entity creation
type Constants struct {
	RotationSpeed float64
	TwinkleSpeed  float64
	Parameter     string // slider: the parameter it controls
	Target        string // social icon: navigation target; nav button: empty for the default route
	Label         string
}

// Input is everything an animator may read for one frame
type Input struct {
	Frame  clock.Frame
	Values param.Values
	Params *param.Store
}

// AnimateFunc derives a pose; it must not mutate the entity
type AnimateFunc func(e *Entity, in Input) anim.Pose

// ClipPlayer is an externally owned skeletal clip advanced once per frame
type ClipPlayer interface {
	Advance(delta float64)
}

// Entity is one independently animated object
type Entity struct {
	ID        string
	Index     int
	Kind      Kind
	Constants Constants

	// Placement comes from the active configuration and is replaced on a class change
	Placement anim.Placement
	// Pose is recomputed every frame
	Pose anim.Pose

	Hidden bool
	Status Status
	Err    error
	Clip   ClipPlayer

	animate AnimateFunc
	spin    float64
	failing bool
}

// NewEntity creates an entity with the animator of its kind
func NewEntity(id string, index int, kind Kind, c Constants) *Entity {
	return &Entity{
		ID:        id,
		Index:     index,
		Kind:      kind,
		Constants: c,
		animate:   animators[kind],
	}
}

// Spin is the integrated yaw of a celestial body
func (e *Entity) Spin() float64 {
	return e.spin
}

// apply stores an evaluated pose and advances per-frame integrators
func (e *Entity) apply(p anim.Pose, delta float64) {
	e.Pose = p
	if e.Kind == KindCelestial {
		e.spin = p.Rotation.Y
	}
	if e.Clip != nil {
		e.Clip.Advance(delta)
	}
}

var animators = [...]AnimateFunc{
	KindCelestial: func(e *Entity, in Input) anim.Pose {
		return anim.Celestial(e.Placement, anim.CelestialSpin(e.spin, e.Constants.RotationSpeed, in.Frame.Delta))
	},
	KindStar: func(e *Entity, in Input) anim.Pose {
		return anim.Star(in.Frame.Elapsed, e.Placement.Base, e.Placement.Scale.X, e.Constants.RotationSpeed, e.Constants.TwinkleSpeed)
	},
	KindMoon: func(e *Entity, in Input) anim.Pose {
		return anim.Moon(in.Frame.Elapsed, e.Placement, in.Values.Glow)
	},
	KindAvatar: func(e *Entity, in Input) anim.Pose {
		return anim.Avatar(in.Frame.Elapsed, e.Placement)
	},
	KindSocialIcon: func(e *Entity, in Input) anim.Pose {
		return anim.SocialIcon(in.Frame.Elapsed, e.Index, e.Placement, in.Values.Glow)
	},
	KindSlider: func(e *Entity, in Input) anim.Pose {
		offset := 0.0
		if in.Params != nil {
			if p, ok := in.Params.Get(e.Constants.Parameter); ok {
				offset = p.KnobOffset(anim.TrackWidth(e.Placement.Scale.X) * anim.KnobTravel)
			}
		}
		return anim.Slider(in.Frame.Elapsed, e.Placement, offset)
	},
	KindText: func(e *Entity, in Input) anim.Pose {
		return anim.Text(in.Frame.Elapsed, e.Placement)
	},
	KindNavButton: func(e *Entity, in Input) anim.Pose {
		return anim.NavButton(in.Frame.Elapsed, e.Placement)
	},
}
