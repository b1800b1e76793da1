package param

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidRange     = errors.New("parameter range must satisfy min < max")
	ErrUnknownParameter = errors.New("unknown parameter")
)

// Parameter is a named continuous value confined to [Min, Max]
// The only mutation path is Set, which clamps
type Parameter struct {
	name  string
	min   float64
	max   float64
	step  float64
	value float64
}

// New creates a parameter; the initial value is clamped like any other write
func New(name string, min, max, step, initial float64) (*Parameter, error) {
	if !(min < max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil, fmt.Errorf("%s [%v, %v]: %w", name, min, max, ErrInvalidRange)
	}
	if step <= 0 || math.IsNaN(step) {
		step = (max - min) / 100
	}
	p := &Parameter{name: name, min: min, max: max, step: step}
	p.Set(initial)
	return p, nil
}

func (p *Parameter) Name() string { return p.name }
func (p *Parameter) Min() float64 { return p.min }
func (p *Parameter) Max() float64 { return p.max }
func (p *Parameter) Step() float64 { return p.step }
func (p *Parameter) Get() float64 { return p.value }

// Set stores v clamped to the range; NaN stores Min
func (p *Parameter) Set(v float64) {
	switch {
	case math.IsNaN(v), v < p.min:
		p.value = p.min
	case v > p.max:
		p.value = p.max
	default:
		p.value = v
	}
}

// Normalized returns (value - min) / (max - min) in [0, 1]
func (p *Parameter) Normalized() float64 {
	return (p.value - p.min) / (p.max - p.min)
}

// SetNormalized stores min + n*(max-min), clamped
func (p *Parameter) SetNormalized(n float64) {
	p.Set(p.min + n*(p.max-p.min))
}

// Nudge moves the value by whole steps
func (p *Parameter) Nudge(steps int) {
	p.Set(p.value + float64(steps)*p.step)
}

// KnobOffset is the knob's x offset from the track center for a track of trackWidth
func (p *Parameter) KnobOffset(trackWidth float64) float64 {
	return (p.Normalized() - 0.5) * trackWidth
}

// SetFromKnobOffset is the inverse of KnobOffset, used while dragging the knob
func (p *Parameter) SetFromKnobOffset(offset, trackWidth float64) {
	if trackWidth <= 0 {
		return
	}
	p.SetNormalized(offset/trackWidth + 0.5)
}

func (p *Parameter) String() string {
	return fmt.Sprintf("%s=%.2f", p.name, p.value)
}
