package param

import "fmt"

const (
	Glow     = "glow"
	Darkness = "darkness"
)

// Spec describes one parameter of the store
type Spec struct {
	Name    string  `yaml:"name"`
	Label   string  `yaml:"label"`
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	Step    float64 `yaml:"step"`
	Initial float64 `yaml:"initial"`
}

// DefaultSpecs are the glow and darkness sliders
func DefaultSpecs() []Spec {
	return []Spec{
		{Name: Glow, Label: "Glow Power", Min: 0.1, Max: 2.5, Step: 0.01, Initial: 0.8},
		{Name: Darkness, Label: "Darkness Level", Min: 0, Max: 2, Step: 0.01, Initial: 0.3},
	}
}

// Values is the per-frame reading of the shared parameters
type Values struct {
	Glow         float64
	Darkness     float64
	GlowNorm     float64
	DarknessNorm float64
}

// Store owns the shared parameters
// Writes come from UI input on the frame goroutine and are read by the next frame
type Store struct {
	params map[string]*Parameter
	labels map[string]string
	order  []string
}

// NewStore builds a store; it must contain glow and darkness
func NewStore(specs []Spec) (*Store, error) {
	s := &Store{
		params: make(map[string]*Parameter, len(specs)),
		labels: make(map[string]string, len(specs)),
	}
	for _, sp := range specs {
		if _, dup := s.params[sp.Name]; dup {
			return nil, fmt.Errorf("duplicate parameter %q", sp.Name)
		}
		p, err := New(sp.Name, sp.Min, sp.Max, sp.Step, sp.Initial)
		if err != nil {
			return nil, err
		}
		s.params[sp.Name] = p
		s.labels[sp.Name] = sp.Label
		s.order = append(s.order, sp.Name)
	}
	for _, required := range []string{Glow, Darkness} {
		if _, ok := s.params[required]; !ok {
			return nil, fmt.Errorf("parameter %q: %w", required, ErrUnknownParameter)
		}
	}
	return s, nil
}

// Get returns the named parameter
func (s *Store) Get(name string) (*Parameter, bool) {
	p, ok := s.params[name]
	return p, ok
}

// Label returns the display label of the named parameter
func (s *Store) Label(name string) string {
	if l := s.labels[name]; l != "" {
		return l
	}
	return name
}

// SetParameter is the input entry point for slider drags; values are clamped
func (s *Store) SetParameter(name string, raw float64) error {
	p, ok := s.params[name]
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrUnknownParameter)
	}
	p.Set(raw)
	return nil
}

// Nudge moves the named parameter by steps keyboard increments
func (s *Store) Nudge(name string, steps int) error {
	p, ok := s.params[name]
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrUnknownParameter)
	}
	p.Nudge(steps)
	return nil
}

// Names lists parameters in declaration order
func (s *Store) Names() []string {
	return append([]string(nil), s.order...)
}

// Snapshot reads the shared values once for a frame
func (s *Store) Snapshot() Values {
	g, d := s.params[Glow], s.params[Darkness]
	return Values{
		Glow:         g.Get(),
		Darkness:     d.Get(),
		GlowNorm:     g.Normalized(),
		DarknessNorm: d.Normalized(),
	}
}
