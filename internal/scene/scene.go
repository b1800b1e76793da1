package scene

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iburimskiy/celestial-scene/internal/anim"
	"github.com/iburimskiy/celestial-scene/internal/clock"
	"github.com/iburimskiy/celestial-scene/internal/layout"
	"github.com/iburimskiy/celestial-scene/internal/log"
	"github.com/iburimskiy/celestial-scene/internal/param"
	"github.com/iburimskiy/celestial-scene/internal/stars"
)

var (
	ErrClosed        = errors.New("scene closed")
	ErrUnknownEntity = errors.New("unknown entity")
)

// DefaultNavigateTarget is the route requested by the navigation button
const DefaultNavigateTarget = "/bio"

// NavigateFunc receives route transition requests
type NavigateFunc func(target string)

// Options tunes a scene
type Options struct {
	Width          int
	Height         int
	Workers        int
	NavigateTarget string
	Navigate       NavigateFunc
	Links          []SocialLink
}

// Scene wires composer, scheduler, parameters and clock behind the host callbacks
// All methods must be called from the host's frame goroutine
type Scene struct {
	id        string
	log       log.Log
	clock     *clock.Clock
	store     *param.Store
	composer  *Composer
	scheduler *Scheduler

	navigate NavigateFunc
	target   string

	width, height int
	last          Stats
	closed        bool
}

// New mounts the scene at the initial viewport
func New(resolver *layout.Resolver, store *param.Store, clk *clock.Clock, gen *stars.Generator, logger log.Log, opts Options) *Scene {
	if opts.NavigateTarget == "" {
		opts.NavigateTarget = DefaultNavigateTarget
	}
	if opts.Links == nil {
		opts.Links = DefaultSocialLinks
	}

	id := uuid.NewString()
	logger = logger.With(log.String("scene", id))

	composer := NewComposer(resolver, gen, store, opts.Links, opts.Width)
	s := &Scene{
		id:        id,
		log:       logger,
		clock:     clk,
		store:     store,
		composer:  composer,
		scheduler: NewScheduler(clk, store, composer, logger, opts.Workers),
		navigate:  opts.Navigate,
		target:    opts.NavigateTarget,
		width:     opts.Width,
		height:    opts.Height,
	}
	logger.Info("scene mounted",
		log.String("class", composer.Class().String()),
		log.Int("width", opts.Width),
		log.Int("entities", composer.Len()),
	)
	return s
}

// OnResize handles a viewport change; the configuration swap is a single assignment
func (s *Scene) OnResize(width, height int) error {
	if s.closed {
		return ErrClosed
	}
	s.width, s.height = width, height
	before := s.composer.Class()
	if s.composer.Resize(width) {
		s.log.Info("size class changed",
			log.String("from", before.String()),
			log.String("to", s.composer.Class().String()),
			log.Int("width", width),
			log.Int("stars", len(s.composer.Stars())),
		)
	}
	return nil
}

// OnFrame runs one scheduler pass at now
func (s *Scene) OnFrame(now time.Time) (Stats, error) {
	if s.closed {
		return Stats{}, ErrClosed
	}
	s.last = s.scheduler.Step(now)
	return s.last, nil
}

// SetParameter is the slider input entry point; values are clamped
func (s *Scene) SetParameter(name string, raw float64) error {
	if s.closed {
		return ErrClosed
	}
	return s.store.SetParameter(name, raw)
}

// Nudge moves a parameter by whole keyboard steps; values are clamped
func (s *Scene) Nudge(name string, steps int) error {
	if s.closed {
		return ErrClosed
	}
	return s.store.Nudge(name, steps)
}

// Navigate emits a route transition; an empty target uses the default route
func (s *Scene) Navigate(target string) error {
	if s.closed {
		return ErrClosed
	}
	if target == "" {
		target = s.target
	}
	s.log.Info("navigate", log.String("target", target))
	if s.navigate != nil {
		s.navigate(target)
	}
	return nil
}

// ReplaceTable swaps the layout table and re-applies it at the current width
func (s *Scene) ReplaceTable(table layout.Table) error {
	if s.closed {
		return ErrClosed
	}
	r, err := layout.NewResolver(table)
	if err != nil {
		return fmt.Errorf("replace layout table: %w", err)
	}
	s.composer.SetResolver(r)
	s.log.Info("layout table replaced", log.String("class", s.composer.Class().String()))
	return nil
}

// MarkUnavailable records an asset failure; the entity keeps animating
func (s *Scene) MarkUnavailable(id string, cause error) error {
	if s.closed {
		return ErrClosed
	}
	e, ok := s.composer.Entity(id)
	if !ok {
		return fmt.Errorf("%q: %w", id, ErrUnknownEntity)
	}
	e.Status = StatusUnavailable
	e.Err = cause
	s.log.Warn("entity unavailable", log.String("entity", id), log.Error(cause))
	return nil
}

// Pause freezes scene time
func (s *Scene) Pause(now time.Time) error {
	if s.closed {
		return ErrClosed
	}
	s.clock.Pause(now)
	s.log.Debug("clock toggled", log.Bool("paused", true))
	return nil
}

// Resume continues scene time
func (s *Scene) Resume(now time.Time) error {
	if s.closed {
		return ErrClosed
	}
	s.clock.Resume(now)
	s.log.Debug("clock toggled", log.Bool("paused", false))
	return nil
}

// Paused reports whether scene time is frozen
func (s *Scene) Paused() bool {
	return s.clock.IsPaused()
}

// Close tears the scene down; every later callback returns ErrClosed
func (s *Scene) Close() error {
	if s.closed {
		return ErrClosed
	}
	s.closed = true
	s.navigate = nil
	s.log.Info("scene closed",
		log.Int("frames", int(s.scheduler.Frames())),
		log.Any("last", s.last),
	)
	return nil
}

func (s *Scene) ID() string                   { return s.id }
func (s *Scene) Closed() bool                 { return s.closed }
func (s *Scene) Class() layout.SizeClass      { return s.composer.Class() }
func (s *Scene) Config() layout.Configuration { return s.composer.Config() }
func (s *Scene) Store() *param.Store          { return s.store }
func (s *Scene) Composer() *Composer          { return s.composer }
func (s *Scene) LastStats() Stats             { return s.last }
func (s *Scene) Elapsed() float64             { return s.clock.Elapsed() }

// Viewport is the last reported host size
func (s *Scene) Viewport() (width, height int) {
	return s.width, s.height
}

// Lighting is the light rig for the current parameters
func (s *Scene) Lighting() anim.Lighting {
	return anim.Light(s.store.Snapshot())
}
