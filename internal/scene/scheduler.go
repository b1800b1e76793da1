package scene

import (
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iburimskiy/celestial-scene/internal/clock"
	"github.com/iburimskiy/celestial-scene/internal/log"
	"github.com/iburimskiy/celestial-scene/internal/param"
)

// minChunk keeps goroutine overhead below the per-entity work
const minChunk = 64

// Stats summarizes one scheduler pass
type Stats struct {
	Frame     clock.Frame
	Evaluated int
	Failed    int
	Skipped   int
}

// Scheduler drives one update pass per display frame
type Scheduler struct {
	clock    *clock.Clock
	store    *param.Store
	composer *Composer
	log      log.Log
	workers  int

	frames uint64
}

// NewScheduler creates a scheduler; workers > 1 evaluates entities in parallel chunks
func NewScheduler(clk *clock.Clock, store *param.Store, composer *Composer, logger log.Log, workers int) *Scheduler {
	return &Scheduler{
		clock:    clk,
		store:    store,
		composer: composer,
		log:      logger,
		workers:  workers,
	}
}

// Step samples the clock and re-evaluates every live entity
func (s *Scheduler) Step(now time.Time) Stats {
	in := Input{
		Frame:  s.clock.Sample(now),
		Values: s.store.Snapshot(),
		Params: s.store,
	}
	s.frames++

	live := make([]*Entity, 0, s.composer.Len())
	skipped := 0
	s.composer.Each(func(e *Entity) {
		if e.Hidden {
			skipped++
			return
		}
		live = append(live, e)
	})

	failed := s.run(live, in)
	return Stats{
		Frame:     in.Frame,
		Evaluated: len(live) - failed,
		Failed:    failed,
		Skipped:   skipped,
	}
}

// Frames is the number of passes run so far
func (s *Scheduler) Frames() uint64 {
	return s.frames
}

func (s *Scheduler) run(live []*Entity, in Input) int {
	if s.workers <= 1 || len(live) < 2*minChunk {
		failed := 0
		for _, e := range live {
			if !s.update(e, in) {
				failed++
			}
		}
		return failed
	}

	chunk := (len(live) + s.workers - 1) / s.workers
	if chunk < minChunk {
		chunk = minChunk
	}

	var failed atomic.Int64
	var g errgroup.Group
	g.SetLimit(s.workers)
	for start := 0; start < len(live); start += chunk {
		part := live[start:min(start+chunk, len(live))]
		g.Go(func() error {
			for _, e := range part {
				if !s.update(e, in) {
					failed.Add(1)
				}
			}
			return nil
		})
	}
	_ = g.Wait()
	return int(failed.Load())
}

// update evaluates one entity in isolation; a failing entity keeps its last pose
func (s *Scheduler) update(e *Entity, in Input) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s.fail(e, in, fmt.Errorf("animate panicked: %v", r))
			ok = false
		}
	}()

	if e.animate == nil {
		s.fail(e, in, fmt.Errorf("no animator for kind %s", e.Kind))
		return false
	}
	pose := e.animate(e, in)
	if !pose.Finite() {
		s.fail(e, in, fmt.Errorf("non-finite pose at t=%.3f", in.Frame.Elapsed))
		return false
	}
	e.apply(pose, in.Frame.Delta)
	if e.failing {
		e.failing = false
		s.log.Info("entity recovered", log.String("entity", e.ID))
	}
	return true
}

// fail logs on the first failure of a streak only
func (s *Scheduler) fail(e *Entity, in Input, err error) {
	if e.failing {
		return
	}
	e.failing = true
	s.log.Warn("entity update skipped",
		log.String("entity", e.ID),
		log.String("kind", e.Kind.String()),
		log.Duration("delta", time.Duration(in.Frame.Delta*float64(time.Second))),
		log.Error(err),
	)
}
