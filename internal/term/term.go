// Package term hosts the scene on a tcell terminal screen.
// Cells are treated as CellWidthPx×CellHeightPx pixels so size classes
// and projection behave as in the window host.
package term

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/celestial-scene/internal/ambience"
	"github.com/iburimskiy/celestial-scene/internal/config"
	"github.com/iburimskiy/celestial-scene/internal/log"
	"github.com/iburimskiy/celestial-scene/internal/param"
	"github.com/iburimskiy/celestial-scene/internal/scene"
)

type Host struct {
	screen tcell.Screen
	scene  *scene.Scene
	log    log.Log
	audio  *ambience.Player

	orbit      scene.Orbit
	selected   int
	cols, rows int
	lastErr    error
	now        func() time.Time
}

// New wraps an initialized screen; the caller owns Init and Fini
func New(screen tcell.Screen, s *scene.Scene, logger log.Log, audio *ambience.Player) *Host {
	h := &Host{
		screen: screen,
		scene:  s,
		log:    logger.With(log.String("host", "terminal")),
		audio:  audio,
		now:    time.Now,
	}
	h.resize(screen.Size())
	return h
}

// Run polls input and draws at a fixed tick until quit or ctx is done
func (h *Host) Run(ctx context.Context) error {
	ticker := time.NewTicker(config.TermFrameMs * time.Millisecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !h.handle(ev) {
				return nil
			}
		case <-ticker.C:
			if err := h.frame(); err != nil {
				if errors.Is(err, scene.ErrClosed) {
					return nil
				}
				return err
			}
		}
	}
}

func (h *Host) resize(cols, rows int) {
	if cols <= 0 || rows <= 0 || (cols == h.cols && rows == h.rows) {
		return
	}
	h.cols, h.rows = cols, rows
	h.report(h.scene.OnResize(cols*config.CellWidthPx, rows*config.CellHeightPx))
}

// handle applies one input event; false ends the run
func (h *Host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.resize(ev.Size())
		h.screen.Sync()

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyTab:
			h.selected = (h.selected + 1) % max(1, len(h.scene.Store().Names()))
		case tcell.KeyRight, tcell.KeyUp:
			h.report(h.scene.Nudge(h.selectedName(), 1))
		case tcell.KeyLeft, tcell.KeyDown:
			h.report(h.scene.Nudge(h.selectedName(), -1))
		case tcell.KeyEnter:
			h.report(h.scene.Navigate(""))
		case tcell.KeyRune:
			return h.handleRune(ev.Rune())
		}
	}
	return true
}

func (h *Host) handleRune(r rune) bool {
	switch r {
	case 'q', 'Q':
		return false
	case ' ':
		h.report(h.togglePause())
	case '+', '=':
		h.report(h.scene.Nudge(param.Glow, 1))
	case '-', '_':
		h.report(h.scene.Nudge(param.Glow, -1))
	case ']':
		h.report(h.scene.Nudge(param.Darkness, 1))
	case '[':
		h.report(h.scene.Nudge(param.Darkness, -1))
	case 'z':
		h.orbit.Zoom(h.scene.Config(), -config.ZoomStep)
	case 'x':
		h.orbit.Zoom(h.scene.Config(), config.ZoomStep)
	case 'h':
		h.orbit.Rotate(h.scene.Config(), config.OrbitKeyStep, 0)
	case 'l':
		h.orbit.Rotate(h.scene.Config(), -config.OrbitKeyStep, 0)
	case 'k':
		h.orbit.Rotate(h.scene.Config(), 0, -config.OrbitKeyStep)
	case 'j':
		h.orbit.Rotate(h.scene.Config(), 0, config.OrbitKeyStep)
	case 'n':
		h.report(h.scene.Navigate(""))
	}
	return true
}

func (h *Host) selectedName() string {
	names := h.scene.Store().Names()
	if len(names) == 0 {
		return ""
	}
	return names[h.selected%len(names)]
}

func (h *Host) togglePause() error {
	now := h.now()
	toggle := h.scene.Pause
	if h.scene.Paused() {
		toggle = h.scene.Resume
	}
	if err := toggle(now); err != nil {
		return err
	}
	if h.audio != nil {
		h.audio.SetPaused(h.scene.Paused())
	}
	return nil
}

func (h *Host) frame() error {
	if _, err := h.scene.OnFrame(h.now()); err != nil {
		return err
	}
	h.orbit.Update(config.TermFrameMs / 1000.0)
	if h.audio != nil {
		h.audio.Tune(h.scene.Store().Snapshot())
	}
	h.draw()
	return nil
}

func (h *Host) report(err error) {
	if err == nil {
		return
	}
	h.lastErr = err
	h.log.Warn("host action failed", log.Error(err))
}
