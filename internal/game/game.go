// Package game hosts the scene in an ebiten window.
package game

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/celestial-scene/internal/ambience"
	"github.com/iburimskiy/celestial-scene/internal/config"
	"github.com/iburimskiy/celestial-scene/internal/log"
	"github.com/iburimskiy/celestial-scene/internal/scene"
)

// Options wires optional host features
type Options struct {
	Width   int
	Height  int
	Sprites map[string]string // entity id -> image file
	Audio   *ambience.Player
}

type Game struct {
	scene *scene.Scene
	log   log.Log
	audio *ambience.Player

	sprites map[string]*ebiten.Image
	orbit   scene.Orbit

	width, height int

	// input edge detection
	prevKey map[ebiten.Key]bool

	// button state
	buttonHovered bool
	buttonPressed bool

	// right-drag orbit, last cursor position
	orbiting       bool
	orbitX, orbitY int

	// slider being dragged, by entity id
	dragging string
	// parameter nudged by the arrow keys
	selected int

	lastErr error
	now     func() time.Time
	// pickLayout asks the user for a layout file; "" means canceled
	pickLayout func() (string, error)
}

func New(s *scene.Scene, logger log.Log, opts Options) *Game {
	if opts.Width <= 0 {
		opts.Width = config.WindowWidth
	}
	if opts.Height <= 0 {
		opts.Height = config.WindowHeight
	}
	g := &Game{
		scene:      s,
		log:        logger.With(log.String("host", "window")),
		audio:      opts.Audio,
		width:      opts.Width,
		height:     opts.Height,
		prevKey:    map[ebiten.Key]bool{},
		now:        time.Now,
		pickLayout: selectLayoutFile,
	}
	g.sprites = g.loadSprites(opts.Sprites)
	return g
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeySpace) {
		g.report(g.togglePause())
	}
	if justPressed(ebiten.KeyL) {
		g.report(g.openLayoutDialog())
	}
	if justPressed(ebiten.KeyTab) {
		g.selected = nextIndex(g.selected, len(g.scene.Store().Names()))
	}
	up := justPressed(ebiten.KeyRight)
	up = justPressed(ebiten.KeyUp) || up
	down := justPressed(ebiten.KeyLeft)
	down = justPressed(ebiten.KeyDown) || down
	switch {
	case up && !down:
		g.report(g.nudge(1))
	case down && !up:
		g.report(g.nudge(-1))
	}

	g.handleMouse()
	g.orbit.Update(1.0 / config.TPS)

	if _, err := g.scene.OnFrame(g.now()); err != nil {
		if errors.Is(err, scene.ErrClosed) {
			return ebiten.Termination
		}
		return err
	}
	if g.audio != nil {
		g.audio.Tune(g.scene.Store().Snapshot())
	}
	return nil
}

// Layout reports viewport changes to the scene and renders at the outside size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return g.width, g.height
	}
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.report(g.scene.OnResize(outsideWidth, outsideHeight))
	}
	return g.width, g.height
}

func (g *Game) togglePause() error {
	now := g.now()
	toggle := g.scene.Pause
	if g.scene.Paused() {
		toggle = g.scene.Resume
	}
	if err := toggle(now); err != nil {
		return err
	}
	if g.audio != nil {
		g.audio.SetPaused(g.scene.Paused())
	}
	return nil
}

// nudge steps the selected parameter through the scene's input entry point
func (g *Game) nudge(steps int) error {
	names := g.scene.Store().Names()
	if len(names) == 0 {
		return nil
	}
	return g.scene.Nudge(names[g.selected%len(names)], steps)
}

func (g *Game) view() scene.View {
	return scene.NewView(g.orbit.Camera(g.scene.Config()), g.width, g.height)
}

// report keeps the latest host error for the HUD
func (g *Game) report(err error) {
	if err == nil {
		return
	}
	g.lastErr = err
	g.log.Warn("host action failed", log.Error(err))
}

func nextIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	return (i + 1) % n
}
