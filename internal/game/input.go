package game

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/celestial-scene/internal/anim"
	"github.com/iburimskiy/celestial-scene/internal/config"
	"github.com/iburimskiy/celestial-scene/internal/layout"
	"github.com/iburimskiy/celestial-scene/internal/log"
	"github.com/iburimskiy/celestial-scene/internal/param"
	"github.com/iburimskiy/celestial-scene/internal/scene"
)

func (g *Game) handleMouse() {
	mouseX, mouseY := ebiten.CursorPosition()
	x, y := float64(mouseX), float64(mouseY)
	view := g.view()

	bx, by, size := navBox(g.width, g.height)
	g.buttonHovered = inRect(x, y, bx, by, size, size)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		switch {
		case g.buttonHovered:
			g.buttonPressed = true
		default:
			if id, ok := g.sliderAt(view, x, y); ok {
				g.dragging = id
			} else if target, ok := g.iconAt(view, x, y); ok {
				g.report(g.scene.Navigate(target))
			}
		}
	}

	if g.dragging != "" && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.report(g.drag(view, x))
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			g.report(g.scene.Navigate(""))
		}
		g.buttonPressed = false
		g.dragging = ""
	}

	g.handleOrbit(mouseX, mouseY)

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.orbit.Zoom(g.scene.Config(), -wy*config.ZoomStep)
	}
}

// handleOrbit turns the camera while the right button drags; a full window height is one turn
func (g *Game) handleOrbit(x, y int) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.orbiting = true
		g.orbitX, g.orbitY = x, y
		return
	}
	if !g.orbiting {
		return
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		g.orbiting = false
		return
	}
	g.rotate(x-g.orbitX, y-g.orbitY)
	g.orbitX, g.orbitY = x, y
}

func (g *Game) rotate(dx, dy int) {
	if g.height <= 0 {
		return
	}
	turn := 2 * math.Pi / float64(g.height)
	g.orbit.Rotate(g.scene.Config(), -float64(dx)*turn, -float64(dy)*turn)
}

// sliderAt finds a visible slider whose track is under the cursor
func (g *Game) sliderAt(view scene.View, x, y float64) (string, bool) {
	for _, e := range g.scene.Composer().Persistent() {
		if e.Kind != scene.KindSlider || e.Hidden {
			continue
		}
		tr, ok := view.SliderTrack(e)
		if ok && tr.Contains(x, y, config.SliderGrabRadius) {
			return e.ID, true
		}
	}
	return "", false
}

// iconAt finds the social icon under the cursor and returns its navigation target
func (g *Game) iconAt(view scene.View, x, y float64) (string, bool) {
	for _, e := range g.scene.Composer().Persistent() {
		if e.Kind != scene.KindSocialIcon || e.Hidden {
			continue
		}
		cx, cy, depth, ok := view.Point(e.Pose.Position)
		if !ok {
			continue
		}
		half := view.Size(anim.IconBox.X*e.Pose.Scale.X, depth) / 2
		if math.Abs(x-cx) <= half && math.Abs(y-cy) <= half {
			return e.Constants.Target, true
		}
	}
	return "", false
}

func (g *Game) drag(view scene.View, x float64) error {
	e, ok := g.scene.Composer().Entity(g.dragging)
	if !ok {
		return nil
	}
	tr, ok := view.SliderTrack(e)
	if !ok {
		return nil
	}
	p, ok := g.scene.Store().Get(e.Constants.Parameter)
	if !ok {
		return fmt.Errorf("%q: %w", e.Constants.Parameter, param.ErrUnknownParameter)
	}
	return g.scene.SetParameter(p.Name(), valueAt(p, tr, x))
}

// valueAt is the raw parameter value for a cursor at screen x on the track
func valueAt(p *param.Parameter, tr scene.Track, x float64) float64 {
	if tr.Travel <= 0 {
		return p.Get()
	}
	norm := tr.Offset(x)/tr.Travel + 0.5
	return p.Min() + norm*(p.Max()-p.Min())
}

func (g *Game) openLayoutDialog() error {
	path, err := g.pickLayout()
	if err != nil || path == "" {
		return err
	}
	return g.loadLayout(path)
}

func (g *Game) loadLayout(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	table, err := layout.LoadTable(f, g.scene.Composer().Resolver().Table())
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := g.scene.ReplaceTable(table); err != nil {
		return err
	}
	g.log.Info("layout loaded", log.String("path", path))
	return nil
}

func selectLayoutFile() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Layout Table"),
		zenity.FileFilters{{
			Name:     "Layout",
			Patterns: []string{"*.yaml", "*.yml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return filename, nil
}
