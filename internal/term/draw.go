package term

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/celestial-scene/internal/anim"
	"github.com/iburimskiy/celestial-scene/internal/config"
	"github.com/iburimskiy/celestial-scene/internal/scene"
)

const (
	cellW = float64(config.CellWidthPx)
	cellH = float64(config.CellHeightPx)

	starRadius = 0.05
	moonRadius = 1.0
	sunRadius  = 1.0
	textPanel  = 16.0
)

func (h *Host) draw() {
	light := h.scene.Lighting()
	bg := gray(0.02 + 0.12*light.Background)
	base := tcell.StyleDefault.Background(bg)
	h.screen.Fill(' ', base)

	view := scene.NewView(h.orbit.Camera(h.scene.Config()), h.cols*config.CellWidthPx, h.rows*config.CellHeightPx)
	h.scene.Composer().Each(func(e *scene.Entity) {
		if e.Hidden {
			return
		}
		if e.Kind == scene.KindNavButton {
			h.drawNavButton(e, base)
			return
		}
		x, y, depth, ok := view.Point(e.Pose.Position)
		if !ok {
			return
		}
		switch e.Kind {
		case scene.KindStar:
			r := view.Size(starRadius*e.Pose.Scale.X, depth)
			h.put(x, y, starGlyph(r), base.Foreground(glow(0.3+0.5*e.Pose.Emissive)))
		case scene.KindCelestial:
			h.disc(x, y, view.Size(sunRadius*e.Pose.Scale.X, depth), '@', base.Foreground(tcell.NewRGBColor(255, 200, 90)))
		case scene.KindMoon:
			outer := view.Size(moonRadius*e.Pose.Scale.X*anim.MoonOuterScale, depth)
			h.disc(x, y, outer, '·', base.Foreground(glow(0.4)))
			h.disc(x, y, view.Size(moonRadius*e.Pose.Scale.X*anim.MoonCoreScale, depth), 'O', base.Foreground(gray(0.55+0.4*light.Ambient)))
		case scene.KindAvatar:
			h.text(x, y, "(^_^)", base.Foreground(glow(0.8)).Bold(true), true)
		case scene.KindSocialIcon:
			label := "?"
			if e.Constants.Label != "" {
				label = e.Constants.Label[:1]
			}
			h.text(x, y, "["+label+"]", base.Foreground(glow(0.35+0.5*e.Pose.Emissive)), true)
		case scene.KindSlider:
			h.drawSlider(view, e, base)
		case scene.KindText:
			cols := int(view.Size(textPanel*e.Pose.Scale.X, depth) / cellW)
			cols = max(16, min(80, cols, h.cols-2))
			lines := scene.WrapText(e.Constants.Label, cols)
			for _, l := range scene.TextBlock(h.scene.Config().TextAnchor, x, y, lines, cellW, cellH) {
				h.text(l.X, l.Y, l.Text, base.Foreground(gray(0.9)), false)
			}
		}
	})

	h.drawHUD(base)
	h.screen.Show()
}

func (h *Host) drawSlider(view scene.View, e *scene.Entity, base tcell.Style) {
	tr, ok := view.SliderTrack(e)
	if !ok {
		return
	}
	track := base.Foreground(glow(0.5))
	for x := tr.X0; x <= tr.X1; x += cellW {
		h.put(x, tr.Y, '─', track)
	}
	if knob, ok := e.Pose.Layer(anim.LayerKnob); ok {
		if kx, _, _, ok := view.Point(e.Pose.Position.Add(knob.Offset)); ok {
			h.put(kx, tr.Y, '●', base.Foreground(glow(0.5+knob.Emissive)))
		}
	}
	label := e.Constants.Label
	if p, ok := h.scene.Store().Get(e.Constants.Parameter); ok {
		label = fmt.Sprintf("%s: %.2f", label, p.Get())
		if p.Name() == h.selectedName() {
			label = "> " + label
		}
	}
	h.text(tr.X0, tr.Y-cellH, label, base.Foreground(gray(0.85)), false)
}

// ringGlyphs flank the button face and turn with the glow ring
var ringGlyphs = [...]rune{'|', '/', '-', '\\'}

const navLabel = " About » "

// drawNavButton anchors the button above the help line, right-aligned
func (h *Host) drawNavButton(e *scene.Entity, base tcell.Style) {
	ring, _ := e.Pose.Layer(anim.LayerRing)
	head, _ := e.Pose.Layer(anim.LayerHead)
	turn := int(math.Floor(ring.Rotation.Z/(math.Pi/4))) % len(ringGlyphs)
	g := string(ringGlyphs[turn])

	face := g + navLabel + g
	col := h.cols - len([]rune(face)) - 1
	row := h.navRow()
	if e.Pose.Position.Y > anim.NavBobHeight/2 {
		row--
	}
	h.textCell(col, row, face, base.Foreground(glow(0.4+0.5*head.Emissive)).Bold(true))
}

// navRow is the row the button face sits on at rest
func (h *Host) navRow() int {
	return h.rows - 3
}

func (h *Host) drawHUD(base tcell.Style) {
	stats := h.scene.LastStats()
	elapsed := time.Duration(h.scene.Elapsed() * float64(time.Second)).Truncate(time.Second)
	parts := []string{
		elapsed.String(),
		h.scene.Class().String(),
		fmt.Sprintf("%d entities", stats.Evaluated),
		fmt.Sprintf("orbit %.1f @ %.0fdeg", h.orbit.Distance(), h.orbit.Azimuth()*180/math.Pi),
	}
	if h.scene.Paused() {
		parts = append(parts, "paused")
	}
	if h.lastErr != nil {
		parts = append(parts, "error: "+h.lastErr.Error())
	}
	h.textCell(0, 0, strings.Join(parts, " | "), base.Foreground(gray(0.7)))
	h.textCell(0, h.rows-1, "+/- glow  [/] darkness  tab/arrows select  z/x zoom  hjkl orbit  space pause  n/enter about  q quit", base.Foreground(gray(0.5)))
}

// put draws r at the cell covering pixel (x, y)
func (h *Host) put(x, y float64, r rune, style tcell.Style) {
	cx, cy := cellAt(x, y)
	if cx < 0 || cy < 0 || cx >= h.cols || cy >= h.rows {
		return
	}
	h.screen.SetContent(cx, cy, r, nil, style)
}

// text writes s starting at pixel (x, y), centered on x when center is set
func (h *Host) text(x, y float64, s string, style tcell.Style, center bool) {
	if center {
		x -= float64(len([]rune(s))) * cellW / 2
	}
	cx, cy := cellAt(x, y)
	h.textCell(cx, cy, s, style)
}

func (h *Host) textCell(cx, cy int, s string, style tcell.Style) {
	if cy < 0 || cy >= h.rows {
		return
	}
	for i, r := range []rune(s) {
		if x := cx + i; x >= 0 && x < h.cols {
			h.screen.SetContent(x, cy, r, nil, style)
		}
	}
}

// disc fills the cells within radius pixels of (x, y)
func (h *Host) disc(x, y, radius float64, r rune, style tcell.Style) {
	if radius < cellW/2 {
		h.put(x, y, r, style)
		return
	}
	for py := y - radius; py <= y+radius; py += cellH {
		for px := x - radius; px <= x+radius; px += cellW {
			if math.Hypot(px-x, py-y) <= radius {
				h.put(px, py, r, style)
			}
		}
	}
}

func cellAt(x, y float64) (int, int) {
	return int(math.Floor(x / cellW)), int(math.Floor(y / cellH))
}

// starGlyph picks a glyph by projected size in pixels
func starGlyph(radius float64) rune {
	switch {
	case radius >= 2:
		return '*'
	case radius >= 1:
		return '+'
	default:
		return '.'
	}
}

func gray(v float64) tcell.Color {
	c := int32(clamp01(v) * 255)
	return tcell.NewRGBColor(c, c, c)
}

// glow is the scene's cyan at brightness v
func glow(v float64) tcell.Color {
	v = clamp01(v)
	return tcell.NewRGBColor(int32(60*v), int32(210*v), int32(255*v))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
