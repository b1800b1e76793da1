package game

import (
	"fmt"
	"image/color"
	"math"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/celestial-scene/internal/anim"
	"github.com/iburimskiy/celestial-scene/internal/config"
	"github.com/iburimskiy/celestial-scene/internal/scene"
)

// Mesh sizes in world units before entity scaling
const (
	starRadius     = 0.05
	sunRadius      = 1.0
	moonRadius     = 1.0
	avatarHeight   = 2.0
	textPanelUnits = 16.0
	trackThickness = 0.05

	sunSpokes = 12

	// debug font cell
	charWidth  = 6
	lineHeight = 16
)

func (g *Game) Draw(screen *ebiten.Image) {
	light := g.scene.Lighting()
	g.drawBackground(screen, light)

	view := g.view()
	g.scene.Composer().Each(func(e *scene.Entity) {
		if e.Hidden {
			return
		}
		switch e.Kind {
		case scene.KindStar:
			g.drawStar(screen, view, e)
		case scene.KindCelestial:
			g.drawSun(screen, view, e, light)
		case scene.KindMoon:
			g.drawMoon(screen, view, e, light)
		case scene.KindAvatar:
			g.drawAvatar(screen, view, e, light)
		case scene.KindSocialIcon:
			g.drawIcon(screen, view, e)
		case scene.KindSlider:
			g.drawSlider(screen, view, e)
		case scene.KindText:
			g.drawText(screen, view, e)
		case scene.KindNavButton:
			g.drawNavButton(screen, e)
		}
	})

	g.drawHUD(screen)
}

func (g *Game) drawBackground(screen *ebiten.Image, light anim.Lighting) {
	const bands = 32
	bandHeight := float64(g.height) / bands
	for i := 0; i < bands; i++ {
		ratio := float64(i) / bands
		v := (0.03 + 0.14*light.Background) * (1 - 0.6*ratio)
		vector.DrawFilledRect(screen, 0, float32(float64(i)*bandHeight), float32(g.width), float32(bandHeight+1), hsva(235, 0.55, v, 1), false)
	}
}

func (g *Game) drawStar(screen *ebiten.Image, view scene.View, e *scene.Entity) {
	x, y, depth, ok := view.Point(e.Pose.Position)
	if !ok {
		return
	}
	r := math.Max(0.6, math.Min(3, view.Size(starRadius*e.Pose.Scale.X, depth)))
	c := hsva(config.GlowHue, 0.25, 0.3+0.5*e.Pose.Emissive, e.Pose.Opacity)
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), c, true)
}

func (g *Game) drawSun(screen *ebiten.Image, view scene.View, e *scene.Entity, light anim.Lighting) {
	x, y, depth, ok := view.Point(e.Pose.Position)
	if !ok {
		return
	}
	r := view.Size(sunRadius*e.Pose.Scale.X, depth)
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r*1.3), hsva(35, 0.6, 0.9, 0.15*light.Key), true)
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), hsva(40, 0.7, 0.6+light.Key, 1), true)

	spin := e.Pose.Rotation.Y
	for i := 0; i < sunSpokes; i++ {
		a := spin + float64(i)*2*math.Pi/sunSpokes
		cos, sin := math.Cos(a), math.Sin(a)
		vector.StrokeLine(screen,
			float32(x+cos*r*1.15), float32(y+sin*r*1.15),
			float32(x+cos*r*1.5), float32(y+sin*r*1.5),
			2, hsva(45, 0.6, 1, 0.6), true)
	}
}

func (g *Game) drawMoon(screen *ebiten.Image, view scene.View, e *scene.Entity, light anim.Lighting) {
	x, y, depth, ok := view.Point(e.Pose.Position)
	if !ok {
		return
	}
	// outer shells first
	for i := len(e.Pose.Layers) - 1; i >= 0; i-- {
		l := e.Pose.Layers[i]
		r := float32(view.Size(moonRadius*e.Pose.Scale.X*l.Scale, depth))
		var c color.Color
		if l.Name == anim.LayerMoonCore {
			c = hsva(220, 0.08, 0.45+0.4*light.Ambient, l.Opacity)
		} else {
			c = hsva(config.GlowHue, 0.7, 1, l.Opacity)
		}
		vector.DrawFilledCircle(screen, float32(x), float32(y), r, c, true)
	}
	// terminator shading rotates with the moon's spin
	core, _ := e.Pose.Layer(anim.LayerMoonCore)
	r := view.Size(moonRadius*e.Pose.Scale.X*core.Scale, depth)
	shift := math.Sin(e.Pose.Rotation.Y) * r * 0.35
	vector.DrawFilledCircle(screen, float32(x+shift), float32(y), float32(r*0.8), hsva(230, 0.2, 0.25, 0.35), true)
}

func (g *Game) drawAvatar(screen *ebiten.Image, view scene.View, e *scene.Entity, light anim.Lighting) {
	x, y, depth, ok := view.Point(e.Pose.Position)
	if !ok {
		return
	}
	h := view.Size(avatarHeight*e.Pose.Scale.Y, depth)
	squash := math.Max(0.2, math.Abs(math.Cos(e.Pose.Rotation.Y)))
	if img, ok := g.sprites[e.ID]; ok && e.Status == scene.StatusLive {
		drawSprite(screen, img, x, y, h, squash, e.Pose.Opacity)
		return
	}
	// placeholder figure
	body := hsva(config.GlowHue, 0.4, 0.35+0.3*light.Ambient, 0.9)
	head := float32(h * 0.16)
	w := float32(h * 0.35 * squash)
	vector.DrawFilledCircle(screen, float32(x), float32(y-h*0.3), head, body, true)
	vector.DrawFilledRect(screen, float32(x)-w/2, float32(y-h*0.1), w, float32(h*0.55), body, true)
}

func (g *Game) drawIcon(screen *ebiten.Image, view scene.View, e *scene.Entity) {
	x, y, depth, ok := view.Point(e.Pose.Position)
	if !ok {
		return
	}
	side := view.Size(anim.IconBox.X*e.Pose.Scale.X, depth)
	if img, ok := g.sprites[e.ID]; ok && e.Status == scene.StatusLive {
		drawSprite(screen, img, x, y, side, math.Cos(e.Pose.Rotation.Y), e.Pose.Opacity)
		return
	}
	w := side * math.Max(0.3, math.Cos(e.Pose.Rotation.Y))
	fill := hsva(config.GlowHue, 0.6, 0.35+0.5*e.Pose.Emissive, 0.9)
	vector.DrawFilledRect(screen, float32(x-w/2), float32(y-side/2), float32(w), float32(side), fill, true)
	vector.StrokeRect(screen, float32(x-w/2), float32(y-side/2), float32(w), float32(side), 1, hsva(config.GlowHue, 0.3, 1, 0.8), true)
	if e.Constants.Label != "" {
		ebitenutil.DebugPrintAt(screen, e.Constants.Label[:1], int(x)-charWidth/2, int(y)-lineHeight/2)
	}
}

func (g *Game) drawSlider(screen *ebiten.Image, view scene.View, e *scene.Entity) {
	tr, ok := view.SliderTrack(e)
	if !ok {
		return
	}
	_, _, depth, _ := view.Point(e.Pose.Position)
	track, _ := e.Pose.Layer(anim.LayerTrack)
	knob, _ := e.Pose.Layer(anim.LayerKnob)

	// the visible track overhangs the knob travel
	over := (tr.X1 - tr.X0) * (1/anim.KnobTravel - 1) / 2
	thick := math.Max(2, view.Size(trackThickness*e.Pose.Scale.X, depth))
	vector.StrokeLine(screen, float32(tr.X0-over), float32(tr.Y), float32(tr.X1+over), float32(tr.Y), float32(thick),
		hsva(config.GlowHue, 0.5, 0.3+track.Emissive, track.Opacity), true)

	kx, ky, kd, ok := view.Point(e.Pose.Position.Add(knob.Offset))
	if ok {
		kr := view.Size(knob.Scale*e.Pose.Scale.X, kd)
		vector.DrawFilledCircle(screen, float32(kx), float32(ky), float32(kr), hsva(config.GlowHue, 0.8, 0.5+knob.Emissive, knob.Opacity), true)
	}

	label := e.Constants.Label
	if p, ok := g.scene.Store().Get(e.Constants.Parameter); ok {
		label = fmt.Sprintf("%s: %.2f", label, p.Get())
		if names := g.scene.Store().Names(); len(names) > 0 && names[g.selected%len(names)] == p.Name() {
			label = "> " + label
		}
	}
	ebitenutil.DebugPrintAt(screen, label, int(tr.X0-over), int(tr.Y)-2*lineHeight)
}

func (g *Game) drawText(screen *ebiten.Image, view scene.View, e *scene.Entity) {
	x, y, depth, ok := view.Point(e.Pose.Position)
	if !ok {
		return
	}
	cols := int(view.Size(textPanelUnits*e.Pose.Scale.X, depth) / charWidth)
	cols = max(16, min(80, cols))
	lines := scene.WrapText(e.Constants.Label, cols)

	for _, l := range scene.TextBlock(g.scene.Config().TextAnchor, x, y, lines, charWidth, lineHeight) {
		ebitenutil.DebugPrintAt(screen, l.Text, int(l.X), int(l.Y))
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	stats := g.scene.LastStats()
	elapsed := time.Duration(g.scene.Elapsed() * float64(time.Second))

	parts := []string{
		formatDuration(elapsed),
		g.scene.Class().String(),
		fmt.Sprintf("%d entities", stats.Evaluated),
		fmt.Sprintf("%.0f fps", ebiten.ActualFPS()),
		fmt.Sprintf("orbit %.1f @ %.0fdeg", g.orbit.Distance(), g.orbit.Azimuth()*180/math.Pi),
	}
	if stats.Failed > 0 {
		parts = append(parts, fmt.Sprintf("%d failing", stats.Failed))
	}
	if g.scene.Paused() {
		parts = append(parts, "paused")
	}
	status := strings.Join(parts, " | ")
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)

	if g.audio != nil {
		level := g.audio.Level()
		vector.DrawFilledRect(screen, 12, 34, 80, 4, color.RGBA{R: 20, G: 25, B: 35, A: 200}, false)
		vector.DrawFilledRect(screen, 12, 34, float32(80*level), 4, hsva(config.GlowHue, 0.8, 0.9, 1), false)
	}
}
