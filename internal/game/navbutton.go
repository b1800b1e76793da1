package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/celestial-scene/internal/anim"
	"github.com/iburimskiy/celestial-scene/internal/config"
	"github.com/iburimskiy/celestial-scene/internal/scene"
	"github.com/iburimskiy/celestial-scene/internal/vmath"
)

const ringSegments = 48

// navBox is the navigation button viewport, anchored bottom-right
func navBox(width, height int) (x, y, size float64) {
	size = config.NavButtonSize
	x = float64(width) - size - config.ButtonMargin
	y = float64(height) - size - config.ButtonMargin
	return x, y, size
}

func inRect(px, py, x, y, w, h float64) bool {
	return px >= x && px <= x+w && py >= y && py <= y+h
}

// navFrame projects points of the button mesh into its screen box
type navFrame struct {
	pose   anim.Pose
	view   scene.View
	x, y   float64
	scale  float64
	bright float64
}

func newNavFrame(pose anim.Pose, x, y, size float64) navFrame {
	return navFrame{
		pose:   pose,
		view:   scene.NewView(anim.NavCamera, int(size), int(size)),
		x:      x,
		y:      y,
		scale:  size / anim.NavUnitPx * pose.Scale.X,
		bright: 1,
	}
}

// point maps a local mesh point, already in the group frame, to the screen
func (f navFrame) point(local vmath.Vec3) (float64, float64, bool) {
	world := f.pose.Position.Add(local.Scale(f.scale).Rotate(f.pose.Rotation))
	px, py, _, ok := f.view.Point(world)
	return f.x + px, f.y + py, ok
}

// radius is a mesh length at the button center, in pixels
func (f navFrame) radius(length float64) float32 {
	return float32(f.view.Size(length*f.scale, anim.NavCamera.Position.Z))
}

func (g *Game) drawNavButton(screen *ebiten.Image, e *scene.Entity) {
	bx, by, size := navBox(g.width, g.height)
	f := newNavFrame(e.Pose, bx, by, size)
	switch {
	case g.buttonPressed:
		f.bright = 0.8
	case g.buttonHovered:
		f.bright = 1.3
	}

	cx, cy, ok := f.point(vmath.Vec3{})
	if !ok {
		return
	}
	for _, name := range []string{anim.LayerNavField, anim.LayerNavCore} {
		l, _ := e.Pose.Layer(name)
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), f.radius(l.Scale), hsva(config.GlowHue, 1, f.bright, l.Opacity*f.bright), true)
	}

	ring, _ := e.Pose.Layer(anim.LayerRing)
	f.drawRing(screen, ring)

	swirl, _ := e.Pose.Layer(anim.LayerSwirl)
	dot := max(1.5, f.radius(anim.SwirlDot))
	for i := 0; i < anim.SwirlCount; i++ {
		if px, py, ok := f.point(anim.SwirlPoint(i).Rotate(swirl.Rotation)); ok {
			vector.DrawFilledCircle(screen, float32(px), float32(py), dot, hsva(config.GlowHue, 0.9, swirl.Emissive*f.bright, swirl.Opacity), true)
		}
	}

	shaft, _ := e.Pose.Layer(anim.LayerShaft)
	f.drawShaft(screen, shaft)
	head, _ := e.Pose.Layer(anim.LayerHead)
	f.drawHead(screen, head)
}

func (f navFrame) drawRing(screen *ebiten.Image, l anim.Layer) {
	r := anim.RingRadius * l.Scale
	c := hsva(config.GlowHue, 1, f.bright, l.Opacity)
	var px, py float64
	for i := 0; i <= ringSegments; i++ {
		a := float64(i) / ringSegments * 2 * math.Pi
		x, y, ok := f.point(vmath.V3(math.Cos(a)*r, math.Sin(a)*r, 0).Rotate(l.Rotation))
		if ok && i > 0 {
			vector.StrokeLine(screen, float32(px), float32(py), float32(x), float32(y), 2, c, true)
		}
		px, py = x, y
	}
}

func (f navFrame) drawShaft(screen *ebiten.Image, l anim.Layer) {
	half := anim.ShaftLength * l.Scale / 2
	x0, y0, ok0 := f.point(l.Offset.Add(vmath.V3(0, -half, 0)))
	x1, y1, ok1 := f.point(l.Offset.Add(vmath.V3(0, half, 0)))
	if !ok0 || !ok1 {
		return
	}
	w := max(2, 2*f.radius(anim.ShaftRadius*l.Scale))
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), w, hsva(config.GlowHue, 1, (0.6+l.Emissive)*f.bright, 1), true)
}

func (f navFrame) drawHead(screen *ebiten.Image, l anim.Layer) {
	r := anim.HeadRadius * l.Scale
	half := anim.HeadLength * l.Scale * anim.HeadStretch / 2
	corners := [3]vmath.Vec3{
		l.Offset.Add(vmath.V3(0, half, 0)),
		l.Offset.Add(vmath.V3(-r, -half, 0)),
		l.Offset.Add(vmath.V3(r, -half, 0)),
	}
	var xs, ys [3]float32
	for i, c := range corners {
		x, y, ok := f.point(c)
		if !ok {
			return
		}
		xs[i], ys[i] = float32(x), float32(y)
	}
	c := hsva(config.GlowHue, 0.3, (0.5+l.Emissive)*f.bright, 1)
	for i := range corners {
		j := (i + 1) % len(corners)
		vector.StrokeLine(screen, xs[i], ys[i], xs[j], ys[j], 2, c, true)
	}
	// barb from the tip to the base center
	vector.StrokeLine(screen, xs[0], ys[0], (xs[1]+xs[2])/2, (ys[1]+ys[2])/2, 2, c, true)
}
