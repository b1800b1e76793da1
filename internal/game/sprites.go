package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/iburimskiy/celestial-scene/internal/log"
)

// loadSprites decodes the configured images; failures mark the entity unavailable
// and it falls back to its placeholder shape
func (g *Game) loadSprites(paths map[string]string) map[string]*ebiten.Image {
	out := make(map[string]*ebiten.Image, len(paths))
	for id, path := range paths {
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			g.report(g.scene.MarkUnavailable(id, err))
			continue
		}
		out[id] = img
		g.log.Debug("sprite loaded", log.String("entity", id), log.String("path", path))
	}
	return out
}

// drawSprite fits img into a box of height h centered at (cx, cy);
// squash narrows it horizontally to fake a yaw
func drawSprite(screen, img *ebiten.Image, cx, cy, h, squash, alpha float64) {
	b := img.Bounds()
	if b.Dy() == 0 || h <= 0 {
		return
	}
	s := h / float64(b.Dy())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Scale(s*squash, s)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}
