package game

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/celestial-scene/internal/anim"
	"github.com/iburimskiy/celestial-scene/internal/clock"
	"github.com/iburimskiy/celestial-scene/internal/layout"
	"github.com/iburimskiy/celestial-scene/internal/log"
	"github.com/iburimskiy/celestial-scene/internal/param"
	"github.com/iburimskiy/celestial-scene/internal/scene"
	"github.com/iburimskiy/celestial-scene/internal/stars"
	"github.com/iburimskiy/celestial-scene/internal/vmath"
)

func newTestGame(t *testing.T, sprites map[string]string) *Game {
	t.Helper()
	resolver, err := layout.NewResolver(layout.DefaultTable())
	require.NoError(t, err)
	store, err := param.NewStore(param.DefaultSpecs())
	require.NoError(t, err)
	s := scene.New(resolver, store, clock.New(0), stars.NewGenerator("game"), log.Nop(), scene.Options{Width: 1200, Height: 800})
	return New(s, log.Nop(), Options{Width: 1200, Height: 800, Sprites: sprites})
}

func TestLayoutReportsResize(t *testing.T) {
	g := newTestGame(t, nil)

	w, h := g.Layout(500, 900)
	assert.Equal(t, [2]int{500, 900}, [2]int{w, h})
	assert.Equal(t, layout.Mobile, g.scene.Class())
	vw, vh := g.scene.Viewport()
	assert.Equal(t, [2]int{500, 900}, [2]int{vw, vh})

	w, h = g.Layout(0, 0)
	assert.Equal(t, [2]int{500, 900}, [2]int{w, h})
}

func TestNudgeSelectedParameter(t *testing.T) {
	g := newTestGame(t, nil)
	glow, _ := g.scene.Store().Get(param.Glow)
	dark, _ := g.scene.Store().Get(param.Darkness)

	require.NoError(t, g.nudge(1))
	assert.InDelta(t, 0.81, glow.Get(), 1e-9)

	g.selected = nextIndex(g.selected, 2)
	require.NoError(t, g.nudge(-1))
	assert.InDelta(t, 0.29, dark.Get(), 1e-9)

	assert.Equal(t, 0, nextIndex(1, 2))
	assert.Equal(t, 0, nextIndex(3, 0))
}

func TestValueAt(t *testing.T) {
	p, err := param.New(param.Glow, 0.1, 2.5, 0.01, 0.8)
	require.NoError(t, err)
	tr := scene.Track{X0: 100, X1: 300, Travel: 2}

	assert.InDelta(t, 0.1, valueAt(p, tr, 100), 1e-9)
	assert.InDelta(t, 1.3, valueAt(p, tr, 200), 1e-9)
	assert.InDelta(t, 2.5, valueAt(p, tr, 1000), 1e-9)
	assert.InDelta(t, 0.8, valueAt(p, scene.Track{}, 50), 1e-9)
}

func TestNavBox(t *testing.T) {
	x, y, size := navBox(1200, 800)
	assert.Equal(t, 1200.0-100-24, x)
	assert.Equal(t, 800.0-100-24, y)
	assert.True(t, inRect(x+1, y+1, x, y, size, size))
	assert.False(t, inRect(x-1, y, x, y, size, size))
}

func TestNavFrameCentersButton(t *testing.T) {
	g := newTestGame(t, nil)
	_, err := g.scene.OnFrame(g.now())
	require.NoError(t, err)
	e, ok := g.scene.Composer().Entity(scene.IDNavButton)
	require.True(t, ok)

	x, y, size := navBox(g.width, g.height)
	pose := e.Pose
	pose.Position = vmath.Vec3{}
	f := newNavFrame(pose, x, y, size)
	cx, cy, ok := f.point(vmath.Vec3{})
	require.True(t, ok)
	assert.InDelta(t, x+size/2, cx, 1e-6)
	assert.InDelta(t, y+size/2, cy, 1e-6)

	// the ring stays inside the box
	rx, _, ok := f.point(vmath.V3(anim.RingRadius*(1+anim.RingPulseWidth), 0, 0))
	require.True(t, ok)
	assert.Less(t, rx, x+size)
	assert.Greater(t, f.radius(1), float32(0))
}

func TestRotateTurnsOrbit(t *testing.T) {
	g := newTestGame(t, nil)
	g.view()

	g.rotate(200, 0)
	for i := 0; i < 600; i++ {
		g.orbit.Update(1.0 / 60)
	}
	assert.InDelta(t, -math.Pi/2, g.orbit.Azimuth(), 1e-6)
	assert.InDelta(t, g.scene.Config().Camera.Position.Z, g.orbit.Distance(), 1e-9)
}

func TestTogglePauseAfterClose(t *testing.T) {
	g := newTestGame(t, nil)
	require.NoError(t, g.togglePause())
	assert.True(t, g.scene.Paused())
	require.NoError(t, g.togglePause())
	assert.False(t, g.scene.Paused())

	require.NoError(t, g.scene.Close())
	assert.ErrorIs(t, g.togglePause(), scene.ErrClosed)
	assert.ErrorIs(t, g.nudge(1), scene.ErrClosed)
}

func TestLayoutDialogLoadsTable(t *testing.T) {
	g := newTestGame(t, nil)
	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte("desktop:\n  star_count: 50\n"), 0o600))

	g.pickLayout = func() (string, error) { return path, nil }
	require.NoError(t, g.openLayoutDialog())
	assert.Len(t, g.scene.Composer().Stars(), 50)

	g.pickLayout = func() (string, error) { return "", nil }
	assert.NoError(t, g.openLayoutDialog())

	boom := errors.New("no display")
	g.pickLayout = func() (string, error) { return "", boom }
	assert.ErrorIs(t, g.openLayoutDialog(), boom)

	g.pickLayout = func() (string, error) { return filepath.Join(t.TempDir(), "missing.yaml"), nil }
	assert.Error(t, g.openLayoutDialog())
}

func TestMissingSpriteMarksUnavailable(t *testing.T) {
	g := newTestGame(t, map[string]string{scene.IDAvatar: filepath.Join(t.TempDir(), "nope.png")})

	assert.Empty(t, g.sprites)
	e, ok := g.scene.Composer().Entity(scene.IDAvatar)
	require.True(t, ok)
	assert.Equal(t, scene.StatusUnavailable, e.Status)
	assert.Error(t, e.Err)
}
