package scene

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/iburimskiy/celestial-scene/internal/anim"
	"github.com/iburimskiy/celestial-scene/internal/clock"
	"github.com/iburimskiy/celestial-scene/internal/layout"
	"github.com/iburimskiy/celestial-scene/internal/log"
	"github.com/iburimskiy/celestial-scene/internal/param"
	"github.com/iburimskiy/celestial-scene/internal/stars"
)

var epoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func at(seconds float64) time.Time {
	return epoch.Add(time.Duration(seconds * float64(time.Second)))
}

type fixture struct {
	scene *Scene
	logs  *observer.ObservedLogs
	nav   []string
}

func newFixture(t *testing.T, width, workers int) *fixture {
	t.Helper()
	resolver, err := layout.NewResolver(layout.DefaultTable())
	require.NoError(t, err)
	store, err := param.NewStore(param.DefaultSpecs())
	require.NoError(t, err)

	core, logs := observer.New(zapcore.DebugLevel)
	f := &fixture{logs: logs}
	f.scene = New(resolver, store, clock.New(0), stars.NewGenerator("test"), log.FromZap(zap.New(core)), Options{
		Width:    width,
		Workers:  workers,
		Navigate: func(target string) { f.nav = append(f.nav, target) },
	})
	return f
}

func (f *fixture) entity(t *testing.T, id string) *Entity {
	t.Helper()
	e, ok := f.scene.Composer().Entity(id)
	require.True(t, ok, id)
	return e
}

func TestMountDesktop(t *testing.T) {
	f := newFixture(t, 1200, 1)
	s := f.scene

	assert.Equal(t, layout.Desktop, s.Class())
	assert.Len(t, s.Composer().Stars(), 900)
	assert.Len(t, s.Composer().Persistent(), 4+len(DefaultSocialLinks)+3)
	assert.NotEmpty(t, s.ID())
	assert.False(t, f.entity(t, IDGlowSlider).Hidden)
}

func TestMoonEndToEnd(t *testing.T) {
	f := newFixture(t, 1200, 1)
	s := f.scene

	_, err := s.OnFrame(at(0))
	require.NoError(t, err)
	stats, err := s.OnFrame(at(1))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, stats.Frame.Elapsed, 1e-9)

	moon := f.entity(t, IDMoon)
	base := s.Config().Positions.Moon
	assert.InDelta(t, base.Y+math.Sin(1.0*0.2)*0.8, moon.Pose.Position.Y, 1e-9)
	assert.InDelta(t, base.X+math.Cos(1.0*0.1)*0.5, moon.Pose.Position.X, 1e-9)
}

func TestFrameEvaluatesEveryLiveEntity(t *testing.T) {
	f := newFixture(t, 1200, 1)
	stats, err := f.scene.OnFrame(at(0))
	require.NoError(t, err)
	assert.Equal(t, f.scene.Composer().Len(), stats.Evaluated)
	assert.Zero(t, stats.Failed)
	assert.Zero(t, stats.Skipped)
}

func TestSlidersHiddenOnMobile(t *testing.T) {
	f := newFixture(t, 400, 1)
	assert.True(t, f.entity(t, IDGlowSlider).Hidden)
	assert.True(t, f.entity(t, IDDarknessSlider).Hidden)

	stats, err := f.scene.OnFrame(at(0))
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Skipped)
	assert.Len(t, f.scene.Composer().Stars(), 400)
}

func TestResizePreservesIdentityAndPhase(t *testing.T) {
	f := newFixture(t, 400, 1)
	s := f.scene

	avatar := f.entity(t, IDAvatar)
	icon := f.entity(t, "social-2")
	sun := f.entity(t, IDSun)

	_, _ = s.OnFrame(at(0))
	for i := 1; i <= 30; i++ {
		_, _ = s.OnFrame(at(float64(i) * 0.05))
	}
	spinBefore := sun.Spin()
	require.Greater(t, spinBefore, 0.0)

	require.NoError(t, s.OnResize(1200, 800))
	assert.Equal(t, layout.Desktop, s.Class())

	// same pointers after the switch
	assert.Same(t, avatar, f.entity(t, IDAvatar))
	assert.Same(t, icon, f.entity(t, "social-2"))
	assert.Equal(t, 3.0, avatar.Placement.Scale.X)
	assert.Equal(t, s.Config().SocialIconPosition(2), icon.Placement.Base)
	assert.Len(t, s.Composer().Stars(), 900)
	assert.False(t, f.entity(t, IDGlowSlider).Hidden)

	_, _ = s.OnFrame(at(1.55))
	tm := 1.55
	assert.InDelta(t, s.Config().Positions.Avatar.Y+math.Sin(tm*0.8)*0.1, avatar.Pose.Position.Y, 1e-9)
	assert.InDelta(t, 0.26+math.Sin(tm*0.3)*0.8, avatar.Pose.Rotation.Y, 1e-9)
	assert.InDelta(t, 3.0, avatar.Pose.Scale.X, 1e-12)
	assert.Greater(t, sun.Spin(), spinBefore, "celestial spin keeps accumulating")
	assert.Equal(t, s.Config().Scales.Sun, sun.Pose.Scale)
}

func TestResizeWithinClassIsNoop(t *testing.T) {
	f := newFixture(t, 1100, 1)
	starsBefore := f.scene.Composer().Stars()

	require.NoError(t, f.scene.OnResize(1500, 900))
	assert.Equal(t, layout.Desktop, f.scene.Class())
	assert.Equal(t, starsBefore, f.scene.Composer().Stars())
	w, h := f.scene.Viewport()
	assert.Equal(t, 1500, w)
	assert.Equal(t, 900, h)
}

func TestResizeRegeneratesStars(t *testing.T) {
	f := newFixture(t, 1200, 1)
	require.NoError(t, f.scene.OnResize(700, 600))
	assert.Len(t, f.scene.Composer().Stars(), 600)
	require.NoError(t, f.scene.OnResize(2000, 1200))
	assert.Len(t, f.scene.Composer().Stars(), 1200)
	require.NoError(t, f.scene.OnResize(-1, 0))
	assert.Equal(t, layout.Mobile, f.scene.Class())
	assert.Len(t, f.scene.Composer().Stars(), 400)
}

func TestParameterVisibleNextFrame(t *testing.T) {
	f := newFixture(t, 1200, 1)
	s := f.scene
	_, _ = s.OnFrame(at(0))

	require.NoError(t, s.SetParameter(param.Glow, 2.0))
	_, _ = s.OnFrame(at(0.016))

	icon := f.entity(t, "social-0")
	assert.InDelta(t, 0.08+2.0*0.80, icon.Pose.Emissive, 1e-12)

	moon := f.entity(t, IDMoon)
	inner, ok := moon.Pose.Layer(anim.LayerMoonInner)
	require.True(t, ok)
	assert.InDelta(t, 0.15+2.0*0.06, inner.Opacity, 1e-12)

	require.NoError(t, s.SetParameter(param.Glow, 99))
	assert.Equal(t, 2.5, s.Store().Snapshot().Glow)
	assert.ErrorIs(t, s.SetParameter("nope", 1), param.ErrUnknownParameter)
}

func TestSliderKnobFollowsParameter(t *testing.T) {
	f := newFixture(t, 1200, 1)
	s := f.scene
	require.NoError(t, s.SetParameter(param.Darkness, 2))
	_, _ = s.OnFrame(at(0))

	slider := f.entity(t, IDDarknessSlider)
	knob, ok := slider.Pose.Layer(anim.LayerKnob)
	require.True(t, ok)
	want := 0.5 * anim.TrackWidth(s.Config().Scales.Slider) * anim.KnobTravel
	assert.InDelta(t, want, knob.Offset.X, 1e-12)
}

func TestPanickingEntityIsIsolated(t *testing.T) {
	f := newFixture(t, 1200, 1)
	s := f.scene

	text := f.entity(t, IDText)
	text.animate = func(*Entity, Input) anim.Pose { panic("font exploded") }

	_, _ = s.OnFrame(at(0))
	stats, err := s.OnFrame(at(0.5))
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Failed)
	assert.Equal(t, s.Composer().Len()-1, stats.Evaluated)

	moon := f.entity(t, IDMoon)
	assert.InDelta(t, s.Config().Positions.Moon.Y+math.Sin(0.1)*0.8, moon.Pose.Position.Y, 1e-9)

	warnings := f.logs.FilterMessage("entity update skipped").All()
	require.Len(t, warnings, 1, "a failure streak is logged once")
	assert.Equal(t, IDText, warnings[0].ContextMap()["entity"])
}

func TestNonFinitePoseIsRejected(t *testing.T) {
	f := newFixture(t, 1200, 1)
	s := f.scene

	avatar := f.entity(t, IDAvatar)
	_, _ = s.OnFrame(at(0))
	good := avatar.Pose

	avatar.animate = func(e *Entity, in Input) anim.Pose {
		p := anim.Avatar(in.Frame.Elapsed, e.Placement)
		p.Position.Y = math.NaN()
		return p
	}
	stats, _ := s.OnFrame(at(0.1))
	assert.Equal(t, 1, stats.Failed)
	assert.Equal(t, good, avatar.Pose)
	warnings := f.logs.FilterMessage("entity update skipped").All()
	require.Len(t, warnings, 1)
	assert.Equal(t, 100*time.Millisecond, warnings[0].ContextMap()["delta"])

	avatar.animate = animators[KindAvatar]
	stats, _ = s.OnFrame(at(0.2))
	assert.Zero(t, stats.Failed)
	assert.Len(t, f.logs.FilterMessage("entity recovered").All(), 1)
}

func TestParallelMatchesSequential(t *testing.T) {
	seq := newFixture(t, 2000, 1)
	par := newFixture(t, 2000, 4)

	for _, tm := range []float64{0, 0.25, 0.5, 1.75} {
		_, _ = seq.scene.OnFrame(at(tm))
		stats, _ := par.scene.OnFrame(at(tm))
		assert.Equal(t, par.scene.Composer().Len(), stats.Evaluated)
	}

	a, b := seq.scene.Composer().Stars(), par.scene.Composer().Stars()
	require.Equal(t, len(a), len(b))
	for i := range a {
		require.Equal(t, a[i].Pose, b[i].Pose, "star %d", i)
	}
	assert.Equal(t, seq.entity(t, IDSun).Spin(), par.entity(t, IDSun).Spin())
}

func TestStarsTwinkleOutOfPhase(t *testing.T) {
	f := newFixture(t, 1200, 1)
	_, _ = f.scene.OnFrame(at(0))
	_, _ = f.scene.OnFrame(at(0.8))

	seen := map[float64]bool{}
	for _, e := range f.scene.Composer().Stars()[:50] {
		seen[e.Pose.Emissive] = true
	}
	assert.Greater(t, len(seen), 45)
}

func TestAvatarClipAdvances(t *testing.T) {
	f := newFixture(t, 1200, 1)
	clip := &LoopClip{Duration: 2}
	f.entity(t, IDAvatar).Clip = clip

	_, _ = f.scene.OnFrame(at(0))
	_, _ = f.scene.OnFrame(at(0.05))
	_, _ = f.scene.OnFrame(at(0.1))
	assert.InDelta(t, 0.1, clip.Position, 1e-9)
	assert.InDelta(t, 0.05, clip.Progress(), 1e-9)
}

func TestMarkUnavailableKeepsAnimating(t *testing.T) {
	f := newFixture(t, 1200, 1)
	s := f.scene
	cause := errors.New("moon.glb: not found")

	require.NoError(t, s.MarkUnavailable(IDMoon, cause))
	assert.ErrorIs(t, s.MarkUnavailable("planet-x", cause), ErrUnknownEntity)

	stats, _ := s.OnFrame(at(0))
	assert.Zero(t, stats.Failed)
	moon := f.entity(t, IDMoon)
	assert.Equal(t, StatusUnavailable, moon.Status)
	assert.Equal(t, cause, moon.Err)
	assert.NotZero(t, moon.Pose.Scale.X)
}

func TestNavigate(t *testing.T) {
	f := newFixture(t, 1200, 1)
	require.NoError(t, f.scene.Navigate(""))
	require.NoError(t, f.scene.Navigate(DefaultSocialLinks[2].URL))
	assert.Equal(t, []string{DefaultNavigateTarget, DefaultSocialLinks[2].URL}, f.nav)
}

func TestReplaceTable(t *testing.T) {
	f := newFixture(t, 1200, 1)
	table := layout.DefaultTable()
	table[layout.Desktop].StarCount = 10
	table[layout.Desktop].Camera.FOV = 50

	require.NoError(t, f.scene.ReplaceTable(table))
	assert.Equal(t, 50.0, f.scene.Config().Camera.FOV)
	assert.Len(t, f.scene.Composer().Stars(), 10)

	var broken layout.Table
	assert.ErrorIs(t, f.scene.ReplaceTable(broken), layout.ErrIncompleteTable)
	assert.Equal(t, 50.0, f.scene.Config().Camera.FOV)
}

func TestCloseUnregistersCallbacks(t *testing.T) {
	f := newFixture(t, 1200, 1)
	s := f.scene
	require.NoError(t, s.Close())
	assert.True(t, s.Closed())

	_, err := s.OnFrame(at(1))
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, s.OnResize(300, 300), ErrClosed)
	assert.ErrorIs(t, s.SetParameter(param.Glow, 1), ErrClosed)
	assert.ErrorIs(t, s.Nudge(param.Glow, 1), ErrClosed)
	assert.ErrorIs(t, s.Pause(at(1)), ErrClosed)
	assert.ErrorIs(t, s.Resume(at(1)), ErrClosed)
	assert.False(t, s.Paused(), "a closed scene keeps its clock state")
	assert.ErrorIs(t, s.Navigate(""), ErrClosed)
	assert.ErrorIs(t, s.ReplaceTable(layout.DefaultTable()), ErrClosed)
	assert.ErrorIs(t, s.Close(), ErrClosed)
	assert.Empty(t, f.nav)
}

func TestPauseFreezesAnimation(t *testing.T) {
	f := newFixture(t, 1200, 1)
	s := f.scene
	_, _ = s.OnFrame(at(0))
	_, _ = s.OnFrame(at(1))

	require.NoError(t, s.Pause(at(1)))
	assert.True(t, s.Paused())
	stats, _ := s.OnFrame(at(5))
	assert.InDelta(t, 1.0, stats.Frame.Elapsed, 1e-9)

	require.NoError(t, s.Resume(at(5)))
	stats, _ = s.OnFrame(at(5.5))
	assert.InDelta(t, 1.5, stats.Frame.Elapsed, 1e-9)
	assert.InDelta(t, 1.5, s.Elapsed(), 1e-9)

	toggles := f.logs.FilterMessage("clock toggled").All()
	require.Len(t, toggles, 2)
	assert.Equal(t, true, toggles[0].ContextMap()["paused"])
	assert.Equal(t, false, toggles[1].ContextMap()["paused"])
}

func TestZeroWidthMountsMobile(t *testing.T) {
	f := newFixture(t, 0, 1)
	assert.Equal(t, layout.Mobile, f.scene.Class())
	w, _ := f.scene.Viewport()
	assert.Zero(t, w)
	assert.True(t, f.entity(t, IDGlowSlider).Hidden)
}

func TestNudgeStepsParameter(t *testing.T) {
	f := newFixture(t, 1200, 1)
	s := f.scene
	p, ok := s.Store().Get(param.Darkness)
	require.True(t, ok)
	before := p.Get()

	require.NoError(t, s.Nudge(param.Darkness, 2))
	assert.InDelta(t, before+2*p.Step(), p.Get(), 1e-9)
	require.NoError(t, s.Nudge(param.Darkness, -1000))
	assert.Equal(t, p.Min(), p.Get())

	assert.ErrorIs(t, s.Nudge("brightness", 1), param.ErrUnknownParameter)
}

func TestCloseLogsLastStats(t *testing.T) {
	f := newFixture(t, 1200, 1)
	_, err := f.scene.OnFrame(at(0))
	require.NoError(t, err)
	require.NoError(t, f.scene.Close())

	closed := f.logs.FilterMessage("scene closed").All()
	require.Len(t, closed, 1)
	assert.EqualValues(t, 1, closed[0].ContextMap()["frames"])
	assert.Contains(t, closed[0].ContextMap(), "last")
}

func TestNavButtonAnimatesInEveryClass(t *testing.T) {
	for _, width := range []int{400, 1200} {
		f := newFixture(t, width, 1)
		_, _ = f.scene.OnFrame(at(0))
		_, err := f.scene.OnFrame(at(0.5))
		require.NoError(t, err)

		nav := f.entity(t, IDNavButton)
		assert.False(t, nav.Hidden)
		assert.Equal(t, "nav-button", nav.Kind.String())
		assert.Equal(t, anim.NavButton(0.5, nav.Placement), nav.Pose)
	}
}
