package ambience

import (
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/celestial-scene/internal/config"
	"github.com/iburimskiy/celestial-scene/internal/log"
	"github.com/iburimskiy/celestial-scene/internal/param"
)

const ringSize = 4096

// Player owns the speaker while the drone runs
type Player struct {
	drone *Drone
	tap   *Tap
	ctrl  *beep.Ctrl
	log   log.Log
}

// Start initializes the speaker and begins playback
func Start(logger log.Log, v param.Values) (*Player, error) {
	sr := beep.SampleRate(config.SampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, err
	}
	d := NewDrone(sr)
	d.Tune(v)
	t := NewTap(d, ringSize)
	p := &Player{
		drone: d,
		tap:   t,
		ctrl:  &beep.Ctrl{Streamer: t},
		log:   logger,
	}
	speaker.Play(p.ctrl)
	logger.Info("drone started", log.Float64("hz", Frequency(v)))
	return p, nil
}

// Tune follows the current parameter readings
func (p *Player) Tune(v param.Values) {
	speaker.Lock()
	p.drone.Tune(v)
	speaker.Unlock()
}

func (p *Player) SetPaused(paused bool) {
	speaker.Lock()
	p.ctrl.Paused = paused
	speaker.Unlock()
}

// Level is the recent output level for the HUD meter
func (p *Player) Level() float64 {
	return p.tap.Level(2048)
}

func (p *Player) Close() {
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
	p.log.Info("drone stopped")
}
