// Package ambience plays a low drone whose pitch follows darkness and whose level follows glow.
package ambience

import (
	"math"

	"github.com/faiface/beep"

	"github.com/iburimskiy/celestial-scene/internal/config"
	"github.com/iburimskiy/celestial-scene/internal/param"
)

// detune is the right channel's frequency ratio
const detune = 1.003

// glide is the per-sample smoothing of frequency and volume changes
const glide = 0.0005

// Drone is an endless two-channel sine streamer
type Drone struct {
	sampleRate beep.SampleRate
	phase      [2]float64

	freq, volume          float64
	targetFreq, targetVol float64
}

func NewDrone(sr beep.SampleRate) *Drone {
	return &Drone{
		sampleRate: sr,
		freq:       config.DroneBaseHz,
		targetFreq: config.DroneBaseHz,
	}
}

// Frequency maps darkness to pitch: darker is lower
func Frequency(v param.Values) float64 {
	return config.DroneBaseHz + config.DroneSpreadHz*(1-clamp01(v.DarknessNorm))
}

// Volume maps glow to level
func Volume(v param.Values) float64 {
	return config.DroneMaxVolume * clamp01(v.GlowNorm)
}

// Tune sets the targets the drone glides towards; callers hold the speaker lock
func (d *Drone) Tune(v param.Values) {
	d.targetFreq = Frequency(v)
	d.targetVol = Volume(v)
}

func (d *Drone) Stream(samples [][2]float64) (int, bool) {
	rate := float64(d.sampleRate)
	if rate <= 0 {
		return 0, false
	}
	for i := range samples {
		d.freq += (d.targetFreq - d.freq) * glide
		d.volume += (d.targetVol - d.volume) * glide
		samples[i][0] = math.Sin(2*math.Pi*d.phase[0]) * d.volume
		samples[i][1] = math.Sin(2*math.Pi*d.phase[1]) * d.volume
		d.phase[0] = math.Mod(d.phase[0]+d.freq/rate, 1)
		d.phase[1] = math.Mod(d.phase[1]+d.freq*detune/rate, 1)
	}
	return len(samples), true
}

func (d *Drone) Err() error { return nil }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
