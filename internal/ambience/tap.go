package ambience

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// Tap wraps a beep.Streamer and keeps the last samples in a ring
// so the renderer can show the level of what the speaker just played.
type Tap struct {
	Source beep.Streamer
	ring   [][2]float64
	next   int
	mu     sync.RWMutex
}

func NewTap(src beep.Streamer, ringSize int) *Tap {
	return &Tap{
		Source: src,
		ring:   make([][2]float64, ringSize),
	}
}

func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.ring[t.next] = samples[i]
			t.next++
			if t.next >= len(t.ring) {
				t.next = 0
			}
		}
		t.mu.Unlock()
	}
	return n, ok
}

func (t *Tap) Err() error { return t.Source.Err() }

// Snapshot returns up to the last n samples, oldest first
func (t *Tap) Snapshot(n int) [][2]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n > len(t.ring) {
		n = len(t.ring)
	}
	out := make([][2]float64, n)
	idx := t.next - n
	if idx < 0 {
		idx += len(t.ring)
	}
	for i := range out {
		out[i] = t.ring[idx]
		idx++
		if idx >= len(t.ring) {
			idx = 0
		}
	}
	return out
}

// Level is the compressed RMS of the last n samples in [0, 1]
func (t *Tap) Level(n int) float64 {
	samples := t.Snapshot(n)
	if len(samples) == 0 {
		return 0
	}
	var sumSquares float64
	for _, s := range samples {
		mono := (s[0] + s[1]) * 0.5
		sumSquares += mono * mono
	}
	rms := math.Sqrt(sumSquares / float64(len(samples)))
	return math.Min(1, math.Pow(rms, 0.3))
}
