package clock

import "time"

// DefaultMaxDelta caps a single frame step after the process was suspended
const DefaultMaxDelta = 100 * time.Millisecond

// Frame is one clock sample in seconds
type Frame struct {
	Elapsed float64 // since scene start, excluding paused time
	Delta   float64 // since previous sample, capped
}

// Clock is the single timing authority of a scene
// Not safe for concurrent use; hosts sample it from the frame loop only
type Clock struct {
	maxDelta time.Duration

	started bool
	start   time.Time
	last    time.Time

	paused      bool
	pausedAt    time.Time
	pausedTotal time.Duration

	elapsed time.Duration
}

// New creates a clock; maxDelta <= 0 selects DefaultMaxDelta
func New(maxDelta time.Duration) *Clock {
	if maxDelta <= 0 {
		maxDelta = DefaultMaxDelta
	}
	return &Clock{maxDelta: maxDelta}
}

// Sample advances the clock to now
// The first sample defines scene start and returns a zero frame
func (c *Clock) Sample(now time.Time) Frame {
	if !c.started {
		c.started = true
		c.start = now
		c.last = now
		return Frame{}
	}
	if c.paused || now.Before(c.last) {
		return Frame{Elapsed: c.elapsed.Seconds()}
	}

	delta := now.Sub(c.last)
	c.last = now
	if delta > c.maxDelta {
		delta = c.maxDelta
	}

	if e := now.Sub(c.start) - c.pausedTotal; e > c.elapsed {
		c.elapsed = e
	}
	return Frame{Elapsed: c.elapsed.Seconds(), Delta: delta.Seconds()}
}

// Elapsed returns the last sampled elapsed time in seconds
func (c *Clock) Elapsed() float64 {
	return c.elapsed.Seconds()
}

// Pause freezes elapsed time at now
func (c *Clock) Pause(now time.Time) {
	if c.paused || !c.started {
		return
	}
	c.paused = true
	c.pausedAt = now
}

// Resume continues the clock; the paused span never shows up in elapsed or delta
func (c *Clock) Resume(now time.Time) {
	if !c.paused {
		return
	}
	c.paused = false
	if span := now.Sub(c.pausedAt); span > 0 {
		c.pausedTotal += span
	}
	if now.After(c.last) {
		c.last = now
	}
}

// IsPaused reports whether the clock is frozen
func (c *Clock) IsPaused() bool {
	return c.paused
}
