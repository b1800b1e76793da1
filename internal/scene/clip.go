package scene

import "math"

// LoopClip is a minimal ClipPlayer that loops a fixed-length clip
type LoopClip struct {
	Duration float64
	Position float64
}

func (c *LoopClip) Advance(delta float64) {
	if c.Duration <= 0 || delta <= 0 {
		return
	}
	c.Position = math.Mod(c.Position+delta, c.Duration)
}

// Progress is the position in [0, 1)
func (c *LoopClip) Progress() float64 {
	if c.Duration <= 0 {
		return 0
	}
	return c.Position / c.Duration
}
