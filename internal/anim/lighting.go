package anim

import "github.com/iburimskiy/celestial-scene/internal/param"

// Lighting is the scene-wide light rig for one frame
type Lighting struct {
	Ambient    float64
	Key        float64
	Fill       float64
	Background float64 // 1 is the brightest backdrop, 0 is black
}

// Light derives the rig from the shared parameters
func Light(v param.Values) Lighting {
	return Lighting{
		Ambient:    0.7 + v.Glow*0.25,
		Key:        0.3 + v.Glow*0.15,
		Fill:       0.2 + v.Glow*0.1,
		Background: 1 - v.DarknessNorm,
	}
}
