package stars

import (
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"

	"github.com/iburimskiy/celestial-scene/internal/vmath"
)

// Generation bounds
const (
	CubeSide = 120.0

	MinScale = 0.4
	MaxScale = 1.7

	MinRotationSpeed = 0.2
	MaxRotationSpeed = 0.7

	MinTwinkleSpeed = 1.0
	MaxTwinkleSpeed = 4.0
)

// Star holds the immutable constants of one background star
type Star struct {
	Index         int
	Position      vmath.Vec3
	Scale         float64
	RotationSpeed float64
	TwinkleSpeed  float64
}

// Generate draws count stars from src; count <= 0 yields an empty field
func Generate(count int, src rand.Source) []Star {
	if count <= 0 {
		return []Star{}
	}
	r := rand.New(src)
	out := make([]Star, count)
	for i := range out {
		out[i] = Star{
			Index: i,
			Position: vmath.V3(
				(r.Float64()-0.5)*CubeSide,
				(r.Float64()-0.5)*CubeSide,
				(r.Float64()-0.5)*CubeSide,
			),
			Scale:         between(r, MinScale, MaxScale),
			RotationSpeed: between(r, MinRotationSpeed, MaxRotationSpeed),
			TwinkleSpeed:  between(r, MinTwinkleSpeed, MaxTwinkleSpeed),
		}
	}
	return out
}

func between(r *rand.Rand, lo, hi float64) float64 {
	return r.Float64()*(hi-lo) + lo
}

// SeedSource hashes a textual seed into a PCG source
// The same seed always yields the same field
func SeedSource(seed string) rand.Source {
	h := xxhash.Sum64String(seed)
	return rand.NewPCG(h, h^0x9e3779b97f4a7c15)
}
