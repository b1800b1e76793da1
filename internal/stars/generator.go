package stars

import (
	"math/rand/v2"
	"strconv"
)

// Generator keeps the current field and replaces it wholesale when the count changes
type Generator struct {
	seed  string
	count int
	field []Star
	valid bool
}

// NewGenerator creates a generator; an empty seed draws a fresh random field each time
func NewGenerator(seed string) *Generator {
	return &Generator{seed: seed}
}

// Field returns the field for count and whether it was regenerated
func (g *Generator) Field(count int) ([]Star, bool) {
	if count < 0 {
		count = 0
	}
	if g.valid && count == g.count {
		return g.field, false
	}
	g.field = Generate(count, g.source(count))
	g.count = count
	g.valid = true
	return g.field, true
}

// Count is the size of the current field
func (g *Generator) Count() int {
	return g.count
}

func (g *Generator) source(count int) rand.Source {
	if g.seed == "" {
		return rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return SeedSource(g.seed + "/" + strconv.Itoa(count))
}
