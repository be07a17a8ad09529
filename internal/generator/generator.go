// Package generator picks practice words at random.
package generator

import (
	"math/rand"
	"time"
)

// Generator produces uniformly random word indices.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Pick returns an index in [0, n). It returns 0 when n <= 1.
func (g *Generator) Pick(n int) int {
	if n <= 1 {
		return 0
	}
	return g.rnd.Intn(n)
}
