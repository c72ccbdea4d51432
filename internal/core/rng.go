package core

import "math/rand"

// RNG is the uniform randomness source the solver draws shuffle and
// tie-breaker values from. A nil RNG makes the solver deterministic: no
// shuffling of low-level candidates, and every re-explored configuration
// restarts the search at the root.
type RNG struct {
	r *rand.Rand
}

// NewRNG seeds a deterministic RNG. Two RNGs built from the same seed drive
// two solves to identical outcomes (barring elapsed-time fields).
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform value in [0, 1).
func (g *RNG) Float64() float64 {
	return g.r.Float64()
}

// ShuffleVertices shuffles vs in place using Fisher-Yates.
func (g *RNG) ShuffleVertices(vs []VertexID) {
	g.r.Shuffle(len(vs), func(i, j int) { vs[i], vs[j] = vs[j], vs[i] })
}
