package algo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mstenholm/lacam-go/internal/core"
)

// TestSwapImpossibleOnThreeVertexCorridor is spec §8 scenario 1: a 1x3
// corridor has no branching vertex, so a two-agent swap can never resolve.
func TestSwapImpossibleOnThreeVertexCorridor(t *testing.T) {
	g := lineGraph(3) // 0-1-2
	inst := mustInstance(g, []core.VertexID{0, 2}, []core.VertexID{2, 0})
	p := New(inst, Options{Deadline: neverExpires(), Objective: core.ObjMakespan})

	assert.False(t, p.isSwapPossible(0, 2))
}

// TestSwapPossibleAtBranchingVertex checks the corridor-with-junction case:
// a T-shaped graph gives the puller somewhere to go, so a swap is possible.
func TestSwapPossibleAtBranchingVertex(t *testing.T) {
	// 0-1-2, with 1 also connected to 3 (a branch off the middle vertex).
	g := core.NewGraph(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(1, 3)
	inst := mustInstance(g, []core.VertexID{0, 2}, []core.VertexID{2, 0})
	p := New(inst, Options{Deadline: neverExpires(), Objective: core.ObjMakespan})

	assert.True(t, p.isSwapPossible(2, 0))
}
