package algo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mstenholm/lacam-go/internal/core"
)

func TestLNodeArenaAncestorChain(t *testing.T) {
	var arena lnodeArena
	root := arena.allocRoot()
	assert.Equal(t, NilNode, arena.get(root).Parent)
	assert.Equal(t, 0, arena.get(root).Depth)

	child := arena.alloc(root, 2, core.VertexID(7))
	assert.Equal(t, 1, arena.get(child).Depth)
	assert.Equal(t, root, arena.get(child).Parent)
	assert.Equal(t, 2, arena.get(child).Who)
	assert.Equal(t, core.VertexID(7), arena.get(child).Where)

	grandchild := arena.alloc(child, 0, core.VertexID(3))
	assert.Equal(t, 2, arena.get(grandchild).Depth)
}

func TestExploredFindsExactConfig(t *testing.T) {
	var hnodes hnodeArena
	var lnodes lnodeArena
	dist := NewDistTable(mustInstance(lineGraph(3), []core.VertexID{0}, []core.VertexID{2}))

	idA := newHNode(&hnodes, &lnodes, core.Config{0}, NilNode, 0, 2, dist)
	idB := newHNode(&hnodes, &lnodes, core.Config{1}, NilNode, 0, 1, dist)

	exp := newExplored(&hnodes)
	exp.insert(hnodes.get(idA).C, idA)
	exp.insert(hnodes.get(idB).C, idB)

	found, ok := exp.find(core.Config{0})
	assert.True(t, ok)
	assert.Equal(t, idA, found)

	found, ok = exp.find(core.Config{1})
	assert.True(t, ok)
	assert.Equal(t, idB, found)

	_, ok = exp.find(core.Config{2})
	assert.False(t, ok)
	assert.Equal(t, 2, exp.size())
}

func TestHNodePrioritiesInheritFromParent(t *testing.T) {
	var hnodes hnodeArena
	var lnodes lnodeArena
	inst := mustInstance(lineGraph(3), []core.VertexID{0}, []core.VertexID{2})
	dist := NewDistTable(inst)

	root := newHNode(&hnodes, &lnodes, core.Config(inst.Starts), NilNode, 0, 2, dist)
	assert.Equal(t, 2.0, hnodes.get(root).Priorities[0])

	// Agent moves to vertex 1, still 1 away from goal: priority += 1.
	child := newHNode(&hnodes, &lnodes, core.Config{1}, root, 1, 1, dist)
	assert.Equal(t, 3.0, hnodes.get(child).Priorities[0])
	_, linked := hnodes.get(root).Neighbor[child]
	assert.True(t, linked)
	_, linkedBack := hnodes.get(child).Neighbor[root]
	assert.True(t, linkedBack)

	// Agent reaches goal (vertex 2): priority resets to the fractional part.
	atGoal := newHNode(&hnodes, &lnodes, core.Config{2}, child, 2, 0, dist)
	assert.InDelta(t, 0.0, hnodes.get(atGoal).Priorities[0], 1e-9)
}
