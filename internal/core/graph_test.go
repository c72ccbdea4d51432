package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphAddEdgeIsSymmetric(t *testing.T) {
	g := NewGraph(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)

	assert.ElementsMatch(t, []VertexID{1}, g.Neighbors(0))
	assert.ElementsMatch(t, []VertexID{0, 2}, g.Neighbors(1))
	assert.ElementsMatch(t, []VertexID{1}, g.Neighbors(2))
	assert.Equal(t, 3, g.Size())
}

func TestNewInstanceRejectsOutOfRangeVertices(t *testing.T) {
	g := NewGraph(2)
	g.AddEdge(0, 1)

	_, err := NewInstance(g, []VertexID{0}, []VertexID{5})
	require.Error(t, err)

	_, err = NewInstance(g, []VertexID{0, 1}, []VertexID{1})
	require.Error(t, err)

	inst, err := NewInstance(g, []VertexID{0}, []VertexID{1})
	require.NoError(t, err)
	assert.Equal(t, 1, inst.N)
}
