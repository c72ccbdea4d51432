package algo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mstenholm/lacam-go/internal/core"
)

func TestDistTableBFSDistances(t *testing.T) {
	g := lineGraph(4) // 0-1-2-3
	inst := mustInstance(g, []core.VertexID{0}, []core.VertexID{3})
	d := NewDistTable(inst)

	assert.Equal(t, 0, d.Get(0, 3))
	assert.Equal(t, 1, d.Get(0, 2))
	assert.Equal(t, 3, d.Get(0, 0))
}

func TestDistTableUnreachable(t *testing.T) {
	g := core.NewGraph(2) // no edges
	inst := mustInstance(g, []core.VertexID{0}, []core.VertexID{1})
	d := NewDistTable(inst)

	assert.Equal(t, Unreachable, d.Get(0, 0))
	assert.Equal(t, 0, d.Get(0, 1))
}

func TestDistTableMemoizesPerAgent(t *testing.T) {
	g := lineGraph(3)
	inst := mustInstance(g, []core.VertexID{0, 2}, []core.VertexID{2, 0})
	d := NewDistTable(inst)

	assert.Equal(t, 2, d.Get(0, 0))
	assert.Nil(t, d.rows[1]) // agent 1's row not yet touched
	assert.Equal(t, 2, d.Get(1, 2))
	assert.NotNil(t, d.rows[1])
}
