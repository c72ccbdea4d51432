package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mstenholm/lacam-go/internal/algo"
	"github.com/mstenholm/lacam-go/internal/core"
)

const fourCycleScenario = `
graph {
  vertex 0
  vertex 1
  vertex 2
  vertex 3
  edge 0 1
  edge 1 2
  edge 2 3
  edge 3 0
}
agents {
  agent 0 start=0 goal=2
  agent 1 start=2 goal=0
}
`

func TestLoadInstanceParsesGraphAndAgents(t *testing.T) {
	inst, err := loadInstance(fourCycleScenario)
	require.NoError(t, err)

	assert.Equal(t, 4, inst.Graph.Size())
	assert.Equal(t, 2, inst.N)
	assert.Equal(t, []core.VertexID{0, 2}, inst.Starts)
	assert.Equal(t, []core.VertexID{2, 0}, inst.Goals)
	assert.ElementsMatch(t, []core.VertexID{1, 3}, inst.Graph.Neighbors(0))
}

func TestLoadInstanceFeedsSolver(t *testing.T) {
	inst, err := loadInstance(fourCycleScenario)
	require.NoError(t, err)

	p := algo.New(inst, algo.Options{Deadline: core.NewWallClockDeadline(2 * time.Second), Objective: core.ObjMakespan})
	res := p.Solve()
	require.NotEmpty(t, res.Solution)
	require.NoError(t, algo.VerifyConfigs(inst, res.Solution))
}

func TestLoadInstanceRejectsNonContiguousVertices(t *testing.T) {
	_, err := loadInstance(`
graph {
  vertex 0
  vertex 2
}
agents {
  agent 0 start=0 goal=0
}
`)
	assert.Error(t, err)
}

func TestLoadInstanceRejectsUnknownEdgeVertex(t *testing.T) {
	_, err := loadInstance(`
graph {
  vertex 0
  vertex 1
  edge 0 5
}
agents {
  agent 0 start=0 goal=1
}
`)
	assert.Error(t, err)
}

func TestLoadInstanceRejectsOutOfOrderAgents(t *testing.T) {
	_, err := loadInstance(`
graph {
  vertex 0
  vertex 1
}
agents {
  agent 1 start=0 goal=1
}
`)
	assert.Error(t, err)
}
