package core

import "github.com/pkg/errors"

// Instance is an immutable MAPF problem: a graph, N agents, and their
// starts/goals.
type Instance struct {
	Graph  *Graph
	N      int
	Starts []VertexID
	Goals  []VertexID
}

// NewInstance builds an Instance, validating that starts/goals are within
// range and that N matches their lengths.
func NewInstance(g *Graph, starts, goals []VertexID) (*Instance, error) {
	if len(starts) != len(goals) {
		return nil, errors.Errorf("core: len(starts)=%d != len(goals)=%d", len(starts), len(goals))
	}
	for i, v := range starts {
		if v < 0 || int(v) >= g.Size() {
			return nil, errors.Errorf("core: start[%d]=%d out of range [0,%d)", i, v, g.Size())
		}
	}
	for i, v := range goals {
		if v < 0 || int(v) >= g.Size() {
			return nil, errors.Errorf("core: goal[%d]=%d out of range [0,%d)", i, v, g.Size())
		}
	}
	return &Instance{Graph: g, N: len(starts), Starts: starts, Goals: goals}, nil
}
