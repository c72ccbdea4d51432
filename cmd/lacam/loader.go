package main

import (
	"sort"

	"github.com/alecthomas/participle/v2"
	"github.com/pkg/errors"

	"github.com/mstenholm/lacam-go/internal/core"
)

// scenarioFile is the participle grammar for the text instance format:
//
//	graph {
//	  vertex 0
//	  vertex 1
//	  edge 0 1
//	}
//	agents {
//	  agent 0 start=0 goal=2
//	  agent 1 start=2 goal=0
//	}
type scenarioFile struct {
	Graph  graphBlock  `"graph" "{" @@ "}"`
	Agents agentsBlock `"agents" "{" @@ "}"`
}

type graphBlock struct {
	Items []*graphItem `@@*`
}

type graphItem struct {
	Vertex *vertexDecl `@@`
	Edge   *edgeDecl   `| @@`
}

type vertexDecl struct {
	ID int `"vertex" @Int`
}

type edgeDecl struct {
	From int `"edge" @Int`
	To   int `@Int`
}

type agentsBlock struct {
	Agents []*agentDecl `@@*`
}

type agentDecl struct {
	ID    int `"agent" @Int`
	Start int `"start" "=" @Int`
	Goal  int `"goal" "=" @Int`
}

var scenarioParser = participle.MustBuild[scenarioFile]()

// loadInstance parses text in the grammar above into a core.Instance. Vertex
// ids must be declared contiguously from 0; agents must be declared in
// increasing id order starting at 0, matching how the CLI addresses them by
// position.
func loadInstance(text string) (*core.Instance, error) {
	f, err := scenarioParser.ParseString("", text)
	if err != nil {
		return nil, errors.Wrap(err, "lacam: parse scenario")
	}

	var vertices []int
	var edges []edgeDecl
	for _, item := range f.Graph.Items {
		switch {
		case item.Vertex != nil:
			vertices = append(vertices, item.Vertex.ID)
		case item.Edge != nil:
			edges = append(edges, *item.Edge)
		}
	}
	if len(vertices) == 0 {
		return nil, errors.New("lacam: scenario declares no vertices")
	}
	sort.Ints(vertices)
	for i, v := range vertices {
		if v != i {
			return nil, errors.Errorf("lacam: vertex ids must be contiguous from 0, got gap at %d", i)
		}
	}

	g := core.NewGraph(len(vertices))
	for _, e := range edges {
		if e.From < 0 || e.From >= len(vertices) || e.To < 0 || e.To >= len(vertices) {
			return nil, errors.Errorf("lacam: edge %d-%d references undeclared vertex", e.From, e.To)
		}
		g.AddEdge(core.VertexID(e.From), core.VertexID(e.To))
	}

	starts := make([]core.VertexID, len(f.Agents.Agents))
	goals := make([]core.VertexID, len(f.Agents.Agents))
	for i, a := range f.Agents.Agents {
		if a.ID != i {
			return nil, errors.Errorf("lacam: agents must be declared in order 0..N-1, got id %d at position %d", a.ID, i)
		}
		starts[i] = core.VertexID(a.Start)
		goals[i] = core.VertexID(a.Goal)
	}

	return core.NewInstance(g, starts, goals)
}
