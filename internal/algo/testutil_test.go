package algo

import "github.com/mstenholm/lacam-go/internal/core"

// fakeDeadline is a Deadline test double so scenario tests never depend on
// wall-clock timing.
type fakeDeadline struct {
	expired bool
	elapsed int64
}

func (d *fakeDeadline) ElapsedMs() int64 { return d.elapsed }
func (d *fakeDeadline) IsExpired() bool  { return d.expired }

func neverExpires() *fakeDeadline { return &fakeDeadline{} }

// lineGraph builds a path graph 0-1-2-...-(n-1).
func lineGraph(n int) *core.Graph {
	g := core.NewGraph(n)
	for i := 0; i < n-1; i++ {
		g.AddEdge(core.VertexID(i), core.VertexID(i+1))
	}
	return g
}

// cycleGraph builds an n-cycle 0-1-...-(n-1)-0.
func cycleGraph(n int) *core.Graph {
	g := core.NewGraph(n)
	for i := 0; i < n; i++ {
		g.AddEdge(core.VertexID(i), core.VertexID((i+1)%n))
	}
	return g
}

// gridGraph builds a w*h 4-connected grid, vertex id = y*w+x.
func gridGraph(w, h int) *core.Graph {
	g := core.NewGraph(w * h)
	id := func(x, y int) core.VertexID { return core.VertexID(y*w + x) }
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < w-1 {
				g.AddEdge(id(x, y), id(x+1, y))
			}
			if y < h-1 {
				g.AddEdge(id(x, y), id(x, y+1))
			}
		}
	}
	return g
}

func mustInstance(g *core.Graph, starts, goals []core.VertexID) *core.Instance {
	inst, err := core.NewInstance(g, starts, goals)
	if err != nil {
		panic(err)
	}
	return inst
}
