package algo

import "github.com/mstenholm/lacam-go/internal/core"

// Unreachable is the sentinel distance for a vertex that cannot reach an
// agent's goal.
const Unreachable = int(^uint(0) >> 1) // max int

// DistTable lazily computes, per agent, the graph distance from any vertex
// to that agent's goal via a single reverse BFS from the goal. Rows are
// memoized on first use and are safe to read concurrently once filled,
// though the solver itself is single-threaded (spec §4.2, §5).
type DistTable struct {
	g     *core.Graph
	goals []core.VertexID
	rows  [][]int // rows[i] is nil until agent i's first query
}

// NewDistTable builds a table lazily backing every agent's distances.
func NewDistTable(inst *core.Instance) *DistTable {
	return &DistTable{
		g:     inst.Graph,
		goals: inst.Goals,
		rows:  make([][]int, inst.N),
	}
}

// Get returns the graph distance from v to goals[i], filling agent i's row
// via BFS on first use. Returns Unreachable if goals[i] cannot reach v.
func (d *DistTable) Get(i int, v core.VertexID) int {
	if d.rows[i] == nil {
		d.rows[i] = d.bfs(d.goals[i])
	}
	return d.rows[i][v]
}

func (d *DistTable) bfs(goal core.VertexID) []int {
	dist := make([]int, d.g.Size())
	for i := range dist {
		dist[i] = Unreachable
	}
	dist[goal] = 0
	queue := make([]core.VertexID, 0, d.g.Size())
	queue = append(queue, goal)
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, u := range d.g.Neighbors(v) {
			if dist[u] == Unreachable {
				dist[u] = dist[v] + 1
				queue = append(queue, u)
			}
		}
	}
	return dist
}
