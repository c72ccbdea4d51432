package algo

import (
	"math"
	"sort"

	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/mstenholm/lacam-go/internal/core"
)

// HNode is a searched configuration plus its search bookkeeping (spec §3).
type HNode struct {
	ID         NodeID
	C          core.Config
	Parent     NodeID
	Neighbor   map[NodeID]struct{}
	G, H, F    int
	Priorities []float64
	Order      []int

	// SearchTree is the FIFO queue of unexpanded LNodes for this HNode,
	// seeded with one empty root LNode. NodeIDs index the Planner's
	// shared lnodeArena.
	SearchTree *linkedlistqueue.Queue
}

type hnodeArena struct {
	nodes []*HNode
}

func (a *hnodeArena) get(id NodeID) *HNode {
	return a.nodes[id]
}

func (a *hnodeArena) len() int {
	return len(a.nodes)
}

// newHNode allocates a new HNode, computing its priorities/order per spec
// §4.6 and seeding its search tree with one root LNode, then links it into
// its parent's neighbor set.
func newHNode(hnodes *hnodeArena, lnodes *lnodeArena, c core.Config, parent NodeID, g, h int, d *DistTable) NodeID {
	n := len(c)
	hn := &HNode{
		C:          c,
		Parent:     parent,
		Neighbor:   make(map[NodeID]struct{}),
		G:          g,
		H:          h,
		F:          g + h,
		Priorities: make([]float64, n),
		Order:      make([]int, n),
		SearchTree: linkedlistqueue.New(),
	}
	hn.ID = NodeID(len(hnodes.nodes))
	hnodes.nodes = append(hnodes.nodes, hn)

	hn.SearchTree.Enqueue(lnodes.allocRoot())

	if parent == NilNode {
		for i := 0; i < n; i++ {
			hn.Priorities[i] = float64(d.Get(i, c[i])) / float64(n)
		}
	} else {
		pn := hnodes.get(parent)
		pn.Neighbor[hn.ID] = struct{}{}
		hn.Neighbor[parent] = struct{}{}
		for i := 0; i < n; i++ {
			if d.Get(i, c[i]) != 0 {
				hn.Priorities[i] = pn.Priorities[i] + 1
			} else {
				hn.Priorities[i] = pn.Priorities[i] - math.Floor(pn.Priorities[i])
			}
		}
	}

	for i := range hn.Order {
		hn.Order[i] = i
	}
	sort.SliceStable(hn.Order, func(i, j int) bool {
		return hn.Priorities[hn.Order[i]] > hn.Priorities[hn.Order[j]]
	})

	return hn.ID
}
