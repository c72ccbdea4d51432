package algo

import "github.com/mstenholm/lacam-go/internal/core"

// NodeID addresses an HNode or LNode inside its owning arena. Search graphs
// over HNodes are cyclic (neighbor sets point both ways), so ownership is
// index-based rather than a tree of pointers: EXPLORED is the sole owner of
// the HNode arena, and the whole pool is discarded in one shot when the
// Planner is dropped.
type NodeID uint32

// NilNode is the sentinel for "no parent" / "no node".
const NilNode NodeID = ^NodeID(0)

// LNode is a low-level constraint tree node: "agent Who is pinned to vertex
// Where, plus every ancestor's pin". Ancestors are read by walking Parent.
type LNode struct {
	Who    int
	Where  core.VertexID
	Parent NodeID
	Depth  int
}

// lnodeArena is the flat backing store for every LNode a Planner creates
// over its lifetime. Individual LNodes are never freed; the whole slice is
// dropped with the Planner.
type lnodeArena struct {
	nodes []LNode
}

// allocRoot creates the empty root LNode seeded into every HNode's search
// tree: depth 0, no pin, contributes nothing when its ancestor chain is
// replayed.
func (a *lnodeArena) allocRoot() NodeID {
	id := NodeID(len(a.nodes))
	a.nodes = append(a.nodes, LNode{Who: -1, Where: -1, Parent: NilNode, Depth: 0})
	return id
}

func (a *lnodeArena) alloc(parent NodeID, who int, where core.VertexID) NodeID {
	depth := 0
	if parent != NilNode {
		depth = a.nodes[parent].Depth + 1
	}
	id := NodeID(len(a.nodes))
	a.nodes = append(a.nodes, LNode{Who: who, Where: where, Parent: parent, Depth: depth})
	return id
}

func (a *lnodeArena) get(id NodeID) *LNode {
	return &a.nodes[id]
}

// explored maps Config -> HNode id, bucketed by a 64-bit digest to avoid
// requiring Config (a slice) as a map key directly. Digest collisions are
// resolved with an exact element-wise compare, so lookups are exact.
type explored struct {
	buckets map[uint64][]NodeID
	hnodes  *hnodeArena
}

func newExplored(h *hnodeArena) *explored {
	return &explored{buckets: make(map[uint64][]NodeID), hnodes: h}
}

func (e *explored) find(c core.Config) (NodeID, bool) {
	digest := c.Digest()
	for _, id := range e.buckets[digest] {
		if e.hnodes.get(id).C.Equal(c) {
			return id, true
		}
	}
	return NilNode, false
}

func (e *explored) insert(c core.Config, id NodeID) {
	digest := c.Digest()
	e.buckets[digest] = append(e.buckets[digest], id)
}

func (e *explored) size() int {
	n := 0
	for _, b := range e.buckets {
		n += len(b)
	}
	return n
}
