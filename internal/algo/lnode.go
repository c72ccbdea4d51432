package algo

import "github.com/mstenholm/lacam-go/internal/core"

// expandLowlevelTree expands H's constraint tree by one level below L,
// per spec §4.3: pick the next agent in H's priority order at depth
// L.Depth, and append one child LNode per candidate vertex (its current
// vertex plus its graph neighbors, "stay" included).
func expandLowlevelTree(hnodes *hnodeArena, lnodes *lnodeArena, g *core.Graph, rng *core.RNG, hID NodeID, lID NodeID) {
	h := hnodes.get(hID)
	l := lnodes.get(lID)
	if l.Depth >= len(h.Order) {
		return
	}
	i := h.Order[l.Depth]
	neighbors := g.Neighbors(h.C[i])
	candidates := make([]core.VertexID, 0, len(neighbors)+1)
	candidates = append(candidates, neighbors...)
	candidates = append(candidates, h.C[i])

	if rng != nil {
		rng.ShuffleVertices(candidates)
	}

	for _, v := range candidates {
		child := lnodes.alloc(lID, i, v)
		h.SearchTree.Enqueue(child)
	}
}
