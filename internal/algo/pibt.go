package algo

import "github.com/mstenholm/lacam-go/internal/core"

// noVertex marks an Agent's VNext as unset.
const noVertex core.VertexID = -1

// Agent is per-call scratch: (VNow, VNext) for one PIBT/get_new_config
// invocation. It is reset at the top of every Planner.getNewConfig call.
type Agent struct {
	ID    int
	VNow  core.VertexID
	VNext core.VertexID
}

type candidate struct {
	v   core.VertexID
	key float64 // DistTable distance + tie-breaker, ascending
}

// sortedCandidates returns ai's move options (neighbors plus stay), sorted
// ascending by distance-to-goal with a fresh per-call random tie-breaker
// (spec §4.5: "re-sampled each call when RNG enabled").
func (p *Planner) sortedCandidates(ai *Agent) []core.VertexID {
	neighbors := p.inst.Graph.Neighbors(ai.VNow)
	cands := make([]candidate, 0, len(neighbors)+1)
	for _, v := range neighbors {
		tie := 0.0
		if p.rng != nil {
			tie = p.rng.Float64()
		}
		cands = append(cands, candidate{v: v, key: float64(p.dist.Get(ai.ID, v)) + tie})
	}
	stayTie := 0.0
	if p.rng != nil {
		stayTie = p.rng.Float64()
	}
	cands = append(cands, candidate{v: ai.VNow, key: float64(p.dist.Get(ai.ID, ai.VNow)) + stayTie})

	insertionSortCandidates(cands)

	out := make([]core.VertexID, len(cands))
	for i, c := range cands {
		out[i] = c.v
	}
	return out
}

// insertionSortCandidates sorts ascending by key. Candidate lists are tiny
// (vertex degree + 1), so a stable insertion sort avoids sort.Slice's
// interface-boxing overhead in the search's hottest loop.
func insertionSortCandidates(c []candidate) {
	for i := 1; i < len(c); i++ {
		x := c[i]
		j := i - 1
		for j >= 0 && c[j].key > x.key {
			c[j+1] = c[j]
			j--
		}
		c[j+1] = x
	}
}

// funcPIBT implements the priority-inheritance one-step planner of spec
// §4.5, including the swap extension of §4.5/§4.6 when enabled.
func (p *Planner) funcPIBT(ai *Agent) bool {
	candidates := p.sortedCandidates(ai)

	var swapAgent *Agent
	if p.swapEnabled {
		swapAgent = p.swapPossibleAndRequired(ai, candidates[0])
		if swapAgent != nil {
			reverseVertices(candidates)
		}
	}

	for k, u := range candidates {
		if p.occupiedNext[u] != nil {
			continue
		}
		ak := p.occupiedNow[u]
		if ak != nil && ak.VNext == ai.VNow {
			continue
		}

		p.occupiedNext[u] = ai
		ai.VNext = u

		if ak != nil && ak != ai && ak.VNext == noVertex && !p.funcPIBT(ak) {
			continue
		}

		if p.swapEnabled && k == 0 && swapAgent != nil &&
			swapAgent.VNext == noVertex && p.occupiedNext[ai.VNow] == nil {
			swapAgent.VNext = ai.VNow
			p.occupiedNext[swapAgent.VNext] = swapAgent
		}
		return true
	}

	// Failed to secure any candidate: force a stay so occupied_next always
	// carries a reservation for ai. Spec §9: intentional, not a masked bug.
	p.occupiedNext[ai.VNow] = ai
	ai.VNext = ai.VNow
	return false
}

func reverseVertices(vs []core.VertexID) {
	for i, j := 0, len(vs)-1; i < j; i, j = i+1, j-1 {
		vs[i], vs[j] = vs[j], vs[i]
	}
}
