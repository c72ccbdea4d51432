package algo

import "github.com/mstenholm/lacam-go/internal/core"

// swapPossibleAndRequired looks for a corridor partner that ai must swap
// with rather than simply displace (spec §4.5). Returns nil when no swap
// applies.
func (p *Planner) swapPossibleAndRequired(ai *Agent, best core.VertexID) *Agent {
	if best == ai.VNow {
		return nil
	}

	if aj := p.occupiedNow[best]; aj != nil && aj.VNext == noVertex &&
		p.isSwapRequired(ai.ID, aj.ID, ai.VNow, aj.VNow) &&
		p.isSwapPossible(aj.VNow, ai.VNow) {
		return aj
	}

	for _, u := range p.inst.Graph.Neighbors(ai.VNow) {
		ak := p.occupiedNow[u]
		if ak == nil || best == ak.VNow {
			continue
		}
		if p.isSwapRequired(ak.ID, ai.ID, ai.VNow, best) &&
			p.isSwapPossible(best, ai.VNow) {
			return ak
		}
	}

	return nil
}

// isSwapRequired walks the puller away from the pusher along its unique
// corridor, returning true iff the puller sits on the pusher's shortest
// path and either the pusher has reached its goal or the puller remains on
// that path once the walk terminates (spec §4.5).
func (p *Planner) isSwapRequired(pusher, puller int, vPusherOrigin, vPullerOrigin core.VertexID) bool {
	vPusher, vPuller := vPusherOrigin, vPullerOrigin
	var tmp core.VertexID = noVertex

	for p.dist.Get(pusher, vPuller) < p.dist.Get(pusher, vPusher) {
		n := len(p.inst.Graph.Neighbors(vPuller))
		for _, u := range p.inst.Graph.Neighbors(vPuller) {
			a := p.occupiedNow[u]
			if u == vPusher || (len(p.inst.Graph.Neighbors(u)) == 1 && a != nil && p.inst.Goals[a.ID] == u) {
				n--
			} else {
				tmp = u
			}
		}
		if n >= 2 {
			return false
		}
		if n <= 0 {
			break
		}
		vPusher, vPuller = vPuller, tmp
	}

	return p.dist.Get(puller, vPusher) < p.dist.Get(puller, vPuller) &&
		(p.dist.Get(pusher, vPusher) == 0 || p.dist.Get(pusher, vPuller) < p.dist.Get(pusher, vPusher))
}

// isSwapPossible walks the corridor from vPuller until it finds a branching
// vertex (true) or exhausts/loops back on itself (false).
func (p *Planner) isSwapPossible(vPusherOrigin, vPullerOrigin core.VertexID) bool {
	vPusher, vPuller := vPusherOrigin, vPullerOrigin
	var tmp core.VertexID = noVertex

	for vPuller != vPusherOrigin {
		n := len(p.inst.Graph.Neighbors(vPuller))
		for _, u := range p.inst.Graph.Neighbors(vPuller) {
			a := p.occupiedNow[u]
			if u == vPusher || (len(p.inst.Graph.Neighbors(u)) == 1 && a != nil && p.inst.Goals[a.ID] == u) {
				n--
			} else {
				tmp = u
			}
		}
		if n >= 2 {
			return true
		}
		if n <= 0 {
			return false
		}
		vPusher, vPuller = vPuller, tmp
	}
	return false
}
