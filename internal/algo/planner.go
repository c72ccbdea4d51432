// Package algo implements the LaCAM two-level MAPF search engine: a
// high-level DFS over joint configurations with Dijkstra-style rewrite and
// random restart, fed by a PIBT-with-swap low-level planner.
package algo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/mstenholm/lacam-go/internal/core"
)

// Logger is the verbose sink the Planner reports through. The core never
// owns a logging implementation; callers inject one (or NopLogger).
type Logger interface {
	Logf(level int, format string, args ...any)
}

// NopLogger discards everything. It is the Planner's default.
type NopLogger struct{}

func (NopLogger) Logf(int, string, ...any) {}

// Options configures a Planner. Deadline is required; everything else has a
// documented zero-value default.
type Options struct {
	Deadline core.Deadline

	// RNG is optional; nil makes the solver fully deterministic (no
	// low-level shuffling, no random PIBT tie-breaking, and every
	// re-explored configuration restarts at H_init).
	RNG *core.RNG

	Verbose     int
	Objective   core.Objective
	RestartRate float64 // in [0,1]; probability of restarting at H_init on a re-explored config
	Logger      Logger

	// DisableSwap turns off the corridor-swap primitive of spec §4.5.
	// Swap is enabled by default, matching the reference planner's
	// FLG_SWAP=true.
	DisableSwap bool
}

// Result is what Solve returns: the plan (empty on failure) plus the
// bookkeeping spec §6 requires in additional_info.
type Result struct {
	Solution   []core.Config
	Optimal    bool
	LoopCnt    int
	NumNodeGen int
	Objective  core.Objective
	HistCost   []int
	HistTime   []int64
}

// AdditionalInfo renders the exact text block spec §6 specifies.
func (r *Result) AdditionalInfo() string {
	var b strings.Builder
	optimal := 0
	if r.Optimal {
		optimal = 1
	}
	fmt.Fprintf(&b, "optimal=%d\n", optimal)
	fmt.Fprintf(&b, "objective=%d\n", int(r.Objective))
	fmt.Fprintf(&b, "loop_cnt=%d\n", r.LoopCnt)
	fmt.Fprintf(&b, "num_node_gen=%d\n", r.NumNodeGen)
	fmt.Fprintf(&b, "hist_cost=%s\n", joinInts(r.HistCost))
	fmt.Fprintf(&b, "hist_time=%s\n", joinInt64s(r.HistTime))
	return b.String()
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func joinInt64s(vs []int64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, ",")
}

// Planner owns one solve's arenas, occupancy scratch and distance oracle.
// It is not safe for concurrent use; distinct Planners on distinct
// Instances may run in separate goroutines (spec §5).
type Planner struct {
	inst        *core.Instance
	deadline    core.Deadline
	rng         *core.RNG
	verbose     int
	objective   core.Objective
	restartRate float64
	logger      Logger
	swapEnabled bool

	dist *DistTable

	hnodes hnodeArena
	lnodes lnodeArena

	agents       []*Agent
	occupiedNow  []*Agent
	occupiedNext []*Agent

	loopCnt int
}

// New builds a Planner for inst. Call Solve exactly once; a Planner is
// single-use because its arenas only ever grow.
func New(inst *core.Instance, opts Options) *Planner {
	logger := opts.Logger
	if logger == nil {
		logger = NopLogger{}
	}
	return &Planner{
		inst:        inst,
		deadline:    opts.Deadline,
		rng:         opts.RNG,
		verbose:     opts.Verbose,
		objective:   opts.Objective,
		restartRate: opts.RestartRate,
		logger:      logger,
		swapEnabled: !opts.DisableSwap,
		dist:        NewDistTable(inst),
		agents:      make([]*Agent, inst.N),
		occupiedNow: make([]*Agent, inst.Graph.Size()),
		occupiedNext: make([]*Agent, inst.Graph.Size()),
	}
}

// Solve runs the anytime high-level search to deadline expiry or OPEN
// exhaustion, per spec §4.6/§4.7.
func (p *Planner) Solve() *Result {
	p.logger.Logf(1, "start search")

	for i := 0; i < p.inst.N; i++ {
		p.agents[i] = &Agent{ID: i, VNow: noVertex, VNext: noVertex}
	}

	open := arraystack.New()
	exp := newExplored(&p.hnodes)

	initG := 0
	initH := p.getHValue(core.Config(p.inst.Starts))
	hInit := newHNode(&p.hnodes, &p.lnodes, core.Config(p.inst.Starts).Clone(), NilNode, initG, initH, p.dist)
	open.Push(hInit)
	exp.insert(p.hnodes.get(hInit).C, hInit)

	hGoal := NilNode
	var histCost []int
	var histTime []int64
	goals := core.Config(p.inst.Goals)

	for !open.Empty() && !p.deadline.IsExpired() {
		p.loopCnt++

		top, _ := open.Peek()
		hID := top.(NodeID)
		h := p.hnodes.get(hID)

		if h.SearchTree.Empty() {
			open.Pop()
			continue
		}

		if hGoal != NilNode && h.F >= p.hnodes.get(hGoal).F {
			open.Pop()
			continue
		}

		if hGoal == NilNode && h.C.Equal(goals) {
			hGoal = hID
			histCost = append(histCost, h.G)
			histTime = append(histTime, p.deadline.ElapsedMs())
			p.logger.Logf(1, "found solution, cost: %d", h.G)
			if p.objective == core.ObjNone {
				break
			}
			continue
		}

		lVal, _ := h.SearchTree.Dequeue()
		lID := lVal.(NodeID)
		expandLowlevelTree(&p.hnodes, &p.lnodes, p.inst.Graph, p.rng, hID, lID)

		if !p.getNewConfig(hID, lID) {
			continue
		}

		cNew := make(core.Config, p.inst.N)
		for _, a := range p.agents {
			cNew[a.ID] = a.VNext
		}

		if existingID, found := exp.find(cNew); found {
			p.rewrite(hID, existingID, hGoal, open, &histCost, &histTime)

			// Without an RNG the solver is deterministic and always
			// restarts to the root on a re-explored configuration;
			// with one, it restarts with probability RestartRate.
			reinsert := hInit
			if p.rng != nil && p.rng.Float64() >= p.restartRate {
				reinsert = existingID
			}
			if hGoal == NilNode || p.hnodes.get(reinsert).F < p.hnodes.get(hGoal).F {
				open.Push(reinsert)
			}
		} else {
			g := h.G + p.getEdgeCost(h.C, cNew)
			hNew := newHNode(&p.hnodes, &p.lnodes, cNew, hID, g, p.getHValue(cNew), p.dist)
			exp.insert(cNew, hNew)
			if hGoal == NilNode || p.hnodes.get(hNew).F < p.hnodes.get(hGoal).F {
				open.Push(hNew)
			}
		}
	}

	var solution []core.Config
	if hGoal != NilNode {
		for id := hGoal; id != NilNode; id = p.hnodes.get(id).Parent {
			solution = append(solution, p.hnodes.get(id).C)
		}
		for i, j := 0, len(solution)-1; i < j; i, j = i+1, j-1 {
			solution[i], solution[j] = solution[j], solution[i]
		}
		if !solution[0].Equal(core.Config(p.inst.Starts)) {
			panic(invariantViolationf("backtracked solution[0] = %v, want starts %v", solution[0], p.inst.Starts))
		}
		histTime = append(histTime, p.deadline.ElapsedMs())
		histCost = append(histCost, p.hnodes.get(hGoal).G)
	}

	optimal := hGoal != NilNode && open.Empty()
	switch {
	case optimal:
		p.logger.Logf(1, "solved optimally, objective: %v", p.objective)
	case hGoal != NilNode:
		p.logger.Logf(1, "solved sub-optimally, objective: %v", p.objective)
	case open.Empty():
		p.logger.Logf(1, "no solution")
	default:
		p.logger.Logf(1, "timeout")
	}

	return &Result{
		Solution:   solution,
		Optimal:    optimal,
		LoopCnt:    p.loopCnt,
		NumNodeGen: exp.size(),
		Objective:  p.objective,
		HistCost:   histCost,
		HistTime:   histTime,
	}
}

// rewrite performs the Dijkstra-style relaxation of spec §4.6 over the
// discovered search graph after learning a new hFrom->hTo transition.
func (p *Planner) rewrite(hFromID, hToID, hGoalID NodeID, open *arraystack.Stack, histCost *[]int, histTime *[]int64) {
	hFrom := p.hnodes.get(hFromID)
	hTo := p.hnodes.get(hToID)
	hFrom.Neighbor[hToID] = struct{}{}
	hTo.Neighbor[hFromID] = struct{}{}

	queue := linkedlistqueue.New()
	queue.Enqueue(hFromID)
	for !queue.Empty() {
		v, _ := queue.Dequeue()
		nFromID := v.(NodeID)
		nFrom := p.hnodes.get(nFromID)
		for nToID := range nFrom.Neighbor {
			nTo := p.hnodes.get(nToID)
			gVal := nFrom.G + p.getEdgeCost(nFrom.C, nTo.C)
			if gVal < nTo.G {
				if hGoalID != NilNode && nToID == hGoalID {
					p.logger.Logf(1, "cost update: %d -> %d", nTo.G, gVal)
					*histCost = append(*histCost, gVal)
					*histTime = append(*histTime, p.deadline.ElapsedMs())
				}
				nTo.G = gVal
				nTo.F = nTo.G + nTo.H
				nTo.Parent = nFromID
				queue.Enqueue(nToID)
				if hGoalID != NilNode && nTo.F < p.hnodes.get(hGoalID).F {
					open.Push(nToID)
				}
			}
		}
	}
}

// getEdgeCost implements spec §4.6's three objective-dependent edge costs.
func (p *Planner) getEdgeCost(c1, c2 core.Config) int {
	switch p.objective {
	case core.ObjSumOfLoss:
		cost := 0
		for i := 0; i < p.inst.N; i++ {
			if c1[i] != p.inst.Goals[i] || c2[i] != p.inst.Goals[i] {
				cost++
			}
		}
		return cost
	case core.ObjNone:
		cost := 0
		for i := 0; i < p.inst.N; i++ {
			if c1[i] != c2[i] {
				cost++
			}
		}
		return cost
	default: // ObjMakespan
		return 1
	}
}

// getHValue implements spec §4.6's admissible heuristics.
func (p *Planner) getHValue(c core.Config) int {
	switch p.objective {
	case core.ObjMakespan:
		h := 0
		for i := 0; i < p.inst.N; i++ {
			if d := p.dist.Get(i, c[i]); d > h {
				h = d
			}
		}
		return h
	case core.ObjSumOfLoss:
		h := 0
		for i := 0; i < p.inst.N; i++ {
			h += p.dist.Get(i, c[i])
		}
		return h
	default: // ObjNone
		return 0
	}
}

// getNewConfig replays L's constraint chain against H's configuration and
// completes it with PIBT, per spec §4.4.
func (p *Planner) getNewConfig(hID, lID NodeID) bool {
	h := p.hnodes.get(hID)

	for _, a := range p.agents {
		if a.VNow != noVertex && p.occupiedNow[a.VNow] == a {
			p.occupiedNow[a.VNow] = nil
		}
		if a.VNext != noVertex {
			p.occupiedNext[a.VNext] = nil
			a.VNext = noVertex
		}
		a.VNow = h.C[a.ID]
		p.occupiedNow[a.VNow] = a
	}

	l := p.lnodes.get(lID)
	depth := l.Depth
	for k := 0; k < depth; k++ {
		i := l.Who
		v := l.Where

		if p.occupiedNext[v] != nil {
			return false
		}
		vPre := h.C[i]
		if p.occupiedNext[vPre] != nil && p.occupiedNow[v] != nil &&
			p.occupiedNext[vPre].ID == p.occupiedNow[v].ID {
			return false
		}

		p.agents[i].VNext = v
		p.occupiedNext[v] = p.agents[i]
		l = p.lnodes.get(l.Parent)
	}

	for _, i := range h.Order {
		a := p.agents[i]
		if a.VNext == noVertex && !p.funcPIBT(a) {
			return false
		}
	}
	return true
}
