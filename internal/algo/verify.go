package algo

import (
	"github.com/pkg/errors"

	"github.com/mstenholm/lacam-go/internal/core"
)

// VerifyConfigs mechanizes the structural invariants of spec §8 against a
// produced Solution: correct endpoints, legal one-step transitions, no
// vertex collisions, no swap collisions. It is grounded on the teacher's
// FindFirstConflict, rewritten for LaCAM's discrete timestep Configs
// instead of continuous-time robot paths.
func VerifyConfigs(inst *core.Instance, solution []core.Config) error {
	if len(solution) == 0 {
		return nil
	}

	start := core.Config(inst.Starts)
	if !solution[0].Equal(start) {
		return errors.Errorf("lacam: solution[0] = %v, want starts %v", solution[0], start)
	}

	for t, c := range solution {
		if len(c) != inst.N {
			return errors.Errorf("lacam: solution[%d] has %d agents, want %d", t, len(c), inst.N)
		}
		seen := make(map[core.VertexID]int, inst.N)
		for i, v := range c {
			if other, ok := seen[v]; ok {
				return errors.Errorf("lacam: vertex collision at t=%d: agents %d and %d both at %d", t, other, i, v)
			}
			seen[v] = i
		}

		if t == 0 {
			continue
		}
		prev := solution[t-1]
		for i := range c {
			if c[i] == prev[i] {
				continue
			}
			if !isNeighbor(inst.Graph, prev[i], c[i]) {
				return errors.Errorf("lacam: illegal transition for agent %d: %d -> %d at t=%d", i, prev[i], c[i], t)
			}
		}
		for i := 0; i < inst.N; i++ {
			for j := i + 1; j < inst.N; j++ {
				if prev[i] == c[j] && prev[j] == c[i] && prev[i] != c[i] {
					return errors.Errorf("lacam: swap collision between agents %d and %d at t=%d", i, j, t)
				}
			}
		}
	}

	last := solution[len(solution)-1]
	goals := core.Config(inst.Goals)
	if !last.Equal(goals) {
		return errors.Errorf("lacam: solution ends at %v, want goals %v", last, goals)
	}
	return nil
}

func isNeighbor(g *core.Graph, from, to core.VertexID) bool {
	for _, v := range g.Neighbors(from) {
		if v == to {
			return true
		}
	}
	return false
}
