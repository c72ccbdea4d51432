// Command geninstance generates deterministic random grid MAPF instances,
// grounded on the teacher's tools/gen_instances but stripped down to this
// solver's domain: a 4-connected grid plus N collision-free start/goal
// pairs, emitted as JSON (spec §8's Testable Scenario 4 setup).
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"
)

// GridInstance is the on-disk JSON shape consumed by tools/benchmark.
type GridInstance struct {
	Name       string  `json:"name"`
	Seed       int64   `json:"seed"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	NumAgents  int     `json:"num_agents"`
	Starts     []int   `json:"starts"`
	Goals      []int   `json:"goals"`
	Generated  string  `json:"generated"`
}

func generateGridInstance(seed int64, width, height, numAgents int) (*GridInstance, error) {
	numVertices := width * height
	if numAgents > numVertices {
		return nil, fmt.Errorf("geninstance: %d agents does not fit in a %dx%d grid", numAgents, width, height)
	}

	rng := rand.New(rand.NewSource(seed))

	perm := rng.Perm(numVertices)
	starts := append([]int{}, perm[:numAgents]...)

	perm2 := rng.Perm(numVertices)
	goals := append([]int{}, perm2[:numAgents]...)

	return &GridInstance{
		Name:      fmt.Sprintf("grid_%d_%dx%d_seed%d", numAgents, width, height, seed),
		Seed:      seed,
		Width:     width,
		Height:    height,
		NumAgents: numAgents,
		Starts:    starts,
		Goals:     goals,
		Generated: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func main() {
	seed := flag.Int64("seed", 42, "random seed for deterministic generation")
	width := flag.Int("width", 10, "grid width")
	height := flag.Int("height", 10, "grid height")
	numAgents := flag.Int("agents", 20, "number of agents")
	outputDir := flag.String("output", "testdata", "output directory")
	scalingMode := flag.Bool("scaling", false, "generate a scaling suite (10, 50, 100, 500 agents) instead of a single instance")

	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "geninstance: create output directory: %v\n", err)
		os.Exit(1)
	}

	var instances []*GridInstance
	sizes := []int{*numAgents}
	if *scalingMode {
		sizes = []int{10, 50, 100, 500}
	}

	for _, n := range sizes {
		w, h := *width, *height
		for w*h < n*2 {
			w++
			h++
		}
		inst, err := generateGridInstance(*seed, w, h, n)
		if err != nil {
			fmt.Fprintf(os.Stderr, "geninstance: %v\n", err)
			os.Exit(1)
		}
		instances = append(instances, inst)
	}

	for _, inst := range instances {
		path := filepath.Join(*outputDir, inst.Name+".json")
		data, err := json.MarshalIndent(inst, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "geninstance: marshal %s: %v\n", inst.Name, err)
			continue
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "geninstance: write %s: %v\n", path, err)
			continue
		}
		fmt.Printf("generated: %s (%d agents, %dx%d grid)\n", path, inst.NumAgents, inst.Width, inst.Height)
	}
}
