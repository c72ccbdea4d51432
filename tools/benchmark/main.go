// Command benchmark loads generated grid instances and runs the LaCAM
// solver across objectives and seeds, writing a CSV of results. Grounded on
// the teacher's tools/run_benchmarks, adapted to actually invoke the solver
// in-process instead of shelling out to a stub.
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mstenholm/lacam-go/internal/algo"
	"github.com/mstenholm/lacam-go/internal/core"
)

// gridInstance mirrors tools/geninstance's on-disk shape.
type gridInstance struct {
	Name      string `json:"name"`
	Seed      int64  `json:"seed"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	NumAgents int    `json:"num_agents"`
	Starts    []int  `json:"starts"`
	Goals     []int  `json:"goals"`
}

func loadGridInstance(path string) (*gridInstance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var g gridInstance
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (g *gridInstance) buildCoreInstance() (*core.Instance, error) {
	graph := core.NewGraph(g.Width * g.Height)
	id := func(x, y int) core.VertexID { return core.VertexID(y*g.Width + x) }
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if x < g.Width-1 {
				graph.AddEdge(id(x, y), id(x+1, y))
			}
			if y < g.Height-1 {
				graph.AddEdge(id(x, y), id(x, y+1))
			}
		}
	}

	starts := make([]core.VertexID, len(g.Starts))
	for i, v := range g.Starts {
		starts[i] = core.VertexID(v)
	}
	goals := make([]core.VertexID, len(g.Goals))
	for i, v := range g.Goals {
		goals[i] = core.VertexID(v)
	}
	return core.NewInstance(graph, starts, goals)
}

// result is one CSV row: one solver run against one instance/objective/seed.
type result struct {
	Instance   string
	NumAgents  int
	GridSize   string
	Objective  string
	Seed       int64
	Optimal    bool
	LoopCnt    int
	NumNodeGen int
	HistCost   string
	HistTime   string
	ElapsedMs  float64
}

func runOne(g *gridInstance, objective core.Objective, seed int64, timeLimit time.Duration) (*result, error) {
	inst, err := g.buildCoreInstance()
	if err != nil {
		return nil, err
	}

	var rng *core.RNG
	if seed != 0 {
		rng = core.NewRNG(seed)
	}

	p := algo.New(inst, algo.Options{
		Deadline:  core.NewWallClockDeadline(timeLimit),
		RNG:       rng,
		Objective: objective,
	})

	start := time.Now()
	res := p.Solve()
	elapsed := time.Since(start)

	if len(res.Solution) > 0 {
		if err := algo.VerifyConfigs(inst, res.Solution); err != nil {
			return nil, fmt.Errorf("solution failed verification: %w", err)
		}
	}

	return &result{
		Instance:   g.Name,
		NumAgents:  g.NumAgents,
		GridSize:   fmt.Sprintf("%dx%d", g.Width, g.Height),
		Objective:  objective.String(),
		Seed:       seed,
		Optimal:    res.Optimal,
		LoopCnt:    res.LoopCnt,
		NumNodeGen: res.NumNodeGen,
		HistCost:   joinInts(res.HistCost),
		HistTime:   joinInt64s(res.HistTime),
		ElapsedMs:  float64(elapsed.Microseconds()) / 1000.0,
	}, nil
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ";")
}

func joinInt64s(vs []int64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, ";")
}

func writeCSV(results []*result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"instance", "num_agents", "grid_size", "objective", "seed",
		"optimal", "loop_cnt", "num_node_gen", "hist_cost", "hist_time", "elapsed_ms",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			r.Instance, strconv.Itoa(r.NumAgents), r.GridSize, r.Objective, strconv.FormatInt(r.Seed, 10),
			strconv.FormatBool(r.Optimal), strconv.Itoa(r.LoopCnt), strconv.Itoa(r.NumNodeGen),
			r.HistCost, r.HistTime, fmt.Sprintf("%.3f", r.ElapsedMs),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func parseObjectives(s string) ([]core.Objective, error) {
	var out []core.Objective
	for _, name := range strings.Split(s, ",") {
		switch strings.TrimSpace(name) {
		case "none":
			out = append(out, core.ObjNone)
		case "makespan":
			out = append(out, core.ObjMakespan)
		case "sum_of_loss":
			out = append(out, core.ObjSumOfLoss)
		default:
			return nil, fmt.Errorf("unknown objective %q", name)
		}
	}
	return out, nil
}

func parseSeeds(s string) ([]int64, error) {
	var out []int64
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad seed %q: %w", part, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func main() {
	inputDir := flag.String("input", "testdata", "directory of geninstance JSON files")
	outputFile := flag.String("output", "evidence/benchmark_results.csv", "output CSV file")
	objectivesFlag := flag.String("objectives", "makespan", "comma-separated objectives: none,makespan,sum_of_loss")
	seedsFlag := flag.String("seeds", "0,1,2", "comma-separated RNG seeds (0 = deterministic/no RNG)")
	timeLimit := flag.Duration("time-limit", 10*time.Second, "per-run deadline")

	flag.Parse()

	objectives, err := parseObjectives(*objectivesFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "benchmark: %v\n", err)
		os.Exit(1)
	}
	seeds, err := parseSeeds(*seedsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "benchmark: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(*outputFile), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "benchmark: create output directory: %v\n", err)
		os.Exit(1)
	}

	files, err := filepath.Glob(filepath.Join(*inputDir, "*.json"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "benchmark: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "benchmark: no instance files in %s (run geninstance first)\n", *inputDir)
		os.Exit(1)
	}

	var results []*result
	for _, file := range files {
		inst, err := loadGridInstance(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "benchmark: load %s: %v\n", file, err)
			continue
		}
		for _, objective := range objectives {
			for _, seed := range seeds {
				r, err := runOne(inst, objective, seed, *timeLimit)
				if err != nil {
					fmt.Fprintf(os.Stderr, "benchmark: %s objective=%s seed=%d: %v\n", inst.Name, objective, seed, err)
					continue
				}
				results = append(results, r)
			}
		}
	}

	if err := writeCSV(results, *outputFile); err != nil {
		fmt.Fprintf(os.Stderr, "benchmark: write CSV: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d results to %s\n", len(results), *outputFile)
}
