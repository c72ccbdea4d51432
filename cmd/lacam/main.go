// Command lacam runs the LaCAM multi-agent path-finding solver against a
// text scenario file and prints the resulting plan.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/mstenholm/lacam-go/internal/algo"
	"github.com/mstenholm/lacam-go/internal/core"
	"github.com/mstenholm/lacam-go/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := newFlagSet()
	if err := fs.parse(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	data, err := os.ReadFile(fs.instancePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lacam: read instance: %v\n", err)
		return 1
	}

	inst, err := loadInstance(string(data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "lacam: %v\n", err)
		return 1
	}

	objective, err := parseObjective(fs.objective)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lacam: %v\n", err)
		return 1
	}

	var rng *core.RNG
	if fs.seed != 0 {
		rng = core.NewRNG(fs.seed)
	}

	opts := algo.Options{
		Deadline:    core.NewWallClockDeadline(time.Duration(fs.timeLimitMs) * time.Millisecond),
		RNG:         rng,
		Verbose:     fs.verbose,
		Objective:   objective,
		RestartRate: fs.restartRate,
		Logger:      logging.KlogSink{},
		DisableSwap: fs.disableSwap,
	}

	p := algo.New(inst, opts)
	start := time.Now()
	res := p.Solve()
	elapsed := time.Since(start)

	if fs.verify && len(res.Solution) > 0 {
		if err := algo.VerifyConfigs(inst, res.Solution); err != nil {
			fmt.Fprintf(os.Stderr, "lacam: solution failed verification: %v\n", err)
			return 1
		}
	}

	fmt.Fprint(os.Stderr, res.AdditionalInfo())
	fmt.Fprintf(os.Stderr, "elapsed=%s nodes_generated=%s\n",
		elapsed.Round(time.Millisecond), humanize.Comma(int64(res.NumNodeGen)))

	printSolution(res, fs.format)

	if len(res.Solution) == 0 {
		return 1
	}
	return 0
}

func printSolution(res *algo.Result, format string) {
	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(res.Solution)
	default:
		for t, c := range res.Solution {
			parts := make([]string, len(c))
			for i, v := range c {
				parts[i] = fmt.Sprintf("%d", v)
			}
			fmt.Printf("t=%d: %s\n", t, strings.Join(parts, " "))
		}
	}
}

func parseObjective(s string) (core.Objective, error) {
	switch s {
	case "none":
		return core.ObjNone, nil
	case "makespan":
		return core.ObjMakespan, nil
	case "sum_of_loss":
		return core.ObjSumOfLoss, nil
	default:
		return 0, fmt.Errorf("unknown --objective %q (want none|makespan|sum_of_loss)", s)
	}
}
