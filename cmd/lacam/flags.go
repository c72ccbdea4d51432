package main

import "flag"

type flagSet struct {
	instancePath string
	timeLimitMs  int64
	seed         int64
	objective    string
	restartRate  float64
	verbose      int
	disableSwap  bool
	verify       bool
	format       string
}

func newFlagSet() *flagSet {
	return &flagSet{}
}

func (f *flagSet) parse(args []string) error {
	fs := flag.NewFlagSet("lacam", flag.ContinueOnError)
	fs.StringVar(&f.instancePath, "instance", "", "path to a scenario file (see cmd/lacam/loader.go grammar)")
	fs.Int64Var(&f.timeLimitMs, "time-limit-ms", 5000, "wall-clock deadline in milliseconds")
	fs.Int64Var(&f.seed, "seed", 0, "RNG seed (0 disables randomness: deterministic solve)")
	fs.StringVar(&f.objective, "objective", "makespan", "none|makespan|sum_of_loss")
	fs.Float64Var(&f.restartRate, "restart-rate", 0.9, "probability of restarting search at the root on a re-explored configuration")
	fs.IntVar(&f.verbose, "v", 0, "verbosity level passed to the solver as Options.Verbose (not forwarded to the klog sink)")
	fs.BoolVar(&f.disableSwap, "disable-swap", false, "disable the corridor-swap primitive")
	fs.BoolVar(&f.verify, "verify", false, "re-check the produced solution before printing it")
	fs.StringVar(&f.format, "format", "text", "text|json")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if f.instancePath == "" {
		return flag.ErrHelp
	}
	return nil
}
