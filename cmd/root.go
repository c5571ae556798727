package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/disksim/disksim/sim"
	"github.com/disksim/disksim/sim/trace"
	"github.com/disksim/disksim/sim/workload"
)

// initialHeadEnv overrides the starting head position when the flag is not
// set. Flags win over the environment, which wins over the scenario file.
const initialHeadEnv = "DISKSIM_INITIAL_HEAD"

var (
	// CLI flags shared by every subcommand
	scenarioPath   string   // Path to a YAML scenario file
	logLevel       string   // Log verbosity level
	initialHead    int      // Starting head position for every policy
	windowSize     int      // Maximum requests per window
	bufferCapacity int      // Staging ring capacity
	chunked        bool     // Window the request stream (false: one window)
	policies       []string // Policy names to run, in report order
	outPath        string   // Write the full report as JSON to this path

	// CLI flags for synthetic workloads
	seed    int64   // Seed for random request generation
	pattern string  // Workload pattern (uniform, gaussian, constant)
	center  float64 // Hotspot track for the gaussian pattern
	spread  float64 // Standard deviation for the gaussian pattern
	value   int     // Track value for the constant pattern
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:     "disksim",
	Short:   "Disk-head scheduling policy simulator",
	Long: "Replays a stream of track requests through the FCFS, SSTF and SCAN\n" +
		"scheduling policies and reports seek distances and per-window statistics\n" +
		"for each.",
	Version: "1.0.0",
}

// fileCmd simulates requests read from a file
var fileCmd = &cobra.Command{
	Use:   "file <path>",
	Short: "Simulate requests read from a file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		cfg, _ := mustResolveConfig(cmd)
		positions, err := workload.ReadPositionsFile(args[0])
		if err != nil {
			logrus.Fatalf("reading requests: %v", err)
		}
		runSimulation(cfg, positions, args[0])
	},
}

// stdinCmd simulates requests read from standard input
var stdinCmd = &cobra.Command{
	Use:     "stdin",
	Aliases: []string{"in"},
	Short:   "Simulate requests read from standard input",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		cfg, _ := mustResolveConfig(cmd)
		positions, err := workload.ReadPositions(os.Stdin)
		if err != nil {
			logrus.Fatalf("reading requests: %v", err)
		}
		runSimulation(cfg, positions, "stdin")
	},
}

// randCmd simulates a synthetic request workload
var randCmd = &cobra.Command{
	Use:   "rand [count]",
	Short: "Simulate a synthetic request workload",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		cfg, sc := mustResolveConfig(cmd)
		spec, count, err := resolveWorkload(cmd, sc, args)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		sampler, err := workload.NewTrackSampler(spec)
		if err != nil {
			logrus.Fatalf("building workload sampler: %v", err)
		}
		rng := rand.New(rand.NewSource(seed))
		positions := workload.Generate(rng, sampler, count)
		logrus.Debugf("Generated %d positions with pattern %q, seed %d", count, spec.Pattern, seed)
		runSimulation(cfg, positions, "rand")
	},
}

// runSimulation screens the raw request stream, runs every selected policy
// over it, and renders the report.
func runSimulation(cfg sim.Config, raw []int, source string) {
	accepted, rejected := sim.ScreenTracks(raw)
	for _, v := range rejected {
		logrus.Warnf("rejected request: %v", v)
	}
	logrus.Infof("Starting run: %d requests accepted, %d rejected, initial head %d, window size %d, chunked %v",
		len(accepted), len(rejected), cfg.InitialHead, cfg.WindowSize, cfg.Chunked)

	started := time.Now()
	tr := trace.NewRunTrace(trace.RunMeta{
		RunID:       uuid.NewString(),
		StartedAt:   started,
		Source:      source,
		InitialHead: cfg.InitialHead,
		WindowSize:  cfg.WindowSize,
		Chunked:     cfg.Chunked,
		Accepted:    len(accepted),
		Rejected:    len(rejected),
	})
	for _, v := range rejected {
		tr.RecordRejection(trace.RejectionRecord{Index: v.Index, Value: v.Value})
	}

	s := sim.NewSimulator(cfg, tr)
	s.Run(accepted)
	tr.Meta.Elapsed = time.Since(started)

	renderReport(os.Stdout, tr)
	if outPath != "" {
		writeReportJSON(outPath, tr)
	}
	logrus.Info("Run complete.")
}

// setupLogging applies the --log flag.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// mustResolveConfig resolves the effective run configuration, exiting on
// invalid input.
func mustResolveConfig(cmd *cobra.Command) (sim.Config, *Scenario) {
	cfg, sc, err := resolveConfig(cmd)
	if err != nil {
		logrus.Fatalf("%v", err)
	}
	return cfg, sc
}

// resolveConfig merges defaults, the scenario file, the environment and
// explicit flags into the effective run configuration.
func resolveConfig(cmd *cobra.Command) (sim.Config, *Scenario, error) {
	cfg := sim.DefaultConfig()
	var sc *Scenario
	if scenarioPath != "" {
		loaded, err := LoadScenario(scenarioPath)
		if err != nil {
			return sim.Config{}, nil, fmt.Errorf("loading scenario %s: %w", scenarioPath, err)
		}
		sc = loaded
		sc.apply(&cfg)
	}
	if env := os.Getenv(initialHeadEnv); env != "" && !cmd.Flags().Changed("initial-head") {
		v, err := strconv.Atoi(env)
		if err != nil {
			return sim.Config{}, nil, fmt.Errorf("%s=%q is not an integer", initialHeadEnv, env)
		}
		cfg.InitialHead = v
	}
	if cmd.Flags().Changed("initial-head") {
		cfg.InitialHead = initialHead
	}
	if cmd.Flags().Changed("window-size") {
		cfg.WindowSize = windowSize
	}
	if cmd.Flags().Changed("buffer-capacity") {
		cfg.BufferCapacity = bufferCapacity
	}
	if cmd.Flags().Changed("chunked") {
		cfg.Chunked = chunked
	}
	if cmd.Flags().Changed("policies") {
		cfg.Policies = policies
	}
	if err := cfg.Validate(); err != nil {
		return sim.Config{}, nil, err
	}
	return cfg, sc, nil
}

// resolveWorkload merges workload defaults, the scenario file and rand
// flags into a sampler spec and request count. The count comes from the
// positional argument when given, otherwise from the scenario file.
func resolveWorkload(cmd *cobra.Command, sc *Scenario, args []string) (workload.SamplerSpec, int, error) {
	spec := workload.SamplerSpec{
		Pattern: workload.PatternUniform,
		Min:     sim.MinTrack,
		Max:     sim.MaxTrack,
		Center:  float64(sim.DefaultInitialHead),
		Spread:  8192,
	}
	count := -1
	if sc != nil && sc.Workload != nil {
		w := sc.Workload
		if w.Pattern != "" {
			spec.Pattern = w.Pattern
		}
		if w.Center != 0 {
			spec.Center = w.Center
		}
		if w.Spread != 0 {
			spec.Spread = w.Spread
		}
		spec.Value = w.Value
		if w.Count > 0 {
			count = w.Count
		}
	}
	if cmd.Flags().Changed("pattern") {
		spec.Pattern = pattern
	}
	if cmd.Flags().Changed("center") {
		spec.Center = center
	}
	if cmd.Flags().Changed("spread") {
		spec.Spread = spread
	}
	if cmd.Flags().Changed("value") {
		spec.Value = value
	}
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return workload.SamplerSpec{}, 0, fmt.Errorf("request count must be a non-negative integer, got %q", args[0])
		}
		count = n
	}
	if count < 0 {
		return workload.SamplerSpec{}, 0, fmt.Errorf("request count required (positional argument or scenario workload.count)")
	}
	return spec, count, nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&scenarioPath, "config", "", "Path to a YAML scenario file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().IntVar(&initialHead, "initial-head", sim.DefaultInitialHead, "Starting head position for every policy")
	rootCmd.PersistentFlags().IntVar(&windowSize, "window-size", sim.DefaultWindowSize, "Maximum requests processed per window")
	rootCmd.PersistentFlags().IntVar(&bufferCapacity, "buffer-capacity", sim.DefaultBufferCapacity, "Staging buffer capacity")
	rootCmd.PersistentFlags().BoolVar(&chunked, "chunked", true, "Window the request stream (false processes it whole)")
	rootCmd.PersistentFlags().StringSliceVar(&policies, "policies", sim.PolicyNames(), "Comma-separated policies to run")
	rootCmd.PersistentFlags().StringVar(&outPath, "out", "", "Write the full report as JSON to this path")

	randCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random request generation")
	randCmd.Flags().StringVar(&pattern, "pattern", workload.PatternUniform, "Workload pattern (uniform, gaussian, constant)")
	randCmd.Flags().Float64Var(&center, "center", float64(sim.DefaultInitialHead), "Hotspot track for the gaussian pattern")
	randCmd.Flags().Float64Var(&spread, "spread", 8192, "Standard deviation for the gaussian pattern")
	randCmd.Flags().IntVar(&value, "value", 0, "Track value for the constant pattern")

	rootCmd.AddCommand(fileCmd)
	rootCmd.AddCommand(stdinCmd)
	rootCmd.AddCommand(randCmd)
}
