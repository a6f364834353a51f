// cmd/root.go
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/blockprefetch/cmc-sim/sim"
	"github.com/blockprefetch/cmc-sim/sim/trace"
	"github.com/blockprefetch/cmc-sim/sim/workload"
)

var (
	configPath   string
	outPath      string
	traceLevel   string
	logLevel     string
	engine       string
	workloadKind string

	chunkSizeBlocks      int
	clusterSizeChunks    int
	cacheSizeBlocks      int
	prefetchWindowBlocks int
	blockRange           int64
	nEvents              int64
	sequentialProb       float64
	seed                 int64
	epochSize            int64
)

var rootCmd = &cobra.Command{
	Use:   "cmc-sim",
	Short: "Trace-driven block-prefetch simulator (CMC vs read-ahead)",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single simulation and print its statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		setLogLevel()

		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		stats, err := runOne(cfg)
		if err != nil {
			return err
		}

		stats.Print()
		if outPath != "" {
			if err := sim.SaveResults(outPath, stats); err != nil {
				return err
			}
			logrus.Infof("wrote results to %s", outPath)
		}
		return nil
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run CMC and RA over the same configuration and print both",
	RunE: func(cmd *cobra.Command, args []string) error {
		setLogLevel()

		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		cfg.Engine = sim.EngineCMC
		cmcStats, err := runOne(cfg)
		if err != nil {
			return err
		}

		cfg.Engine = sim.EngineRA
		raStats, err := runOne(cfg)
		if err != nil {
			return err
		}

		logrus.Info("=== CMC ===")
		cmcStats.Print()
		logrus.Info("=== Read-Ahead ===")
		raStats.Print()
		return nil
	},
}

// runOne builds a trace generator from cfg and drives the configured
// engine over it, optionally attaching an access-decision recorder
// (§4.7) when --trace-level requests one.
func runOne(cfg sim.Config) (sim.Stats, error) {
	gen, err := workload.NewGenerator(cfg)
	if err != nil {
		return sim.Stats{}, err
	}

	if !trace.IsValidTraceLevel(traceLevel) {
		logrus.Fatalf("invalid trace level: %s", traceLevel)
	}
	if traceLevel == "" || traceLevel == string(trace.TraceLevelNone) {
		return sim.RunWithTrace(cfg, gen)
	}

	recorder := trace.NewAccessTrace(trace.TraceConfig{Level: trace.TraceLevel(traceLevel)})
	return sim.RunWithTraceRecording(cfg, gen, recorder)
}

// resolveConfig loads the base config (from --config, or the
// documented defaults) and applies any flags the user actually set as
// overrides, so a preset file plus a handful of flag tweaks compose
// cleanly.
func resolveConfig(cmd *cobra.Command) (sim.Config, error) {
	cfg := sim.DefaultConfig()
	if configPath != "" {
		loaded, err := LoadYAML(configPath)
		if err != nil {
			return sim.Config{}, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("chunk-size-blocks") {
		cfg.ChunkSizeBlocks = chunkSizeBlocks
	}
	if flags.Changed("cluster-size-chunks") {
		cfg.ClusterSizeChunks = clusterSizeChunks
	}
	if flags.Changed("cache-size-blocks") {
		cfg.CacheSizeBlocks = cacheSizeBlocks
	}
	if flags.Changed("prefetch-window-blocks") {
		cfg.PrefetchWindowBlocks = prefetchWindowBlocks
	}
	if flags.Changed("block-range") {
		cfg.BlockRange = blockRange
	}
	if flags.Changed("n-events") {
		cfg.NEvents = nEvents
	}
	if flags.Changed("workload-kind") {
		cfg.WorkloadKind = sim.WorkloadKind(workloadKind)
	}
	if flags.Changed("sequential-prob") {
		cfg.SequentialProb = sequentialProb
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("engine") {
		cfg.Engine = sim.EngineKind(engine)
	}
	if flags.Changed("epoch-size") {
		cfg.EpochSize = epochSize
	}

	return cfg, nil
}

func setLogLevel() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// Execute runs the root command; main.go's entrypoint delegates here.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	for _, c := range []*cobra.Command{runCmd, compareCmd} {
		c.Flags().StringVar(&configPath, "config", "", "path to a YAML configuration preset")
		c.Flags().StringVar(&outPath, "out", "", "path to write the JSON statistics record (run only)")
		c.Flags().StringVar(&traceLevel, "trace-level", "none", "access decision trace level (none, decisions)")
		c.Flags().StringVar(&logLevel, "log", "warn", "log level (debug, info, warn, error)")
		c.Flags().StringVar(&engine, "engine", "", "policy engine (cmc, ra); overrides config")
		c.Flags().StringVar(&workloadKind, "workload-kind", "", "workload kind (kvm, kernel, mixed, synthetic); overrides config")
		c.Flags().IntVar(&chunkSizeBlocks, "chunk-size-blocks", 0, "blocks per chunk; overrides config")
		c.Flags().IntVar(&clusterSizeChunks, "cluster-size-chunks", 0, "chunks per cluster; overrides config")
		c.Flags().IntVar(&cacheSizeBlocks, "cache-size-blocks", 0, "LRU cache capacity in blocks; overrides config")
		c.Flags().IntVar(&prefetchWindowBlocks, "prefetch-window-blocks", 0, "prefetch window in blocks; overrides config")
		c.Flags().Int64Var(&blockRange, "block-range", 0, "total addressable block range; overrides config")
		c.Flags().Int64Var(&nEvents, "n-events", 0, "number of trace events to generate; overrides config")
		c.Flags().Float64Var(&sequentialProb, "sequential-prob", 0, "synthetic workload sequential-access probability; overrides config")
		c.Flags().Int64Var(&seed, "seed", 0, "trace generator seed; overrides config")
		c.Flags().Int64Var(&epochSize, "epoch-size", 0, "accesses per hit-rate trajectory sample; overrides config")
	}

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
}
