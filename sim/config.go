package sim

import "fmt"

// WorkloadKind selects the trace-generation composition table (see
// sim/workload). Declared here, not in sim/workload, so Config stays
// self-describing without importing the generator package.
type WorkloadKind string

const (
	WorkloadKVM       WorkloadKind = "kvm"
	WorkloadKernel    WorkloadKind = "kernel"
	WorkloadMixed     WorkloadKind = "mixed"
	WorkloadSynthetic WorkloadKind = "synthetic"
)

// EngineKind selects the policy engine the driver runs.
type EngineKind string

const (
	EngineCMC EngineKind = "cmc"
	EngineRA  EngineKind = "ra"
)

// Config is the Configuration record supplied by the embedding caller.
// Field names, defaults, and constraints match the external interface:
// chunk_size_blocks, cluster_size_chunks, cache_size_blocks,
// prefetch_window_blocks, block_range, n_events, workload_kind,
// sequential_prob, seed, engine, epoch_size.
type Config struct {
	ChunkSizeBlocks       int          `yaml:"chunk_size_blocks"`
	ClusterSizeChunks     int          `yaml:"cluster_size_chunks"`
	CacheSizeBlocks       int          `yaml:"cache_size_blocks"`
	PrefetchWindowBlocks  int          `yaml:"prefetch_window_blocks"`
	BlockRange            int64        `yaml:"block_range"`
	NEvents               int64        `yaml:"n_events"`
	WorkloadKind          WorkloadKind `yaml:"workload_kind"`
	SequentialProb        float64      `yaml:"sequential_prob"`
	Seed                  int64        `yaml:"seed"`
	Engine                EngineKind   `yaml:"engine"`
	EpochSize             int64        `yaml:"epoch_size"`
}

// DefaultConfig returns the Configuration record's documented defaults.
func DefaultConfig() Config {
	return Config{
		ChunkSizeBlocks:      16,
		ClusterSizeChunks:    64,
		CacheSizeBlocks:      4096,
		PrefetchWindowBlocks: 16,
		BlockRange:           30000,
		NEvents:              15000,
		WorkloadKind:         WorkloadKVM,
		SequentialProb:       0.6,
		Seed:                 42,
		Engine:               EngineCMC,
		EpochSize:            1000,
	}
}

// Validate checks every field against its documented constraint and
// reports the first violation found, naming the offending field.
// Called once by the driver before any work begins (§7: configuration
// invalid is reported once, before any work).
func (c Config) Validate() error {
	if c.ChunkSizeBlocks < 1 || c.ChunkSizeBlocks > 1024 {
		return fmt.Errorf("chunk_size_blocks must be in [1,1024], got %d", c.ChunkSizeBlocks)
	}
	if c.ClusterSizeChunks < 1 || c.ClusterSizeChunks > 512 {
		return fmt.Errorf("cluster_size_chunks must be in [1,512], got %d", c.ClusterSizeChunks)
	}
	if c.CacheSizeBlocks < 1 {
		return fmt.Errorf("cache_size_blocks must be positive, got %d", c.CacheSizeBlocks)
	}
	if c.PrefetchWindowBlocks < 0 {
		return fmt.Errorf("prefetch_window_blocks must be non-negative, got %d", c.PrefetchWindowBlocks)
	}
	if c.PrefetchWindowBlocks > 4*c.ChunkSizeBlocks {
		return fmt.Errorf("prefetch_window_blocks must be <= 4*chunk_size_blocks (%d), got %d", 4*c.ChunkSizeBlocks, c.PrefetchWindowBlocks)
	}
	if c.BlockRange < 1 {
		return fmt.Errorf("block_range must be positive, got %d", c.BlockRange)
	}
	if c.NEvents < 1 {
		return fmt.Errorf("n_events must be positive, got %d", c.NEvents)
	}
	switch c.WorkloadKind {
	case WorkloadKVM, WorkloadKernel, WorkloadMixed, WorkloadSynthetic:
	default:
		return fmt.Errorf("unknown workload_kind %q; valid: kvm, kernel, mixed, synthetic", c.WorkloadKind)
	}
	if c.WorkloadKind == WorkloadSynthetic && (c.SequentialProb < 0 || c.SequentialProb > 1) {
		return fmt.Errorf("sequential_prob must be in [0,1], got %f", c.SequentialProb)
	}
	switch c.Engine {
	case EngineCMC, EngineRA:
	default:
		return fmt.Errorf("unknown engine %q; valid: cmc, ra", c.Engine)
	}
	if c.EpochSize < 1 {
		return fmt.Errorf("epoch_size must be positive, got %d", c.EpochSize)
	}
	return nil
}
