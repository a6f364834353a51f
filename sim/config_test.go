package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_MatchesDocumentedDefaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 16, cfg.ChunkSizeBlocks)
	assert.Equal(t, 64, cfg.ClusterSizeChunks)
	assert.Equal(t, 4096, cfg.CacheSizeBlocks)
	assert.Equal(t, 16, cfg.PrefetchWindowBlocks)
	assert.EqualValues(t, 30000, cfg.BlockRange)
	assert.EqualValues(t, 15000, cfg.NEvents)
	assert.Equal(t, WorkloadKVM, cfg.WorkloadKind)
	assert.Equal(t, 0.6, cfg.SequentialProb)
	assert.EqualValues(t, 42, cfg.Seed)
	assert.Equal(t, EngineCMC, cfg.Engine)
	assert.EqualValues(t, 1000, cfg.EpochSize)
	require.NoError(t, cfg.Validate(), "the documented defaults must themselves be valid")
}

func TestConfig_Validate_RejectsOutOfRangeChunkSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ChunkSizeBlocks = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.ChunkSizeBlocks = 1025
	assert.Error(t, cfg.Validate())
}

func TestConfig_Validate_RejectsOutOfRangeClusterSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ClusterSizeChunks = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.ClusterSizeChunks = 513
	assert.Error(t, cfg.Validate())
}

func TestConfig_Validate_RejectsNonPositiveCacheSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CacheSizeBlocks = 0
	assert.Error(t, cfg.Validate())
}

func TestConfig_Validate_RejectsNegativePrefetchWindow(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PrefetchWindowBlocks = -1
	assert.Error(t, cfg.Validate())
}

func TestConfig_Validate_AllowsZeroPrefetchWindow(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PrefetchWindowBlocks = 0
	assert.NoError(t, cfg.Validate(), "zero disables prefetch but is not itself invalid")
}

func TestConfig_Validate_RejectsPrefetchWindowOverFourChunks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PrefetchWindowBlocks = 4*cfg.ChunkSizeBlocks + 1
	assert.Error(t, cfg.Validate())
}

func TestConfig_Validate_RejectsUnknownWorkloadKind(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WorkloadKind = "bogus"
	assert.Error(t, cfg.Validate())
}

func TestConfig_Validate_RejectsSequentialProbOutOfRangeForSynthetic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WorkloadKind = WorkloadSynthetic
	cfg.SequentialProb = 1.5
	assert.Error(t, cfg.Validate())
}

func TestConfig_Validate_IgnoresSequentialProbForNonSyntheticKinds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WorkloadKind = WorkloadKVM
	cfg.SequentialProb = 99 // out of [0,1], but irrelevant outside synthetic
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate_RejectsUnknownEngine(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Engine = "bogus"
	assert.Error(t, cfg.Validate())
}

func TestConfig_Validate_RejectsNonPositiveEpochSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EpochSize = 0
	assert.Error(t, cfg.Validate())
}
