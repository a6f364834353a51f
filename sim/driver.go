package sim

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/sirupsen/logrus"
)

// EpochPoint is one sample of the hit-rate trajectory: (accesses_so_far,
// hit_rate_so_far), taken every epoch_size accesses so callers can
// observe how quickly a policy learns (§4.6).
type EpochPoint struct {
	AccessesSoFar int64   `json:"accesses_so_far"`
	HitRate       float64 `json:"hit_rate_so_far"`
}

// Stats is the Statistics record returned by a run (§3, §4.6): monotonic
// counters accumulated over the run plus the derived metrics computed
// from them.
type Stats struct {
	Accesses              int64 `json:"accesses"`
	Hits                  int64 `json:"hits"`
	Misses                int64 `json:"misses"`
	PrefetchIssued        int64 `json:"prefetch_issued"`
	PrefetchUsed          int64 `json:"prefetch_used"`
	PrefetchEvictedUnused int64 `json:"prefetch_evicted_unused"`
	MCRowsAllocated       int64 `json:"mc_rows_allocated"`
	ClustersAllocated     int64 `json:"clusters_allocated"`

	HitRate            float64 `json:"hit_rate"`
	PrefetchEfficiency float64 `json:"prefetch_efficiency"`
	MemoryBytes        int64   `json:"memory_bytes"`

	HitRateTrajectory []EpochPoint `json:"hit_rate_trajectory"`
}

// mcRowByteSize is the paper's six-field x 4-byte model used for the
// formula-based memory_bytes figure (§4.6); it does not reflect Go's
// actual in-memory MCRow layout.
const mcRowByteSize = 24

// Trace is anything that can hand the driver one block id at a time.
// The sim/workload generator satisfies this; so does any externally
// injected trace (§6: run_with_trace allows external trace injection).
type Trace interface {
	Next() (blockID int64, ok bool)
}

// AccessRecorder is the exported form of accessRecorder: it lets callers
// outside this package (sim/trace's *AccessTrace, in particular) plug a
// decision recorder into RunWithTraceRecording without this package
// importing sim/trace.
type AccessRecorder interface {
	RecordAccess(blockID, chunkID int64, hit bool, prefetchIssued int, predictedChunk int64, predictedChunkValid bool)
}

// RunWithTrace is the core driver entry point (§4.6, §6): it validates
// cfg, drives cfg.Engine over trace to completion, and returns the
// accumulated statistics record. It does not construct trace itself —
// sim/workload (which depends on this package for Config and the RNG)
// is where trace construction from a Config lives; see cmd's "run"
// wiring for the default, config-driven entry point.
func RunWithTrace(cfg Config, trace Trace) (Stats, error) {
	return RunWithTraceRecording(cfg, trace, nil)
}

// RunWithTraceRecording is RunWithTrace with an optional per-access
// decision recorder attached to the policy engine (§6: decision trace
// output). Pass nil to skip recording entirely.
func RunWithTraceRecording(cfg Config, trace Trace, rec AccessRecorder) (Stats, error) {
	if err := cfg.Validate(); err != nil {
		return Stats{}, fmt.Errorf("invalid configuration: %w", err)
	}

	cache := NewLRUCache(cfg.CacheSizeBlocks)
	chain := NewChain(cfg.ClusterSizeChunks)

	var engine Engine
	switch cfg.Engine {
	case EngineCMC:
		p := NewCMCPolicy(cfg, cache, chain)
		if rec != nil {
			p.attachTrace(rec)
		}
		engine = p
	case EngineRA:
		p := NewRAPolicy(cfg, cache)
		if rec != nil {
			p.attachTrace(rec)
		}
		engine = p
	default:
		return Stats{}, fmt.Errorf("unknown engine %q", cfg.Engine)
	}

	var stats Stats
	for {
		blockID, ok := trace.Next()
		if !ok {
			break
		}
		hit := engine.Access(blockID)
		stats.Accesses++
		if hit {
			stats.Hits++
		} else {
			stats.Misses++
		}
		if stats.Accesses%cfg.EpochSize == 0 {
			stats.HitRateTrajectory = append(stats.HitRateTrajectory, EpochPoint{
				AccessesSoFar: stats.Accesses,
				HitRate:       float64(stats.Hits) / float64(stats.Accesses),
			})
		}
	}

	stats.PrefetchIssued = cache.PrefetchIssued
	stats.PrefetchUsed = cache.PrefetchUsed
	stats.PrefetchEvictedUnused = cache.PrefetchEvictedUnused
	stats.MCRowsAllocated = chain.RowsAllocated()
	stats.ClustersAllocated = chain.ClustersAllocated()

	if stats.Accesses > 0 {
		stats.HitRate = float64(stats.Hits) / float64(stats.Accesses)
	}
	stats.PrefetchEfficiency = float64(stats.PrefetchUsed) / float64(maxInt64(1, stats.PrefetchIssued))
	stats.MemoryBytes = stats.MCRowsAllocated * mcRowByteSize

	if err := checkInvariants(cfg, cache, chain, stats); err != nil {
		logrus.Errorf("run aborted: %v", err)
		return Stats{}, err
	}

	return stats, nil
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// checkInvariants re-verifies I1-I5 against the finished run's state.
// A breach here is a programmer error (§7): the run aborts with a
// diagnostic and no partial results are returned.
func checkInvariants(cfg Config, cache *LRUCache, chain *Chain, stats Stats) error {
	if cache.Len() > cfg.CacheSizeBlocks {
		return newInvariantError("I1", fmt.Sprintf("cache holds %d blocks, exceeds cache_size_blocks=%d", cache.Len(), cfg.CacheSizeBlocks))
	}
	if stats.Hits+stats.Misses != stats.Accesses {
		return newInvariantError("I5", fmt.Sprintf("hits(%d)+misses(%d) != accesses(%d)", stats.Hits, stats.Misses, stats.Accesses))
	}
	if stats.PrefetchUsed > stats.PrefetchIssued {
		return newInvariantError("I5", fmt.Sprintf("prefetch_used(%d) > prefetch_issued(%d)", stats.PrefetchUsed, stats.PrefetchIssued))
	}
	if stats.PrefetchEvictedUnused > stats.PrefetchIssued {
		return newInvariantError("I5", fmt.Sprintf("prefetch_evicted_unused(%d) > prefetch_issued(%d)", stats.PrefetchEvictedUnused, stats.PrefetchIssued))
	}
	maxClusters := int64(math.Ceil(float64(cfg.BlockRange) / float64(cfg.ChunkSizeBlocks*cfg.ClusterSizeChunks)))
	if stats.ClustersAllocated > maxClusters {
		return newInvariantError("I4", fmt.Sprintf("clusters_allocated(%d) exceeds ceil(block_range/(chunk_size*cluster_size))=%d", stats.ClustersAllocated, maxClusters))
	}
	for _, cb := range chain.clusters {
		for i := range cb.rows {
			if !cb.ensured[i] {
				continue
			}
			if err := checkRowInvariants(&cb.rows[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkRowInvariants verifies I2 and I3 for a single row: pairwise
// distinctness and descending order by count.
func checkRowInvariants(r *MCRow) error {
	seen := make(map[int64]bool, slotCount)
	lastCount := int64(math.MaxInt64)
	for _, s := range r.slots {
		if !s.present {
			continue
		}
		if seen[s.chunk] {
			return newInvariantError("I2", fmt.Sprintf("chunk %d appears in more than one slot of the same row", s.chunk))
		}
		seen[s.chunk] = true
		if s.count > lastCount {
			return newInvariantError("I3", fmt.Sprintf("row slots are not in descending count order: %d follows %d", s.count, lastCount))
		}
		lastCount = s.count
	}
	return nil
}

// Print writes a human-readable summary of stats to stdout, in the
// banner style the rest of this codebase uses for end-of-run reporting.
func (s Stats) Print() {
	fmt.Println("=== Simulation Results ===")
	fmt.Printf("Accesses             : %d\n", s.Accesses)
	fmt.Printf("Hits / Misses        : %d / %d\n", s.Hits, s.Misses)
	fmt.Printf("Hit Rate             : %.4f\n", s.HitRate)
	fmt.Printf("Prefetch Issued/Used : %d / %d\n", s.PrefetchIssued, s.PrefetchUsed)
	fmt.Printf("Prefetch Evicted Unused : %d\n", s.PrefetchEvictedUnused)
	fmt.Printf("Prefetch Efficiency  : %.4f\n", s.PrefetchEfficiency)
	fmt.Printf("MC Rows Allocated    : %d\n", s.MCRowsAllocated)
	fmt.Printf("Clusters Allocated   : %d\n", s.ClustersAllocated)
	fmt.Printf("Memory (bytes)       : %d\n", s.MemoryBytes)
}

// SaveResults writes stats as JSON to path.
func SaveResults(path string, s Stats) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
