// Package trace provides per-access decision-trace recording for the
// block prefetch simulator. This package has no dependencies on sim —
// it stores pure data types and is adapted to sim's accessRecorder
// interface by the driver's caller.
package trace

// AccessRecord captures one access's decision: what was predicted,
// whether a prefetch was issued, and whether the access itself hit.
type AccessRecord struct {
	BlockID             int64
	ChunkID             int64
	Hit                 bool
	PrefetchIssued      int
	PredictedChunk      int64
	PredictedChunkValid bool
}
