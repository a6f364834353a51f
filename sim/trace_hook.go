package sim

// accessRecorder is the minimal surface the policy engines need to emit
// optional per-access decision records. Defined here (not imported from
// sim/trace) so sim has no compile-time dependency on the trace
// package; the driver adapts a *trace.AccessTrace to this interface
// when a trace is requested.
type accessRecorder interface {
	RecordAccess(blockID, chunkID int64, hit bool, prefetchIssued int, predictedChunk int64, predictedChunkValid bool)
}
