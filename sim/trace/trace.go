package trace

// TraceLevel controls the verbosity of per-access recording.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelDecisions records every access decision (hit, prediction,
	// prefetch count).
	TraceLevelDecisions TraceLevel = "decisions"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:      true,
	TraceLevelDecisions: true,
	"":                  true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior for one run.
type TraceConfig struct {
	Level TraceLevel
}

// AccessTrace collects per-access decision records during a run. It
// satisfies sim's accessRecorder interface via RecordAccess, so the
// driver can record into it without sim importing this package.
type AccessTrace struct {
	Config  TraceConfig
	Records []AccessRecord
}

// NewAccessTrace creates an AccessTrace ready for recording.
func NewAccessTrace(config TraceConfig) *AccessTrace {
	return &AccessTrace{
		Config:  config,
		Records: make([]AccessRecord, 0),
	}
}

// RecordAccess appends one access's decision record. A no-op when the
// trace level is none, so callers can wire it in unconditionally.
func (t *AccessTrace) RecordAccess(blockID, chunkID int64, hit bool, prefetchIssued int, predictedChunk int64, predictedChunkValid bool) {
	if t.Config.Level == TraceLevelNone || t.Config.Level == "" {
		return
	}
	t.Records = append(t.Records, AccessRecord{
		BlockID:             blockID,
		ChunkID:             chunkID,
		Hit:                 hit,
		PrefetchIssued:      prefetchIssued,
		PredictedChunk:      predictedChunk,
		PredictedChunkValid: predictedChunkValid,
	})
}
