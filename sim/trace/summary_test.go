package trace

import "testing"

func TestSummarize_NilTrace_ZeroValues(t *testing.T) {
	summary := Summarize(nil)
	if summary.TotalAccesses != 0 || summary.HitCount != 0 || summary.MissCount != 0 {
		t.Error("expected all-zero summary for a nil trace")
	}
}

func TestSummarize_EmptyTrace_ZeroValues(t *testing.T) {
	tr := NewAccessTrace(TraceConfig{Level: TraceLevelDecisions})
	summary := Summarize(tr)
	if summary.TotalAccesses != 0 {
		t.Errorf("expected 0 total accesses, got %d", summary.TotalAccesses)
	}
}

func TestSummarize_PopulatedTrace_CorrectCounts(t *testing.T) {
	tr := NewAccessTrace(TraceConfig{Level: TraceLevelDecisions})
	tr.RecordAccess(0, 0, false, 0, 0, false) // miss, no prediction
	tr.RecordAccess(1, 0, true, 0, 0, false)  // hit, no prediction
	tr.RecordAccess(4, 1, false, 4, 2, true)  // miss, predicted chunk 2, 4 prefetched

	summary := Summarize(tr)
	if summary.TotalAccesses != 3 {
		t.Errorf("TotalAccesses = %d, want 3", summary.TotalAccesses)
	}
	if summary.HitCount != 1 {
		t.Errorf("HitCount = %d, want 1", summary.HitCount)
	}
	if summary.MissCount != 2 {
		t.Errorf("MissCount = %d, want 2", summary.MissCount)
	}
	if summary.PredictedCount != 1 {
		t.Errorf("PredictedCount = %d, want 1", summary.PredictedCount)
	}
	if summary.TotalPrefetched != 4 {
		t.Errorf("TotalPrefetched = %d, want 4", summary.TotalPrefetched)
	}
}
