package trace

// TraceSummary aggregates statistics from an AccessTrace, for a
// quick-look report without walking the full record list.
type TraceSummary struct {
	TotalAccesses    int
	HitCount         int
	MissCount        int
	PredictedCount   int // accesses where a prediction was available
	TotalPrefetched  int // sum of PrefetchIssued across all records
}

// Summarize computes aggregate statistics from an AccessTrace. Safe for
// nil or empty traces (returns zero-value fields).
func Summarize(t *AccessTrace) *TraceSummary {
	summary := &TraceSummary{}
	if t == nil {
		return summary
	}

	summary.TotalAccesses = len(t.Records)
	for _, r := range t.Records {
		if r.Hit {
			summary.HitCount++
		} else {
			summary.MissCount++
		}
		if r.PredictedChunkValid {
			summary.PredictedCount++
		}
		summary.TotalPrefetched += r.PrefetchIssued
	}

	return summary
}
