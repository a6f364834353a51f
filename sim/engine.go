package sim

// Engine is a block-access policy: given the next block id in a trace,
// it probes/fills the cache and may issue predictive prefetches. Both
// the CMC policy engine and the RA baseline share this interface so the
// driver (§4.6) can run either one over an identical trace and cache.
type Engine interface {
	// Access handles one trace event and reports whether it was a cache
	// hit.
	Access(blockID int64) (hit bool)
}
