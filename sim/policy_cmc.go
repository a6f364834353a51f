package sim

// CMCPolicy is the clustered-Markov-chain predictive prefetch engine:
// the eight-step per-access state machine of §4.4.
type CMCPolicy struct {
	chunkSize      int64
	prefetchWindow int64
	blockRange     int64

	cache *LRUCache
	chain *Chain

	hasPrev  bool
	prevChunk int64

	trace accessRecorder
}

// NewCMCPolicy wires a CMC engine to a cache and chain it owns for the
// run's lifetime (§5: each run owns its own cache/chain/counters).
func NewCMCPolicy(cfg Config, cache *LRUCache, chain *Chain) *CMCPolicy {
	return &CMCPolicy{
		chunkSize:      int64(cfg.ChunkSizeBlocks),
		prefetchWindow: int64(cfg.PrefetchWindowBlocks),
		blockRange:     cfg.BlockRange,
		cache:          cache,
		chain:          chain,
	}
}

// attachTrace wires an optional decision recorder (sim/trace); nil by
// default, so recording costs nothing when unused.
func (p *CMCPolicy) attachTrace(t accessRecorder) {
	p.trace = t
}

// Access executes the eight-step handler for one access to blockID.
func (p *CMCPolicy) Access(blockID int64) bool {
	// Step 1: compute current chunk.
	curChunk := blockID / p.chunkSize

	// Step 2: cache probe.
	hit := p.cache.Contains(blockID)
	if hit {
		p.cache.Touch(blockID)
	} else {
		p.cache.Admit(blockID, OriginDemand)
	}

	// Step 3: chain transition, only if a prior chunk exists and it
	// differs from the current one (no self-transition is recorded).
	if p.hasPrev && p.prevChunk != curChunk {
		row := p.chain.EnsureRow(p.prevChunk)
		row.Observe(curChunk)
	}

	// Step 4: ensure a row exists for the current chunk.
	curRow := p.chain.EnsureRow(curChunk)

	// Step 5: predict.
	predChunk, hasPred := curRow.Predict()

	// Step 6: issue prefetch across the predicted chunk's window,
	// truncated at the block range (edge case: window straddles the end
	// of the address space).
	issued := 0
	if hasPred && p.prefetchWindow > 0 {
		start := predChunk * p.chunkSize
		end := start + p.prefetchWindow
		if end > p.blockRange {
			end = p.blockRange
		}
		for b := start; b < end; b++ {
			before := p.cache.PrefetchIssued
			p.cache.IssuePrefetch(b)
			if p.cache.PrefetchIssued != before {
				issued++
			}
		}
	}

	// Step 7: advance.
	p.prevChunk = curChunk
	p.hasPrev = true

	// Step 8: accounting is already committed by steps 2 and 6.
	if p.trace != nil {
		p.trace.RecordAccess(blockID, curChunk, hit, issued, predChunk, hasPred)
	}

	return hit
}
