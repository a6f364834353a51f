package sim

// RAPolicy is the sequential read-ahead baseline engine (§4.5): a
// simple sequential-run detector with an adaptive doubling window.
type RAPolicy struct {
	cache *LRUCache

	blockRange int64
	chunkSize  int64 // used only for access-trace chunk id annotation

	initialWindow int64
	maxWindow     int64

	hasLast         bool
	lastBlock       int64
	window          int64
	sequentialStreak int64

	trace accessRecorder
}

// Default RA window sizes, expressed in blocks: 128 KiB at 4 KiB/block
// is 32 blocks; the maximum window is 512 blocks (§4.5).
const (
	DefaultRAInitialWindowBlocks = 32
	DefaultRAMaxWindowBlocks     = 512
)

// NewRAPolicy wires an RA engine to a cache of the same LRUCache type
// the CMC engine uses (each run gets its own instance), so both
// policies are scored on an identical cache model (§4.5: "RA shares the same LRU cache
// implementation and accounting rules as CMC, so results are directly
// comparable").
func NewRAPolicy(cfg Config, cache *LRUCache) *RAPolicy {
	return &RAPolicy{
		cache:         cache,
		blockRange:    cfg.BlockRange,
		chunkSize:     int64(cfg.ChunkSizeBlocks),
		initialWindow: DefaultRAInitialWindowBlocks,
		maxWindow:     DefaultRAMaxWindowBlocks,
		window:        DefaultRAInitialWindowBlocks,
	}
}

func (p *RAPolicy) attachTrace(t accessRecorder) {
	p.trace = t
}

// Access implements the four-step RA handler of §4.5.
func (p *RAPolicy) Access(blockID int64) bool {
	// Step 1: probe cache as in the CMC engine's step 2.
	hit := p.cache.Contains(blockID)
	if hit {
		p.cache.Touch(blockID)
	} else {
		p.cache.Admit(blockID, OriginDemand)
	}

	issued := 0
	if p.hasLast && blockID == p.lastBlock+1 {
		// Step 2: sequential continuation.
		p.sequentialStreak++
		if p.sequentialStreak >= 2 {
			p.window *= 2
			if p.window > p.maxWindow {
				p.window = p.maxWindow
			}
			start := blockID + 1
			end := blockID + 1 + p.window
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
	} else {
		// Step 3: reset on any non-sequential access.
		p.sequentialStreak = 0
		p.window = p.initialWindow
	}

	// Step 4: advance.
	p.lastBlock = blockID
	p.hasLast = true

	if p.trace != nil {
		p.trace.RecordAccess(blockID, blockID/p.chunkSize, hit, issued, 0, false)
	}

	return hit
}
