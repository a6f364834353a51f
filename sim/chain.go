package sim

// clusterBlock is the fixed-capacity, contiguous row block materialized
// for one cluster. rows holds clusterSizeChunks row slots; ensured
// tracks, per slot, whether EnsureRow has already counted it toward
// mc_rows_allocated -- a row can be "ensured" (created, possibly still
// empty) independently of whether it has gained any populated slots
// (§4.4 step 4; §8 scenario 2: mc_rows_allocated == 1 for a row with no
// transitions).
type clusterBlock struct {
	rows    []MCRow
	ensured []bool
}

// Chain is the sparse chunk_id -> MCRow mapping, allocated cluster by
// cluster (§3, §9 "sparse nested mapping -> flat arrays with
// indirection"). Cluster c holds clusterSizeChunks contiguous row slots
// and is materialized on first write to any chunk within it; lookups
// against an unallocated cluster return "no row" without allocating.
type Chain struct {
	clusterSizeChunks int
	clusters          map[int64]*clusterBlock // cluster_id -> block

	rowsAllocated     int64
	clustersAllocated int64
}

// NewChain creates an empty chain whose clusters each hold
// clusterSizeChunks row slots.
func NewChain(clusterSizeChunks int) *Chain {
	return &Chain{
		clusterSizeChunks: clusterSizeChunks,
		clusters:          make(map[int64]*clusterBlock),
	}
}

func (c *Chain) clusterAndOffset(chunkID int64) (clusterID int64, offset int) {
	n := int64(c.clusterSizeChunks)
	return chunkID / n, int(chunkID % n)
}

// Row returns a pointer to the row for chunkID and whether it has been
// allocated (ensured). It never allocates; use EnsureRow for
// allocate-on-demand access.
func (c *Chain) Row(chunkID int64) (*MCRow, bool) {
	clusterID, offset := c.clusterAndOffset(chunkID)
	block, ok := c.clusters[clusterID]
	if !ok || !block.ensured[offset] {
		return nil, false
	}
	return &block.rows[offset], true
}

// EnsureRow returns a pointer to the row for chunkID, allocating the
// owning cluster if needed and marking the row slot as ensured so it is
// counted exactly once toward mc_rows_allocated (§4.4 step 4). A newly
// ensured row starts empty and is populated only by future transitions.
func (c *Chain) EnsureRow(chunkID int64) *MCRow {
	clusterID, offset := c.clusterAndOffset(chunkID)
	block, ok := c.clusters[clusterID]
	if !ok {
		block = &clusterBlock{
			rows:    make([]MCRow, c.clusterSizeChunks),
			ensured: make([]bool, c.clusterSizeChunks),
		}
		c.clusters[clusterID] = block
		c.clustersAllocated++
	}
	if !block.ensured[offset] {
		block.ensured[offset] = true
		c.rowsAllocated++
	}
	return &block.rows[offset]
}

// RowsAllocated returns mc_rows_allocated: the number of chunk rows ever
// ensured (created), whether or not they have since gained transitions.
func (c *Chain) RowsAllocated() int64 {
	return c.rowsAllocated
}

// ClustersAllocated returns clusters_allocated: the number of clusters
// materialized so far.
func (c *Chain) ClustersAllocated() int64 {
	return c.clustersAllocated
}
