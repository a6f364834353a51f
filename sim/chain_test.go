package sim

import "testing"

func TestChain_RowAbsentBeforeEnsure(t *testing.T) {
	c := NewChain(4)
	if _, ok := c.Row(10); ok {
		t.Errorf("Row should be absent before EnsureRow")
	}
}

func TestChain_EnsureRowAllocatesClusterOnce(t *testing.T) {
	c := NewChain(4)
	c.EnsureRow(0)
	c.EnsureRow(1)
	c.EnsureRow(2)
	if c.ClustersAllocated() != 1 {
		t.Errorf("ClustersAllocated() = %d, want 1 (chunks 0,1,2 share cluster 0)", c.ClustersAllocated())
	}
	if c.RowsAllocated() != 3 {
		t.Errorf("RowsAllocated() = %d, want 3", c.RowsAllocated())
	}
}

func TestChain_EnsureRowIdempotent(t *testing.T) {
	c := NewChain(4)
	c.EnsureRow(5)
	c.EnsureRow(5)
	c.EnsureRow(5)
	if c.RowsAllocated() != 1 {
		t.Errorf("RowsAllocated() = %d, want 1 (repeated ensure of same chunk)", c.RowsAllocated())
	}
}

func TestChain_NewClusterAllocatedOnBoundaryCrossing(t *testing.T) {
	c := NewChain(4)
	c.EnsureRow(3) // cluster 0
	c.EnsureRow(4) // cluster 1
	if c.ClustersAllocated() != 2 {
		t.Errorf("ClustersAllocated() = %d, want 2", c.ClustersAllocated())
	}
}

func TestChain_EnsuredEmptyRowHasNoPrediction(t *testing.T) {
	c := NewChain(4)
	row := c.EnsureRow(0)
	if _, ok := row.Predict(); ok {
		t.Errorf("a freshly ensured row should have no prediction")
	}
}

func TestChain_TransitionsPersistAcrossLookups(t *testing.T) {
	c := NewChain(4)
	row := c.EnsureRow(0)
	row.Observe(1)

	got, ok := c.Row(0)
	if !ok {
		t.Fatalf("Row(0) should be present after EnsureRow")
	}
	chunk, predOK := got.Predict()
	if !predOK || chunk != 1 {
		t.Errorf("Predict() = (%d,%v), want (1,true)", chunk, predOK)
	}
}
