package sim

import "sort"

// slotCount is the number of successor candidates a row tracks: CN1/P1,
// CN2/P2, CN3/P3.
const slotCount = 3

// mcSlot is one (chunk_id, count) candidate successor, or empty.
// Deliberately carries no recency/timestamp field: the row stays at
// exactly six logical fields (three chunk ids, three counts). Recency
// tie-break is achieved structurally in Observe by placing the
// just-modified slot first before a stable sort, never by storing a
// timestamp (see design notes on tie-break without stored recency).
type mcSlot struct {
	chunk   int64
	count   int64
	present bool
}

// MCRow is the six-field Markov row: up to three ranked successor chunks
// and their transition counts for a single source chunk. Slots are
// always pairwise distinct when present (I2) and kept in descending
// order by (count, recency) (I3).
type MCRow struct {
	slots [slotCount]mcSlot
}

// emptyRow returns a row with no populated slots (the "create MC if
// absent" step of §4.4 step 4).
func emptyRow() MCRow {
	return MCRow{}
}

// Predict returns the predicted next chunk (CN1) and whether a
// prediction exists. Absent when no slot is populated.
func (r *MCRow) Predict() (chunk int64, ok bool) {
	if !r.slots[0].present {
		return 0, false
	}
	return r.slots[0].chunk, true
}

// Observe records an observed transition to successor chunk s, applying
// the CN3-as-buffer rule and re-sorting per §4.3:
//  1. If s matches a populated slot, increment its count.
//  2. Otherwise, overwrite the CN3/P3 slot with (s, 1), discarding any
//     prior CN3 content.
//  3. Re-sort all three slots descending by count; among equal counts,
//     the slot just mutated in this call ranks higher than slots that
//     were not touched this call.
func (r *MCRow) Observe(s int64) {
	matched := -1
	for i := range r.slots {
		if r.slots[i].present && r.slots[i].chunk == s {
			matched = i
			break
		}
	}

	modified := 2
	if matched >= 0 {
		r.slots[matched].count++
		modified = matched
	} else {
		// CN3-as-buffer: always overwrite slot index 2, pre-sort.
		r.slots[2] = mcSlot{chunk: s, count: 1, present: true}
	}

	r.resort(modified)
}

// resort performs a stable descending sort by count, after moving the
// just-modified slot to the front of the working order. A stable sort
// then keeps that slot ahead of any other slot with an equal count,
// which is exactly the "most recently written ranks higher" tie-break,
// without ever storing a timestamp.
func (r *MCRow) resort(modified int) {
	order := make([]mcSlot, 0, slotCount)
	order = append(order, r.slots[modified])
	for i := range r.slots {
		if i != modified {
			order = append(order, r.slots[i])
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		if !order[i].present {
			return false
		}
		if !order[j].present {
			return true
		}
		return order[i].count > order[j].count
	})

	copy(r.slots[:], order)
}

// SlotPair is a (chunk, count) pair exposed for inspection and testing.
type SlotPair struct {
	Chunk int64
	Count int64
}

// PopulatedSlots returns the up-to-three populated (chunk, count) pairs
// currently held by the row, in rank order. Exposed for testing
// invariants I2/I3 and for memory accounting.
func (r *MCRow) PopulatedSlots() []SlotPair {
	out := make([]SlotPair, 0, slotCount)
	for _, s := range r.slots {
		if s.present {
			out = append(out, SlotPair{Chunk: s.chunk, Count: s.count})
		}
	}
	return out
}
