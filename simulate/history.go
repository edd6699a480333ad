// Package simulate - bounded FIFO retention of pre-sweep snapshots.
//
// The ring never exceeds its capacity; when full, a push evicts the
// oldest snapshot. Push copies, so later sweeps cannot corrupt retained
// states. Capacity 0 turns every operation into a no-op.
//
// Complexity: push O(n) for the copy, last O(k·n), clear O(1).
package simulate

// history is a fixed-capacity ring of state snapshots.
type history struct {
	capacity int
	buf      [][]int8 // allocated lazily up to capacity
	head     int      // index of the oldest retained snapshot
	size     int      // number of retained snapshots
}

// newHistory returns a ring with the given capacity (≥ 0).
func newHistory(capacity int) *history {
	return &history{capacity: capacity}
}

// push copies state into the ring, evicting the oldest snapshot if full.
func (h *history) push(state []int8) {
	if h.capacity == 0 {
		return
	}
	snap := make([]int8, len(state))
	copy(snap, state)

	if h.size < h.capacity {
		h.buf = append(h.buf, snap)
		h.size++
		return
	}
	// Full: overwrite the oldest slot and advance the head.
	h.buf[h.head] = snap
	h.head = (h.head + 1) % h.capacity
}

// last returns the k most recent snapshots, oldest first. k ≤ 0 or
// k > size returns all retained snapshots. The returned slices are the
// retained copies themselves; callers convert to maps before exposure.
func (h *history) last(k int) [][]int8 {
	if k <= 0 || k > h.size {
		k = h.size
	}
	out := make([][]int8, 0, k)
	var i int
	for i = h.size - k; i < h.size; i++ {
		out = append(out, h.buf[(h.head+i)%max(h.capacity, 1)])
	}

	return out
}

// clear drops every retained snapshot; capacity is unchanged.
func (h *history) clear() {
	h.buf = h.buf[:0]
	h.head = 0
	h.size = 0
}

// len reports the number of retained snapshots.
func (h *history) len() int { return h.size }
