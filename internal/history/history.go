// Package history keeps a bounded, most-recent-first record of distinct
// search queries. It is the only shared mutable state in the search path
// and is safe for concurrent use.
package history

import "sync"

// DefaultCapacity is the number of queries retained when no explicit
// capacity is given.
const DefaultCapacity = 10

// History records distinct queries, newest first, up to a fixed capacity.
// A query already present keeps its original position: re-recording is a
// no-op, not a promotion. That first-write-wins behavior is part of the
// suggestion contract, surprising as it may look.
type History struct {
	mu       sync.Mutex
	capacity int
	entries  []string
}

// New creates a history bounded to the given capacity. Non-positive
// capacities fall back to DefaultCapacity.
func New(capacity int) *History {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &History{
		capacity: capacity,
		entries:  make([]string, 0, capacity),
	}
}

// Record inserts query at the front unless it is empty or already present.
// When the capacity is exceeded the oldest entry is evicted. The
// containment check and the insert happen under one lock so concurrent
// identical queries cannot produce duplicates.
func (h *History) Record(query string) {
	if query == "" {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, e := range h.entries {
		if e == query {
			return
		}
	}

	h.entries = append([]string{query}, h.entries...)
	if len(h.entries) > h.capacity {
		h.entries = h.entries[:h.capacity]
	}
}

// Entries returns a copy of the recorded queries, most recent first.
func (h *History) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of recorded queries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}
