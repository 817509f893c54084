package observability

import (
	"sync"
)

// Counters provides basic in-memory bucket tallies, keyed by a counter
// kind (e.g. "status") and a label within that kind.
type Counters struct {
	mu     sync.Mutex
	counts map[string]map[string]int64
}

// NewCounters initializes counter storage.
func NewCounters() *Counters {
	return &Counters{
		counts: make(map[string]map[string]int64),
	}
}

// Inc increments the tally for a label under the given kind.
func (c *Counters) Inc(kind, label string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	bucket, ok := c.counts[kind]
	if !ok {
		bucket = make(map[string]int64)
		c.counts[kind] = bucket
	}
	bucket[label]++
}

// Snapshot returns a copy of all tallies for a kind.
func (c *Counters) Snapshot(kind string) map[string]int64 {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]int64, len(c.counts[kind]))
	for label, n := range c.counts[kind] {
		out[label] = n
	}
	return out
}
