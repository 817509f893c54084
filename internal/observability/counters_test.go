package observability

import "testing"

func TestSnapshotReturnsTallies(t *testing.T) {
	c := NewCounters()
	c.Inc("status", "OPEN")
	c.Inc("status", "OPEN")
	c.Inc("status", "CLOSED")
	c.Inc("priority", "HIGH")

	got := c.Snapshot("status")
	if got["OPEN"] != 2 || got["CLOSED"] != 1 {
		t.Fatalf("unexpected status tallies: %v", got)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 status labels, got %d", len(got))
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	c := NewCounters()
	c.Inc("category", "Software")

	snap := c.Snapshot("category")
	snap["Software"] = 99

	if c.Snapshot("category")["Software"] != 1 {
		t.Fatalf("mutating a snapshot must not affect the counters")
	}
}

func TestSnapshotUnknownKind(t *testing.T) {
	c := NewCounters()
	if got := c.Snapshot("missing"); len(got) != 0 {
		t.Fatalf("expected empty snapshot, got %v", got)
	}
}

func TestNilCountersAreNoOps(t *testing.T) {
	var c *Counters
	c.Inc("status", "OPEN")
	if c.Snapshot("status") != nil {
		t.Fatalf("expected nil snapshot from nil counters")
	}
}
