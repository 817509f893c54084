package seed

import (
	"math/rand"
	"testing"

	"github.com/spec-kit/servicedesk-seeder/internal/domain"
)

func TestExpandExactCounts(t *testing.T) {
	dist := Distribution[domain.TicketCategory]{
		domain.CategorySoftware: 15,
		domain.CategoryHardware: 12,
		domain.CategoryNetwork:  10,
		domain.CategoryEmail:    8,
		domain.CategoryAccess:   3,
		domain.CategoryOther:    2,
	}

	for s := int64(1); s <= 25; s++ {
		rng := rand.New(rand.NewSource(s))
		out := dist.Expand(dist.Total(), domain.CategoryOther, rng)
		if len(out) != 50 {
			t.Fatalf("seed %d: expected 50 labels, got %d", s, len(out))
		}
		tally := map[domain.TicketCategory]int{}
		for _, label := range out {
			tally[label]++
		}
		for label, want := range dist {
			if tally[label] != want {
				t.Fatalf("seed %d: label %s got %d, want %d", s, label, tally[label], want)
			}
		}
	}
}

func TestExpandFallbackPadding(t *testing.T) {
	dist := Distribution[domain.TicketStatus]{
		domain.TicketStatusOpen:   2,
		domain.TicketStatusClosed: 1,
	}
	rng := rand.New(rand.NewSource(7))
	out := dist.Expand(10, domain.TicketStatusOpen, rng)
	if len(out) != 10 {
		t.Fatalf("expected 10 labels, got %d", len(out))
	}
	for i := 3; i < 10; i++ {
		if out[i] != domain.TicketStatusOpen {
			t.Fatalf("index %d: expected fallback OPEN, got %s", i, out[i])
		}
	}
}

func TestExpandTruncatesBelowTotal(t *testing.T) {
	dist := Distribution[domain.TicketPriority]{
		domain.TicketPriorityHigh: 5,
		domain.TicketPriorityLow:  5,
	}
	rng := rand.New(rand.NewSource(3))
	out := dist.Expand(4, domain.TicketPriorityMedium, rng)
	if len(out) != 4 {
		t.Fatalf("expected 4 labels, got %d", len(out))
	}
}

func TestExpandDeterministicPerSeed(t *testing.T) {
	dist := Distribution[domain.TicketCategory]{
		domain.CategorySoftware: 10,
		domain.CategoryNetwork:  10,
	}
	a := dist.Expand(20, domain.CategoryOther, rand.New(rand.NewSource(42)))
	b := dist.Expand(20, domain.CategoryOther, rand.New(rand.NewSource(42)))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d differs across identical seeds: %s vs %s", i, a[i], b[i])
		}
	}
}

func TestValidateRejectsUnknownLabel(t *testing.T) {
	dist := Distribution[domain.TicketCategory]{
		domain.TicketCategory("Telepathy"): 5,
	}
	if err := dist.Validate(domain.TicketCategory.Valid); err == nil {
		t.Fatal("expected validation error for unknown label")
	}
}

func TestValidateRejectsNegativeCount(t *testing.T) {
	dist := Distribution[domain.TicketStatus]{
		domain.TicketStatusOpen: -1,
	}
	if err := dist.Validate(domain.TicketStatus.Valid); err == nil {
		t.Fatal("expected validation error for negative count")
	}
}
