package seed

import (
	"math/rand"
	"testing"
	"time"

	"github.com/spec-kit/servicedesk-seeder/internal/domain"
)

func TestResolutionLatencyBounds(t *testing.T) {
	bounds := map[domain.TicketPriority][2]float64{
		domain.TicketPriorityCritical: {0.5, 4},
		domain.TicketPriorityHigh:     {2, 24},
		domain.TicketPriorityMedium:   {4, 72},
		domain.TicketPriorityLow:      {24, 168},
	}

	rng := rand.New(rand.NewSource(11))
	for priority, b := range bounds {
		for i := 0; i < 500; i++ {
			latency := resolutionLatency(priority, rng)
			hours := latency.Hours()
			if hours < b[0] || hours > b[1] {
				t.Fatalf("%s: latency %.2fh outside [%.1f, %.1f]", priority, hours, b[0], b[1])
			}
		}
	}
}

func TestResolutionLatencyMonotonicAcrossPriorities(t *testing.T) {
	// Lower bound of each priority must not precede the one above it.
	order := []domain.TicketPriority{
		domain.TicketPriorityCritical,
		domain.TicketPriorityHigh,
		domain.TicketPriorityMedium,
		domain.TicketPriorityLow,
	}
	prev := -1.0
	for _, priority := range order {
		lo, _ := latencyHoursRange(priority)
		if lo <= prev {
			t.Fatalf("%s lower bound %.1f not above previous %.1f", priority, lo, prev)
		}
		prev = lo
	}
}

func TestCreationTimeDaysAgoRanges(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewSource(5))

	cases := []struct {
		status  domain.TicketStatus
		minDays int
		maxDays int
	}{
		{domain.TicketStatusClosed, 7, 60},
		{domain.TicketStatusResolved, 1, 14},
		{domain.TicketStatusInProgress, 0, 7},
		{domain.TicketStatusOpen, 0, 3},
	}

	for _, tc := range cases {
		for i := 0; i < 300; i++ {
			created := creationTime(now, tc.status, rng)
			if !created.Before(now.AddDate(0, 0, 1)) {
				t.Fatalf("%s: created %v in the future of %v", tc.status, created, now)
			}
			age := now.Sub(created)
			// A full extra day of slack covers the hour/minute jitter.
			if age > time.Duration(tc.maxDays+1)*24*time.Hour {
				t.Fatalf("%s: created %v older than %d days", tc.status, created, tc.maxDays)
			}
			if tc.minDays > 0 && age < time.Duration(tc.minDays-1)*24*time.Hour {
				t.Fatalf("%s: created %v newer than %d days", tc.status, created, tc.minDays)
			}
		}
	}
}

func TestCreationTimeHourReplacesWallClock(t *testing.T) {
	// The drawn hour overwrites the wall-clock hour, so a zero-days-ago
	// ticket started just after midnight can be stamped later than now,
	// but never past the end of the current day.
	now := time.Date(2025, 6, 15, 0, 30, 0, 0, time.UTC)
	dayEnd := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewSource(3))

	afterNow := 0
	for i := 0; i < 500; i++ {
		created := creationTime(now, domain.TicketStatusOpen, rng)
		if !created.Before(dayEnd) {
			t.Fatalf("created %v past the end of the current day", created)
		}
		if created.After(now) {
			afterNow++
		}
	}
	if afterNow == 0 {
		t.Fatalf("expected some same-day timestamps after now")
	}
}

func TestCreationTimeHourWithinDay(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewSource(9))
	business := 0
	const samples = 2000
	for i := 0; i < samples; i++ {
		created := creationTime(now, domain.TicketStatusOpen, rng)
		h := created.Hour()
		if h < 0 || h > 23 {
			t.Fatalf("hour %d out of range", h)
		}
		if h >= 8 && h <= 18 {
			business++
		}
	}
	// 80% business-hours bias; allow generous sampling tolerance.
	ratio := float64(business) / float64(samples)
	if ratio < 0.7 || ratio > 0.95 {
		t.Fatalf("business-hours ratio %.2f outside expected band", ratio)
	}
}
