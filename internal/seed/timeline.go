package seed

import (
	"math/rand"
	"time"

	"github.com/spec-kit/servicedesk-seeder/internal/domain"
)

// daysAgoRange returns the inclusive bounds for how far in the past a
// ticket with the given status was created. Closed tickets are the
// oldest, open tickets the most recent.
func daysAgoRange(status domain.TicketStatus) (int, int) {
	switch status {
	case domain.TicketStatusClosed:
		return 7, 60
	case domain.TicketStatusResolved:
		return 1, 14
	case domain.TicketStatusInProgress:
		return 0, 7
	default:
		return 0, 3
	}
}

// creationTime synthesizes a created_at timestamp: now minus a
// status-dependent number of days with minute jitter, hour-of-day
// biased 80% into the 8-18 business window.
func creationTime(now time.Time, status domain.TicketStatus, rng *rand.Rand) time.Time {
	lo, hi := daysAgoRange(status)
	daysAgo := lo + rng.Intn(hi-lo+1)

	var hour int
	if rng.Float64() < 0.8 {
		hour = 8 + rng.Intn(11) // 8..18
	} else {
		offHours := []int{0, 1, 2, 3, 4, 5, 6, 7, 19, 20, 21, 22, 23}
		hour = offHours[rng.Intn(len(offHours))]
	}

	// The drawn hour replaces the wall-clock hour, so a zero-days-ago
	// ticket can be stamped up to a few hours after now.
	t := now.UTC().AddDate(0, 0, -daysAgo)
	return time.Date(t.Year(), t.Month(), t.Day(), hour, rng.Intn(60), rng.Intn(60), 0, time.UTC)
}

// latencyHoursRange returns the inclusive resolution latency bounds in
// hours for a priority. Expected resolution time grows monotonically as
// priority decreases.
func latencyHoursRange(priority domain.TicketPriority) (float64, float64) {
	switch priority {
	case domain.TicketPriorityCritical:
		return 0.5, 4
	case domain.TicketPriorityHigh:
		return 2, 24
	case domain.TicketPriorityMedium:
		return 4, 72
	default:
		return 24, 168
	}
}

// resolutionLatency samples a priority-dependent resolution duration.
func resolutionLatency(priority domain.TicketPriority, rng *rand.Rand) time.Duration {
	lo, hi := latencyHoursRange(priority)
	hours := lo + rng.Float64()*(hi-lo)
	return time.Duration(hours * float64(time.Hour))
}
