package seed

import (
	"testing"

	"github.com/spec-kit/servicedesk-seeder/internal/domain"
)

func testAgents() []domain.Agent {
	return []domain.Agent{
		{Name: "net-a", Skills: []domain.TicketCategory{domain.CategoryNetwork}},
		{Name: "net-b", Skills: []domain.TicketCategory{domain.CategoryNetwork, domain.CategoryHardware}},
		{Name: "sw", Skills: []domain.TicketCategory{domain.CategorySoftware}},
	}
}

func TestAssignFillsSkillMatchUntilSaturation(t *testing.T) {
	roster := NewRoster(testAgents())

	for i := 1; i <= saturationThreshold; i++ {
		agent := roster.Assign(domain.CategoryNetwork)
		if agent.Name != "net-a" {
			t.Fatalf("ticket %d: expected net-a, got %s", i, agent.Name)
		}
		if got := roster.Workload("net-a"); got != i {
			t.Fatalf("ticket %d: workload %d, want %d", i, got, i)
		}
	}

	// net-a saturated; the next skill match in pool order takes over.
	agent := roster.Assign(domain.CategoryNetwork)
	if agent.Name != "net-b" {
		t.Fatalf("expected net-b after saturation, got %s", agent.Name)
	}
}

func TestAssignFallsBackToLeastLoaded(t *testing.T) {
	roster := NewRoster(testAgents())
	roster.Assign(domain.CategorySoftware) // sw now has workload 1

	// No agent handles Email; least-loaded wins, ties broken by pool order.
	agent := roster.Assign(domain.CategoryEmail)
	if agent.Name != "net-a" {
		t.Fatalf("expected least-loaded net-a, got %s", agent.Name)
	}
	if got := roster.Workload("net-a"); got != 1 {
		t.Fatalf("fallback assignment must increment workload, got %d", got)
	}
}

func TestAssignFallbackWhenAllSaturated(t *testing.T) {
	roster := NewRoster([]domain.Agent{
		{Name: "only", Skills: []domain.TicketCategory{domain.CategoryNetwork}},
		{Name: "other", Skills: []domain.TicketCategory{domain.CategorySoftware}},
	})

	for i := 0; i < saturationThreshold; i++ {
		roster.Assign(domain.CategoryNetwork)
	}
	// "only" sits at the threshold, so the skill match is rejected and
	// the globally least-loaded agent gets the ticket.
	agent := roster.Assign(domain.CategoryNetwork)
	if agent.Name != "other" {
		t.Fatalf("expected least-loaded other, got %s", agent.Name)
	}
}

func TestNewRosterCopiesPool(t *testing.T) {
	agents := testAgents()
	roster := NewRoster(agents)
	roster.Assign(domain.CategorySoftware)
	if agents[2].Workload != 0 {
		t.Fatal("roster must not mutate the caller's agent slice")
	}
}
