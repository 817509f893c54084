package domain

import "testing"

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("Network")
	if err != nil || c != CategoryNetwork {
		t.Fatalf("expected Network, got %v (%v)", c, err)
	}
	if _, err := ParseCategory("network"); err == nil {
		t.Fatal("category labels are case-sensitive; expected error")
	}
	if _, err := ParseCategory("Telepathy"); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestClosedSetsValid(t *testing.T) {
	for _, s := range Statuses() {
		if !s.Valid() {
			t.Fatalf("status %s must be valid", s)
		}
	}
	for _, p := range Priorities() {
		if !p.Valid() {
			t.Fatalf("priority %s must be valid", p)
		}
	}
	for _, c := range Categories() {
		if !c.Valid() {
			t.Fatalf("category %s must be valid", c)
		}
	}
	if TicketStatus("ARCHIVED").Valid() {
		t.Fatal("unknown status must be invalid")
	}
}

func TestAgentCanHandle(t *testing.T) {
	agent := Agent{Name: "a", Skills: []TicketCategory{CategoryEmail, CategoryAccess}}
	if !agent.CanHandle(CategoryEmail) {
		t.Fatal("expected skill match")
	}
	if agent.CanHandle(CategoryNetwork) {
		t.Fatal("expected no skill match")
	}
}
