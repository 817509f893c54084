package domain

import (
	"fmt"
	"time"
)

// TicketStatus enumerates lifecycle states for generated tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "OPEN"
	TicketStatusInProgress TicketStatus = "IN_PROGRESS"
	TicketStatusResolved   TicketStatus = "RESOLVED"
	TicketStatusClosed     TicketStatus = "CLOSED"
)

// TicketPriority enumerates SLA urgency.
type TicketPriority string

const (
	TicketPriorityCritical TicketPriority = "CRITICAL"
	TicketPriorityHigh     TicketPriority = "HIGH"
	TicketPriorityMedium   TicketPriority = "MEDIUM"
	TicketPriorityLow      TicketPriority = "LOW"
)

// TicketCategory is the closed set of support categories. Distribution
// configuration and scenario data are validated against this set so an
// unknown label fails construction instead of defaulting silently.
type TicketCategory string

const (
	CategorySoftware TicketCategory = "Software"
	CategoryHardware TicketCategory = "Hardware"
	CategoryNetwork  TicketCategory = "Network"
	CategoryEmail    TicketCategory = "Email"
	CategoryAccess   TicketCategory = "Access"
	CategoryOther    TicketCategory = "Other"
)

// Statuses lists all ticket statuses in lifecycle order.
func Statuses() []TicketStatus {
	return []TicketStatus{TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed}
}

// Priorities lists all priorities from most to least urgent.
func Priorities() []TicketPriority {
	return []TicketPriority{TicketPriorityCritical, TicketPriorityHigh, TicketPriorityMedium, TicketPriorityLow}
}

// Categories lists all valid ticket categories.
func Categories() []TicketCategory {
	return []TicketCategory{CategorySoftware, CategoryHardware, CategoryNetwork, CategoryEmail, CategoryAccess, CategoryOther}
}

// Valid reports whether the status is a member of the closed set.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

// Valid reports whether the priority is a member of the closed set.
func (p TicketPriority) Valid() bool {
	switch p {
	case TicketPriorityCritical, TicketPriorityHigh, TicketPriorityMedium, TicketPriorityLow:
		return true
	}
	return false
}

// Valid reports whether the category is a member of the closed set.
func (c TicketCategory) Valid() bool {
	switch c {
	case CategorySoftware, CategoryHardware, CategoryNetwork, CategoryEmail, CategoryAccess, CategoryOther:
		return true
	}
	return false
}

// ParseCategory validates a raw label against the closed category set.
func ParseCategory(raw string) (TicketCategory, error) {
	c := TicketCategory(raw)
	if !c.Valid() {
		return "", fmt.Errorf("unknown ticket category %q", raw)
	}
	return c, nil
}

// AISuggestion is a synthetic confidence annotation attached to
// generated tickets. It mimics the shape of a classifier output; no
// real inference happens.
type AISuggestion struct {
	Type       string  `json:"type"`
	Content    string  `json:"content"`
	Confidence float64 `json:"confidence"`
}

// Ticket is a generated support request. The seeder creates tickets and
// hands them to a document collection; it never reads them back.
type Ticket struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Category    TicketCategory `json:"category"`
	Priority    TicketPriority `json:"priority"`
	Status      TicketStatus   `json:"status"`
	UserID      string         `json:"user_id"`
	UserEmail   string         `json:"user_email"`
	UserName    string         `json:"user_name"`
	Department  string         `json:"department"`

	// AssignedTo is set iff Status != OPEN.
	AssignedTo string `json:"assigned_to,omitempty"`
	// Resolution is set iff Status is RESOLVED or CLOSED.
	Resolution string `json:"resolution,omitempty"`

	Attachments   []string       `json:"attachments"`
	AISuggestions []AISuggestion `json:"ai_suggestions"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
