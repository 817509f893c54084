package domain

// Agent models a support agent with category specializations. Workload
// is the running count of tickets assigned during a single generation
// run, used by the greedy load-balancing policy.
type Agent struct {
	Name     string
	Skills   []TicketCategory
	Workload int
}

// CanHandle reports whether the agent's skill set contains the category.
func (a Agent) CanHandle(category TicketCategory) bool {
	for _, skill := range a.Skills {
		if skill == category {
			return true
		}
	}
	return false
}
