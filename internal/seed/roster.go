package seed

import "github.com/spec-kit/servicedesk-seeder/internal/domain"

// saturationThreshold is the workload above which a skill match no
// longer wins and assignment falls back to the least-loaded agent.
const saturationThreshold = 8

// Roster is the assignment policy over a fixed agent pool. Workload
// counters live on the roster value itself, so a fresh roster per
// generation run keeps runs independent and testing deterministic.
type Roster struct {
	agents []domain.Agent
}

// NewRoster copies the agent pool so callers keep ownership of theirs.
func NewRoster(agents []domain.Agent) *Roster {
	pool := make([]domain.Agent, len(agents))
	copy(pool, agents)
	return &Roster{agents: pool}
}

// Assign picks the first agent in pool order whose skills contain the
// category and whose workload is below the saturation threshold. When
// no such agent exists it falls back to the globally least-loaded
// agent, ties broken by pool order. The chosen agent's workload is
// incremented before returning.
func (r *Roster) Assign(category domain.TicketCategory) domain.Agent {
	if len(r.agents) == 0 {
		return domain.Agent{}
	}
	for i := range r.agents {
		if r.agents[i].CanHandle(category) && r.agents[i].Workload < saturationThreshold {
			r.agents[i].Workload++
			return r.agents[i]
		}
	}

	least := 0
	for i := 1; i < len(r.agents); i++ {
		if r.agents[i].Workload < r.agents[least].Workload {
			least = i
		}
	}
	r.agents[least].Workload++
	return r.agents[least]
}

// Workload reports the current counter for a named agent.
func (r *Roster) Workload(name string) int {
	for _, agent := range r.agents {
		if agent.Name == name {
			return agent.Workload
		}
	}
	return 0
}

// Size returns the number of agents in the pool.
func (r *Roster) Size() int {
	return len(r.agents)
}
