package seed

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/servicedesk-seeder/internal/domain"
	"github.com/spec-kit/servicedesk-seeder/internal/observability"
	"github.com/spec-kit/servicedesk-seeder/internal/repository"
	apperrors "github.com/spec-kit/servicedesk-seeder/pkg/util"
)

// GeneratorConfig fixes the batch size and the exact per-bucket targets
// a generated batch must satisfy.
type GeneratorConfig struct {
	Total      int
	Statuses   Distribution[domain.TicketStatus]
	Priorities Distribution[domain.TicketPriority]
	Categories Distribution[domain.TicketCategory]
}

// DefaultGeneratorConfig mirrors the production seeding profile: 50
// tickets with a realistic status/priority/category mix.
func DefaultGeneratorConfig(total int) GeneratorConfig {
	return GeneratorConfig{
		Total: total,
		Statuses: Distribution[domain.TicketStatus]{
			domain.TicketStatusOpen:       18,
			domain.TicketStatusInProgress: 15,
			domain.TicketStatusResolved:   12,
			domain.TicketStatusClosed:     5,
		},
		Priorities: Distribution[domain.TicketPriority]{
			domain.TicketPriorityCritical: 3,
			domain.TicketPriorityHigh:     12,
			domain.TicketPriorityMedium:   25,
			domain.TicketPriorityLow:      10,
		},
		Categories: Distribution[domain.TicketCategory]{
			domain.CategorySoftware: 15,
			domain.CategoryHardware: 12,
			domain.CategoryNetwork:  10,
			domain.CategoryEmail:    8,
			domain.CategoryAccess:   3,
			domain.CategoryOther:    2,
		},
	}
}

// Validate rejects non-positive totals and labels outside the closed sets.
func (cfg GeneratorConfig) Validate() error {
	if cfg.Total <= 0 {
		return fmt.Errorf("ticket target must be positive, got %d", cfg.Total)
	}
	if err := cfg.Statuses.Validate(domain.TicketStatus.Valid); err != nil {
		return fmt.Errorf("status distribution: %w", err)
	}
	if err := cfg.Priorities.Validate(domain.TicketPriority.Valid); err != nil {
		return fmt.Errorf("priority distribution: %w", err)
	}
	if err := cfg.Categories.Validate(domain.TicketCategory.Valid); err != nil {
		return fmt.Errorf("category distribution: %w", err)
	}
	return nil
}

// Generator produces a batch of tickets honoring the configured
// distributions exactly. All randomness flows through a single rng, so
// a fixed seed reproduces the batch byte for byte.
type Generator struct {
	cfg    GeneratorConfig
	rng    *rand.Rand
	now    time.Time
	roster *Roster
}

// NewGenerator builds a generator with a fresh roster over the agent pool.
func NewGenerator(cfg GeneratorConfig, agents []domain.Agent, rng *rand.Rand, now time.Time) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{
		cfg:    cfg,
		rng:    rng,
		now:    now,
		roster: NewRoster(agents),
	}, nil
}

// Generate returns Total tickets. Status, priority and category for
// every index come from the shuffled distribution lists, so the
// per-bucket counts are exact whenever Total does not exceed each
// distribution's sum; excess indices receive the fallback labels.
func (g *Generator) Generate() []domain.Ticket {
	n := g.cfg.Total
	statuses := g.cfg.Statuses.Expand(n, domain.TicketStatusOpen, g.rng)
	priorities := g.cfg.Priorities.Expand(n, domain.TicketPriorityMedium, g.rng)
	categories := g.cfg.Categories.Expand(n, domain.CategoryOther, g.rng)

	scenarioUsed := make([]bool, len(TicketScenarios))
	tickets := make([]domain.Ticket, 0, n)

	for i := 0; i < n; i++ {
		status := statuses[i]
		priority := priorities[i]
		category := categories[i]

		title, description := g.pickScenario(category, scenarioUsed, i)
		userName := UserNames[g.rng.Intn(len(UserNames))]
		created := creationTime(g.now, status, g.rng)

		ticket := domain.Ticket{
			Title:       title,
			Description: description,
			Category:    category,
			Priority:    priority,
			Status:      status,
			UserID:      fmt.Sprintf("USR%d", 10000+g.rng.Intn(90000)),
			UserEmail:   emailFor(userName),
			UserName:    userName,
			Department:  Departments[g.rng.Intn(len(Departments))],
			Attachments: []string{},
			AISuggestions: []domain.AISuggestion{
				{
					Type:       "category_confidence",
					Content:    fmt.Sprintf("Automatically categorized as '%s' with %d%% confidence", category, 85+g.rng.Intn(14)),
					Confidence: 0.85 + g.rng.Float64()*0.13,
				},
			},
			CreatedAt: created,
			UpdatedAt: created,
		}

		if status != domain.TicketStatusOpen {
			ticket.AssignedTo = g.roster.Assign(category).Name

			if status == domain.TicketStatusResolved || status == domain.TicketStatusClosed {
				ticket.Resolution = Resolutions[g.rng.Intn(len(Resolutions))]
				ticket.UpdatedAt = created.Add(resolutionLatency(priority, g.rng))
			}
		}

		tickets = append(tickets, ticket)
	}

	return tickets
}

// pickScenario returns the first unused catalog entry matching the
// category, falling back to template synthesis once the catalog has no
// match left.
func (g *Generator) pickScenario(category domain.TicketCategory, used []bool, index int) (string, string) {
	for i, scenario := range TicketScenarios {
		if !used[i] && scenario.Category == category {
			used[i] = true
			return scenario.Title, scenario.Description
		}
	}
	title := fmt.Sprintf("%s #%d", tailTemplates[category], index+1)
	description := "Typical IT support request generated to fill the remaining batch slots, representing day-to-day operational issues."
	return title, description
}

// emailFor derives first.last@company.com from a display name.
func emailFor(name string) string {
	parts := strings.Fields(strings.ToLower(name))
	if len(parts) >= 2 {
		return fmt.Sprintf("%s.%s@company.com", parts[0], parts[1])
	}
	return fmt.Sprintf("%s@company.com", parts[0])
}

// TicketSeederDeps bundles collaborators for the ticket seeder.
type TicketSeederDeps struct {
	Collection repository.Collection
	Logger     *zap.Logger
	Counters   *observability.Counters
}

// TicketSeeder populates the tickets collection, guarded by a coarse
// count-based idempotency check.
type TicketSeeder struct {
	coll     repository.Collection
	logger   *zap.Logger
	counters *observability.Counters
	cfg      GeneratorConfig
	agents   []domain.Agent
	rng      *rand.Rand
	now      func() time.Time
}

// NewTicketSeeder creates the seeder with the default agent pool.
func NewTicketSeeder(deps TicketSeederDeps, cfg GeneratorConfig, rng *rand.Rand) *TicketSeeder {
	counters := deps.Counters
	if counters == nil {
		counters = observability.NewCounters()
	}
	return &TicketSeeder{
		coll:     deps.Collection,
		logger:   deps.Logger,
		counters: counters,
		cfg:      cfg,
		agents:   DefaultAgents(),
		rng:      rng,
		now:      time.Now,
	}
}

// Run generates and persists the ticket batch. Records are created
// strictly one at a time; the first failure aborts the remaining batch.
// Returns the number of tickets created.
func (s *TicketSeeder) Run(ctx context.Context) (int, error) {
	existing, err := s.coll.Count(ctx, nil)
	if err != nil {
		return 0, apperrors.NewStoreUnavailable(err)
	}
	s.logger.Info("existing tickets found", zap.Int64("count", existing))

	if existing >= int64(s.cfg.Total) {
		s.logger.Info("ticket target already met, skipping generation",
			zap.Int64("existing", existing),
			zap.Int("target", s.cfg.Total))
		return 0, nil
	}

	generator, err := NewGenerator(s.cfg, s.agents, s.rng, s.now())
	if err != nil {
		return 0, apperrors.MapError(err)
	}
	tickets := generator.Generate()

	created := 0
	for _, ticket := range tickets {
		if err := ctx.Err(); err != nil {
			return created, apperrors.NewSeedFailed("tickets", err)
		}
		if _, err := s.coll.Create(ctx, ticket); err != nil {
			return created, apperrors.NewSeedFailed("tickets", err)
		}
		created++

		s.counters.Inc("status", string(ticket.Status))
		s.counters.Inc("priority", string(ticket.Priority))
		s.counters.Inc("category", string(ticket.Category))

		if created%10 == 0 {
			s.logger.Info("ticket generation progress",
				zap.Int("created", created),
				zap.Int("target", s.cfg.Total))
		}
	}

	s.logSummary(created)
	return created, nil
}

func (s *TicketSeeder) logSummary(created int) {
	s.logger.Info("ticket generation complete", zap.Int("created", created))
	for _, kind := range []string{"status", "priority", "category"} {
		tallies := s.counters.Snapshot(kind)
		labels := make([]string, 0, len(tallies))
		for label := range tallies {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		fields := make([]zap.Field, 0, len(labels))
		for _, label := range labels {
			fields = append(fields, zap.Int64(label, tallies[label]))
		}
		s.logger.Info(kind+" distribution", fields...)
	}
}
