package commands

import (
	"context"
	"fmt"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spec-kit/servicedesk-seeder/internal/config"
	"github.com/spec-kit/servicedesk-seeder/internal/observability"
	"github.com/spec-kit/servicedesk-seeder/internal/persistence"
	"github.com/spec-kit/servicedesk-seeder/internal/repository"
	"github.com/spec-kit/servicedesk-seeder/internal/seed"
	apperrors "github.com/spec-kit/servicedesk-seeder/pkg/util"
)

var (
	randomSeed   int64
	ticketTarget int

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "seeder",
	Short: "Populates the service desk document store with demo data",
	Long: `Seeder generates synthetic support tickets with realistic status,
priority and category distributions and inserts the knowledge-base
article catalog. Runs are idempotent: an already-populated store is
left untouched.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("seed") {
			cfg.Seed.RandomSeed = randomSeed
		}
		if cmd.Flags().Changed("count") {
			cfg.Seed.TicketTarget = ticketTarget
		}

		logger, err = observability.NewLogger(cfg.Logger)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var ticketsCmd = &cobra.Command{
	Use:   "tickets",
	Short: "Generate and insert the synthetic ticket batch",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(seedTickets)
	},
}

var articlesCmd = &cobra.Command{
	Use:   "articles",
	Short: "Insert the knowledge-base article catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(seedArticles)
	},
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Seed tickets and knowledge-base articles",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(func(ctx context.Context, pg *persistence.Postgres) error {
			if err := seedTickets(ctx, pg); err != nil {
				return err
			}
			return seedArticles(ctx, pg)
		})
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&randomSeed, "seed", 0, "random seed for reproducible generation (0 = time-based)")
	rootCmd.PersistentFlags().IntVar(&ticketTarget, "count", 50, "target number of tickets")
	rootCmd.AddCommand(ticketsCmd, articlesCmd, allCmd)
}

// runSeed wires the storage lifecycle around a seeding step: connect,
// migrate, run, record the run marker, and always tear down. Teardown
// failures are logged, never escalated, so the original error wins.
func runSeed(step func(context.Context, *persistence.Postgres) error) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		err = apperrors.NewConnectionFailed(err)
		logger.Error("failed to connect to document store", zap.Error(err))
		return err
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Error("failed to run migrations", zap.Error(err))
			return err
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	if err := step(ctx, pg); err != nil {
		logger.Error("seeding failed", zap.Error(err))
		return err
	}

	redis.MarkRun(ctx, time.Now())
	logger.Info("seeding finished")
	return nil
}

func seedTickets(ctx context.Context, pg *persistence.Postgres) error {
	coll := repository.NewDocumentCollection(pg.PoolHandle(), cfg.Seed.TicketsCollection)
	seeder := seed.NewTicketSeeder(seed.TicketSeederDeps{
		Collection: coll,
		Logger:     logger,
		Counters:   observability.NewCounters(),
	}, seed.DefaultGeneratorConfig(cfg.Seed.TicketTarget), newRand())

	created, err := seeder.Run(ctx)
	if err != nil {
		return err
	}
	logger.Info("tickets seeded", zap.Int("created", created))
	return nil
}

func seedArticles(ctx context.Context, pg *persistence.Postgres) error {
	coll := repository.NewDocumentCollection(pg.PoolHandle(), cfg.Seed.ArticlesCollection)
	seeder := seed.NewArticleSeeder(coll, logger)

	created, err := seeder.Run(ctx)
	if err != nil {
		return err
	}
	logger.Info("articles seeded", zap.Int("created", created))
	return nil
}

func newRand() *rand.Rand {
	s := cfg.Seed.RandomSeed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(s))
}
