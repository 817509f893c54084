package seed

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/servicedesk-seeder/internal/domain"
	"github.com/spec-kit/servicedesk-seeder/internal/repository"
	apperrors "github.com/spec-kit/servicedesk-seeder/pkg/util"
)

// ArticleSeeder inserts the knowledge-base catalog, deduplicating
// per-title so a partial earlier run can be completed by rerunning.
type ArticleSeeder struct {
	coll    repository.Collection
	logger  *zap.Logger
	catalog []domain.KnowledgeArticle
	now     func() time.Time
}

// NewArticleSeeder creates the seeder over the built-in catalog.
func NewArticleSeeder(coll repository.Collection, logger *zap.Logger) *ArticleSeeder {
	return &ArticleSeeder{
		coll:    coll,
		logger:  logger,
		catalog: ArticleCatalog,
		now:     time.Now,
	}
}

// Run populates the knowledge base. A count guard skips the whole run
// when the store already holds at least a full catalog; otherwise each
// article is checked by title and only missing ones are inserted.
// Returns the number of articles created.
func (s *ArticleSeeder) Run(ctx context.Context) (int, error) {
	existing, err := s.coll.Count(ctx, nil)
	if err != nil {
		return 0, apperrors.NewStoreUnavailable(err)
	}
	s.logger.Info("existing knowledge articles found", zap.Int64("count", existing))

	if existing >= int64(len(s.catalog)) {
		s.logger.Info("knowledge base already populated, skipping",
			zap.Int64("existing", existing),
			zap.Int("catalog", len(s.catalog)))
		return 0, nil
	}

	created := 0
	for _, article := range s.catalog {
		if err := ctx.Err(); err != nil {
			return created, apperrors.NewSeedFailed("knowledge_base", err)
		}

		_, err := s.coll.FindOne(ctx, repository.Filter{"title": article.Title})
		switch {
		case err == nil:
			s.logger.Info("article already exists, skipping", zap.String("title", article.Title))
			continue
		case !repository.IsNotFound(err):
			return created, apperrors.NewStoreUnavailable(err)
		}

		now := s.now().UTC()
		article.Views = 0
		article.HelpfulVotes = 0
		article.UnhelpfulVotes = 0
		article.CreatedAt = now
		article.UpdatedAt = now

		if _, err := s.coll.Create(ctx, article); err != nil {
			return created, apperrors.NewSeedFailed("knowledge_base", err)
		}
		created++
		s.logger.Info("article added", zap.String("title", article.Title))
	}

	s.logBreakdown(ctx, created)
	return created, nil
}

// logBreakdown reports the final count and per-category totals.
func (s *ArticleSeeder) logBreakdown(ctx context.Context, created int) {
	total, err := s.coll.Count(ctx, nil)
	if err != nil {
		s.logger.Warn("unable to count final articles", zap.Error(err))
		return
	}
	s.logger.Info("knowledge base population complete",
		zap.Int("created", created),
		zap.Int64("total", total))

	docs, err := s.coll.FindMany(ctx, nil, 100)
	if err != nil {
		s.logger.Warn("unable to list articles for breakdown", zap.Error(err))
		return
	}
	byCategory := make(map[string]int)
	for _, doc := range docs {
		category, _ := doc["category"].(string)
		if category == "" {
			category = "Unknown"
		}
		byCategory[category]++
	}
	for category, count := range byCategory {
		s.logger.Info("articles by category",
			zap.String("category", category),
			zap.Int("count", count))
	}
}
