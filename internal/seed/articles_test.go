package seed

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func TestArticleSeederInsertsCatalog(t *testing.T) {
	coll := newMemCollection()
	seeder := NewArticleSeeder(coll, zap.NewNop())

	created, err := seeder.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created != len(ArticleCatalog) {
		t.Fatalf("expected %d articles, got %d", len(ArticleCatalog), created)
	}

	for _, doc := range coll.docs {
		if views, ok := doc["views"].(float64); !ok || views != 0 {
			t.Fatalf("article %v: views must start at zero", doc["title"])
		}
		if doc["created_at"] == nil || doc["updated_at"] == nil {
			t.Fatalf("article %v: timestamps must be set at insertion", doc["title"])
		}
	}
}

func TestArticleSeederSkipsWhenPopulated(t *testing.T) {
	coll := newMemCollection()
	if _, err := NewArticleSeeder(coll, zap.NewNop()).Run(context.Background()); err != nil {
		t.Fatalf("first run: %v", err)
	}
	callsAfterFirst := coll.createCalls

	created, err := NewArticleSeeder(coll, zap.NewNop()).Run(context.Background())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if created != 0 || coll.createCalls != callsAfterFirst {
		t.Fatalf("count guard failed: created=%d calls=%d", created, coll.createCalls)
	}
}

func TestArticleSeederDeduplicatesByTitle(t *testing.T) {
	coll := newMemCollection()
	// Pre-insert a single catalog article so the count guard does not
	// trigger but the per-title check must.
	existing := ArticleCatalog[0]
	if _, err := coll.Create(context.Background(), existing); err != nil {
		t.Fatalf("pre-insert: %v", err)
	}

	created, err := NewArticleSeeder(coll, zap.NewNop()).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created != len(ArticleCatalog)-1 {
		t.Fatalf("expected %d new articles, got %d", len(ArticleCatalog)-1, created)
	}

	count, err := coll.Count(context.Background(), map[string]any{"title": existing.Title})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one record for duplicated title, got %d", count)
	}
}

func TestArticleCatalogTitlesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, article := range ArticleCatalog {
		if seen[article.Title] {
			t.Fatalf("duplicate title in catalog: %q", article.Title)
		}
		seen[article.Title] = true
	}
}
