package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/servicedesk-seeder/internal/repository"
)

// memCollection is an in-memory Collection fake. Documents are stored
// through a JSON round trip so tests see the same shapes a real store
// would, and filters match by per-key equality.
type memCollection struct {
	docs        []repository.Document
	createCalls int
	failAfter   int // create fails once this many documents exist; 0 disables
}

func newMemCollection() *memCollection {
	return &memCollection{}
}

func (m *memCollection) Count(_ context.Context, filter repository.Filter) (int64, error) {
	var count int64
	for _, doc := range m.docs {
		if matches(doc, filter) {
			count++
		}
	}
	return count, nil
}

func (m *memCollection) FindOne(_ context.Context, filter repository.Filter) (repository.Document, error) {
	for _, doc := range m.docs {
		if matches(doc, filter) {
			return doc, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memCollection) FindMany(_ context.Context, filter repository.Filter, limit int) ([]repository.Document, error) {
	var out []repository.Document
	for _, doc := range m.docs {
		if matches(doc, filter) {
			out = append(out, doc)
			if limit > 0 && len(out) >= limit {
				break
			}
		}
	}
	return out, nil
}

func (m *memCollection) Create(_ context.Context, doc any) (string, error) {
	if m.failAfter > 0 && len(m.docs) >= m.failAfter {
		return "", errors.New("simulated insert failure")
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	var stored repository.Document
	if err := json.Unmarshal(raw, &stored); err != nil {
		return "", err
	}
	m.docs = append(m.docs, stored)
	m.createCalls++
	return fmt.Sprintf("doc-%d", len(m.docs)), nil
}

func matches(doc repository.Document, filter repository.Filter) bool {
	for key, want := range filter {
		if doc[key] != want {
			return false
		}
	}
	return true
}
