package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Document is a schemaless record as stored in a collection.
type Document map[string]any

// Filter selects documents whose body contains the given key/value
// pairs. An empty or nil filter matches every document.
type Filter map[string]any

// Collection is the storage contract the seeders depend on. Nothing in
// the seeding code assumes any particular engine beyond these four
// operations.
type Collection interface {
	Count(ctx context.Context, filter Filter) (int64, error)
	FindOne(ctx context.Context, filter Filter) (Document, error)
	FindMany(ctx context.Context, filter Filter, limit int) ([]Document, error)
	Create(ctx context.Context, doc any) (string, error)
}

type documentCollection struct {
	pool *pgxpool.Pool
	name string
}

// NewDocumentCollection binds a named collection to the shared
// documents table. Filters are evaluated with JSONB containment.
func NewDocumentCollection(pool *pgxpool.Pool, name string) Collection {
	return &documentCollection{pool: pool, name: name}
}

func (c *documentCollection) Count(ctx context.Context, filter Filter) (int64, error) {
	query, args, err := c.buildWhere(`SELECT COUNT(*) FROM documents`, filter)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := c.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (c *documentCollection) FindOne(ctx context.Context, filter Filter) (Document, error) {
	query, args, err := c.buildWhere(`SELECT doc FROM documents`, filter)
	if err != nil {
		return nil, err
	}
	var raw []byte
	if err := c.pool.QueryRow(ctx, query+` LIMIT 1`, args...).Scan(&raw); err != nil {
		return nil, err
	}
	return decodeDocument(raw)
}

func (c *documentCollection) FindMany(ctx context.Context, filter Filter, limit int) ([]Document, error) {
	if limit <= 0 {
		limit = 100
	}
	query, args, err := c.buildWhere(`SELECT doc FROM documents`, filter)
	if err != nil {
		return nil, err
	}
	rows, err := c.pool.Query(ctx, fmt.Sprintf("%s ORDER BY created_at LIMIT %d", query, limit), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Document
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		doc, err := decodeDocument(raw)
		if err != nil {
			return nil, err
		}
		result = append(result, doc)
	}
	return result, rows.Err()
}

func (c *documentCollection) Create(ctx context.Context, doc any) (string, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}
	id := uuid.NewString()
	const query = `INSERT INTO documents (id, collection, doc) VALUES ($1, $2, $3)`
	if _, err := c.pool.Exec(ctx, query, id, c.name, body); err != nil {
		return "", err
	}
	return id, nil
}

// buildWhere scopes the query to the collection and appends a JSONB
// containment clause when the filter is non-empty.
func (c *documentCollection) buildWhere(base string, filter Filter) (string, []any, error) {
	args := []any{c.name}
	query := base + ` WHERE collection=$1`
	if len(filter) > 0 {
		body, err := json.Marshal(filter)
		if err != nil {
			return "", nil, fmt.Errorf("encode filter: %w", err)
		}
		args = append(args, body)
		query += fmt.Sprintf(" AND doc @> $%d", len(args))
	}
	return query, args, nil
}

func decodeDocument(raw []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return doc, nil
}

// IsNotFound reports whether an error from FindOne means no document
// matched the filter.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
