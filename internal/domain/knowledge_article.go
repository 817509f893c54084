package domain

import "time"

// KnowledgeArticle is a static help-content document. Title is the
// unique key used for per-article deduplication; vote counters start at
// zero and are only ever advanced by the serving application.
type KnowledgeArticle struct {
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	Category       string    `json:"category"`
	Tags           []string  `json:"tags"`
	Author         string    `json:"author"`
	Views          int       `json:"views"`
	HelpfulVotes   int       `json:"helpful_votes"`
	UnhelpfulVotes int       `json:"unhelpful_votes"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
