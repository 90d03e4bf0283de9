package models

import "fmt"

// SearchQuery represents a search request.
type SearchQuery struct {
	Query  string `json:"query"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
	// Excerpt selects condensed excerpts for result rendering. When false,
	// results carry the full document content with matches highlighted.
	Excerpt *bool `json:"excerpt,omitempty"`
	// FuzzyEnabled enables fuzzy matching for typo tolerance.
	FuzzyEnabled bool `json:"fuzzy_enabled,omitempty"`
	// MinScore filters out hits below this score. 0 means no filtering.
	MinScore float64 `json:"min_score,omitempty"`
}

// ExcerptOrDefault returns the excerpt flag; unset defaults to true.
func (q *SearchQuery) ExcerptOrDefault() bool {
	if q.Excerpt != nil {
		return *q.Excerpt
	}
	return true
}

// Validate ensures the search query has valid fields and sets defaults.
// Returns an error if the query is empty; otherwise normalizes limit and offset.
func (q *SearchQuery) Validate() error {
	if q.Query == "" {
		return fmt.Errorf("query cannot be empty")
	}
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return nil
}
