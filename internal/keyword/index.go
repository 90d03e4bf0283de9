// Package keyword provides keyword (BM25) search indexing and search.
package keyword

import (
	"context"

	"github.com/hyperjump/shirushi/internal/highlight"
	"github.com/hyperjump/shirushi/internal/models"
)

// SearchOptions optional parameters for keyword search. Nil means use defaults.
type SearchOptions struct {
	// FuzzyEnabled enables fuzzy matching for typo tolerance.
	// When true, searches will match terms within the specified edit distance.
	FuzzyEnabled bool
	// Fuzziness is the maximum Levenshtein edit distance for fuzzy matching (1 or 2).
	// Default is 2 when FuzzyEnabled is true. Higher values are more lenient.
	Fuzziness int
}

// KeywordIndex defines keyword search operations.
type KeywordIndex interface {
	Index(ctx context.Context, id string, doc *models.Document) error
	Search(ctx context.Context, query string, limit int, opts *SearchOptions) ([]*KeywordResult, error)
	Delete(ctx context.Context, id string) error
	Close() error
	// DocCount returns the total number of documents in the index.
	DocCount() (uint64, error)
}

// KeywordResult is a single keyword search hit. Matches carries the byte
// ranges of query term occurrences within the document content, ready for
// highlight rendering.
type KeywordResult struct {
	ID      string
	Score   float64
	Matches []highlight.Range
}
