// Package search provides the keyword search engine with highlighted results.
package search

import (
	"context"
	"fmt"
	"time"

	"github.com/hyperjump/shirushi/internal/config"
	"github.com/hyperjump/shirushi/internal/highlight"
	"github.com/hyperjump/shirushi/internal/keyword"
	"github.com/hyperjump/shirushi/internal/models"
	"github.com/hyperjump/shirushi/internal/storage"
)

// Engine runs keyword search and renders match highlights for each hit.
type Engine struct {
	storage      storage.Storage
	keywordIndex keyword.KeywordIndex
	config       *config.SearchConfig
}

// NewEngine creates a search engine with the given dependencies.
func NewEngine(
	storage storage.Storage,
	keywordIndex keyword.KeywordIndex,
	cfg *config.SearchConfig,
) *Engine {
	return &Engine{
		storage:      storage,
		keywordIndex: keywordIndex,
		config:       cfg,
	}
}

// Search runs keyword search and returns document-level results with rendered
// highlights. Results whose document has been removed from storage are skipped.
func (e *Engine) Search(ctx context.Context, query *models.SearchQuery) (*models.SearchResponse, error) {
	startTime := time.Now()
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var opts *keyword.SearchOptions
	if query.FuzzyEnabled {
		opts = &keyword.SearchOptions{FuzzyEnabled: true}
	}
	keywordResults, err := e.keywordIndex.Search(ctx, query.Query, e.config.TopKCandidates, opts)
	if err != nil {
		return nil, fmt.Errorf("keyword search failed: %w", err)
	}

	if query.MinScore > 0 {
		filtered := keywordResults[:0]
		for _, r := range keywordResults {
			if r.Score >= query.MinScore {
				filtered = append(filtered, r)
			}
		}
		keywordResults = filtered
	}

	start := query.Offset
	end := query.Offset + query.Limit
	if start > len(keywordResults) {
		start = len(keywordResults)
	}
	if end > len(keywordResults) {
		end = len(keywordResults)
	}
	paged := keywordResults[start:end]

	excerpt := e.excerptMode(query)

	response := &models.SearchResponse{
		Results:   make([]*models.SearchResult, 0, len(paged)),
		Total:     len(keywordResults),
		QueryTime: time.Since(startTime).Milliseconds(),
		Query:     query.Query,
	}

	for i, hit := range paged {
		doc, err := e.storage.GetDocument(ctx, hit.ID)
		if err != nil {
			continue
		}
		matches := e.capRanges(hit.Matches)
		response.Results = append(response.Results, &models.SearchResult{
			Document: doc,
			Score:    hit.Score,
			Matches:  matches,
			Rendered: e.render(doc.Content, matches, excerpt),
			Rank:     start + i + 1,
		})
	}
	return response, nil
}

// excerptMode resolves the rendering mode: query override first, config default second.
func (e *Engine) excerptMode(query *models.SearchQuery) bool {
	if query.Excerpt != nil {
		return *query.Excerpt
	}
	return e.config.ExcerptOrDefault()
}

// capRanges limits the number of match ranges per document to MaxMatchRanges.
func (e *Engine) capRanges(ranges []highlight.Range) []highlight.Range {
	max := e.config.MaxMatchRanges
	if max > 0 && len(ranges) > max {
		return ranges[:max]
	}
	return ranges
}

// render produces the highlighted view of content. Hits without content match
// ranges (e.g. title-only matches) render as empty.
func (e *Engine) render(content string, matches []highlight.Range, excerpt bool) string {
	rendered, err := highlight.Highlight(content, matches, excerpt)
	if err != nil {
		return ""
	}
	return rendered
}
