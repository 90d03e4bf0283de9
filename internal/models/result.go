package models

import "github.com/hyperjump/shirushi/internal/highlight"

// SearchResult represents a single search hit with its rendered highlight.
type SearchResult struct {
	Document *Document `json:"document"`
	Score    float64   `json:"score"`
	// Matches are the normalized match ranges over the document content that
	// produced Rendered.
	Matches []highlight.Range `json:"matches"`
	// Rendered is the HTML-safe highlighted content: a condensed excerpt when
	// the query asked for one, otherwise the full content with <em> markers.
	Rendered string `json:"rendered"`
	Rank     int    `json:"rank"`
}

// SearchResponse is the response for a search request.
type SearchResponse struct {
	Results   []*SearchResult `json:"results"`
	Total     int             `json:"total"`
	QueryTime int64           `json:"query_time_ms"`
	Query     string          `json:"query"`
}
