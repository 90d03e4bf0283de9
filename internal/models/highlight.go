package models

import "github.com/hyperjump/shirushi/internal/highlight"

// HighlightRequest is the input for the direct highlight operation: a text
// buffer plus caller-supplied ranges.
type HighlightRequest struct {
	Text    string            `json:"text"`
	Ranges  []highlight.Range `json:"ranges"`
	Excerpt bool              `json:"excerpt,omitempty"`
}

// HighlightResponse carries the rendered result.
type HighlightResponse struct {
	Rendered string `json:"rendered"`
}
