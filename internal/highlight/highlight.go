package highlight

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput is the kind for inputs rejected before any processing.
// Callers can match it with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

var (
	// ErrEmptyText is returned when the input text is empty.
	ErrEmptyText = fmt.Errorf("%w: empty text", ErrInvalidInput)
	// ErrEmptyRanges is returned when no ranges are supplied.
	ErrEmptyRanges = fmt.Errorf("%w: empty ranges", ErrInvalidInput)
)

// Highlight renders text with every range wrapped in <em>...</em> markers.
// The text is trimmed and HTML-escaped before markers are inserted; ranges are
// normalized (ordered, sorted, deduplicated, merged) and refer to byte offsets
// in the input text. When excerpt is true the result is a condensed excerpt
// showing only the highlighted targets with a word of context on each side,
// non-adjacent segments joined by "[...]".
//
// Offsets beyond the text are clamped to its end and negative offsets to zero.
// A range whose end equals the input length is stretched to the end of the
// escaped text, since escaping can grow the string; this fix-up applies to the
// first normalized range only.
func Highlight(text string, ranges []Range, excerpt bool) (string, error) {
	if text == "" {
		return "", ErrEmptyText
	}
	if len(ranges) == 0 {
		return "", ErrEmptyRanges
	}

	trimmed := strings.TrimSpace(text)
	normalized := Normalize(ranges)
	escaped := Escape(trimmed)

	if normalized[0].End == len(trimmed) {
		normalized[0].End = len(escaped)
	}
	for i, r := range normalized {
		normalized[i] = clamp(r, len(escaped))
	}

	if excerpt {
		return renderExcerpt(escaped, normalized), nil
	}
	return renderFull(escaped, normalized), nil
}

// renderFull walks the ranges in ascending order, copying untouched text
// verbatim and wrapping each range's slice in <em>...</em>. Ranges whose
// slice is empty are skipped entirely; no empty wrapper is emitted.
func renderFull(text string, ranges []Range) string {
	if text == "" || len(ranges) == 0 {
		return ""
	}
	var b strings.Builder
	cursor := 0
	for _, r := range ranges {
		if r.Start > cursor {
			b.WriteString(text[cursor:r.Start])
		}
		if r.End > r.Start {
			b.WriteString("<em>")
			b.WriteString(text[r.Start:r.End])
			b.WriteString("</em>")
		}
		if r.End > cursor {
			cursor = r.End
		}
	}
	if cursor < len(text) {
		b.WriteString(text[cursor:])
	}
	return b.String()
}
