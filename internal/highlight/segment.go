package highlight

import (
	"regexp"
	"strings"
)

// ellipsis marks omitted text between non-adjacent excerpt segments.
const ellipsis = "[...]"

// prevTokenRe captures the last word (with optional trailing punctuation)
// before a range: a letters/digits/underscore run, optionally followed by one
// of .,!? then any non-word characters, anchored at the end of the before-text.
var prevTokenRe = regexp.MustCompile(`(\w+[.,!?]?)\W*$`)

// nextPunctRe and nextWordRe capture the token following a range. A leading
// punctuation mark reachable through non-word characters wins over a word.
var (
	nextPunctRe = regexp.MustCompile(`^\W*?([.,!?])`)
	nextWordRe  = regexp.MustCompile(`^\W*?(\w+)`)
)

var whitespaceRunRe = regexp.MustCompile(`\s+`)

// Segment is the context unit extracted for one normalized range: the trimmed
// highlight target plus at most one word or punctuation mark of context on
// each side, and the rendered context string used for excerpt assembly.
type Segment struct {
	Range    Range
	Target   string
	Previous string // word before the target, "" when none
	Next     string // word or punctuation after the target, "" when none
	Context  string
}

// extractSegment derives the Segment for range r over the escaped text.
// index is the range's zero-based position among all ranges being processed;
// segments after the first open with an ellipsis marker.
func extractSegment(text string, r Range, index int) Segment {
	seg := Segment{
		Range:  r,
		Target: strings.TrimSpace(text[r.Start:r.End]),
	}

	if m := prevTokenRe.FindStringSubmatch(text[:r.Start]); m != nil {
		seg.Previous = strings.TrimSpace(m[1])
	}
	after := text[r.End:]
	if m := nextPunctRe.FindStringSubmatch(after); m != nil {
		seg.Next = m[1]
	} else if m := nextWordRe.FindStringSubmatch(after); m != nil {
		seg.Next = m[1]
	}

	var b strings.Builder
	if index > 0 {
		b.WriteString(ellipsis + " ")
	}
	b.WriteString(seg.Previous)
	b.WriteString(" <em>" + seg.Target + "</em>")
	if seg.Next != "" {
		if isContextPunct(seg.Next) {
			b.WriteString(seg.Next)
		} else {
			b.WriteString(" " + seg.Next)
		}
	}
	if hasMoreContent(after, seg.Next) {
		b.WriteString(" " + ellipsis + " ")
	}

	seg.Context = strings.TrimSpace(whitespaceRunRe.ReplaceAllString(b.String(), " "))
	return seg
}

// hasMoreContent reports whether non-whitespace text remains after the first
// occurrence of the next token in the after-text. The scan deliberately uses
// the first occurrence anywhere in the after-text, not the position the token
// was matched at.
func hasMoreContent(after, next string) bool {
	if next == "" {
		return false
	}
	i := strings.Index(after, next)
	if i < 0 {
		return false
	}
	return strings.TrimSpace(after[i+len(next):]) != ""
}

func isContextPunct(s string) bool {
	return s == "." || s == "," || s == "!" || s == "?"
}
