package highlight

import "strings"

// renderExcerpt builds one segment per range and concatenates their contexts.
// Every segment after the first opens with an ellipsis marker; since the
// preceding segment already ends with one whenever more content follows, the
// leading marker is rewritten to a single space at the seam so the ellipsis is
// not emitted twice. The rewrite happens at consumption time, keeping segment
// extraction itself pure.
func renderExcerpt(text string, ranges []Range) string {
	if text == "" || len(ranges) == 0 {
		return ""
	}
	segments := make([]Segment, len(ranges))
	for i, r := range ranges {
		segments[i] = extractSegment(text, r, i)
	}

	var b strings.Builder
	for i, seg := range segments {
		ctx := seg.Context
		if i > 0 {
			if rest, ok := strings.CutPrefix(ctx, ellipsis+" "); ok {
				ctx = " " + rest
			}
		}
		b.WriteString(ctx)
	}
	return strings.TrimSpace(b.String())
}
