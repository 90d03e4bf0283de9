// Package highlight renders HTML-safe highlighted text and condensed excerpts
// for a set of character ranges over a text buffer.
package highlight

import "sort"

// Range is a half-open [Start, End) byte-offset interval into a text buffer.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of bytes the range covers.
func (r Range) Len() int {
	return r.End - r.Start
}

// Normalize canonicalizes ranges: endpoints ordered, sorted ascending by start
// then end, duplicates removed, and overlapping or exactly adjacent ranges
// merged (e.g. [3,5]+[5,7] -> [3,7]). The result is a new slice; the input is
// not modified. After normalization consecutive ranges satisfy
// next.Start > prev.End. Normalize is idempotent.
func Normalize(ranges []Range) []Range {
	if len(ranges) == 0 {
		return nil
	}

	ordered := make([]Range, len(ranges))
	for i, r := range ranges {
		if r.Start > r.End {
			r.Start, r.End = r.End, r.Start
		}
		ordered[i] = r
	}

	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Start == ordered[j].Start {
			return ordered[i].End < ordered[j].End
		}
		return ordered[i].Start < ordered[j].Start
	})

	// Duplicates are adjacent after sorting, so dedupe and merge in one pass.
	merged := make([]Range, 0, len(ordered))
	cur := ordered[0]
	for _, r := range ordered[1:] {
		if r == cur {
			continue
		}
		if r.Start <= cur.End {
			if r.End > cur.End {
				cur.End = r.End
			}
			continue
		}
		merged = append(merged, cur)
		cur = r
	}
	merged = append(merged, cur)
	return merged
}

// clamp bounds a normalized range to [0, limit]. Offsets beyond the text are
// pulled back to the text length, negative offsets to zero.
func clamp(r Range, limit int) Range {
	if r.Start < 0 {
		r.Start = 0
	}
	if r.End > limit {
		r.End = limit
	}
	if r.Start > limit {
		r.Start = limit
	}
	if r.End < r.Start {
		r.End = r.Start
	}
	return r
}
